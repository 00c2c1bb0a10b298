package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/notehub/domain"
)

// respondError is the single place that maps domain errors to HTTP status
// codes and a {"message": ...} body. Anything unrecognized becomes a generic
// 500; internals never reach the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmailInUse):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email in use"})
	case errors.Is(err, domain.ErrInvalidTag):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid note tag"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Session not found"})
	case errors.Is(err, domain.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Session token expired"})
	case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, domain.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
	default:
		slog.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
	}
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}
