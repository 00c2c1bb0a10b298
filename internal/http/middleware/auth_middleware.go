package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/notehub/domain"
)

// Context keys set by SessionAuth.
const (
	ContextUserID    = "user_id"
	ContextSessionID = "session_id"
)

// Cookie names read by SessionAuth. Kept in sync with the handlers package.
const (
	cookieSessionID   = "sessionId"
	cookieAccessToken = "accessToken"
)

// SessionAuth authenticates requests by their sessionId and accessToken
// cookies: the session must exist, the access token must match the stored
// value and still be within its validity window.
func SessionAuth(sessionRepo domain.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieSessionID)
		if err != nil || sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			c.Abort()
			return
		}

		accessToken, err := c.Cookie(cookieAccessToken)
		if err != nil || accessToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			c.Abort()
			return
		}

		session, err := sessionRepo.FindByID(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Session invalid or expired"})
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(session.AccessToken), []byte(accessToken)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Session invalid or expired"})
			c.Abort()
			return
		}

		if session.AccessExpired(time.Now()) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token expired"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextSessionID, session.ID)
		c.Next()
	}
}
