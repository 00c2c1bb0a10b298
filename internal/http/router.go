package httpx

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/notehub/domain"
	"github.com/you/notehub/internal/http/handlers"
	"github.com/you/notehub/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, nh *handlers.NoteHandlers, sessionRepo domain.SessionRepository, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/logout", ah.Logout)
	auth.POST("/refresh", ah.Refresh)
	auth.POST("/send-reset-email", ah.SendResetEmail)
	auth.POST("/reset-pwd", ah.ResetPassword)

	notes := r.Group("/notes").Use(middleware.SessionAuth(sessionRepo))
	notes.POST("", nh.Create)
	notes.GET("", nh.List)
	notes.GET("/:id", nh.Get)
	notes.PUT("/:id", nh.Update)
	notes.DELETE("/:id", nh.Delete)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return r
}
