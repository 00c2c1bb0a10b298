package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/notehub/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc  domain.AuthService
	resetSvc domain.PasswordResetService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, resetSvc domain.PasswordResetService) *AuthHandlers {
	return &AuthHandlers{
		authSvc:  authSvc,
		resetSvc: resetSvc,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SendResetEmailRequest represents a password-reset request
type SendResetEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents a password reset
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, session, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setSessionCookies(c, session)
	c.JSON(http.StatusCreated, user)
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, session, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setSessionCookies(c, session)
	c.JSON(http.StatusOK, user)
}

// Logout handles user logout. It always clears the cookies and responds 204,
// whether or not a session existed.
func (h *AuthHandlers) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(CookieSessionID); err == nil && sessionID != "" {
		if err := h.authSvc.Logout(c.Request.Context(), sessionID); err != nil {
			respondError(c, err)
			return
		}
	}

	clearSessionCookies(c)
	c.Status(http.StatusNoContent)
}

// Refresh handles session refresh with rotation
func (h *AuthHandlers) Refresh(c *gin.Context) {
	sessionID, err := c.Cookie(CookieSessionID)
	if err != nil || sessionID == "" {
		respondError(c, domain.ErrSessionNotFound)
		return
	}
	refreshToken, err := c.Cookie(CookieRefreshToken)
	if err != nil || refreshToken == "" {
		respondError(c, domain.ErrSessionNotFound)
		return
	}

	session, err := h.authSvc.Refresh(c.Request.Context(), sessionID, refreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	setSessionCookies(c, session)
	c.JSON(http.StatusOK, gin.H{"message": "Session refreshed"})
}

// SendResetEmail handles a password-reset request. The response is identical
// whether or not the email is registered.
func (h *AuthHandlers) SendResetEmail(c *gin.Context) {
	var req SendResetEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.resetSvc.RequestReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If this email exists, a reset link was sent"})
}

// ResetPassword handles the password reset itself
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.resetSvc.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}
