package domain

import "errors"

// Credential errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailInUse         = errors.New("email in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session token expired")
)

// Reset-token errors
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)

// Note errors
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrInvalidTag   = errors.New("invalid note tag")
)
