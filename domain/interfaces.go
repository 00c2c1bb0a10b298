package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
}

// SessionRepository defines session data access operations.
//
// ReplaceForUser and Rotate are the two mutating paths that must be atomic
// against concurrent logins/refreshes for the same user; all deletes are
// idempotent.
type SessionRepository interface {
	Create(ctx context.Context, userID uint) (*Session, error)
	FindByIDAndRefreshToken(ctx context.Context, sessionID, refreshToken string) (*Session, error)
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	ReplaceForUser(ctx context.Context, userID uint) (*Session, error)
	Rotate(ctx context.Context, sessionID, refreshToken string, userID uint) (*Session, error)
	DeleteByID(ctx context.Context, sessionID string) error
	DeleteByUserID(ctx context.Context, userID uint) error
	DeleteByIDAndRefreshToken(ctx context.Context, sessionID, refreshToken string) error
}

// NoteRepository defines note data access operations, always scoped to the
// owning user.
type NoteRepository interface {
	Create(ctx context.Context, note *Note) error
	FindByUser(ctx context.Context, userID uint, filter NoteFilter) ([]Note, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*Note, error)
	Update(ctx context.Context, note *Note) error
	DeleteByIDAndUser(ctx context.Context, id, userID uint) error
}

// AuthService defines the session/credential lifecycle
type AuthService interface {
	Register(ctx context.Context, email, password string) (*User, *Session, error)
	Login(ctx context.Context, email, password string) (*User, *Session, error)
	Logout(ctx context.Context, sessionID string) error
	Refresh(ctx context.Context, sessionID, refreshToken string) (*Session, error)
}

// PasswordResetService defines the password-reset flow
type PasswordResetService interface {
	RequestReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// NoteService defines note use-cases for an authenticated user
type NoteService interface {
	Create(ctx context.Context, userID uint, title, content, tag string) (*Note, error)
	List(ctx context.Context, userID uint, filter NoteFilter) ([]Note, error)
	Get(ctx context.Context, userID, noteID uint) (*Note, error)
	Update(ctx context.Context, userID, noteID uint, title, content, tag string) (*Note, error)
	Delete(ctx context.Context, userID, noteID uint) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService issues and verifies signed password-reset tokens
type TokenService interface {
	Issue(userID uint, email string, ttl time.Duration) (string, error)
	Verify(token string) (*ResetClaims, error)
}

// NotificationService defines outbound messaging
type NotificationService interface {
	SendEmail(to, subject, htmlBody string) error
}
