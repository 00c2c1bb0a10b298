package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/you/notehub/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, nil, domain.ErrEmailInUse
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
	}

	// The unique index backs this up: a concurrent register with the same
	// email loses at the store, not here.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			return nil, nil, domain.ErrEmailInUse
		}
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	session, err := s.sessionRepo.Create(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	return user, session, nil
}

// Login implements domain.AuthService. Unknown email and wrong password are
// deliberately indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up email: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, nil, domain.ErrInvalidCredentials
	}

	// Single session per user: whatever session existed is replaced, not
	// rejected.
	session, err := s.sessionRepo.ReplaceForUser(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	return user, session, nil
}

// Logout implements domain.AuthService. Logging out an already-gone session
// succeeds.
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.DeleteByID(ctx, sessionID)
}

// Refresh implements domain.AuthService. The matched session is rotated:
// its refresh token becomes permanently unusable the instant the new session
// exists.
func (s *AuthServiceImpl) Refresh(ctx context.Context, sessionID, refreshToken string) (*domain.Session, error) {
	session, err := s.sessionRepo.FindByIDAndRefreshToken(ctx, sessionID, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	if session.Expired(time.Now()) {
		return nil, domain.ErrSessionExpired
	}

	rotated, err := s.sessionRepo.Rotate(ctx, session.ID, refreshToken, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			// Lost the race against a concurrent rotation of the same token.
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to rotate session: %w", err)
	}

	return rotated, nil
}
