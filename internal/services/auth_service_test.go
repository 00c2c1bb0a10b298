package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/you/notehub/domain"
	"github.com/you/notehub/internal/mocks"
)

func validUser() *domain.User {
	return &domain.User{
		ID:           1,
		Email:        "user@example.com",
		PasswordHash: "hashed_password123",
	}
}

func liveSession(userID uint) *domain.Session {
	now := time.Now()
	return &domain.Session{
		ID:               "sess-1",
		UserID:           userID,
		AccessToken:      "access-1",
		RefreshToken:     "refresh-1",
		AccessExpiresAt:  now.Add(15 * time.Minute),
		RefreshExpiresAt: now.Add(24 * time.Hour),
		CreatedAt:        now,
	}
}

func TestAuthServiceImpl_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockSessionRepository, *mocks.MockPasswordService)
		expectedError error
		validate      func(t *testing.T, user *domain.User, session *domain.Session)
	}{
		{
			name:     "successful registration",
			email:    "newuser@example.com",
			password: "securepassword123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					user.ID = 2
					return nil
				}
				sessionRepo.CreateFunc = func(ctx context.Context, userID uint) (*domain.Session, error) {
					return liveSession(userID), nil
				}
			},
			expectedError: nil,
			validate: func(t *testing.T, user *domain.User, session *domain.Session) {
				if user == nil || session == nil {
					t.Fatal("expected user and session")
				}
				if user.Email != "newuser@example.com" {
					t.Errorf("expected email newuser@example.com, got %s", user.Email)
				}
				if user.PasswordHash != "hashed_securepassword123" {
					t.Errorf("unexpected password hash %s", user.PasswordHash)
				}
				if session.UserID != 2 {
					t.Errorf("expected session for user 2, got %d", session.UserID)
				}
			},
		},
		{
			name:     "email already in use",
			email:    "user@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return validUser(), nil
				}
			},
			expectedError: domain.ErrEmailInUse,
		},
		{
			name:     "duplicate detected at the store under a concurrent register",
			email:    "raced@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return domain.ErrEmailInUse
				}
			},
			expectedError: domain.ErrEmailInUse,
		},
		{
			name:     "hashing failure",
			email:    "newuser@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				passwordSvc.HashFunc = func(password string) (string, error) {
					return "", errors.New("hashing failed")
				}
			},
			expectedError: errors.New("failed to hash password: hashing failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			sessionRepo := mocks.NewMockSessionRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tt.setupMocks(userRepo, sessionRepo, passwordSvc)

			svc := NewAuthService(userRepo, sessionRepo, passwordSvc)
			user, session, err := svc.Register(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				if err == nil || err.Error() != tt.expectedError.Error() {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, user, session)
			}
		})
	}
}

func TestAuthServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockSessionRepository, *mocks.MockPasswordService)
		expectedError error
	}{
		{
			name:     "successful login replaces the session",
			email:    "user@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return validUser(), nil
				}
				sessionRepo.ReplaceForUserFunc = func(ctx context.Context, userID uint) (*domain.Session, error) {
					return liveSession(userID), nil
				}
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				// Default mock behavior: not found.
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "user@example.com",
			password: "wrong",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return validUser(), nil
				}
				passwordSvc.VerifyFunc = func(hashedPassword, password string) bool {
					return false
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			sessionRepo := mocks.NewMockSessionRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tt.setupMocks(userRepo, sessionRepo, passwordSvc)

			svc := NewAuthService(userRepo, sessionRepo, passwordSvc)
			user, session, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user == nil || session == nil {
				t.Fatal("expected user and session")
			}
			if session.UserID != user.ID {
				t.Errorf("session user %d does not match user %d", session.UserID, user.ID)
			}
		})
	}
}

func TestAuthServiceImpl_LoginErrorsAreIndistinguishable(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	sessionRepo := mocks.NewMockSessionRepository()
	passwordSvc := mocks.NewMockPasswordService()

	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		if email == "user@example.com" {
			return validUser(), nil
		}
		return nil, domain.ErrUserNotFound
	}
	passwordSvc.VerifyFunc = func(hashedPassword, password string) bool { return false }

	svc := NewAuthService(userRepo, sessionRepo, passwordSvc)

	_, _, errUnknown := svc.Login(context.Background(), "nobody@example.com", "whatever")
	_, _, errWrongPwd := svc.Login(context.Background(), "user@example.com", "wrong")

	if errUnknown != errWrongPwd {
		t.Errorf("unknown email (%v) and wrong password (%v) must yield the identical error", errUnknown, errWrongPwd)
	}
}

func TestAuthServiceImpl_Refresh(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockSessionRepository)
		expectedError error
	}{
		{
			name: "successful rotation",
			setupMocks: func(sessionRepo *mocks.MockSessionRepository) {
				sessionRepo.FindByIDAndRefreshTokenFunc = func(ctx context.Context, sessionID, refreshToken string) (*domain.Session, error) {
					return liveSession(1), nil
				}
				sessionRepo.RotateFunc = func(ctx context.Context, sessionID, refreshToken string, userID uint) (*domain.Session, error) {
					s := liveSession(userID)
					s.ID = "sess-2"
					s.RefreshToken = "refresh-2"
					return s, nil
				}
			},
			expectedError: nil,
		},
		{
			name: "unknown or mismatched pair",
			setupMocks: func(sessionRepo *mocks.MockSessionRepository) {
				// Default mock behavior: not found.
			},
			expectedError: domain.ErrSessionNotFound,
		},
		{
			name: "expired session even when the pair matches",
			setupMocks: func(sessionRepo *mocks.MockSessionRepository) {
				sessionRepo.FindByIDAndRefreshTokenFunc = func(ctx context.Context, sessionID, refreshToken string) (*domain.Session, error) {
					s := liveSession(1)
					s.RefreshExpiresAt = time.Now().Add(-time.Hour)
					return s, nil
				}
			},
			expectedError: domain.ErrSessionExpired,
		},
		{
			name: "lost rotation race",
			setupMocks: func(sessionRepo *mocks.MockSessionRepository) {
				sessionRepo.FindByIDAndRefreshTokenFunc = func(ctx context.Context, sessionID, refreshToken string) (*domain.Session, error) {
					return liveSession(1), nil
				}
				sessionRepo.RotateFunc = func(ctx context.Context, sessionID, refreshToken string, userID uint) (*domain.Session, error) {
					return nil, domain.ErrSessionNotFound
				}
			},
			expectedError: domain.ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionRepo := mocks.NewMockSessionRepository()
			tt.setupMocks(sessionRepo)

			svc := NewAuthService(mocks.NewMockUserRepository(), sessionRepo, mocks.NewMockPasswordService())
			session, err := svc.Refresh(context.Background(), "sess-1", "refresh-1")

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if session.ID != "sess-2" || session.RefreshToken != "refresh-2" {
				t.Errorf("expected the rotated session, got %+v", session)
			}
		})
	}
}

func TestAuthServiceImpl_Logout(t *testing.T) {
	var deleted string
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.DeleteByIDFunc = func(ctx context.Context, sessionID string) error {
		deleted = sessionID
		return nil
	}

	svc := NewAuthService(mocks.NewMockUserRepository(), sessionRepo, mocks.NewMockPasswordService())
	if err := svc.Logout(context.Background(), "sess-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "sess-1" {
		t.Errorf("expected session sess-1 to be deleted, got %q", deleted)
	}
}
