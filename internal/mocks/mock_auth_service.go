package mocks

import (
	"context"

	"github.com/you/notehub/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, email, password string) (*domain.User, *domain.Session, error)
	LoginFunc    func(ctx context.Context, email, password string) (*domain.User, *domain.Session, error)
	LogoutFunc   func(ctx context.Context, sessionID string) error
	RefreshFunc  func(ctx context.Context, sessionID, refreshToken string) (*domain.Session, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password)
	}
	return &domain.User{ID: 1, Email: email}, &domain.Session{ID: "mock-session", UserID: 1}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, nil, domain.ErrInvalidCredentials
}

// Logout deletes a session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

// Refresh rotates a session
func (m *MockAuthService) Refresh(ctx context.Context, sessionID, refreshToken string) (*domain.Session, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, sessionID, refreshToken)
	}
	return nil, domain.ErrSessionNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
