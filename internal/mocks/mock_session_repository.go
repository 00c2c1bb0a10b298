package mocks

import (
	"context"

	"github.com/you/notehub/domain"
)

// MockSessionRepository implements domain.SessionRepository for testing
type MockSessionRepository struct {
	CreateFunc                    func(ctx context.Context, userID uint) (*domain.Session, error)
	FindByIDAndRefreshTokenFunc   func(ctx context.Context, sessionID, refreshToken string) (*domain.Session, error)
	FindByIDFunc                  func(ctx context.Context, sessionID string) (*domain.Session, error)
	ReplaceForUserFunc            func(ctx context.Context, userID uint) (*domain.Session, error)
	RotateFunc                    func(ctx context.Context, sessionID, refreshToken string, userID uint) (*domain.Session, error)
	DeleteByIDFunc                func(ctx context.Context, sessionID string) error
	DeleteByUserIDFunc            func(ctx context.Context, userID uint) error
	DeleteByIDAndRefreshTokenFunc func(ctx context.Context, sessionID, refreshToken string) error
}

// NewMockSessionRepository creates a new MockSessionRepository with default behaviors
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

// Create creates a session for a user
func (m *MockSessionRepository) Create(ctx context.Context, userID uint) (*domain.Session, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID)
	}
	return &domain.Session{ID: "mock-session", UserID: userID}, nil
}

// FindByIDAndRefreshToken finds a session by its exact (id, refreshToken) pair
func (m *MockSessionRepository) FindByIDAndRefreshToken(ctx context.Context, sessionID, refreshToken string) (*domain.Session, error) {
	if m.FindByIDAndRefreshTokenFunc != nil {
		return m.FindByIDAndRefreshTokenFunc(ctx, sessionID, refreshToken)
	}
	return nil, domain.ErrSessionNotFound
}

// FindByID finds a session by ID
func (m *MockSessionRepository) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, sessionID)
	}
	return nil, domain.ErrSessionNotFound
}

// ReplaceForUser replaces a user's session with a fresh one
func (m *MockSessionRepository) ReplaceForUser(ctx context.Context, userID uint) (*domain.Session, error) {
	if m.ReplaceForUserFunc != nil {
		return m.ReplaceForUserFunc(ctx, userID)
	}
	return &domain.Session{ID: "mock-session", UserID: userID}, nil
}

// Rotate swaps a session for its successor
func (m *MockSessionRepository) Rotate(ctx context.Context, sessionID, refreshToken string, userID uint) (*domain.Session, error) {
	if m.RotateFunc != nil {
		return m.RotateFunc(ctx, sessionID, refreshToken, userID)
	}
	return &domain.Session{ID: "mock-rotated", UserID: userID}, nil
}

// DeleteByID deletes a session by ID
func (m *MockSessionRepository) DeleteByID(ctx context.Context, sessionID string) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, sessionID)
	}
	return nil
}

// DeleteByUserID deletes a user's session
func (m *MockSessionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

// DeleteByIDAndRefreshToken deletes a session by its exact pair
func (m *MockSessionRepository) DeleteByIDAndRefreshToken(ctx context.Context, sessionID, refreshToken string) error {
	if m.DeleteByIDAndRefreshTokenFunc != nil {
		return m.DeleteByIDAndRefreshTokenFunc(ctx, sessionID, refreshToken)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.SessionRepository = (*MockSessionRepository)(nil)
