package mocks

import (
	"context"

	"github.com/you/notehub/domain"
)

// MockPasswordResetService implements domain.PasswordResetService for testing
type MockPasswordResetService struct {
	RequestResetFunc  func(ctx context.Context, email string) error
	ResetPasswordFunc func(ctx context.Context, token, newPassword string) error
}

// NewMockPasswordResetService creates a new MockPasswordResetService with default behaviors
func NewMockPasswordResetService() *MockPasswordResetService {
	return &MockPasswordResetService{}
}

// RequestReset requests a password-reset email
func (m *MockPasswordResetService) RequestReset(ctx context.Context, email string) error {
	if m.RequestResetFunc != nil {
		return m.RequestResetFunc(ctx, email)
	}
	return nil
}

// ResetPassword performs a password reset
func (m *MockPasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, newPassword)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.PasswordResetService = (*MockPasswordResetService)(nil)
