package mocks

import (
	"time"

	"github.com/you/notehub/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc  func(userID uint, email string, ttl time.Duration) (string, error)
	VerifyFunc func(token string) (*domain.ResetClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue issues a signed reset token
func (m *MockTokenService) Issue(userID uint, email string, ttl time.Duration) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, email, ttl)
	}
	return "mock-token", nil
}

// Verify verifies a reset token
func (m *MockTokenService) Verify(token string) (*domain.ResetClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
