package mocks

import "github.com/you/notehub/domain"

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendEmailFunc func(to, subject, htmlBody string) error

	// SentEmails records every dispatched message when SendEmailFunc is nil.
	SentEmails []SentEmail
}

// SentEmail is one recorded dispatch
type SentEmail struct {
	To       string
	Subject  string
	HTMLBody string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendEmail sends (records) an email
func (m *MockNotificationService) SendEmail(to, subject, htmlBody string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, htmlBody)
	}
	m.SentEmails = append(m.SentEmails, SentEmail{To: to, Subject: subject, HTMLBody: htmlBody})
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
