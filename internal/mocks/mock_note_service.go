package mocks

import (
	"context"

	"github.com/you/notehub/domain"
)

// MockNoteService implements domain.NoteService for testing
type MockNoteService struct {
	CreateFunc func(ctx context.Context, userID uint, title, content, tag string) (*domain.Note, error)
	ListFunc   func(ctx context.Context, userID uint, filter domain.NoteFilter) ([]domain.Note, error)
	GetFunc    func(ctx context.Context, userID, noteID uint) (*domain.Note, error)
	UpdateFunc func(ctx context.Context, userID, noteID uint, title, content, tag string) (*domain.Note, error)
	DeleteFunc func(ctx context.Context, userID, noteID uint) error
}

// NewMockNoteService creates a new MockNoteService with default behaviors
func NewMockNoteService() *MockNoteService {
	return &MockNoteService{}
}

// Create creates a note
func (m *MockNoteService) Create(ctx context.Context, userID uint, title, content, tag string) (*domain.Note, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, title, content, tag)
	}
	return &domain.Note{ID: 1, Title: title, Content: content, Tag: tag, UserID: userID}, nil
}

// List lists a user's notes
func (m *MockNoteService) List(ctx context.Context, userID uint, filter domain.NoteFilter) ([]domain.Note, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter)
	}
	return nil, nil
}

// Get fetches a single note
func (m *MockNoteService) Get(ctx context.Context, userID, noteID uint) (*domain.Note, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, noteID)
	}
	return nil, domain.ErrNoteNotFound
}

// Update updates a note
func (m *MockNoteService) Update(ctx context.Context, userID, noteID uint, title, content, tag string) (*domain.Note, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, noteID, title, content, tag)
	}
	return nil, domain.ErrNoteNotFound
}

// Delete deletes a note
func (m *MockNoteService) Delete(ctx context.Context, userID, noteID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, noteID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.NoteService = (*MockNoteService)(nil)
