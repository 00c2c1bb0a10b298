package mocks

import (
	"context"

	"github.com/you/notehub/domain"
)

// MockNoteRepository implements domain.NoteRepository for testing
type MockNoteRepository struct {
	CreateFunc          func(ctx context.Context, note *domain.Note) error
	FindByUserFunc      func(ctx context.Context, userID uint, filter domain.NoteFilter) ([]domain.Note, error)
	FindByIDAndUserFunc func(ctx context.Context, id, userID uint) (*domain.Note, error)
	UpdateFunc          func(ctx context.Context, note *domain.Note) error
	DeleteFunc          func(ctx context.Context, id, userID uint) error
}

// NewMockNoteRepository creates a new MockNoteRepository with default behaviors
func NewMockNoteRepository() *MockNoteRepository {
	return &MockNoteRepository{}
}

// Create creates a note
func (m *MockNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, note)
	}
	note.ID = 1
	return nil
}

// FindByUser lists a user's notes
func (m *MockNoteRepository) FindByUser(ctx context.Context, userID uint, filter domain.NoteFilter) ([]domain.Note, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID, filter)
	}
	return nil, nil
}

// FindByIDAndUser finds a note owned by a user
func (m *MockNoteRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*domain.Note, error) {
	if m.FindByIDAndUserFunc != nil {
		return m.FindByIDAndUserFunc(ctx, id, userID)
	}
	return nil, domain.ErrNoteNotFound
}

// Update updates a note
func (m *MockNoteRepository) Update(ctx context.Context, note *domain.Note) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, note)
	}
	return nil
}

// DeleteByIDAndUser deletes a note owned by a user
func (m *MockNoteRepository) DeleteByIDAndUser(ctx context.Context, id, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.NoteRepository = (*MockNoteRepository)(nil)
