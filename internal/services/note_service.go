package services

import (
	"context"

	"github.com/you/notehub/domain"
)

// NoteServiceImpl implements domain.NoteService
type NoteServiceImpl struct {
	noteRepo domain.NoteRepository
}

// NewNoteService creates a new note service
func NewNoteService(noteRepo domain.NoteRepository) domain.NoteService {
	return &NoteServiceImpl{noteRepo: noteRepo}
}

// Create implements domain.NoteService
func (s *NoteServiceImpl) Create(ctx context.Context, userID uint, title, content, tag string) (*domain.Note, error) {
	if tag == "" {
		tag = domain.TagTodo
	}
	if !domain.ValidTag(tag) {
		return nil, domain.ErrInvalidTag
	}

	note := &domain.Note{
		Title:   title,
		Content: content,
		Tag:     tag,
		UserID:  userID,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// List implements domain.NoteService
func (s *NoteServiceImpl) List(ctx context.Context, userID uint, filter domain.NoteFilter) ([]domain.Note, error) {
	if filter.Tag != "" && !domain.ValidTag(filter.Tag) {
		return nil, domain.ErrInvalidTag
	}
	return s.noteRepo.FindByUser(ctx, userID, filter)
}

// Get implements domain.NoteService
func (s *NoteServiceImpl) Get(ctx context.Context, userID, noteID uint) (*domain.Note, error) {
	return s.noteRepo.FindByIDAndUser(ctx, noteID, userID)
}

// Update implements domain.NoteService
func (s *NoteServiceImpl) Update(ctx context.Context, userID, noteID uint, title, content, tag string) (*domain.Note, error) {
	note, err := s.noteRepo.FindByIDAndUser(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	if title != "" {
		note.Title = title
	}
	note.Content = content
	if tag != "" {
		if !domain.ValidTag(tag) {
			return nil, domain.ErrInvalidTag
		}
		note.Tag = tag
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Delete implements domain.NoteService
func (s *NoteServiceImpl) Delete(ctx context.Context, userID, noteID uint) error {
	return s.noteRepo.DeleteByIDAndUser(ctx, noteID, userID)
}
