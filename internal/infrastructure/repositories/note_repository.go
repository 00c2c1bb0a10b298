package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/you/notehub/domain"
	"gorm.io/gorm"
)

// NoteRepositoryImpl implements domain.NoteRepository using GORM. Every
// query is scoped by the owning user id; a note belonging to someone else is
// reported as not found.
type NoteRepositoryImpl struct {
	db *gorm.DB
}

// DBNote represents the database model for Note (with GORM tags)
type DBNote struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255;not null"`
	Content   string
	Tag       string `gorm:"size:64;index"`
	UserID    uint   `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBNote) TableName() string {
	return "notes"
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) domain.NoteRepository {
	return &NoteRepositoryImpl{db: db}
}

// Create implements domain.NoteRepository
func (r *NoteRepositoryImpl) Create(ctx context.Context, note *domain.Note) error {
	dbNote := r.domainToDB(note)
	if err := r.db.WithContext(ctx).Create(dbNote).Error; err != nil {
		return err
	}
	note.ID = dbNote.ID
	note.CreatedAt = dbNote.CreatedAt
	note.UpdatedAt = dbNote.UpdatedAt
	return nil
}

// FindByUser implements domain.NoteRepository
func (r *NoteRepositoryImpl) FindByUser(ctx context.Context, userID uint, filter domain.NoteFilter) ([]domain.Note, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Tag != "" {
		query = query.Where("tag = ?", filter.Tag)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var dbNotes []DBNote
	if err := query.Order("created_at DESC").Find(&dbNotes).Error; err != nil {
		return nil, err
	}

	notes := make([]domain.Note, 0, len(dbNotes))
	for i := range dbNotes {
		notes = append(notes, *r.dbToDomain(&dbNotes[i]))
	}
	return notes, nil
}

// FindByIDAndUser implements domain.NoteRepository
func (r *NoteRepositoryImpl) FindByIDAndUser(ctx context.Context, id, userID uint) (*domain.Note, error) {
	var dbNote DBNote
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&dbNote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbNote), nil
}

// Update implements domain.NoteRepository
func (r *NoteRepositoryImpl) Update(ctx context.Context, note *domain.Note) error {
	result := r.db.WithContext(ctx).Model(&DBNote{}).
		Where("id = ? AND user_id = ?", note.ID, note.UserID).
		Updates(map[string]any{
			"title":      note.Title,
			"content":    note.Content,
			"tag":        note.Tag,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// DeleteByIDAndUser implements domain.NoteRepository
func (r *NoteRepositoryImpl) DeleteByIDAndUser(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&DBNote{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// domainToDB converts domain note to database note
func (r *NoteRepositoryImpl) domainToDB(note *domain.Note) *DBNote {
	return &DBNote{
		ID:      note.ID,
		Title:   note.Title,
		Content: note.Content,
		Tag:     note.Tag,
		UserID:  note.UserID,
	}
}

// dbToDomain converts database note to domain note
func (r *NoteRepositoryImpl) dbToDomain(dbNote *DBNote) *domain.Note {
	return &domain.Note{
		ID:        dbNote.ID,
		Title:     dbNote.Title,
		Content:   dbNote.Content,
		Tag:       dbNote.Tag,
		UserID:    dbNote.UserID,
		CreatedAt: dbNote.CreatedAt,
		UpdatedAt: dbNote.UpdatedAt,
	}
}
