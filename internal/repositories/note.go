package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/insight-compass/internal/models"
)

type NoteRepository interface {
	Create(note *models.Note) error
	FindByID(id uuid.UUID) (*models.Note, error)
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

// Create implements NoteRepository.
func (n *noteRepository) Create(note *models.Note) error {
	if err := n.db.Create(note).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	return nil
}

// FindByID implements NoteRepository.
func (n *noteRepository) FindByID(id uuid.UUID) (*models.Note, error) {
	var note models.Note
	if err := n.db.Where("id = ?", id).First(&note).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("note not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	return &note, nil
}
