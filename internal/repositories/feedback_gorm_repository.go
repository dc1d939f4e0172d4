package repositories

import (
	"fmt"

	"etalase/internal/models"

	"gorm.io/gorm"
)

// GORMFeedbackRepository is a GORM implementation of FeedbackRepository.
type GORMFeedbackRepository struct {
	db *gorm.DB
}

// NewGORMFeedbackRepository creates a new instance of GORMFeedbackRepository.
func NewGORMFeedbackRepository(db *gorm.DB) *GORMFeedbackRepository {
	return &GORMFeedbackRepository{
		db: db,
	}
}

// GetAll retrieves all feedback ordered by creation time, newest first.
func (r *GORMFeedbackRepository) GetAll() ([]models.Feedback, error) {
	var feedback []models.Feedback
	if err := r.db.Order("created_at desc").Find(&feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to get all feedback: %w", err)
	}
	return feedback, nil
}

// GetByID retrieves a single feedback entry by its ID.
func (r *GORMFeedbackRepository) GetByID(id string) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := r.db.First(&feedback, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("feedback with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get feedback by ID %s: %w", id, err)
	}
	return &feedback, nil
}

// Create creates a new feedback entry in the database.
func (r *GORMFeedbackRepository) Create(feedback *models.Feedback) error {
	if err := r.db.Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// Update overwrites an existing feedback entry in full. Existence is checked
// first because GORM's Save inserts when the update matches nothing, and the
// stored creation time is kept so edited feedback holds its place in the
// newest-first listing.
func (r *GORMFeedbackRepository) Update(feedback *models.Feedback) error {
	var existing models.Feedback
	if err := r.db.First(&existing, "id = ?", feedback.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("feedback with ID %s not found for update", feedback.ID)
		}
		return fmt.Errorf("failed to load feedback %s for update: %w", feedback.ID, err)
	}

	feedback.CreatedAt = existing.CreatedAt

	if err := r.db.Save(feedback).Error; err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}
	return nil
}

// Delete deletes a feedback entry by its ID.
func (r *GORMFeedbackRepository) Delete(id string) error {
	res := r.db.Delete(&models.Feedback{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete feedback: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("feedback with ID %s not found for deletion", id)
	}
	return nil
}
