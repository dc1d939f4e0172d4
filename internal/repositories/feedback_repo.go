package repositories

import (
	"etalase/internal/models"
)

// FeedbackRepository defines the interface for customer feedback data access.
type FeedbackRepository interface {
	GetAll() ([]models.Feedback, error)
	GetByID(id string) (*models.Feedback, error)
	Create(feedback *models.Feedback) error
	Update(feedback *models.Feedback) error
	Delete(id string) error
}
