package repositories

import (
	"etalase/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
	UpdateName(id, name string) error
	Delete(id string) error
	// Upsert inserts the category or overwrites an existing row with the
	// same ID. Used by the one-shot seeding utility.
	Upsert(category *models.Category) error
}
