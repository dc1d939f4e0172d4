package repositories

import (
	"etalase/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	CountByCategory(categoryID string) (int64, error)
	// MergeVariants inserts the synthesized parent product and deletes the
	// original variant rows as a single atomic operation.
	MergeVariants(parent *models.Product, variantIDs []string) error
}
