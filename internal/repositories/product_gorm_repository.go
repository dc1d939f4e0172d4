package repositories

import (
	"fmt"

	"etalase/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products ordered by title ascending.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("title asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update overwrites an existing product record in full. Existence is checked
// first: GORM's Save falls back to an insert when the update matches nothing,
// which would turn a stale-ID update into a silent create.
func (r *GORMProductRepository) Update(product *models.Product) error {
	var existing models.Product
	if err := r.db.First(&existing, "id = ?", product.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("product with ID %s not found for update", product.ID)
		}
		return fmt.Errorf("failed to load product %s for update: %w", product.ID, err)
	}

	// The form never carries the creation time; keep the stored one.
	product.CreatedAt = existing.CreatedAt

	if err := r.db.Save(product).Error; err != nil { // Save updates all fields, including zero values
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete deletes a product by its ID.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s not found for deletion", id)
	}
	return nil
}

// CountByCategory counts products referencing the given category.
func (r *GORMProductRepository) CountByCategory(categoryID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products in category %s: %w", categoryID, err)
	}
	return count, nil
}

// MergeVariants inserts the parent product and deletes the variant rows
// inside one transaction, so a mid-sequence failure cannot leave both the
// parent and the orphaned variants behind.
func (r *GORMProductRepository) MergeVariants(parent *models.Product, variantIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(parent).Error; err != nil {
			return fmt.Errorf("failed to create merged product %s: %w", parent.ID, err)
		}
		res := tx.Delete(&models.Product{}, "id IN ?", variantIDs)
		if res.Error != nil {
			return fmt.Errorf("failed to delete variant rows: %w", res.Error)
		}
		if res.RowsAffected != int64(len(variantIDs)) {
			return fmt.Errorf("expected to delete %d variants, deleted %d", len(variantIDs), res.RowsAffected)
		}
		return nil
	})
}
