package services

import (
	"strings"

	"etalase/internal/models"
	"etalase/internal/repositories"
	"etalase/internal/slug"
)

// CategoryService reconciles category form submissions. Category IDs are
// slugs derived from the name at creation time and never change afterwards.
type CategoryService struct {
	repo        repositories.CategoryRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository, productRepo repositories.ProductRepository, publisher EventPublisher) *CategoryService {
	return &CategoryService{
		repo:        repo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// GetAllCategories retrieves all categories ordered by ID.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// Create derives the slug ID from the name and inserts a new category.
// Names producing an already-taken slug fail with ErrDuplicateID and write
// nothing, so "Brass Items!" cannot coexist with "brass items".
func (s *CategoryService) Create(name, description string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}

	id := slug.Make(name)
	if id == "" {
		return nil, ErrMissingName
	}

	if existing, err := s.repo.GetByID(id); err == nil && existing != nil {
		return nil, ErrDuplicateID
	}

	category := models.Category{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(description),
		Icon:        models.DefaultCategoryIcon,
	}

	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}

	publishEvent(s.publisher, "catalog.category.created", map[string]interface{}{
		"id":   category.ID,
		"name": category.Name,
	})

	return &category, nil
}

// Rename updates a category's name. The slug ID is immutable, so renaming
// never moves products to another category.
func (s *CategoryService) Rename(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrMissingName
	}

	if err := s.repo.UpdateName(id, name); err != nil {
		return err
	}

	publishEvent(s.publisher, "catalog.category.renamed", map[string]interface{}{
		"id":   id,
		"name": name,
	})
	return nil
}

// Delete removes a category. Deletion is refused while products still
// reference the category, so the catalog never holds dangling references.
func (s *CategoryService) Delete(id string) error {
	count, err := s.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	publishEvent(s.publisher, "catalog.category.deleted", map[string]interface{}{
		"id": id,
	})
	return nil
}
