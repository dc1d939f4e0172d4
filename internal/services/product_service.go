package services

import (
	"strings"

	"etalase/internal/models"
	"etalase/internal/repositories"

	"github.com/google/uuid"
)

// ProductService reconciles submitted product forms into persisted records.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllProducts retrieves all products ordered by title.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Save validates and normalizes a submitted product form, then inserts a new
// row (generated ID) or overwrites the existing one (ID present). Validation
// runs before any write: a form without a main image never reaches the store.
func (s *ProductService) Save(form ProductForm) (*models.Product, error) {
	if strings.TrimSpace(form.Image) == "" {
		return nil, ErrMissingImage
	}

	images := parseStringList(form.Images)
	if len(images) > models.MaxGalleryImages {
		images = images[:models.MaxGalleryImages]
	}
	features := stripBlanks(parseStringList(form.Features))
	if len(features) > models.MaxFeatures {
		features = features[:models.MaxFeatures]
	}

	product := models.Product{
		ID:            strings.TrimSpace(form.ID),
		Title:         form.Title,
		Description:   form.Description,
		CategoryID:    form.Category,
		Price:         parseFloatOr(form.Price, 0),
		OriginalPrice: parseFloatOr(form.OriginalPrice, 0),
		ImageURL:      form.Image,
		Images:        models.StringList(images),
		Features:      models.StringList(features),
		InStock:       parseCheckbox(form.InStock),
		FastDelivery:  parseCheckbox(form.FastDelivery),
		Rating:        parseFloatOr(form.Rating, 5),
		Reviews:       parseIntOr(form.Reviews, 0),
	}

	if product.ID != "" {
		if err := s.repo.Update(&product); err != nil {
			return nil, err
		}
	} else {
		product.ID = uuid.New().String()
		if err := s.repo.Create(&product); err != nil {
			return nil, err
		}
	}

	publishEvent(s.publisher, "catalog.product.saved", map[string]interface{}{
		"id":    product.ID,
		"title": product.Title,
	})

	return &product, nil
}

// Delete removes a product by its ID.
func (s *ProductService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	publishEvent(s.publisher, "catalog.product.deleted", map[string]interface{}{
		"id": id,
	})
	return nil
}
