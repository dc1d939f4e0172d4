package services

import (
	"fmt"
	"log"
	"time"

	"etalase/internal/models"
	"etalase/internal/repositories"
)

// VariantRef names one sibling product row that represents a physical size
// option of the same catalog entry.
type VariantRef struct {
	ID   string
	Size string
}

// VariantGroup describes a set of sibling rows to collapse into one parent.
type VariantGroup struct {
	BaseID   string
	BaseName string
	Variants []VariantRef
}

// MergeService collapses sibling size-variant products into a single parent
// record carrying an ordered size-variant list.
type MergeService struct {
	repo repositories.ProductRepository
}

// NewMergeService creates a new MergeService.
func NewMergeService(repo repositories.ProductRepository) *MergeService {
	return &MergeService{
		repo: repo,
	}
}

// Merge synthesizes the parent product from a variant group and swaps it in
// for the variant rows. The first variant supplies the base record; the
// headline price is the minimum variant price. Insert and delete run as one
// atomic repository operation, so a failure cannot leave both the parent and
// orphaned variants behind.
func (s *MergeService) Merge(group VariantGroup) (*models.Product, error) {
	if len(group.Variants) == 0 {
		return nil, fmt.Errorf("variant group %s has no variants", group.BaseID)
	}

	base, err := s.repo.GetByID(group.Variants[0].ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch base variant: %w", err)
	}

	details := make([]models.SizeVariant, 0, len(group.Variants))
	variantIDs := make([]string, 0, len(group.Variants))
	minPrice := 0.0
	for i, ref := range group.Variants {
		variant, err := s.repo.GetByID(ref.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch variant %s: %w", ref.ID, err)
		}
		details = append(details, models.SizeVariant{
			Size:    ref.Size,
			Price:   variant.Price,
			InStock: variant.InStock,
		})
		variantIDs = append(variantIDs, ref.ID)
		if i == 0 || variant.Price < minPrice {
			minPrice = variant.Price
		}
	}

	parent := *base
	parent.ID = group.BaseID
	parent.Title = group.BaseName
	parent.Price = minPrice
	parent.HasSizes = true
	parent.SizeVariants = models.VariantList(details)
	parent.CreatedAt = time.Time{}
	parent.UpdatedAt = time.Time{}

	if err := s.repo.MergeVariants(&parent, variantIDs); err != nil {
		return nil, err
	}

	log.Printf("Merged %d variants into %s", len(variantIDs), parent.ID)
	return &parent, nil
}
