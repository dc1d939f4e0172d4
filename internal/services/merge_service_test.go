package services_test

import (
	"fmt"
	"testing"

	"etalase/internal/models"
	"etalase/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func horseBoxGroup() services.VariantGroup {
	return services.VariantGroup{
		BaseID:   "antique-brass-horse-box",
		BaseName: "Antique Brass Horse Box",
		Variants: []services.VariantRef{
			{ID: "horse-box-small", Size: "Small"},
			{ID: "horse-box-big", Size: "Big"},
		},
	}
}

func TestMergeService_MergeBuildsParentFromVariants(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewMergeService(mockRepo)

	small := &models.Product{
		ID:         "horse-box-small",
		Title:      "Antique Brass Horse Box (Small)",
		CategoryID: "brass-products",
		Price:      1550,
		ImageURL:   "https://cdn.example.com/horse-box.jpg",
		InStock:    true,
	}
	big := &models.Product{
		ID:         "horse-box-big",
		Title:      "Antique Brass Horse Box (Big)",
		CategoryID: "brass-products",
		Price:      2450,
		ImageURL:   "https://cdn.example.com/horse-box.jpg",
		InStock:    false,
	}

	mockRepo.On("GetByID", "horse-box-small").Return(small, nil)
	mockRepo.On("GetByID", "horse-box-big").Return(big, nil)

	var parent *models.Product
	var removed []string
	mockRepo.On("MergeVariants", mock.AnythingOfType("*models.Product"), mock.Anything).Run(func(args mock.Arguments) {
		parent = args.Get(0).(*models.Product)
		removed = args.Get(1).([]string)
	}).Return(nil).Once()

	merged, err := service.Merge(horseBoxGroup())
	assert.NoError(t, err)
	assert.Equal(t, "antique-brass-horse-box", merged.ID)
	assert.Equal(t, "Antique Brass Horse Box", merged.Title)

	// Headline price is the cheapest variant.
	assert.Equal(t, 1550.0, merged.Price)
	assert.True(t, merged.HasSizes)

	// The size list keeps the group's declared order.
	assert.Equal(t, models.VariantList{
		{Size: "Small", Price: 1550, InStock: true},
		{Size: "Big", Price: 2450, InStock: false},
	}, merged.SizeVariants)

	// The base record's category and image carry over.
	assert.Equal(t, "brass-products", parent.CategoryID)
	assert.Equal(t, "https://cdn.example.com/horse-box.jpg", parent.ImageURL)
	assert.Equal(t, []string{"horse-box-small", "horse-box-big"}, removed)
	mockRepo.AssertExpectations(t)
}

func TestMergeService_MergeRejectsEmptyGroup(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewMergeService(mockRepo)

	merged, err := service.Merge(services.VariantGroup{BaseID: "empty"})
	assert.Error(t, err)
	assert.Nil(t, merged)
	mockRepo.AssertNotCalled(t, "MergeVariants", mock.Anything, mock.Anything)
}

func TestMergeService_MergeFailsWhenVariantMissing(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewMergeService(mockRepo)

	mockRepo.On("GetByID", "horse-box-small").Return(nil, fmt.Errorf("product with ID horse-box-small not found"))

	merged, err := service.Merge(horseBoxGroup())
	assert.Error(t, err)
	assert.Nil(t, merged)
	mockRepo.AssertNotCalled(t, "MergeVariants", mock.Anything, mock.Anything)
}

func TestMergeService_MergePropagatesStoreError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewMergeService(mockRepo)

	variant := &models.Product{ID: "horse-box-small", Price: 1550}
	mockRepo.On("GetByID", "horse-box-small").Return(variant, nil)
	mockRepo.On("GetByID", "horse-box-big").Return(variant, nil)
	mockRepo.On("MergeVariants", mock.Anything, mock.Anything).Return(fmt.Errorf("database error")).Once()

	merged, err := service.Merge(horseBoxGroup())
	assert.Error(t, err)
	assert.Nil(t, merged)
	mockRepo.AssertExpectations(t)
}
