package services

import "errors"

// Validation errors returned by the reconciliation layer. They are checked
// before any write, so a failed validation never leaves a partial row behind.
// Anything else coming out of a service wraps the underlying store error.
var (
	// ErrMissingImage is returned when a product is saved without a main image URL.
	ErrMissingImage = errors.New("missing_image")
	// ErrMissingName is returned when a category is created or renamed with a blank name.
	ErrMissingName = errors.New("missing_name")
	// ErrDuplicateID is returned when a category's derived slug already exists.
	ErrDuplicateID = errors.New("duplicate_id")
	// ErrMissingFields is returned when feedback lacks a customer name or title.
	ErrMissingFields = errors.New("missing_fields")
	// ErrCategoryInUse is returned when deleting a category that products still reference.
	ErrCategoryInUse = errors.New("category_in_use")
)
