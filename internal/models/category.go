package models

import "time"

// DefaultCategoryIcon is the glyph assigned to categories created without one.
const DefaultCategoryIcon = "📦"

// Category groups products. Its ID is a slug derived from the name at
// creation time and is immutable afterwards.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
