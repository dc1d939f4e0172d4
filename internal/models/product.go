package models

import "time"

// MaxGalleryImages bounds the secondary image gallery of a product.
const MaxGalleryImages = 3

// MaxFeatures bounds the free-text feature list of a product.
const MaxFeatures = 7

// SizeVariant is one physical size option of a product that carries
// size-specific price and stock information.
type SizeVariant struct {
	Size    string  `json:"size"`
	Price   float64 `json:"price"`
	InStock bool    `json:"in_stock"`
}

// Product represents a catalog entry managed through the admin console.
// Deletes are hard deletes: the console has no trash can to restore from.
type Product struct {
	ID            string      `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Title         string      `json:"title" validate:"required"`
	Description   string      `json:"description"`
	CategoryID    string      `json:"category_id" gorm:"index;type:varchar(64)"`
	Price         float64     `json:"price"`
	OriginalPrice float64     `json:"original_price"`
	ImageURL      string      `json:"image_url" validate:"required"`
	Images        StringList  `json:"images" gorm:"type:text"`
	Features      StringList  `json:"features" gorm:"type:text"`
	InStock       bool        `json:"in_stock"`
	FastDelivery  bool        `json:"fast_delivery"`
	Rating        float64     `json:"rating"`
	Reviews       int         `json:"reviews"`
	HasSizes      bool        `json:"has_sizes"`
	SizeVariants  VariantList `json:"size_variants" gorm:"type:text"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
