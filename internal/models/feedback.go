package models

import "time"

// Feedback is a customer review shown on the storefront. Description,
// location and image are optional and stored as NULL when absent.
type Feedback struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	CustomerName string    `json:"customer_name" validate:"required"`
	Title        string    `json:"title" validate:"required"`
	Description  *string   `json:"description"`
	Location     *string   `json:"location"`
	Stars        int       `json:"stars"`
	ImageURL     *string   `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
