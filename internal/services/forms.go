package services

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ProductForm is the flat, stringly-typed field set submitted by the product
// form. Every value arrives as text and is coerced during reconciliation.
type ProductForm struct {
	ID            string `json:"id" form:"id"`
	Title         string `json:"title" form:"title"`
	Category      string `json:"category" form:"category"`
	Price         string `json:"price" form:"price"`
	OriginalPrice string `json:"original_price" form:"originalPrice"`
	Description   string `json:"description" form:"description"`
	Image         string `json:"image" form:"image"`
	Images        string `json:"images" form:"images"`
	Features      string `json:"features" form:"features"`
	InStock       string `json:"in_stock" form:"in_stock"`
	FastDelivery  string `json:"fast_delivery" form:"fast_delivery"`
	Rating        string `json:"rating" form:"rating"`
	Reviews       string `json:"reviews" form:"reviews"`
}

// FeedbackForm is the flat field set submitted by the feedback form.
type FeedbackForm struct {
	ID           string `json:"id" form:"id"`
	CustomerName string `json:"customer_name" form:"customer_name"`
	Title        string `json:"title" form:"title"`
	Description  string `json:"description" form:"description"`
	Location     string `json:"location" form:"location"`
	Stars        string `json:"stars" form:"stars"`
	Image        string `json:"image" form:"image"`
}

// parseFloatOr coerces a submitted numeric field, falling back when the
// value is blank or unparsable.
func parseFloatOr(value string, fallback float64) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

// parseIntOr coerces a submitted integer field with a fallback.
func parseIntOr(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

// parseCheckbox interprets HTML checkbox submissions ("on") as well as the
// boolean spellings JSON clients tend to send.
func parseCheckbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}

// parseStringList decodes a JSON-encoded list field. Malformed input is
// treated as an empty list rather than a hard failure.
func parseStringList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(value), &list); err != nil {
		return nil
	}
	return list
}

// stripBlanks removes entries that are empty after trimming, preserving the
// order of the rest.
func stripBlanks(list []string) []string {
	out := make([]string, 0, len(list))
	for _, entry := range list {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// optionalString maps a blank-after-trim form value to NULL.
func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
