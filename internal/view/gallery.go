package view

import (
	"encoding/json"
	"errors"
	"fmt"

	"etalase/internal/models"
)

// ErrGalleryFull is reported when a fourth image is added to the gallery.
var ErrGalleryFull = errors.New("gallery limit reached")

// Gallery is the ordered list of secondary image URLs on the product form.
// It is bounded by models.MaxGalleryImages and serialized into the hidden
// form field consumed at submit time.
type Gallery struct {
	urls []string
}

// NewGallery creates a Gallery from existing URLs, truncating past the limit.
func NewGallery(urls []string) *Gallery {
	if len(urls) > models.MaxGalleryImages {
		urls = urls[:models.MaxGalleryImages]
	}
	g := &Gallery{urls: make([]string, len(urls))}
	copy(g.urls, urls)
	return g
}

// Add appends an uploaded image URL. At the limit it reports ErrGalleryFull
// and leaves the list untouched.
func (g *Gallery) Add(url string) error {
	if len(g.urls) >= models.MaxGalleryImages {
		return ErrGalleryFull
	}
	g.urls = append(g.urls, url)
	return nil
}

// Remove deletes the image at the given position.
func (g *Gallery) Remove(index int) error {
	if index < 0 || index >= len(g.urls) {
		return fmt.Errorf("gallery index %d out of range", index)
	}
	g.urls = append(g.urls[:index], g.urls[index+1:]...)
	return nil
}

// Move relocates the image at source to the target position, shifting the
// images in between. The result is a permutation of the previous list: no
// image is duplicated or dropped.
func (g *Gallery) Move(source, target int) error {
	if source < 0 || source >= len(g.urls) {
		return fmt.Errorf("gallery source index %d out of range", source)
	}
	if target < 0 || target >= len(g.urls) {
		return fmt.Errorf("gallery target index %d out of range", target)
	}
	if source == target {
		return nil
	}

	moved := g.urls[source]
	g.urls = append(g.urls[:source], g.urls[source+1:]...)

	rest := make([]string, 0, len(g.urls)+1)
	rest = append(rest, g.urls[:target]...)
	rest = append(rest, moved)
	rest = append(rest, g.urls[target:]...)
	g.urls = rest
	return nil
}

// URLs returns a copy of the current ordering.
func (g *Gallery) URLs() []string {
	out := make([]string, len(g.urls))
	copy(out, g.urls)
	return out
}

// Len returns the number of images in the gallery.
func (g *Gallery) Len() int {
	return len(g.urls)
}

// Serialize renders the ordering as the JSON value of the hidden form field.
func (g *Gallery) Serialize() (string, error) {
	data, err := json.Marshal(g.urls)
	if err != nil {
		return "", fmt.Errorf("failed to serialize gallery: %w", err)
	}
	return string(data), nil
}
