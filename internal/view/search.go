package view

import (
	"strings"
	"sync"
	"time"

	"etalase/internal/models"
)

// SearchDebounce is the quiet period applied to search keystrokes.
const SearchDebounce = 300 * time.Millisecond

// FilterByTitle returns the products whose title contains the query,
// case-insensitively. An empty query returns the input unchanged.
func FilterByTitle(products []models.Product, query string) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ProductIndex maintains the full product set alongside the currently
// visible, search-filtered view. It is a display cache: it can diverge from
// the store until Reload is called with fresh rows.
type ProductIndex struct {
	mu       sync.Mutex
	all      []models.Product
	visible  []models.Product
	query    string
	debounce *Debouncer
}

// NewProductIndex creates a ProductIndex over the given rows, fully visible.
func NewProductIndex(products []models.Product) *ProductIndex {
	idx := &ProductIndex{
		debounce: NewDebouncer(SearchDebounce),
	}
	idx.Reload(products)
	return idx
}

// SetQuery records a keystroke. The filtered view is recomputed only after
// the quiet period passes without further keystrokes.
func (idx *ProductIndex) SetQuery(query string) {
	idx.mu.Lock()
	idx.query = query
	idx.mu.Unlock()

	idx.debounce.Trigger(idx.recompute)
}

func (idx *ProductIndex) recompute() {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.visible = FilterByTitle(idx.all, idx.query)
}

// Visible returns the currently displayed products.
func (idx *ProductIndex) Visible() []models.Product {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	out := make([]models.Product, len(idx.visible))
	copy(out, idx.visible)
	return out
}

// Remove drops a product from the local view immediately, without waiting
// for the store round trip (optimistic delete).
func (idx *ProductIndex) Remove(id string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.all = removeByID(idx.all, id)
	idx.visible = removeByID(idx.visible, id)
}

// Reload replaces the cached rows with a fresh load from the store and
// reapplies the current query without debouncing.
func (idx *ProductIndex) Reload(products []models.Product) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.all = make([]models.Product, len(products))
	copy(idx.all, products)
	idx.visible = FilterByTitle(idx.all, idx.query)
}

// removeByID builds a fresh slice. The visible view can share a backing
// array with the full set when no query is active, so compacting in place
// would corrupt whichever slice is filtered second.
func removeByID(products []models.Product, id string) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
