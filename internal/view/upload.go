package view

import (
	"errors"
	"sync"
)

// ErrUploadInFlight is reported when an upload starts while another one for
// the same field is still outstanding.
var ErrUploadInFlight = errors.New("upload already in progress")

// UploadTracker mirrors the browser-side state of one image upload field.
// While an upload is outstanding the upload affordance is disabled and form
// submissions that depend on the resulting URL must be blocked.
type UploadTracker struct {
	mu       sync.Mutex
	inFlight bool
	url      string
}

// Begin marks an upload as outstanding.
func (t *UploadTracker) Begin() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inFlight {
		return ErrUploadInFlight
	}
	t.inFlight = true
	return nil
}

// Succeed records the CDN URL and re-enables the field.
func (t *UploadTracker) Succeed(url string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.url = url
	t.inFlight = false
}

// Fail clears the in-flight flag so the field is not left permanently
// disabled after an upload error.
func (t *UploadTracker) Fail() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.inFlight = false
}

// Pending reports whether an upload is still outstanding.
func (t *UploadTracker) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.inFlight
}

// URL returns the last successfully uploaded URL, if any.
func (t *UploadTracker) URL() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.url
}
