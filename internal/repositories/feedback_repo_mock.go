package repositories

import (
	"fmt"
	"sort"
	"sync"

	"etalase/internal/models"
)

// MockFeedbackRepository is an in-memory implementation of FeedbackRepository.
type MockFeedbackRepository struct {
	feedback map[string]models.Feedback
	mu       sync.RWMutex
}

// NewMockFeedbackRepository creates a new instance of MockFeedbackRepository.
func NewMockFeedbackRepository() *MockFeedbackRepository {
	return &MockFeedbackRepository{
		feedback: make(map[string]models.Feedback),
	}
}

// GetAll returns all feedback ordered by creation time, newest first.
func (r *MockFeedbackRepository) GetAll() ([]models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	feedbackList := make([]models.Feedback, 0, len(r.feedback))
	for _, f := range r.feedback {
		feedbackList = append(feedbackList, f)
	}
	sort.Slice(feedbackList, func(i, j int) bool {
		return feedbackList[i].CreatedAt.After(feedbackList[j].CreatedAt)
	})
	return feedbackList, nil
}

// GetByID returns a feedback entry by its ID.
func (r *MockFeedbackRepository) GetByID(id string) (*models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	feedback, ok := r.feedback[id]
	if !ok {
		return nil, fmt.Errorf("feedback with ID %s not found", id)
	}
	return &feedback, nil
}

// Create adds a new feedback entry.
func (r *MockFeedbackRepository) Create(feedback *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.feedback[feedback.ID] = *feedback
	return nil
}

// Update modifies an existing feedback entry, keeping the stored creation
// time so the entry holds its place in the newest-first listing.
func (r *MockFeedbackRepository) Update(feedback *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.feedback[feedback.ID]
	if !ok {
		return fmt.Errorf("feedback with ID %s not found for update", feedback.ID)
	}
	feedback.CreatedAt = existing.CreatedAt
	r.feedback[feedback.ID] = *feedback
	return nil
}

// Delete removes a feedback entry by its ID.
func (r *MockFeedbackRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.feedback[id]
	if !ok {
		return fmt.Errorf("feedback with ID %s not found for deletion", id)
	}
	delete(r.feedback, id)
	return nil
}
