package services

import (
	"strings"

	"etalase/internal/models"
	"etalase/internal/repositories"

	"github.com/google/uuid"
)

// FeedbackService reconciles customer feedback form submissions.
type FeedbackService struct {
	repo      repositories.FeedbackRepository
	publisher EventPublisher
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(repo repositories.FeedbackRepository, publisher EventPublisher) *FeedbackService {
	return &FeedbackService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllFeedback retrieves all feedback, newest first.
func (s *FeedbackService) GetAllFeedback() ([]models.Feedback, error) {
	return s.repo.GetAll()
}

// Save validates and normalizes a submitted feedback form. Customer name and
// title must survive trimming; blank optional fields persist as NULL. An ID
// in the form selects a full update, otherwise a prefixed ID is generated.
func (s *FeedbackService) Save(form FeedbackForm) (*models.Feedback, error) {
	customerName := strings.TrimSpace(form.CustomerName)
	title := strings.TrimSpace(form.Title)
	if customerName == "" || title == "" {
		return nil, ErrMissingFields
	}

	stars := parseIntOr(form.Stars, 5)
	if stars < 1 {
		stars = 1
	}
	if stars > 5 {
		stars = 5
	}

	feedback := models.Feedback{
		ID:           strings.TrimSpace(form.ID),
		CustomerName: customerName,
		Title:        title,
		Description:  optionalString(form.Description),
		Location:     optionalString(form.Location),
		Stars:        stars,
		ImageURL:     optionalString(form.Image),
	}

	if feedback.ID != "" {
		if err := s.repo.Update(&feedback); err != nil {
			return nil, err
		}
	} else {
		feedback.ID = "fb_" + uuid.New().String()
		if err := s.repo.Create(&feedback); err != nil {
			return nil, err
		}
	}

	publishEvent(s.publisher, "catalog.feedback.saved", map[string]interface{}{
		"id": feedback.ID,
	})

	return &feedback, nil
}

// Delete removes a feedback entry by its ID.
func (s *FeedbackService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	publishEvent(s.publisher, "catalog.feedback.deleted", map[string]interface{}{
		"id": id,
	})
	return nil
}
