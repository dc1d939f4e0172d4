package handlers

import (
	"errors"
	"log"
	"strings"

	"etalase/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FeedbackHandler handles HTTP requests for customer feedback.
type FeedbackHandler struct {
	service *services.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(service *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
	}
}

// RegisterRoutes registers the feedback routes with the Fiber app.
func (h *FeedbackHandler) RegisterRoutes(router fiber.Router) {
	feedbackRoutes := router.Group("/feedback")
	feedbackRoutes.Get("/", h.HandleList)
	feedbackRoutes.Post("/", h.HandleSave)
	feedbackRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList retrieves all feedback, newest first.
func (h *FeedbackHandler) HandleList(c *fiber.Ctx) error {
	feedback, err := h.service.GetAllFeedback()
	if err != nil {
		log.Printf("Error getting all feedback: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve feedback",
			"error":   err.Error(),
		})
	}
	return c.JSON(feedback)
}

// HandleSave reconciles a submitted feedback form into an insert or update.
func (h *FeedbackHandler) HandleSave(c *fiber.Ctx) error {
	var form services.FeedbackForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing feedback form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	isUpdate := strings.TrimSpace(form.ID) != ""

	feedback, err := h.service.Save(form)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "missing_fields",
			})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Feedback not found",
			})
		}
		log.Printf("Error saving feedback: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save feedback",
			"error":   err.Error(),
		})
	}

	status := fiber.StatusCreated
	if isUpdate {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(feedback)
}

// HandleDelete removes a feedback entry by its ID.
func (h *FeedbackHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Feedback not found",
			})
		}
		log.Printf("Error deleting feedback %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete feedback",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Feedback deleted successfully",
	})
}
