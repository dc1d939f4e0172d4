package handlers

import (
	"errors"
	"log"
	"strings"

	"etalase/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleList)
	categoryRoutes.Post("/", h.HandleCreate)
	categoryRoutes.Patch("/:id", h.HandleRename)
	categoryRoutes.Delete("/:id", h.HandleDelete)
}

// CategoryRequest represents the submitted category form.
type CategoryRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

// HandleList retrieves all categories ordered by ID.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Printf("Error getting all categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(categories)
}

// HandleCreate creates a category with a slug ID derived from its name.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing category form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	category, err := h.service.Create(req.Name, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrMissingName) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "missing_name",
			})
		}
		if errors.Is(err, services.ErrDuplicateID) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "duplicate_id",
			})
		}
		log.Printf("Error creating category: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create category",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleRename updates a category's name. The ID is immutable.
func (h *CategoryHandler) HandleRename(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	id := c.Params("id")
	if err := h.service.Rename(id, req.Name); err != nil {
		if errors.Is(err, services.ErrMissingName) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "missing_name",
			})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
			})
		}
		log.Printf("Error renaming category %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not rename category",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Category renamed successfully",
	})
}

// HandleDelete removes a category. Deletion is refused while products still
// reference it.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrCategoryInUse) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "category_in_use",
			})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
			})
		}
		log.Printf("Error deleting category %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete category",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Category deleted successfully",
	})
}
