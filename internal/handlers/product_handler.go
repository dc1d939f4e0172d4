package handlers

import (
	"errors"
	"log"
	"strings"

	"etalase/internal/services"
	"etalase/internal/view"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/:id", h.HandleGetByID)
	productRoutes.Post("/", h.HandleSave)
	productRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList retrieves all products ordered by title. An optional ?q=
// parameter applies the same case-insensitive title filter the console's
// search box uses.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}

	if q := c.Query("q"); q != "" {
		products = view.FilterByTitle(products, q)
	}

	return c.JSON(products)
}

// HandleGetByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.service.GetProductByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleSave reconciles a submitted product form into an insert (no ID) or a
// full-record update (ID present).
func (h *ProductHandler) HandleSave(c *fiber.Ctx) error {
	var form services.ProductForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing product form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	isUpdate := strings.TrimSpace(form.ID) != ""

	product, err := h.service.Save(form)
	if err != nil {
		if errors.Is(err, services.ErrMissingImage) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "missing_image",
			})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error saving product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save product",
			"error":   err.Error(),
		})
	}

	status := fiber.StatusCreated
	if isUpdate {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(product)
}

// HandleDelete removes a product by its ID.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error deleting product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
