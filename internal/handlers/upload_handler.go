package handlers

import (
	"log"
	"time"

	"etalase/pkg/imagekit"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler issues signed parameters for direct browser uploads to the
// image CDN.
type UploadHandler struct {
	client *imagekit.Client
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(client *imagekit.Client) *UploadHandler {
	return &UploadHandler{
		client: client,
	}
}

// RegisterRoutes registers the upload routes with the Fiber app.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	uploadRoutes := router.Group("/upload")
	uploadRoutes.Get("/auth", h.HandleAuth)
}

// HandleAuth returns short-lived signed upload parameters as JSON.
func (h *UploadHandler) HandleAuth(c *fiber.Ctx) error {
	params, err := h.client.AuthParams(time.Now())
	if err != nil {
		log.Printf("Upload authentication failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Authentication failed",
		})
	}
	return c.JSON(params)
}
