package handlers

import (
	"log"
	"time"

	"etalase/internal/middleware"
	"etalase/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the login/logout flow of the session gate.
type AuthHandler struct {
	authService   *services.AuthService
	validate      *validator.Validate
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler. secureCookies should be true in
// production-like deployments so the session cookie is HTTPS-only.
func NewAuthHandler(authService *services.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		validate:      validator.New(),
		secureCookies: secureCookies,
	}
}

// RegisterRoutes registers the session routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/login", middleware.RedirectAuthenticated(h.authService), h.HandleLoginPage)
	router.Post("/login", h.HandleLogin)
	router.Post("/logout", h.HandleLogout)
}

// LoginRequest represents the submitted login form.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// HandleLoginPage serves the login state. The console frontend renders the
// form; this endpoint only echoes a pending error indicator, if any.
func (h *AuthHandler) HandleLoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"error": c.Query("error"),
	})
}

// HandleLogin authenticates the admin and sets the session cookie. A
// credential mismatch redirects back to the login path with an error
// indicator in the URL and sets no cookie.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Redirect("/login?error=invalid", fiber.StatusFound)
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Redirect("/login?error=invalid", fiber.StatusFound)
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Login failed: %v", err)
		return c.Redirect("/login?error=invalid", fiber.StatusFound)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.authService.TokenTTL()),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect("/", fiber.StatusFound)
}

// HandleLogout clears the session cookie and redirects to the login path,
// regardless of whether the request was authenticated.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect("/login", fiber.StatusFound)
}
