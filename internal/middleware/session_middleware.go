package middleware

import (
	"etalase/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the name of the http-only cookie carrying the signed
// session token.
const SessionCookie = "admin_session"

// SessionGate protects the admin routes: requests without a valid session
// token are redirected to the login path.
func SessionGate(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}

		if err := authService.VerifyToken(token); err != nil {
			return c.Redirect("/login", fiber.StatusFound)
		}

		return c.Next()
	}
}

// RedirectAuthenticated sends already-authenticated requests on the login
// path back to the console home.
func RedirectAuthenticated(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token != "" && authService.VerifyToken(token) == nil {
			return c.Redirect("/", fiber.StatusFound)
		}
		return c.Next()
	}
}
