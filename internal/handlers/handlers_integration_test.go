package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"etalase/internal/handlers"
	"etalase/internal/middleware"
	"etalase/internal/models"
	"etalase/internal/repositories"
	"etalase/internal/services"
	"etalase/pkg/imagekit"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestApp wires the full console against an in-memory SQLite database,
// mirroring the route layout in main.go.
func setupTestApp(t *testing.T) (*fiber.App, *services.AuthService) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Category{}, &models.Feedback{}))

	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	feedbackRepo := repositories.NewGORMFeedbackRepository(db)

	productService := services.NewProductService(productRepo, nil)
	categoryService := services.NewCategoryService(categoryRepo, productRepo, nil)
	feedbackService := services.NewFeedbackService(feedbackRepo, nil)
	authService := services.NewAuthService("admin@example.com", "hunter2", "test-secret", time.Hour)

	app := fiber.New()

	handlers.NewAuthHandler(authService, false).RegisterRoutes(app)

	apiV1 := app.Group("/api/v1", middleware.SessionGate(authService))
	handlers.NewProductHandler(productService).RegisterRoutes(apiV1)
	handlers.NewCategoryHandler(categoryService).RegisterRoutes(apiV1)
	handlers.NewFeedbackHandler(feedbackService).RegisterRoutes(apiV1)
	handlers.NewUploadHandler(imagekit.NewClient(imagekit.Config{
		PublicKey:   "public_test",
		PrivateKey:  "private_test",
		URLEndpoint: "https://ik.imagekit.io/test",
	})).RegisterRoutes(apiV1)

	return app, authService
}

func loginCookie(t *testing.T, authService *services.AuthService) *http.Cookie {
	token, err := authService.Login("admin@example.com", "hunter2")
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sessionCookieFrom(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestLoginSuccessSetsCookieAndRedirectsHome(t *testing.T) {
	app, _ := setupTestApp(t)

	form := url.Values{"email": {"admin@example.com"}, "password": {"hunter2"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	cookie := sessionCookieFrom(resp)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestLoginFailureRedirectsWithErrorAndNoCookie(t *testing.T) {
	app, _ := setupTestApp(t)

	cases := []url.Values{
		{"email": {"admin@example.com"}, "password": {"wrong"}},
		{"email": {"other@example.com"}, "password": {"hunter2"}},
		{"email": {""}, "password": {""}},
	}

	for _, form := range cases {
		req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/login?error=invalid", resp.Header.Get("Location"))
		assert.Nil(t, sessionCookieFrom(resp))
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	app, authService := setupTestApp(t)

	req := httptest.NewRequest("POST", "/logout", nil)
	req.AddCookie(loginCookie(t, authService))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	cookie := sessionCookieFrom(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))

	// Logout without a session behaves the same.
	resp, err = app.Test(httptest.NewRequest("POST", "/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestLoginPageRedirectsAuthenticated(t *testing.T) {
	app, authService := setupTestApp(t)

	req := httptest.NewRequest("GET", "/login", nil)
	req.AddCookie(loginCookie(t, authService))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestSessionGateRedirectsAnonymous(t *testing.T) {
	app, _ := setupTestApp(t)

	paths := []string{"/api/v1/products/", "/api/v1/categories/", "/api/v1/feedback/", "/api/v1/upload/auth"}
	for _, path := range paths {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, "path: %s", path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), "path: %s", path)
	}

	// A tampered token is treated the same as no token.
	req := httptest.NewRequest("GET", "/api/v1/products/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "garbage"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestProductLifecycle(t *testing.T) {
	app, authService := setupTestApp(t)
	cookie := loginCookie(t, authService)

	// Create.
	req := jsonRequest("POST", "/api/v1/products/", fiber.Map{
		"title":    "Antique Brass Horse Box",
		"category": "brass-products",
		"price":    "1550",
		"image":    "https://cdn.example.com/horse-box.jpg",
		"in_stock": "on",
	})
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1550.0, created.Price)

	// Update keeps the ID and returns 200.
	req = jsonRequest("POST", "/api/v1/products/", fiber.Map{
		"id":       created.ID,
		"title":    "Antique Brass Horse Box (Restored)",
		"category": "brass-products",
		"price":    "1650",
		"image":    "https://cdn.example.com/horse-box.jpg",
	})
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Search filter.
	req = httptest.NewRequest("GET", "/api/v1/products/?q=restored", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	var listed []models.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	assert.Len(t, listed, 1)

	req = httptest.NewRequest("GET", "/api/v1/products/?q=ceramic", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	assert.Empty(t, listed)

	// Delete, then the record is gone.
	req = httptest.NewRequest("DELETE", "/api/v1/products/"+created.ID, nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/v1/products/"+created.ID, nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProductSaveMissingImage(t *testing.T) {
	app, authService := setupTestApp(t)

	req := jsonRequest("POST", "/api/v1/products/", fiber.Map{
		"title":    "No Image",
		"category": "brass-products",
		"price":    "100",
		"image":    "   ",
	})
	req.AddCookie(loginCookie(t, authService))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "missing_image", body["error"])
}

func TestCategoryCreateAndDuplicate(t *testing.T) {
	app, authService := setupTestApp(t)
	cookie := loginCookie(t, authService)

	req := jsonRequest("POST", "/api/v1/categories/", fiber.Map{"name": "Brass Items!"})
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "brass-items", created.ID)

	// A name that slugifies to the same ID is refused.
	req = jsonRequest("POST", "/api/v1/categories/", fiber.Map{"name": "brass items"})
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "duplicate_id", body["error"])
}

func TestCategoryDeleteRefusedWhileReferenced(t *testing.T) {
	app, authService := setupTestApp(t)
	cookie := loginCookie(t, authService)

	req := jsonRequest("POST", "/api/v1/categories/", fiber.Map{"name": "Brass Products"})
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req = jsonRequest("POST", "/api/v1/products/", fiber.Map{
		"title":    "Brass Dhoopdani",
		"category": "brass-products",
		"price":    "450",
		"image":    "https://cdn.example.com/dhoopdani.jpg",
	})
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest("DELETE", "/api/v1/categories/brass-products", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "category_in_use", body["error"])
}

func TestFeedbackSaveValidation(t *testing.T) {
	app, authService := setupTestApp(t)
	cookie := loginCookie(t, authService)

	req := jsonRequest("POST", "/api/v1/feedback/", fiber.Map{
		"customer_name": "   ",
		"title":         "Great",
	})
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	req = jsonRequest("POST", "/api/v1/feedback/", fiber.Map{
		"customer_name": "Asha",
		"title":         "Beautiful craftsmanship",
		"stars":         "bogus",
	})
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Feedback
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.True(t, strings.HasPrefix(created.ID, "fb_"))
	assert.Equal(t, 5, created.Stars)
}

func TestUploadAuthReturnsSignedParams(t *testing.T) {
	app, authService := setupTestApp(t)

	req := httptest.NewRequest("GET", "/api/v1/upload/auth", nil)
	req.AddCookie(loginCookie(t, authService))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var params imagekit.AuthParams
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&params))
	assert.NotEmpty(t, params.Token)
	assert.NotEmpty(t, params.Signature)
	assert.Greater(t, params.Expire, time.Now().Unix())
}
