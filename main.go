package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"etalase/internal/config"
	"etalase/internal/handlers"
	"etalase/internal/middleware"
	"etalase/internal/models"
	"etalase/internal/repositories"
	"etalase/internal/services"
	"etalase/pkg/events"
	"etalase/pkg/imagekit"
)

func main() {
	cfg := config.Load()

	// --- Initialize Database (GORM) ---
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Product{}, &models.Category{}, &models.Feedback{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Initialize Event Publisher (optional) ---
	// The console works without a broker; catalog events are only published
	// when RABBITMQ_URL is configured.
	var publisher services.EventPublisher
	var mqClient *events.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = events.NewClient(events.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set; catalog events disabled")
	}

	// --- Initialize Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	feedbackRepo := repositories.NewGORMFeedbackRepository(db)

	// --- Initialize Services ---
	productService := services.NewProductService(productRepo, publisher)
	categoryService := services.NewCategoryService(categoryRepo, productRepo, publisher)
	feedbackService := services.NewFeedbackService(feedbackRepo, publisher)
	authService := services.NewAuthService(cfg.AdminEmail, cfg.AdminPassword, cfg.SessionSecret, cfg.SessionTTL)

	// --- Initialize Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	authHandler := handlers.NewAuthHandler(authService, cfg.IsProduction())
	uploadHandler := handlers.NewUploadHandler(imagekit.NewClient(imagekit.Config{
		PublicKey:   cfg.ImageKitPublicKey,
		PrivateKey:  cfg.ImageKitPrivateKey,
		URLEndpoint: cfg.ImageKitURLEndpoint,
	}))

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- Routes ---
	// Session routes stay outside the gate; everything else requires a
	// valid session cookie.
	authHandler.RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	apiV1 := app.Group("/api/v1", middleware.SessionGate(authService))

	productHandler.RegisterRoutes(apiV1)
	categoryHandler.RegisterRoutes(apiV1)
	feedbackHandler.RegisterRoutes(apiV1)
	uploadHandler.RegisterRoutes(apiV1)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
