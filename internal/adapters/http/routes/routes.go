package routes

import (
	"donorly/internal/adapters/http/handlers"
	"donorly/internal/adapters/http/middleware"
	"donorly/internal/adapters/persistence/repositories"
	"donorly/internal/config"
	"donorly/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application and returns the cron
// service so the caller can stop it on shutdown
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) *services.CronService {
	// Initialize repositories
	donorRepo := repositories.NewDonorRepository(db)
	orgRepo := repositories.NewOrganizationRepository(db)
	campRepo := repositories.NewCampRepository(db)
	donationRepo := repositories.NewDonationRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// Initialize services
	identityService := services.NewIdentityService(donorRepo, orgRepo, cfg)
	authService := services.NewAuthService(donorRepo, cfg)
	orgService := services.NewOrgService(orgRepo, cfg)
	campService := services.NewCampService(campRepo, donorRepo, donationRepo, cfg)
	donationService := services.NewDonationService(donationRepo, cfg)
	inventoryService := services.NewInventoryService(inventoryRepo, cfg)
	notificationService := services.NewNotificationService(notificationRepo, campRepo)
	certificateService := services.NewCertificateService(campRepo, donorRepo)
	chatService := services.NewChatService(cfg)
	cronService := services.NewCronService(campService, notificationService, cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, donationService)
	orgHandler := handlers.NewOrgHandler(orgService)
	campHandler := handlers.NewCampHandler(campService, donationService, certificateService, cfg)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Uploaded medical reports
	app.Static("/uploads", cfg.Upload.Dir)

	protect := middleware.Protect(identityService)

	api := app.Group("/api")

	// Donor auth routes
	authRoutes := api.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, protect)

	// Organization routes
	orgRoutes := api.Group("/org")
	setupOrgRoutes(orgRoutes, orgHandler)

	// Camp routes
	campRoutes := api.Group("/camps")
	setupCampRoutes(campRoutes, campHandler, protect)

	// Inventory routes (organization only)
	inventoryRoutes := api.Group("/inventory")
	inventoryRoutes.Use(protect, middleware.RequireOrganization())
	setupInventoryRoutes(inventoryRoutes, inventoryHandler)

	// Notification routes
	notificationRoutes := api.Group("/notifications")
	notificationRoutes.Use(protect)
	setupNotificationRoutes(notificationRoutes, notificationHandler)

	// Chat assistant (public)
	api.Post("/chat", chatHandler.Ask)

	return cronService
}

// setupAuthRoutes configures donor authentication and profile routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, protect fiber.Handler) {
	// Public routes
	router.Post("/register", handler.Register)
	router.Post("/login", handler.Login)

	// Protected routes (donor only)
	router.Get("/me", protect, middleware.RequireDonor(), handler.Me)
	router.Put("/profile", protect, middleware.RequireDonor(), handler.UpdateProfile)
	router.Get("/stats", protect, middleware.RequireDonor(), handler.Stats)
	router.Get("/donations", protect, middleware.RequireDonor(), handler.Donations)
}

// setupOrgRoutes configures organization authentication routes. The login
// path keeps its historical /auth segment.
func setupOrgRoutes(router fiber.Router, handler *handlers.OrgHandler) {
	router.Post("/register", handler.Register)
	router.Post("/auth/login", handler.Login)
}

// setupCampRoutes configures camp lifecycle routes
func setupCampRoutes(router fiber.Router, handler *handlers.CampHandler, protect fiber.Handler) {
	// Public routes
	router.Get("/", handler.List)
	router.Get("/:campId/certificate/:donorId", handler.Certificate)
	router.Get("/:id", handler.Detail)

	// Organization routes
	router.Post("/", protect, middleware.RequireOrganization(), handler.Create)
	router.Put("/:id/checkin", protect, middleware.RequireOrganization(), handler.CheckIn)
	router.Post("/upload-report", protect, middleware.RequireOrganization(), handler.UploadReport)

	// Donor routes
	router.Post("/:id/register", protect, middleware.RequireDonor(), handler.Register)
}

// setupInventoryRoutes configures inventory routes
func setupInventoryRoutes(router fiber.Router, handler *handlers.InventoryHandler) {
	router.Get("/", handler.Get)
	router.Put("/", handler.Update)
}

// setupNotificationRoutes configures notification routes
func setupNotificationRoutes(router fiber.Router, handler *handlers.NotificationHandler) {
	// Organization fan-out
	router.Post("/send-camp-alert", middleware.RequireOrganization(), handler.SendAlert)

	// Donor inbox
	router.Get("/", middleware.RequireDonor(), handler.List)
	router.Put("/:id/read", middleware.RequireDonor(), handler.MarkRead)
}
