package routes

import (
	"log"

	"github.com/Ananth-NQI/eduguide-backend/internal/config"
	"github.com/Ananth-NQI/eduguide-backend/internal/handlers"
	"github.com/Ananth-NQI/eduguide-backend/internal/middleware"
	"github.com/Ananth-NQI/eduguide-backend/internal/services"
	"github.com/Ananth-NQI/eduguide-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp creates the fiber app with the shared middleware stack
func NewApp(version string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "EduGuide Backend v" + version,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	return app
}

// Dependencies are the wired services the routes expose
type Dependencies struct {
	Store        storage.Store
	Sessions     *services.SessionManager
	Chat         *services.ChatService
	Onboarding   *services.OnboardingService
	Booking      *services.BookingService
	Applications *services.ApplicationService
	Colleges     *services.CollegeService
	Notifier     services.Notifier // nil when Twilio is not configured
	Health       *handlers.HealthHandler
}

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/", deps.Health.Info)
	app.Get("/health", deps.Health.Check)

	chatHandler := handlers.NewChatHandler(deps.Sessions, deps.Chat)
	onboardingHandler := handlers.NewOnboardingHandler(deps.Onboarding)
	bookingHandler := handlers.NewBookingHandler(deps.Booking)
	applicationHandler := handlers.NewApplicationHandler(deps.Applications)
	collegeHandler := handlers.NewCollegeHandler(deps.Colleges)
	whatsappHandler := handlers.NewWhatsAppHandler(deps.Notifier)

	api := app.Group("/api")

	// ========== CONVERSATION ==========
	api.Get("/quick-actions", chatHandler.ListQuickActions)
	api.Get("/booking/options", bookingHandler.Options)

	sessions := api.Group("/sessions")
	sessions.Post("/", chatHandler.CreateSession)
	sessions.Get("/:id", chatHandler.GetSession)
	sessions.Delete("/:id", chatHandler.EndSession)
	sessions.Put("/:id/panels/:panel", chatHandler.SetPanel)

	sessions.Post("/:id/messages", chatHandler.SendMessage)
	sessions.Get("/:id/messages", chatHandler.Transcript)
	sessions.Get("/:id/archive", chatHandler.ArchivedTranscript)
	sessions.Post("/:id/quick-actions/:action", chatHandler.QuickAction)

	sessions.Put("/:id/onboarding", onboardingHandler.Update)
	sessions.Post("/:id/onboarding/next", onboardingHandler.Next)
	sessions.Post("/:id/onboarding/back", onboardingHandler.Back)
	sessions.Post("/:id/onboarding/close", onboardingHandler.Close)

	sessions.Post("/:id/booking/open", bookingHandler.Open)
	sessions.Put("/:id/booking", bookingHandler.Select)
	sessions.Post("/:id/booking/confirm", bookingHandler.Confirm)
	sessions.Post("/:id/booking/close", bookingHandler.Close)

	sessions.Post("/:id/applications/open", applicationHandler.Open)
	sessions.Post("/:id/applications/close", applicationHandler.Close)

	sessions.Post("/:id/colleges/open", collegeHandler.Open)
	sessions.Post("/:id/colleges/close", collegeHandler.Close)
	sessions.Post("/:id/colleges/:collegeId/details", collegeHandler.ViewDetails)
	sessions.Post("/:id/colleges/:collegeId/apply", collegeHandler.Apply)

	// Registered ahead of the record routes so they win over /:id
	api.Get("/colleges/top", collegeHandler.Top)
	api.Post("/applications/lookup", applicationHandler.Lookup)

	// ========== RECORDS ==========
	handlers.RegisterRecords(api, deps.Store)

	// ========== WEBHOOK ROUTES ==========
	webhooks := app.Group("/webhook")
	if !cfg.IsProduction() || cfg.DisableWebhookValidation {
		webhooks.Post("/whatsapp", whatsappHandler.HandleWebhook)
		log.Println("⚠️  WhatsApp webhook validation DISABLED")
	} else {
		webhooks.Post("/whatsapp", middleware.ValidateTwilioSignature(cfg.TwilioAuthToken), whatsappHandler.HandleWebhook)
	}

	// ========== TEST ROUTES (Development Only) ==========
	if !cfg.IsProduction() {
		app.Post("/test/whatsapp", whatsappHandler.HandleTestWebhook)
	}
}
