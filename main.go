package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ananth-NQI/eduguide-backend/database"
	"github.com/Ananth-NQI/eduguide-backend/internal/config"
	"github.com/Ananth-NQI/eduguide-backend/internal/handlers"
	"github.com/Ananth-NQI/eduguide-backend/internal/jobs"
	"github.com/Ananth-NQI/eduguide-backend/internal/routes"
	"github.com/Ananth-NQI/eduguide-backend/internal/services"
	"github.com/Ananth-NQI/eduguide-backend/internal/storage"
)

const version = "1.0.0"

func main() {
	config.LoadEnvFiles()
	cfg := config.Load()

	// Initialize storage
	var store storage.Store
	var ping func() error

	if cfg.UseMemoryStore {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatal(err)
		}

		log.Println("🔄 Running database migrations...")
		if err := storage.AutoMigrate(db); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(db)
		ping = func() error { return database.Ping(db) }
		log.Println("✅ Using PostgreSQL database storage")
	}

	if err := storage.SeedCatalog(store); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	// Optional transcript archive
	var archive storage.TranscriptArchive
	if cfg.MongoURI != "" {
		mongoDB, err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Printf("⚠️  Transcript archive disabled: %v", err)
		} else {
			mongoArchive := storage.NewMongoTranscriptArchive(mongoDB.Collection("chat_messages"))
			if err := mongoArchive.EnsureIndexes(context.Background()); err != nil {
				log.Printf("⚠️  %v", err)
			}
			archive = mongoArchive
		}
	}

	// WhatsApp is optional; without it confirmations stay in the chat
	var notifier services.Notifier
	if cfg.TwilioConfigured() {
		twilioService, err := services.NewTwilioService(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppFrom)
		if err != nil {
			log.Fatal("Failed to initialize Twilio service:", err)
		}
		notifier = twilioService
		log.Println("✅ Twilio service initialized")
	} else {
		log.Println("⚠️  Twilio credentials not found - WhatsApp features will be limited")
	}

	// Initialize all services
	sessionManager := services.NewSessionManager(cfg.SessionTTL)
	templateService := services.NewTemplateService(notifier)
	chatService := services.NewChatService(store, sessionManager, templateService, archive, cfg.ReplyDelay)

	var reminderJob *jobs.ReminderJob
	if notifier != nil {
		reminderJob = jobs.NewReminderJob(store, templateService)
		reminderJob.Start()
	}

	health := handlers.NewHealthHandler(version, cfg.EnvironmentLabel(), cfg.StorageLabel(), ping, sessionManager)
	health.WhatsApp = notifier != nil
	health.Archive = archive != nil

	app := routes.NewApp(version)
	routes.SetupRoutes(app, cfg, routes.Dependencies{
		Store:        store,
		Sessions:     sessionManager,
		Chat:         chatService,
		Onboarding:   services.NewOnboardingService(store, sessionManager, chatService),
		Booking:      services.NewBookingService(store, sessionManager, chatService, templateService),
		Applications: services.NewApplicationService(store, sessionManager),
		Colleges:     services.NewCollegeService(store, sessionManager, chatService, templateService),
		Notifier:     notifier,
		Health:       health,
	})

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		if reminderJob != nil {
			reminderJob.Stop()
		}
		sessionManager.Stop()
		database.DisconnectMongo()
		log.Println("⏹️  Shutting down server...")
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 EduGuide Backend starting on port %s", cfg.Port)
	log.Printf("📊 Storage: %s", cfg.StorageLabel())
	log.Printf("🌍 Environment: %s", cfg.EnvironmentLabel())
	log.Printf("📱 WhatsApp: %s", whatsAppStatus(notifier != nil))
	log.Printf("🗄️  Transcript archive: %v", archive != nil)
	log.Println("========================================")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func whatsAppStatus(configured bool) string {
	if configured {
		return "Configured"
	}
	return "Not configured"
}
