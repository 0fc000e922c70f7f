package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment
type Config struct {
	Port           string
	UseMemoryStore bool
	Environment    string

	DBUser                 string
	DBPass                 string
	DBName                 string
	DBHost                 string
	DBPort                 string
	InstanceConnectionName string

	MongoURI string
	MongoDB  string

	TwilioAccountSID         string
	TwilioAuthToken          string
	TwilioWhatsAppFrom       string
	DisableWebhookValidation bool

	ReplyDelay time.Duration
	SessionTTL time.Duration
}

// LoadEnvFiles loads .env for local development. On Cloud Run the environment
// is already populated and nothing is read from disk.
func LoadEnvFiles() {
	if os.Getenv("INSTANCE_CONNECTION_NAME") != "" {
		return
	}
	if err := godotenv.Load(".env"); err != nil {
		if err := godotenv.Load("environments/.env.development"); err != nil {
			log.Println("⚠️  No .env file found - checking environment variables")
		}
	}
}

// Load reads the configuration from environment variables
func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		UseMemoryStore: getBool("USE_MEMORY_STORE", false),
		Environment:    getEnv("ENVIRONMENT", "development"),

		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPass:                 os.Getenv("DB_PASS"),
		DBName:                 getEnv("DB_NAME", "eduguide"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		InstanceConnectionName: os.Getenv("INSTANCE_CONNECTION_NAME"),

		MongoURI: os.Getenv("MONGO_URI"),
		MongoDB:  getEnv("MONGO_DB", "eduguide"),

		TwilioAccountSID:         os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:          os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppFrom:       os.Getenv("TWILIO_WHATSAPP_FROM"),
		DisableWebhookValidation: getBool("DISABLE_WEBHOOK_VALIDATION", false),

		ReplyDelay: time.Duration(getInt("REPLY_DELAY_MS", 500)) * time.Millisecond,
		SessionTTL: time.Duration(getInt("SESSION_TTL_MINUTES", 30)) * time.Minute,
	}
}

// TwilioConfigured reports whether WhatsApp messages can be sent
func (c Config) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioWhatsAppFrom != ""
}

// IsProduction reports whether the server runs on Cloud Run or is flagged as production
func (c Config) IsProduction() bool {
	return c.InstanceConnectionName != "" || strings.EqualFold(c.Environment, "production")
}

// EnvironmentLabel is the human readable environment name
func (c Config) EnvironmentLabel() string {
	if c.InstanceConnectionName != "" {
		return "Production (Cloud Run)"
	}
	if c.IsProduction() {
		return "Production"
	}
	return "Development (Local)"
}

// StorageLabel is the human readable storage backend name
func (c Config) StorageLabel() string {
	if c.UseMemoryStore {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func getInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
