package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Policy   PolicyConfig
	Upload   UploadConfig
	Chat     ChatConfig
	Reminder ReminderConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds identity token configuration. Donor and Organization
// sessions share one secret but carry different lifetimes.
type JWTConfig struct {
	Secret         string
	DonorTokenDays int
	OrgTokenDays   int
}

// PolicyConfig holds tunable domain policy values
type PolicyConfig struct {
	// LivesSavedPerDonation multiplies the donation count on donor stats
	LivesSavedPerDonation int
	// EligibilityWindowDays is the wait between donations
	EligibilityWindowDays int
	// Inventory status thresholds: units below Critical -> "Critical",
	// below Low -> "Low", otherwise "Stable"
	InventoryCriticalBelow int
	InventoryLowBelow      int
	// EnforceCampOwnership restricts check-in to the camp's owning
	// organization when true. Off by default to match the historical
	// permissive behavior.
	EnforceCampOwnership bool
}

// UploadConfig holds medical report upload configuration
type UploadConfig struct {
	Dir       string
	MaxSizeMB int64
}

// ChatConfig holds the chat assistant configuration
type ChatConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// ReminderConfig holds the camp reminder cron configuration
type ReminderConfig struct {
	Enabled  bool
	Schedule string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "5000"),
		Database: loadDatabaseConfig(),
		JWT: JWTConfig{
			Secret:         getEnv("JWT_SECRET", "default_secret"),
			DonorTokenDays: getEnvInt("DONOR_TOKEN_DAYS", 7),
			OrgTokenDays:   getEnvInt("ORG_TOKEN_DAYS", 30),
		},
		Policy: PolicyConfig{
			LivesSavedPerDonation:  getEnvInt("POLICY_LIVES_SAVED_PER_DONATION", 3),
			EligibilityWindowDays:  getEnvInt("POLICY_ELIGIBILITY_WINDOW_DAYS", 90),
			InventoryCriticalBelow: getEnvInt("POLICY_INVENTORY_CRITICAL_BELOW", 5),
			InventoryLowBelow:      getEnvInt("POLICY_INVENTORY_LOW_BELOW", 15),
			EnforceCampOwnership:   getEnvBool("POLICY_ENFORCE_CAMP_OWNERSHIP", false),
		},
		Upload: UploadConfig{
			Dir:       getEnv("UPLOAD_DIR", "uploads"),
			MaxSizeMB: int64(getEnvInt("UPLOAD_MAX_SIZE_MB", 10)),
		},
		Chat: ChatConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("OPENAI_MODEL", "gpt-4.1-mini"),
		},
		Reminder: ReminderConfig{
			Enabled:  getEnvBool("CAMP_REMINDER_ENABLED", true),
			Schedule: getEnv("CAMP_REMINDER_SCHEDULE", "30 8 * * *"),
		},
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config
func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		User:     getEnv("DB_USER", "root"),
		Password: getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "donorly"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://donorly.org"
	}
	return origins
}
