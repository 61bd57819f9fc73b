package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseStorageBucket  string

	// Database
	DatabaseURL string

	// Admin gate: a shared password verified server-side and exchanged
	// for a signed session token. AdminPasswordHash (bcrypt) takes
	// precedence over the plain AdminPassword when both are set.
	AdminPassword     string
	AdminPasswordHash string
	AdminJWTSecret    string

	// WhatsApp
	AdminWhatsAppNumber string

	// Server
	Port        string
	Environment string
	BaseURL     string
	DataDir     string
}

func Load() (*Config, error) {
	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "order-photos"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminJWTSecret:    getEnv("ADMIN_JWT_SECRET", ""),

		AdminWhatsAppNumber: getEnv("ADMIN_WHATSAPP_NUMBER", "233539210458"),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		DataDir:     getEnv("DATA_DIR", "data"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabasePublishableKey == "" {
		return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
	}
	if c.AdminJWTSecret == "" {
		return fmt.Errorf("ADMIN_JWT_SECRET is required")
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
