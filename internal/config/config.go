// Package config handles loading and validating runtime configuration for the
// Buddies Cup API. Configuration values (like the database URL and the shared
// trip passwords) are read from environment variables rather than being
// hardcoded, so the same binary runs in dev and production by swapping env vars.
package config

import (
	"os"

	// godotenv reads a .env file and loads its key=value pairs into the process
	// environment. Convenient in development; in production real env vars are used.
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Port          string // TCP port the HTTP server listens on (e.g., "8080")
	DatabaseURL   string // PostgreSQL connection string
	JWTSecret     string // HMAC secret for signing session tokens
	TripPassword  string // Shared password every trip participant uses to sign in
	AdminPassword string // Separate password that grants the admin role (lock/unlock, CRUD)
	Env           string // "development" or "production"
	LogLevel      string // logrus level name; empty = level derived from Env
}

// Load reads configuration from environment variables and returns a populated
// Config. A missing .env file is fine — production sets real env vars.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	return &Config{
		Port:          port,
		DatabaseURL:   os.Getenv("DATABASE_URL"),    // Required — server fails to start without it
		JWTSecret:     os.Getenv("JWT_SECRET"),      // Required — tokens are signed with this
		TripPassword:  os.Getenv("TRIP_PASSWORD"),   // Required — the group's shared sign-in
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),  // Required — commissioner access
		Env:           env,
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}
}
