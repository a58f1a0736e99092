package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Rides listing policy. "strict" keeps GET /rides admin-only,
// "open" leaves it unauthenticated.
const (
	RidesStrict = "strict"
	RidesOpen   = "open"
)

// Config holds all process-wide settings. Loaded once at startup and
// passed down explicitly; nothing here mutates after Load returns.
type Config struct {
	ServerAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string

	JWTSecret   string
	TokenTTL    time.Duration
	RidesAccess string
}

// Load reads .env (if present) and environment variables with defaults.
func Load() Config {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	ttlHours, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "72"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 72
	}

	access := getEnv("RIDES_ACCESS", RidesStrict)
	if access != RidesStrict && access != RidesOpen {
		log.Printf("Unknown RIDES_ACCESS %q – falling back to %q", access, RidesStrict)
		access = RidesStrict
	}

	return Config{
		ServerAddr: getEnv("SERVER_ADDR", "0.0.0.0:8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "mytaxi"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimezone: getEnv("DB_TIMEZONE", "UTC"),

		JWTSecret:   getEnv("JWT_SECRET", "supersecret"),
		TokenTTL:    time.Duration(ttlHours) * time.Hour,
		RidesAccess: access,
	}
}

// DSN builds the Postgres Data Source Name.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.DBTimezone,
	)
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
