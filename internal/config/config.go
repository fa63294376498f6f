package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// DefaultJWTSecret is used when neither JWT_SECRET nor SESSION_SECRET is set.
const DefaultJWTSecret = "fallback-secret-key"

// Config holds the application configuration.
type Config struct {
	ServerPort int
	AppEnv     string
	LogLevel   string

	JWTSecret          string
	JWTSecretDefaulted bool

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	BcryptCost        int

	CORSAllowedOrigins []string
	CacheTTL           time.Duration
	DatabasePath       string // Empty keeps everything in memory
	DigestSchedule     string
}

// Load loads configuration from environment variables or sets defaults.
// A .env file in the working directory is read first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
	}

	costStr := getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost))
	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST %q: %w", costStr, err)
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	ttlStr := getEnv("CACHE_TTL", "5m")
	ttl, err := parseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL %q: %w", ttlStr, err)
	}

	secret := getEnv("JWT_SECRET", getEnv("SESSION_SECRET", ""))
	defaulted := secret == ""
	if defaulted {
		secret = DefaultJWTSecret
	}

	return &Config{
		ServerPort:         port,
		AppEnv:             getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		JWTSecret:          secret,
		JWTSecretDefaulted: defaulted,
		AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
		BcryptCost:         cost,
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		CacheTTL:           ttl,
		DatabasePath:       getEnv("DATABASE_PATH", ""),
		DigestSchedule:     getEnv("DIGEST_SCHEDULE", "@hourly"),
	}, nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// parseDuration accepts Go durations and a bare "0".
func parseDuration(s string) (time.Duration, error) {
	if s == "0" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
