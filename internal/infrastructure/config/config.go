package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

// Config holds application configuration values.
type Config struct {
	Port                string
	AppEnv              string
	StorageDriver       string
	MongoURI            string
	MongoDBName         string
	RedisURL            string
	JWTSecret           string
	AccessTokenExpiry   time.Duration
	CORSAllowedOrigins  []string
	RateLimitRPS        float64
	ContactRateLimitRPS float64
	NewsCacheTTL        time.Duration
	LogLevel            string
	SeedOnStart         bool
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		AppEnv:              getEnv("APP_ENV", "development"),
		StorageDriver:       strings.ToLower(getEnv("STORAGE_DRIVER", StorageMongo)),
		MongoURI:            getEnv("MONGODB_URI", ""),
		MongoDBName:         getEnv("MONGODB_DB_NAME", ""),
		RedisURL:            getEnv("REDIS_URL", ""),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		AccessTokenExpiry:   time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 60)),
		CORSAllowedOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		RateLimitRPS:        getEnvAsFloat("RATE_LIMIT_RPS", 10),
		ContactRateLimitRPS: getEnvAsFloat("CONTACT_RATE_LIMIT_RPS", 1),
		NewsCacheTTL:        time.Minute * time.Duration(getEnvAsInt("NEWS_CACHE_TTL_MINUTES", 10)),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		SeedOnStart:         getEnvAsBool("SEED_ON_START", false),
	}
}

// Validate reports the settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET environment variable not set"))
	}
	switch c.StorageDriver {
	case StorageMemory:
	case StorageMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("MONGODB_URI environment variable not set"))
		}
		if c.MongoDBName == "" {
			errs = append(errs, errors.New("MONGODB_DB_NAME environment variable not set"))
		}
	default:
		errs = append(errs, errors.New("STORAGE_DRIVER must be mongo or memory"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil && value > 0 {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}

// comma separated, blanks dropped
func getEnvAsList(name string, fallback []string) []string {
	valStr := getEnv(name, "")
	if valStr == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
