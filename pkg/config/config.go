package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the solver service and CLI
// ⭐ SSOT: every environment variable is read here and nowhere else
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Solver
	Solver SolverConfig

	// API
	RateLimit RateLimitConfig

	// Challenge page fetching
	Fetch FetchConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// SolverConfig holds solver catalog settings
type SolverConfig struct {
	PresetsFile string // optional YAML catalog overriding the embedded presets
	MaxPlayers  int    // largest squad size a request may ask for
}

// RateLimitConfig holds the token bucket settings of the HTTP API
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// FetchConfig holds the HTTP client settings used to download challenge pages
type FetchConfig struct {
	Timeout    time.Duration
	MaxRetries int
	RPS        float64
}

// Load reads configuration from environment variables
// ⭐ SSOT: only this function calls os.Getenv()
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8089"),
		Env:  getEnv("ENV", "development"),

		Solver: SolverConfig{
			PresetsFile: getEnv("PRESETS_FILE", ""),
			MaxPlayers:  getEnvAsInt("SOLVER_MAX_PLAYERS", 23),
		},

		RateLimit: RateLimitConfig{
			RPS:   getEnvAsFloat("API_RATE_LIMIT_RPS", 20),
			Burst: getEnvAsInt("API_RATE_LIMIT_BURST", 40),
		},

		Fetch: FetchConfig{
			Timeout:    time.Duration(getEnvAsInt("FETCH_TIMEOUT_SEC", 15)) * time.Second,
			MaxRetries: getEnvAsInt("FETCH_MAX_RETRIES", 3),
			RPS:        getEnvAsFloat("FETCH_RATE_LIMIT_RPS", 2),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Solver.MaxPlayers <= 0 {
		return fmt.Errorf("SOLVER_MAX_PLAYERS must be > 0")
	}

	if c.RateLimit.RPS <= 0 {
		return fmt.Errorf("API_RATE_LIMIT_RPS must be > 0")
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("API_RATE_LIMIT_BURST must be > 0")
	}

	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT_SEC must be > 0")
	}
	if c.Fetch.MaxRetries < 0 {
		return fmt.Errorf("FETCH_MAX_RETRIES must be >= 0")
	}
	if c.Fetch.RPS <= 0 {
		return fmt.Errorf("FETCH_RATE_LIMIT_RPS must be > 0")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{".env"}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}
