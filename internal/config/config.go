package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port string

	AIProvider   string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
	AITimeout    time.Duration
	AIMaxRetries uint64

	CacheTTL time.Duration

	// PostgresURL is optional; when empty generation logs are not stored.
	PostgresURL string

	LogLevel  string
	LogFormat string

	CORSAllowedOrigins []string
	// RateLimitPerMinute caps generate calls per client IP; 0 disables it.
	RateLimitPerMinute int
}

// Load reads a .env file when present and then the process environment.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnvWithDefault("PORT", "5000"),
		AIProvider:   strings.ToLower(getEnvWithDefault("AI_PROVIDER", "gemini")),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini"),
		PostgresURL:  os.Getenv("POSTGRES_URL"),
		LogLevel:     getEnvWithDefault("LOG_LEVEL", "info"),
		LogFormat:    getEnvWithDefault("LOG_FORMAT", "json"),
	}

	var err error
	if cfg.AITimeout, err = getDurationWithDefault("AI_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getDurationWithDefault("CACHE_TTL", time.Hour); err != nil {
		return nil, err
	}
	retries := getEnvWithDefault("AI_MAX_RETRIES", "2")
	if cfg.AIMaxRetries, err = strconv.ParseUint(retries, 10, 32); err != nil {
		return nil, fmt.Errorf("invalid AI_MAX_RETRIES %q: %w", retries, err)
	}

	rate := getEnvWithDefault("RATE_LIMIT_PER_MINUTE", "30")
	if cfg.RateLimitPerMinute, err = strconv.Atoi(rate); err != nil || cfg.RateLimitPerMinute < 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE %q", rate)
	}

	for _, origin := range strings.Split(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", c.CacheTTL)
	}
	if c.AITimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive, got %s", c.AITimeout)
	}
	switch c.AIProvider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when using Gemini provider")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when using OpenAI provider")
		}
	default:
		return fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", c.AIProvider)
	}
	return nil
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}
