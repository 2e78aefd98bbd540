package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the server needs from its environment. The
// signing secret lives here and is handed to the token service at
// construction, never read from the environment at call sites.
type Config struct {
	Port         string
	Env          string // "development" or "production"
	DatabaseURL  string
	JWTSecret    string
	BaseURL      string // used to build magic links
	DragonAPIURL string

	// Mail
	ResendAPIKey string
	MailFrom     string

	// Logging
	LogLevel   string `yaml:"log_level"`
	LogFile    string `yaml:"log_file"`
	LogConsole bool   `yaml:"log_console"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present. JWT_SECRET is required: without it
// every token the server ever issued would be unverifiable, so startup fails.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("APP_ENV", "development"),
		DatabaseURL:  getEnv("DATABASE_URL", "postgres://localhost:5432/dragon?sslmode=disable"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:8080"),
		DragonAPIURL: getEnv("DRAGON_API_URL", ""),
		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		MailFrom:     getEnv("MAIL_FROM", "Project Dragon <onboarding@resend.dev>"),
		LogLevel:     getEnv("DRAGON_LOG_LEVEL", "INFO"),
		LogFile:      getEnv("DRAGON_LOG_FILE", ""),
		LogConsole:   getEnvAsBool("DRAGON_LOG_CONSOLE", true),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// Optional YAML file for logging overrides
	if path := os.Getenv("DRAGON_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in production mode. Session
// cookies are secure-flagged only in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
