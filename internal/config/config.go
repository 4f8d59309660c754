package config

import (
	"encoding/hex"
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	JWTSecret    string
	// PhoneKey is the decoded AES-256 key used to encrypt phone numbers.
	PhoneKey []byte
	TokenTTL time.Duration
	AppEnv   string
}

// Load loads configuration from environment variables (a .env file is
// honored when present) and validates it.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "1h"))
	if err != nil {
		return nil, err
	}

	phoneKeyHex := os.Getenv("PHONE_SECRET_KEY")
	if err := validation.Validate(phoneKeyHex,
		validation.Required, validation.Length(64, 64), is.Hexadecimal); err != nil {
		return nil, validation.Errors{"PHONE_SECRET_KEY": err}
	}
	phoneKey, err := hex.DecodeString(phoneKeyHex)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./notes.db"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		PhoneKey:     phoneKey,
		TokenTTL:     ttl,
		AppEnv:       getEnv("APP_ENV", "development"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.DatabasePath, validation.Required),
		validation.Field(&c.JWTSecret, validation.Required, validation.Length(16, 0)),
		validation.Field(&c.TokenTTL, validation.Required),
		validation.Field(&c.AppEnv, validation.In("development", "production")),
	)
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
