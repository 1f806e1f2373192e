// Package config loads runtime settings from the environment, an optional
// .env file and an optional config.yaml.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvProduction is the APP_ENV value that enables production behaviour.
const EnvProduction = "production"

// Config holds the application settings.
type Config struct {
	AppPort        string
	AppEnv         string
	LogLevel       string
	DatabaseDriver string
	DatabaseDSN    string
	JWTSecret      string
	RabbitMQURL    string
	RabbitMQQueue  string
}

// IsProduction reports whether the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// DevJWTSecret signs tokens outside production when JWT_SECRET is unset.
const DevJWTSecret = "dev-secret-change-me"

// ErrMissingSecret is returned when production runs without JWT_SECRET.
var ErrMissingSecret = errors.New("JWT_SECRET must be set in production")

// Load reads configuration. Values from the process environment win over
// .env, which wins over config.yaml, which wins over defaults.
func Load() (Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "portfolio.db")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "contact_messages")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	v.AutomaticEnv()

	cfg := Config{
		AppPort:        v.GetString("APP_PORT"),
		AppEnv:         strings.ToLower(v.GetString("APP_ENV")),
		LogLevel:       v.GetString("LOG_LEVEL"),
		DatabaseDriver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		RabbitMQQueue:  v.GetString("RABBITMQ_QUEUE"),
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return Config{}, ErrMissingSecret
		}
		cfg.JWTSecret = DevJWTSecret
	}
	return cfg, nil
}
