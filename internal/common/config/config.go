package config

import (
	"fmt"
	"os"
	"time"

	"github.com/jokeboard/server/internal/common/constants"
	commonerrors "github.com/jokeboard/server/internal/common/errors"
)

type Config struct {
	HTTPPort       string
	DatabaseURL    string
	SessionSecret  string
	SecureCookies  bool
	RequestTimeout time.Duration
}

// Load reads process configuration from the environment. A missing or short
// SESSION_SECRET is a startup failure, never a runtime one.
func Load() (Config, error) {
	sessionSecret, err := mustEnv("SESSION_SECRET")
	if err != nil {
		return Config{}, err
	}

	if len(sessionSecret) < constants.SessionSecretMinLength {
		return Config{}, fmt.Errorf("%w: got %d bytes", commonerrors.ErrInvalidSessionSecret, len(sessionSecret))
	}

	databaseURL, err := mustEnv("DATABASE_URL")
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		DatabaseURL:    databaseURL,
		SessionSecret:  sessionSecret,
		SecureCookies:  getEnv("APP_ENV", "development") == "production",
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", 5*time.Second),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", commonerrors.ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
