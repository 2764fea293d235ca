package config

import (
	"errors"
	"fmt"
	"os"
	"strings" // For LogLevel normalization

	"github.com/joho/godotenv"
)

// ErrMissingEnv is matched by every MissingEnvError via errors.Is.
var ErrMissingEnv = errors.New("required environment variable is not set")

// MissingEnvError reports a required variable that is absent or empty.
type MissingEnvError struct {
	Key string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("%s is not set", e.Key)
}

func (e *MissingEnvError) Is(target error) bool {
	return target == ErrMissingEnv
}

// AppConfig holds process-level settings read once at startup.
type AppConfig struct {
	LogLevel    string
	Environment string
	Port        string
}

// Credentials are the secrets one invocation needs. They are read fresh on every
// invocation and never cached.
type Credentials struct {
	TelegramToken  string
	TelegramChatID string
	APIKey         string
}

// Load reads process configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}

// LoadCredentials reads the three required secrets. The first missing one is reported.
func LoadCredentials() (*Credentials, error) {
	creds := &Credentials{}
	var err error

	if creds.TelegramToken, err = required("TELEGRAM_TOKEN"); err != nil {
		return nil, err
	}
	if creds.TelegramChatID, err = required("TELEGRAM_CHAT_ID"); err != nil {
		return nil, err
	}
	if creds.APIKey, err = required("API_KEY"); err != nil {
		return nil, err
	}

	return creds, nil
}

func required(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", &MissingEnvError{Key: key}
	}
	return v, nil
}
