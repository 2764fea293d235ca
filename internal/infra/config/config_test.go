package config_test

import (
	"errors"
	"testing"

	"apt_subscription_bot/internal/infra/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T, token, chatID, apiKey string) {
	t.Helper()
	t.Setenv("TELEGRAM_TOKEN", token)
	t.Setenv("TELEGRAM_CHAT_ID", chatID)
	t.Setenv("API_KEY", apiKey)
}

func TestLoadCredentials_AllPresent(t *testing.T) {
	setCredentials(t, "tok", "-100123", "key")

	creds, err := config.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "tok", creds.TelegramToken)
	assert.Equal(t, "-100123", creds.TelegramChatID)
	assert.Equal(t, "key", creds.APIKey)
}

func TestLoadCredentials_Missing(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		chatID  string
		apiKey  string
		wantKey string
	}{
		{"token", "", "chat", "key", "TELEGRAM_TOKEN"},
		{"chat id", "tok", "", "key", "TELEGRAM_CHAT_ID"},
		{"api key", "tok", "chat", "", "API_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setCredentials(t, tt.token, tt.chatID, tt.apiKey)

			creds, err := config.LoadCredentials()
			assert.Nil(t, creds)
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrMissingEnv))

			var missing *config.MissingEnvError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.wantKey, missing.Key)
			assert.Equal(t, tt.wantKey+" is not set", err.Error())
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_NormalizesCase(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "9090", cfg.Port)
}
