package telegram_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"apt_subscription_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage_PostsMarkdownMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":42,"chat":{"id":-100123}}}`)
	}))
	defer srv.Close()

	logger, hook := test.NewNullLogger()
	client := telegram.NewTelebotAdapter(srv.URL, srv.Client(), logrus.NewEntry(logger))

	res, err := client.SendMessage("123:abc", "-100123", "*hi*")
	require.NoError(t, err)

	assert.Equal(t, "/bot123:abc/sendMessage", gotPath)
	assert.Equal(t, map[string]string{
		"chat_id":    "-100123",
		"text":       "*hi*",
		"parse_mode": "Markdown",
	}, gotBody)

	assert.True(t, res.OK)
	assert.Equal(t, 42, res.MessageID)
	assert.Equal(t, int64(-100123), res.ChatID)

	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, `"message_id":42`)
}

func TestSendMessage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)
	}))
	defer srv.Close()

	logger, hook := test.NewNullLogger()
	client := telegram.NewTelebotAdapter(srv.URL, srv.Client(), logrus.NewEntry(logger))

	res, err := client.SendMessage("123:abc", "nope", "text")
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, errors.Is(err, telegram.ErrSend))
	assert.Contains(t, err.Error(), "chat not found")
	// The raw response is still logged for diagnosis.
	assert.Len(t, hook.AllEntries(), 1)
}

func TestSendMessage_TransportErrorRedactsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	logger, _ := test.NewNullLogger()
	client := telegram.NewTelebotAdapter(url, nil, logrus.NewEntry(logger))

	_, err := client.SendMessage("999:supersecret", "1", "text")
	require.Error(t, err)
	assert.True(t, errors.Is(err, telegram.ErrSend))
	assert.NotContains(t, err.Error(), "supersecret")
}
