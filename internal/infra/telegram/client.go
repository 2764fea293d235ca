// internal/infra/telegram/client.go
package telegram

import (
	domainTelegram "apt_subscription_bot/internal/domain/telegram"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const defaultTimeout = 30 * time.Second

var (
	ErrSend   = fmt.Errorf("telegram sendMessage failed")
	ErrDecode = fmt.Errorf("telegram response could not be decoded")
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
// A bot is built per call in offline mode, so no getMe round trip happens and
// the token is not retained.
type TelebotAdapter struct {
	apiURL     string
	httpClient *http.Client
	logger     *logrus.Entry
}

// NewTelebotAdapter targets apiURL (telebot.DefaultApiURL in production).
// A nil httpClient gets a 30s timeout.
func NewTelebotAdapter(apiURL string, httpClient *http.Client, logger *logrus.Entry) *TelebotAdapter {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &TelebotAdapter{apiURL: apiURL, httpClient: httpClient, logger: logger}
}

type sendMessageResponse struct {
	OK     bool `json:"ok"`
	Result struct {
		MessageID int `json:"message_id"`
		Chat      struct {
			ID int64 `json:"id"`
		} `json:"chat"`
	} `json:"result"`
}

// SendMessage posts text to chatID with Markdown rendering and returns the parsed
// acknowledgement. The raw response body is logged as-is.
func (tba *TelebotAdapter) SendMessage(token, chatID, text string) (*domainTelegram.SendResult, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		URL:     tba.apiURL,
		Token:   token,
		Client:  tba.httpClient,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: creating bot: %s", ErrSend, redact(err, token))
	}

	params := map[string]string{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": string(telebot.ModeMarkdown),
	}
	raw, err := bot.Raw("sendMessage", params)
	if len(raw) > 0 {
		tba.logger.WithField("chat_id", chatID).Infof("Telegram response: %s", raw)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSend, redact(err, token))
	}

	var resp sendMessageResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &domainTelegram.SendResult{
		OK:        resp.OK,
		MessageID: resp.Result.MessageID,
		ChatID:    resp.Result.Chat.ID,
		Raw:       raw,
	}, nil
}

// redact strips the bot token, which transport errors echo through the request URL.
func redact(err error, token string) string {
	if token == "" {
		return err.Error()
	}
	return strings.ReplaceAll(err.Error(), token, "<redacted>")
}
