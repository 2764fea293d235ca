package telegram

// SendResult is the Bot API acknowledgement for a sendMessage call.
type SendResult struct {
	OK        bool   `json:"ok"`
	MessageID int    `json:"message_id"`
	ChatID    int64  `json:"chat_id"`
	Raw       []byte `json:"-"`
}

// Client defines an interface for delivering a message via a Telegram bot.
// The token is passed per call so no credentials outlive an invocation.
type Client interface {
	SendMessage(token, chatID, text string) (*SendResult, error)
}
