package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Notifier pushes radar signals to the configured chat.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

func NewNotifier(api *tgbotapi.BotAPI, chatID int64, logger *zap.Logger) *Notifier {
	return &Notifier{api: api, chatID: chatID, logger: logger}
}

func (n *Notifier) Notify(text string) error {
	n.logger.Info("telegram notify send", zap.Int64("chat_id", n.chatID))
	msg := tgbotapi.NewMessage(n.chatID, text)
	_, err := n.api.Send(msg)
	if err != nil {
		n.logger.Warn("failed to notify", zap.Error(err))
	}
	return err
}
