package telegram

import (
	"context"
	"fmt"

	"github.com/NasaVasa/radarbot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const HelpText = `Commands:
/help - show this help
/status - last radar pass summary
/run - trigger a radar pass now

The radar runs on its own schedule; signals arrive in this chat.
`

// StatusProvider exposes the most recent radar pass to the bot.
type StatusProvider interface {
	LastRun() (domain.RunReport, bool)
}

// RunTrigger starts an on-demand radar pass.
type RunTrigger interface {
	RunOnce(ctx context.Context) error
}

type Handlers struct {
	status  StatusProvider
	trigger RunTrigger
	logger  *zap.Logger
}

func NewHandlers(status StatusProvider, trigger RunTrigger, logger *zap.Logger) *Handlers {
	return &Handlers{status: status, trigger: trigger, logger: logger}
}

func (h *Handlers) HandleUpdate(ctx context.Context, api *tgbotapi.BotAPI, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	if !update.Message.IsCommand() {
		return
	}

	command := update.Message.Command()
	chatID := update.Message.Chat.ID

	h.logger.Info(
		"telegram command received",
		zap.Int64("chat_id", chatID),
		zap.Int64("telegram_user_id", update.Message.From.ID),
		zap.String("command", command),
	)

	switch command {
	case "start", "help":
		h.reply(api, chatID, HelpText)
	case "status":
		h.reply(api, chatID, h.statusText())
	case "run":
		h.reply(api, chatID, "Radar pass starting.")
		if err := h.trigger.RunOnce(ctx); err != nil {
			h.logger.Warn("manual radar pass failed", zap.Error(err))
			h.reply(api, chatID, "Radar pass failed. See logs.")
			return
		}
		h.reply(api, chatID, h.statusText())
	default:
		h.reply(api, chatID, "Unknown command.\n\n"+HelpText)
	}
}

func (h *Handlers) statusText() string {
	report, ok := h.status.LastRun()
	if !ok {
		return "No radar pass has completed yet."
	}
	return fmt.Sprintf(
		"Last pass: %s\nState: %s\nSent: %d (raise %d, quality %d, usage %d)",
		report.StartedAt.UTC().Format("2006-01-02 15:04 UTC"),
		report.State,
		report.Sent,
		report.RaiseSent,
		report.QualitySent,
		report.UsageSent,
	)
}

func (h *Handlers) reply(api *tgbotapi.BotAPI, chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := api.Send(msg); err != nil {
		h.logger.Warn("failed to send reply", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
