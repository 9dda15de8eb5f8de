package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/paksr/MiniProject-Shoseki/internal/booking"
	"github.com/paksr/MiniProject-Shoseki/internal/penalty"
)

// TelegramNotifier pushes booking and penalty events to the staff chat.
// With an empty token it degrades to a no-op, so the rest of the app
// never has to check whether notifications are configured.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

var _ booking.Notifier = (*TelegramNotifier)(nil)
var _ penalty.Notifier = (*TelegramNotifier)(nil)

func NewTelegramNotifier(token string, chatID int64, log logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: log}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(_ context.Context, b *booking.Booking) {
	text := fmt.Sprintf(
		"*New booking request*\n\nFacility: %s\nDate: %s %s–%s\nPax: %d",
		b.FacilityName, b.Date, b.StartTime, b.EndTime, b.Pax,
	)
	n.send(text)
}

func (n *TelegramNotifier) NotifyBookingDecided(_ context.Context, b *booking.Booking) {
	text := fmt.Sprintf(
		"*Booking %s*\n\nFacility: %s\nDate: %s %s–%s",
		b.Status, b.FacilityName, b.Date, b.StartTime, b.EndTime,
	)
	n.send(text)
}

func (n *TelegramNotifier) NotifyPenaltyIssued(_ context.Context, p *penalty.Penalty) {
	text := fmt.Sprintf(
		"*Penalty issued*\n\nAmount: %.2f\nReason: %s",
		p.Amount, p.Reason,
	)
	n.send(text)
}

func (n *TelegramNotifier) send(text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.String("error", err.Error()),
		)
	}
}
