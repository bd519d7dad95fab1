// internal/infra/telegram/client.go
package telegram

import (
	"context"
	"fmt"

	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the delivery.Client interface using the
// gopkg.in/telebot.v3 library. Reminders are delivered as messages to the
// configured user chat.
type TelebotAdapter struct {
	bot    *telebot.Bot
	chatID int64
}

func NewTelebotAdapter(b *telebot.Bot, chatID int64) *TelebotAdapter {
	return &TelebotAdapter{bot: b, chatID: chatID}
}

// RequestPermission reports whether delivery is possible at all: a bot
// instance must exist and a user chat must be configured. No interactive
// prompt is involved on this transport.
func (tba *TelebotAdapter) RequestPermission(_ context.Context) (bool, error) {
	return tba.bot != nil && tba.chatID != 0, nil
}

// Deliver sends one reminder to the user chat, title bolded above the body.
func (tba *TelebotAdapter) Deliver(_ context.Context, title, body string) error {
	if tba.bot == nil || tba.chatID == 0 {
		return fmt.Errorf("telegram delivery is not configured")
	}

	recipient := &telebot.User{ID: tba.chatID}
	text := fmt.Sprintf("*%s*\n%s", title, body)
	_, err := tba.bot.Send(recipient, text, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	return err
}
