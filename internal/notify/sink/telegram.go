package sink

import (
	"context"

	"webhook-relay/pkg/telegram"
)

type Telegram struct {
	bot    *telegram.Bot
	chatID string
}

func NewTelegram(bot *telegram.Bot, chatID string) *Telegram {
	return &Telegram{bot: bot, chatID: chatID}
}

func (t *Telegram) Name() string { return "telegram" }

func (t *Telegram) Notify(ctx context.Context, text string) error {
	return t.bot.SendMessage(ctx, t.chatID, text)
}
