package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mkoh-dev/tutorbot/internal/ports"
)

// Transport adapts the bot API to the messaging surface the tutor
// consumes.
type Transport struct {
	bot *tgbotapi.BotAPI
}

func NewTransport(bot *tgbotapi.BotAPI) *Transport {
	return &Transport{bot: bot}
}

func (t *Transport) SendText(_ context.Context, chatID int64, text string) error {
	_, err := t.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (t *Transport) SendAudio(_ context.Context, chatID int64, audio []byte) (ports.MessageRef, error) {
	msg := tgbotapi.NewAudio(chatID, tgbotapi.FileBytes{
		Name:  "pronunciation.mp3",
		Bytes: audio,
	})

	sent, err := t.bot.Send(msg)
	if err != nil {
		return ports.MessageRef{}, err
	}

	return ports.MessageRef{
		ChatID:    chatID,
		MessageID: sent.MessageID,
	}, nil
}

func (t *Transport) DeleteMessage(_ context.Context, ref ports.MessageRef) error {
	_, err := t.bot.Request(tgbotapi.NewDeleteMessage(ref.ChatID, ref.MessageID))
	return err
}

func (t *Transport) SendMenu(_ context.Context, chatID int64, title string, options []ports.MenuOption) error {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, opt := range options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(opt.Label, opt.ID),
		))
	}

	msg := tgbotapi.NewMessage(chatID, title)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	_, err := t.bot.Send(msg)
	return err
}
