package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleCommand(ctx context.Context, msg *tgbotapi.Message, fromID int64) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		app.Tutor.OnStart(ctx, chatID, fromID, firstName(msg))
	case "help":
		app.Tutor.OnHelp(ctx, chatID, fromID)
	default:
		log.Printf("[command] unknown /%s chat=%d", msg.Command(), chatID)
	}
}

func (app *BotApp) handleText(ctx context.Context, msg *tgbotapi.Message, fromID int64) {
	log.Printf("[text] start chat=%d", msg.Chat.ID)
	app.Tutor.OnText(ctx, msg.Chat.ID, fromID, firstName(msg), msg.Text)
	log.Printf("[text] done chat=%d", msg.Chat.ID)
}

func firstName(msg *tgbotapi.Message) string {
	if msg.From == nil {
		return ""
	}
	return msg.From.FirstName
}
