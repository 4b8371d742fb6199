package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// runBotLoop — главный цикл получения апдейтов
func (app *BotApp) runBotLoop() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := app.bot.GetUpdatesChan(u)
	log.Printf("[bot_loop] started username=@%s", app.bot.Self.UserName)

	for update := range updates {
		fromID := extractSenderID(update)
		if fromID == 0 {
			continue
		}

		log.Printf("[bot_touch] fromTG=%d updateID=%d", fromID, update.UpdateID)

		// one goroutine per update; session store serializes per chat
		go app.dispatchUpdate(context.Background(), update, fromID)
	}
}

func (app *BotApp) dispatchUpdate(ctx context.Context, update tgbotapi.Update, fromID int64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[bot_loop] panic in update %d: %v", update.UpdateID, r)
		}
	}()

	switch {
	case update.Message != nil:
		app.sendTyping(update.Message.Chat.ID)
		app.handleMessage(ctx, update.Message, fromID)
	case update.CallbackQuery != nil:
		app.handleCallback(ctx, update.CallbackQuery, fromID)
	}
}

func (app *BotApp) handleMessage(ctx context.Context, msg *tgbotapi.Message, fromID int64) {
	switch {
	case msg.IsCommand():
		app.handleCommand(ctx, msg, fromID)
	case msg.Voice != nil:
		app.handleVoice(ctx, msg, fromID)
	case msg.Text != "":
		app.handleText(ctx, msg, fromID)
	default:
		log.Printf("[bot_loop] unsupported message kind chat=%d", msg.Chat.ID)
	}
}

// sendTyping — «печатает…» пока обрабатываем событие
func (app *BotApp) sendTyping(chatID int64) {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := app.bot.Request(action); err != nil {
		log.Printf("[typing] fail chat=%d: %v", chatID, err)
	}
}

func extractSenderID(u tgbotapi.Update) int64 {
	switch {
	case u.Message != nil && u.Message.From != nil:
		return u.Message.From.ID
	case u.CallbackQuery != nil && u.CallbackQuery.From != nil:
		return u.CallbackQuery.From.ID
	default:
		return 0
	}
}
