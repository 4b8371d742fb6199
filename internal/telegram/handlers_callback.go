package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, fromID int64) {
	// всегда отвечаем Telegram, иначе клиент крутит спиннер
	app.bot.Request(tgbotapi.NewCallback(cb.ID, ""))

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	log.Printf("[callback] chat=%d data=%s", chatID, cb.Data)

	if !app.Tutor.OnMenuSelected(ctx, chatID, fromID, cb.Data) {
		return
	}

	// выбор принят — убираем кнопки с меню
	app.bot.Request(tgbotapi.NewEditMessageReplyMarkup(
		chatID,
		cb.Message.MessageID,
		tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}},
	))
}
