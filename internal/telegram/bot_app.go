package telegram

import (
	"log"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mkoh-dev/tutorbot/internal/tutor"
)

type BotApp struct {
	Tutor *tutor.Service

	bot *tgbotapi.BotAPI
}

func NewBotApp() *BotApp {
	return &BotApp{}
}

func (app *BotApp) InitBot() error {
	token := os.Getenv("BOT_TOKEN")

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return err
	}

	app.bot = bot
	log.Printf("[bot_app] ready: @%s", bot.Self.UserName)
	return nil
}

func (app *BotApp) Bot() *tgbotapi.BotAPI {
	return app.bot
}

// Run starts the update loop. Blocks until the updates channel closes.
func (app *BotApp) Run() {
	app.runBotLoop()
}
