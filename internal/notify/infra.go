package notify

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Infra sends failures to the admin chat. The bot is attached after
// it has been initialized; until then (or when no admin chat is
// configured) notifications are logged and dropped.
type Infra struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
}

func NewInfra(adminChatID int64) *Infra {
	return &Infra{adminChatID: adminChatID}
}

// SetBot — позволяет передать бота ПОСЛЕ того, как он инициализировался
func (i *Infra) SetBot(bot *tgbotapi.BotAPI) {
	i.bot = bot
}

func (i *Infra) Notify(ctx context.Context, err error, details string) error {
	if i.bot == nil || i.adminChatID == 0 {
		log.Printf("[notify] dropped (no admin chat): err=%v details=%s", err, details)
		return nil
	}

	text := fmt.Sprintf(
		"❗ Bot error\n\nError: %v\n\nDetails: %s",
		err,
		details,
	)

	if _, sendErr := i.bot.Send(tgbotapi.NewMessage(i.adminChatID, text)); sendErr != nil {
		log.Printf("[notify] send fail: %v", sendErr)
		return sendErr
	}

	return nil
}
