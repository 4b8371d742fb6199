package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mkoh-dev/tutorbot/internal/audio"
)

func (app *BotApp) handleVoice(ctx context.Context, msg *tgbotapi.Message, fromID int64) {
	chatID := msg.Chat.ID
	fileID := msg.Voice.FileID

	log.Printf("[voice] start chat=%d fileID=%s", chatID, fileID)

	file, err := app.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		log.Printf("[voice] get file fail chat=%d err=%v", chatID, err)
		app.bot.Send(tgbotapi.NewMessage(chatID, "Oops! I couldn't fetch your voice message. Please try again."))
		return
	}

	data, err := fetchVoiceFile(file.Link(app.bot.Token))
	if err != nil {
		log.Printf("[voice] download fail chat=%d err=%v", chatID, err)
		app.bot.Send(tgbotapi.NewMessage(chatID, "Oops! I couldn't download your voice message. Please try again."))
		return
	}

	if dur, err := audio.Duration(data); err == nil {
		log.Printf("[voice] got %.1fs clip chat=%d", dur, chatID)
	}

	mime := msg.Voice.MimeType
	if mime == "" {
		mime = "audio/ogg"
	}

	app.Tutor.OnVoice(ctx, chatID, fromID, data, mime)
	log.Printf("[voice] done chat=%d", chatID)
}

// fetchVoiceFile downloads a voice file from the bot API file link.
// A non-200 answer is a failed download, not audio.
func fetchVoiceFile(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("file download: status %d: %s", resp.StatusCode, body)
	}

	return io.ReadAll(resp.Body)
}
