package speech

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mkoh-dev/tutorbot/internal/ports"
)

// WhisperClient is the alternate recognizer (STT_PROVIDER=whisper).
type WhisperClient struct {
	client   *openai.Client
	language string // ISO 639-1
	storage  ports.Storage
}

func NewWhisperClient(languageCode string, storage ports.Storage) *WhisperClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		panic("OPENAI_API_KEY not set")
	}

	lang := languageCode
	if i := strings.IndexByte(lang, '-'); i > 0 {
		lang = lang[:i]
	}

	return &WhisperClient{
		client:   openai.NewClient(apiKey),
		language: strings.ToLower(lang),
		storage:  storage,
	}
}

func (c *WhisperClient) Transcribe(ctx context.Context, obj ports.ObjectHandle) (string, error) {
	rc, err := c.storage.GetObject(ctx, obj.Key)
	if err != nil {
		return "", fmt.Errorf("fetch stored voice: %w", err)
	}
	defer rc.Close()

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   rc,
		FilePath: "voice.wav",
		Language: c.language,
	})
	if err != nil {
		return "", fmt.Errorf("whisper: %w", err)
	}

	return resp.Text, nil
}
