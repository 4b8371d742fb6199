package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
)

// GoogleTTSClient — клиент к Google Cloud Text-to-Speech (REST)
type GoogleTTSClient struct {
	apiKey       string
	languageCode string
	voice        string
	speakingRate float64
	client       *http.Client
}

func NewGoogleTTSClient(languageCode, voice string) *GoogleTTSClient {
	key := os.Getenv("GOOGLE_API_KEY")
	if key == "" {
		panic("GOOGLE_API_KEY not set")
	}

	rate := 0.9
	if v := os.Getenv("TTS_SPEAKING_RATE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			rate = parsed
		}
	}

	return &GoogleTTSClient{
		apiKey:       key,
		languageCode: languageCode,
		voice:        voice,
		speakingRate: rate,
		client:       &http.Client{},
	}
}

// Synthesize returns the spoken form of text as MP3 bytes.
func (c *GoogleTTSClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(map[string]any{
		"input": map[string]string{"text": text},
		"voice": map[string]string{
			"languageCode": c.languageCode,
			"name":         c.voice,
		},
		"audioConfig": map[string]any{
			"audioEncoding": "MP3",
			"speakingRate":  c.speakingRate,
		},
	})
	if err != nil {
		return nil, err
	}

	url := "https://texttospeech.googleapis.com/v1/text:synthesize?key=" + c.apiKey

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("tts error: %s", body)
	}

	var parsed struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode tts: %w", err)
	}
	if parsed.AudioContent == "" {
		return nil, fmt.Errorf("empty audio content")
	}

	audio, err := base64.StdEncoding.DecodeString(parsed.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode audio: %w", err)
	}
	return audio, nil
}
