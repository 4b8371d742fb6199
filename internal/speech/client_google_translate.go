package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// GoogleTranslateClient — клиент к Translate API v2 (REST)
type GoogleTranslateClient struct {
	apiKey string
	target string // ISO 639-1, напр. "ja"
	client *http.Client
}

func NewGoogleTranslateClient(languageCode string) *GoogleTranslateClient {
	key := os.Getenv("GOOGLE_API_KEY")
	if key == "" {
		panic("GOOGLE_API_KEY not set")
	}

	// "ja-JP" → "ja"
	target := languageCode
	if i := strings.IndexByte(target, '-'); i > 0 {
		target = target[:i]
	}

	return &GoogleTranslateClient{
		apiKey: key,
		target: strings.ToLower(target),
		client: &http.Client{},
	}
}

func (c *GoogleTranslateClient) Translate(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"q":      text,
		"target": c.target,
		"format": "text",
	})
	if err != nil {
		return "", err
	}

	url := "https://translation.googleapis.com/language/translate/v2?key=" + c.apiKey

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("translate error: %s", body)
	}

	var parsed struct {
		Data struct {
			Translations []struct {
				TranslatedText string `json:"translatedText"`
			} `json:"translations"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode translate: %w", err)
	}
	if len(parsed.Data.Translations) == 0 {
		return "", fmt.Errorf("empty translation")
	}

	return parsed.Data.Translations[0].TranslatedText, nil
}
