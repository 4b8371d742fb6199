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
	"strings"

	"github.com/mkoh-dev/tutorbot/internal/ports"
)

// GoogleSTTClient recognizes speech in a stored LINEAR16 WAV artifact.
// The artifact is read back through the storage port and sent inline;
// voice notes are well under the API's one-minute inline limit.
type GoogleSTTClient struct {
	apiKey       string
	languageCode string
	storage      ports.Storage
	client       *http.Client
}

func NewGoogleSTTClient(languageCode string, storage ports.Storage) *GoogleSTTClient {
	key := os.Getenv("GOOGLE_API_KEY")
	if key == "" {
		panic("GOOGLE_API_KEY not set")
	}

	return &GoogleSTTClient{
		apiKey:       key,
		languageCode: languageCode,
		storage:      storage,
		client:       &http.Client{},
	}
}

func (c *GoogleSTTClient) Transcribe(ctx context.Context, obj ports.ObjectHandle) (string, error) {
	rc, err := c.storage.GetObject(ctx, obj.Key)
	if err != nil {
		return "", fmt.Errorf("fetch stored voice: %w", err)
	}
	defer rc.Close()

	wav, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read stored voice: %w", err)
	}

	payload, err := json.Marshal(map[string]any{
		"config": map[string]any{
			"encoding":        "LINEAR16",
			"languageCode":    c.languageCode,
			"sampleRateHertz": 16000,
		},
		"audio": map[string]string{
			"content": base64.StdEncoding.EncodeToString(wav),
		},
	})
	if err != nil {
		return "", err
	}

	url := "https://speech.googleapis.com/v1/speech:recognize?key=" + c.apiKey

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("stt request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("stt error: %s", body)
	}

	var parsed struct {
		Results []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode stt: %w", err)
	}

	// no results means no speech detected — that grades as a mismatch
	// upstream, it is not a transport failure
	var parts []string
	for _, r := range parsed.Results {
		if len(r.Alternatives) > 0 {
			parts = append(parts, r.Alternatives[0].Transcript)
		}
	}
	return strings.Join(parts, " "), nil
}
