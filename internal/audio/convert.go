package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// FFmpegConverter transcodes Telegram voice notes (ogg/opus) into the
// 16 kHz mono LINEAR16 WAV the speech recognizer expects.
type FFmpegConverter struct{}

func NewFFmpegConverter() *FFmpegConverter {
	return &FFmpegConverter{}
}

func (c *FFmpegConverter) ToWAV(ctx context.Context, data []byte, sourceFormat string) ([]byte, error) {
	ext := extensionFor(sourceFormat)

	tmpDir, err := os.MkdirTemp("", "voiceconv-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	input := filepath.Join(tmpDir, "input"+ext)
	if err := os.WriteFile(input, data, 0644); err != nil {
		return nil, err
	}

	output := filepath.Join(tmpDir, "output.wav")

	cmd := exec.CommandContext(
		ctx,
		"ffmpeg",
		"-y",
		"-i", input,
		"-ac", "1",
		"-ar", "16000",
		"-acodec", "pcm_s16le",
		output,
	)

	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("ffmpeg: %w: %s", err, tail(string(out)))
	}

	wav, err := os.ReadFile(output)
	if err != nil {
		return nil, fmt.Errorf("ffmpeg produced no output: %w", err)
	}
	return wav, nil
}

func extensionFor(format string) string {
	f := strings.ToLower(format)
	switch {
	case strings.Contains(f, "ogg"), strings.Contains(f, "opus"):
		return ".ogg"
	case strings.Contains(f, "mp3"), strings.Contains(f, "mpeg"):
		return ".mp3"
	case strings.Contains(f, "wav"):
		return ".wav"
	default:
		return ".ogg"
	}
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 300 {
		return s[len(s)-300:]
	}
	return s
}
