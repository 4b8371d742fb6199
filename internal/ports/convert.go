package ports

import "context"

// AudioConverter transcodes a voice message into the encoding the
// speech recognizer expects (LINEAR16 WAV).
type AudioConverter interface {
	ToWAV(ctx context.Context, data []byte, sourceFormat string) ([]byte, error)
}
