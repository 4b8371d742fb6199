package speech

import (
	"context"

	"github.com/mkoh-dev/tutorbot/internal/ports"
)

// === Единый сервис (ттс + перевод + стт) ===

type Service struct {
	tts       ports.Synthesizer
	translate ports.Translator
	stt       ports.Transcriber
}

func NewService(tts ports.Synthesizer, translate ports.Translator, stt ports.Transcriber) *Service {
	return &Service{
		tts:       tts,
		translate: translate,
		stt:       stt,
	}
}

func (s *Service) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return s.tts.Synthesize(ctx, text)
}

func (s *Service) Translate(ctx context.Context, text string) (string, error) {
	return s.translate.Translate(ctx, text)
}

func (s *Service) Transcribe(ctx context.Context, obj ports.ObjectHandle) (string, error) {
	return s.stt.Transcribe(ctx, obj)
}
