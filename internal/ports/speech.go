package ports

import "context"

// Synthesizer — текст → голос (аудио в одном фиксированном кодеке, MP3)
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Translator — перевод на целевой язык бота
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Transcriber reads a stored voice artifact and returns the recognized text.
// An empty string is a valid result (no speech detected), not an error.
type Transcriber interface {
	Transcribe(ctx context.Context, obj ObjectHandle) (string, error)
}

// Normalizer folds text into a script-independent comparable form
// for one language (e.g. kana/kanji → romaji for Japanese).
type Normalizer interface {
	Normalize(text string) string
}
