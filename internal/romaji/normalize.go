package romaji

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/mkoh-dev/tutorbot/internal/ports"
)

// ForLanguage returns the normalizer for a language tag ("ja-JP", "ja"),
// or false when the language needs no phonetic folding and recognized
// text should be compared raw.
func ForLanguage(tag string) (ports.Normalizer, bool) {
	base := strings.ToLower(tag)
	if i := strings.IndexByte(base, '-'); i > 0 {
		base = base[:i]
	}

	switch base {
	case "ja":
		return japanese{}, true
	default:
		return nil, false
	}
}

// japanese folds kana (either script, any width) to hepburn romaji so
// that e.g. おいしい and オイシイ grade as the same answer. Kanji runes
// pass through unchanged: both sides of the comparison come from the
// same translation engine, so identical words render identically.
type japanese struct{}

func (japanese) Normalize(text string) string {
	// full-width folding first: half-width katakana → full, full-width
	// latin/digits → ASCII
	folded := norm.NFKC.String(width.Fold.String(text))
	folded = strings.ToLower(folded)

	out := kanaToRomaji(hiraganaFold(folded))

	// STT inserts segmentation spaces and punctuation the reference
	// answer never has
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		switch r {
		case '。', '、', '・', '「', '」', ',', '.', '!', '?', '！', '？':
			return -1
		}
		return r
	}, out)
}
