package tutor

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mkoh-dev/tutorbot/internal/session"
)

// MenuOption — один учебный сценарий в меню
type MenuOption struct {
	Label  string
	Prompt string
	Mode   session.Mode
}

// Config drives the conversation flow: target language, menu options
// (order preserved for rendering) and the per-capability-call timeout.
type Config struct {
	LanguageCode string // BCP-47, e.g. "ja-JP"
	OptionOrder  []string
	Options      map[string]MenuOption
	CallTimeout  time.Duration
}

// DefaultCallTimeout bounds every external capability call; a provider
// that hangs fails the turn instead of stalling the chat forever.
const DefaultCallTimeout = 30 * time.Second

// DefaultConfig builds the two standard options for a target language:
// pronounce target-language words, and translate-then-check.
func DefaultConfig(languageCode string) Config {
	target := shortName(languageCode)
	native := "EN"

	return Config{
		LanguageCode: languageCode,
		OptionOrder:  []string{"1", "2"},
		Options: map[string]MenuOption{
			"1": {
				Label: fmt.Sprintf("1) How to pronounce %s word(s)", target),
				Prompt: fmt.Sprintf(
					"Ok, let's hear the pronunciation of %s word(s). \n\nEnter the %s word(s) into the chat box",
					target, target),
				Mode: session.ModePronounce,
			},
			"2": {
				Label: fmt.Sprintf("2) How to say (%s) in %s", native, target),
				Prompt: fmt.Sprintf(
					"Ok, let's learn how to say (%s) in %s. \n\nWhat is/are the %s word(s)?",
					native, target, native),
				Mode: session.ModeTranslate,
			},
		},
		CallTimeout: DefaultCallTimeout,
	}
}

// ConfigFromEnv — LANGUAGE_CODE, по умолчанию ja-JP. Menu texts can be
// overridden with MENU_OPTION_<id>_LABEL / MENU_OPTION_<id>_PROMPT.
func ConfigFromEnv() Config {
	code := os.Getenv("LANGUAGE_CODE")
	if code == "" {
		code = "ja-JP"
	}

	cfg := DefaultConfig(code)
	for _, id := range cfg.OptionOrder {
		opt := cfg.Options[id]
		if v := os.Getenv("MENU_OPTION_" + id + "_LABEL"); v != "" {
			opt.Label = v
		}
		if v := os.Getenv("MENU_OPTION_" + id + "_PROMPT"); v != "" {
			opt.Prompt = v
		}
		cfg.Options[id] = opt
	}
	return cfg
}

// LanguageName returns the display name of the target language.
func (c Config) LanguageName() string {
	base := strings.ToLower(c.LanguageCode)
	if i := strings.IndexByte(base, '-'); i > 0 {
		base = base[:i]
	}
	if name, ok := languageNames[base]; ok {
		return name
	}
	return shortName(c.LanguageCode)
}

// ShortName returns the compact label used in prompts ("JP" for ja-JP).
func (c Config) ShortName() string {
	return shortName(c.LanguageCode)
}

var languageNames = map[string]string{
	"ja": "Japanese",
	"en": "English",
	"fr": "French",
	"de": "German",
	"es": "Spanish",
	"it": "Italian",
	"ko": "Korean",
	"zh": "Chinese",
	"ru": "Russian",
}

// shortName — "ja-JP" → "JP", "ja" → "JA"
func shortName(code string) string {
	if i := strings.IndexByte(code, '-'); i >= 0 && i+1 < len(code) {
		return strings.ToUpper(code[i+1:])
	}
	return strings.ToUpper(code)
}
