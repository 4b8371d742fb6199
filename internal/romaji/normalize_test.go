package romaji_test

import (
	"testing"

	"github.com/mkoh-dev/tutorbot/internal/romaji"
)

func TestForLanguage(t *testing.T) {
	if _, ok := romaji.ForLanguage("ja-JP"); !ok {
		t.Error("ja-JP should have a normalizer")
	}
	if _, ok := romaji.ForLanguage("ja"); !ok {
		t.Error("ja should have a normalizer")
	}
	if _, ok := romaji.ForLanguage("fr-FR"); ok {
		t.Error("fr-FR should compare raw")
	}
}

func TestJapanese_Normalize(t *testing.T) {
	n, ok := romaji.ForLanguage("ja-JP")
	if !ok {
		t.Fatal("no normalizer for ja-JP")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"コーヒー", "koohii"},
		{"こーひー", "koohii"},
		{"おいしい", "oishii"},
		{"オイシイ", "oishii"},
		{"きょうと", "kyouto"},
		{"がっこう", "gakkou"},
		{"ちょっと", "chotto"},
		{"マッチャ", "matcha"},
		{"こんにちは", "konnichiha"},
		{"ジュース", "juusu"},
		{"ファイル", "fairu"},
		// STT segmentation spaces and punctuation are dropped
		{"こんにちは 。", "konnichiha"},
		{"おいしい、です!", "oishiidesu"},
		// half-width katakana folds to full width first
		{"ｺｰﾋｰ", "koohii"},
	}

	for _, tt := range tests {
		if got := n.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJapanese_ScriptsAgree(t *testing.T) {
	n, _ := romaji.ForLanguage("ja-JP")

	pairs := [][2]string{
		{"コーヒー", "こーひー"},
		{"オイシイ", "おいしい"},
		{"ｺﾝﾆﾁﾊ", "こんにちは"},
	}
	for _, p := range pairs {
		if n.Normalize(p[0]) != n.Normalize(p[1]) {
			t.Errorf("scripts disagree: %q → %q, %q → %q",
				p[0], n.Normalize(p[0]), p[1], n.Normalize(p[1]))
		}
	}
}

func TestJapanese_KanjiPassesThrough(t *testing.T) {
	n, _ := romaji.ForLanguage("ja-JP")

	// kanji is not readable without a dictionary; identical kanji on
	// both sides must still grade equal
	a := n.Normalize("美味しい")
	b := n.Normalize("美味しい")
	if a != b {
		t.Errorf("kanji not stable: %q vs %q", a, b)
	}
	if n.Normalize("水") != "水" {
		t.Errorf("kanji mutated: %q", n.Normalize("水"))
	}
}
