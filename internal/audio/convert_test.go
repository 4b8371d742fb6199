package audio

import "testing"

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"audio/ogg", ".ogg"},
		{"audio/x-opus+ogg", ".ogg"},
		{"audio/mpeg", ".mp3"},
		{"audio/x-wav", ".wav"},
		{"", ".ogg"},
	}
	for _, tt := range tests {
		if got := extensionFor(tt.format); got != tt.want {
			t.Errorf("extensionFor(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}
