package audio

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Duration returns the length in seconds of an audio clip via ffprobe.
func Duration(data []byte) (float64, error) {
	tmp, err := os.CreateTemp("", "voicedur-*.ogg")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return 0, err
	}
	tmp.Close()

	out, err := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		tmp.Name(),
	).Output()
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
}
