package tutor_test

import (
	"testing"

	"github.com/mkoh-dev/tutorbot/internal/tutor"
)

func TestGuardFromEnv_Unset_AllowsAll(t *testing.T) {
	t.Setenv("ALLOWED_TELEGRAM_ID", "")

	g := tutor.GuardFromEnv()
	for _, id := range []int64{1, 7, 424242} {
		if !g.Allow(id) {
			t.Errorf("unset allow-list should allow %d", id)
		}
	}
}

func TestGuardFromEnv_Configured_AllowsOnlyThatID(t *testing.T) {
	t.Setenv("ALLOWED_TELEGRAM_ID", "7")

	g := tutor.GuardFromEnv()
	if !g.Allow(7) {
		t.Error("configured sender denied")
	}
	if g.Allow(8) {
		t.Error("stranger allowed")
	}
}

func TestGuardFromEnv_Malformed_DeniesEveryone(t *testing.T) {
	t.Setenv("ALLOWED_TELEGRAM_ID", "not-a-number")

	g := tutor.GuardFromEnv()
	for _, id := range []int64{0, 7, 424242} {
		if g.Allow(id) {
			t.Errorf("malformed allow-list must deny %d", id)
		}
	}
}
