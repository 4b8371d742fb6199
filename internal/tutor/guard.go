package tutor

import (
	"log"
	"os"
	"strconv"
)

// Guard allows either everyone (no configured ID) or exactly one
// allow-listed sender. Runs before any other handling of an event.
type Guard struct {
	allowed *int64
	denyAll bool
}

func NewGuard(allowed *int64) *Guard {
	return &Guard{allowed: allowed}
}

// GuardFromEnv reads ALLOWED_TELEGRAM_ID; unset or empty allows all.
// A value that does not parse denies everyone: a typo in an explicitly
// configured allow-list must not open the bot up.
func GuardFromEnv() *Guard {
	raw := os.Getenv("ALLOWED_TELEGRAM_ID")
	if raw == "" {
		return &Guard{}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("[guard] bad ALLOWED_TELEGRAM_ID %q, denying all: %v", raw, err)
		return &Guard{denyAll: true}
	}
	return &Guard{allowed: &id}
}

func (g *Guard) Allow(senderID int64) bool {
	if g.denyAll {
		return false
	}
	return g.allowed == nil || *g.allowed == senderID
}
