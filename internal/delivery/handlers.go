package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/mkoh-dev/tutorbot/internal/session"
)

// SessionHandler exposes read-only session stats for operators.
type SessionHandler struct {
	sessions *session.Store
	log      *logger.ZapLogger
}

func NewSessionHandler(sessions *session.Store, log *logger.ZapLogger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		log:      log,
	}
}

func (h *SessionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	snap := h.sessions.Snapshot()

	byState := make(map[string]int)
	for _, state := range snap {
		byState[state]++
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "session stats requested",
		Service: "tutorbot",
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"active_sessions": len(snap),
		"by_state":        byState,
	})
}
