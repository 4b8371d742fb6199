package session

import (
	"sync"

	"github.com/mkoh-dev/tutorbot/internal/ports"
)

// Mode — активный учебный сценарий
type Mode int

const (
	ModeNone Mode = iota
	ModePronounce
	ModeTranslate
)

func (m Mode) String() string {
	switch m {
	case ModePronounce:
		return "pronounce"
	case ModeTranslate:
		return "translate"
	default:
		return "none"
	}
}

// Audio is the last voice artifact the bot delivered to a chat:
// the synthesized bytes (so a mismatch retry re-sends the same audio
// without re-synthesis) and the message it was delivered as (so it can
// be deleted before the next one is sent).
type Audio struct {
	Data []byte
	Ref  ports.MessageRef
}

// Session — состояние одного чата. Живёт в памяти процесса,
// без персистентности и без вытеснения: это осознанное ограничение.
type Session struct {
	Mode          Mode
	PendingAnswer string // correct answer the next voice message is graded against
	PendingSource string // original phrase, for the retry prompt
	LastAudio     *Audio
}

type entry struct {
	mu sync.Mutex
	s  Session
}

// Store keeps one Session per chat, created lazily on first use.
// Do serializes work per chat while unrelated chats proceed concurrently.
type Store struct {
	mu      sync.Mutex
	entries map[int64]*entry
}

func NewStore() *Store {
	return &Store{entries: make(map[int64]*entry)}
}

func (st *Store) get(chatID int64) *entry {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.entries[chatID]
	if !ok {
		e = &entry{}
		st.entries[chatID] = e
	}
	return e
}

// Do runs fn with exclusive access to the chat's session.
// Mutations made by fn are kept.
func (st *Store) Do(chatID int64, fn func(*Session)) {
	e := st.get(chatID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.s)
}

// Len returns the number of chats seen so far.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.entries)
}

// Snapshot returns the current mode per chat, for the ops endpoint.
func (st *Store) Snapshot() map[int64]string {
	st.mu.Lock()
	entries := make(map[int64]*entry, len(st.entries))
	for id, e := range st.entries {
		entries[id] = e
	}
	st.mu.Unlock()

	out := make(map[int64]string, len(entries))
	for id, e := range entries {
		e.mu.Lock()
		mode := e.s.Mode
		if e.s.PendingAnswer != "" {
			out[id] = "awaiting_check"
		} else {
			out[id] = mode.String()
		}
		e.mu.Unlock()
	}
	return out
}
