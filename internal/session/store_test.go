package session_test

import (
	"sync"
	"testing"

	"github.com/mkoh-dev/tutorbot/internal/session"
)

func TestStore_LazyCreate(t *testing.T) {
	st := session.NewStore()

	if got := st.Len(); got != 0 {
		t.Fatalf("new store Len() = %d, want 0", got)
	}

	st.Do(42, func(s *session.Session) {
		if s.Mode != session.ModeNone {
			t.Errorf("fresh session mode = %v, want ModeNone", s.Mode)
		}
		s.Mode = session.ModeTranslate
	})

	if got := st.Len(); got != 1 {
		t.Fatalf("Len() after first Do = %d, want 1", got)
	}

	st.Do(42, func(s *session.Session) {
		if s.Mode != session.ModeTranslate {
			t.Errorf("mutation lost: mode = %v, want ModeTranslate", s.Mode)
		}
	})
}

func TestStore_IsolatesChats(t *testing.T) {
	st := session.NewStore()

	st.Do(1, func(s *session.Session) { s.PendingAnswer = "コーヒー" })
	st.Do(2, func(s *session.Session) {
		if s.PendingAnswer != "" {
			t.Errorf("chat 2 sees chat 1 state: %q", s.PendingAnswer)
		}
	})
}

func TestStore_ConcurrentDo(t *testing.T) {
	st := session.NewStore()

	const workers = 32
	const rounds = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			chatID := int64(w % 4)
			for i := 0; i < rounds; i++ {
				st.Do(chatID, func(s *session.Session) {
					s.PendingSource += "x"
				})
			}
		}(w)
	}
	wg.Wait()

	// 32 workers over 4 chats, each appending rounds times
	total := 0
	for chat := int64(0); chat < 4; chat++ {
		st.Do(chat, func(s *session.Session) {
			total += len(s.PendingSource)
		})
	}
	if want := workers * rounds; total != want {
		t.Errorf("lost updates: total appended = %d, want %d", total, want)
	}
}

func TestStore_Snapshot(t *testing.T) {
	st := session.NewStore()

	st.Do(1, func(s *session.Session) { s.Mode = session.ModePronounce })
	st.Do(2, func(s *session.Session) { s.PendingAnswer = "おいしい" })
	st.Do(3, func(s *session.Session) {})

	snap := st.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("snapshot size = %d, want 3", len(snap))
	}
	if snap[1] != "pronounce" {
		t.Errorf("chat 1 = %q, want pronounce", snap[1])
	}
	if snap[2] != "awaiting_check" {
		t.Errorf("chat 2 = %q, want awaiting_check", snap[2])
	}
	if snap[3] != "none" {
		t.Errorf("chat 3 = %q, want none", snap[3])
	}
}
