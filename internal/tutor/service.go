package tutor

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/mkoh-dev/tutorbot/internal/notify"
	"github.com/mkoh-dev/tutorbot/internal/ports"
	"github.com/mkoh-dev/tutorbot/internal/session"
)

// SpeechService — три облачные способности, которыми живёт урок
type SpeechService interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Translate(ctx context.Context, text string) (string, error)
	Transcribe(ctx context.Context, obj ports.ObjectHandle) (string, error)
}

// Service is the per-conversation state machine. One entry point per
// event kind; each event is serialized per chat through the session
// store while other chats proceed concurrently.
type Service struct {
	guard      *Guard
	sessions   *session.Store
	speech     SpeechService
	storage    ports.Storage
	convert    ports.AudioConverter
	normalizer ports.Normalizer // nil → compare recognized text raw
	transport  ports.Transport
	notify     notify.Notificator
	cfg        Config
}

func NewService(
	guard *Guard,
	sessions *session.Store,
	speech SpeechService,
	storage ports.Storage,
	convert ports.AudioConverter,
	normalizer ports.Normalizer,
	transport ports.Transport,
	notificator notify.Notificator,
	cfg Config,
) *Service {
	return &Service{
		guard:      guard,
		sessions:   sessions,
		speech:     speech,
		storage:    storage,
		convert:    convert,
		normalizer: normalizer,
		transport:  transport,
		notify:     notificator,
		cfg:        cfg,
	}
}

// OnStart handles /start: greet and show the menu.
func (s *Service) OnStart(ctx context.Context, chatID, senderID int64, firstName string) {
	if !s.allow(ctx, chatID, senderID) {
		return
	}
	s.greet(ctx, chatID, firstName)
}

// OnHelp handles /help.
func (s *Service) OnHelp(ctx context.Context, chatID, senderID int64) {
	if !s.allow(ctx, chatID, senderID) {
		return
	}
	s.send(ctx, chatID, MsgHelp)
}

// OnMenuSelected activates the chosen learning mode and sends its
// prompt. Unknown option ids are ignored (the transport has already
// acked the callback). Reports whether the selection was accepted so
// the transport only mutates the rendered menu for allowed senders.
func (s *Service) OnMenuSelected(ctx context.Context, chatID, senderID int64, optionID string) bool {
	if !s.allow(ctx, chatID, senderID) {
		return false
	}

	opt, ok := s.cfg.Options[optionID]
	if !ok {
		log.Printf("[menu] unknown option %q chat=%d", optionID, chatID)
		return false
	}

	s.sessions.Do(chatID, func(sess *session.Session) {
		sess.Mode = opt.Mode
	})
	s.send(ctx, chatID, opt.Prompt)
	return true
}

// OnText routes a plain text message through the active mode.
func (s *Service) OnText(ctx context.Context, chatID, senderID int64, firstName, text string) {
	if !s.allow(ctx, chatID, senderID) {
		return
	}

	s.sessions.Do(chatID, func(sess *session.Session) {
		switch sess.Mode {
		case session.ModePronounce:
			s.handlePronounce(ctx, chatID, sess, text)
		case session.ModeTranslate:
			s.handleTranslate(ctx, chatID, sess, text)
		default:
			if isGreeting(text) {
				s.greet(ctx, chatID, firstName)
				return
			}
			s.send(ctx, chatID, MsgFallback)
			s.showMenu(ctx, chatID)
		}
	})
}

// OnVoice grades a recorded answer against the pending expected one.
func (s *Service) OnVoice(ctx context.Context, chatID, senderID int64, data []byte, sourceFormat string) {
	if !s.allow(ctx, chatID, senderID) {
		return
	}

	s.sessions.Do(chatID, func(sess *session.Session) {
		if sess.PendingAnswer == "" {
			// voice with nothing pending: say so instead of grading
			// against missing state
			s.send(ctx, chatID, MsgNothingToCheck)
			s.showMenu(ctx, chatID)
			return
		}
		s.handleVoiceCheck(ctx, chatID, sess, data, sourceFormat)
	})
}

func (s *Service) handlePronounce(ctx context.Context, chatID int64, sess *session.Session, text string) {
	audio, err := s.synthesize(ctx, text)
	if err != nil {
		s.reportFailure(ctx, chatID, "synthesize", err, MsgTurnFailed)
		return // mode kept so the user can retry the same step
	}

	if err := s.deliverAudio(ctx, chatID, sess, audio); err != nil {
		s.reportFailure(ctx, chatID, "send audio", err, MsgTurnFailed)
		return
	}

	s.send(ctx, chatID, MsgHopeThatHelps)
	s.showMenu(ctx, chatID)
	sess.Mode = session.ModeNone
}

func (s *Service) handleTranslate(ctx context.Context, chatID int64, sess *session.Session, text string) {
	cctx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	translated, err := s.speech.Translate(cctx, text)
	cancel()
	if err != nil {
		s.reportFailure(ctx, chatID, "translate", err, MsgTurnFailed)
		return
	}
	log.Printf("[text] translated %q → %q chat=%d", text, translated, chatID)

	audio, err := s.synthesize(ctx, translated)
	if err != nil {
		s.reportFailure(ctx, chatID, "synthesize", err, MsgTurnFailed)
		return
	}

	if err := s.deliverAudio(ctx, chatID, sess, audio); err != nil {
		s.reportFailure(ctx, chatID, "send audio", err, MsgTurnFailed)
		return
	}

	sess.PendingAnswer = translated
	sess.PendingSource = text
	sess.Mode = session.ModeNone // the pending answer drives the next voice turn

	s.send(ctx, chatID, MsgRepeatAfterMe)
}

func (s *Service) handleVoiceCheck(ctx context.Context, chatID int64, sess *session.Session, data []byte, sourceFormat string) {
	cctx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	wav, err := s.convert.ToWAV(cctx, data, sourceFormat)
	cancel()
	if err != nil {
		s.reportFailure(ctx, chatID, "convert voice", err, MsgVoiceFailed)
		return // pending answer untouched, user can re-record
	}

	key := fmt.Sprintf("voice/%s.wav", uuid.NewString())

	cctx, cancel = context.WithTimeout(ctx, s.cfg.CallTimeout)
	obj, err := s.storage.PutObject(cctx, key, bytes.NewReader(wav), int64(len(wav)), "audio/x-wav")
	cancel()
	if err != nil {
		s.reportFailure(ctx, chatID, "store voice", err, MsgVoiceFailed)
		return
	}

	cctx, cancel = context.WithTimeout(ctx, s.cfg.CallTimeout)
	recognized, err := s.speech.Transcribe(cctx, obj)
	cancel()
	if err != nil {
		s.reportFailure(ctx, chatID, "transcribe", err, MsgVoiceFailed)
		return
	}
	log.Printf("[voice] recognized %q chat=%d", recognized, chatID)

	// empty transcript is a legitimate mismatch, not an error
	correct := sess.PendingAnswer
	response := recognized
	if s.normalizer != nil {
		correct = s.normalizer.Normalize(correct)
		response = s.normalizer.Normalize(response)
	}

	if response == correct {
		s.send(ctx, chatID, MsgCorrect)
		s.send(ctx, chatID, MsgAnythingElse)
		s.showMenu(ctx, chatID)
		sess.PendingAnswer = ""
		sess.PendingSource = ""
		return
	}

	s.send(ctx, chatID, fmt.Sprintf(
		"Oops! That's not correct. Please try saying %s in %s again",
		sess.PendingSource, s.cfg.ShortName(),
	))

	// re-send the stored pronunciation hint, no re-synthesis
	if sess.LastAudio != nil {
		if err := s.deliverAudio(ctx, chatID, sess, sess.LastAudio.Data); err != nil {
			log.Printf("[voice] re-send hint fail chat=%d: %v", chatID, err)
		}
	}
}

// deliverAudio deletes the previous audio message (best effort, so
// auto-play doesn't stack up) and sends the new one, recording it as
// the live artifact.
func (s *Service) deliverAudio(ctx context.Context, chatID int64, sess *session.Session, audio []byte) error {
	if sess.LastAudio != nil {
		if err := s.transport.DeleteMessage(ctx, sess.LastAudio.Ref); err != nil {
			log.Printf("[audio] delete previous fail chat=%d: %v", chatID, err)
		}
	}

	ref, err := s.transport.SendAudio(ctx, chatID, audio)
	if err != nil {
		return err
	}

	sess.LastAudio = &session.Audio{Data: audio, Ref: ref}
	return nil
}

func (s *Service) synthesize(ctx context.Context, text string) ([]byte, error) {
	cctx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	defer cancel()
	return s.speech.Synthesize(cctx, text)
}

func (s *Service) greet(ctx context.Context, chatID int64, firstName string) {
	name := firstName
	if name == "" {
		name = "there"
	}
	s.send(ctx, chatID, fmt.Sprintf(
		"Hi %s! \nLet's start learning %s together :)",
		name, s.cfg.LanguageName(),
	))
	s.showMenu(ctx, chatID)
}

func (s *Service) showMenu(ctx context.Context, chatID int64) {
	options := make([]ports.MenuOption, 0, len(s.cfg.OptionOrder))
	for _, id := range s.cfg.OptionOrder {
		options = append(options, ports.MenuOption{
			ID:    id,
			Label: s.cfg.Options[id].Label,
		})
	}

	if err := s.transport.SendMenu(ctx, chatID, MsgMenuTitle, options); err != nil {
		log.Printf("[menu] send fail chat=%d: %v", chatID, err)
	}
}

func (s *Service) allow(ctx context.Context, chatID, senderID int64) bool {
	if s.guard.Allow(senderID) {
		return true
	}
	log.Printf("[guard] denied sender=%d chat=%d", senderID, chatID)
	s.send(ctx, chatID, MsgRefused)
	return false
}

func (s *Service) send(ctx context.Context, chatID int64, text string) {
	if err := s.transport.SendText(ctx, chatID, text); err != nil {
		log.Printf("[send] fail chat=%d: %v", chatID, err)
	}
}

func (s *Service) reportFailure(ctx context.Context, chatID int64, step string, err error, userMsg string) {
	log.Printf("[%s] fail chat=%d: %v", step, chatID, err)
	if s.notify != nil {
		_ = s.notify.Notify(ctx, err, fmt.Sprintf("step: %s, chat: %d", step, chatID))
	}
	s.send(ctx, chatID, userMsg)
}

func isGreeting(text string) bool {
	_, ok := greetingTokens[strings.ToLower(strings.TrimSpace(text))]
	return ok
}
