package ports

import "context"

// MessageRef identifies a message the bot has already sent,
// so it can be deleted later.
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// MenuOption — один пункт меню (id уходит в callback data)
type MenuOption struct {
	ID    string
	Label string
}

// Transport is the messaging surface the tutor talks through.
// The telegram package implements it; tests use a recording fake.
type Transport interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendAudio(ctx context.Context, chatID int64, audio []byte) (MessageRef, error)
	DeleteMessage(ctx context.Context, ref MessageRef) error
	SendMenu(ctx context.Context, chatID int64, title string, options []MenuOption) error
}
