package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// NoticeLevel classifies a transient notice
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a short-lived, advisory message for the user
type Notice struct {
	ID        string      `json:"id"`
	Level     NoticeLevel `json:"level"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Notifier receives user-facing notices
type Notifier interface {
	Post(level NoticeLevel, text string) Notice
}

// MessageBoard holds the transient notices of one session. Notices dismiss
// themselves after the configured TTL; nothing is retried or queued.
type MessageBoard struct {
	mu      sync.Mutex
	ttl     time.Duration
	notices []Notice
	now     func() time.Time
}

// NewMessageBoard creates a board whose notices live for ttl
func NewMessageBoard(ttl time.Duration) *MessageBoard {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &MessageBoard{ttl: ttl, now: time.Now}
}

// Post adds a notice and schedules its dismissal.
func (b *MessageBoard) Post(level NoticeLevel, text string) Notice {
	now := b.now()
	n := Notice{
		ID:        uuid.NewString(),
		Level:     level,
		Text:      text,
		CreatedAt: now,
		ExpiresAt: now.Add(b.ttl),
	}

	b.mu.Lock()
	b.notices = append(b.notices, n)
	b.mu.Unlock()

	time.AfterFunc(b.ttl, func() { b.Dismiss(n.ID) })
	return n
}

// Info posts an informational notice.
func (b *MessageBoard) Info(text string) Notice {
	return b.Post(NoticeInfo, text)
}

// Error posts an error notice.
func (b *MessageBoard) Error(text string) Notice {
	return b.Post(NoticeError, text)
}

// Dismiss removes a notice before it expires. Unknown ids are ignored.
func (b *MessageBoard) Dismiss(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, n := range b.notices {
		if n.ID == id {
			b.notices = append(b.notices[:i], b.notices[i+1:]...)
			return
		}
	}
}

// Active returns the notices that have not expired, oldest first.
func (b *MessageBoard) Active() []Notice {
	now := b.now()

	b.mu.Lock()
	defer b.mu.Unlock()

	active := make([]Notice, 0, len(b.notices))
	for _, n := range b.notices {
		if now.Before(n.ExpiresAt) {
			active = append(active, n)
		}
	}
	return active
}
