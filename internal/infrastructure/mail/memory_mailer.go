package mail

import (
	"context"
	"sync"
)

// Message is a captured email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// MemoryMailer records sent emails for inspection in tests.
type MemoryMailer struct {
	mu       sync.Mutex
	messages []Message
}

func NewMemoryMailer() *MemoryMailer {
	return &MemoryMailer{}
}

func (m *MemoryMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, Message{To: to, Subject: subject, Body: htmlBody})
	return nil
}

// Messages returns a copy of all captured emails.
func (m *MemoryMailer) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}
