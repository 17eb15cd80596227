package email

import "sync"

// MockProvider records sent messages instead of delivering them. Used
// in tests and when email is disabled in config.
type MockProvider struct {
	mu       sync.Mutex
	Messages []MockMessage
}

type MockMessage struct {
	To      string
	Subject string
	Body    string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(to, subject, body string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Messages = append(p.Messages, MockMessage{To: to, Subject: subject, Body: body})
	return nil
}
