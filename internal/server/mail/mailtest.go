package mail

import "sync"

// Sent records one delivered message for later inspection.
type Sent struct {
	Subject   string
	Body      string
	Recipient string
}

// TestMailer implements the Mailer interface in memory. It records every
// send and can be told to fail, emulating a broken relay in tests.
type TestMailer struct {
	sync.Mutex

	Messages []Sent
	Err      error // returned by SendTo when non-nil
	Disabled bool  // reported by IsEnabled
}

// NewTestMailer returns an empty TestMailer.
func NewTestMailer() *TestMailer {
	return &TestMailer{}
}

// IsEnabled reports whether the test mailer is enabled.
//
// This function satisfies the Mailer interface.
func (m *TestMailer) IsEnabled() bool {
	return !m.Disabled
}

// SendTo records the message, or returns the configured error without
// recording anything.
//
// This function satisfies the Mailer interface.
func (m *TestMailer) SendTo(subject, body, recipient string) error {
	m.Lock()
	defer m.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.Messages = append(m.Messages, Sent{Subject: subject, Body: body, Recipient: recipient})
	return nil
}
