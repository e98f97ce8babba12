// Package mail formats and transmits the confirmation email through an
// external SMTP relay.
package mail

// Mailer is an interface used to send emails to a recipient address.
type Mailer interface {
	// IsEnabled determines if the smtp client is enabled or not.
	IsEnabled() bool

	// SendTo sends an email with the given subject and body to a single
	// recipient email address.
	SendTo(subject, body, recipient string) error
}
