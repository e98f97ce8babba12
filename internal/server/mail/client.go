package mail

import (
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/dajohi/goemail"
)

// client provides an SMTP client for sending emails from a preset sender
// address.
//
// client implements the Mailer interface.
type client struct {
	smtp        *goemail.SMTP // SMTP relay
	mailAddress string        // From email address
	timeout     time.Duration // Bound on a single send
	disabled    bool          // Has email been disabled

	// send performs the blocking relay transfer. It defaults to
	// smtp.Send and is replaceable in tests.
	send func(*goemail.Message) error
}

// IsEnabled returns whether the mail client is enabled.
//
// This function satisfies the Mailer interface.
func (c *client) IsEnabled() bool {
	return !c.disabled
}

// SendTo sends an email to a single recipient email address. The send is
// given at most the configured timeout; a relay that hangs past it results
// in an error instead of blocking the calling request. The underlying
// transfer is not interrupted, only abandoned.
//
// This function satisfies the Mailer interface.
func (c *client) SendTo(subject, body, recipient string) error {
	if c.disabled {
		return nil
	}

	msg := goemail.NewMessage(c.mailAddress, subject, body)
	msg.AddTo(recipient)

	errc := make(chan error, 1)
	go func() {
		errc <- c.send(msg)
	}()

	select {
	case err := <-errc:
		return err
	case <-time.After(c.timeout):
		return fmt.Errorf("smtp send to %v timed out after %v", recipient, c.timeout)
	}
}

// New returns a client that relays mail through host:port as user. The
// sender identity is user@domain. Transport encryption is opportunistic:
// the relay certificate is not verified, matching the source behaviour of
// enabling SSL without a pinned certificate.
//
// If host or user is empty the client is disabled and sends become no-ops;
// configuration validation normally rejects that before startup, but tests
// and dry runs rely on it.
func New(host string, port int, user, password, domain string, timeout time.Duration) (Mailer, error) {
	if host == "" || user == "" {
		return &client{disabled: true}, nil
	}

	h := fmt.Sprintf("smtps://%v:%v@%v:%v", url.QueryEscape(user),
		url.QueryEscape(password), host, port)
	u, err := url.Parse(h)
	if err != nil {
		return nil, err
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	smtp, err := goemail.NewSMTP(u.String(), tlsConfig)
	if err != nil {
		return nil, err
	}

	return &client{
		smtp:        smtp,
		mailAddress: fmt.Sprintf("%v@%v", user, domain),
		timeout:     timeout,
		send:        smtp.Send,
	}, nil
}
