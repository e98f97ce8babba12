package mail

import (
	"bytes"
	"text/template"
)

// ConfirmationSubject is the fixed subject of the confirmation email.
const ConfirmationSubject = "Confirm your account"

type confirmationData struct {
	Link string
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(
	`Hello,

Thank you for signing up. To confirm your account, please click the following link:
{{.Link}}

See you soon,
The Team
`))

// ConfirmationBody renders the plain-text confirmation email body around the
// given confirmation link.
func ConfirmationBody(link string) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, confirmationData{Link: link}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
