package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/infra/queue"
)

const signedTemplate = `<h2>{{.PartnerName}} just signed 🎉</h2>
<p>Tier: {{.PartnerTier}}</p>
<p>Contact: {{.ContactName}}</p>
<p>Signed at: {{.SignedAt}}</p>
`

func NewEmailSender(host string, port int, user, password, notifyAddress string) *EmailSender {
	return &EmailSender{
		Host:          host,
		Port:          port,
		User:          user,
		Password:      password,
		NotifyAddress: notifyAddress,
	}
}

// SendPartnerSigned notifies the partnerships team that a contract was
// signed. Consumed by the queue worker.
func (s *EmailSender) SendPartnerSigned(payload queue.SignedPayload) error {
	data := SignedEmailData{
		PartnerName: payload.Name,
		ContactName: payload.ContactName,
		PartnerTier: payload.PartnerTier,
		SignedAt:    payload.SignedAt.Format("2006-01-02 15:04"),
	}

	t, err := template.New("signed").Parse(signedTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "no-reply@partnershipsportal.io")
	m.SetHeader("To", s.NotifyAddress)
	m.SetHeader("Subject", fmt.Sprintf("Partner signed: %s", payload.Name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}
