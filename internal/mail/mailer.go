package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/hiromasa-dev/mathfeed/internal/config"
)

// Mailer delivers outbound mail over SMTP. A nil *Mailer is valid and drops
// all mail, which is how development and test environments run.
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	baseURL string
}

// New returns a Mailer, or nil when no SMTP host is configured.
func New(cfg *config.Config) *Mailer {
	if cfg.SMTPHost == "" {
		return nil
	}
	return &Mailer{
		dialer:  gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:    cfg.MailFrom,
		baseURL: cfg.BaseURL,
	}
}

// SendPasswordReset mails the signed reset token to the user.
func (m *Mailer) SendPasswordReset(email, username, token string) error {
	if m == nil {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Reset your password")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nTo reset your password, visit:\n\n%s/reset_password/%s\n\n"+
			"If you did not request a password reset, ignore this message.\n",
		username, m.baseURL, token))

	return m.dialer.DialAndSend(msg)
}
