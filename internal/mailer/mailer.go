package mailer

import (
	"fmt"
	"time"

	logrus "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"chakula/internal/config"
)

// Sender dispatches one notification email. Implemented by Mailer over SMTP;
// tests substitute a recorder.
type Sender interface {
	Send(toEmail, toName, subject, htmlBody string) error
}

// Mailer sends notification emails over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New builds a Mailer from the process config.
func New(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
	}
}

// Send wraps the body in the shared layout and dispatches it.
func (m *Mailer) Send(toEmail, toName, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "Chakula Support")
	msg.SetAddressHeader("To", toEmail, toName)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", layout(subject, htmlBody))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", toEmail, err)
	}
	return nil
}

// SendAsync dispatches the mail in the background. Failures are logged and
// never surfaced to the caller; the triggering request has already committed.
func SendAsync(s Sender, toEmail, toName, subject, htmlBody string) {
	if s == nil {
		return
	}
	go func() {
		if err := s.Send(toEmail, toName, subject, htmlBody); err != nil {
			logrus.WithError(err).WithField("to", toEmail).Error("notification email failed")
		}
	}()
}

func layout(subject, message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <title>%s</title>
</head>
<body style="font-family:Arial,sans-serif;background-color:#f4f4f4;margin:0;padding:0;">
  <div style="max-width:600px;margin:auto;background:#ffffff;padding:20px;border-radius:8px;color:#333;">
    <h2 style="color:#007bff;">%s</h2>
    %s
    <p style="margin-top:20px;">Enjoy our services!</p>
    <div style="font-size:0.85em;color:#999;margin-top:30px;text-align:center;">
      &copy; %d Chakula. All rights reserved.
    </div>
  </div>
</body>
</html>`, subject, subject, message, time.Now().Year())
}
