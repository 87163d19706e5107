package followup

import (
	"github.com/rs/zerolog"
	gomail "gopkg.in/gomail.v2"
)

// Sender delivers one rendered campaign email.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender delivers through a real SMTP relay.
type SMTPSender struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func (s SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	return d.DialAndSend(m)
}

// LogSender is used when SMTP is not configured: the campaign still runs end
// to end, the delivery is just logged instead of relayed.
type LogSender struct {
	Logger zerolog.Logger
}

func (s LogSender) Send(to, subject, body string) error {
	s.Logger.Info().
		Str("to", to).
		Str("subject", subject).
		Int("body_len", len(body)).
		Msg("campaign email (smtp not configured)")
	return nil
}
