package service

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"blogCPT/internal/config"
)

// Mailer отправляет исходящие письма. Транспорт - чёрный ящик для хендлеров.
type Mailer interface {
	SendPasswordReset(toEmail, resetURL string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg *config.Config) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:   cfg.SMTP.From,
	}
}

func (m *smtpMailer) SendPasswordReset(toEmail, resetURL string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Password Reset Request")
	msg.SetBody("text/html", resetMailBody(resetURL))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("ошибка отправки письма на %s: %w", toEmail, err)
	}

	return nil
}

func resetMailBody(resetURL string) string {
	return fmt.Sprintf(`
<h1 style="font-family: Poppins; text-align: center;">Password Reset</h1>
<p style="text-align: center; font-family: Poppins; font-size: larger;">
Looks like you've forgotten your password. Don't worry! It happens to everyone.
Reset it by clicking on the link below. If you did not request this reset,
simply ignore this email and no changes will be made to your account.
</p>
<div style="text-align: center;">
<a href="%s" style="text-decoration: none; font-family: Poppins; padding: 20px;
background: rgb(255, 206, 92); margin: 50px; display: block; color: black;
font-size: 1.8em;">Reset my Password</a>
</div>
`, resetURL)
}
