package email

import (
	"context"
	"fmt"
	"log"
	"net/smtp"

	"hayvanpazari-backend/internal/config"
)

type EmailSender struct {
	config *config.Config
}

func NewEmailSender(cfg *config.Config) *EmailSender {
	return &EmailSender{config: cfg}
}

// SendEmail delivers a notification email. Without SMTP credentials it
// falls back to logging, which keeps local development working.
func (s *EmailSender) SendEmail(_ context.Context, toEmail, subject, body string) error {
	if s.config.SMTP.Email == "" || s.config.SMTP.Password == "" {
		log.Printf("SMTP credentials not set. Mocking email to %s: %s - %s", toEmail, subject, body)
		return nil
	}

	from := s.config.SMTP.Email
	password := s.config.SMTP.Password
	host := s.config.SMTP.Host
	port := s.config.SMTP.Port
	address := host + ":" + port

	header := "Subject: " + subject + "\n"
	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	html := fmt.Sprintf(`
		<html>
			<body>
				<h2>%s</h2>
				<p>%s</p>
			</body>
		</html>
	`, subject, body)

	message := []byte(header + mime + html)

	auth := smtp.PlainAuth("", from, password, host)

	if err := smtp.SendMail(address, auth, from, []string{toEmail}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
