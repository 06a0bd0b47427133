package email

import (
	"fmt"
	"net/smtp"

	"github.com/skilllink/skilllink/internal/pkg/logger"
)

// Config holds SMTP settings for outgoing mail
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// BaseURL is the externally visible API base used in verification links
	BaseURL string
}

// Service sends transactional emails
type Service struct {
	config Config
}

// NewService creates a new email Service
func NewService(config Config) *Service {
	return &Service{config: config}
}

// SendVerificationEmail sends the email verification link to a newly registered user.
// When no SMTP host is configured the link is logged instead, which keeps local
// development working without a mail server.
func (s *Service) SendVerificationEmail(to, fullName, token string) error {
	verifyURL := fmt.Sprintf("%s/api/auth/verify-email?token=%s", s.config.BaseURL, token)

	if s.config.Host == "" {
		logger.Info().
			Str("email", to).
			Str("verifyUrl", verifyURL).
			Msg("SMTP not configured, skipping verification email")
		return nil
	}

	subject := "Verify your SkillLink account"
	body := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Welcome to SkillLink, %s!</h2>
	<p>Please confirm your email address to activate your account.</p>
	<p><a href="%s" style="background-color:#4CAF50;color:white;padding:10px 20px;text-decoration:none;border-radius:4px;">Verify Email</a></p>
	<p>This link expires in 24 hours. If you did not create an account, you can ignore this email.</p>
</body>
</html>`, fullName, verifyURL)

	return s.send(to, subject, body)
}

// SendWelcomeEmail sends a short welcome mail after successful verification
func (s *Service) SendWelcomeEmail(to, fullName string) error {
	if s.config.Host == "" {
		logger.Info().Str("email", to).Msg("SMTP not configured, skipping welcome email")
		return nil
	}

	subject := "Your SkillLink account is ready"
	body := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Hi %s,</h2>
	<p>Your email is verified and your account is active. Post a request or share a skill to get started.</p>
</body>
</html>`, fullName)

	return s.send(to, subject, body)
}

func (s *Service) send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.config.From, to, subject, htmlBody))

	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	if err := smtp.SendMail(addr, auth, s.config.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
