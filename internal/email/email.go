package email

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/smtp"
	"time"

	"secueval/internal/config"
)

// Service handles email notifications
type Service struct {
	config *config.SMTPConfig
}

// NewService creates a new email service
func NewService(cfg *config.SMTPConfig) *Service {
	return &Service{config: cfg}
}

// SendEvaluationCompleted notifies the configured recipient that an entity
// has finished its evaluation. Errors are logged, not returned: completion
// of the evaluation itself must not depend on mail delivery.
func (s *Service) SendEvaluationCompleted(evaluationID uint, entityName string) {
	if !s.config.Enabled || s.config.NotifyTo == "" {
		return
	}

	subject := fmt.Sprintf("Evaluation completed: %s", entityName)

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Evaluation Completed</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #27ae60;">Evaluation completed</h2>
        <p>The entity <strong>%s</strong> has answered every objective of its security self-assessment.</p>
        <div style="background-color: #d4edda; border-left: 4px solid #28a745; padding: 15px; margin: 20px 0;">
            <p style="margin: 5px 0;"><strong>Evaluation ID:</strong> #%d</p>
            <p style="margin: 5px 0;"><strong>Completed at:</strong> %s</p>
        </div>
        <p>The conformity results are available on the dashboard.</p>
        <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
        <p style="color: #999; font-size: 12px;">This is an automated notification. Please do not reply.</p>
    </div>
</body>
</html>
`, entityName, evaluationID, time.Now().Format("2006-01-02 15:04:05 MST"))

	if err := s.sendEmail(s.config.NotifyTo, subject, body); err != nil {
		slog.Error("Failed to send completion notification",
			"evaluation_id", evaluationID,
			"error", err,
		)
	}
}

// sendEmail sends an email using SMTP
func (s *Service) sendEmail(to, subject, body string) error {
	headers := map[string]string{
		"From":         s.config.From,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	var message bytes.Buffer
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := net.JoinHostPort(s.config.Host, s.config.Port)
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func(conn net.Conn) {
		if err := conn.Close(); err != nil {
			slog.Error("Failed to close SMTP connection", "error", err)
		}
	}(conn)

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer func(client *smtp.Client) {
		if err := client.Close(); err != nil {
			slog.Error("Failed to close SMTP client", "error", err)
		}
	}(client)

	// No authentication for local development relays like Mailpit
	if s.config.Username != "" && s.config.Password != "" {
		auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
		_ = client.Auth(auth)
	}

	if err := client.Mail(s.config.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to initiate data transfer: %w", err)
	}
	defer func(wc io.WriteCloser) {
		if err := wc.Close(); err != nil {
			slog.Error("Failed to close data writer", "error", err)
		}
	}(wc)

	if _, err := wc.Write(message.Bytes()); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	slog.Info("Email sent", "to", to)
	return nil
}
