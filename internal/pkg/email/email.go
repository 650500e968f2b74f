package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/smtp"
	"net/textproto"

	"github.com/scorecard-pro/scorecard-backend-go/internal/config"
)

// Attachment is a file carried by an outgoing message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Mailer sends plain-text messages with attachments. Sends are not retried;
// the caller decides what a failed delivery means.
type Mailer interface {
	Send(to, subject, body string, attachments []Attachment) error
}

type smtpMailer struct {
	cfg config.SMTPConfig
}

// NewMailer creates a mailer from explicit SMTP configuration.
func NewMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(to, subject, body string, attachments []Attachment) error {
	if m.cfg.Host == "" {
		return fmt.Errorf("smtp is not configured")
	}

	message, err := buildMessage(m.cfg.FromName, m.cfg.From, to, subject, body, attachments)
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, message); err != nil {
		slog.Error("Failed to send email", "to", to, "subject", subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("Email sent successfully", "to", to, "subject", subject, "attachments", len(attachments))
	return nil
}

// buildMessage assembles a multipart/mixed MIME message: a plain-text body
// part followed by one base64 part per attachment.
func buildMessage(fromName, from, to, subject, body string, attachments []Attachment) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	headers := fmt.Sprintf("From: %s <%s>\r\n", fromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", writer.Boundary())
	headers += "\r\n"

	var msg bytes.Buffer
	msg.WriteString(headers)

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", `text/plain; charset="UTF-8"`)
	textPart, err := writer.CreatePart(textHeader)
	if err != nil {
		return nil, fmt.Errorf("create text part: %w", err)
	}
	if _, err := textPart.Write([]byte(body)); err != nil {
		return nil, fmt.Errorf("write text part: %w", err)
	}

	for _, att := range attachments {
		partHeader := textproto.MIMEHeader{}
		partHeader.Set("Content-Type", att.ContentType)
		partHeader.Set("Content-Transfer-Encoding", "base64")
		partHeader.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Filename))

		part, err := writer.CreatePart(partHeader)
		if err != nil {
			return nil, fmt.Errorf("create attachment part %s: %w", att.Filename, err)
		}

		encoded := make([]byte, base64.StdEncoding.EncodedLen(len(att.Data)))
		base64.StdEncoding.Encode(encoded, att.Data)
		// 76-char lines per RFC 2045
		for len(encoded) > 0 {
			n := 76
			if len(encoded) < n {
				n = len(encoded)
			}
			if _, err := part.Write(encoded[:n]); err != nil {
				return nil, fmt.Errorf("write attachment %s: %w", att.Filename, err)
			}
			if _, err := part.Write([]byte("\r\n")); err != nil {
				return nil, fmt.Errorf("write attachment %s: %w", att.Filename, err)
			}
			encoded = encoded[n:]
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	msg.Write(buf.Bytes())
	return msg.Bytes(), nil
}
