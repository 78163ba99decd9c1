package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/notejam/internal/config"
)

// SMTPSender delivers messages through an SMTP relay using PLAIN auth when
// credentials are configured.
type SMTPSender struct {
	addr string
	auth smtp.Auth

	// sendMail is smtp.SendMail, replaceable in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender creates an SMTPSender from config.
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	var auth smtp.Auth
	if cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return &SMTPSender{
		addr:     net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		auth:     auth,
		sendMail: smtp.SendMail,
	}
}

// Send delivers msg. smtp.SendMail is not context-aware, so ctx is only
// checked before the dial.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	if err := s.sendMail(s.addr, s.auth, msg.From, []string{msg.To}, buildMessage(msg, time.Now())); err != nil {
		return fmt.Errorf("mail: smtp send to %s: %w", s.addr, err)
	}
	return nil
}

// buildMessage renders msg as an RFC 5322 message with CRLF line endings.
func buildMessage(msg Message, now time.Time) []byte {
	var b strings.Builder
	writeHeader(&b, "From", msg.From)
	writeHeader(&b, "To", msg.To)
	writeHeader(&b, "Subject", msg.Subject)
	writeHeader(&b, "Date", now.Format(time.RFC1123Z))
	writeHeader(&b, "MIME-Version", "1.0")
	writeHeader(&b, "Content-Type", `text/plain; charset="utf-8"`)
	b.WriteString("\r\n")
	body := strings.ReplaceAll(msg.Body, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}

// writeHeader strips CR/LF from value so user data cannot inject headers.
func writeHeader(b *strings.Builder, key, value string) {
	value = strings.NewReplacer("\r", "", "\n", "").Replace(value)
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\r\n")
}
