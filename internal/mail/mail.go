// Package mail delivers outgoing email. Delivery is asynchronous: callers
// enqueue a Message on a Dispatcher and never see transport failures.
package mail

import (
	"context"
	"errors"
	"log/slog"
)

// Message is a plain-text email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Validate checks that the message can be handed to a transport.
func (m Message) Validate() error {
	if m.To == "" {
		return errors.New("mail: recipient is required")
	}
	if m.From == "" {
		return errors.New("mail: sender is required")
	}
	return nil
}

// Sender delivers a single message synchronously.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender is a stub transport: it records the envelope at info level and
// the body at debug level, and never fails.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("sender", "log")}
}

// Send logs msg.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "mail sent",
		slog.String("from", msg.From),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	s.log.DebugContext(ctx, "mail body", slog.String("body", msg.Body))
	return nil
}
