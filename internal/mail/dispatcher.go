package mail

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/notejam/internal/config"
)

const (
	sendTimeout  = 30 * time.Second
	drainTimeout = 10 * time.Second
)

// Dispatcher queues messages and delivers them on a fixed pool of worker
// goroutines. Failures are logged, never returned to the enqueuer.
// A send already in progress at shutdown is allowed to finish.
type Dispatcher struct {
	sender  Sender
	from    string
	workers int
	queue   chan Message
	log     *slog.Logger
}

// NewDispatcher creates a Dispatcher. Run must be called for messages to be delivered.
func NewDispatcher(sender Sender, cfg config.MailConfig, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		from:    cfg.From,
		workers: cfg.Workers,
		queue:   make(chan Message, cfg.QueueSize),
		log:     logger.With("component", "mail_dispatcher"),
	}
}

// Enqueue schedules msg for delivery without blocking. It fills in the
// configured sender address when msg.From is empty. Returns false if the
// queue is full and the message was dropped.
func (d *Dispatcher) Enqueue(msg Message) bool {
	if msg.From == "" {
		msg.From = d.from
	}
	select {
	case d.queue <- msg:
		return true
	default:
		d.log.Warn("mail queue full, message dropped",
			slog.String("to", msg.To),
			slog.String("subject", msg.Subject),
		)
		return false
	}
}

// Pending returns the number of queued, undelivered messages.
func (d *Dispatcher) Pending() int { return len(d.queue) }

// Capacity returns the queue size.
func (d *Dispatcher) Capacity() int { return cap(d.queue) }

// Run delivers queued messages until ctx is cancelled, then drains whatever
// is still queued within a bounded time.
func (d *Dispatcher) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < d.workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case msg := <-d.queue:
					d.deliver(context.WithoutCancel(gctx), msg)
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
	defer cancel()
	for {
		select {
		case msg := <-d.queue:
			d.deliver(drainCtx, msg)
		default:
			return nil
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, msg Message) {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := d.sender.Send(sendCtx, msg); err != nil {
		d.log.Error("mail delivery failed",
			slog.String("to", msg.To),
			slog.String("subject", msg.Subject),
			slog.String("error", err.Error()),
		)
		return
	}
	d.log.Debug("mail delivered", slog.String("to", msg.To))
}

// NewSender returns the transport selected by cfg.Driver.
func NewSender(cfg config.MailConfig, logger *slog.Logger) Sender {
	if strings.EqualFold(cfg.Driver, "smtp") {
		return NewSMTPSender(cfg)
	}
	return NewLogSender(logger)
}
