// Package notify holds the notification sinks the enricher reports to.
package notify

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/akyairhashvil/leadenricher/internal/models"
)

// Sink receives notifications.
type Sink interface {
	Notify(n models.Notification)
}

// Channel is a buffered sink read by the TUI. Notify never blocks; when the
// buffer is full the notification is dropped and counted.
type Channel struct {
	ch      chan models.Notification
	dropped atomic.Int64
}

func NewChannel(size int) *Channel {
	if size < 1 {
		size = 1
	}
	return &Channel{ch: make(chan models.Notification, size)}
}

func (c *Channel) Notify(n models.Notification) {
	select {
	case c.ch <- n:
	default:
		c.dropped.Add(1)
	}
}

// C returns the receive side.
func (c *Channel) C() <-chan models.Notification { return c.ch }

// Dropped reports how many notifications were discarded.
func (c *Channel) Dropped() int64 { return c.dropped.Load() }

// Log writes notifications to a zerolog logger.
type Log struct {
	log zerolog.Logger
}

func NewLog(log zerolog.Logger) *Log {
	return &Log{log: log}
}

func (l *Log) Notify(n models.Notification) {
	ev := l.log.Info()
	if n.Variant == models.VariantError {
		ev = l.log.Warn()
	}
	ev.Str("title", n.Title).Str("variant", string(n.Variant)).Msg(n.Message)
}

// Multi fans a notification out to every sink in order.
type Multi []Sink

func (m Multi) Notify(n models.Notification) {
	for _, s := range m {
		if s != nil {
			s.Notify(n)
		}
	}
}
