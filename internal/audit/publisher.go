package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sink persists audit events. Swap Kafka for memory without touching the
// publisher or worker.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Publisher accepts events from request handlers and hands them to the
// worker through a bounded channel. Emit never blocks: when the buffer is
// full the event is dropped and counted, because a slow audit transport must
// not stall calculations.
type Publisher struct {
	inbox   chan Event
	logger  *slog.Logger
	mu      sync.Mutex
	dropped int64
}

func NewPublisher(buffer int, logger *slog.Logger) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{
		inbox:  make(chan Event, buffer),
		logger: logger,
	}
}

// Emit queues an event for the worker, stamping ID and timestamp when unset.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case p.inbox <- event:
	default:
		p.mu.Lock()
		p.dropped++
		dropped := p.dropped
		p.mu.Unlock()
		if p.logger != nil {
			p.logger.WarnContext(ctx, "audit buffer full, event dropped",
				"event_id", event.ID,
				"dropped_total", dropped,
			)
		}
	}
}

// Inbox exposes the event channel for the worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}

// Dropped reports how many events were discarded due to a full buffer.
func (p *Publisher) Dropped() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dropped
}
