package audit

import (
	"context"
	"log/slog"
)

// Worker drains the publisher's inbox into the sink. Sink failures are
// logged and skipped; the audit trail is best-effort and must not wedge the
// drain loop.
type Worker struct {
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.sink.Append(ctx, event); err != nil && w.logger != nil {
				w.logger.ErrorContext(ctx, "audit append failed",
					"event_id", event.ID,
					"error", err,
				)
			}
		}
	}
}
