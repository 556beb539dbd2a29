package audit

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherStampsEvents(t *testing.T) {
	pub := NewPublisher(4, slog.New(slog.DiscardHandler))

	pub.Emit(context.Background(), Event{EstateID: "e1", Case: "standard"})

	event := <-pub.Inbox()
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.Timestamp.IsZero())
	assert.Equal(t, "e1", event.EstateID)
}

func TestPublisherKeepsCallerID(t *testing.T) {
	pub := NewPublisher(4, slog.New(slog.DiscardHandler))

	pub.Emit(context.Background(), Event{ID: "fixed", EstateID: "e1"})

	event := <-pub.Inbox()
	assert.Equal(t, "fixed", event.ID)
}

func TestPublisherDropsWhenFull(t *testing.T) {
	pub := NewPublisher(1, slog.New(slog.DiscardHandler))

	pub.Emit(context.Background(), Event{EstateID: "kept"})
	pub.Emit(context.Background(), Event{EstateID: "dropped"})

	assert.Equal(t, int64(1), pub.Dropped())

	event := <-pub.Inbox()
	assert.Equal(t, "kept", event.EstateID)
}

func TestWorkerDrainsIntoSink(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	pub := NewPublisher(8, logger)
	sink := NewMemorySink()
	worker := NewWorker(sink, pub.Inbox(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = worker.Run(ctx)
	}()

	pub.Emit(ctx, Event{EstateID: "e1", Case: "awl"})
	pub.Emit(ctx, Event{EstateID: "e2", Case: "radd"})

	require.Eventually(t, func() bool {
		return len(sink.Events()) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done

	events := sink.Events()
	assert.Equal(t, "e1", events[0].EstateID)
	assert.Equal(t, "e2", events[1].EstateID)
}

type failingSink struct {
	calls atomic.Int32
}

func (s *failingSink) Append(context.Context, Event) error {
	s.calls.Add(1)
	return errors.New("broker unavailable")
}

func TestWorkerSurvivesSinkFailures(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	pub := NewPublisher(8, logger)
	sink := &failingSink{}
	worker := NewWorker(sink, pub.Inbox(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = worker.Run(ctx)
	}()

	pub.Emit(ctx, Event{EstateID: "e1"})
	pub.Emit(ctx, Event{EstateID: "e2"})

	require.Eventually(t, func() bool {
		return sink.calls.Load() == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
