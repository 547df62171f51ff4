package alert

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"homecare-chatbot/pkg"
)

type recordingSink struct {
	mu         sync.Mutex
	deliveries []string
	err        error
}

func (s *recordingSink) Deliver(_ context.Context, recipient string, a pkg.AlertPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.deliveries = append(s.deliveries, recipient+":"+a.ID)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.deliveries)
}

func testAlert(id string) pkg.AlertPayload {
	return pkg.AlertPayload{ID: id, PatientID: "p1", Category: "heart_rate"}
}

func TestDispatcherFansOutToAllRecipients(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, []string{"a", "b", "c"}, 8, zerolog.Nop())
	d.Start()
	d.Notify(testAlert("1"))
	d.Notify(testAlert("2"))
	d.Stop()

	if sink.count() != 6 {
		t.Fatalf("expected 6 deliveries, got %d", sink.count())
	}
}

func TestDispatcherStopDrainsQueue(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, []string{"a"}, 16, zerolog.Nop())
	// Enqueue before the worker runs so Stop has something to drain.
	for i := 0; i < 10; i++ {
		d.Notify(testAlert("x"))
	}
	d.Start()
	d.Stop()
	if sink.count() != 10 {
		t.Errorf("expected queued alerts drained on Stop, got %d", sink.count())
	}
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, []string{"a"}, 1, zerolog.Nop())
	// Worker not started: the second Notify finds the queue full and must
	// return immediately instead of blocking.
	d.Notify(testAlert("kept"))
	d.Notify(testAlert("dropped"))
	d.Start()
	d.Stop()
	if sink.count() != 1 {
		t.Errorf("expected exactly the first alert delivered, got %d", sink.count())
	}
}

func TestDispatcherNotifyAfterStop(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, []string{"a"}, 4, zerolog.Nop())
	d.Start()
	d.Stop()
	// Must neither panic nor deliver.
	d.Notify(testAlert("late"))
	if sink.count() != 0 {
		t.Errorf("expected no deliveries after stop, got %d", sink.count())
	}
	// Stop is idempotent.
	d.Stop()
}

func TestDispatcherContinuesPastFailures(t *testing.T) {
	sink := &recordingSink{err: errors.New("unreachable")}
	d := NewDispatcher(sink, []string{"a", "b"}, 4, zerolog.Nop())
	d.Start()
	d.Notify(testAlert("1"))
	d.Notify(testAlert("2"))
	// Failures are logged, not retried; Stop still drains and returns.
	d.Stop()
	if sink.count() != 0 {
		t.Errorf("expected no recorded deliveries, got %d", sink.count())
	}
}

func TestDispatcherDefaultQueueSize(t *testing.T) {
	d := NewDispatcher(&recordingSink{}, nil, 0, zerolog.Nop())
	if cap(d.queue) != 64 {
		t.Errorf("expected default queue capacity 64, got %d", cap(d.queue))
	}
}
