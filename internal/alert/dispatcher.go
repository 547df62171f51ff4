package alert

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"homecare-chatbot/pkg"
)

// Sink delivers one alert to one recipient.  Implementations are expected to
// log their own transport detail; the dispatcher only records the outcome.
type Sink interface {
	Deliver(ctx context.Context, recipient string, a pkg.AlertPayload) error
}

// Dispatcher fans alerts out to a fixed set of clinician recipients from a
// bounded queue consumed by a single worker, so notification latency or
// failure never blocks the conversational response path.  Delivery is
// at-least-once per recipient with no retries.
type Dispatcher struct {
	sink       Sink
	recipients []string
	queue      chan pkg.AlertPayload
	log        zerolog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher with the given queue capacity.  Call
// Start before Notify and Stop to drain on shutdown.
func NewDispatcher(sink Sink, recipients []string, queueSize int, log zerolog.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Dispatcher{
		sink:       sink,
		recipients: recipients,
		queue:      make(chan pkg.AlertPayload, queueSize),
		log:        log,
	}
}

// Start launches the delivery worker.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go d.run()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for a := range d.queue {
		for _, r := range d.recipients {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			err := d.sink.Deliver(ctx, r, a)
			cancel()
			if err != nil {
				d.log.Error().Err(err).
					Str("alert_id", a.ID).
					Str("patient_id", a.PatientID).
					Str("category", a.Category).
					Msg("alert delivery failed")
				continue
			}
			d.log.Info().
				Str("alert_id", a.ID).
				Str("patient_id", a.PatientID).
				Str("category", a.Category).
				Msg("alert delivered")
		}
	}
}

// Notify enqueues an alert without blocking.  When the queue is full or the
// dispatcher is stopped the alert is dropped with a log line; the caller's
// flow proceeds either way.
func (d *Dispatcher) Notify(a pkg.AlertPayload) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.log.Warn().Str("alert_id", a.ID).Msg("alert dropped: dispatcher stopped")
		return
	}
	select {
	case d.queue <- a:
	default:
		d.log.Warn().Str("alert_id", a.ID).Str("patient_id", a.PatientID).
			Msg("alert dropped: queue full")
	}
}

// Stop closes the queue and waits for queued alerts to drain.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()
	d.wg.Wait()
}
