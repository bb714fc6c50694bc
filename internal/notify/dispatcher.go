package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"webhook-relay/internal/model"
	"webhook-relay/pkg/log"
)

// Dispatcher fans each notification out to every target in its own goroutine.
// Failures are logged and recorded in the history, never returned.
type Dispatcher struct {
	l       log.Logger
	targets []Target
	timeout time.Duration
	history *History

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher over targets.
func NewDispatcher(l log.Logger, cfg Config, targets ...Target) (*Dispatcher, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	history, err := NewHistory(cfg.HistorySize)
	if err != nil {
		return nil, fmt.Errorf("notify: history: %w", err)
	}

	return &Dispatcher{
		l:       l,
		targets: targets,
		timeout: cfg.Timeout,
		history: history,
	}, nil
}

// History exposes recent deliveries.
func (d *Dispatcher) History() *History {
	return d.history
}

// Sinks returns the names of the configured sinks.
func (d *Dispatcher) Sinks() []string {
	names := make([]string, 0, len(d.targets))
	for _, t := range d.targets {
		names = append(names, t.Sink.Name())
	}
	return names
}

// Dispatch starts one delivery per target and returns immediately. Deliveries
// outlive ctx cancellation but are bounded by the dispatcher timeout.
func (d *Dispatcher) Dispatch(ctx context.Context, n model.Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.l.Warnf(ctx, "notify.Dispatcher.Dispatch: %v, dropping delivery %s", ErrClosed, n.DeliveryID)
		return
	}

	base := context.WithoutCancel(ctx)
	for _, t := range d.targets {
		d.wg.Add(1)
		go d.deliver(base, t, n)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, t Target, n model.Notification) {
	defer d.wg.Done()

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	text := t.Render(n.Text)
	start := time.Now()
	err := notifySafely(ctx, t.Sink, text)

	rec := Delivery{
		DeliveryID: n.DeliveryID,
		Category:   n.Category,
		Sink:       t.Sink.Name(),
		Text:       text,
		Status:     StatusSent,
		Duration:   time.Since(start),
		At:         start,
	}
	if err != nil {
		rec.Status = StatusFailed
		rec.Error = err.Error()
		d.l.Warnf(ctx, "notify.Dispatcher.deliver: sink %s delivery %s: %v", rec.Sink, n.DeliveryID, err)
	} else {
		d.l.Debugf(ctx, "notify.Dispatcher.deliver: sink %s delivery %s sent in %s", rec.Sink, n.DeliveryID, rec.Duration)
	}
	d.history.Add(rec)
}

func notifySafely(ctx context.Context, s Sink, text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSinkPanicked, r)
		}
	}()
	return s.Notify(ctx, text)
}

// Close stops accepting notifications, waits for in-flight deliveries until
// ctx is done, then closes every sink that implements io.Closer.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	var errs []error
	select {
	case <-done:
	case <-ctx.Done():
		errs = append(errs, fmt.Errorf("notify: waiting for deliveries: %w", ctx.Err()))
	}

	for _, t := range d.targets {
		c, ok := t.Sink.(io.Closer)
		if !ok {
			continue
		}
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("notify: close %s: %w", t.Sink.Name(), err))
		}
	}
	return errors.Join(errs...)
}
