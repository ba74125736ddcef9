package carousel

import (
	"context"
	"sync"
	"time"
)

// DefaultFrameInterval is the auto-rotate tick period (60 Hz).
const DefaultFrameInterval = time.Second / 60

// Driver runs a callback periodically on its own goroutine until stopped.
// Start and Stop are idempotent; at most one goroutine is ever armed.
type Driver struct {
	interval time.Duration
	tick     func(elapsed time.Duration)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDriver creates a stopped driver. A non-positive interval uses DefaultFrameInterval.
func NewDriver(interval time.Duration, tick func(elapsed time.Duration)) *Driver {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Driver{interval: interval, tick: tick}
}

// Start arms the driver. It returns false if it was already running.
// The driver also stops when ctx is cancelled.
func (d *Driver) Start(ctx context.Context) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		return false
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	d.cancel = cancel
	d.done = done

	go d.run(ctx, done)
	return true
}

// Stop disarms the driver and waits for its goroutine to exit.
// It returns false if the driver was not running. Stop must not be called
// from inside the tick callback.
func (d *Driver) Stop() bool {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel, d.done = nil, nil
	d.mu.Unlock()

	if cancel == nil {
		return false
	}
	cancel()
	<-done
	return true
}

// Running reports whether the driver is armed.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancel != nil
}

func (d *Driver) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer d.detach(done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			d.tick(elapsed)
		}
	}
}

// detach clears the handle when the parent context ended the run on its own.
func (d *Driver) detach(done chan struct{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done == done {
		d.cancel()
		d.cancel, d.done = nil, nil
	}
}
