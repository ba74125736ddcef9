package carousel

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not reached before deadline")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestDriverStartStopIdempotent(t *testing.T) {
	var ticks atomic.Int64
	d := NewDriver(time.Millisecond, func(time.Duration) { ticks.Add(1) })

	if d.Running() {
		t.Fatal("new driver should be stopped")
	}
	if d.Stop() {
		t.Error("Stop on a stopped driver should report false")
	}
	if !d.Start(context.Background()) {
		t.Fatal("first Start should arm the driver")
	}
	if d.Start(context.Background()) {
		t.Error("second Start should not arm another driver")
	}

	waitFor(t, func() bool { return ticks.Load() >= 3 })

	if !d.Stop() {
		t.Error("Stop on a running driver should report true")
	}
	if d.Stop() {
		t.Error("second Stop should report false")
	}

	after := ticks.Load()
	time.Sleep(10 * time.Millisecond)
	if got := ticks.Load(); got != after {
		t.Errorf("driver ticked %d times after Stop returned", got-after)
	}
}

func TestDriverRearm(t *testing.T) {
	var ticks atomic.Int64
	d := NewDriver(time.Millisecond, func(time.Duration) { ticks.Add(1) })

	for i := 0; i < 3; i++ {
		if !d.Start(context.Background()) {
			t.Fatalf("round %d: Start failed", i)
		}
		before := ticks.Load()
		waitFor(t, func() bool { return ticks.Load() > before })
		d.Stop()
	}
}

func TestDriverParentCancel(t *testing.T) {
	d := NewDriver(time.Millisecond, func(time.Duration) {})
	ctx, cancel := context.WithCancel(context.Background())

	d.Start(ctx)
	cancel()
	waitFor(t, func() bool { return !d.Running() })

	if !d.Start(context.Background()) {
		t.Error("driver should be restartable after its context ended")
	}
	d.Stop()
}

func TestDriverElapsed(t *testing.T) {
	got := make(chan time.Duration, 1)
	d := NewDriver(5*time.Millisecond, func(elapsed time.Duration) {
		select {
		case got <- elapsed:
		default:
		}
	})
	d.Start(context.Background())
	defer d.Stop()

	select {
	case elapsed := <-got:
		if elapsed <= 0 {
			t.Errorf("elapsed = %v, want > 0", elapsed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no tick received")
	}
}

func TestNewDriverDefaultInterval(t *testing.T) {
	d := NewDriver(0, func(time.Duration) {})
	if d.interval != DefaultFrameInterval {
		t.Errorf("interval = %v, want %v", d.interval, DefaultFrameInterval)
	}
}
