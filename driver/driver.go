// Package driver runs a callback once per display refresh until told to stop.
package driver

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrAlreadyRunning is returned by Run when the loop is already active.
var ErrAlreadyRunning = errors.New("driver: loop already running")

// FrameSource paces the loop. Next blocks until the next refresh
// opportunity and reports false once the host is gone.
type FrameSource interface {
	Next(ctx context.Context) bool
}

// TickFunc is invoked once per frame with the zero-based frame number.
type TickFunc func(frame uint64)

// Driver owns the frame loop. At most one loop runs at a time.
type Driver struct {
	src  FrameSource
	tick TickFunc

	mu     sync.Mutex
	active bool
	cancel context.CancelFunc

	frames atomic.Uint64
}

// New creates a driver. Nothing runs until Run.
func New(src FrameSource, tick TickFunc) *Driver {
	return &Driver{src: src, tick: tick}
}

// Run drives ticks on the calling goroutine until ctx is cancelled, Stop is
// called, or the frame source ends. The active flag is checked before every
// re-arm, so a Stop issued from inside a tick ends the loop after that tick.
func (d *Driver) Run(ctx context.Context) error {
	d.mu.Lock()
	if d.active {
		d.mu.Unlock()
		return ErrAlreadyRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	d.active = true
	d.cancel = cancel
	d.mu.Unlock()

	defer func() {
		cancel()
		d.mu.Lock()
		d.active = false
		d.cancel = nil
		d.mu.Unlock()
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		if !d.src.Next(ctx) {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		d.tick(d.frames.Load())
		d.frames.Add(1)
	}
}

// Stop ends a running loop. It is safe to call when idle.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
	}
}

// Running reports whether a loop is active.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// Frames returns the number of completed ticks.
func (d *Driver) Frames() uint64 {
	return d.frames.Load()
}

// Ticker is a FrameSource for hosts without a display. An interval of zero
// yields frames as fast as the loop can take them.
type Ticker struct {
	interval time.Duration
	t        *time.Ticker
}

// NewTicker creates a wall-clock frame source.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

// Next waits for the next tick or cancellation.
func (t *Ticker) Next(ctx context.Context) bool {
	if t.interval <= 0 {
		return ctx.Err() == nil
	}
	if t.t == nil {
		t.t = time.NewTicker(t.interval)
	}
	select {
	case <-ctx.Done():
		t.t.Stop()
		t.t = nil
		return false
	case <-t.t.C:
		return true
	}
}

// Limit wraps a source so it ends after n frames. Zero means no limit.
func Limit(src FrameSource, n uint64) FrameSource {
	if n == 0 {
		return src
	}
	return &limited{src: src, left: n}
}

type limited struct {
	src  FrameSource
	left uint64
}

func (l *limited) Next(ctx context.Context) bool {
	if l.left == 0 {
		return false
	}
	if !l.src.Next(ctx) {
		return false
	}
	l.left--
	return true
}
