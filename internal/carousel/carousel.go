// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package carousel rotates through the package catalog, one entry at a time,
// with optional automatic advancing on a ticker.
package carousel

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-travel-booking/models"
)

// DefaultInterval is the auto-rotation period used when none is configured.
const DefaultInterval = 2 * time.Second

var ErrNoPackages = errors.New("carousel needs at least one package")

// RotateFunc is called with the new index and package after every move,
// manual or automatic. It runs on the caller's goroutine for Next, Prev and
// Reset and on the rotation goroutine otherwise, so it must not block.
type RotateFunc func(index int, pkg models.Package)

// Carousel owns the current position over a fixed list of packages and the
// ticker that advances it. All methods are safe for concurrent use.
type Carousel struct {
	packages []models.Package
	interval time.Duration
	onRotate RotateFunc

	mu     sync.Mutex
	index  int
	cancel context.CancelFunc
	done   chan struct{}
	reset  chan struct{}
}

// New builds a stopped carousel positioned on the first package. A
// non-positive interval falls back to DefaultInterval; onRotate may be nil.
func New(packages []models.Package, interval time.Duration, onRotate RotateFunc) (*Carousel, error) {
	if len(packages) == 0 {
		return nil, ErrNoPackages
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Carousel{
		packages: append([]models.Package(nil), packages...),
		interval: interval,
		onRotate: onRotate,
		reset:    make(chan struct{}, 1),
	}, nil
}

// Current returns the package on display.
func (c *Carousel) Current() models.Package {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.packages[c.index]
}

// Index returns the position of the package on display.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Len returns the number of packages.
func (c *Carousel) Len() int {
	return len(c.packages)
}

// Next moves forward, wrapping to the first package, and restarts the
// auto-rotation period.
func (c *Carousel) Next() models.Package {
	p := c.move(1)
	c.restartTimer()
	return p
}

// Prev moves backward, wrapping to the last package, and restarts the
// auto-rotation period.
func (c *Carousel) Prev() models.Package {
	p := c.move(-1)
	c.restartTimer()
	return p
}

// Reset goes back to the first package and restarts the auto-rotation
// period.
func (c *Carousel) Reset() models.Package {
	c.mu.Lock()
	c.index = 0
	idx, p := c.index, c.packages[c.index]
	c.mu.Unlock()

	c.notify(idx, p)
	c.restartTimer()
	return p
}

// Start begins auto-rotation. It is a no-op when already running. Rotation
// stops when ctx is cancelled or Stop is called.
func (c *Carousel) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		select {
		case <-c.done:
			// previous run ended with its context
			c.cancel()
		default:
			return
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	go c.run(runCtx, c.done)
}

// Stop halts auto-rotation and waits for the rotation goroutine it stopped
// to exit. Calling Stop on a stopped carousel does nothing.
func (c *Carousel) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel = nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether auto-rotation is active.
func (c *Carousel) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel == nil {
		return false
	}
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}

func (c *Carousel) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	t := time.NewTicker(c.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.reset:
			t.Reset(c.interval)
		case <-t.C:
			c.move(1)
		}
	}
}

func (c *Carousel) move(step int) models.Package {
	c.mu.Lock()
	n := len(c.packages)
	c.index = ((c.index+step)%n + n) % n
	idx, p := c.index, c.packages[c.index]
	c.mu.Unlock()

	c.notify(idx, p)
	return p
}

func (c *Carousel) notify(idx int, p models.Package) {
	if c.onRotate != nil {
		c.onRotate(idx, p)
	}
}

// restartTimer asks the rotation goroutine to start a fresh period. A
// pending request already covers a new one.
func (c *Carousel) restartTimer() {
	select {
	case c.reset <- struct{}{}:
	default:
	}
}
