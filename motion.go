package main

import (
	"sync"
	"time"
)

// motionDriver re-applies the most recently stored intent at a fixed
// rate until stopped. The intent is applied once synchronously on Start
// so the first response has no tick latency.
//
// Stop is synchronous: once it returns, apply will not be called again.
// Ticks and Stop serialize on the same mutex, and a stopped generation
// never applies.
type motionDriver struct {
	mu       sync.Mutex
	interval time.Duration
	apply    func(dx, dy float64)

	dx, dy float64
	active bool
	gen    uint64
	ticker *time.Ticker
	done   chan struct{}
}

func newMotionDriver(interval time.Duration, apply func(dx, dy float64)) *motionDriver {
	return &motionDriver{interval: interval, apply: apply}
}

// Start cancels any previous run, stores the intent, applies it once and
// begins ticking.
func (d *motionDriver) Start(dx, dy float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()

	d.dx, d.dy = dx, dy
	d.active = true
	d.gen++
	gen := d.gen

	d.apply(dx, dy)

	ticker := time.NewTicker(d.interval)
	done := make(chan struct{})
	d.ticker = ticker
	d.done = done

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				d.mu.Lock()
				if d.active && d.gen == gen && (d.dx != 0 || d.dy != 0) {
					d.apply(d.dx, d.dy)
				}
				d.mu.Unlock()
			}
		}
	}()
}

// Update replaces the stored intent; last write wins. A zero intent
// pauses emission without stopping the driver.
func (d *motionDriver) Update(dx, dy float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.active {
		return
	}
	d.dx, d.dy = dx, dy
}

// Stop cancels the tick. No apply happens after Stop returns.
func (d *motionDriver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *motionDriver) stopLocked() {
	if !d.active {
		return
	}
	d.active = false
	d.gen++
	d.ticker.Stop()
	close(d.done)
	d.ticker = nil
	d.done = nil
}

func (d *motionDriver) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}
