// Package animation provides the frame-driven timing primitives used by
// transient UI such as menu exit transitions.
//
// Time never advances on its own: the host frame loop (the engine, the
// terminal showcase, or the widget tester) calls [StepTickers] once per
// frame, and every running [Ticker] sees the time elapsed since it started
// according to the package [Clock].
//
//	timer := animation.AfterFunc(200*time.Millisecond, func() {
//	    s.SetState(func() { s.mounted = false })
//	})
//	// later, if the menu reopens:
//	timer.Stop()
package animation

import (
	"slices"
	"sync"
	"time"
)

// running holds started tickers in start order.
var running struct {
	sync.Mutex
	tickers []*Ticker
}

// Ticker invokes onFrame with the elapsed time on every StepTickers call
// between Start and Stop.
type Ticker struct {
	onFrame func(elapsed time.Duration)
	started time.Time
	active  bool
}

func NewTicker(onFrame func(elapsed time.Duration)) *Ticker {
	return &Ticker{onFrame: onFrame}
}

// Start registers the ticker. Starting a running ticker does nothing.
func (t *Ticker) Start() {
	running.Lock()
	defer running.Unlock()
	if t.active {
		return
	}
	t.active = true
	t.started = Now()
	running.tickers = append(running.tickers, t)
}

// Stop unregisters the ticker. A stopped ticker is skipped even if the
// current StepTickers pass already collected it.
func (t *Ticker) Stop() {
	running.Lock()
	defer running.Unlock()
	if !t.active {
		return
	}
	t.active = false
	running.tickers = slices.DeleteFunc(running.tickers, func(x *Ticker) bool { return x == t })
}

func (t *Ticker) IsActive() bool {
	running.Lock()
	defer running.Unlock()
	return t.active
}

// Elapsed is zero for a stopped ticker.
func (t *Ticker) Elapsed() time.Duration {
	if !t.IsActive() {
		return 0
	}
	return Now().Sub(t.started)
}

// StepTickers calls every running ticker once, oldest first.
func StepTickers() {
	running.Lock()
	batch := slices.Clone(running.tickers)
	running.Unlock()

	for _, t := range batch {
		if !t.IsActive() || t.onFrame == nil {
			continue
		}
		t.onFrame(Now().Sub(t.started))
	}
}

// HasActiveTickers reports whether any ticker is running.
func HasActiveTickers() bool {
	running.Lock()
	defer running.Unlock()
	return len(running.tickers) > 0
}
