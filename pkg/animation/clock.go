package animation

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock reports the current time to tickers and timers. Tests and headless
// drivers install a stepped clock so exit transitions finish on demand.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

type clockBox struct{ Clock }

var current atomic.Pointer[clockBox]

func init() { current.Store(&clockBox{wallClock{}}) }

// SetClock installs c, or the wall clock when c is nil, and returns the
// clock it replaced.
func SetClock(c Clock) Clock {
	if c == nil {
		c = wallClock{}
	}
	return current.Swap(&clockBox{c}).Clock
}

func Now() time.Time { return current.Load().Now() }

// ManualClock only moves when advanced. Headless drivers and tests install
// one so that exit transitions complete on their schedule.
type ManualClock struct {
	mu     sync.Mutex
	origin time.Time
	now    time.Time
}

func NewManualClock(origin time.Time) *ManualClock {
	return &ManualClock{origin: origin, now: origin}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Elapsed returns the total advanced since creation.
func (c *ManualClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.Sub(c.origin)
}

// Install makes c the package clock until restore is called.
func (c *ManualClock) Install() (restore func()) {
	prev := SetClock(c)
	return func() { SetClock(prev) }
}
