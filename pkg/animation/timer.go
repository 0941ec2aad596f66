package animation

import "time"

// Timer is a cancellable deferred task driven by the frame loop.
//
// The callback runs on the first StepTickers call at which at least the
// configured duration has elapsed. Stop guarantees the callback will not
// run afterwards, so an owner can invalidate a pending task synchronously.
type Timer struct {
	ticker   *Ticker
	duration time.Duration
	fn       func()
	fired    bool
}

// AfterFunc starts a timer that calls fn once d has elapsed.
func AfterFunc(d time.Duration, fn func()) *Timer {
	t := &Timer{duration: d, fn: fn}
	t.ticker = NewTicker(t.tick)
	t.ticker.Start()
	return t
}

func (t *Timer) tick(elapsed time.Duration) {
	if elapsed < t.duration {
		return
	}
	t.ticker.Stop()
	t.fired = true
	if t.fn != nil {
		t.fn()
	}
}

// Stop cancels the timer. It reports whether the call prevented the
// callback from running. Safe on a nil timer.
func (t *Timer) Stop() bool {
	if t == nil || !t.ticker.IsActive() {
		return false
	}
	t.ticker.Stop()
	return true
}

// Active reports whether the timer is still pending.
func (t *Timer) Active() bool {
	return t != nil && t.ticker.IsActive()
}

// Fired reports whether the callback has run.
func (t *Timer) Fired() bool {
	return t != nil && t.fired
}

// Duration returns the configured delay.
func (t *Timer) Duration() time.Duration {
	return t.duration
}
