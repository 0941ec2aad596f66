package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/campusui/campus/pkg/animation"
	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/dom"
	"github.com/campusui/campus/pkg/engine"
)

// FrameDuration is how far PumpFor and PumpAndSettle move the clock per
// frame.
const FrameDuration = 16 * time.Millisecond

var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// FakeClock is the clock a WidgetTester installs.
type FakeClock = animation.ManualClock

// NewFakeClock returns a FakeClock starting at 2024-01-01 UTC.
func NewFakeClock() *FakeClock {
	return animation.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

// WidgetTester mounts a widget into an in-memory document and drives its
// frames against a [FakeClock].
type WidgetTester struct {
	engine  *engine.Engine
	clock   *FakeClock
	restore func()
}

// NewWidgetTester installs a fresh FakeClock. Callers must call Cleanup;
// tests should use NewWidgetTesterWithT.
func NewWidgetTester() *WidgetTester {
	clock := NewFakeClock()
	return &WidgetTester{engine: engine.New(), clock: clock, restore: clock.Install()}
}

// NewWidgetTesterWithT registers Cleanup with t.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores the previous clock.
func (t *WidgetTester) Cleanup() {
	t.engine.Unmount()
	t.restore()
}

func (t *WidgetTester) Clock() *FakeClock         { return t.clock }
func (t *WidgetTester) Engine() *engine.Engine    { return t.engine }
func (t *WidgetTester) Document() *dom.Document   { return t.engine.Document() }
func (t *WidgetTester) RootElement() core.Element { return t.engine.Root() }
func (t *WidgetTester) ActiveNode() *dom.Node     { return t.Document().ActiveElement() }
func (t *WidgetTester) Dispatch(fn func())        { t.engine.Dispatch(fn) }
func (t *WidgetTester) Dump() string              { return dom.Dump(t.Document().Body()) }

// PumpWidget replaces the mounted tree with widget and runs a frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	t.engine.Mount(widget)
	return t.Pump()
}

// Pump runs one frame at the current time.
func (t *WidgetTester) Pump() error {
	t.engine.Frame()
	return nil
}

// PumpFor moves the clock forward by exactly d, one frame per
// FrameDuration step and a shorter final step if needed.
func (t *WidgetTester) PumpFor(d time.Duration) error {
	for remaining := d; remaining > 0; {
		step := min(remaining, FrameDuration)
		remaining -= step
		t.clock.Advance(step)
		if err := t.Pump(); err != nil {
			return err
		}
	}
	return nil
}

// PumpAndSettle runs frames, advancing FrameDuration after each, until the
// engine has no more work. It gives up with ErrSettleTimeout once timeout
// of fake time has passed.
func (t *WidgetTester) PumpAndSettle(timeout time.Duration) error {
	deadline := t.clock.Now().Add(timeout)
	for t.clock.Now().Before(deadline) {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.engine.NeedsFrame() {
			return nil
		}
		t.clock.Advance(FrameDuration)
	}
	return ErrSettleTimeout
}

// Find evaluates finder against the document body.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	return FinderResult{nodes: finder.Evaluate(t.Document().Body()), finder: finder}
}
