package disclosure_test

import (
	"slices"
	"testing"
	"time"

	"github.com/campusui/campus/pkg/animation"
	"github.com/campusui/campus/pkg/disclosure"
	campustest "github.com/campusui/campus/pkg/testing"
)

type phaseRecorder struct {
	phases []disclosure.Phase
}

func (r *phaseRecorder) record(p disclosure.Phase) { r.phases = append(r.phases, p) }

func withFakeClock(t *testing.T) *campustest.FakeClock {
	t.Helper()
	clock := campustest.NewFakeClock()
	prev := animation.SetClock(clock)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clock
}

func step(clock *campustest.FakeClock, d time.Duration) {
	clock.Advance(d)
	animation.StepTickers()
}

func TestLifecycleOpenAndExit(t *testing.T) {
	clock := withFakeClock(t)
	rec := &phaseRecorder{}
	l := disclosure.NewLifecycle(200*time.Millisecond, rec.record)
	defer l.Dispose()

	l.SetOpen(true)
	if !l.Mounted() || l.Phase() != disclosure.PhaseOpening {
		t.Fatalf("phase after open = %v", l.Phase())
	}
	step(clock, 0)
	if l.Phase() != disclosure.PhaseOpen {
		t.Fatalf("expected open after one step, got %v", l.Phase())
	}

	l.SetOpen(false)
	if !l.Exiting() || !l.Mounted() {
		t.Fatalf("expected closing, got %v", l.Phase())
	}
	step(clock, 199*time.Millisecond)
	if l.Phase() != disclosure.PhaseClosing {
		t.Fatalf("unmounted before the exit duration, phase %v", l.Phase())
	}
	step(clock, time.Millisecond)
	if l.Mounted() {
		t.Fatalf("still mounted after the exit duration, phase %v", l.Phase())
	}

	want := []disclosure.Phase{disclosure.PhaseOpening, disclosure.PhaseOpen, disclosure.PhaseClosing, disclosure.PhaseClosed}
	if !slices.Equal(rec.phases, want) {
		t.Errorf("phases = %v, want %v", rec.phases, want)
	}
}

func TestLifecycleReopenCancelsExit(t *testing.T) {
	clock := withFakeClock(t)
	l := disclosure.NewLifecycle(200*time.Millisecond, nil)
	defer l.Dispose()

	l.SetOpen(true)
	step(clock, 0)
	l.SetOpen(false)
	step(clock, 150*time.Millisecond)

	l.SetOpen(true)
	if l.Phase() != disclosure.PhaseOpen || l.Pending() {
		t.Fatalf("reopen should cancel the exit timer, phase %v pending %v", l.Phase(), l.Pending())
	}
	step(clock, time.Second)
	if l.Phase() != disclosure.PhaseOpen {
		t.Errorf("cancelled exit still unmounted the panel, phase %v", l.Phase())
	}
}

func TestLifecycleRedundantRequests(t *testing.T) {
	clock := withFakeClock(t)
	rec := &phaseRecorder{}
	l := disclosure.NewLifecycle(200*time.Millisecond, rec.record)
	defer l.Dispose()

	l.SetOpen(false)
	l.SetOpen(true)
	l.SetOpen(true)
	step(clock, 0)
	l.SetOpen(true)
	l.SetOpen(false)
	step(clock, 100*time.Millisecond)
	l.SetOpen(false)
	step(clock, 100*time.Millisecond)

	want := []disclosure.Phase{disclosure.PhaseOpening, disclosure.PhaseOpen, disclosure.PhaseClosing, disclosure.PhaseClosed}
	if !slices.Equal(rec.phases, want) {
		t.Errorf("phases = %v, want %v", rec.phases, want)
	}
}

func TestLifecycleCloseWhileOpening(t *testing.T) {
	clock := withFakeClock(t)
	l := disclosure.NewLifecycle(50*time.Millisecond, nil)
	defer l.Dispose()

	l.SetOpen(true)
	l.SetOpen(false)
	step(clock, 0)
	if l.Phase() != disclosure.PhaseClosing {
		t.Fatalf("the entry step must not reopen a closing panel, phase %v", l.Phase())
	}
	step(clock, 50*time.Millisecond)
	if l.Mounted() {
		t.Error("expected closed after the exit")
	}
}

func TestLifecycleZeroExitClosesImmediately(t *testing.T) {
	withFakeClock(t)
	l := disclosure.NewLifecycle(0, nil)
	defer l.Dispose()

	l.SetOpen(true)
	l.SetOpen(false)
	if l.Mounted() || l.Pending() {
		t.Errorf("zero exit should unmount at once, phase %v", l.Phase())
	}
}

func TestLifecycleDisposeStopsTimer(t *testing.T) {
	clock := withFakeClock(t)
	rec := &phaseRecorder{}
	l := disclosure.NewLifecycle(200*time.Millisecond, rec.record)

	l.SetOpen(true)
	step(clock, 0)
	l.SetOpen(false)
	l.Dispose()
	step(clock, time.Second)

	if l.Pending() {
		t.Error("dispose should stop the exit timer")
	}
	if got := rec.phases[len(rec.phases)-1]; got != disclosure.PhaseClosing {
		t.Errorf("no phase change may follow dispose, last = %v", got)
	}
	l.SetOpen(true)
	if l.Phase() != disclosure.PhaseClosing {
		t.Error("a disposed lifecycle ignores requests")
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[disclosure.Phase]string{
		disclosure.PhaseClosed:  "closed",
		disclosure.PhaseOpening: "opening",
		disclosure.PhaseOpen:    "open",
		disclosure.PhaseClosing: "closing",
	}
	for phase, want := range tests {
		if phase.String() != want {
			t.Errorf("%d.String() = %q, want %q", phase, phase.String(), want)
		}
	}
}
