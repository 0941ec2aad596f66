package disclosure

import (
	"time"

	"github.com/campusui/campus/pkg/animation"
)

// Phase is the mount state of a panel.
type Phase int

const (
	// PhaseClosed means the panel is not rendered.
	PhaseClosed Phase = iota
	// PhaseOpening means the panel was just rendered and is entering.
	PhaseOpening
	// PhaseOpen means the panel is open and steady.
	PhaseOpen
	// PhaseClosing means the panel is still rendered while it exits.
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "closed"
	}
}

// Lifecycle is the panel mount state machine.
//
// Opening renders immediately and settles to Open on the next frame.
// Closing keeps the panel mounted for the exit duration; reopening during
// that window stops the pending timer synchronously, so the panel is never
// unmounted in between. The exit timer is the only deferred work and the
// lifecycle owns its handle.
type Lifecycle struct {
	exit     time.Duration
	phase    Phase
	timer    *animation.Timer
	onChange func(Phase)
	disposed bool
}

// NewLifecycle creates a closed lifecycle. onChange, if set, is called
// after every phase change.
func NewLifecycle(exit time.Duration, onChange func(Phase)) *Lifecycle {
	return &Lifecycle{exit: exit, onChange: onChange}
}

// Phase returns the current phase.
func (l *Lifecycle) Phase() Phase { return l.phase }

// Mounted reports whether the panel should be rendered.
func (l *Lifecycle) Mounted() bool { return l.phase != PhaseClosed }

// Exiting reports whether the panel is playing its exit.
func (l *Lifecycle) Exiting() bool { return l.phase == PhaseClosing }

// Pending reports whether a phase timer is running.
func (l *Lifecycle) Pending() bool { return l.timer.Active() }

// ExitDuration returns the exit duration.
func (l *Lifecycle) ExitDuration() time.Duration { return l.exit }

// SetExitDuration changes the duration used by later exits.
func (l *Lifecycle) SetExitDuration(d time.Duration) { l.exit = d }

// SetOpen feeds the logical open flag into the state machine.
func (l *Lifecycle) SetOpen(open bool) {
	if l.disposed {
		return
	}
	if open {
		switch l.phase {
		case PhaseClosed:
			l.set(PhaseOpening)
			l.timer = animation.AfterFunc(0, l.settle)
		case PhaseClosing:
			l.timer.Stop()
			l.set(PhaseOpen)
		}
		return
	}

	switch l.phase {
	case PhaseOpening, PhaseOpen:
		l.timer.Stop()
		if l.exit <= 0 {
			l.set(PhaseClosed)
			return
		}
		l.set(PhaseClosing)
		l.timer = animation.AfterFunc(l.exit, l.finish)
	}
}

func (l *Lifecycle) settle() {
	if l.phase == PhaseOpening {
		l.set(PhaseOpen)
	}
}

func (l *Lifecycle) finish() {
	if l.phase == PhaseClosing {
		l.set(PhaseClosed)
	}
}

func (l *Lifecycle) set(p Phase) {
	l.phase = p
	if l.onChange != nil {
		l.onChange(p)
	}
}

// Dispose stops any pending timer. No callbacks run afterwards.
func (l *Lifecycle) Dispose() {
	l.disposed = true
	l.timer.Stop()
	l.onChange = nil
}
