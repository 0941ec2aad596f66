package disclosure

import (
	"maps"
	"time"

	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/dom"
	"github.com/campusui/campus/pkg/primitives"
)

// Panel is the menu content of a disclosure.
//
// The panel is rendered while its [Lifecycle] is mounted: from the moment
// the disclosure opens until the exit duration has elapsed after it closes.
// While open it holds the document listeners of a [Coordinator].
//
// Zero fields take their value from the nearest [DefaultsProvider], then
// from [BuiltinDefaults].
type Panel struct {
	core.StatefulBase
	Side   Side
	Align  Align
	// Offset is the gap to the trigger; use [NoOffset] for none.
	Offset int
	// ExitDuration overrides how long the panel stays mounted after closing.
	ExitDuration time.Duration
	// Label sets aria-label.
	Label string
	// Attrs are extra attributes.
	Attrs    map[string]string
	Children []core.Widget
	// TestID sets data-testid.
	TestID string
}

func (Panel) CreateState() core.State { return &panelState{} }

type panelState struct {
	core.StateBase
	scope       *Scope
	unsubscribe func()
	lifecycle   *Lifecycle
	coordinator *Coordinator
	ref         dom.Ref
}

func (s *panelState) InitState() {
	s.lifecycle = core.UseController(s, func() *Lifecycle {
		return NewLifecycle(DefaultExitDuration, s.onPhase)
	})
	s.OnDispose(func() {
		if s.coordinator != nil {
			s.coordinator.Release()
		}
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
	})
}

// attach binds the panel to scope, replacing any previous binding.
func (s *panelState) attach(ctx core.BuildContext, scope *Scope) {
	if s.scope == scope {
		return
	}
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	if s.coordinator != nil {
		s.coordinator.Release()
	}
	s.scope = scope
	s.unsubscribe = scope.Listen(func(bool) { s.lifecycle.SetOpen(s.scope.Open()) })
	s.coordinator = NewCoordinator(ctx.Owner().Document(), scope.root, &s.ref, func() {
		s.scope.SetOpen(false)
	})
}

func (s *panelState) onPhase(p Phase) {
	switch p {
	case PhaseOpening, PhaseOpen:
		s.coordinator.Acquire()
	default:
		s.coordinator.Release()
	}
	s.SetState(nil)
}

func (s *panelState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(Panel)
	scope := MustScopeOf(ctx, "Panel")
	s.attach(ctx, scope)

	d := Defaults{Side: w.Side, Align: w.Align, Offset: w.Offset, ExitDuration: w.ExitDuration}.merge(DefaultsOf(ctx))
	s.lifecycle.SetExitDuration(d.ExitDuration)
	s.lifecycle.SetOpen(scope.Open())
	if !s.lifecycle.Mounted() {
		return nil
	}

	placement := Resolve(d.Side, d.Align, d.Gap())
	attrs := make(map[string]string, len(w.Attrs)+8)
	maps.Copy(attrs, w.Attrs)
	attrs["id"] = scope.PanelID()
	attrs["data-slot"] = "dropdown-menu-content"
	attrs["data-state"] = stateAttr(!s.lifecycle.Exiting())
	attrs["data-side"] = string(placement.AnchorEdge)
	attrs["data-align"] = string(placement.CrossAxis)
	attrs["aria-labelledby"] = scope.TriggerID()
	attrs["style"] = placement.Style()
	if w.Label != "" {
		attrs["aria-label"] = w.Label
	}

	return primitives.Box{
		Role:     "menu",
		TestID:   w.TestID,
		Attrs:    attrs,
		Ref:      &s.ref,
		Children: w.Children,
	}
}
