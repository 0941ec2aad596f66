package disclosure

import (
	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/primitives"
)

// Root owns the store of one disclosure and provides it to Children.
//
// A nil Open makes the disclosure uncontrolled: the store is authoritative
// and OnOpenChange only observes changes. A non-nil Open makes it
// controlled: the store mirrors *Open on every build and requests to change
// it are forwarded to OnOpenChange.
type Root struct {
	core.StatefulBase
	// Open is the controlled open state.
	Open *bool
	// DefaultOpen is the initial state of an uncontrolled disclosure.
	DefaultOpen bool
	// OnOpenChange is called when a descendant changes the effective state.
	OnOpenChange func(open bool)
	// Children usually contain one Trigger and one Panel, at any depth.
	Children []core.Widget
	// TestID sets data-testid on the root node.
	TestID string
}

func (Root) CreateState() core.State { return &rootState{} }

type rootState struct {
	core.StateBase
	scope *Scope
}

func (s *rootState) InitState() {
	w := s.Element().Widget().(Root)
	initial := w.DefaultOpen
	if w.Open != nil {
		initial = *w.Open
	}
	s.scope = newScope(NewStore(initial))
	s.scope.update(w.Open, w.OnOpenChange)
	s.OnDispose(s.scope.Listen(func(bool) { s.SetState(nil) }))
}

func (s *rootState) DidUpdateWidget(core.StatefulWidget) {
	w := s.Element().Widget().(Root)
	s.scope.update(w.Open, w.OnOpenChange)
}

func (s *rootState) Build(core.BuildContext) core.Widget {
	w := s.Element().Widget().(Root)
	open := s.scope.Open()
	return scopeWidget{
		scope: s.scope,
		open:  open,
		child: primitives.Box{
			TestID: w.TestID,
			Ref:    s.scope.root,
			Attrs: map[string]string{
				"data-slot":  "dropdown-menu",
				"data-state": stateAttr(open),
			},
			Children: w.Children,
		},
	}
}

func stateAttr(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
