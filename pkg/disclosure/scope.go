package disclosure

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/dom"
	"github.com/campusui/campus/pkg/errors"
)

// Scope is the shared handle every descendant of a [Root] reads and writes
// the disclosure through.
type Scope struct {
	store        *Store
	control      Control
	onOpenChange func(bool)
	root         *dom.Ref
	id           string
}

func newScope(store *Store) *Scope {
	return &Scope{
		store:   store,
		control: Internal{Store: store},
		root:    &dom.Ref{},
		id:      "menu-" + uuid.NewString(),
	}
}

// Store returns the disclosure's store.
func (s *Scope) Store() *Store { return s.store }

// Control returns the current source of truth.
func (s *Scope) Control() Control { return s.control }

// Open returns the effective open state.
func (s *Scope) Open() bool { return s.control.Open() }

// SetOpen requests a new open state. An uncontrolled disclosure writes the
// store; a controlled one leaves the store to mirror the caller. In both
// modes OnOpenChange is notified when the request changes the effective
// state.
func (s *Scope) SetOpen(open bool) {
	if open == s.Open() {
		return
	}
	if !Controlled(s.control) {
		s.store.Set(open)
	}
	if s.onOpenChange != nil {
		s.onOpenChange(open)
	}
}

// Toggle requests the negation of the effective open state.
func (s *Scope) Toggle() {
	s.SetOpen(!s.Open())
}

// Listen subscribes to store writes.
func (s *Scope) Listen(fn func(open bool)) (unsubscribe func()) {
	return s.store.Subscribe(fn)
}

// RootNode returns the root's node while mounted.
func (s *Scope) RootNode() *dom.Node { return s.root.Node() }

// TriggerID is the id attribute of the trigger.
func (s *Scope) TriggerID() string { return s.id + "-trigger" }

// PanelID is the id attribute of the panel.
func (s *Scope) PanelID() string { return s.id + "-panel" }

// update applies the root's latest configuration. The control is replaced
// before the store mirrors an external value so subscribers read a
// consistent effective state.
func (s *Scope) update(open *bool, onOpenChange func(bool)) {
	s.control = ResolveControl(open, s.store)
	s.onOpenChange = onOpenChange
	if open != nil {
		s.store.Set(*open)
	}
}

// scopeWidget makes a Scope reachable from every descendant.
type scopeWidget struct {
	core.InheritedBase
	scope *Scope
	open  bool
	child core.Widget
}

func (w scopeWidget) ChildWidget() core.Widget { return w.child }

func (w scopeWidget) UpdateShouldNotify(old core.InheritedWidget) bool {
	prev := old.(scopeWidget)
	return w.open != prev.open || w.scope != prev.scope
}

var scopeType = reflect.TypeOf(scopeWidget{})

// ScopeOf returns the nearest enclosing scope and registers ctx for rebuilds
// when the effective open state changes. It returns an error wrapping
// [errors.ErrMissingScope] outside a Root.
func ScopeOf(ctx core.BuildContext) (*Scope, error) {
	w, ok := ctx.DependOnInherited(scopeType).(scopeWidget)
	if !ok {
		return nil, errors.ErrMissingScope
	}
	return w.scope, nil
}

// MustScopeOf is ScopeOf for primitives that cannot work without a scope.
// It panics with an [errors.ContextError] naming primitive.
func MustScopeOf(ctx core.BuildContext, primitive string) *Scope {
	scope, err := ScopeOf(ctx)
	if err != nil {
		panic(&errors.ContextError{Primitive: primitive, Root: "Root"})
	}
	return scope
}

// requireScope finds the scope without depending on it, for primitives
// that need it only structurally.
func requireScope(ctx core.BuildContext, primitive string) *Scope {
	found := ctx.FindAncestor(func(el core.Element) bool {
		_, ok := el.Widget().(scopeWidget)
		return ok
	})
	if found == nil {
		panic(&errors.ContextError{Primitive: primitive, Root: "Root"})
	}
	return found.Widget().(scopeWidget).scope
}
