package core

import (
	"reflect"

	"github.com/campusui/campus/pkg/errors"
)

// elementBase carries what every element kind shares: its place in the
// tree, its owner and its dirty flag.
type elementBase struct {
	self    Element
	widget  Widget
	owner   *BuildOwner
	parent  Element
	depth   int
	slot    any
	dirty   bool
	mounted bool
	// host is the nearest ancestor owning a document node.
	host *HostElement
}

func (e *elementBase) wire(self Element, widget Widget, owner *BuildOwner) {
	e.self, e.widget, e.owner = self, widget, owner
}

func (e *elementBase) Widget() Widget         { return e.widget }
func (e *elementBase) Depth() int             { return e.depth }
func (e *elementBase) Owner() *BuildOwner     { return e.owner }
func (e *elementBase) parentElement() Element { return e.parent }
func (e *elementBase) isMounted() bool        { return e.mounted }

// MarkNeedsBuild queues the element once per flush.
func (e *elementBase) MarkNeedsBuild() {
	if e.dirty {
		return
	}
	e.dirty = true
	if e.owner != nil && e.self != nil {
		e.owner.ScheduleBuild(e.self)
	}
}

func (e *elementBase) mountBase(parent Element, slot any) {
	e.parent, e.slot = parent, slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	if h, ok := e.FindAncestor(isHost).(*HostElement); ok {
		e.host = h
	}
	e.mounted, e.dirty = true, true
}

func isHost(el Element) bool {
	_, ok := el.(*HostElement)
	return ok
}

// FindAncestor returns the closest proper ancestor matching predicate.
func (e *elementBase) FindAncestor(predicate func(Element) bool) Element {
	for el := e.parent; el != nil; {
		if predicate(el) {
			return el
		}
		up, ok := el.(interface{ parentElement() Element })
		if !ok {
			return nil
		}
		el = up.parentElement()
	}
	return nil
}

// DependOnInherited returns the nearest inherited widget whose type is
// inheritedType, or a pointer to it, and subscribes the caller to it.
func (e *elementBase) DependOnInherited(inheritedType reflect.Type) any {
	found, ok := e.FindAncestor(func(el Element) bool {
		ie, ok := el.(*InheritedElement)
		return ok && sameType(ie.widget, inheritedType)
	}).(*InheritedElement)
	if !ok {
		return nil
	}
	found.AddDependent(e.self)
	return found.widget
}

func sameType(w Widget, t reflect.Type) bool {
	wt := reflect.TypeOf(w)
	return wt == t || wt.Kind() == reflect.Pointer && wt.Elem() == t
}

// build runs fn and returns its widget. A panic is reported as a
// BuildError and yields nil; contract violations are re-raised.
func (e *elementBase) build(fn func() Widget) (built Widget) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if errors.IsContractViolation(r) {
			panic(r)
		}
		built = nil
		errors.ReportBuildError(&errors.BuildError{
			Widget:     reflect.TypeOf(e.widget).String(),
			Element:    reflect.TypeOf(e.self).String(),
			Recovered:  r,
			StackTrace: errors.CaptureStack(),
		})
	}()
	return fn()
}

// component is an element with at most one child element, produced by a
// build function.
type component struct {
	elementBase
	child Element
}

func (c *component) rebuild(fn func() Widget) {
	if !c.dirty || !c.mounted {
		return
	}
	c.dirty = false
	c.child = updateChild(c.child, c.build(fn), c.self, c.owner, nil)
}

func (c *component) unmountChild() {
	c.mounted = false
	if c.child != nil {
		c.child.Unmount()
		c.child = nil
	}
}

func (c *component) VisitChildren(visitor func(Element) bool) {
	if c.child != nil {
		visitor(c.child)
	}
}

// StatelessElement hosts a StatelessWidget.
type StatelessElement struct{ component }

func NewStatelessElement() *StatelessElement { return &StatelessElement{} }

func (e *StatelessElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	e.RebuildIfNeeded()
}

func (e *StatelessElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *StatelessElement) Unmount() { e.unmountChild() }

func (e *StatelessElement) RebuildIfNeeded() {
	w := e.widget.(StatelessWidget)
	e.rebuild(func() Widget { return w.Build(e) })
}

// StatefulElement hosts a StatefulWidget and the State it created.
type StatefulElement struct {
	component
	state State
}

func NewStatefulElement() *StatefulElement { return &StatefulElement{} }

func (e *StatefulElement) State() State { return e.state }

func (e *StatefulElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	e.state = e.widget.(StatefulWidget).CreateState()
	if s, ok := e.state.(interface{ SetElement(*StatefulElement) }); ok {
		s.SetElement(e)
	}
	e.state.InitState()
	e.RebuildIfNeeded()
}

func (e *StatefulElement) Update(newWidget Widget) {
	old := e.widget.(StatefulWidget)
	e.widget = newWidget
	e.state.DidUpdateWidget(old)
	e.MarkNeedsBuild()
}

// Unmount tears down the subtree before disposing the state.
func (e *StatefulElement) Unmount() {
	e.unmountChild()
	if e.state != nil {
		e.state.Dispose()
	}
}

func (e *StatefulElement) RebuildIfNeeded() {
	e.rebuild(func() Widget { return e.state.Build(e) })
}

// updateChild reconciles existing against widget: same type and key updates
// in place, anything else replaces the element. A nil widget removes it.
func updateChild(existing Element, widget Widget, parent Element, owner *BuildOwner, slot any) Element {
	if existing != nil && widget != nil && canUpdateWidget(existing.Widget(), widget) {
		existing.Update(widget)
		return existing
	}
	if existing != nil {
		existing.Unmount()
	}
	if widget == nil {
		return nil
	}
	el := inflateWidget(widget, owner)
	el.Mount(parent, slot)
	return el
}

func canUpdateWidget(current, next Widget) bool {
	return current != nil && next != nil &&
		reflect.TypeOf(current) == reflect.TypeOf(next) &&
		reflect.DeepEqual(current.Key(), next.Key())
}

func inflateWidget(widget Widget, owner *BuildOwner) Element {
	if widget == nil {
		return nil
	}
	el := widget.CreateElement()
	if w, ok := el.(interface {
		wire(Element, Widget, *BuildOwner)
	}); ok {
		w.wire(el, widget, owner)
	}
	return el
}
