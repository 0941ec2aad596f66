package core

// The Base types below supply CreateElement and Key for each widget kind.
// Embed one and write only the methods that carry behavior:
//
//	type CourseTitle struct {
//	    core.StatelessBase
//	    Name string
//	}
//
//	func (c CourseTitle) Build(core.BuildContext) core.Widget {
//	    return primitives.Text{Content: c.Name}
//	}

type StatelessBase struct{}

func (StatelessBase) CreateElement() Element { return NewStatelessElement() }
func (StatelessBase) Key() any               { return nil }

type StatefulBase struct{}

func (StatefulBase) CreateElement() Element { return NewStatefulElement() }
func (StatefulBase) Key() any               { return nil }

// InheritedBase is embedded by widgets that publish a value to their
// subtree. The embedding type still implements ChildWidget and
// UpdateShouldNotify.
type InheritedBase struct{}

func (InheritedBase) CreateElement() Element { return NewInheritedElement() }
func (InheritedBase) Key() any               { return nil }

type HostBase struct{}

func (HostBase) CreateElement() Element { return NewHostElement() }
func (HostBase) Key() any               { return nil }

// Stateful builds a widget from a value of type S and a build closure, for
// fragments too small to deserve their own State type. The update function
// handed to build replaces the value and schedules a rebuild.
func Stateful[S any](init func() S, build func(value S, ctx BuildContext, update func(func(S) S)) Widget) Widget {
	return &closureWidget[S]{init: init, build: build}
}

type closureWidget[S any] struct {
	StatefulBase
	init  func() S
	build func(S, BuildContext, func(func(S) S)) Widget
}

func (w *closureWidget[S]) CreateState() State {
	return &closureState[S]{widget: w}
}

type closureState[S any] struct {
	StateBase
	widget *closureWidget[S]
	value  S
}

func (s *closureState[S]) InitState() { s.value = s.widget.init() }

func (s *closureState[S]) DidUpdateWidget(StatefulWidget) {
	s.widget = s.Element().Widget().(*closureWidget[S])
}

func (s *closureState[S]) Build(ctx BuildContext) Widget {
	return s.widget.build(s.value, ctx, func(fn func(S) S) {
		s.SetState(func() { s.value = fn(s.value) })
	})
}
