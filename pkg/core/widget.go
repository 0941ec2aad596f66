package core

import (
	"reflect"

	"github.com/campusui/campus/pkg/dom"
)

// Widget is an immutable description of part of the interface.
type Widget interface {
	CreateElement() Element
	Key() any
}

// StatelessWidget builds its subtree purely from its own fields and the
// surrounding context.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget creates a State that persists across rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State holds mutable data for a StatefulWidget.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidChangeDependencies()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// InheritedWidget exposes a value to every descendant that depends on it.
type InheritedWidget interface {
	Widget
	ChildWidget() Widget
	// UpdateShouldNotify reports whether dependents must rebuild after the
	// widget is replaced by this one.
	UpdateShouldNotify(oldWidget InheritedWidget) bool
}

// HostWidget owns one document node. Its child widgets produce the node's
// children.
type HostWidget interface {
	Widget
	CreateNode(ctx BuildContext) *dom.Node
	UpdateNode(ctx BuildContext, node *dom.Node)
	ChildWidgets() []Widget
}

// NodeRefWidget is implemented by host widgets that expose their node through
// a ref.
type NodeRefWidget interface {
	NodeRef() *dom.Ref
}

// Element is a widget instantiated at a location in the tree.
type Element interface {
	BuildContext
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	MarkNeedsBuild()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)
	Depth() int
}

// BuildContext locates a widget within the tree.
type BuildContext interface {
	Widget() Widget
	FindAncestor(predicate func(Element) bool) Element
	// DependOnInherited returns the nearest ancestor InheritedWidget of the
	// given type, or nil, and registers the caller for rebuilds when it
	// changes.
	DependOnInherited(inheritedType reflect.Type) any
	Owner() *BuildOwner
}

// Disposable is implemented by resources released with their owning state.
type Disposable interface {
	Dispose()
}
