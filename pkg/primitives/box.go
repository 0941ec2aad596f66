package primitives

import (
	"maps"

	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/dom"
)

// Layout values understood by renderers through the data-layout attribute.
const (
	LayoutColumn = "column"
	LayoutRow    = "row"
)

// Box renders a single element node with the given attributes and handlers.
type Box struct {
	// Tag is the element tag. Defaults to "div".
	Tag string
	// Role sets the role attribute when non-empty.
	Role string
	// TestID sets the data-testid attribute when non-empty.
	TestID string
	// Attrs are copied onto the node on every build.
	Attrs map[string]string
	// Ref receives the node while the box is mounted.
	Ref *dom.Ref
	// Children are built into the node's children.
	Children []core.Widget

	OnClick       dom.Handler
	OnKeyDown     dom.Handler
	OnPointerDown dom.Handler
	OnInput       dom.Handler

	// WidgetKey distinguishes siblings of the same type during
	// reconciliation.
	WidgetKey any
}

// ColumnOf stacks children vertically.
func ColumnOf(children ...core.Widget) Box {
	return Box{Attrs: map[string]string{"data-layout": LayoutColumn}, Children: children}
}

// RowOf lays children out horizontally.
func RowOf(children ...core.Widget) Box {
	return Box{Attrs: map[string]string{"data-layout": LayoutRow}, Children: children}
}

// WithAttr returns a copy of the box with an extra attribute.
func (b Box) WithAttr(name, value string) Box {
	attrs := make(map[string]string, len(b.Attrs)+1)
	maps.Copy(attrs, b.Attrs)
	attrs[name] = value
	b.Attrs = attrs
	return b
}

// WithTestID returns a copy of the box with the given test id.
func (b Box) WithTestID(id string) Box {
	b.TestID = id
	return b
}

func (b Box) CreateElement() core.Element {
	return core.NewHostElement()
}

func (b Box) Key() any {
	return b.WidgetKey
}

func (b Box) tag() string {
	if b.Tag == "" {
		return "div"
	}
	return b.Tag
}

func (b Box) CreateNode(ctx core.BuildContext) *dom.Node {
	return ctx.Owner().Document().CreateElement(b.tag())
}

func (b Box) UpdateNode(_ core.BuildContext, node *dom.Node) {
	node.Tag = b.tag()
	attrs := make(map[string]string, len(b.Attrs)+2)
	maps.Copy(attrs, b.Attrs)
	if b.Role != "" {
		attrs["role"] = b.Role
	}
	if b.TestID != "" {
		attrs["data-testid"] = b.TestID
	}
	node.ReplaceAttrs(attrs)

	node.SetHandler(dom.EventClick, b.OnClick)
	node.SetHandler(dom.EventKeyDown, b.OnKeyDown)
	node.SetHandler(dom.EventPointerDown, b.OnPointerDown)
	node.SetHandler(dom.EventInput, b.OnInput)
}

func (b Box) ChildWidgets() []core.Widget {
	return b.Children
}

func (b Box) NodeRef() *dom.Ref {
	return b.Ref
}

// Text renders a text node.
type Text struct {
	Content string
}

func (t Text) CreateElement() core.Element {
	return core.NewHostElement()
}

func (t Text) Key() any {
	return nil
}

func (t Text) CreateNode(ctx core.BuildContext) *dom.Node {
	return ctx.Owner().Document().CreateText(t.Content)
}

func (t Text) UpdateNode(_ core.BuildContext, node *dom.Node) {
	node.Text = t.Content
}

func (t Text) ChildWidgets() []core.Widget {
	return nil
}
