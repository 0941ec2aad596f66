package dom

import (
	"slices"
	"strings"

	"github.com/campusui/campus/pkg/focus"
)

// TextTag is the tag used by text nodes.
const TextTag = "#text"

// Node is an element or text node in a document.
type Node struct {
	Tag  string
	Text string

	doc      *Document
	parent   *Node
	children []*Node
	attrs    map[string]string
	handlers map[EventType]Handler
	focus    *focus.Target
}

// Document returns the owning document.
func (n *Node) Document() *Document { return n.doc }

// Parent returns the parent node, or nil when detached or the body.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// IsText reports whether the node is a text node.
func (n *Node) IsText() bool { return n.Tag == TextTag }

// Attr returns the attribute value and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// GetAttr returns the attribute value or "".
func (n *Node) GetAttr(name string) string {
	return n.attrs[name]
}

// HasAttr reports whether the attribute is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

// RemoveAttr removes an attribute.
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// ReplaceAttrs replaces the full attribute set.
func (n *Node) ReplaceAttrs(attrs map[string]string) {
	n.attrs = make(map[string]string, len(attrs))
	for k, v := range attrs {
		n.attrs[k] = v
	}
}

// AttrNames returns the attribute names in sorted order.
func (n *Node) AttrNames() []string {
	names := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// SetHandler installs the handler for an event type. A nil handler removes it.
func (n *Node) SetHandler(t EventType, h Handler) {
	if h == nil {
		delete(n.handlers, t)
		return
	}
	if n.handlers == nil {
		n.handlers = make(map[EventType]Handler)
	}
	n.handlers[t] = h
}

// Handler returns the installed handler for t.
func (n *Node) Handler(t EventType) Handler {
	return n.handlers[t]
}

// AppendChild appends child, moving it from any previous parent.
func (n *Node) AppendChild(child *Node) {
	children := append(n.Children(), child)
	n.SetChildren(children)
}

// SetChildren replaces the children of n. Nodes that are no longer children
// are detached; if the focused element was among them focus is cleared.
func (n *Node) SetChildren(children []*Node) {
	old := n.children
	for _, child := range children {
		if child.parent != nil && child.parent != n {
			child.parent.removeChild(child)
		}
		child.parent = n
	}
	n.children = slices.Clone(children)

	for _, child := range old {
		if slices.Contains(n.children, child) {
			continue
		}
		child.parent = nil
		if n.doc != nil {
			n.doc.nodeDetached(child)
		}
	}
}

func (n *Node) removeChild(child *Node) {
	n.children = slices.DeleteFunc(n.children, func(c *Node) bool { return c == child })
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Connected reports whether the node is attached to its document body.
func (n *Node) Connected() bool {
	return n.doc != nil && n.doc.body.Contains(n)
}

// Disabled reports whether the node is disabled, either natively or through
// aria-disabled.
func (n *Node) Disabled() bool {
	return n.HasAttr("disabled") || n.GetAttr("aria-disabled") == "true"
}

// Focusable reports whether the node may receive focus.
func (n *Node) Focusable() bool {
	if n.IsText() || n.HasAttr("disabled") {
		return false
	}
	if n.HasAttr("tabindex") {
		return true
	}
	switch n.Tag {
	case "button", "input", "textarea", "select", "a":
		return true
	}
	return false
}

// Focus moves document focus to the node. Returns false if it cannot
// receive focus.
func (n *Node) Focus() bool {
	if n.doc == nil || !n.Connected() {
		return false
	}
	return n.focusTarget().Request(n.Focusable())
}

// Blur removes focus from the node if it holds it.
func (n *Node) Blur() {
	if n.focus != nil {
		n.focus.Release()
	}
}

// IsFocused reports whether the node is the active element.
func (n *Node) IsFocused() bool {
	return n.focus.Focused()
}

func (n *Node) focusTarget() *focus.Target {
	if n.focus == nil {
		n.focus = n.doc.focus.Target(n, n.Tag)
	}
	return n.focus
}

// TextContent returns the concatenated text of the subtree.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.walk(func(node *Node) bool {
		if node.IsText() {
			sb.WriteString(node.Text)
		}
		return true
	})
	return sb.String()
}

// walk visits the subtree in document (pre-)order until visit returns false.
func (n *Node) walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, child := range n.children {
		if !child.walk(visit) {
			return false
		}
	}
	return true
}

// QueryAll returns the nodes under root (root included) matching pred, in
// document order.
func QueryAll(root *Node, pred func(*Node) bool) []*Node {
	if root == nil {
		return nil
	}
	var out []*Node
	root.walk(func(n *Node) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Query returns the first node under root matching pred.
func Query(root *Node, pred func(*Node) bool) *Node {
	if root == nil {
		return nil
	}
	var found *Node
	root.walk(func(n *Node) bool {
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// ClosestAncestor returns the nearest of n and its ancestors matching pred.
func ClosestAncestor(n *Node, pred func(*Node) bool) *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if pred(cur) {
			return cur
		}
	}
	return nil
}

// HasAttrValue returns a predicate matching nodes whose attribute equals value.
func HasAttrValue(name, value string) func(*Node) bool {
	return func(n *Node) bool {
		v, ok := n.attrs[name]
		return ok && v == value
	}
}

// Ref captures a node created by a host widget.
type Ref struct {
	node *Node
}

// Node returns the captured node, or nil when unmounted.
func (r *Ref) Node() *Node {
	if r == nil {
		return nil
	}
	return r.node
}

// Set stores the node.
func (r *Ref) Set(n *Node) {
	if r != nil {
		r.node = n
	}
}
