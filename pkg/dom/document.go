package dom

import (
	"fmt"
	"slices"
	"strings"

	"github.com/campusui/campus/pkg/errors"
	"github.com/campusui/campus/pkg/focus"
)

type listener struct {
	fn      Handler
	removed bool
}

// Document is the root of a node tree with focus and document listeners.
//
// Document is NOT thread-safe. It must only be used from the UI thread.
type Document struct {
	body      *Node
	focus     *focus.Manager
	listeners map[EventType][]*listener
}

// NewDocument creates an empty document with a body element.
func NewDocument() *Document {
	d := &Document{
		focus:     focus.NewManager(),
		listeners: make(map[EventType][]*listener),
	}
	d.body = d.CreateElement("body")
	return d
}

// Body returns the body element.
func (d *Document) Body() *Node { return d.body }

// CreateElement creates a detached element node.
func (d *Document) CreateElement(tag string) *Node {
	return &Node{Tag: tag, doc: d}
}

// CreateText creates a detached text node.
func (d *Document) CreateText(text string) *Node {
	return &Node{Tag: TextTag, Text: text, doc: d}
}

// ActiveElement returns the focused node, or nil when focus rests on the
// body.
func (d *Document) ActiveElement() *Node {
	if t := d.focus.Primary(); t != nil {
		n, _ := t.Owner.(*Node)
		return n
	}
	return nil
}

// BlurActive clears focus.
func (d *Document) BlurActive() {
	d.focus.Clear()
}

// nodeDetached clears focus when the active element left the tree.
func (d *Document) nodeDetached(n *Node) {
	if active := d.ActiveElement(); active != nil && n.Contains(active) {
		d.focus.Clear()
	}
}

// AddEventListener registers a document-level listener and returns the
// function that removes it. A listener removed during dispatch is not
// invoked for the remainder of that dispatch.
func (d *Document) AddEventListener(t EventType, fn Handler) (remove func()) {
	l := &listener{fn: fn}
	d.listeners[t] = append(d.listeners[t], l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		d.listeners[t] = slices.DeleteFunc(d.listeners[t], func(x *listener) bool { return x == l })
	}
}

// ListenerCount returns the number of document listeners for t.
func (d *Document) ListenerCount(t EventType) int {
	return len(d.listeners[t])
}

// Dispatch delivers ev to target, its ancestors, then document listeners.
func (d *Document) Dispatch(target *Node, ev *Event) *Event {
	if target == nil {
		target = d.body
	}
	ev.Target = target
	for cur := target; cur != nil; cur = cur.parent {
		if h := cur.handlers[ev.Type]; h != nil {
			ev.CurrentTarget = cur
			invoke(h, ev)
			if ev.propagationStopped {
				ev.CurrentTarget = nil
				return ev
			}
		}
	}
	ev.CurrentTarget = nil
	for _, l := range slices.Clone(d.listeners[ev.Type]) {
		if l.removed {
			continue
		}
		invoke(l.fn, ev)
		if ev.propagationStopped {
			break
		}
	}
	return ev
}

func invoke(h Handler, ev *Event) {
	defer errors.Recover("dom.Dispatch." + string(ev.Type))
	h(ev)
}

// KeyDown dispatches a keydown event to the active element (or body).
func (d *Document) KeyDown(key string) *Event {
	return d.Dispatch(d.ActiveElement(), &Event{Type: EventKeyDown, Key: key})
}

// PointerDown dispatches a pointerdown event to target. Unless the default
// is prevented, focus moves to the nearest focusable ancestor of target, or
// is cleared when there is none.
func (d *Document) PointerDown(target *Node) *Event {
	ev := d.Dispatch(target, &Event{Type: EventPointerDown})
	if ev.defaultPrevented {
		return ev
	}
	if focusable := ClosestAncestor(ev.Target, (*Node).Focusable); focusable != nil {
		focusable.Focus()
	} else {
		d.BlurActive()
	}
	return ev
}

// Click dispatches a click event to target. Natively disabled targets do
// not receive clicks.
func (d *Document) Click(target *Node) *Event {
	if target != nil && target.HasAttr("disabled") {
		return &Event{Type: EventClick, Target: target}
	}
	return d.Dispatch(target, &Event{Type: EventClick})
}

// Press simulates a full primary press: pointerdown followed by click.
func (d *Document) Press(target *Node) *Event {
	d.PointerDown(target)
	if target != nil && !target.Connected() {
		return &Event{Type: EventClick, Target: target}
	}
	return d.Click(target)
}

// Input dispatches an input event carrying the new value.
func (d *Document) Input(target *Node, value string) *Event {
	return d.Dispatch(target, &Event{Type: EventInput, Value: value})
}

// Dump renders the subtree under root as indented markup.
func Dump(root *Node) string {
	var sb strings.Builder
	dumpNode(&sb, root, 0)
	return sb.String()
}

func dumpNode(sb *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	if n.IsText() {
		fmt.Fprintf(sb, "%s%q\n", indent, n.Text)
		return
	}
	sb.WriteString(indent)
	sb.WriteString("<")
	sb.WriteString(n.Tag)
	for _, name := range n.AttrNames() {
		fmt.Fprintf(sb, " %s=%q", name, n.attrs[name])
	}
	if n.IsFocused() {
		sb.WriteString(" *focused")
	}
	sb.WriteString(">\n")
	for _, child := range n.children {
		dumpNode(sb, child, depth+1)
	}
}
