package disclosure

import (
	"github.com/campusui/campus/pkg/dom"
)

// Coordinator holds the document listeners of one open disclosure: a
// keydown listener for Escape and arrow navigation and a pointerdown
// listener for outside presses.
//
// Acquire and Release are idempotent, so at most one listener of each type
// is registered per coordinator.
type Coordinator struct {
	doc     *dom.Document
	root    *dom.Ref
	panel   *dom.Ref
	onClose func()

	removeKeyDown     func()
	removePointerDown func()
}

// NewCoordinator creates a coordinator. Presses outside root and Escape
// call onClose; arrow keys navigate the entries under panel.
func NewCoordinator(doc *dom.Document, root, panel *dom.Ref, onClose func()) *Coordinator {
	return &Coordinator{doc: doc, root: root, panel: panel, onClose: onClose}
}

// Acquire registers the document listeners.
func (c *Coordinator) Acquire() {
	if c.Held() {
		return
	}
	c.removeKeyDown = c.doc.AddEventListener(dom.EventKeyDown, c.handleKeyDown)
	c.removePointerDown = c.doc.AddEventListener(dom.EventPointerDown, c.handlePointerDown)
}

// Release removes the document listeners.
func (c *Coordinator) Release() {
	if !c.Held() {
		return
	}
	c.removeKeyDown()
	c.removePointerDown()
	c.removeKeyDown = nil
	c.removePointerDown = nil
}

// Held reports whether the listeners are registered.
func (c *Coordinator) Held() bool {
	return c.removeKeyDown != nil
}

func (c *Coordinator) handleKeyDown(ev *dom.Event) {
	if ev.Key == dom.KeyEscape {
		c.close()
		return
	}
	dir, ok := directionForKey(ev.Key)
	if !ok {
		return
	}
	if Navigate(c.panel.Node(), dir) {
		ev.PreventDefault()
	}
}

func (c *Coordinator) handlePointerDown(ev *dom.Event) {
	if root := c.root.Node(); root != nil && root.Contains(ev.Target) {
		return
	}
	c.close()
}

func (c *Coordinator) close() {
	if c.onClose != nil {
		c.onClose()
	}
}
