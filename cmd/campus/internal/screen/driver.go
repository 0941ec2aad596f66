package screen

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/campusui/campus/pkg/animation"
	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/dom"
	"github.com/campusui/campus/pkg/engine"
	"github.com/campusui/campus/pkg/focus"
	"github.com/campusui/campus/pkg/render"
)

// FrameInterval is the step used while timers are pending.
const FrameInterval = 16 * time.Millisecond

// Driver mounts a widget tree in an engine and feeds it presses, keys and
// text the way a terminal host does. All methods must be called from the
// goroutine that owns the engine.
type Driver struct {
	eng  *engine.Engine
	last *render.Screen

	// Logger, when set, receives one debug record per frame.
	Logger *slog.Logger
}

// NewDriver mounts root in a fresh engine.
func NewDriver(root core.Widget) *Driver {
	eng := engine.New()
	eng.Mount(root)
	return &Driver{eng: eng}
}

// Engine returns the underlying engine.
func (d *Driver) Engine() *engine.Engine { return d.eng }

// Document returns the mounted document.
func (d *Driver) Document() *dom.Document { return d.eng.Document() }

// Close unmounts the tree and cancels its timers.
func (d *Driver) Close() { d.eng.Unmount() }

// Find returns the first node whose data-testid, aria-label or trimmed text
// equals name, preferring interactive nodes.
func (d *Driver) Find(name string) *dom.Node {
	body := d.Document().Body()
	matchers := []func(*dom.Node) bool{
		dom.HasAttrValue("data-testid", name),
		dom.HasAttrValue("aria-label", name),
		func(n *dom.Node) bool {
			return interactive(n) && strings.TrimSpace(n.TextContent()) == name
		},
	}
	for _, match := range matchers {
		if n := dom.Query(body, match); n != nil {
			return n
		}
	}
	return nil
}

func interactive(n *dom.Node) bool {
	return n.Focusable() || n.Handler(dom.EventClick) != nil
}

// Press presses the node named name; see [Driver.Find].
func (d *Driver) Press(name string) error {
	n := d.Find(name)
	if n == nil {
		return fmt.Errorf("no node named %q", name)
	}
	d.Document().Press(n)
	return nil
}

// PressAt presses whatever the last painted screen shows at (x, y). Empty
// cells press the body, which counts as an outside press for open menus.
func (d *Driver) PressAt(x, y int) {
	var target *dom.Node
	if d.last != nil {
		target = d.last.Hits().At(x, y)
	}
	if target == nil {
		target = d.Document().Body()
	}
	d.Document().Press(target)
}

// Key dispatches a keydown to the focused node. Tab and Shift+Tab move focus
// between tabbable nodes when nothing handles the key.
func (d *Driver) Key(key string, shift bool) {
	ev := d.Document().KeyDown(key)
	if ev.DefaultPrevented() || key != dom.KeyTab {
		return
	}
	dir := focus.Next
	if shift {
		dir = focus.Previous
	}
	d.moveFocus(dir)
}

func (d *Driver) moveFocus(dir focus.Direction) {
	tabbable := dom.QueryAll(d.Document().Body(), func(n *dom.Node) bool {
		return n.Focusable() && n.GetAttr("tabindex") != "-1"
	})
	if len(tabbable) == 0 {
		return
	}
	current := -1
	for i, n := range tabbable {
		if n.IsFocused() {
			current = i
		}
	}
	tabbable[focus.Step(current, len(tabbable), dir)].Focus()
}

// Type appends text to the focused text field.
func (d *Driver) Type(text string) bool {
	input := d.activeInput()
	if input == nil {
		return false
	}
	d.Document().Input(input, input.GetAttr("value")+text)
	return true
}

// Backspace deletes the last character of the focused text field.
func (d *Driver) Backspace() bool {
	input := d.activeInput()
	if input == nil {
		return false
	}
	value := []rune(input.GetAttr("value"))
	if len(value) == 0 {
		return true
	}
	d.Document().Input(input, string(value[:len(value)-1]))
	return true
}

func (d *Driver) activeInput() *dom.Node {
	if n := d.Document().ActiveElement(); n != nil && n.Tag == "input" {
		return n
	}
	return nil
}

// Frame produces a frame if one is needed and reports whether it did.
func (d *Driver) Frame() bool {
	if !d.eng.NeedsFrame() {
		return false
	}
	stats := d.eng.Frame()
	if d.Logger != nil {
		d.Logger.Debug("frame", "stats", stats)
	}
	return true
}

// Settle runs frames until no work remains, advancing clock by
// FrameInterval between frames. It gives up after limit simulated time.
func (d *Driver) Settle(clock *animation.ManualClock, limit time.Duration) error {
	for elapsed := time.Duration(0); d.Frame(); elapsed += FrameInterval {
		if elapsed >= limit {
			return fmt.Errorf("screen did not settle within %s", limit)
		}
		clock.Advance(FrameInterval)
	}
	return nil
}

// Screen lays out and paints the document. Its hit map serves later calls
// to PressAt.
func (d *Driver) Screen() *render.Screen {
	d.last = render.Terminal(render.Compute(d.Document().Body()))
	return d.last
}

// Dump renders the document as markup.
func (d *Driver) Dump() string {
	return dom.Dump(d.Document().Body())
}
