package testing

import (
	"fmt"

	"github.com/campusui/campus/pkg/dom"
)

func (t *WidgetTester) resolve(op string, finder Finder) (*dom.Node, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return nil, fmt.Errorf("%s: finder matched no nodes: %s", op, finder.Description())
	}
	return result.First(), nil
}

// Tap simulates a full primary press (pointerdown then click) on the first
// node matched by finder.
func (t *WidgetTester) Tap(finder Finder) error {
	node, err := t.resolve("Tap", finder)
	if err != nil {
		return err
	}
	t.Document().Press(node)
	return nil
}

// Click dispatches only a click, as assistive technology would.
func (t *WidgetTester) Click(finder Finder) error {
	node, err := t.resolve("Click", finder)
	if err != nil {
		return err
	}
	t.Document().Click(node)
	return nil
}

// PointerDown dispatches only a pointerdown on the first match.
func (t *WidgetTester) PointerDown(finder Finder) error {
	node, err := t.resolve("PointerDown", finder)
	if err != nil {
		return err
	}
	t.Document().PointerDown(node)
	return nil
}

// TapOutside presses the document body, outside every mounted widget.
func (t *WidgetTester) TapOutside() {
	t.Document().Press(t.Document().Body())
}

// PressKey dispatches a keydown to the focused node, or the body.
func (t *WidgetTester) PressKey(key string) *dom.Event {
	return t.Document().KeyDown(key)
}

// Focus moves focus to the first match.
func (t *WidgetTester) Focus(finder Finder) error {
	node, err := t.resolve("Focus", finder)
	if err != nil {
		return err
	}
	if !node.Focus() {
		return fmt.Errorf("Focus: node cannot receive focus: %s", finder.Description())
	}
	return nil
}

// EnterText focuses the first match and dispatches an input event carrying
// text as the new value.
func (t *WidgetTester) EnterText(finder Finder, text string) error {
	node, err := t.resolve("EnterText", finder)
	if err != nil {
		return err
	}
	node.Focus()
	t.Document().Input(node, text)
	return nil
}
