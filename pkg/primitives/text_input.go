package primitives

import (
	"maps"

	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/dom"
)

// TextInput is a single-line controlled text field.
//
// The node's value attribute always reflects Value; OnChanged receives the
// proposed value from input events and the owner decides whether to accept
// it by rebuilding with a new Value.
type TextInput struct {
	// Value is the current text.
	Value string
	// Placeholder text shown when empty.
	Placeholder string
	// OnChanged is called when the text changes.
	OnChanged func(string)
	// OnKeyDown observes key presses while the input is focused.
	OnKeyDown dom.Handler
	// Disabled controls whether the field rejects input.
	Disabled bool
	// Attrs are extra attributes.
	Attrs map[string]string
	// Ref receives the input node.
	Ref *dom.Ref
	// TestID sets data-testid.
	TestID string
}

func (t TextInput) CreateElement() core.Element {
	return core.NewStatelessElement()
}

func (t TextInput) Key() any {
	return nil
}

func (t TextInput) Build(ctx core.BuildContext) core.Widget {
	attrs := make(map[string]string, len(t.Attrs)+3)
	maps.Copy(attrs, t.Attrs)
	attrs["type"] = "text"
	attrs["value"] = t.Value
	if t.Placeholder != "" {
		attrs["placeholder"] = t.Placeholder
	}
	if t.Disabled {
		attrs["disabled"] = ""
	}

	box := Box{
		Tag:    "input",
		TestID: t.TestID,
		Attrs:  attrs,
		Ref:    t.Ref,
	}
	if t.Disabled {
		return box
	}
	box.OnKeyDown = t.OnKeyDown
	box.OnInput = func(ev *dom.Event) {
		if ev.Value == t.Value || t.OnChanged == nil {
			return
		}
		t.OnChanged(ev.Value)
	}
	return box
}
