package primitives

import (
	"maps"

	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/dom"
)

// Button is a pressable element.
//
// Button activates on click and on Enter or Space while focused; key
// activation dispatches a click so ancestors observe the same event.
// A disabled button is natively disabled and never activates.
//
//	primitives.Button{
//	    Label:    "Save",
//	    OnTap:    save,
//	    Disabled: !dirty,
//	}
type Button struct {
	// Label is rendered as the button text when Child is nil.
	Label string
	// Child replaces the label.
	Child core.Widget
	// OnTap is called on activation.
	OnTap func()
	// StopPropagation stops the activating click at the button.
	StopPropagation bool
	// Disabled disables the button when true.
	Disabled bool
	// Role overrides the implicit button role.
	Role string
	// Attrs are extra attributes, typically aria state.
	Attrs map[string]string
	// Ref receives the button node.
	Ref *dom.Ref
	// TestID sets data-testid.
	TestID string
}

// ButtonOf creates a button with the given label and tap handler.
func ButtonOf(label string, onTap func()) Button {
	return Button{Label: label, OnTap: onTap}
}

// WithDisabled returns a copy of the button with the specified disabled state.
func (b Button) WithDisabled(disabled bool) Button {
	b.Disabled = disabled
	return b
}

// WithAttr returns a copy of the button with an extra attribute.
func (b Button) WithAttr(name, value string) Button {
	attrs := make(map[string]string, len(b.Attrs)+1)
	maps.Copy(attrs, b.Attrs)
	attrs[name] = value
	b.Attrs = attrs
	return b
}

func (b Button) CreateElement() core.Element {
	return core.NewStatelessElement()
}

func (b Button) Key() any {
	return nil
}

func (b Button) Build(ctx core.BuildContext) core.Widget {
	attrs := make(map[string]string, len(b.Attrs)+2)
	maps.Copy(attrs, b.Attrs)
	attrs["type"] = "button"
	if b.Disabled {
		attrs["disabled"] = ""
	}

	child := b.Child
	if child == nil {
		child = Text{Content: b.Label}
	}

	box := Box{
		Tag:      "button",
		Role:     b.Role,
		TestID:   b.TestID,
		Attrs:    attrs,
		Ref:      b.Ref,
		Children: []core.Widget{child},
	}
	if b.Disabled {
		return box
	}

	box.OnClick = func(ev *dom.Event) {
		if b.StopPropagation {
			ev.StopPropagation()
		}
		if b.OnTap != nil {
			b.OnTap()
		}
	}
	box.OnKeyDown = func(ev *dom.Event) {
		if ev.Key != dom.KeyEnter && ev.Key != dom.KeySpace {
			return
		}
		ev.PreventDefault()
		node := ev.CurrentTarget
		node.Document().Click(node)
	}
	return box
}
