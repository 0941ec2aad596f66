package disclosure

import (
	"maps"
	"strconv"

	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/primitives"
)

// Trigger is the button that toggles the enclosing disclosure.
//
// aria-expanded reflects the effective open state, so a controlled
// disclosure that has not yet been re-rendered stays collapsed.
type Trigger struct {
	core.StatelessBase
	// Label is the button text when Child is nil.
	Label string
	// Child replaces the label.
	Child core.Widget
	// Disabled disables the trigger.
	Disabled bool
	// Attrs are extra attributes.
	Attrs map[string]string
	// TestID sets data-testid.
	TestID string
}

func (t Trigger) Build(ctx core.BuildContext) core.Widget {
	scope := MustScopeOf(ctx, "Trigger")
	open := scope.Open()

	attrs := make(map[string]string, len(t.Attrs)+6)
	maps.Copy(attrs, t.Attrs)
	attrs["id"] = scope.TriggerID()
	attrs["data-slot"] = "dropdown-menu-trigger"
	attrs["data-state"] = stateAttr(open)
	attrs["aria-haspopup"] = "menu"
	attrs["aria-expanded"] = strconv.FormatBool(open)
	attrs["aria-controls"] = scope.PanelID()

	return primitives.Button{
		Label:           t.Label,
		Child:           t.Child,
		Disabled:        t.Disabled,
		Attrs:           attrs,
		TestID:          t.TestID,
		StopPropagation: true,
		OnTap:           scope.Toggle,
	}
}
