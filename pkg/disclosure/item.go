package disclosure

import (
	"maps"
	"strconv"

	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/dom"
	"github.com/campusui/campus/pkg/primitives"
)

// Item is a navigable menu entry.
//
// Clicking the item, or pressing Enter or Space while it is focused, calls
// OnSelect and then closes the enclosing disclosure. A disabled item stays
// in the document but is skipped by arrow navigation and ignores
// activation; the events themselves keep propagating.
type Item struct {
	core.StatelessBase
	// Label is the entry text when Child is nil.
	Label string
	// Child replaces the label.
	Child core.Widget
	// Shortcut is a hint rendered after the label.
	Shortcut string
	// Disabled excludes the entry from navigation and activation.
	Disabled bool
	// OnSelect is called on activation.
	OnSelect func()
	// Attrs are extra attributes.
	Attrs map[string]string
	// TestID sets data-testid.
	TestID string
	// WidgetKey distinguishes entries when the list is filtered.
	WidgetKey any
}

func (i Item) Key() any { return i.WidgetKey }

func (i Item) Build(ctx core.BuildContext) core.Widget {
	return i.render(requireScope(ctx, "Item"), "menuitem", nil)
}

func (i Item) render(scope *Scope, role string, extra map[string]string) core.Widget {
	attrs := make(map[string]string, len(i.Attrs)+len(extra)+3)
	maps.Copy(attrs, i.Attrs)
	maps.Copy(attrs, extra)
	attrs["data-slot"] = EntrySlot
	attrs["tabindex"] = "-1"
	if i.Disabled {
		attrs["aria-disabled"] = "true"
		attrs["data-disabled"] = ""
	}

	children := []core.Widget{i.Child}
	if i.Child == nil {
		children[0] = primitives.Text{Content: i.Label}
	}
	if i.Shortcut != "" {
		children = append(children, primitives.Box{
			Tag:      "span",
			Attrs:    map[string]string{"data-slot": "menu-shortcut"},
			Children: []core.Widget{primitives.Text{Content: i.Shortcut}},
		})
	}

	disabled := i.Disabled
	onSelect := i.OnSelect
	return primitives.Box{
		Role:      role,
		TestID:    i.TestID,
		Attrs:     attrs,
		WidgetKey: i.WidgetKey,
		Children:  children,
		OnClick: func(*dom.Event) {
			if disabled {
				return
			}
			if onSelect != nil {
				onSelect()
			}
			scope.SetOpen(false)
		},
		OnKeyDown: func(ev *dom.Event) {
			if disabled || (ev.Key != dom.KeyEnter && ev.Key != dom.KeySpace) {
				return
			}
			ev.PreventDefault()
			node := ev.CurrentTarget
			node.Document().Click(node)
		},
	}
}

// RadioItem is an entry that shows whether it is the selected choice.
type RadioItem struct {
	core.StatelessBase
	Label    string
	Child    core.Widget
	Checked  bool
	Disabled bool
	OnSelect func()
	TestID   string
}

func (r RadioItem) Build(ctx core.BuildContext) core.Widget {
	item := Item{
		Label:    r.Label,
		Child:    r.Child,
		Disabled: r.Disabled,
		OnSelect: r.OnSelect,
		TestID:   r.TestID,
	}
	return item.render(requireScope(ctx, "RadioItem"), "menuitemradio", map[string]string{
		"aria-checked": strconv.FormatBool(r.Checked),
		"data-state":   checkedAttr(r.Checked),
	})
}

func checkedAttr(checked bool) string {
	if checked {
		return "checked"
	}
	return "unchecked"
}
