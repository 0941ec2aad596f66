package widgets

import (
	"reflect"

	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/disclosure"
)

// DropdownItem represents a selectable value for a dropdown.
type DropdownItem[T any] struct {
	// Value is the item value.
	Value T
	// Label is the text shown for the item.
	Label string
	// ChildWidget overrides the label when provided.
	ChildWidget core.Widget
	// Disabled disables selection when true.
	Disabled bool
}

// Dropdown displays a button that opens a menu of selectable items.
//
// Dropdown is a generic widget where T is the type of the selection value.
// When an item is selected, OnChanged is called with the selected item's Value
// and the menu closes. The selected item is marked as the checked radio item.
//
// Example:
//
//	widgets.Dropdown[string]{
//	    Value: term,
//	    Hint:  "Select a term",
//	    Items: []widgets.DropdownItem[string]{
//	        {Value: "fall", Label: "Fall 2026"},
//	        {Value: "spring", Label: "Spring 2027"},
//	    },
//	    OnChanged: func(value string) {
//	        s.SetState(func() { s.term = value })
//	    },
//	}
type Dropdown[T any] struct {
	core.StatelessBase
	// Value is the current selected value.
	Value T
	// Items are the available selections.
	Items []DropdownItem[T]
	// OnChanged is called when a new value is selected.
	OnChanged func(T)
	// Hint is shown when no selection matches.
	Hint string
	// Disabled disables the dropdown when true.
	Disabled bool
	// Side and Align place the menu; zero values use the panel defaults.
	Side  disclosure.Side
	Align disclosure.Align
	// TestID sets data-testid on the disclosure root.
	TestID string
}

// SelectedIndex returns the index of the item matching Value, or -1.
func (d Dropdown[T]) SelectedIndex() int {
	for i, item := range d.Items {
		if reflect.DeepEqual(item.Value, d.Value) {
			return i
		}
	}
	return -1
}

func (d Dropdown[T]) Build(ctx core.BuildContext) core.Widget {
	selected := d.SelectedIndex()
	label := d.Hint
	var triggerAttrs map[string]string
	if selected >= 0 {
		label = d.Items[selected].Label
	} else {
		triggerAttrs = map[string]string{"data-placeholder": ""}
	}

	entries := make([]core.Widget, 0, len(d.Items))
	for i, item := range d.Items {
		entries = append(entries, disclosure.RadioItem{
			Label:    item.Label,
			Child:    item.ChildWidget,
			Checked:  i == selected,
			Disabled: item.Disabled,
			OnSelect: d.selectHandler(item.Value),
		})
	}

	return disclosure.Root{
		TestID: d.TestID,
		Children: []core.Widget{
			disclosure.Trigger{Label: label, Disabled: d.Disabled, Attrs: triggerAttrs},
			disclosure.Panel{Side: d.Side, Align: d.Align, Children: entries},
		},
	}
}

func (d Dropdown[T]) selectHandler(value T) func() {
	return func() {
		if d.OnChanged != nil {
			d.OnChanged(value)
		}
	}
}
