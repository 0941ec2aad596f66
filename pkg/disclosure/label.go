package disclosure

import (
	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/primitives"
)

// Label is a non-interactive heading inside a panel.
type Label struct {
	core.StatelessBase
	Text string
}

func (l Label) Build(ctx core.BuildContext) core.Widget {
	requireScope(ctx, "Label")
	return primitives.Box{
		Attrs:    map[string]string{"data-slot": "menu-label"},
		Children: []core.Widget{primitives.Text{Content: l.Text}},
	}
}

// Separator divides groups of entries.
type Separator struct {
	core.StatelessBase
}

func (Separator) Build(ctx core.BuildContext) core.Widget {
	requireScope(ctx, "Separator")
	return primitives.Box{
		Role:  "separator",
		Attrs: map[string]string{"data-slot": "menu-separator"},
	}
}

// Group wraps related entries. Entries inside a group are navigated as if
// they were direct children of the panel.
type Group struct {
	core.StatelessBase
	Label    string
	Children []core.Widget
}

func (g Group) Build(ctx core.BuildContext) core.Widget {
	requireScope(ctx, "Group")
	attrs := map[string]string{"data-slot": "menu-group"}
	if g.Label != "" {
		attrs["aria-label"] = g.Label
	}
	return primitives.Box{Role: "group", Attrs: attrs, Children: g.Children}
}
