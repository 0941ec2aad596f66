package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/disclosure"
	"github.com/campusui/campus/pkg/dom"
	"github.com/campusui/campus/pkg/render"
	campustest "github.com/campusui/campus/pkg/testing"
)

func fileMenu(selected *[]string) core.Widget {
	pick := func(name string) func() {
		return func() { *selected = append(*selected, name) }
	}
	return disclosure.Root{Children: []core.Widget{
		disclosure.Trigger{Label: "Open"},
		disclosure.Panel{Children: []core.Widget{
			disclosure.Item{Label: "Rename", OnSelect: pick("rename")},
			disclosure.Item{Label: "Delete", Shortcut: "⌫", OnSelect: pick("delete")},
		}},
	}}
}

func paint(tester *campustest.WidgetTester) *render.Screen {
	return render.Terminal(render.Compute(tester.Document().Body()))
}

func TestTerminalDrawsPanelBelowTrigger(t *testing.T) {
	tester := campustest.NewWidgetTesterWithT(t)
	var selected []string
	tester.PumpWidget(fileMenu(&selected))

	if got := paint(tester).Plain(); got != "[Open ▾]" {
		t.Fatalf("closed screen = %q", got)
	}

	tester.Tap(campustest.ByTag("button"))
	tester.Pump()
	want := strings.Join([]string{
		"[Open ▾]",
		"╭──────────╮",
		"│ Rename   │",
		"│ Delete ⌫ │",
		"╰──────────╯",
	}, "\n")
	screen := paint(tester)
	if got := screen.Plain(); got != want {
		t.Fatalf("open screen:\n%s\nwant:\n%s", got, want)
	}
	if !strings.Contains(screen.String(), "Rename") {
		t.Error("styled output should keep the item text")
	}
	if screen.AttrAt(0, 0)&render.AttrBold == 0 {
		t.Error("expanded trigger should be bold")
	}
}

func TestTerminalHighlightsFocusedEntry(t *testing.T) {
	tester := campustest.NewWidgetTesterWithT(t)
	var selected []string
	tester.PumpWidget(fileMenu(&selected))
	tester.Tap(campustest.ByTag("button"))
	tester.Pump()
	tester.PressKey(dom.KeyArrowDown)
	tester.Pump()

	screen := paint(tester)
	for x := 1; x <= 10; x++ {
		if screen.AttrAt(x, 2)&render.AttrReverse == 0 {
			t.Fatalf("cell %d of the focused row is not reversed", x)
		}
	}
	if screen.AttrAt(2, 3)&render.AttrReverse != 0 {
		t.Error("unfocused entry should not be reversed")
	}
	if screen.AttrAt(9, 3)&render.AttrFaint == 0 {
		t.Error("shortcut should be faint")
	}
}

func TestHitMapPressesTopmostNode(t *testing.T) {
	tester := campustest.NewWidgetTesterWithT(t)
	var selected []string
	tester.PumpWidget(fileMenu(&selected))

	hits := paint(tester).Hits()
	trigger := hits.At(2, 0)
	if trigger == nil || trigger.Tag != "button" {
		t.Fatalf("hit at trigger = %v", trigger)
	}
	tester.Document().Press(trigger)
	tester.Pump()

	hits = paint(tester).Hits()
	if hits.At(40, 40) != nil {
		t.Error("expected no node outside the painted area")
	}
	target := hits.At(3, 3)
	if target == nil || target.TextContent() != "Delete⌫" {
		t.Fatalf("hit inside the panel = %v", target)
	}
	tester.Document().Press(target)
	tester.PumpAndSettle(time.Second)

	if len(selected) != 1 || selected[0] != "delete" {
		t.Errorf("selected = %v", selected)
	}
	if got := paint(tester).Plain(); got != "[Open ▾]" {
		t.Errorf("menu should close after selection, screen = %q", got)
	}
}

func TestComputePlacesPanelBySide(t *testing.T) {
	doc := dom.NewDocument()
	row := doc.CreateElement("div")
	row.SetAttr("data-layout", "row")
	row.AppendChild(doc.CreateText("Menu:"))
	trigger := doc.CreateElement("button")
	trigger.SetAttr("id", "t")
	trigger.SetAttr("aria-haspopup", "menu")
	trigger.AppendChild(doc.CreateText("Go"))
	row.AppendChild(trigger)

	panel := doc.CreateElement("div")
	panel.SetAttr("role", "menu")
	panel.SetAttr("aria-labelledby", "t")
	panel.SetAttr("data-side", "right")
	panel.SetAttr("data-align", "start")
	panel.SetAttr("style", "margin-left:8px")
	item := doc.CreateElement("div")
	item.SetAttr("data-slot", disclosure.EntrySlot)
	item.AppendChild(doc.CreateText("One"))
	panel.AppendChild(item)

	doc.Body().AppendChild(row)
	doc.Body().AppendChild(panel)

	layout := render.Compute(doc.Body())
	box, ok := layout.BoxOf(panel)
	if !ok {
		t.Fatal("panel was not laid out")
	}
	if want := (disclosure.Rect{X: 13, Y: 0, W: 7, H: 3}); box.Rect != want || !box.Overlay {
		t.Errorf("panel box = %+v, want rect %+v", box, want)
	}

	want := strings.Join([]string{
		"Menu: [Go ▾] ╭─────╮",
		"             │ One │",
		"             ╰─────╯",
	}, "\n")
	if got := render.Terminal(layout).Plain(); got != want {
		t.Errorf("screen:\n%s\nwant:\n%s", got, want)
	}
}

func TestComputeSkipsPanelWithoutTrigger(t *testing.T) {
	doc := dom.NewDocument()
	panel := doc.CreateElement("div")
	panel.SetAttr("role", "menu")
	panel.SetAttr("aria-labelledby", "missing")
	panel.AppendChild(doc.CreateText("orphan"))
	doc.Body().AppendChild(panel)

	layout := render.Compute(doc.Body())
	if _, ok := layout.BoxOf(panel); ok {
		t.Error("a panel without its trigger has nowhere to go")
	}
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestDiagramPlacement(t *testing.T) {
	tests := []struct {
		name string
		d    render.Diagram
		want disclosure.Rect
	}{
		{"defaults", render.Diagram{Offset: 4}, disclosure.Rect{X: 112, Y: 128, W: 128, H: 72}},
		{"top end", render.Diagram{Side: disclosure.SideTop, Align: disclosure.AlignEnd}, disclosure.Rect{X: 80, Y: 24, W: 128, H: 72}},
		{"right center", render.Diagram{Side: disclosure.SideRight, Align: disclosure.AlignCenter, Offset: 2}, disclosure.Rect{X: 210, Y: 74, W: 128, H: 72}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.PanelRect(); got != tt.want {
				t.Errorf("PanelRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDiagramImage(t *testing.T) {
	d := render.Diagram{Offset: 4}
	img := d.Image()
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 220 {
		t.Fatalf("bounds = %v", b)
	}
	checks := []struct {
		name string
		x, y int
		want render.Color
	}{
		{"canvas", 1, 1, render.ColorCanvas},
		{"anchor", 113, 97, render.ColorAnchor},
		{"gap", 150, 125, render.ColorCanvas},
		{"outline", 112, 128, render.ColorOutline},
		{"panel", 114, 130, render.ColorPanel},
	}
	for _, c := range checks {
		if got, want := rgba(img.At(c.x, c.y)), rgba(c.want); got != want {
			t.Errorf("%s pixel = %v, want %v", c.name, got, want)
		}
	}

	var buf bytes.Buffer
	if err := d.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v", decoded.Bounds())
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := render.RGB(0x25, 0x63, 0xEB).RGBA()
	if r != 0x2525 || g != 0x6363 || b != 0xEBEB || a != 0xFFFF {
		t.Errorf("RGBA() = %x %x %x %x", r, g, b, a)
	}
	if r, g, b, a := render.ColorPanel.WithAlpha(0).RGBA(); r|g|b|a != 0 {
		t.Error("transparent color should premultiply to zero")
	}
}
