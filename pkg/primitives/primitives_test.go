package primitives_test

import (
	"testing"

	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/dom"
	"github.com/campusui/campus/pkg/primitives"
	campustest "github.com/campusui/campus/pkg/testing"
)

func TestButtonActivation(t *testing.T) {
	tests := []struct {
		name     string
		disabled bool
		activate func(*campustest.WidgetTester)
		want     int
	}{
		{"tap", false, func(tt *campustest.WidgetTester) { tt.Tap(campustest.ByTestID("b")) }, 1},
		{"click only", false, func(tt *campustest.WidgetTester) { tt.Click(campustest.ByTestID("b")) }, 1},
		{"enter", false, func(tt *campustest.WidgetTester) {
			tt.Focus(campustest.ByTestID("b"))
			tt.PressKey(dom.KeyEnter)
		}, 1},
		{"space", false, func(tt *campustest.WidgetTester) {
			tt.Focus(campustest.ByTestID("b"))
			tt.PressKey(dom.KeySpace)
		}, 1},
		{"other key", false, func(tt *campustest.WidgetTester) {
			tt.Focus(campustest.ByTestID("b"))
			tt.PressKey(dom.KeyArrowDown)
		}, 0},
		{"disabled tap", true, func(tt *campustest.WidgetTester) { tt.Tap(campustest.ByTestID("b")) }, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tester := campustest.NewWidgetTesterWithT(t)
			taps := 0
			tester.PumpWidget(primitives.Button{
				Label:    "Go",
				TestID:   "b",
				Disabled: tc.disabled,
				OnTap:    func() { taps++ },
			})
			tc.activate(tester)
			if taps != tc.want {
				t.Errorf("taps = %d, want %d", taps, tc.want)
			}
		})
	}
}

func TestButtonKeyActivationPreventsDefault(t *testing.T) {
	tester := campustest.NewWidgetTesterWithT(t)
	tester.PumpWidget(primitives.ButtonOf("Go", func() {}).WithAttr("aria-haspopup", "menu"))

	tester.Focus(campustest.ByTag("button"))
	if ev := tester.PressKey(dom.KeyEnter); !ev.DefaultPrevented() {
		t.Error("Enter on a button should prevent the default action")
	}
	if got := tester.Find(campustest.ByTag("button")).Attr("aria-haspopup"); got != "menu" {
		t.Errorf("aria-haspopup = %q", got)
	}
}

func TestButtonStopPropagation(t *testing.T) {
	tests := []struct {
		stop bool
		want int
	}{
		{false, 1},
		{true, 0},
	}
	for _, tc := range tests {
		tester := campustest.NewWidgetTesterWithT(t)
		outer := 0
		remove := tester.Document().AddEventListener(dom.EventClick, func(*dom.Event) { outer++ })
		tester.PumpWidget(primitives.Button{Label: "x", StopPropagation: tc.stop})

		tester.Tap(campustest.ByText("x"))
		remove()
		if outer != tc.want {
			t.Errorf("stop=%v: document saw %d clicks, want %d", tc.stop, outer, tc.want)
		}
	}
}

func TestDisabledButtonIsNotFocusable(t *testing.T) {
	tester := campustest.NewWidgetTesterWithT(t)
	tester.PumpWidget(primitives.ButtonOf("x", nil).WithDisabled(true))

	if err := tester.Focus(campustest.ByTag("button")); err == nil {
		t.Error("expected focusing a disabled button to fail")
	}
	if !tester.Find(campustest.ByTag("button")).First().HasAttr("disabled") {
		t.Error("expected the disabled attribute")
	}
}

func TestBoxAttributesAndLayout(t *testing.T) {
	tester := campustest.NewWidgetTesterWithT(t)
	tester.PumpWidget(primitives.RowOf(
		primitives.Box{Tag: "span", Role: "separator"}.WithTestID("sep"),
		primitives.Text{Content: "tail"},
	).WithAttr("aria-label", "toolbar"))

	row := tester.Find(campustest.ByAttr("data-layout", primitives.LayoutRow)).First()
	if row.Tag != "div" || row.GetAttr("aria-label") != "toolbar" {
		t.Errorf("row = %s", dom.Dump(row))
	}
	sep := tester.Find(campustest.ByTestID("sep")).First()
	if sep.Tag != "span" || sep.GetAttr("role") != "separator" {
		t.Errorf("separator = %s", dom.Dump(sep))
	}
	if got := row.TextContent(); got != "tail" {
		t.Errorf("row text = %q", got)
	}
}

func TestBoxHandlersAreReplacedOnRebuild(t *testing.T) {
	tester := campustest.NewWidgetTesterWithT(t)
	var log []string
	var setLabel func(func(string) string)
	tester.PumpWidget(core.Stateful(func() string { return "a" }, func(label string, _ core.BuildContext, set func(func(string) string)) core.Widget {
		setLabel = set
		return primitives.Box{
			TestID:  "box",
			OnClick: func(*dom.Event) { log = append(log, label) },
		}
	}))

	tester.Click(campustest.ByTestID("box"))
	setLabel(func(string) string { return "b" })
	tester.Pump()
	tester.Click(campustest.ByTestID("box"))

	if len(log) != 2 || log[0] != "a" || log[1] != "b" {
		t.Errorf("clicks = %v", log)
	}
}

func TestTextInputChanges(t *testing.T) {
	tester := campustest.NewWidgetTesterWithT(t)
	var changes []string
	tester.PumpWidget(core.Stateful(func() string { return "" }, func(value string, _ core.BuildContext, set func(func(string) string)) core.Widget {
		return primitives.TextInput{
			TestID:      "q",
			Value:       value,
			Placeholder: "Search",
			OnChanged: func(v string) {
				changes = append(changes, v)
				set(func(string) string { return v })
			},
		}
	}))

	tester.EnterText(campustest.ByTestID("q"), "go")
	tester.Pump()
	tester.EnterText(campustest.ByTestID("q"), "go")

	if len(changes) != 1 || changes[0] != "go" {
		t.Errorf("changes = %v", changes)
	}
	input := tester.Find(campustest.ByTestID("q")).First()
	if input.GetAttr("value") != "go" || input.GetAttr("placeholder") != "Search" {
		t.Errorf("input = %s", dom.Dump(input))
	}
}

func TestDisabledTextInputIgnoresInput(t *testing.T) {
	tester := campustest.NewWidgetTesterWithT(t)
	called := false
	tester.PumpWidget(primitives.TextInput{TestID: "q", Disabled: true, OnChanged: func(string) { called = true }})

	tester.EnterText(campustest.ByTestID("q"), "x")
	if called {
		t.Error("disabled input must not report changes")
	}
}
