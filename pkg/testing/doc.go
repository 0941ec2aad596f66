// Package testing provides a widget testing framework for campus.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions against the document:
//
//	func TestMenu(t *testing.T) {
//	    tester := campustest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(MyMenu{})
//
//	    tester.Tap(campustest.ByRole("button"))
//	    tester.Pump()
//
//	    if !tester.Find(campustest.ByRole("menu")).Exists() {
//	        t.Error("expected the menu to open")
//	    }
//	}
//
// Gestures dispatch events synchronously; call Pump to run the frame that
// rebuilds in response.
//
// # Exit Animations
//
// The tester installs a [FakeClock]. Time only moves when the test says so:
//
//	tester.PressKey(dom.KeyEscape)
//	tester.PumpFor(199 * time.Millisecond) // menu still present
//	tester.PumpFor(time.Millisecond)       // menu gone
//
// Tests using a tester must not call t.Parallel: tickers and the animation
// clock are process-wide.
//
// # Snapshot Testing
//
// Capture the document and compare it against a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/menu_open.yaml")
//
// Update snapshots with:
//
//	CAMPUS_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import campustest "github.com/campusui/campus/pkg/testing"
package testing
