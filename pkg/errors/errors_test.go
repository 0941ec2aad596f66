package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

type recorder struct {
	panics []*PanicError
	builds []*BuildError
}

func (r *recorder) HandlePanic(err *PanicError)      { r.panics = append(r.panics, err) }
func (r *recorder) HandleBuildError(err *BuildError) { r.builds = append(r.builds, err) }

func install(t *testing.T) *recorder {
	t.Helper()
	r := &recorder{}
	prev := SetHandler(r)
	t.Cleanup(func() { SetHandler(prev) })
	return r
}

func TestContextError(t *testing.T) {
	err := &ContextError{Primitive: "Trigger", Root: "Root"}
	if got, want := err.Error(), "Trigger must be used within a Root"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, ErrMissingScope) {
		t.Error("ContextError should unwrap to ErrMissingScope")
	}
	if !IsContractViolation(fmt.Errorf("mounting menu: %w", err)) {
		t.Error("a wrapped ContextError is still a contract violation")
	}
	for _, v := range []any{nil, "boom", 42, fmt.Errorf("plain")} {
		if IsContractViolation(v) {
			t.Errorf("IsContractViolation(%v) = true", v)
		}
	}
}

func TestErrorStrings(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&PanicError{Value: "nil node"}, "panic: nil node"},
		{&PanicError{Op: "dom.Dispatch", Value: "nil node"}, "panic in dom.Dispatch: nil node"},
		{&BuildError{Widget: "disclosure.Panel", Recovered: "nil map"}, "panic in disclosure.Panel.Build(): nil map"},
		{&BuildError{Widget: "widgets.Dropdown", Err: stderrors.New("no items")}, "error in widgets.Dropdown.Build(): no items"},
		{&BuildError{Widget: "disclosure.Panel"}, "unknown error in disclosure.Panel.Build()"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestRecoverReports(t *testing.T) {
	r := install(t)
	func() {
		defer Recover("engine.Frame")
		panic("frame work failed")
	}()

	if len(r.panics) != 1 {
		t.Fatalf("panics = %d, want 1", len(r.panics))
	}
	p := r.panics[0]
	if p.Op != "engine.Frame" || p.Value != "frame work failed" {
		t.Errorf("reported %+v", p)
	}
	if p.Timestamp.IsZero() || !strings.Contains(p.StackTrace, "TestRecoverReports") {
		t.Errorf("expected a timestamp and a stack naming the test, got %q", p.StackTrace)
	}
}

func TestRecoverReraisesContractViolation(t *testing.T) {
	r := install(t)
	defer func() {
		if _, ok := recover().(*ContextError); !ok {
			t.Fatal("expected the ContextError to propagate")
		}
		if len(r.panics) != 0 {
			t.Error("a contract violation must not be reported")
		}
	}()
	func() {
		defer Recover("dom.Dispatch")
		panic(&ContextError{Primitive: "Item", Root: "Root"})
	}()
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) installed %T", Handler())
	}
	ReportPanic(nil)
	ReportBuildError(nil)
}

func TestLogHandler(t *testing.T) {
	var quiet, verbose bytes.Buffer
	err := &BuildError{Widget: "widgets.SpeedMenu", Recovered: "bad rate", StackTrace: "main.build\n\tmain.go:1"}
	(&LogHandler{Out: &quiet}).HandleBuildError(err)
	(&LogHandler{Out: &verbose, Verbose: true}).HandleBuildError(err)

	want := "campus: build: panic in widgets.SpeedMenu.Build(): bad rate\n"
	if quiet.String() != want {
		t.Errorf("quiet = %q", quiet.String())
	}
	if verbose.String() != want+"main.build\n\tmain.go:1\n" {
		t.Errorf("verbose = %q", verbose.String())
	}
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &SlogHandler{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	h.HandleBuildError(&BuildError{Widget: "widgets.SearchBox", Recovered: "boom", StackTrace: "frames"})
	h.HandlePanic(&PanicError{Op: "dom.Dispatch", Value: 7})

	out := buf.String()
	for _, want := range []string{"widget=widgets.SearchBox", `msg="build stack"`, "op=dom.Dispatch", "value=7"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}
