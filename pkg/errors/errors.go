// Package errors defines the failures the widget runtime reports and the
// handler they are reported to.
//
// Two kinds of failure are recovered and reported: a panic inside document
// event dispatch or frame work ([PanicError]) and a panic inside a widget's
// Build ([BuildError]). A [ContextError] is different: it marks a disclosure
// part built outside its root, which is a programming mistake, and recovery
// sites re-raise it instead of reporting it.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrMissingScope is the sentinel wrapped by every [ContextError].
var ErrMissingScope = stderrors.New("missing disclosure scope")

// ContextError names a part and the root it must be nested in.
type ContextError struct {
	Primitive string
	Root      string
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("%s must be used within a %s", e.Primitive, e.Root)
}

func (e *ContextError) Unwrap() error { return ErrMissingScope }

// ContractViolation reports true; recovery sites re-raise such values.
func (e *ContextError) ContractViolation() bool { return true }

// IsContractViolation reports whether v, an error or a recovered panic
// value, is anywhere in its chain a contract violation.
func IsContractViolation(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	var cv interface{ ContractViolation() bool }
	return stderrors.As(err, &cv) && cv.ContractViolation()
}

// PanicError is a panic recovered outside of Build.
type PanicError struct {
	// Op names the recovery site, such as "dom.Dispatch".
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
}

// BuildError is a failed Build. The element that failed renders nothing
// until its next successful build.
type BuildError struct {
	// Widget and Element are Go type names.
	Widget  string
	Element string
	// Recovered holds the panic value. Err is set instead for builds that
	// fail without panicking.
	Recovered  any
	Err        error
	StackTrace string
	Timestamp  time.Time
}

func (e *BuildError) Error() string {
	switch {
	case e.Recovered != nil:
		return fmt.Sprintf("panic in %s.Build(): %v", e.Widget, e.Recovered)
	case e.Err != nil:
		return fmt.Sprintf("error in %s.Build(): %v", e.Widget, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Build()", e.Widget)
}

func (e *BuildError) Unwrap() error { return e.Err }

// ErrorHandler receives reported failures. Calls arrive on the goroutine
// that recovered them.
type ErrorHandler interface {
	HandlePanic(err *PanicError)
	HandleBuildError(err *BuildError)
}
