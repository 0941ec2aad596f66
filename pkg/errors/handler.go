package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

type handlerBox struct{ ErrorHandler }

var installed atomic.Pointer[handlerBox]

func init() { installed.Store(&handlerBox{&LogHandler{}}) }

// Handler returns the installed handler.
func Handler() ErrorHandler { return installed.Load().ErrorHandler }

// SetHandler installs h and returns the handler it replaced. A nil h
// installs a plain [LogHandler].
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return installed.Swap(&handlerBox{h}).ErrorHandler
}

// ReportPanic forwards err to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandlePanic(err)
}

// ReportBuildError forwards err to the installed handler.
func ReportBuildError(err *BuildError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandleBuildError(err)
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Recover must be deferred directly. It reports a recovered panic as a
// [PanicError] for op and re-panics contract violations untouched.
//
//	defer errors.Recover("engine.Frame")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	if IsContractViolation(r) {
		panic(r)
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line"
// entry per frame, starting above the function that called CaptureStack.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(3, pcs)]
	if len(pcs) == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs)
	for {
		f, more := frames.Next()
		sb.WriteString(f.Function + "\n\t" + f.File + ":" + strconv.Itoa(f.Line) + "\n")
		if !more {
			return sb.String()
		}
	}
}
