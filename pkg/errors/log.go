package errors

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LogHandler writes one line per failure, plus the stack when Verbose.
type LogHandler struct {
	Verbose bool
	// Out defaults to os.Stderr.
	Out io.Writer
}

func (h *LogHandler) HandlePanic(err *PanicError) {
	h.write("panic", err.Error(), err.StackTrace)
}

func (h *LogHandler) HandleBuildError(err *BuildError) {
	h.write("build", err.Error(), err.StackTrace)
}

func (h *LogHandler) write(kind, msg, stack string) {
	out := h.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "campus: %s: %s\n", kind, msg)
	if h.Verbose && stack != "" {
		fmt.Fprintf(out, "%s\n", stack)
	}
}

// SlogHandler reports failures as error records on Logger, or on
// slog.Default when Logger is nil. Stacks are attached at debug level.
type SlogHandler struct {
	Logger *slog.Logger
}

func (h *SlogHandler) log() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}

func (h *SlogHandler) HandlePanic(err *PanicError) {
	l := h.log()
	l.Error("recovered panic", "op", err.Op, "value", fmt.Sprint(err.Value))
	l.Debug("panic stack", "op", err.Op, "stack", err.StackTrace)
}

func (h *SlogHandler) HandleBuildError(err *BuildError) {
	l := h.log()
	l.Error("build failed", "widget", err.Widget, "element", err.Element, "err", err.Error())
	l.Debug("build stack", "widget", err.Widget, "stack", err.StackTrace)
}
