// Package engine drives frames for a mounted widget tree.
//
// A frame drains callbacks queued with [Engine.Dispatch], steps active
// tickers and timers, then flushes pending builds into the document. Host
// loops (the terminal showcase, the widget tester) call [Engine.Frame]
// whenever [Engine.NeedsFrame] reports work.
package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/campusui/campus/pkg/animation"
	"github.com/campusui/campus/pkg/core"
	"github.com/campusui/campus/pkg/dom"
	"github.com/campusui/campus/pkg/errors"
)

// Engine owns one document, its build owner and the mounted root.
//
// Frame, Mount and Unmount must be called from the UI goroutine, and Mount
// must not be called from frame work. Dispatch and RequestFrame may be
// called from any goroutine.
type Engine struct {
	frameLock sync.Mutex
	owner     *core.BuildOwner
	root      core.Element

	dispatchMu    sync.Mutex
	dispatchQueue []func()

	pendingFrameRequest atomic.Bool
	frameCounter        atomic.Uint64
	timings             *FrameTimingBuffer

	// OnFrameRequested is called whenever new work is scheduled. Host loops
	// use it to wake up.
	OnFrameRequested func()
}

// New creates an engine with an empty document.
func New() *Engine {
	e := &Engine{
		owner:   core.NewBuildOwner(dom.NewDocument()),
		timings: NewFrameTimingBuffer(120),
	}
	e.owner.OnNeedsFrame = e.RequestFrame
	return e
}

// Document returns the engine's document.
func (e *Engine) Document() *dom.Document {
	return e.owner.Document()
}

// BuildOwner returns the engine's build owner.
func (e *Engine) BuildOwner() *core.BuildOwner {
	return e.owner
}

// Root returns the mounted root element, or nil.
func (e *Engine) Root() core.Element {
	return e.root
}

// Mount replaces the current tree with root and builds it immediately.
func (e *Engine) Mount(root core.Widget) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	e.unmountLocked()
	e.root = core.MountRoot(root, e.owner)
}

// Unmount tears down the mounted tree.
func (e *Engine) Unmount() {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	e.unmountLocked()
}

func (e *Engine) unmountLocked() {
	if e.root == nil {
		return
	}
	e.root.Unmount()
	e.root = nil
	e.owner.FlushBuild()
}

// Dispatch queues callback to run on the UI goroutine at the start of the
// next frame.
func (e *Engine) Dispatch(callback func()) {
	if callback == nil {
		return
	}
	e.dispatchMu.Lock()
	e.dispatchQueue = append(e.dispatchQueue, callback)
	e.dispatchMu.Unlock()
	e.RequestFrame()
}

func (e *Engine) drainDispatchQueue() []func() {
	e.dispatchMu.Lock()
	callbacks := e.dispatchQueue
	e.dispatchQueue = nil
	e.dispatchMu.Unlock()
	return callbacks
}

// RequestFrame marks that a frame should be produced.
func (e *Engine) RequestFrame() {
	e.pendingFrameRequest.Store(true)
	if e.OnFrameRequested != nil {
		e.OnFrameRequested()
	}
}

// NeedsFrame reports whether a frame has been requested, builds are pending,
// or tickers are running.
func (e *Engine) NeedsFrame() bool {
	if e.pendingFrameRequest.Load() || e.owner.NeedsWork() || animation.HasActiveTickers() {
		return true
	}
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()
	return len(e.dispatchQueue) > 0
}

// Frame runs one frame. A panic raised by frame work is reported and the
// frame ends early; contract violations propagate to the caller.
func (e *Engine) Frame() FrameStats {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()

	start := time.Now()
	stats := FrameStats{ID: e.frameCounter.Add(1)}

	func() {
		defer errors.Recover("engine.Frame")

		callbacks := e.drainDispatchQueue()
		stats.Dispatched = len(callbacks)
		for _, cb := range callbacks {
			cb()
		}

		stats.Ticked = animation.HasActiveTickers()
		animation.StepTickers()

		e.owner.FlushBuild()
	}()

	// Builds scheduled during this frame were flushed above.
	e.pendingFrameRequest.Store(false)
	stats.Duration = time.Since(start)
	e.timings.Add(stats.Duration)
	return stats
}

// FrameCount returns the number of frames produced.
func (e *Engine) FrameCount() uint64 {
	return e.frameCounter.Load()
}

// Timings returns the recent frame durations.
func (e *Engine) Timings() *FrameTimingBuffer {
	return e.timings
}
