package core

// stateBase is implemented by every struct embedding [StateBase], so hooks
// can take the state itself as their first argument.
type stateBase interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// StateBase gives a [State] its element link, SetState and a list of cleanup
// callbacks. Embed it and override only the lifecycle methods you need.
//
// A StateBase belongs to the UI goroutine. Work finishing elsewhere must hop
// back through engine.Dispatch before calling SetState.
type StateBase struct {
	element  *StatefulElement
	cleanups []func()
	disposed bool
}

// SetElement is called by the element that owns this state.
func (s *StateBase) SetElement(element *StatefulElement) {
	s.element = element
}

// Element returns the owning element, or nil before mount.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// SetState runs fn, then marks the element for rebuild. After disposal it
// does nothing.
func (s *StateBase) SetState(fn func()) {
	if s.disposed {
		return
	}
	if fn != nil {
		fn()
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// OnDispose registers cleanup to run when the state is disposed. Cleanups
// run last-registered first. Registering on a disposed state runs cleanup
// immediately.
func (s *StateBase) OnDispose(cleanup func()) {
	switch {
	case cleanup == nil:
	case s.disposed:
		cleanup()
	default:
		s.cleanups = append(s.cleanups, cleanup)
	}
}

// Dispose runs the registered cleanups once. States that override Dispose
// must call s.StateBase.Dispose().
func (s *StateBase) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	cleanups := s.cleanups
	s.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// IsDisposed reports whether Dispose has run.
func (s *StateBase) IsDisposed() bool {
	return s.disposed
}

func (s *StateBase) InitState()                     {}
func (s *StateBase) Build(BuildContext) Widget      { return nil }
func (s *StateBase) DidChangeDependencies()         {}
func (s *StateBase) DidUpdateWidget(StatefulWidget) {}
