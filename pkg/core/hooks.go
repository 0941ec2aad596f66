package core

// UseController creates a controller owned by s. The controller is disposed
// together with the state.
//
//	s.lifecycle = core.UseController(s, func() *disclosure.Lifecycle {
//	    return disclosure.NewLifecycle(exit, s.onPhase)
//	})
func UseController[C Disposable](s stateBase, create func() C) C {
	controller := create()
	s.state().OnDispose(controller.Dispose)
	return controller
}

// Managed is a value whose writes rebuild the state that created it.
// Like SetState it must only be touched on the UI goroutine.
type Managed[T any] struct {
	owner *StateBase
	value T
}

// NewManaged creates a Managed bound to s.
func NewManaged[T any](s stateBase, initial T) *Managed[T] {
	return &Managed[T]{owner: s.state(), value: initial}
}

func (m *Managed[T]) Value() T { return m.value }

// Set replaces the value and schedules a rebuild.
func (m *Managed[T]) Set(value T) {
	m.owner.SetState(func() { m.value = value })
}

// Update replaces the value with fn(current) and schedules a rebuild.
func (m *Managed[T]) Update(fn func(T) T) {
	m.owner.SetState(func() { m.value = fn(m.value) })
}
