package dom

// EventType names a document event.
type EventType string

const (
	EventClick       EventType = "click"
	EventKeyDown     EventType = "keydown"
	EventPointerDown EventType = "pointerdown"
	EventInput       EventType = "input"
)

// Key values carried by keydown events.
const (
	KeyEnter     = "Enter"
	KeySpace     = " "
	KeyEscape    = "Escape"
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
	KeyTab       = "Tab"
	KeyBackspace = "Backspace"
	KeyHome      = "Home"
	KeyEnd       = "End"
)

// Event is a document event in flight.
type Event struct {
	Type EventType
	// Key is set for keydown events.
	Key string
	// Value is the new value for input events.
	Value string
	// Target is the node the event was dispatched to.
	Target *Node
	// CurrentTarget is the node whose handler is running, or nil while
	// document listeners run.
	CurrentTarget *Node

	defaultPrevented   bool
	propagationStopped bool
}

// Handler handles an event.
type Handler func(e *Event)

// PreventDefault suppresses the host's default action for the event.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops the event from reaching ancestors and document
// listeners.
func (e *Event) StopPropagation() { e.propagationStopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool { return e.propagationStopped }
