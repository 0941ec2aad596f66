// Package focus tracks which participant of a document holds focus and
// computes linear traversal steps.
//
// A [Manager] has at most one focused [Target]. Targets are created per
// focusable owner (a document node) and stay bound to their manager.
package focus

// Direction is a traversal direction.
type Direction int

const (
	Next Direction = iota
	Previous
)

// Delta is +1 for Next and -1 for Previous.
func (d Direction) Delta() int {
	if d == Previous {
		return -1
	}
	return 1
}

// WrapIndex maps index into [0, count). count must be positive.
func WrapIndex(index, count int) int {
	if index %= count; index < 0 {
		index += count
	}
	return index
}

// Step returns the index reached by moving one place in dir from current
// among count positions, wrapping at both ends. A negative current means
// nothing is focused yet: Next starts at the first position and Previous at
// the last. count must be positive.
func Step(current, count int, dir Direction) int {
	switch {
	case current >= 0:
		return WrapIndex(current+dir.Delta(), count)
	case dir == Previous:
		return count - 1
	}
	return 0
}

// Manager owns the focus of one document.
type Manager struct {
	primary *Target

	// OnChange observes every move, including a move to nothing.
	OnChange func(previous, current *Target)
}

func NewManager() *Manager { return &Manager{} }

// Primary returns the focused target, or nil.
func (m *Manager) Primary() *Target { return m.primary }

// Clear leaves nothing focused.
func (m *Manager) Clear() { m.moveTo(nil) }

// Target registers owner as a focus participant.
func (m *Manager) Target(owner any, label string) *Target {
	return &Target{Owner: owner, Label: label, manager: m}
}

func (m *Manager) moveTo(t *Target) {
	prev := m.primary
	if prev == t {
		return
	}
	m.primary = t
	if prev != nil {
		prev.notify(false)
	}
	if t != nil {
		t.notify(true)
	}
	if m.OnChange != nil {
		m.OnChange(prev, t)
	}
}

// Target is one participant of a Manager.
type Target struct {
	Owner any
	Label string
	// OnChange is called with true on gaining focus and false on losing it.
	OnChange func(focused bool)

	manager *Manager
	focused bool
}

// Request focuses t when eligible is true, reporting whether t now holds
// focus.
func (t *Target) Request(eligible bool) bool {
	if !eligible || t.manager == nil {
		return false
	}
	t.manager.moveTo(t)
	return true
}

// Release drops focus if t holds it.
func (t *Target) Release() {
	if t.focused {
		t.manager.moveTo(nil)
	}
}

func (t *Target) Focused() bool { return t != nil && t.focused }

func (t *Target) notify(focused bool) {
	t.focused = focused
	if t.OnChange != nil {
		t.OnChange(focused)
	}
}
