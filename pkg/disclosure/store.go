package disclosure

import "github.com/campusui/campus/pkg/core"

// Store holds the open flag of one disclosure.
//
// Writes notify subscribers synchronously, after the new value is visible
// to Get. Writing the current value again is a no-op.
type Store struct {
	open *core.Observable[bool]
}

// NewStore creates a store with the given initial value.
func NewStore(open bool) *Store {
	return &Store{open: core.NewComparableObservable(open)}
}

// Get returns the current value.
func (s *Store) Get() bool {
	return s.open.Value()
}

// Set stores open and notifies subscribers when it changed.
func (s *Store) Set(open bool) {
	s.open.Set(open)
}

// Subscribe registers fn for changes and returns its unsubscribe function.
func (s *Store) Subscribe(fn func(open bool)) (unsubscribe func()) {
	return s.open.AddListener(fn)
}

// SubscriberCount returns the number of current subscribers.
func (s *Store) SubscriberCount() int {
	return s.open.ListenerCount()
}
