package core

import (
	"slices"
	"sync"
)

// Observable holds a value and calls its listeners after each accepted
// write. Listeners run on the writer's goroutine once the new value is
// visible through Value, in the order they were added.
type Observable[T any] struct {
	mu        sync.Mutex
	value     T
	same      func(a, b T) bool
	listeners []*listener[T]
}

type listener[T any] struct {
	fn func(T)
}

// NewObservable returns an Observable that notifies on every Set.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// NewComparableObservable returns an Observable that ignores writes of the
// value it already holds.
func NewComparableObservable[T comparable](initial T) *Observable[T] {
	return &Observable[T]{value: initial, same: func(a, b T) bool { return a == b }}
}

func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set writes value and reports whether listeners were called.
func (o *Observable[T]) Set(value T) bool {
	o.mu.Lock()
	if o.same != nil && o.same(o.value, value) {
		o.mu.Unlock()
		return false
	}
	o.value = value
	current := slices.Clone(o.listeners)
	o.mu.Unlock()

	for _, l := range current {
		if o.subscribed(l) {
			l.fn(value)
		}
	}
	return true
}

// AddListener subscribes fn and returns the matching unsubscribe.
func (o *Observable[T]) AddListener(fn func(T)) (remove func()) {
	l := &listener[T]{fn: fn}
	o.mu.Lock()
	o.listeners = append(o.listeners, l)
	o.mu.Unlock()
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		o.listeners = slices.DeleteFunc(o.listeners, func(x *listener[T]) bool { return x == l })
	}
}

func (o *Observable[T]) subscribed(l *listener[T]) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Contains(o.listeners, l)
}

// ListenerCount returns the number of subscribed listeners.
func (o *Observable[T]) ListenerCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.listeners)
}
