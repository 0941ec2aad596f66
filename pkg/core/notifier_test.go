package core

import (
	"slices"
	"testing"
)

func TestObservableNotifiesWithNewValue(t *testing.T) {
	obs := NewObservable("a")
	var seen []string
	obs.AddListener(func(v string) {
		if obs.Value() != v {
			t.Errorf("Value() = %q while notifying %q", obs.Value(), v)
		}
		seen = append(seen, v)
	})

	obs.Set("b")
	obs.Set("b")
	if !slices.Equal(seen, []string{"b", "b"}) {
		t.Errorf("plain observable should notify on every Set, got %v", seen)
	}
}

func TestObservableListenerOrder(t *testing.T) {
	obs := NewObservable(0)
	var order []string
	obs.AddListener(func(int) { order = append(order, "trigger") })
	remove := obs.AddListener(func(int) { order = append(order, "panel") })
	obs.AddListener(func(int) { order = append(order, "root") })

	obs.Set(1)
	remove()
	obs.Set(2)

	want := []string{"trigger", "panel", "root", "trigger", "root"}
	if !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestComparableObservableSkipsEqualValues(t *testing.T) {
	obs := NewComparableObservable(false)
	calls := 0
	remove := obs.AddListener(func(bool) { calls++ })

	if obs.Set(false) {
		t.Error("writing the current value should not notify")
	}
	if !obs.Set(true) {
		t.Error("writing a new value should notify")
	}
	remove()
	obs.Set(false)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if obs.ListenerCount() != 0 {
		t.Error("expected the listener to be removed")
	}
}

func TestListenerRemovedDuringNotifyIsSkipped(t *testing.T) {
	obs := NewComparableObservable(0)
	var removeSecond func()
	calls := 0
	obs.AddListener(func(int) { removeSecond() })
	removeSecond = obs.AddListener(func(int) { calls++ })

	obs.Set(1)
	obs.Set(2)
	if calls != 0 {
		t.Errorf("a listener removed earlier in the same write must not run, calls=%d", calls)
	}
}
