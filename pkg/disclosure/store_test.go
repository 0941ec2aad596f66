package disclosure_test

import (
	"testing"

	"github.com/campusui/campus/pkg/disclosure"
)

func TestStoreNotifiesSynchronously(t *testing.T) {
	store := disclosure.NewStore(false)
	var seen []bool
	unsubscribe := store.Subscribe(func(open bool) {
		if store.Get() != open {
			t.Errorf("subscriber read %v during notification of %v", store.Get(), open)
		}
		seen = append(seen, open)
	})

	store.Set(true)
	if len(seen) != 1 || !seen[0] {
		t.Fatalf("seen = %v", seen)
	}

	store.Set(true)
	if len(seen) != 1 {
		t.Errorf("redundant write should be a no-op, seen = %v", seen)
	}

	unsubscribe()
	store.Set(false)
	if len(seen) != 1 || store.SubscriberCount() != 0 {
		t.Errorf("unsubscribed listener was called, seen = %v", seen)
	}
	if store.Get() {
		t.Error("expected the last write to stick")
	}
}

func TestResolveControl(t *testing.T) {
	store := disclosure.NewStore(true)
	closed := false

	internal := disclosure.ResolveControl(nil, store)
	if disclosure.Controlled(internal) || !internal.Open() {
		t.Errorf("nil open should resolve to the store, got %#v", internal)
	}

	external := disclosure.ResolveControl(&closed, store)
	if !disclosure.Controlled(external) || external.Open() {
		t.Errorf("external value must win over the store, got %#v", external)
	}
}
