package focus

import "testing"

func TestWrapIndex(t *testing.T) {
	tests := []struct{ index, count, want int }{
		{0, 3, 0},
		{3, 3, 0},
		{-1, 3, 2},
		{-4, 3, 2},
		{7, 3, 1},
	}
	for _, tt := range tests {
		if got := WrapIndex(tt.index, tt.count); got != tt.want {
			t.Errorf("WrapIndex(%d, %d) = %d, want %d", tt.index, tt.count, got, tt.want)
		}
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		current, count int
		dir            Direction
		want           int
	}{
		{-1, 4, Next, 0},
		{-1, 4, Previous, 3},
		{0, 4, Next, 1},
		{3, 4, Next, 0},
		{0, 4, Previous, 3},
		{0, 1, Next, 0},
		{-1, 1, Previous, 0},
	}
	for _, tt := range tests {
		if got := Step(tt.current, tt.count, tt.dir); got != tt.want {
			t.Errorf("Step(%d, %d, %v) = %d, want %d", tt.current, tt.count, tt.dir, got, tt.want)
		}
	}
}

func TestRequestMovesFocus(t *testing.T) {
	m := NewManager()
	var moves [][2]string
	m.OnChange = func(prev, cur *Target) {
		name := func(t *Target) string {
			if t == nil {
				return ""
			}
			return t.Label
		}
		moves = append(moves, [2]string{name(prev), name(cur)})
	}
	trigger, entry := m.Target(nil, "trigger"), m.Target(nil, "entry")
	var triggerEvents []bool
	trigger.OnChange = func(focused bool) { triggerEvents = append(triggerEvents, focused) }

	if !trigger.Request(true) || !entry.Request(true) {
		t.Fatal("eligible requests should succeed")
	}
	if m.Primary() != entry || trigger.Focused() || !entry.Focused() {
		t.Error("focus should rest on the entry")
	}
	if len(triggerEvents) != 2 || !triggerEvents[0] || triggerEvents[1] {
		t.Errorf("trigger events = %v", triggerEvents)
	}
	entry.Request(true)
	if len(moves) != 2 || moves[1] != [2]string{"trigger", "entry"} {
		t.Errorf("moves = %v", moves)
	}
}

func TestRequestRejected(t *testing.T) {
	m := NewManager()
	if m.Target(nil, "disabled").Request(false) {
		t.Error("an ineligible request must fail")
	}
	if (&Target{}).Request(true) {
		t.Error("a target without a manager must fail")
	}
	if m.Primary() != nil {
		t.Error("nothing should be focused")
	}
}

func TestReleaseAndClear(t *testing.T) {
	m := NewManager()
	a, b := m.Target(nil, "a"), m.Target(nil, "b")
	a.Request(true)
	b.Release()
	if m.Primary() != a {
		t.Fatal("releasing an unfocused target must not move focus")
	}
	a.Release()
	if m.Primary() != nil || a.Focused() {
		t.Fatal("release should clear focus")
	}
	b.Request(true)
	m.Clear()
	if b.Focused() {
		t.Error("Clear should blur the focused target")
	}
	var nilTarget *Target
	if nilTarget.Focused() {
		t.Error("a nil target is never focused")
	}
}
