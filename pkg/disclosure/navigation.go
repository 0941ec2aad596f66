package disclosure

import (
	"github.com/campusui/campus/pkg/dom"
	"github.com/campusui/campus/pkg/focus"
)

// EntrySlot is the data-slot value that marks a navigable entry.
const EntrySlot = "menu-item"

// IsEntry reports whether n is an enabled navigable entry.
func IsEntry(n *dom.Node) bool {
	return n.GetAttr("data-slot") == EntrySlot && !n.Disabled()
}

// Entries returns the enabled entries under container in document order.
func Entries(container *dom.Node) []*dom.Node {
	if container == nil {
		return nil
	}
	return dom.QueryAll(container, IsEntry)
}

// NextIndex returns the entry to focus among n entries when moving in dir
// from current. A current of -1 means no entry holds focus: moving forward
// lands on the first entry and moving backward on the last. Traversal wraps
// at both ends. n must be positive.
func NextIndex(current, n int, dir focus.Direction) int {
	return focus.Step(current, n, dir)
}

// Navigate moves focus to the next enabled entry under container. The
// entry set and the focused index are computed fresh on every call. It
// reports false, doing nothing, when there are no entries.
func Navigate(container *dom.Node, dir focus.Direction) bool {
	entries := Entries(container)
	if len(entries) == 0 {
		return false
	}
	current := -1
	if active := container.Document().ActiveElement(); active != nil {
		for i, entry := range entries {
			if entry == active {
				current = i
				break
			}
		}
	}
	entries[NextIndex(current, len(entries), dir)].Focus()
	return true
}

// directionForKey maps arrow keys to a traversal direction.
func directionForKey(key string) (focus.Direction, bool) {
	switch key {
	case dom.KeyArrowDown:
		return focus.Next, true
	case dom.KeyArrowUp:
		return focus.Previous, true
	}
	return 0, false
}
