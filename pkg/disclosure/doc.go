// Package disclosure implements the open/close engine behind menus,
// dropdowns and suggestion lists.
//
// A [Root] owns one [Store] for its whole lifetime and hands it to every
// descendant through a [Scope]. The [Trigger] toggles the store, the
// [Panel] follows it through a [Lifecycle] that keeps the panel mounted for
// the exit duration after closing, and while the panel is open a
// [Coordinator] holds the document keydown and pointerdown listeners that
// implement Escape, outside-press dismissal and arrow-key navigation over
// the enabled [Item] entries.
//
//	disclosure.Root{
//	    Children: []core.Widget{
//	        disclosure.Trigger{Label: "Account"},
//	        disclosure.Panel{Align: disclosure.AlignEnd, Children: []core.Widget{
//	            disclosure.Label{Text: "Signed in as ada"},
//	            disclosure.Separator{},
//	            disclosure.Item{Label: "Profile", OnSelect: openProfile},
//	            disclosure.Item{Label: "Sign out", OnSelect: signOut},
//	        }},
//	    },
//	}
//
// Primitives built outside a Root panic with an [errors.ContextError].
package disclosure
