// Package dom provides the in-memory document that widgets render into.
//
// A [Document] owns a tree of [Node] values, the active (focused) element,
// and a registry of document-level listeners. Events are dispatched to a
// target node, bubble through its ancestors, and finally reach document
// listeners unless propagation was stopped:
//
//	doc := dom.NewDocument()
//	button := doc.CreateElement("button")
//	button.SetHandler(dom.EventClick, func(e *dom.Event) { ... })
//	doc.Body().AppendChild(button)
//
//	remove := doc.AddEventListener(dom.EventKeyDown, func(e *dom.Event) {
//	    if e.Key == dom.KeyEscape { ... }
//	})
//	defer remove()
//
// There is no layout here; hosts such as the terminal renderer compute
// geometry from the tree and its attributes.
package dom
