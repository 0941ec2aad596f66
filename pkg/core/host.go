package core

import "github.com/campusui/campus/pkg/dom"

// HostElement hosts a [HostWidget] and owns its document node.
//
// Child nodes are not attached while children mount. The owner records the
// host as needing a node sync and attaches the first-level host nodes of its
// subtree, in element order, at the end of [BuildOwner.FlushBuild].
type HostElement struct {
	elementBase
	node     *dom.Node
	children []Element
	ref      *dom.Ref
}

// NewHostElement creates a HostElement.
func NewHostElement() *HostElement {
	return &HostElement{}
}

// Node returns the element's document node.
func (e *HostElement) Node() *dom.Node {
	return e.node
}

func (e *HostElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	widget := e.widget.(HostWidget)
	e.node = widget.CreateNode(e)
	e.RebuildIfNeeded()
	if e.host != nil && e.owner != nil {
		e.owner.scheduleNodeSync(e.host)
	}
}

func (e *HostElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *HostElement) Unmount() {
	e.mounted = false
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil
	e.ref.Set(nil)
	e.ref = nil
	if e.host == nil {
		e.node.SetChildren(nil)
		return
	}
	if e.owner != nil {
		e.owner.scheduleNodeSync(e.host)
	}
}

func (e *HostElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false

	widget := e.widget.(HostWidget)
	widget.UpdateNode(e, e.node)
	e.bindRef(widget)

	widgets := widget.ChildWidgets()
	updated := make([]Element, 0, len(widgets))
	for index, childWidget := range widgets {
		var existing Element
		if index < len(e.children) {
			existing = e.children[index]
		}
		child := updateChild(existing, childWidget, e, e.owner, index)
		if child != nil {
			updated = append(updated, child)
		}
	}
	for i := len(widgets); i < len(e.children); i++ {
		e.children[i].Unmount()
	}
	e.children = updated

	if e.owner != nil {
		e.owner.scheduleNodeSync(e)
	} else {
		e.syncNodes()
	}
}

func (e *HostElement) bindRef(widget HostWidget) {
	var ref *dom.Ref
	if w, ok := widget.(NodeRefWidget); ok {
		ref = w.NodeRef()
	}
	if ref != e.ref {
		if e.ref != nil && e.ref.Node() == e.node {
			e.ref.Set(nil)
		}
		e.ref = ref
	}
	e.ref.Set(e.node)
}

func (e *HostElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}

// syncNodes replaces the node's children with the nodes of the nearest
// mounted host descendants.
func (e *HostElement) syncNodes() {
	var nodes []*dom.Node
	for _, child := range e.children {
		nodes = collectHostNodes(child, nodes)
	}
	e.node.SetChildren(nodes)
}

func collectHostNodes(el Element, nodes []*dom.Node) []*dom.Node {
	if m, ok := el.(interface{ isMounted() bool }); ok && !m.isMounted() {
		return nodes
	}
	if host, ok := el.(*HostElement); ok {
		return append(nodes, host.node)
	}
	el.VisitChildren(func(child Element) bool {
		nodes = collectHostNodes(child, nodes)
		return true
	})
	return nodes
}
