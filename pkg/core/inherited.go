package core

// InheritedElement hosts an [InheritedWidget]. Descendants that call
// [BuildContext.DependOnInherited] are recorded as dependents; when the
// widget is replaced and UpdateShouldNotify reports a change, each dependent
// still mounted gets DidChangeDependencies (for states) and is marked dirty.
type InheritedElement struct {
	component
	dependents map[Element]struct{}
}

// NewInheritedElement creates an InheritedElement.
func NewInheritedElement() *InheritedElement {
	return &InheritedElement{dependents: make(map[Element]struct{})}
}

func (e *InheritedElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	e.RebuildIfNeeded()
}

func (e *InheritedElement) Update(newWidget Widget) {
	old := e.widget.(InheritedWidget)
	e.widget = newWidget
	if newWidget.(InheritedWidget).UpdateShouldNotify(old) {
		e.notifyDependents()
	}
	e.MarkNeedsBuild()
}

func (e *InheritedElement) notifyDependents() {
	for dependent := range e.dependents {
		if m, ok := dependent.(interface{ isMounted() bool }); ok && !m.isMounted() {
			delete(e.dependents, dependent)
			continue
		}
		if stateful, ok := dependent.(*StatefulElement); ok && stateful.state != nil {
			stateful.state.DidChangeDependencies()
		}
		dependent.MarkNeedsBuild()
	}
}

func (e *InheritedElement) Unmount() {
	e.dependents = nil
	e.unmountChild()
}

func (e *InheritedElement) RebuildIfNeeded() {
	e.rebuild(e.widget.(InheritedWidget).ChildWidget)
}

// AddDependent records dependent for change notifications.
func (e *InheritedElement) AddDependent(dependent Element) {
	if e.dependents == nil {
		e.dependents = make(map[Element]struct{})
	}
	e.dependents[dependent] = struct{}{}
}

// RemoveDependent forgets dependent.
func (e *InheritedElement) RemoveDependent(dependent Element) {
	delete(e.dependents, dependent)
}

// DependentCount returns the number of recorded dependents.
func (e *InheritedElement) DependentCount() int {
	return len(e.dependents)
}
