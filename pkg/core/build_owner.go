package core

import (
	"maps"
	"slices"
	"sync"

	"github.com/campusui/campus/pkg/dom"
)

// BuildOwner batches rebuilds for one document. Elements scheduled with
// ScheduleBuild are rebuilt shallowest first by FlushBuild, and host
// elements touched by those builds then re-attach their node children.
type BuildOwner struct {
	document *dom.Document

	mu      sync.Mutex
	pending []Element
	queued  map[Element]struct{}
	hosts   map[*HostElement]struct{}

	// OnNeedsFrame is called each time an element is newly queued.
	OnNeedsFrame func()
}

// NewBuildOwner creates a BuildOwner for doc, or for a new document when
// doc is nil.
func NewBuildOwner(doc *dom.Document) *BuildOwner {
	if doc == nil {
		doc = dom.NewDocument()
	}
	return &BuildOwner{
		document: doc,
		queued:   make(map[Element]struct{}),
		hosts:    make(map[*HostElement]struct{}),
	}
}

func (b *BuildOwner) Document() *dom.Document { return b.document }

// ScheduleBuild queues element for the next flush. Queuing an element twice
// is a no-op.
func (b *BuildOwner) ScheduleBuild(element Element) {
	b.mu.Lock()
	_, dup := b.queued[element]
	if !dup {
		b.queued[element] = struct{}{}
		b.pending = append(b.pending, element)
	}
	b.mu.Unlock()

	if !dup && b.OnNeedsFrame != nil {
		b.OnNeedsFrame()
	}
}

func (b *BuildOwner) scheduleNodeSync(host *HostElement) {
	b.mu.Lock()
	b.hosts[host] = struct{}{}
	b.mu.Unlock()
}

// NeedsWork reports whether a flush would do anything.
func (b *BuildOwner) NeedsWork() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending) > 0 || len(b.hosts) > 0
}

// FlushBuild rebuilds queued elements until none remain, including ones
// queued by the rebuilds themselves, then syncs host node children.
func (b *BuildOwner) FlushBuild() {
	for batch := b.takePending(); len(batch) > 0; batch = b.takePending() {
		for _, element := range batch {
			if m, ok := element.(interface{ isMounted() bool }); ok && !m.isMounted() {
				continue
			}
			element.RebuildIfNeeded()
		}
	}
	b.syncHosts()
}

func (b *BuildOwner) takePending() []Element {
	b.mu.Lock()
	defer b.mu.Unlock()
	batch := b.pending
	b.pending = nil
	clear(b.queued)
	slices.SortStableFunc(batch, func(x, y Element) int { return x.Depth() - y.Depth() })
	return batch
}

func (b *BuildOwner) syncHosts() {
	b.mu.Lock()
	hosts := slices.Collect(maps.Keys(b.hosts))
	clear(b.hosts)
	b.mu.Unlock()

	slices.SortFunc(hosts, func(x, y *HostElement) int { return x.depth - y.depth })
	for _, host := range hosts {
		if host.mounted {
			host.syncNodes()
		}
	}
}

// MountRoot inflates widget under the document body and flushes the
// initial build.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	root := inflateWidget(bodyWidget{child: widget}, owner)
	root.Mount(nil, nil)
	owner.FlushBuild()
	return root
}

// bodyWidget adopts the document body as the root host node.
type bodyWidget struct {
	HostBase
	child Widget
}

func (w bodyWidget) CreateNode(ctx BuildContext) *dom.Node {
	return ctx.Owner().Document().Body()
}

func (w bodyWidget) UpdateNode(BuildContext, *dom.Node) {}

func (w bodyWidget) ChildWidgets() []Widget {
	return []Widget{w.child}
}
