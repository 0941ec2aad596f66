package core

import (
	"reflect"
	"strings"
	"testing"

	"github.com/campusui/campus/pkg/dom"
	"github.com/campusui/campus/pkg/errors"
)

type box struct {
	HostBase
	tag      string
	attrs    map[string]string
	ref      *dom.Ref
	children []Widget
}

func (b box) CreateNode(ctx BuildContext) *dom.Node {
	return ctx.Owner().Document().CreateElement(b.tag)
}

func (b box) UpdateNode(_ BuildContext, node *dom.Node) {
	node.Tag = b.tag
	node.ReplaceAttrs(b.attrs)
}

func (b box) ChildWidgets() []Widget { return b.children }
func (b box) NodeRef() *dom.Ref      { return b.ref }

type counter struct {
	StatefulBase
	onState func(*counterState)
}

func (counter) CreateState() State { return &counterState{} }

type counterState struct {
	StateBase
	count    int
	disposed bool
}

func (s *counterState) InitState() {
	s.Element().Widget().(counter).onState(s)
	s.OnDispose(func() { s.disposed = true })
}

func (s *counterState) Build(BuildContext) Widget {
	if s.count%2 == 0 {
		return box{tag: "even"}
	}
	return box{tag: "odd"}
}

func childTags(n *dom.Node) string {
	var tags []string
	for _, child := range n.Children() {
		tags = append(tags, child.Tag)
	}
	return strings.Join(tags, ",")
}

func TestMountRootAttachesNodesInOrder(t *testing.T) {
	owner := NewBuildOwner(nil)
	ref := &dom.Ref{}
	MountRoot(box{tag: "main", ref: ref, children: []Widget{
		box{tag: "header"},
		counter{onState: func(*counterState) {}},
		box{tag: "footer", attrs: map[string]string{"role": "contentinfo"}},
	}}, owner)

	body := owner.Document().Body()
	if got := childTags(body); got != "main" {
		t.Fatalf("body children = %q", got)
	}
	main := body.Children()[0]
	if ref.Node() != main {
		t.Error("expected ref to capture the main node")
	}
	if got := childTags(main); got != "header,even,footer" {
		t.Errorf("main children = %q", got)
	}
	if main.Children()[2].GetAttr("role") != "contentinfo" {
		t.Error("expected footer attributes to be applied")
	}
}

func TestSetStateReplacesHostInPlace(t *testing.T) {
	owner := NewBuildOwner(nil)
	var state *counterState
	MountRoot(box{tag: "main", children: []Widget{
		box{tag: "header"},
		counter{onState: func(s *counterState) { state = s }},
		box{tag: "footer"},
	}}, owner)

	state.SetState(func() { state.count++ })
	if !owner.NeedsWork() {
		t.Fatal("expected SetState to schedule a build")
	}
	owner.FlushBuild()

	main := owner.Document().Body().Children()[0]
	if got := childTags(main); got != "header,odd,footer" {
		t.Errorf("main children after rebuild = %q", got)
	}
	if owner.NeedsWork() {
		t.Error("expected no pending work after flush")
	}
}

func TestOnNeedsFrameCalledOncePerElement(t *testing.T) {
	owner := NewBuildOwner(nil)
	frames := 0
	owner.OnNeedsFrame = func() { frames++ }
	var state *counterState
	MountRoot(counter{onState: func(s *counterState) { state = s }}, owner)

	state.SetState(nil)
	state.SetState(nil)
	if frames != 1 {
		t.Errorf("OnNeedsFrame calls = %d, want 1", frames)
	}
}

func TestUnmountDisposesStateAndDetachesNodes(t *testing.T) {
	owner := NewBuildOwner(nil)
	var state *counterState
	ref := &dom.Ref{}
	root := MountRoot(box{tag: "main", ref: ref, children: []Widget{
		counter{onState: func(s *counterState) { state = s }},
	}}, owner)

	root.Unmount()
	if !state.disposed || !state.IsDisposed() {
		t.Error("expected state to be disposed")
	}
	if len(owner.Document().Body().Children()) != 0 {
		t.Error("expected body to be emptied")
	}
	if ref.Node() != nil {
		t.Error("expected ref to be cleared on unmount")
	}

	state.SetState(func() { t.Error("SetState after dispose must not run") })
}

type themeScope struct {
	InheritedBase
	color string
	child Widget
}

func (s themeScope) ChildWidget() Widget { return s.child }

func (s themeScope) UpdateShouldNotify(old InheritedWidget) bool {
	return s.color != old.(themeScope).color
}

type themed struct {
	StatefulBase
	changes *int
}

func (themed) CreateState() State { return &themedState{} }

type themedState struct {
	StateBase
}

func (s *themedState) DidChangeDependencies() {
	*s.Element().Widget().(themed).changes++
}

func (s *themedState) Build(ctx BuildContext) Widget {
	scope := ctx.DependOnInherited(reflect.TypeOf(themeScope{})).(themeScope)
	return box{tag: scope.color}
}

type themeHolder struct {
	StatefulBase
	changes *int
	onState func(*themeHolderState)
}

func (themeHolder) CreateState() State { return &themeHolderState{color: "red"} }

type themeHolderState struct {
	StateBase
	color string
}

func (s *themeHolderState) InitState() {
	s.Element().Widget().(themeHolder).onState(s)
}

func (s *themeHolderState) Build(BuildContext) Widget {
	w := s.Element().Widget().(themeHolder)
	return themeScope{color: s.color, child: themed{changes: w.changes}}
}

func TestInheritedNotifiesDependentsOnChange(t *testing.T) {
	owner := NewBuildOwner(nil)
	changes := 0
	var holder *themeHolderState
	MountRoot(themeHolder{changes: &changes, onState: func(s *themeHolderState) { holder = s }}, owner)

	body := owner.Document().Body()
	if got := childTags(body); got != "red" {
		t.Fatalf("initial build = %q", got)
	}

	holder.SetState(nil)
	owner.FlushBuild()
	if changes != 0 {
		t.Errorf("unchanged scope should not notify, changes=%d", changes)
	}

	holder.SetState(func() { holder.color = "blue" })
	owner.FlushBuild()
	if changes != 1 {
		t.Errorf("changed scope should notify once, changes=%d", changes)
	}
	if got := childTags(body); got != "blue" {
		t.Errorf("rebuilt tree = %q", got)
	}
}

func TestDependOnInheritedWithoutAncestor(t *testing.T) {
	owner := NewBuildOwner(nil)
	var got any = "unset"
	MountRoot(Stateful(func() int { return 0 }, func(_ int, ctx BuildContext, _ func(func(int) int)) Widget {
		got = ctx.DependOnInherited(reflect.TypeOf(themeScope{}))
		return nil
	}), owner)
	if got != nil {
		t.Errorf("expected nil without an ancestor, got %v", got)
	}
}

type panicking struct {
	StatelessBase
	value any
}

func (p panicking) Build(BuildContext) Widget { panic(p.value) }

type buildRecorder struct {
	errs []*errors.BuildError
}

func (r *buildRecorder) HandlePanic(*errors.PanicError)        {}
func (r *buildRecorder) HandleBuildError(e *errors.BuildError) { r.errs = append(r.errs, e) }

func TestBuildPanicIsReported(t *testing.T) {
	rec := &buildRecorder{}
	prev := errors.SetHandler(rec)
	defer errors.SetHandler(prev)

	owner := NewBuildOwner(nil)
	MountRoot(box{tag: "main", children: []Widget{panicking{value: "boom"}, box{tag: "after"}}}, owner)

	if len(rec.errs) != 1 {
		t.Fatalf("reported build errors = %d", len(rec.errs))
	}
	if rec.errs[0].Recovered != "boom" {
		t.Errorf("recovered = %v", rec.errs[0].Recovered)
	}
	main := owner.Document().Body().Children()[0]
	if got := childTags(main); got != "after" {
		t.Errorf("failed build should render nothing, got %q", got)
	}
}

func TestContractViolationPropagates(t *testing.T) {
	rec := &buildRecorder{}
	prev := errors.SetHandler(rec)
	defer errors.SetHandler(prev)

	violation := &errors.ContextError{Primitive: "Item", Root: "Root"}
	defer func() {
		r := recover()
		if r != violation {
			t.Errorf("recovered %v, want the context error", r)
		}
		if len(rec.errs) != 0 {
			t.Error("contract violations must not be reported as build errors")
		}
	}()
	MountRoot(panicking{value: violation}, NewBuildOwner(nil))
	t.Error("expected MountRoot to panic")
}

func TestInlineStateful(t *testing.T) {
	owner := NewBuildOwner(nil)
	var bump func()
	MountRoot(Stateful(func() int { return 1 }, func(n int, _ BuildContext, setState func(func(int) int)) Widget {
		bump = func() { setState(func(v int) int { return v + 1 }) }
		return box{tag: strings.Repeat("x", n)}
	}), owner)

	bump()
	owner.FlushBuild()
	if got := childTags(owner.Document().Body()); got != "xx" {
		t.Errorf("inline state rebuild = %q", got)
	}
}
