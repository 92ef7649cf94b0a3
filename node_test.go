package arbor

import (
	"fmt"
	"strings"
	"testing"
)

// --- test node types ---

type drawNode struct {
	Object
	name string
	log  *[]string
}

func (n *drawNode) Draw(*RenderContext) { *n.log = append(*n.log, n.name) }

type updateNode struct {
	Object
	name string
	log  *[]string
}

func (n *updateNode) Update(*Game, Seconds) { *n.log = append(*n.log, n.name) }

type bothNode struct {
	Object
	name string
	log  *[]string
}

func (n *bothNode) Update(*Game, Seconds) { *n.log = append(*n.log, "update:"+n.name) }
func (n *bothNode) Draw(*RenderContext)   { *n.log = append(*n.log, "draw:"+n.name) }

type plainNode struct {
	Object
}

func newNamed[T Node](t *testing.T, n T) T {
	t.Helper()
	got, err := Make(nil, n, func(_ *Game, n T) (T, error) { return n, nil })
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func assertLog(t *testing.T, got []string, want ...string) {
	t.Helper()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", got, want)
	}
}

// --- traversal order ---

func TestDrawOrderParentFirst(t *testing.T) {
	var log []string
	d := newNamed(t, &drawNode{name: "d", log: &log})
	d.AddChild(&drawNode{name: "c1", log: &log})
	d.AddChild(&drawNode{name: "c2", log: &log})

	d.DrawChildren(nil)
	assertLog(t, log, "d", "c1", "c2")
}

func TestUpdateOrderChildrenFirst(t *testing.T) {
	var log []string
	u := newNamed(t, &updateNode{name: "u", log: &log})
	u.AddChild(&updateNode{name: "c1", log: &log})
	u.AddChild(&updateNode{name: "c2", log: &log})

	u.UpdateChildren(nil, 0.016)
	assertLog(t, log, "c1", "c2", "u")
}

func TestNestedTraversalOrder(t *testing.T) {
	var log []string
	root := newNamed(t, &bothNode{name: "root", log: &log})
	a := &bothNode{name: "a", log: &log}
	a.AddChild(&bothNode{name: "a1", log: &log})
	root.AddChild(a)
	root.AddChild(&bothNode{name: "b", log: &log})

	root.UpdateChildren(nil, 0)
	assertLog(t, log, "update:a1", "update:a", "update:b", "update:root")

	log = nil
	root.DrawChildren(nil)
	assertLog(t, log, "draw:root", "draw:a", "draw:a1", "draw:b")
}

func TestNoopCapabilities(t *testing.T) {
	var log []string
	root := newNamed(t, &plainNode{})
	root.AddChild(&drawNode{name: "drawn", log: &log})
	root.AddChild(&updateNode{name: "updated", log: &log})

	root.UpdateChildren(nil, 0)
	root.DrawChildren(nil)
	assertLog(t, log, "updated", "drawn")
}

func TestBindResolvesOnce(t *testing.T) {
	n := &plainNode{}
	bind(n)
	if n.self != n {
		t.Fatal("bind did not record self")
	}
	if n.update == nil || n.draw == nil {
		t.Fatal("missing capabilities should resolve to no-ops")
	}
	bind(n) // idempotent
	if n.self != n {
		t.Error("second bind changed self")
	}
}

func TestBindRebindsCopiedObject(t *testing.T) {
	var log []string
	inner := newNamed(t, &drawNode{name: "inner", log: &log})
	outer := &bothNode{name: "outer", log: &log}
	outer.Object = inner.Object
	bind(outer)
	if outer.self != Node(outer) {
		t.Fatal("copied Object still bound to its original node")
	}
	outer.UpdateChildren(nil, 0)
	outer.DrawChildren(nil)
	assertLog(t, log, "update:outer", "draw:outer")
}

// --- Make ---

func TestMakePropagatesError(t *testing.T) {
	want := fmt.Errorf("boom")
	n, err := Make(nil, 3, func(_ *Game, _ int) (*plainNode, error) { return nil, want })
	if err != want || n != nil {
		t.Errorf("Make = %v, %v", n, err)
	}
}

func TestMakeDefaultPassesZeroConfig(t *testing.T) {
	type cfg struct {
		Name string
		N    int
	}
	var seen cfg
	seen.N = -1
	_, err := MakeDefault(nil, func(_ *Game, c cfg) (*plainNode, error) {
		seen = c
		return &plainNode{}, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen != (cfg{}) {
		t.Errorf("config = %+v, want zero", seen)
	}
}

// --- tree manipulation ---

func TestAddChildBasic(t *testing.T) {
	parent := newNamed(t, &plainNode{})
	child := &plainNode{}
	parent.AddChild(child)
	if parent.NumChildren() != 1 || parent.ChildAt(0) != Node(child) {
		t.Fatal("child not attached")
	}
	if child.Parent() != Node(parent) {
		t.Errorf("Parent = %v", child.Parent())
	}
	if len(parent.Children()) != 1 {
		t.Errorf("Children = %v", parent.Children())
	}
}

func TestParentOfUnboundParentIsObject(t *testing.T) {
	parent := &plainNode{}
	child := &plainNode{}
	parent.AddChild(child)
	got, ok := child.Parent().(*Object)
	if !ok || got != &parent.Object {
		t.Errorf("Parent = %v, want the parent's Object", child.Parent())
	}
}

func TestParentOfUnboundRootIsNil(t *testing.T) {
	n := &plainNode{}
	if n.Parent() != nil {
		t.Error("detached node has a parent")
	}
}

func TestAddChildNilPanic(t *testing.T) {
	assertPanics(t, "nil child", func() { (&plainNode{}).AddChild(nil) })
}

func TestAddChildSelfPanic(t *testing.T) {
	n := &plainNode{}
	assertPanics(t, "self", func() { n.AddChild(n) })
}

func TestAddChildCyclePanic(t *testing.T) {
	a, b, c := &plainNode{}, &plainNode{}, &plainNode{}
	a.AddChild(b)
	b.AddChild(c)
	assertPanics(t, "cycle", func() { c.AddChild(a) })
}

func TestAddChildSecondParentPanic(t *testing.T) {
	p1, p2, child := &plainNode{}, &plainNode{}, &plainNode{}
	p1.AddChild(child)
	assertPanics(t, "double parent", func() { p2.AddChild(child) })
}

func TestRemoveChild(t *testing.T) {
	parent := &plainNode{}
	a, b, c := &plainNode{}, &plainNode{}, &plainNode{}
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	parent.RemoveChild(b)
	if parent.NumChildren() != 2 || parent.ChildAt(0) != Node(a) || parent.ChildAt(1) != Node(c) {
		t.Fatalf("children after remove = %v", parent.Children())
	}
	if b.Parent() != nil {
		t.Error("removed child still has a parent")
	}

	// Ownership returns to the caller, so it can be re-attached.
	parent.AddChild(b)
	if parent.ChildAt(2) != Node(b) {
		t.Error("re-attached child not last")
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1, p2, child := &plainNode{}, &plainNode{}, &plainNode{}
	p1.AddChild(child)
	assertPanics(t, "wrong parent", func() { p2.RemoveChild(child) })
}

// --- Spatial ---

func TestSpatialDefaultsToIdentity(t *testing.T) {
	var s Spatial
	if *s.Transform() != IdentityTransform {
		t.Errorf("zero Spatial transform = %v", *s.Transform())
	}
	s.Transform().Offset = Vec2{3, 4}
	if s.Transform().Offset != (Vec2{3, 4}) {
		t.Error("mutation through Transform() was lost")
	}
}

func TestNewSpatialKeepsTransform(t *testing.T) {
	xf := IdentityTransform.WithOffset(Vec2{1, 2})
	s := NewSpatial(xf)
	if *s.Transform() != xf {
		t.Errorf("transform = %v, want %v", *s.Transform(), xf)
	}
}
