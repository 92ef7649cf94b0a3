package arbor

// Updater is implemented by nodes with per-frame logic.
type Updater interface {
	Update(g *Game, dt Seconds)
}

// Drawer is implemented by nodes with a visual representation. Draw must not
// mutate scene state.
type Drawer interface {
	Draw(rc *RenderContext)
}

// Positioned is implemented by nodes that expose a Transform. The returned
// pointer may be used to read or mutate it. Transforms are not propagated from
// parent to child; each node draws with its own.
type Positioned interface {
	Transform() *Transform
}

// Node is any entity in the scene tree. Concrete node types satisfy it by
// embedding Object:
//
//	type Player struct {
//		arbor.Object
//		arbor.Spatial
//		sprite *arbor.Sprite
//	}
//
// A node may additionally implement Updater and/or Drawer.
type Node interface {
	// UpdateChildren runs the update pass for this subtree: every child in
	// attach order, then the node's own Update.
	UpdateChildren(g *Game, dt Seconds)
	// DrawChildren runs the draw pass for this subtree: the node's own Draw,
	// then every child in attach order.
	DrawChildren(rc *RenderContext)

	object() *Object
}

// Object is the composite core every node embeds. It owns the node's children
// and the node's resolved update and draw hooks.
type Object struct {
	self     Node
	parent   *Object
	children []Node
	game     *Game // set by Make and SetRoot, inherited through AddChild

	update func(*Game, Seconds)
	draw   func(*RenderContext)
}

func (o *Object) object() *Object { return o }

func noopUpdate(*Game, Seconds) {}
func noopDraw(*RenderContext)   {}

// bind resolves n's optional capabilities. Types without Update or Draw get a
// shared no-op, so the per-frame walk never inspects types. An Object copied
// out of another bound node still points at the original, so it is resolved
// again for its new owner.
func bind(n Node) {
	o := n.object()
	if o.self == n {
		return
	}
	o.self = n
	o.update = noopUpdate
	o.draw = noopDraw
	if u, ok := n.(Updater); ok {
		o.update = u.Update
	}
	if d, ok := n.(Drawer); ok {
		o.draw = d.Draw
	}
}

// UpdateChildren updates every child subtree in attach order, then runs the
// node's own Update if it has one.
func (o *Object) UpdateChildren(g *Game, dt Seconds) {
	for _, child := range o.children {
		child.UpdateChildren(g, dt)
	}
	if o.update != nil {
		o.update(g, dt)
	}
}

// DrawChildren runs the node's own Draw if it has one, then draws every child
// subtree in attach order.
func (o *Object) DrawChildren(rc *RenderContext) {
	if o.draw != nil {
		o.draw(rc)
	}
	for _, child := range o.children {
		child.DrawChildren(rc)
	}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children. The node takes exclusive
// ownership: panics if child is nil, already has a parent, or is an ancestor
// of this node.
func (o *Object) AddChild(child Node) {
	if child == nil {
		panic("arbor: cannot add nil child")
	}
	c := child.object()
	if c == o || isAncestor(c, o) {
		panic("arbor: adding child would create a cycle")
	}
	if c.parent != nil {
		panic("arbor: child already has a parent")
	}
	bind(child)
	c.parent = o
	if c.game == nil {
		c.game = o.game
	}
	o.children = append(o.children, child)
	if o.game != nil && o.game.debug {
		debugCheckTreeDepth(c)
		debugCheckChildCount(o)
	}
}

// RemoveChild detaches child and returns ownership to the caller.
// Panics if child is not a child of this node.
func (o *Object) RemoveChild(child Node) {
	c := child.object()
	if c.parent != o {
		panic("arbor: child's parent is not this node")
	}
	for i, n := range o.children {
		if n.object() == c {
			copy(o.children[i:], o.children[i+1:])
			o.children[len(o.children)-1] = nil
			o.children = o.children[:len(o.children)-1]
			break
		}
	}
	c.parent = nil
}

// Children returns the child list in attach order. The returned slice MUST
// NOT be mutated by the caller.
func (o *Object) Children() []Node {
	return o.children
}

// NumChildren returns the number of children.
func (o *Object) NumChildren() int {
	return len(o.children)
}

// ChildAt returns the child at the given index.
func (o *Object) ChildAt(index int) Node {
	return o.children[index]
}

// Parent returns the owning node, or nil for a root or detached node. If the
// parent was never passed through Make, AddChild or Game.SetRoot, its
// embedded *Object is returned instead of the outer node.
func (o *Object) Parent() Node {
	switch {
	case o.parent == nil:
		return nil
	case o.parent.self != nil:
		return o.parent.self
	default:
		return o.parent
	}
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Object) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// --- Construction ---

// Make is the construction path for nodes: it calls ctor with cfg and
// resolves the resulting node's capabilities.
//
//	sprite, err := arbor.Make(g, arbor.SpriteFromTexture("hero.png"), arbor.NewSprite)
func Make[C any, T Node](g *Game, cfg C, ctor func(*Game, C) (T, error)) (T, error) {
	n, err := ctor(g, cfg)
	if err != nil {
		var zero T
		return zero, err
	}
	bind(n)
	if g != nil {
		n.object().game = g
	}
	return n, nil
}

// MakeDefault is Make with the zero value of the config type.
func MakeDefault[C any, T Node](g *Game, ctor func(*Game, C) (T, error)) (T, error) {
	var cfg C
	return Make(g, cfg, ctor)
}

// --- Spatial ---

// Spatial provides the Positioned capability. Embed it in a node type to give
// the node its own Transform, which starts as the identity.
type Spatial struct {
	xf  Transform
	set bool
}

// NewSpatial returns a Spatial holding t.
func NewSpatial(t Transform) Spatial {
	return Spatial{xf: t, set: true}
}

// Transform returns the node's transform for reading or mutation.
func (s *Spatial) Transform() *Transform {
	if !s.set {
		s.xf = IdentityTransform
		s.set = true
	}
	return &s.xf
}
