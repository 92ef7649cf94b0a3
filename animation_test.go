package arbor

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

// marker is a minimal Positioned node.
type marker struct {
	Object
	Spatial
}

func newTween(t *testing.T, cfg TweenConfig) *Tween {
	t.Helper()
	tw, err := Make(nil, cfg, NewTween)
	if err != nil {
		t.Fatalf("NewTween: %v", err)
	}
	return tw
}

func TestTweenOffsetReachesTarget(t *testing.T) {
	m := &marker{}
	m.Transform().Offset = Vec2{10, 20}
	tw := newTween(t, TweenConfig{Target: m, To: Vec2{100, 200}, Duration: 1, Ease: ease.Linear})

	// Exact halves avoid float32 accumulation drift.
	tw.Update(nil, 0.5)
	if tw.Done {
		t.Fatal("done at half duration")
	}
	if math.Abs(m.Transform().Offset.X-55) > 0.5 {
		t.Errorf("midpoint X = %f, want ~55", m.Transform().Offset.X)
	}
	tw.Update(nil, 0.5)

	if !tw.Done {
		t.Fatal("expected Done after full duration")
	}
	off := m.Transform().Offset
	if math.Abs(off.X-100) > 0.5 || math.Abs(off.Y-200) > 0.5 {
		t.Errorf("offset = %v, want ~(100, 200)", off)
	}
}

func TestTweenScale(t *testing.T) {
	m := &marker{}
	tw := newTween(t, TweenConfig{Target: m, Property: TweenScale, To: Vec2{2, 3}, Duration: 0.5})

	tw.Update(nil, 0.25)
	tw.Update(nil, 0.25)

	if !tw.Done {
		t.Fatal("expected Done after full duration")
	}
	lin := m.Transform().Linear
	if math.Abs(lin[0][0]-2) > 0.01 || math.Abs(lin[1][1]-3) > 0.01 {
		t.Errorf("linear = %v, want diag(2, 3)", lin)
	}
}

func TestTweenPivot(t *testing.T) {
	m := &marker{}
	tw := newTween(t, TweenConfig{Target: m, Property: TweenPivot, To: Vec2{8, 8}, Duration: 1})
	tw.Update(nil, 1)
	if m.Transform().Pivot != (Vec2{8, 8}) {
		t.Errorf("pivot = %v", m.Transform().Pivot)
	}
}

func TestTweenStopsWhenDone(t *testing.T) {
	m := &marker{}
	tw := newTween(t, TweenConfig{Target: m, To: Vec2{10, 0}, Duration: 1})
	tw.Update(nil, 1)
	m.Transform().Offset = Vec2{-5, -5}
	tw.Update(nil, 1)
	if m.Transform().Offset != (Vec2{-5, -5}) {
		t.Error("finished tween kept writing")
	}
}

func TestTweenReset(t *testing.T) {
	m := &marker{}
	tw := newTween(t, TweenConfig{Target: m, To: Vec2{10, 0}, Duration: 1})
	tw.Update(nil, 1)
	tw.Reset()
	if tw.Done {
		t.Fatal("Reset left Done set")
	}
	tw.Update(nil, 0)
	if m.Transform().Offset.X != 0 {
		t.Errorf("after reset X = %v, want 0", m.Transform().Offset.X)
	}
}

func TestTweenConfigErrors(t *testing.T) {
	if _, err := NewTween(nil, TweenConfig{Duration: 1}); err == nil {
		t.Error("expected error for missing target")
	}
	if _, err := NewTween(nil, TweenConfig{Target: &marker{}, Duration: -1}); err == nil {
		t.Error("expected error for negative duration")
	}
}

func TestTweenInTree(t *testing.T) {
	g, _ := newTestGame(t, nil)
	m := &marker{}
	root := &plainNode{}
	root.AddChild(m)
	root.AddChild(newTween(t, TweenConfig{Target: m, To: Vec2{4, 4}, Duration: 0.5}))
	g.SetRoot(root)

	g.Tick(0.25)
	g.Tick(0.25)
	if math.Abs(m.Transform().Offset.X-4) > 0.01 {
		t.Errorf("offset = %v, want ~(4, 4)", m.Transform().Offset)
	}
}

func TestTweenDurationFromTickTime(t *testing.T) {
	g, _ := newTestGame(t, nil)
	m := &marker{}
	root := newNamed(t, &plainNode{})
	g.SetRoot(root)

	const tick Seconds = 0.125
	tw := newTween(t, TweenConfig{Target: m, To: Vec2{8, 0}, Duration: 4 * tick})
	root.AddChild(tw)
	for range 4 {
		g.Tick(tick)
	}
	if !tw.Done {
		t.Fatal("tween not done after its duration in ticks")
	}
	if math.Abs(m.Transform().Offset.X-8) > 0.01 {
		t.Errorf("offset X = %f, want 8", m.Transform().Offset.X)
	}
}
