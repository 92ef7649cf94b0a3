package arbor

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// captureLogs routes the package logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestLoggerDefaultIsSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	captureLogs(t)
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestDebugModeToggle(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.SetDebugMode(true)
	t.Cleanup(func() { g.SetDebugMode(false) })
	if !g.DebugMode() {
		t.Fatal("debug mode not enabled")
	}
	g.SetDebugMode(false)
	if g.DebugMode() {
		t.Error("debug mode not disabled")
	}
}

func TestDebugFrameStatsLogged(t *testing.T) {
	buf := captureLogs(t)
	g, dev := newTestGame(t, heroFS(t))
	g.SetDebugMode(true)
	t.Cleanup(func() { g.SetDebugMode(false) })

	root, err := MakeDefault(g, newWorld)
	if err != nil {
		t.Fatal(err)
	}
	g.SetRoot(root)
	g.Tick(0.016)
	g.Paint()

	if len(dev.draws) != 1 {
		t.Fatalf("draws = %d", len(dev.draws))
	}
	out := buf.String()
	if !strings.Contains(out, "arbor: frame") || !strings.Contains(out, "draw_calls=1") {
		t.Errorf("frame stats not logged:\n%s", out)
	}
	if !strings.Contains(out, "arbor: asset loaded") {
		t.Errorf("asset decode not logged:\n%s", out)
	}
}

func TestDebugCheckTreeDepth(t *testing.T) {
	buf := captureLogs(t)
	nodes := make([]*plainNode, debugMaxTreeDepth+2)
	for i := range nodes {
		nodes[i] = &plainNode{}
		if i > 0 {
			nodes[i-1].AddChild(nodes[i])
		}
	}
	leaf := &nodes[len(nodes)-1].Object
	if got := debugCheckTreeDepth(leaf); got != len(nodes) {
		t.Errorf("depth = %d, want %d", got, len(nodes))
	}
	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Errorf("deep tree not reported:\n%s", buf.String())
	}
}

func TestDebugCheckChildCount(t *testing.T) {
	buf := captureLogs(t)
	parent := &plainNode{}
	for i := 0; i < debugMaxChildCount; i++ {
		parent.AddChild(&plainNode{})
	}
	if !debugCheckChildCount(&parent.Object) {
		t.Error("threshold child count reported as too many")
	}
	parent.AddChild(&plainNode{})
	if debugCheckChildCount(&parent.Object) {
		t.Error("child count over threshold not reported")
	}
	if !strings.Contains(buf.String(), "child count exceeds threshold") {
		t.Errorf("warning not logged:\n%s", buf.String())
	}
}

func TestDebugChecksRunOnAddChild(t *testing.T) {
	buf := captureLogs(t)
	g, _ := newTestGame(t, nil)
	g.SetDebugMode(true)
	t.Cleanup(func() { g.SetDebugMode(false) })

	prev, err := MakeDefault(g, func(*Game, struct{}) (*plainNode, error) { return &plainNode{}, nil })
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		n := &plainNode{}
		prev.AddChild(n)
		prev = n
	}
	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Error("AddChild in debug mode did not check depth")
	}
}

func TestDebugChecksScopedToGame(t *testing.T) {
	buf := captureLogs(t)
	debugGame, _ := newTestGame(t, nil)
	debugGame.SetDebugMode(true)
	quiet, _ := newTestGame(t, nil)

	root := &plainNode{}
	quiet.SetRoot(root)
	prev := root
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		n := &plainNode{}
		prev.AddChild(n)
		prev = n
	}
	if strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Error("debug mode on one game checked another game's tree")
	}
	if prev.game != quiet {
		t.Error("attached node did not inherit its parent's game")
	}
}
