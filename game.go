package arbor

import (
	"fmt"
	"time"
)

// Game drives the frame loop. It owns the root node, the asset cache, the
// render context, and the input state, and turns host callbacks into update
// and draw passes over the scene tree.
//
// Game is not safe for concurrent use; every method must be called from the
// thread that owns the device.
type Game struct {
	root       Node
	assets     *Assets
	render     *RenderContext
	input      *Input
	clearColor Color
	windowSize Vec2i
	sink       InputSink
	script     *Script

	debug bool
	stats frameStats
	frame uint64
	quit  bool
}

// NewGame creates a Game around dev. It fails if the device backend has no
// default pipeline or the pipeline does not compile.
func NewGame(dev Device, cfg RunConfig) (*Game, error) {
	cfg = cfg.withDefaults()
	rc, err := NewRenderContext(dev, cfg.WindowSize())
	if err != nil {
		return nil, fmt.Errorf("arbor: create game: %w", err)
	}
	return &Game{
		assets:     NewAssets(cfg.Assets),
		render:     rc,
		input:      newInput(),
		clearColor: cfg.ClearColor,
		windowSize: cfg.WindowSize(),
	}, nil
}

// SetRoot installs n as the root of the scene tree. Panics if n is nil or
// already attached to a parent.
func (g *Game) SetRoot(n Node) {
	if n == nil {
		panic("arbor: cannot set nil root")
	}
	if n.object().parent != nil {
		panic("arbor: root node already has a parent")
	}
	bind(n)
	n.object().game = g
	g.root = n
}

// Root returns the root node, or nil before SetRoot.
func (g *Game) Root() Node { return g.root }

// Assets returns the shared asset cache.
func (g *Game) Assets() *Assets { return g.assets }

// Render returns the render context.
func (g *Game) Render() *RenderContext { return g.render }

// Input returns the current input state.
func (g *Game) Input() *Input { return g.input }

// WindowSize returns the last known window size in pixels.
func (g *Game) WindowSize() Vec2i { return g.windowSize }

// ClearColor returns the color each frame is cleared to.
func (g *Game) ClearColor() Color { return g.clearColor }

// SetClearColor changes the color each frame is cleared to.
func (g *Game) SetClearColor(c Color) { g.clearColor = c }

// Frame returns the number of completed update passes.
func (g *Game) Frame() uint64 { return g.frame }

// SetInputSink forwards every subsequent input event to sink. Nil disables
// forwarding.
func (g *Game) SetInputSink(sink InputSink) { g.sink = sink }

// Quit asks the host to stop after the current frame.
func (g *Game) Quit() { g.quit = true }

// QuitRequested reports whether Quit has been called.
func (g *Game) QuitRequested() bool { return g.quit }

// Tick runs one update pass over the scene tree: children before parents,
// siblings in attach order. Just-pressed input state is cleared afterwards.
func (g *Game) Tick(dt Seconds) {
	if g.script != nil {
		g.script.step(g)
	}

	var start time.Time
	if g.debug {
		start = time.Now()
	}
	if g.root != nil {
		g.root.UpdateChildren(g, dt)
	}
	g.input.endFrame()
	g.frame++
	if g.debug {
		g.stats.updateTime = time.Since(start)
	}
}

// Paint runs one draw pass: it opens a frame cleared to the clear color,
// draws the tree parents first, and submits the frame.
func (g *Game) Paint() {
	var start time.Time
	if g.debug {
		start = time.Now()
	}
	g.render.BeginFrame(g.clearColor)
	if g.root != nil {
		g.root.DrawChildren(g.render)
	}
	g.render.EndFrame()
	if g.debug {
		g.stats.drawTime = time.Since(start)
		g.stats.drawCalls = g.render.DrawCalls()
		g.debugLog(g.stats)
	}
}

// Resize records a new window size. The viewport transform is recomputed on
// the next draw.
func (g *Game) Resize(w, h int) {
	g.windowSize = Vec2i{w, h}
	g.render.Resize(g.windowSize)
	g.emit(InputEvent{Type: EventResize, Width: w, Height: h})
}

// KeyDown records k as held.
func (g *Game) KeyDown(k Key) {
	g.input.setKeyDown(k)
	g.emit(InputEvent{Type: EventKeyDown, Key: k})
}

// KeyUp records k as released.
func (g *Game) KeyUp(k Key) {
	g.input.setKeyUp(k)
	g.emit(InputEvent{Type: EventKeyUp, Key: k})
}

// MouseDown records b as held.
func (g *Game) MouseDown(b MouseButton) {
	g.input.setMouseDown(b)
	g.emit(InputEvent{Type: EventMouseDown, Button: b, X: g.input.cursor.X, Y: g.input.cursor.Y})
}

// MouseUp records b as released.
func (g *Game) MouseUp(b MouseButton) {
	g.input.setMouseUp(b)
	g.emit(InputEvent{Type: EventMouseUp, Button: b, X: g.input.cursor.X, Y: g.input.cursor.Y})
}

// MouseMove records the cursor position in window pixels.
func (g *Game) MouseMove(x, y float64) {
	g.input.cursor = Vec2{x, y}
	g.emit(InputEvent{Type: EventMouseMove, X: x, Y: y})
}

func (g *Game) emit(ev InputEvent) {
	if g.sink == nil {
		return
	}
	ev.Frame = g.frame
	g.sink.EmitInput(ev)
}

// Screenshot queues a PNG capture of the next submitted frame when the device
// supports it. It reports whether the request was accepted.
func (g *Game) Screenshot(label string) bool {
	s, ok := g.render.Device().(interface{ Screenshot(string) })
	if !ok {
		Logger().Warn("arbor: device does not support screenshots", "label", label)
		return false
	}
	s.Screenshot(label)
	return true
}
