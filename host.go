package arbor

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Run opens a window, builds the root node with ctor and the zero config,
// and runs the game loop until the window closes or Game.Quit is called.
//
//	func main() {
//		if err := arbor.Run(arbor.RunConfig{Title: "demo"}, NewWorld); err != nil {
//			log.Fatal(err)
//		}
//	}
func Run[C any, T Node](cfg RunConfig, ctor func(*Game, C) (T, error)) error {
	cfg = cfg.withDefaults()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	dev := NewEbitenDevice()
	dev.ScreenshotDir = cfg.ScreenshotDir

	g, err := NewGame(dev, cfg)
	if err != nil {
		return err
	}
	root, err := MakeDefault(g, ctor)
	if err != nil {
		return fmt.Errorf("arbor: build root node: %w", err)
	}
	g.SetRoot(root)

	h := &host{game: g, dev: dev, layout: cfg.WindowSize()}
	if cfg.ShowFPS {
		h.fps = &fpsOverlay{}
	}
	return ebiten.RunGame(h)
}

// hostButtons maps the mouse buttons the Game tracks to Ebitengine buttons.
var hostButtons = [...]struct {
	host ebiten.MouseButton
	btn  MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// host adapts Ebitengine's polling loop to the Game's callbacks.
type host struct {
	game   *Game
	dev    *EbitenDevice
	fps    *fpsOverlay
	layout Vec2i
	cursor [2]int
	keys   []ebiten.Key
}

// Update implements ebiten.Game.
func (h *host) Update() error {
	g := h.game

	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		g.KeyDown(k)
	}
	h.keys = inpututil.AppendJustReleasedKeys(h.keys[:0])
	for _, k := range h.keys {
		g.KeyUp(k)
	}

	if x, y := ebiten.CursorPosition(); x != h.cursor[0] || y != h.cursor[1] {
		h.cursor = [2]int{x, y}
		g.MouseMove(float64(x), float64(y))
	}
	for _, b := range hostButtons {
		if inpututil.IsMouseButtonJustPressed(b.host) {
			g.MouseDown(b.btn)
		}
		if inpututil.IsMouseButtonJustReleased(b.host) {
			g.MouseUp(b.btn)
		}
	}

	dt := 1 / float64(ebiten.TPS())
	g.Tick(dt)
	if h.fps != nil {
		h.fps.update(dt, ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	if g.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *host) Draw(screen *ebiten.Image) {
	h.dev.SetTarget(screen)
	h.game.Paint()
	if h.fps != nil {
		h.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The logical screen is the Game's window
// size, which follows the outside size whenever the host window changes.
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := Vec2i{outsideWidth, outsideHeight}
	if size != h.layout && size.X > 0 && size.Y > 0 {
		h.layout = size
		h.game.Resize(size.X, size.Y)
	}
	ws := h.game.WindowSize()
	return ws.X, ws.Y
}
