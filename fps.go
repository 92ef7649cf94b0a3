package arbor

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the overlay text is refreshed.
const fpsRefresh = 0.5

// fpsOverlay prints the current FPS and TPS in the top-left corner of the
// screen. It is drawn by the host after the scene when RunConfig.ShowFPS is
// set, so it never appears in the scene tree.
type fpsOverlay struct {
	elapsed Seconds
	text    string
}

func (o *fpsOverlay) update(dt Seconds, fps, tps float64) {
	o.elapsed += dt
	if o.text != "" && o.elapsed < fpsRefresh {
		return
	}
	o.elapsed = 0
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, o.text)
}
