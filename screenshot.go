package arbor

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// Screenshot queues a labeled screenshot to be captured when the current pass
// ends. The PNG is written to ScreenshotDir with a timestamped filename.
func (d *EbitenDevice) Screenshot(label string) {
	d.screenshotQueue = append(d.screenshotQueue, label)
}

// flushScreenshots writes one PNG per queued label from a single capture of
// screen. The queue is kept when there is nothing to capture.
func (d *EbitenDevice) flushScreenshots(screen *ebiten.Image) {
	if len(d.screenshotQueue) == 0 || screen == nil {
		return
	}
	labels := d.screenshotQueue
	d.screenshotQueue = d.screenshotQueue[:0]

	if err := os.MkdirAll(d.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("arbor: screenshot dir", "dir", d.ScreenshotDir, "err", err)
		return
	}
	frame := captureFrame(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		path := filepath.Join(d.ScreenshotDir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := savePNG(path, frame); err != nil {
			Logger().Warn("arbor: screenshot", "label", label, "err", err)
			continue
		}
		Logger().Info("arbor: screenshot written", "path", path)
	}
}

// captureFrame reads the target's premultiplied pixels and returns them as
// straight alpha, which is what PNG stores.
func captureFrame(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(rgba.Pix)
	return straightAlpha(rgba)
}

func straightAlpha(src *image.RGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel maps a label onto a safe file name component.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '.' {
			return r
		}
		return '_'
	}, label)
}
