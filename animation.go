package arbor

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenProperty selects which part of a Transform a Tween animates.
type TweenProperty uint8

const (
	TweenOffset TweenProperty = iota // Transform.Offset
	TweenPivot                       // Transform.Pivot
	TweenScale                       // the diagonal of Transform.Linear
)

// TweenConfig configures NewTween.
type TweenConfig struct {
	Target   Positioned
	Property TweenProperty
	To       Vec2
	Duration Seconds
	// Ease defaults to ease.Linear.
	Ease ease.TweenFunc
}

// Tween is an Updater node that animates one Vec2 property of a Positioned
// target toward a destination. It writes the target's transform directly
// each update and stops once both axes finish.
//
// Attach it anywhere in the tree; it has no visual output.
type Tween struct {
	Object

	target Positioned
	prop   TweenProperty
	tweens [2]*gween.Tween
	Done   bool
}

// NewTween creates a tween starting from the target's current value.
func NewTween(_ *Game, cfg TweenConfig) (*Tween, error) {
	if cfg.Target == nil {
		return nil, fmt.Errorf("arbor: tween has no target")
	}
	if cfg.Duration < 0 {
		return nil, fmt.Errorf("arbor: tween duration %v is negative", cfg.Duration)
	}
	fn := cfg.Ease
	if fn == nil {
		fn = ease.Linear
	}
	from := tweenRead(cfg.Target.Transform(), cfg.Property)
	t := &Tween{target: cfg.Target, prop: cfg.Property}
	d := float32(cfg.Duration)
	t.tweens[0] = gween.New(float32(from.X), float32(cfg.To.X), d, fn)
	t.tweens[1] = gween.New(float32(from.Y), float32(cfg.To.Y), d, fn)
	return t, nil
}

// Update advances both axes by dt and writes the result to the target.
func (t *Tween) Update(_ *Game, dt Seconds) {
	if t.Done {
		return
	}
	x, doneX := t.tweens[0].Update(float32(dt))
	y, doneY := t.tweens[1].Update(float32(dt))
	tweenWrite(t.target.Transform(), t.prop, Vec2{float64(x), float64(y)})
	t.Done = doneX && doneY
}

// Reset rewinds the tween to its start value.
func (t *Tween) Reset() {
	t.tweens[0].Reset()
	t.tweens[1].Reset()
	t.Done = false
}

func tweenRead(xf *Transform, p TweenProperty) Vec2 {
	switch p {
	case TweenPivot:
		return xf.Pivot
	case TweenScale:
		return Vec2{xf.Linear[0][0], xf.Linear[1][1]}
	default:
		return xf.Offset
	}
}

func tweenWrite(xf *Transform, p TweenProperty, v Vec2) {
	switch p {
	case TweenPivot:
		xf.Pivot = v
	case TweenScale:
		xf.Linear[0][0] = v.X
		xf.Linear[1][1] = v.Y
	default:
		xf.Offset = v
	}
}
