package arbor

// Transform is a 2D affine transform made of a linear map, an offset, and a
// pivot. Applying it to a point computes (p - Pivot) * Linear + Offset, always
// in that order.
//
// The builder methods (Scaled, Rotated, WithOffset, WithPivot) add into the
// existing component instead of replacing it, so repeated calls accumulate:
//
//	t := IdentityTransform.ScaledUniform(2).ScaledUniform(2) // scale 4
type Transform struct {
	Linear Matrix2
	Offset Vec2
	Pivot  Vec2
}

// IdentityTransform maps every point to itself.
var IdentityTransform = Transform{Linear: IdentityMatrix}

// NewTransform returns a transform with the given components.
func NewTransform(linear Matrix2, offset, pivot Vec2) Transform {
	return Transform{Linear: linear, Offset: offset, Pivot: pivot}
}

// Apply transforms p: pivot-subtract, then linear map, then offset-add.
func (t Transform) Apply(p Vec2) Vec2 {
	return p.Sub(t.Pivot).MulMatrix(t.Linear).Add(t.Offset)
}

// Scaled adds a per-axis scale into the linear map. The diagonal entries are
// multiplied by s.X and s.Y; off-diagonal entries are left alone.
func (t Transform) Scaled(s Vec2) Transform {
	delta := DiagonalMatrix(t.Linear[0][0]*(s.X-1), t.Linear[1][1]*(s.Y-1))
	t.Linear = t.Linear.Add(delta)
	return t
}

// ScaledUniform is Scaled with the same factor on both axes.
func (t Transform) ScaledUniform(s float64) Transform {
	return t.Scaled(Vec2{s, s})
}

// Rotated adds a rotation of theta radians into the linear map. Starting from
// the identity this yields a pure rotation; on a map that already holds scale
// or rotation the entries accumulate additively.
func (t Transform) Rotated(theta float64) Transform {
	t.Linear = t.Linear.Add(RotationMatrix(theta).Sub(IdentityMatrix))
	return t
}

// WithOffset adds o to the offset.
func (t Transform) WithOffset(o Vec2) Transform {
	t.Offset = t.Offset.Add(o)
	return t
}

// WithPivot adds p to the pivot.
func (t Transform) WithPivot(p Vec2) Transform {
	t.Pivot = t.Pivot.Add(p)
	return t
}

// viewportTransform maps window pixel coordinates (origin top-left, Y down)
// to normalized device coordinates (origin center, Y up).
func viewportTransform(size Vec2i) Transform {
	w, h := float64(size.X), float64(size.Y)
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Transform{
		Linear: DiagonalMatrix(2/w, -2/h),
		Offset: Vec2{-1, 1},
	}
}
