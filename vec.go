package arbor

import "math"

// Vec2 is a 2D point or vector used for positions, offsets, sizes, and
// directions throughout the API. It is a value type; every operation returns a
// new Vec2.
type Vec2 struct {
	X, Y float64
}

// Vec2i is the signed-integer variant of Vec2, used for pixel-exact sizes.
type Vec2i struct {
	X, Y int
}

// Vec2Zero is the zero vector.
var Vec2Zero = Vec2{}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Div returns the component-wise quotient of v and o.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// DivScalar returns v divided by the scalar s.
func (v Vec2) DivScalar(s float64) Vec2 { return Vec2{v.X / s, v.Y / s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// LengthSquared returns the squared length of v.
func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalized() Vec2 {
	l := v.LengthSquared()
	if l == 0 {
		return v
	}
	return v.DivScalar(math.Sqrt(l))
}

// Angle returns the angle of v in radians, measured from the +X axis.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Rotated returns v rotated by theta radians (clockwise on screen, since Y
// points down).
func (v Vec2) Rotated(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Floor rounds both components down.
func (v Vec2) Floor() Vec2i { return Vec2i{int(math.Floor(v.X)), int(math.Floor(v.Y))} }

// Ceil rounds both components up.
func (v Vec2) Ceil() Vec2i { return Vec2i{int(math.Ceil(v.X)), int(math.Ceil(v.Y))} }

// Round rounds both components to the nearest integer, halves away from zero.
func (v Vec2) Round() Vec2i { return Vec2i{int(math.Round(v.X)), int(math.Round(v.Y))} }

// Add returns v + o.
func (v Vec2i) Add(o Vec2i) Vec2i { return Vec2i{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2i) Sub(o Vec2i) Vec2i { return Vec2i{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product of v and o.
func (v Vec2i) Mul(o Vec2i) Vec2i { return Vec2i{v.X * o.X, v.Y * o.Y} }

// Div returns the component-wise integer quotient of v and o.
func (v Vec2i) Div(o Vec2i) Vec2i { return Vec2i{v.X / o.X, v.Y / o.Y} }

// Scale returns v multiplied by s.
func (v Vec2i) Scale(s int) Vec2i { return Vec2i{v.X * s, v.Y * s} }

// DivScalar returns v divided by s using integer division.
func (v Vec2i) DivScalar(s int) Vec2i { return Vec2i{v.X / s, v.Y / s} }

// Length returns the Euclidean length of v.
func (v Vec2i) Length() float64 { return math.Sqrt(float64(v.LengthSquared())) }

// LengthSquared returns the squared length of v.
func (v Vec2i) LengthSquared() int { return v.X*v.X + v.Y*v.Y }

// Normalized returns the unit-length float vector pointing along v.
func (v Vec2i) Normalized() Vec2 { return v.Float().Normalized() }

// Float converts v to a Vec2.
func (v Vec2i) Float() Vec2 { return Vec2{float64(v.X), float64(v.Y)} }
