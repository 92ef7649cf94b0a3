package arbor

import "math"

// Matrix2 is a 2x2 matrix stored row-major. Vectors are treated as row
// vectors, so a point is transformed as v * M.
type Matrix2 [2][2]float64

// IdentityMatrix is the 2x2 identity.
var IdentityMatrix = Matrix2{{1, 0}, {0, 1}}

// DiagonalMatrix returns a matrix with sx and sy on the diagonal.
func DiagonalMatrix(sx, sy float64) Matrix2 {
	return Matrix2{{sx, 0}, {0, sy}}
}

// RotationMatrix returns the matrix that rotates a row vector by theta
// radians, matching Vec2.Rotated.
func RotationMatrix(theta float64) Matrix2 {
	sin, cos := math.Sincos(theta)
	return Matrix2{{cos, sin}, {-sin, cos}}
}

// At returns the element at the given row and column.
func (m Matrix2) At(row, col int) float64 { return m[row][col] }

// Set returns a copy of m with the element at row, col replaced by v.
func (m Matrix2) Set(row, col int, v float64) Matrix2 {
	m[row][col] = v
	return m
}

// Add returns the element-wise sum of m and o.
//
// Transform builders use Add to accumulate scale and rotation into a linear
// map. It is not composition: use Mul to chain two linear maps.
func (m Matrix2) Add(o Matrix2) Matrix2 {
	return Matrix2{
		{m[0][0] + o[0][0], m[0][1] + o[0][1]},
		{m[1][0] + o[1][0], m[1][1] + o[1][1]},
	}
}

// Sub returns the element-wise difference of m and o.
func (m Matrix2) Sub(o Matrix2) Matrix2 {
	return Matrix2{
		{m[0][0] - o[0][0], m[0][1] - o[0][1]},
		{m[1][0] - o[1][0], m[1][1] - o[1][1]},
	}
}

// Scale returns m with every element multiplied by s.
func (m Matrix2) Scale(s float64) Matrix2 {
	return Matrix2{
		{m[0][0] * s, m[0][1] * s},
		{m[1][0] * s, m[1][1] * s},
	}
}

// Mul returns the matrix product m * o.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	return Matrix2{
		{m[0][0]*o[0][0] + m[0][1]*o[1][0], m[0][0]*o[0][1] + m[0][1]*o[1][1]},
		{m[1][0]*o[0][0] + m[1][1]*o[1][0], m[1][0]*o[0][1] + m[1][1]*o[1][1]},
	}
}

// Determinant returns the determinant of m.
func (m Matrix2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// MulMatrix returns the row vector v multiplied by m.
func (v Vec2) MulMatrix(m Matrix2) Vec2 {
	return Vec2{
		v.X*m[0][0] + v.Y*m[1][0],
		v.X*m[0][1] + v.Y*m[1][1],
	}
}
