package geometry

import (
	"fmt"
	"math"
	"strings"
)

// Matrix3 is a row-major 3x3 matrix, addressed as m[row][col].
type Matrix3 [3][3]float64

// NewMatrix3 creates a matrix from its entries in row order
func NewMatrix3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Matrix3 {
	return Matrix3{
		{m00, m01, m02},
		{m10, m11, m12},
		{m20, m21, m22},
	}
}

// Identity3 returns the 3x3 identity matrix
func Identity3() Matrix3 {
	return NewMatrix3(1, 0, 0, 0, 1, 0, 0, 0, 1)
}

// Add returns the entry-wise sum of two matrices
func (m Matrix3) Add(other Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] + other[i][j]
		}
	}
	return r
}

// Sub returns the entry-wise difference of two matrices
func (m Matrix3) Sub(other Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] - other[i][j]
		}
	}
	return r
}

// Scale multiplies every entry by a scalar
func (m Matrix3) Scale(scalar float64) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] * scalar
		}
	}
	return r
}

// Mul returns the matrix product m * other
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j]
		}
	}
	return r
}

// MulVec returns m * v
func (m Matrix3) MulVec(v Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the transposed matrix
func (m Matrix3) Transpose() Matrix3 {
	return NewMatrix3(
		m[0][0], m[1][0], m[2][0],
		m[0][1], m[1][1], m[2][1],
		m[0][2], m[1][2], m[2][2],
	)
}

// Determinant returns the determinant by cofactor expansion along the first row
func (m Matrix3) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Rotation builders take the cosine (or sine) of the angle instead of the
// angle itself. The missing value is derived as sqrt(1 - v²), so callers must
// pass |v| <= 1; anything outside that range produces NaN entries.

// RotationXCos returns the rotation about the X axis with the given cosine
func RotationXCos(c float64) Matrix3 {
	s := math.Sqrt(1 - c*c)
	return NewMatrix3(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// RotationXSin returns the rotation about the X axis with the given sine
func RotationXSin(s float64) Matrix3 {
	c := math.Sqrt(1 - s*s)
	return NewMatrix3(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// RotationYCos returns the rotation about the Y axis with the given cosine
func RotationYCos(c float64) Matrix3 {
	s := math.Sqrt(1 - c*c)
	return NewMatrix3(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// RotationZCos returns the rotation about the Z axis with the given cosine.
// The derived sine is negated when clockwise is set.
func RotationZCos(c float64, clockwise bool) Matrix3 {
	s := math.Sqrt(1 - c*c)
	if clockwise {
		s = -s
	}
	return NewMatrix3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// String formats the matrix one row per line
func (m Matrix3) String() string {
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&sb, "[%8.3f, %8.3f, %8.3f]", m[i][0], m[i][1], m[i][2])
		if i < 2 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
