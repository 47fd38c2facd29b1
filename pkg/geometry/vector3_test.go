package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3ScalarOps(t *testing.T) {
	v := NewVector3(2, -4, 6)

	assert.Equal(t, NewVector3(4, -8, 12), v.Mul(2))
	assert.Equal(t, NewVector3(1, -2, 3), v.Div(2))
	assert.Equal(t, NewVector3(-2, 4, -6), v.Neg())
	assert.Equal(t, NewVector3(2, -8, 18), v.MulElem(NewVector3(1, 2, 3)))
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
	assert.InDelta(t, 5.0, NewVector3(3, 4, 12).PlanarLength(), 1e-12)
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 0)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	normalized, err := v.Normalize()
	require.NoError(t, err)

	assert.InDelta(t, 1.0, normalized.Length(), 1e-10)
	assert.InDelta(t, 0.6, normalized.X, 1e-12)
	assert.InDelta(t, 0.8, normalized.Y, 1e-12)
}

func TestVector3NormalizeZero(t *testing.T) {
	_, err := Vector3{}.Normalize()
	assert.ErrorIs(t, err, ErrZeroVector)
	assert.True(t, Vector3{}.IsZero())
}

func TestVector3Cross(t *testing.T) {
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)
	result := v1.Cross(v2)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}

	// Both operands are orthogonal to their cross product
	a := NewVector3(1, 2, 3)
	b := NewVector3(-4, 0.5, 2)
	c := a.Cross(b)
	assert.InDelta(t, 0, c.Dot(a), 1e-12)
	assert.InDelta(t, 0, c.Dot(b), 1e-12)
	assert.Equal(t, c.Neg(), b.Cross(a))
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Array(t *testing.T) {
	assert.Equal(t, [3]float64{1, 2, 3}, NewVector3(1, 2, 3).Array())
	assert.Equal(t, "(1.000, -2.500, 0.000)", NewVector3(1, -2.5, 0).String())
}
