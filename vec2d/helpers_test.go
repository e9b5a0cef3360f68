package vec2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDotIsCommutative(t *testing.T) {
	vectors := []*Vector2D{New(1, 0), New(3, 4), New(-2.5, 1.25), New(-1, -1)}
	for _, a := range vectors {
		for _, b := range vectors {
			assert.Equal(t, Dot(a, b), Dot(b, a), "a=%v b=%v", a, b)
		}
	}
	assert.Equal(t, float32(11), Dot(New(1, 2), New(3, 4)))
}

func TestCrossIsAntiCommutative(t *testing.T) {
	vectors := []*Vector2D{New(1, 0), New(3, 4), New(-2.5, 1.25), New(-1, -1)}
	for _, a := range vectors {
		for _, b := range vectors {
			assert.Equal(t, Cross(a, b), -Cross(b, a), "a=%v b=%v", a, b)
		}
	}
	assert.Equal(t, float32(-2), Cross(New(1, 2), New(3, 4)))
}

func TestCrossWithScalarIsOrderSensitive(t *testing.T) {
	a := New(1, 2)
	s := float32(3)

	vs := CrossVecScalar(a, s)
	sv := CrossScalarVec(s, a)
	assert.Equal(t, New(6, -3), vs)
	assert.Equal(t, New(-6, 3), sv)
	assert.Equal(t, vs.Negate(), sv, "the two orders have opposite signs")
	assert.Equal(t, New(1, 2), a, "operand must not change")
}

func TestCrossToOutToleratesAliasing(t *testing.T) {
	// the safe variants guard with a temporary, so out may alias the input
	out := New(1, 2)
	CrossVecScalarToOut(out, 3, out)
	assert.Equal(t, New(6, -3), out)

	out = New(1, 2)
	CrossScalarVecToOut(3, out, out)
	assert.Equal(t, New(-6, 3), out)
}

func TestCrossToOutUnsafeWithoutAliasing(t *testing.T) {
	a := New(1, 2)
	out := NewZero()
	CrossVecScalarToOutUnsafe(a, 3, out)
	assert.Equal(t, New(6, -3), out)

	CrossScalarVecToOutUnsafe(3, a, out)
	assert.Equal(t, New(-6, 3), out)
}

func TestNegateToOut(t *testing.T) {
	out := NewZero()
	NegateToOut(New(1, -2), out)
	assert.Equal(t, New(-1, 2), out)
}

func TestMinMax(t *testing.T) {
	a := New(1, 4)
	b := New(3, 2)

	assert.Equal(t, New(1, 2), Min(a, b))
	assert.Equal(t, New(3, 4), Max(a, b))

	out := NewZero()
	MinToOut(a, b, out)
	assert.Equal(t, New(1, 2), out)
	MaxToOut(a, b, out)
	assert.Equal(t, New(3, 4), out)

	assert.Equal(t, New(1, 4), a, "operand must not change")
	assert.Equal(t, New(3, 2), b, "operand must not change")
}

func TestAbsHelpers(t *testing.T) {
	a := New(-1, 2)
	assert.Equal(t, New(1, 2), AbsVec(a))

	out := NewZero()
	AbsToOut(a, out)
	assert.Equal(t, New(1, 2), out)
	assert.Equal(t, New(-1, 2), a)
}
