package floathelp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqrt(t *testing.T) {
	assert.Equal(t, float32(3), Sqrt(9))
	assert.Equal(t, float32(0), Sqrt(0))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, float32(1.5), Abs(-1.5))
	assert.Equal(t, float32(1.5), Abs(1.5))
	assert.Equal(t, float32(0), Abs(float32(math.Copysign(0, -1))))
}

func TestDegreeTrig(t *testing.T) {
	assert.InDelta(t, 1, CosDeg(0), 1e-6)
	assert.InDelta(t, 0, CosDeg(90), 1e-6)
	assert.InDelta(t, 1, SinDeg(90), 1e-6)
	assert.InDelta(t, -1, SinDeg(-90), 1e-6)
}

func TestDegreeRadianConversions(t *testing.T) {
	assert.InDelta(t, math.Pi, ToRadians(180), 1e-12)
	assert.InDelta(t, 180, ToDegrees(math.Pi), 1e-12)
	assert.InDelta(t, 45, ToDegrees(ToRadians(45)), 1e-12)
}

func TestIsEqual(t *testing.T) {
	assert.True(t, IsEqual(1, 1))
	assert.True(t, IsEqual(1, 1+Epsilon))
	assert.False(t, IsEqual(1, 1.001))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-123.456))
	assert.False(t, IsFinite(float32(math.NaN())))
	assert.False(t, IsFinite(float32(math.Inf(-1))))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 2, Max(1, 2))
	assert.Equal(t, float32(-1), Min(float32(-1), float32(1)))
	assert.Equal(t, "b", Max("a", "b"))
}
