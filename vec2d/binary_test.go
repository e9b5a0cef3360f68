package vec2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryLayout(t *testing.T) {
	data, err := New(1, 2).MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, data, BinarySize)
	// x then y, each a little-endian float32
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0x00, 0x40}, data)
}

func TestBinaryRoundTripKeepsBitPatterns(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	vectors := []*Vector2D{
		New(1.5, -2.5),
		{X: negZero, Y: 0},
		{X: float32(math.NaN()), Y: float32(math.Inf(1))},
	}
	for _, vec := range vectors {
		data, err := vec.MarshalBinary()
		assert.NoError(t, err)

		got := NewZero()
		assert.NoError(t, got.UnmarshalBinary(data))
		assert.True(t, vec.Equals(got), "bit patterns must survive a round trip: %v", vec)
	}
}

func TestUnmarshalBinaryRejectsWrongSize(t *testing.T) {
	vec := NewZero()
	assert.Error(t, vec.UnmarshalBinary([]byte{1, 2, 3}))
	assert.Error(t, vec.UnmarshalBinary(make([]byte, 9)))
}
