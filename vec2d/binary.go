package vec2d

import (
	"encoding/binary"
	"fmt"
	"math"
)

// BinarySize is the length in bytes of a marshalled vector:
// x then y, each a 4-byte IEEE-754 float32, little-endian
// (the byte order used by WKB in GeoPackages).
const BinarySize = 8

// MarshalBinary encodes the vector in the fixed 8-byte layout.
// The raw bit patterns are written, so NaN payloads survive a round trip.
func (vec *Vector2D) MarshalBinary() ([]byte, error) {
	data := make([]byte, BinarySize)
	binary.LittleEndian.PutUint32(data[0:4], math.Float32bits(vec.X))
	binary.LittleEndian.PutUint32(data[4:8], math.Float32bits(vec.Y))
	return data, nil
}

// UnmarshalBinary decodes a vector from the fixed 8-byte layout.
func (vec *Vector2D) UnmarshalBinary(data []byte) error {
	if len(data) != BinarySize {
		return fmt.Errorf("vec2d: need %d bytes, got %d", BinarySize, len(data))
	}
	vec.X = math.Float32frombits(binary.LittleEndian.Uint32(data[0:4]))
	vec.Y = math.Float32frombits(binary.LittleEndian.Uint32(data[4:8]))
	return nil
}
