package sim

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pdok/vec2d/vec2d"
)

// Checkpoints persist particle state in the vector's fixed binary layout:
// a little-endian uint32 particle count, then per particle the position and
// velocity vectors, 8 bytes each (x then y as float32).

// WriteCheckpoint writes the particle state to w.
func WriteCheckpoint(w io.Writer, particles []Particle) error {
	err := binary.Write(w, binary.LittleEndian, uint32(len(particles)))
	if err != nil {
		return fmt.Errorf("error writing checkpoint header: %w", err)
	}
	for i := range particles {
		for _, vec := range []*vec2d.Vector2D{particles[i].Pos, particles[i].Vel} {
			data, err := vec.MarshalBinary()
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			if err != nil {
				return fmt.Errorf("error writing checkpoint vector: %w", err)
			}
		}
	}
	return nil
}

// ReadCheckpoint reads particle state written by WriteCheckpoint.
func ReadCheckpoint(r io.Reader) ([]Particle, error) {
	var count uint32
	err := binary.Read(r, binary.LittleEndian, &count)
	if err != nil {
		return nil, fmt.Errorf("error reading checkpoint header: %w", err)
	}
	particles := make([]Particle, count)
	buf := make([]byte, vec2d.BinarySize)
	for i := range particles {
		particles[i].Pos = vec2d.NewZero()
		particles[i].Vel = vec2d.NewZero()
		for _, vec := range []*vec2d.Vector2D{particles[i].Pos, particles[i].Vel} {
			_, err = io.ReadFull(r, buf)
			if err != nil {
				return nil, fmt.Errorf("error reading checkpoint vector: %w", err)
			}
			err = vec.UnmarshalBinary(buf)
			if err != nil {
				return nil, err
			}
		}
	}
	return particles, nil
}
