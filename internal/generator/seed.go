package generator

import (
	"crypto/sha256"
	"iter"
)

// Seed is a cyclic bitstream over a fixed byte buffer.
// Each draw yields true when the byte under the cursor is even.
type Seed struct {
	data     []byte
	position int
}

// NewSeed hashes word with SHA-256 and returns a Seed positioned at the first byte.
func NewSeed(word string) *Seed {
	sum := sha256.Sum256([]byte(word))
	return &Seed{data: sum[:]}
}

// NewSeedFromBytes builds a Seed over a copy of data.
func NewSeedFromBytes(data []byte) *Seed {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Seed{data: buf}
}

// Next draws one boolean and advances the cursor, wrapping after the last byte.
func (s *Seed) Next() bool {
	if len(s.data) == 0 {
		return false
	}

	value := s.data[s.position]
	s.position++
	if s.position == len(s.data) {
		s.position = 0
	}

	return value%2 == 0
}

// Bits returns an infinite sequence sharing the Seed's cursor.
func (s *Seed) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for {
			if !yield(s.Next()) {
				return
			}
		}
	}
}

// Digest returns a copy of the underlying buffer.
func (s *Seed) Digest() []byte {
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}

// Position is the index of the byte the next draw will read.
func (s *Seed) Position() int {
	return s.position
}
