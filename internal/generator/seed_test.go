package generator

import (
	"bytes"
	"testing"
)

func TestNewSeed_Digest(t *testing.T) {
	seed := NewSeed("hello")

	expected := []byte{
		44, 242, 77, 186, 95, 176, 163, 14, 38, 232, 59, 42, 197, 185, 226, 158,
		27, 22, 30, 92, 31, 167, 66, 94, 115, 4, 51, 98, 147, 139, 152, 36,
	}
	if !bytes.Equal(seed.Digest(), expected) {
		t.Errorf("digest = %v, want %v", seed.Digest(), expected)
	}
	if seed.Position() != 0 {
		t.Errorf("expected cursor at 0, got %d", seed.Position())
	}
}

func TestNewSeed_EmptyWord(t *testing.T) {
	seed := NewSeed("")
	if len(seed.Digest()) != 32 {
		t.Fatalf("expected 32-byte digest, got %d", len(seed.Digest()))
	}
	// e3b0c442...
	if seed.Digest()[0] != 0xe3 || seed.Digest()[1] != 0xb0 {
		t.Errorf("unexpected digest prefix: %x", seed.Digest()[:2])
	}
}

func TestSeed_Next(t *testing.T) {
	seed := NewSeedFromBytes([]byte{12, 13, 240, 4})

	expected := []bool{true, false, true, true, true, false, true, true, true, false}
	for i, want := range expected {
		if got := seed.Next(); got != want {
			t.Errorf("draw %d = %v, want %v", i, got, want)
		}
	}
}

func TestSeed_Wraps(t *testing.T) {
	seed := NewSeed("wrap")
	first := make([]bool, 32)
	for i := range first {
		first[i] = seed.Next()
	}
	if seed.Position() != 0 {
		t.Fatalf("expected cursor to wrap to 0, got %d", seed.Position())
	}
	for cycle := 0; cycle < 3; cycle++ {
		for i, want := range first {
			if got := seed.Next(); got != want {
				t.Fatalf("cycle %d draw %d = %v, want %v", cycle, i, got, want)
			}
		}
	}
}

func TestSeed_Deterministic(t *testing.T) {
	a := NewSeed("pixie")
	b := NewSeed("pixie")
	for i := 0; i < 200; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("seeds diverged at draw %d", i)
		}
	}
}

func TestSeed_Bits(t *testing.T) {
	seed := NewSeedFromBytes([]byte{12, 13, 240, 4})

	var got []bool
	for bit := range seed.Bits() {
		got = append(got, bit)
		if len(got) == 5 {
			break
		}
	}

	expected := []bool{true, false, true, true, true}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("bit %d = %v, want %v", i, got[i], expected[i])
		}
	}
	// Bits shares the cursor with Next.
	if seed.Next() != false {
		t.Error("expected Bits to advance the shared cursor")
	}
}

func TestSeed_EmptyBuffer(t *testing.T) {
	seed := NewSeedFromBytes(nil)
	for i := 0; i < 3; i++ {
		if seed.Next() {
			t.Error("expected false from empty buffer")
		}
	}
}

func TestSeedFromBytes_Copies(t *testing.T) {
	data := []byte{2, 3}
	seed := NewSeedFromBytes(data)
	data[0] = 1

	if !seed.Next() {
		t.Error("seed should not observe caller mutation")
	}

	digest := seed.Digest()
	digest[1] = 4
	if seed.Next() {
		t.Error("Digest should return a copy")
	}
}
