package cipher

import (
	"math/rand"
	"testing"

	"github.com/talos-cipher/talos/talos/matrix"
)

func randomGrid(t *testing.T, rng *rand.Rand, packed bool) matrix.Matrix {
	t.Helper()
	bits := make([]bool, BlockBits)
	for i := range bits {
		bits[i] = rng.Intn(2) == 1
	}
	if packed {
		m, err := matrix.BitMatrixFromBits(GridSize, GridSize, bits)
		if err != nil {
			t.Fatalf("BitMatrixFromBits: %v", err)
		}
		return m
	}
	m, err := matrix.BoolMatrixFromBits(GridSize, GridSize, bits)
	if err != nil {
		t.Fatalf("BoolMatrixFromBits: %v", err)
	}
	return m
}

func equalBits(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Unscramble must be the exact algebraic inverse of Scramble for any
// message/key grid pair, across backend combinations.
func TestScrambleInverseLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		m := randomGrid(t, rng, trial%2 == 0)
		key := randomGrid(t, rng, trial%3 == 0)
		original := m.Bits()

		Scramble(m, key)
		Unscramble(m, key)

		if !equalBits(m.Bits(), original) {
			t.Fatalf("trial %d: Unscramble(Scramble(M)) != M", trial)
		}
	}
}

// Scrambling only permutes rows and columns, so the live-cell count is
// invariant.
func TestScramblePreservesPopcount(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	m := randomGrid(t, rng, false)
	key := randomGrid(t, rng, true)

	before := m.Popcount()
	Scramble(m, key)
	if m.Popcount() != before {
		t.Fatalf("popcount changed: %d -> %d", before, m.Popcount())
	}
}

// The key grid is read-only during scrambling.
func TestScrambleLeavesKeyUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	m := randomGrid(t, rng, false)
	key := randomGrid(t, rng, true)
	keyBefore := key.Bits()

	Scramble(m, key)
	Unscramble(m, key)

	if !equalBits(key.Bits(), keyBefore) {
		t.Fatalf("scramble mutated the key grid")
	}
}
