package cipher

import "github.com/talos-cipher/talos/talos/matrix"

// The permutation network works in 4-row (resp. 4-column) blocks. Within a
// block the i-th step reads a nibble from the key grid through four taps
// spaced {0,4,8,12} apart and shifted by the i-th entry of the order below,
// then swaps the block's base row (resp. column) with the decoded target.
// Every step is a transposition, so replaying the steps in reverse order
// inverts the whole permutation.
var (
	rowPhaseShifts = [4]int{0, 2, 1, 3}
	colPhaseShifts = [4]int{3, 0, 2, 1}
)

func rowTarget(key matrix.Matrix, row, shift int) int {
	return int(key.ReadNibble(
		matrix.Index{Row: row, Col: shift},
		matrix.Index{Row: row, Col: 4 + shift},
		matrix.Index{Row: row, Col: 8 + shift},
		matrix.Index{Row: row, Col: 12 + shift},
	))
}

func colTarget(key matrix.Matrix, col, shift int) int {
	return int(key.ReadNibble(
		matrix.Index{Row: shift, Col: col},
		matrix.Index{Row: 4 + shift, Col: col},
		matrix.Index{Row: 8 + shift, Col: col},
		matrix.Index{Row: 12 + shift, Col: col},
	))
}

// Scramble permutes a 16x16 message grid under a 16x16 key grid: a row
// phase swapping block-base rows with nibble-decoded targets, then the
// symmetric column phase. The key grid is only read, never written.
func Scramble(m, key matrix.Matrix) {
	for block := 0; block < 4; block++ {
		base := 4 * block
		for i, shift := range rowPhaseShifts {
			m.SwapRows(base, rowTarget(key, base+i, shift))
		}
	}
	for block := 0; block < 4; block++ {
		base := 4 * block
		for i, shift := range colPhaseShifts {
			m.SwapCols(base, colTarget(key, base+i, shift))
		}
	}
}

// Unscramble is the exact algebraic inverse of Scramble: the same taps are
// read, but both the block order and the in-block step order run reversed.
func Unscramble(m, key matrix.Matrix) {
	for block := 3; block >= 0; block-- {
		base := 4 * block
		for i := 3; i >= 0; i-- {
			m.SwapCols(base, colTarget(key, base+i, colPhaseShifts[i]))
		}
	}
	for block := 3; block >= 0; block-- {
		base := 4 * block
		for i := 3; i >= 0; i-- {
			m.SwapRows(base, rowTarget(key, base+i, rowPhaseShifts[i]))
		}
	}
}
