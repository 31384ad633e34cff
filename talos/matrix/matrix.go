// Package matrix provides fixed-size two-dimensional binary matrices with
// toroidal index arithmetic: row and column indices wrap modulo the grid
// dimensions on both axes, so every integer index, including negative ones,
// addresses a valid cell.
//
// Two storage backends implement the same contract. BitMatrix packs cells
// into machine words and suits long-running automaton simulation; BoolMatrix
// keeps one bool per cell and suits message blocks touched once per cipher
// step. The two are behaviorally indistinguishable through the Matrix
// interface.
package matrix

import "errors"

var (
	ErrEmptyTable        = errors.New("matrix: table has no cells")
	ErrRaggedTable       = errors.New("matrix: table rows differ in length")
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// Index addresses a single cell. Out-of-range values, including negatives,
// wrap modulo the grid dimensions.
type Index struct {
	Row, Col int
}

// Matrix is the toroidal binary matrix contract shared by both backends.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At reads the cell at (row, col) after modulo reduction.
	At(row, col int) bool
	// Set writes the cell at (row, col) after modulo reduction and
	// returns the previous value.
	Set(row, col int, value bool) bool
	// XOR applies an element-wise XOR of other into the receiver.
	// It fails with ErrDimensionMismatch if the shapes differ.
	XOR(other Matrix) error
	// SwapRows exchanges two rows, each index modulo-reduced.
	SwapRows(a, b int)
	// SwapCols exchanges two columns, each index modulo-reduced.
	SwapCols(a, b int)
	// ReadNibble composes a 4-bit value from four cells; bit i is set
	// iff the cell at the i-th index is true (index 0 is the least
	// significant bit).
	ReadNibble(i0, i1, i2, i3 Index) uint8
	// Bits returns a copy of the cells as a flat row-major sequence.
	Bits() []bool
	// Popcount returns the number of true cells.
	Popcount() int
	// Clone returns an independent copy with the same backend.
	Clone() Matrix
}

// wrap reduces i into [0, n). Go's % keeps the dividend's sign, so negative
// indices need the extra addition.
func wrap(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

// checkTable validates a row-major bool table and reports its dimensions.
func checkTable(table [][]bool) (rows, cols int, err error) {
	rows = len(table)
	if rows > 0 {
		cols = len(table[0])
	}
	if cols == 0 {
		return 0, 0, ErrEmptyTable
	}
	for _, row := range table {
		if len(row) != cols {
			return 0, 0, ErrRaggedTable
		}
	}
	return rows, cols, nil
}

func checkBits(rows, cols int, bits []bool) error {
	if rows <= 0 || cols <= 0 {
		return ErrEmptyTable
	}
	if len(bits) != rows*cols {
		return ErrDimensionMismatch
	}
	return nil
}

func readNibble(m Matrix, i0, i1, i2, i3 Index) uint8 {
	var v uint8
	for i, idx := range [4]Index{i0, i1, i2, i3} {
		if m.At(idx.Row, idx.Col) {
			v |= 1 << i
		}
	}
	return v
}

// xorCells is the backend-agnostic XOR path, used when the operand types
// differ. Shape equality has already been checked by the caller.
func xorCells(dst, src Matrix) {
	for r := 0; r < dst.Rows(); r++ {
		for c := 0; c < dst.Cols(); c++ {
			dst.Set(r, c, dst.At(r, c) != src.At(r, c))
		}
	}
}
