package matrix

// BoolMatrix stores one bool per cell in a flat row-major slice.
type BoolMatrix struct {
	rows, cols int
	cells      []bool
}

// NewBoolMatrix copies a row-major bool table into per-cell storage.
func NewBoolMatrix(table [][]bool) (*BoolMatrix, error) {
	rows, cols, err := checkTable(table)
	if err != nil {
		return nil, err
	}
	m := &BoolMatrix{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
	for r, row := range table {
		copy(m.cells[r*cols:], row)
	}
	return m, nil
}

// BoolMatrixFromBits builds a rows×cols matrix from a flat row-major bit
// sequence of exactly rows*cols elements.
func BoolMatrixFromBits(rows, cols int, bitseq []bool) (*BoolMatrix, error) {
	if err := checkBits(rows, cols, bitseq); err != nil {
		return nil, err
	}
	cells := make([]bool, len(bitseq))
	copy(cells, bitseq)
	return &BoolMatrix{rows: rows, cols: cols, cells: cells}, nil
}

func (m *BoolMatrix) index(row, col int) int {
	return wrap(row, m.rows)*m.cols + wrap(col, m.cols)
}

func (m *BoolMatrix) Rows() int { return m.rows }
func (m *BoolMatrix) Cols() int { return m.cols }

func (m *BoolMatrix) At(row, col int) bool {
	return m.cells[m.index(row, col)]
}

func (m *BoolMatrix) Set(row, col int, value bool) bool {
	i := m.index(row, col)
	prev := m.cells[i]
	m.cells[i] = value
	return prev
}

func (m *BoolMatrix) XOR(other Matrix) error {
	if other.Rows() != m.rows || other.Cols() != m.cols {
		return ErrDimensionMismatch
	}
	if o, ok := other.(*BoolMatrix); ok {
		for i := range m.cells {
			m.cells[i] = m.cells[i] != o.cells[i]
		}
		return nil
	}
	xorCells(m, other)
	return nil
}

func (m *BoolMatrix) SwapRows(a, b int) {
	a, b = wrap(a, m.rows), wrap(b, m.rows)
	if a == b {
		return
	}
	ra := m.cells[a*m.cols : (a+1)*m.cols]
	rb := m.cells[b*m.cols : (b+1)*m.cols]
	for c := range ra {
		ra[c], rb[c] = rb[c], ra[c]
	}
}

func (m *BoolMatrix) SwapCols(a, b int) {
	a, b = wrap(a, m.cols), wrap(b, m.cols)
	if a == b {
		return
	}
	for r := 0; r < m.rows; r++ {
		i, j := r*m.cols+a, r*m.cols+b
		m.cells[i], m.cells[j] = m.cells[j], m.cells[i]
	}
}

func (m *BoolMatrix) ReadNibble(i0, i1, i2, i3 Index) uint8 {
	return readNibble(m, i0, i1, i2, i3)
}

func (m *BoolMatrix) Bits() []bool {
	out := make([]bool, len(m.cells))
	copy(out, m.cells)
	return out
}

func (m *BoolMatrix) Popcount() int {
	n := 0
	for _, v := range m.cells {
		if v {
			n++
		}
	}
	return n
}

func (m *BoolMatrix) Clone() Matrix {
	cells := make([]bool, len(m.cells))
	copy(cells, m.cells)
	return &BoolMatrix{rows: m.rows, cols: m.cols, cells: cells}
}
