package matrix

import "math/bits"

const wordBits = 32

// BitMatrix stores cells packed into 32-bit words in row-major bit order.
type BitMatrix struct {
	rows, cols int
	words      []uint32
}

// NewBitMatrix copies a row-major bool table into packed storage.
func NewBitMatrix(table [][]bool) (*BitMatrix, error) {
	rows, cols, err := checkTable(table)
	if err != nil {
		return nil, err
	}
	m := newBitMatrix(rows, cols)
	for r, row := range table {
		for c, v := range row {
			if v {
				m.words[m.word(r, c)] |= m.mask(r, c)
			}
		}
	}
	return m, nil
}

// BitMatrixFromBits builds a rows×cols matrix from a flat row-major bit
// sequence of exactly rows*cols elements.
func BitMatrixFromBits(rows, cols int, bitseq []bool) (*BitMatrix, error) {
	if err := checkBits(rows, cols, bitseq); err != nil {
		return nil, err
	}
	m := newBitMatrix(rows, cols)
	for i, v := range bitseq {
		if v {
			m.words[i/wordBits] |= 1 << (i % wordBits)
		}
	}
	return m, nil
}

func newBitMatrix(rows, cols int) *BitMatrix {
	n := (rows*cols + wordBits - 1) / wordBits
	return &BitMatrix{rows: rows, cols: cols, words: make([]uint32, n)}
}

func (m *BitMatrix) word(row, col int) int {
	return (wrap(row, m.rows)*m.cols + wrap(col, m.cols)) / wordBits
}

func (m *BitMatrix) mask(row, col int) uint32 {
	return 1 << uint((wrap(row, m.rows)*m.cols+wrap(col, m.cols))%wordBits)
}

func (m *BitMatrix) Rows() int { return m.rows }
func (m *BitMatrix) Cols() int { return m.cols }

func (m *BitMatrix) At(row, col int) bool {
	return m.words[m.word(row, col)]&m.mask(row, col) != 0
}

func (m *BitMatrix) Set(row, col int, value bool) bool {
	w, mask := m.word(row, col), m.mask(row, col)
	prev := m.words[w]&mask != 0
	if value {
		m.words[w] |= mask
	} else {
		m.words[w] &^= mask
	}
	return prev
}

func (m *BitMatrix) XOR(other Matrix) error {
	if other.Rows() != m.rows || other.Cols() != m.cols {
		return ErrDimensionMismatch
	}
	if o, ok := other.(*BitMatrix); ok {
		for i := range m.words {
			m.words[i] ^= o.words[i]
		}
		return nil
	}
	xorCells(m, other)
	return nil
}

func (m *BitMatrix) SwapRows(a, b int) {
	a, b = wrap(a, m.rows), wrap(b, m.rows)
	if a == b {
		return
	}
	for c := 0; c < m.cols; c++ {
		va, vb := m.At(a, c), m.At(b, c)
		m.Set(a, c, vb)
		m.Set(b, c, va)
	}
}

func (m *BitMatrix) SwapCols(a, b int) {
	a, b = wrap(a, m.cols), wrap(b, m.cols)
	if a == b {
		return
	}
	for r := 0; r < m.rows; r++ {
		va, vb := m.At(r, a), m.At(r, b)
		m.Set(r, a, vb)
		m.Set(r, b, va)
	}
}

func (m *BitMatrix) ReadNibble(i0, i1, i2, i3 Index) uint8 {
	return readNibble(m, i0, i1, i2, i3)
}

func (m *BitMatrix) Bits() []bool {
	out := make([]bool, m.rows*m.cols)
	for i := range out {
		out[i] = m.words[i/wordBits]&(1<<(i%wordBits)) != 0
	}
	return out
}

func (m *BitMatrix) Popcount() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount32(w)
	}
	return n
}

func (m *BitMatrix) Clone() Matrix {
	words := make([]uint32, len(m.words))
	copy(words, m.words)
	return &BitMatrix{rows: m.rows, cols: m.cols, words: words}
}
