// Package automata implements a two-dimensional binary cellular automaton
// over a toroidal grid. The cell space wraps on both axes, so the geometry
// is spherical: edge and corner cells draw their Moore neighbors from the
// opposite edges.
package automata

import (
	"strings"

	"github.com/talos-cipher/talos/talos/matrix"
)

// Glyphs used by the deterministic string rendering of a grid.
const (
	TrueChar  = '#'
	FalseChar = '.'
)

// Rule defines how an Automaton changes from one generation to the next.
// Both arrays are indexed by the Moore-neighborhood live-neighbor count
// (0 through 8).
type Rule struct {
	// Born: a dead cell with i live neighbors becomes alive iff Born[i].
	Born [9]bool
	// Dies: a live cell with i live neighbors dies iff Dies[i].
	Dies [9]bool
}

// Next returns the next state of a single cell.
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return !r.Dies[neighbors]
	}
	return r.Born[neighbors]
}

// Automaton owns a single grid and advances it synchronously under a Rule.
// There is no terminal state; it runs for as many generations as requested.
type Automaton struct {
	rule    Rule
	state   matrix.Matrix
	scratch matrix.Matrix
}

// New wraps an existing grid. The automaton takes exclusive ownership of
// state and mutates it in place across generations.
func New(state matrix.Matrix, rule Rule) *Automaton {
	return &Automaton{rule: rule, state: state}
}

// FromTable builds an automaton over packed-bit storage from a row-major
// bool table. It fails with matrix.ErrEmptyTable or matrix.ErrRaggedTable
// for malformed tables.
func FromTable(table [][]bool, rule Rule) (*Automaton, error) {
	state, err := matrix.NewBitMatrix(table)
	if err != nil {
		return nil, err
	}
	return New(state, rule), nil
}

// State exposes the current grid. Callers must not mutate it while the
// automaton is still in use.
func (a *Automaton) State() matrix.Matrix { return a.state }

// Rule returns the automaton's transition rule.
func (a *Automaton) Rule() Rule { return a.rule }

// AliveNeighbors counts the live cells among the eight toroidal Moore
// neighbors of (row, col).
func (a *Automaton) AliveNeighbors(row, col int) int {
	n := 0
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if a.state.At(r, c) {
				n++
			}
		}
	}
	if a.state.At(row, col) {
		n--
	}
	return n
}

// Step advances the grid by one synchronous generation. Every cell's next
// value is computed from the pre-generation grid via a second buffer; the
// buffers are swapped only after the full grid has been written.
func (a *Automaton) Step() {
	if a.scratch == nil {
		a.scratch = a.state.Clone()
	}
	rows, cols := a.state.Rows(), a.state.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a.scratch.Set(r, c, a.rule.Next(a.state.At(r, c), a.AliveNeighbors(r, c)))
		}
	}
	a.state, a.scratch = a.scratch, a.state
}

// Advance runs n generations.
func (a *Automaton) Advance(n int) {
	for i := 0; i < n; i++ {
		a.Step()
	}
}

// Popcount returns the number of live cells in the current grid.
func (a *Automaton) Popcount() int { return a.state.Popcount() }

// String renders the grid one glyph per cell, rows separated by newlines,
// '#' for live and '.' for dead. The rendering is stable for identical
// grids and is what the cycle-detection harness keys on.
func (a *Automaton) String() string {
	rows, cols := a.state.Rows(), a.state.Cols()
	var b strings.Builder
	b.Grow((cols + 1) * rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if a.state.At(r, c) {
				b.WriteRune(TrueChar)
			} else {
				b.WriteRune(FalseChar)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
