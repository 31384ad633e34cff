package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCharacter = errors.New("schedule: glyph not present in character map")
	ErrRaggedTable      = errors.New("schedule: template rows differ in length")
)

// Alphabet is the 32-symbol glyph set whose positions select key bits.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// CharMap maps template glyphs to cell values.
type CharMap map[rune]bool

// NewCharMap derives a glyph mapping from a 32-bit key: the glyph at
// alphabet position n maps to bit n of the key. The structural markers
// '#' (true) and '.' (false) are forced last, so they win over any
// alphabet-derived mapping.
func NewCharMap(key uint32) CharMap {
	cm := make(CharMap, len(Alphabet)+2)
	for n, glyph := range Alphabet {
		cm[glyph] = (key>>uint(n))&1 != 0
	}
	cm['#'] = true
	cm['.'] = false
	return cm
}

// ParseTable decodes a rectangular multi-line glyph grid into boolean rows.
// It fails with ErrInvalidCharacter for a glyph absent from the map and
// ErrRaggedTable for inconsistent row lengths.
func ParseTable(s string, cm CharMap) ([][]bool, error) {
	var table [][]bool
	width := -1
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		row := make([]bool, 0, len(line))
		for _, glyph := range line {
			v, ok := cm[glyph]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, glyph)
			}
			row = append(row, v)
		}
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, ErrRaggedTable
		}
		table = append(table, row)
	}
	return table, nil
}
