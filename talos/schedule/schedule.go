// Package schedule turns a 32-bit key into the cipher's two seeded
// automata. The derivation is deterministic: a key selects a glyph-to-bit
// mapping, the two embedded templates decode through it into initial grids,
// and both automata share the single fixed transition rule. Seeding runs
// once per cipher session.
package schedule

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/talos-cipher/talos/talos/automata"
)

// CipherRule is the fixed transition rule shared by both automata: a dead
// cell with 2-6 live neighbors is born; a live cell survives only with 2-4.
var CipherRule = automata.Rule{
	Born: [9]bool{false, false, true, true, true, true, true, false, false},
	Dies: [9]bool{true, true, false, false, false, true, true, true, true},
}

// Seed derives the transpose and shift automata for a key. Both start from
// their template grids decoded through the key's character map.
func Seed(key uint32) (transpose, shift *automata.Automaton, err error) {
	cm := NewCharMap(key)

	tTable, err := ParseTable(TransposeTemplate, cm)
	if err != nil {
		return nil, nil, err
	}
	sTable, err := ParseTable(ShiftTemplate, cm)
	if err != nil {
		return nil, nil, err
	}

	transpose, err = automata.FromTable(tTable, CipherRule)
	if err != nil {
		return nil, nil, err
	}
	shift, err = automata.FromTable(sTable, CipherRule)
	if err != nil {
		return nil, nil, err
	}
	return transpose, shift, nil
}

// RandomKey draws a fresh 32-bit key. The source is crypto/rand for
// convenience; the cipher makes no security claim either way.
func RandomKey() (uint32, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// keyInfo binds passphrase-derived keys to this scheme.
var keyInfo = []byte("talos-key-v1")

// KeyFromPassphrase deterministically derives a 32-bit key from a
// passphrase using HKDF-SHA256.
func KeyFromPassphrase(passphrase string) (uint32, error) {
	hk := hkdf.New(sha256.New, []byte(passphrase), nil, keyInfo)
	var buf [4]byte
	if _, err := io.ReadFull(hk, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}
