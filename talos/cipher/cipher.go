// Package cipher implements the Talos block transform: 256-bit message
// blocks are permuted and XORed against a per-block key stream drawn from
// two cellular automata advancing in lockstep.
//
// The key stream is stateful and cumulative. Before block i (0-indexed)
// both automata advance exactly GenerationsPerBlock generations, so block
// i is keyed by the automata at generation GenerationsPerBlock*(i+1) from
// the seeded state. Encryptor and decryptor must therefore process blocks
// in the same order; a Cipher value drives a single encrypt or decrypt
// pass and is not reusable.
package cipher

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/talos-cipher/talos/talos/automata"
	"github.com/talos-cipher/talos/talos/matrix"
	"github.com/talos-cipher/talos/talos/schedule"
)

const (
	// GridSize is the side length of the key and message grids.
	GridSize = 16
	// BlockBits is the cipher block size in bits.
	BlockBits = GridSize * GridSize
	// BlockBytes is the cipher block size in bytes.
	BlockBytes = BlockBits / 8
	// GenerationsPerBlock is the automaton advance applied before each block.
	GenerationsPerBlock = 11
)

var (
	ErrCiphertextLength = errors.New("cipher: ciphertext is not a whole number of 32-byte blocks")
	ErrInvalidPlaintext = errors.New("cipher: wrong key or malformed ciphertext")
)

// Cipher holds the two key-stream automata for one encrypt or decrypt pass.
type Cipher struct {
	transpose *automata.Automaton
	shift     *automata.Automaton
}

// New seeds a cipher session from a 32-bit key.
func New(key uint32) (*Cipher, error) {
	transpose, shift, err := schedule.Seed(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{transpose: transpose, shift: shift}, nil
}

// NewWithAutomata wraps pre-seeded automata. Both grids must be GridSize
// square; the caller hands over exclusive ownership.
func NewWithAutomata(transpose, shift *automata.Automaton) *Cipher {
	return &Cipher{transpose: transpose, shift: shift}
}

// advance moves both automata to the next block's key state. The shift
// automaton's grid is not consumed by the transform, but both sides of the
// protocol advance it identically, so it stays in lockstep here.
func (c *Cipher) advance() {
	c.transpose.Advance(GenerationsPerBlock)
	c.shift.Advance(GenerationsPerBlock)
}

// Encrypt consumes plaintext in 32-byte blocks (the final block zero-padded)
// and returns ciphertext whose length is always a multiple of 32 bytes.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	bits := explodeBytes(plaintext)
	if rem := len(bits) % BlockBits; rem != 0 {
		bits = append(bits, make([]bool, BlockBits-rem)...)
	}

	out := make([]byte, 0, len(bits)/8)
	for off := 0; off < len(bits); off += BlockBits {
		block, err := c.encryptBlock(bits[off : off+BlockBits])
		if err != nil {
			return nil, err
		}
		out = append(out, packBits(block)...)
	}
	return out, nil
}

func (c *Cipher) encryptBlock(bits []bool) ([]bool, error) {
	m, err := matrix.BoolMatrixFromBits(GridSize, GridSize, bits)
	if err != nil {
		return nil, err
	}
	c.advance()
	key := c.transpose.State()
	Scramble(m, key)
	if err := m.XOR(key); err != nil {
		return nil, err
	}
	return m.Bits(), nil
}

// Decrypt inverts Encrypt block by block. Zero padding applied during
// encryption is not stripped: the result is always a whole number of
// 32-byte blocks.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext)%BlockBytes != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrCiphertextLength, len(ciphertext))
	}

	bits := explodeBytes(ciphertext)
	out := make([]byte, 0, len(ciphertext))
	for off := 0; off < len(bits); off += BlockBits {
		block, err := c.decryptBlock(bits[off : off+BlockBits])
		if err != nil {
			return nil, err
		}
		out = append(out, packBits(block)...)
	}
	return out, nil
}

func (c *Cipher) decryptBlock(bits []bool) ([]bool, error) {
	m, err := matrix.BoolMatrixFromBits(GridSize, GridSize, bits)
	if err != nil {
		return nil, err
	}
	c.advance()
	key := c.transpose.State()
	if err := m.XOR(key); err != nil {
		return nil, err
	}
	Unscramble(m, key)
	return m.Bits(), nil
}

// DecryptText decrypts and additionally requires the plaintext to be valid
// UTF-8 — the cipher's only implicit integrity check. A failure almost
// always means the wrong key or corrupted ciphertext.
func (c *Cipher) DecryptText(ciphertext []byte) (string, error) {
	plain, err := c.Decrypt(ciphertext)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", ErrInvalidPlaintext
	}
	return string(plain), nil
}
