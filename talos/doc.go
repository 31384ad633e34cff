// Package talos implements the Talos symmetric block cipher, whose
// confusion and diffusion come from two-dimensional cellular automata
// evolving on a toroidal grid instead of substitution tables.
//
// A 32-bit key seeds two 16x16 automata from embedded templates. For every
// 256-bit message block both automata advance eleven generations, and the
// transpose automaton's grid keys a row/column permutation network and an
// XOR layer over the block. Encryptor and decryptor replay the same
// deterministic key stream, so synchronization is the whole contract.
//
// Talos is a research cipher. It makes no claim of provable security and
// must not protect anything that matters.
package talos
