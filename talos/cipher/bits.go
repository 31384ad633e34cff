package cipher

// Bit ordering convention for the whole cipher: bytes explode LSB-first,
// so bit i of byte k lands at position 8k+i of the bit stream, and packing
// reverses it. ReadNibble on the matrix layer follows the same convention.

func explodeBytes(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	for _, b := range data {
		for i := 0; i < 8; i++ {
			bits = append(bits, (b>>uint(i))&1 != 0)
		}
	}
	return bits
}

func packBits(bits []bool) []byte {
	out := make([]byte, len(bits)/8)
	for i, v := range bits {
		if v {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}
