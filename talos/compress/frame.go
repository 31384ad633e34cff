package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrFrameTruncated = errors.New("compress: framed payload truncated or corrupt")

// Frame prefixes a payload with its length as 4 bytes big endian. The
// cipher pads plaintext to whole 32-byte blocks with zeros; the prefix lets
// Unframe strip that padding before LZ4 sees it.
func Frame(data []byte) []byte {
	out := make([]byte, 4+len(data))
	binary.BigEndian.PutUint32(out, uint32(len(data)))
	copy(out[4:], data)
	return out
}

// Unframe recovers the exact payload from a framed, possibly zero-padded
// buffer.
func Unframe(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, ErrFrameTruncated
	}
	n := binary.BigEndian.Uint32(data)
	if int(n) > len(data)-4 {
		return nil, fmt.Errorf("%w: header wants %d bytes, have %d", ErrFrameTruncated, n, len(data)-4)
	}
	return data[4 : 4+n], nil
}
