// Package compress provides optional LZ4 payload compression in front of
// the cipher. Compressing before encryption both shortens the ciphertext
// and removes plaintext structure; the output is framed LZ4, so a payload
// decrypted with the wrong key fails decompression loudly.
package compress

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"
)

var (
	ErrCompressionFailed   = errors.New("compress: compression failed")
	ErrDecompressionFailed = errors.New("compress: decompression failed")
)

// Level controls the speed/ratio tradeoff.
type Level int

const (
	Fast    Level = iota // Fastest, lower ratio
	Default              // Balanced
	Best                 // Best ratio, slower
)

// writerPool reuses LZ4 writers to reduce allocations.
var writerPool = sync.Pool{
	New: func() interface{} {
		return lz4.NewWriter(nil)
	},
}

// readerPool reuses LZ4 readers.
var readerPool = sync.Pool{
	New: func() interface{} {
		return lz4.NewReader(nil)
	},
}

// Compress compresses a payload using LZ4.
func Compress(data []byte, level Level) ([]byte, error) {
	var buf bytes.Buffer
	w := writerPool.Get().(*lz4.Writer)
	defer writerPool.Put(w)

	w.Reset(&buf)

	switch level {
	case Fast:
		_ = w.Apply(lz4.CompressionLevelOption(lz4.Fast))
	case Best:
		_ = w.Apply(lz4.CompressionLevelOption(lz4.Level9))
	default:
		_ = w.Apply(lz4.CompressionLevelOption(lz4.Level4))
	}

	if _, err := w.Write(data); err != nil {
		return nil, ErrCompressionFailed
	}
	if err := w.Close(); err != nil {
		return nil, ErrCompressionFailed
	}

	return buf.Bytes(), nil
}

// Decompress decompresses an LZ4-compressed payload.
func Decompress(data []byte) ([]byte, error) {
	r := readerPool.Get().(*lz4.Reader)
	defer readerPool.Put(r)

	r.Reset(bytes.NewReader(data))

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, ErrDecompressionFailed
	}
	return buf.Bytes(), nil
}
