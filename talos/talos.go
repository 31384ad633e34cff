package talos

import (
	"github.com/talos-cipher/talos/talos/cipher"
	"github.com/talos-cipher/talos/talos/schedule"
)

// Encrypt encrypts a message under a 32-bit key in a fresh cipher session.
// The ciphertext is always a whole number of 32-byte blocks; the final
// block of the message is zero-padded.
func Encrypt(plaintext []byte, key uint32) ([]byte, error) {
	c, err := cipher.New(key)
	if err != nil {
		return nil, err
	}
	return c.Encrypt(plaintext)
}

// Decrypt decrypts a ciphertext under a 32-bit key in a fresh cipher
// session. Zero padding from encryption is preserved.
func Decrypt(ciphertext []byte, key uint32) ([]byte, error) {
	c, err := cipher.New(key)
	if err != nil {
		return nil, err
	}
	return c.Decrypt(ciphertext)
}

// DecryptText decrypts and insists on valid UTF-8, the cipher's only
// implicit integrity check.
func DecryptText(ciphertext []byte, key uint32) (string, error) {
	c, err := cipher.New(key)
	if err != nil {
		return "", err
	}
	return c.DecryptText(ciphertext)
}

// RandomKey draws a fresh 32-bit key.
func RandomKey() (uint32, error) {
	return schedule.RandomKey()
}

// KeyFromPassphrase deterministically derives a 32-bit key from a
// passphrase.
func KeyFromPassphrase(passphrase string) (uint32, error) {
	return schedule.KeyFromPassphrase(passphrase)
}
