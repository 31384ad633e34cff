// Command talos encrypts and decrypts data with the Talos
// cellular-automaton block cipher.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/talos-cipher/talos/talos/cipher"
	"github.com/talos-cipher/talos/talos/compress"
	"github.com/talos-cipher/talos/talos/schedule"
)

var (
	outPath       string
	key           uint32
	passphrase    string
	useCompress   bool
	useText       bool
	useDecompress bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "talos",
		Short: "cellular-automaton block cipher",
		Long: "talos encrypts and decrypts files with a symmetric block cipher " +
			"keyed by two cellular automata on a toroidal grid. The same key, " +
			"templates, and block order must be used on both sides.",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "output file (defaults to stdout)")
	rootCmd.PersistentFlags().Uint32VarP(&key, "key", "k", 0, "key as a decimal unsigned 32-bit integer")
	rootCmd.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "derive the key from a passphrase instead of --key")

	encryptCmd := &cobra.Command{
		Use:   "encrypt [file]",
		Short: "encrypt a file (random key if none given)",
		Args:  cobra.ExactArgs(1),
		RunE:  runEncrypt,
	}
	encryptCmd.Flags().BoolVarP(&useCompress, "compress", "z", false, "LZ4-compress the plaintext before encrypting")

	decryptCmd := &cobra.Command{
		Use:   "decrypt [file]",
		Short: "decrypt a file (a key is required)",
		Args:  cobra.ExactArgs(1),
		RunE:  runDecrypt,
	}
	decryptCmd.Flags().BoolVarP(&useDecompress, "decompress", "z", false, "LZ4-decompress the plaintext after decrypting")
	decryptCmd.Flags().BoolVarP(&useText, "text", "t", false, "require the plaintext to decode as UTF-8 text")

	rootCmd.AddCommand(encryptCmd, decryptCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "talos: %v\n", err)
		os.Exit(1)
	}
}

// resolveKey picks the session key from --key or --passphrase. Exactly one
// may be given; when neither is and random generation is allowed, a fresh
// key is drawn and announced on stderr so the user can decrypt later.
func resolveKey(cmd *cobra.Command, allowRandom bool) (uint32, error) {
	keySet := cmd.Flags().Changed("key")
	passSet := passphrase != ""

	switch {
	case keySet && passSet:
		return 0, errors.New("--key and --passphrase are mutually exclusive")
	case keySet:
		return key, nil
	case passSet:
		return schedule.KeyFromPassphrase(passphrase)
	case allowRandom:
		k, err := schedule.RandomKey()
		if err != nil {
			return 0, errors.Wrap(err, "generating a random key")
		}
		fmt.Fprintf(os.Stderr, "using key %d\n", k)
		return k, nil
	default:
		return 0, errors.New("decryption requires --key or --passphrase")
	}
}

func writeOutput(data []byte) error {
	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return errors.Wrapf(os.WriteFile(outPath, data, 0o644), "writing %s", outPath)
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	k, err := resolveKey(cmd, true)
	if err != nil {
		return err
	}
	plaintext, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "reading %s", args[0])
	}
	if useCompress {
		if plaintext, err = compress.Compress(plaintext, compress.Default); err != nil {
			return err
		}
		// The length frame lets decryption strip the cipher's zero
		// padding before LZ4 sees the payload.
		plaintext = compress.Frame(plaintext)
	}

	c, err := cipher.New(k)
	if err != nil {
		return err
	}
	ciphertext, err := c.Encrypt(plaintext)
	if err != nil {
		return err
	}
	return writeOutput(ciphertext)
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	k, err := resolveKey(cmd, false)
	if err != nil {
		return err
	}
	ciphertext, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "reading %s", args[0])
	}

	c, err := cipher.New(k)
	if err != nil {
		return err
	}

	var plaintext []byte
	if useText {
		text, err := c.DecryptText(ciphertext)
		if err != nil {
			return err
		}
		plaintext = []byte(text)
	} else {
		if plaintext, err = c.Decrypt(ciphertext); err != nil {
			return err
		}
	}
	if useDecompress {
		framed, err := compress.Unframe(plaintext)
		if err != nil {
			return errors.Wrap(err, "wrong key or payload was not compressed")
		}
		if plaintext, err = compress.Decompress(framed); err != nil {
			return errors.Wrap(err, "wrong key or payload was not compressed")
		}
	}
	return writeOutput(plaintext)
}
