// Package xex implements the XEX tweakable-block-cipher construction
// (Rogaway, 2004) over a single AES-128 block, as used by nvstore to
// encrypt individual 16-byte NV blocks.
//
// With independent tweak and encryption keys and a per-block sequence
// number, this is bit-exact with XTS-AES-128 for data-unit lengths that are
// a multiple of 128 bits — ciphertext stealing is never needed here because
// every addressed region is a whole number of 16-byte blocks.
package xex

import (
	"crypto/aes"

	"github.com/jiankeliu5/hardware-bitcoin-wallet/internal/gf128"
)

// BlockSize is the size in bytes of the data unit id, plaintext, and
// ciphertext operated on by Encrypt and Decrypt.
const BlockSize = aes.BlockSize // 16

// deriveDelta computes the tweak offset: AES_encrypt(n, tweakKey), doubled
// in GF(2^128) seq times.
//
// Callers MUST NOT pass seq == 0 outside of test-vector mode: delta then
// equals AES_encrypt(n, tweakKey) directly, a known weak XEX configuration
// (Rogaway §6). nvstore always calls with seq == 1.
func deriveDelta(n [BlockSize]byte, seq uint8, tweakKey []byte) ([BlockSize]byte, error) {
	var delta [BlockSize]byte

	tweakCipher, err := aes.NewCipher(tweakKey)
	if err != nil {
		return delta, err
	}

	tweakCipher.Encrypt(delta[:], n[:])
	gf128.DoubleN(&delta, seq)

	return delta, nil
}

// Encrypt writes the XEX encryption of the 16-byte plaintext in into out,
// under data unit id n, block index seq, tweak key tweakKey and encryption
// key encKey. tweakKey is K_t (bytes 16..32 of the combined key) and encKey
// is K_e (bytes 0..16). tweakKey and encKey must each be 16 bytes and
// independent of one another.
func Encrypt(out, in []byte, n [BlockSize]byte, seq uint8, tweakKey, encKey []byte) error {
	return crypt(out, in, n, seq, tweakKey, encKey, true)
}

// Decrypt writes the XEX decryption of the 16-byte ciphertext in into out,
// under data unit id n, block index seq, tweak key tweakKey and encryption
// key encKey.
func Decrypt(out, in []byte, n [BlockSize]byte, seq uint8, tweakKey, encKey []byte) error {
	return crypt(out, in, n, seq, tweakKey, encKey, false)
}

func crypt(out, in []byte, n [BlockSize]byte, seq uint8, tweakKey, encKey []byte, encrypt bool) error {
	if len(in) != BlockSize || len(out) != BlockSize {
		return errInvalidBlockSize
	}

	delta, err := deriveDelta(n, seq, tweakKey)
	if err != nil {
		return err
	}

	encCipher, err := aes.NewCipher(encKey)
	if err != nil {
		return err
	}

	var buf [BlockSize]byte
	xor16(buf[:], in, delta[:])

	if encrypt {
		encCipher.Encrypt(out, buf[:])
	} else {
		encCipher.Decrypt(out, buf[:])
	}

	xor16(out, out, delta[:])

	return nil
}

// xor16 sets dst[i] = a[i] ^ b[i] for the first 16 bytes.
func xor16(dst, a, b []byte) {
	for i := 0; i < BlockSize; i++ {
		dst[i] = a[i] ^ b[i]
	}
}
