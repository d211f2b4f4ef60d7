// Package keystore owns the 32 bytes of XEX key material (encryption key
// and tweak key) used by nvstore, and implements its lifecycle: set, get,
// zero-check, and a best-effort erase.
package keystore

import (
	"errors"
	"runtime"
)

// KeySize is the length in bytes of each half-key (K_e, K_t).
const KeySize = 16

// CombinedKeySize is the length of the externally-visible key shape:
// K_e (bytes 0..16) followed by K_t (bytes 16..32).
const CombinedKeySize = 2 * KeySize

// ErrInvalidKeyLength is returned by SetKey when given anything other than
// CombinedKeySize bytes.
var ErrInvalidKeyLength = errors.New("keystore: key must be exactly 32 bytes (K_e || K_t)")

// Store holds the encryption key and tweak key for the lifetime of the
// process that owns it. The zero value is a valid, all-zero Store.
//
// A Store is not safe for concurrent use; callers needing concurrent access
// must serialize calls to SetKey, GetKey, IsKeyNonzero, and ClearKey
// themselves (§5).
type Store struct {
	encKey   [KeySize]byte
	tweakKey [KeySize]byte
}

// New returns a Store initialized to all-zero key material.
func New() *Store {
	return &Store{}
}

// SetKey installs a new combined key: in[0:16] becomes the encryption key,
// in[16:32] becomes the tweak key. It is the caller's responsibility to
// ensure the two halves are independent (K_e != K_t); SetKey does not
// enforce this.
func (s *Store) SetKey(in []byte) error {
	if len(in) != CombinedKeySize {
		return ErrInvalidKeyLength
	}

	copy(s.encKey[:], in[:KeySize])
	copy(s.tweakKey[:], in[KeySize:])

	return nil
}

// GetKey returns the combined key as K_e || K_t.
func (s *Store) GetKey() [CombinedKeySize]byte {
	var out [CombinedKeySize]byte
	copy(out[:KeySize], s.encKey[:])
	copy(out[KeySize:], s.tweakKey[:])
	return out
}

// EncryptionKey returns K_e, for use as the XEX encryption key.
func (s *Store) EncryptionKey() []byte {
	return s.encKey[:]
}

// TweakKey returns K_t, for use as the XEX tweak key.
func (s *Store) TweakKey() []byte {
	return s.tweakKey[:]
}

// IsKeyNonzero reports whether any byte of K_e || K_t is non-zero. All 32
// bytes are OR-accumulated without early exit, so the result does not
// depend on the position of the first non-zero byte.
func (s *Store) IsKeyNonzero() bool {
	var acc byte
	for _, b := range s.encKey {
		acc |= b
	}
	for _, b := range s.tweakKey {
		acc |= b
	}
	return acc != 0
}

// ClearKey scrubs the key material: it overwrites both halves with 0xFF,
// then with 0x00. Both passes use volatileFill so the compiler cannot
// elide them as dead stores to a value that is about to be overwritten
// again.
func (s *Store) ClearKey() {
	volatileFill(s.encKey[:], 0xFF)
	volatileFill(s.tweakKey[:], 0xFF)

	volatileFill(s.encKey[:], 0x00)
	volatileFill(s.tweakKey[:], 0x00)

	runtime.KeepAlive(s)
}

// volatileFill sets every byte of buf to v. It is written so that each
// store is observable rather than coalesced or dropped: the loop body
// touches buf through the slice on every iteration and runtime.KeepAlive
// anchors the slice's backing array past the final store, defeating
// dead-store elimination of a buffer whose only apparent use is to be
// immediately overwritten again.
func volatileFill(buf []byte, v byte) {
	for i := range buf {
		buf[i] = v
	}
	runtime.KeepAlive(buf)
}
