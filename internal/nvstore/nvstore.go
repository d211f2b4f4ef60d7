// Package nvstore implements the encrypted NV adapter (§4.4): it maps
// arbitrary byte-range reads and writes onto 16-byte XEX-encrypted blocks
// addressed by their NV offset, using a keystore.Store for key material and
// a Device for the underlying persistence.
package nvstore

import (
	"encoding/binary"
	"fmt"

	"github.com/jiankeliu5/hardware-bitcoin-wallet/internal/keystore"
	"github.com/jiankeliu5/hardware-bitcoin-wallet/internal/xex"
)

// blockIndexSeq is the XEX block index Adapter always uses: every 16-byte
// NV block is its own data unit, so it is always the first (and only)
// block within that data unit. seq == 0 is deliberately never used here —
// see xex.deriveDelta's doc comment on the seq == 0 weakness.
const blockIndexSeq = 1

// Adapter is the encrypted read-modify-write layer over a Device. It holds
// no state of its own beyond its collaborators, matching §5's "one caller
// at a time" contract: a single Adapter is not safe for concurrent use.
type Adapter struct {
	dev  Device
	keys *keystore.Store
}

// New returns an Adapter backed by dev, using keys for XEX key material.
func New(dev Device, keys *keystore.Store) *Adapter {
	return &Adapter{dev: dev, keys: keys}
}

// blockStart returns B(a): the start of the 16-byte block containing a.
func blockStart(a uint32) uint32 {
	return a &^ (BlockSize - 1)
}

// blockOffset returns O(a): the offset of a within its containing block.
func blockOffset(a uint32) uint32 {
	return a & (BlockSize - 1)
}

// dataUnitID builds the DataUnitId for the block starting at the given
// address: 16 zero bytes with bytes 0..4 overwritten by the block address
// as u32 little-endian (§3).
func dataUnitID(block uint32) [xex.BlockSize]byte {
	var n [xex.BlockSize]byte
	binary.LittleEndian.PutUint32(n[0:4], block)
	return n
}

// Write overlays data into the NV range [address, address+length), reading
// and re-encrypting one 16-byte block at a time. length == 0 is a no-op
// that performs no NV access. On the first NV error, Write stops and
// returns that error; blocks already written remain written (§4.4, §7: no
// rollback).
func (a *Adapter) Write(data []byte, address uint32, length int) error {
	if length < 0 {
		panic("nvstore: negative length")
	}
	if length == 0 {
		return nil
	}
	if len(data) < length {
		panic("nvstore: data shorter than length")
	}

	first := blockStart(address)
	last := blockStart(address + uint32(length) - 1)
	offset := blockOffset(address)

	var consumed int

	for block := first; ; block += BlockSize {
		ciphertext := make([]byte, BlockSize)
		if err := a.dev.ReadBlock(block, ciphertext); err != nil {
			return fmt.Errorf("nvstore: read block %#x: %w", block, err)
		}

		plaintext := make([]byte, BlockSize)
		n := dataUnitID(block)
		if err := xex.Decrypt(plaintext, ciphertext, n, blockIndexSeq, a.keys.TweakKey(), a.keys.EncryptionKey()); err != nil {
			return fmt.Errorf("nvstore: decrypt block %#x: %w", block, err)
		}

		for offset < BlockSize && consumed < length {
			plaintext[offset] = data[consumed]
			offset++
			consumed++
		}

		if err := xex.Encrypt(ciphertext, plaintext, n, blockIndexSeq, a.keys.TweakKey(), a.keys.EncryptionKey()); err != nil {
			return fmt.Errorf("nvstore: encrypt block %#x: %w", block, err)
		}

		if err := a.dev.WriteBlock(block, ciphertext); err != nil {
			return fmt.Errorf("nvstore: write block %#x: %w", block, err)
		}

		if block == last {
			break
		}

		offset = 0
	}

	return nil
}

// Read fills out[:length] from the NV range [address, address+length),
// decrypting one 16-byte block at a time. length == 0 is a no-op that
// performs no NV access. On the first NV error, Read stops and returns
// that error.
func (a *Adapter) Read(out []byte, address uint32, length int) error {
	if length < 0 {
		panic("nvstore: negative length")
	}
	if length == 0 {
		return nil
	}
	if len(out) < length {
		panic("nvstore: out shorter than length")
	}

	first := blockStart(address)
	last := blockStart(address + uint32(length) - 1)
	offset := blockOffset(address)

	var produced int

	for block := first; ; block += BlockSize {
		ciphertext := make([]byte, BlockSize)
		if err := a.dev.ReadBlock(block, ciphertext); err != nil {
			return fmt.Errorf("nvstore: read block %#x: %w", block, err)
		}

		plaintext := make([]byte, BlockSize)
		n := dataUnitID(block)
		if err := xex.Decrypt(plaintext, ciphertext, n, blockIndexSeq, a.keys.TweakKey(), a.keys.EncryptionKey()); err != nil {
			return fmt.Errorf("nvstore: decrypt block %#x: %w", block, err)
		}

		for offset < BlockSize && produced < length {
			out[produced] = plaintext[offset]
			offset++
			produced++
		}

		if block == last {
			break
		}

		offset = 0
	}

	return nil
}
