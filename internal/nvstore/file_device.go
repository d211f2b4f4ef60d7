package nvstore

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// preambleMagic identifies a file as a walletnv NV image.
const preambleMagic = "WNV1"

// preambleSize is the size in bytes of the unencrypted header that precedes
// the addressable NV region within a FileDevice's backing file. It exists
// only so that a plain OS file can stand in for the raw flash/EEPROM device
// the original design targets (§9); the core never reads or writes it, and
// it is not part of any Block.
const preambleSize = 4 + 1 + 16 + 8 // magic + version + uuid + declared size

const preambleVersion = 1

// FileDevice is a Device backed by a regular OS file, standing in for the
// byte-addressable NV storage device of §6. It carries a small unencrypted
// preamble (magic, format version, UUID, declared size) ahead of the
// addressable region, so NV address 0 sits at a fixed offset within the
// host file.
type FileDevice struct {
	file *os.File
	// offset is the byte offset of the addressable NV region within file,
	// i.e. the size of the preamble.
	offset int64
	// size is the declared size in bytes of the addressable NV region.
	size int64
	// id is the preamble UUID, surfaced for operator diagnostics only
	// (printed by keystatus in cmd); the core never consults it.
	id uuid.UUID
}

// CreateFileDevice creates a new NV image file at path with the given
// addressable size (which must be a multiple of BlockSize), writes a fresh
// preamble with a newly generated UUID, and zero-fills the addressable
// region.
func CreateFileDevice(path string, size int64) (*FileDevice, error) {
	if size%BlockSize != 0 {
		return nil, fmt.Errorf("nvstore: size %d is not a multiple of %d", size, BlockSize)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, fmt.Errorf("nvstore: create %s: %w", path, err)
	}

	id := uuid.New()

	dev := &FileDevice{file: f, offset: preambleSize, size: size, id: id}
	if err := dev.writePreamble(); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.Truncate(preambleSize + size); err != nil {
		f.Close()
		return nil, fmt.Errorf("nvstore: truncate %s: %w", path, err)
	}

	return dev, nil
}

// OpenFileDevice opens an existing NV image file at path and validates its
// preamble.
func OpenFileDevice(path string) (*FileDevice, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("nvstore: open %s: %w", path, err)
	}

	dev := &FileDevice{file: f, offset: preambleSize}
	if err := dev.readPreamble(); err != nil {
		f.Close()
		return nil, err
	}

	return dev, nil
}

func (d *FileDevice) writePreamble() error {
	var hdr [preambleSize]byte
	copy(hdr[0:4], preambleMagic)
	hdr[4] = preambleVersion
	copy(hdr[5:21], d.id[:])
	binary.LittleEndian.PutUint64(hdr[21:29], uint64(d.size))

	if _, err := d.file.WriteAt(hdr[:], 0); err != nil {
		return fmt.Errorf("nvstore: write preamble: %w", err)
	}

	return nil
}

func (d *FileDevice) readPreamble() error {
	var hdr [preambleSize]byte
	if _, err := io.ReadFull(d.file, hdr[:]); err != nil {
		return fmt.Errorf("nvstore: read preamble: %w", err)
	}

	if string(hdr[0:4]) != preambleMagic {
		return fmt.Errorf("nvstore: not a walletnv image (bad magic)")
	}
	if hdr[4] != preambleVersion {
		return fmt.Errorf("nvstore: unsupported image version %d", hdr[4])
	}

	copy(d.id[:], hdr[5:21])
	d.size = int64(binary.LittleEndian.Uint64(hdr[21:29]))

	return nil
}

// ID returns the NV image's preamble UUID.
func (d *FileDevice) ID() uuid.UUID {
	return d.id
}

// Size returns the declared size in bytes of the addressable NV region.
func (d *FileDevice) Size() int64 {
	return d.size
}

// ReadBlock implements Device.
func (d *FileDevice) ReadBlock(block uint32, buf []byte) error {
	if len(buf) != BlockSize {
		return fmt.Errorf("nvstore: ReadBlock buf must be %d bytes", BlockSize)
	}
	if err := d.checkRange(block); err != nil {
		return err
	}

	_, err := d.file.ReadAt(buf, d.offset+int64(block))
	if err != nil {
		return fmt.Errorf("nvstore: read block %#x: %w", block, err)
	}

	return nil
}

// WriteBlock implements Device.
func (d *FileDevice) WriteBlock(block uint32, buf []byte) error {
	if len(buf) != BlockSize {
		return fmt.Errorf("nvstore: WriteBlock buf must be %d bytes", BlockSize)
	}
	if err := d.checkRange(block); err != nil {
		return err
	}

	_, err := d.file.WriteAt(buf, d.offset+int64(block))
	if err != nil {
		return fmt.Errorf("nvstore: write block %#x: %w", block, err)
	}

	return nil
}

// Flush implements Device by syncing the backing file to persistent
// storage (§6's nv_flush: never called by Adapter itself, exposed for
// callers needing durability).
func (d *FileDevice) Flush() error {
	if err := d.file.Sync(); err != nil {
		return fmt.Errorf("nvstore: flush: %w", err)
	}
	return nil
}

// Close releases the underlying file handle.
func (d *FileDevice) Close() error {
	return d.file.Close()
}

func (d *FileDevice) checkRange(block uint32) error {
	if int64(block)+BlockSize > d.size {
		return fmt.Errorf("nvstore: block %#x out of range (size %d)", block, d.size)
	}
	return nil
}
