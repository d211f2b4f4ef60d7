package nvstore

// BlockSize is the fixed size in bytes of a single NV block and of the
// ciphertext/plaintext XEX operates on.
const BlockSize = 16

// Device is the contract nvstore consumes from the raw NV storage driver
// (§6): nv_read, nv_write and nv_flush, each returning a status that the
// core treats as fatal for that call when non-nil. Go's idiomatic
// substitute for the original's NvStatus enumeration is a plain error: nil
// is OK, any non-nil error is the equivalent of a non-OK NvStatus and is
// returned by Adapter wrapped with %w and the block address, so errors.Is
// and errors.As still match it.
//
// Device is assumed available and correct, possibly buffering writes until
// Flush is called (§5) — it is an external collaborator, not part of the
// core.
type Device interface {
	// ReadBlock reads exactly BlockSize bytes at the given block-aligned
	// address into buf.
	ReadBlock(block uint32, buf []byte) error

	// WriteBlock writes exactly BlockSize bytes from buf to the given
	// block-aligned address.
	WriteBlock(block uint32, buf []byte) error

	// Flush commits any buffered writes to persistent storage. It is never
	// called by Adapter itself (§5); callers needing durability call it
	// directly after a Write returns nil.
	Flush() error
}
