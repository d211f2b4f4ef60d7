// Package gf128 implements the GF(2^128) "double" operation used to
// advance an XEX tweak from one block index to the next.
package gf128

// ReductionByte is the low byte of the reduction polynomial
// x^128 + x^7 + x^2 + x + 1, applied when a double operation carries out of
// the top bit.
const ReductionByte = 0x87

// Double overwrites delta, a 16-byte little-endian multi-precision integer,
// with 2*delta in GF(2^128) mod x^128 + x^7 + x^2 + x + 1.
//
// The carry-out is folded into byte 0 through a mask rather than a branch,
// so the reduction step does not take a data-dependent path.
func Double(delta *[16]byte) {
	var carry byte

	for i := 0; i < 16; i++ {
		top := delta[i] & 0x80
		delta[i] = delta[i]<<1 | carry
		carry = top >> 7
	}

	mask := -carry // 0x00 if carry == 0, 0xff if carry == 1
	delta[0] ^= ReductionByte & mask
}

// DoubleN applies Double n times in sequence, as required to advance an XEX
// tweak by a block index n within a data unit.
func DoubleN(delta *[16]byte, n uint8) {
	for i := uint8(0); i < n; i++ {
		Double(delta)
	}
}
