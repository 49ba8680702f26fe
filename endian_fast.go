//go:build !verified

package libloc

import "encoding/binary"

// Unverified record reads: segment bounds were checked once at Open,
// so indexed access below trusts the arithmetic and reinterprets bytes
// directly. This is the default build; see endian_verified.go for the
// `verified` tag's redundant per-field bounds assertions.

func readU16(b []byte, off int) uint16 {
	return binary.BigEndian.Uint16(b[off : off+2])
}

func readU32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off : off+4])
}

func readU64(b []byte, off int) uint64 {
	return binary.BigEndian.Uint64(b[off : off+8])
}
