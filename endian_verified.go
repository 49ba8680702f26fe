//go:build verified

package libloc

import (
	"encoding/binary"
	"fmt"
)

// Verified record reads: every access re-asserts that the field fits
// within the slice before reinterpreting it, trading a branch per field
// for a documented, named panic if a layout assumption is ever violated
// by a future on-disk change. Corrupt databases already panic per
// spec.md §4.4/§6; this build tag just gives the panic a clearer origin.

func readU16(b []byte, off int) uint16 {
	if off < 0 || off+2 > len(b) {
		panic(fmt.Sprintf("libloc: verified read: u16 at %d out of range (len %d)", off, len(b)))
	}
	return binary.BigEndian.Uint16(b[off : off+2])
}

func readU32(b []byte, off int) uint32 {
	if off < 0 || off+4 > len(b) {
		panic(fmt.Sprintf("libloc: verified read: u32 at %d out of range (len %d)", off, len(b)))
	}
	return binary.BigEndian.Uint32(b[off : off+4])
}

func readU64(b []byte, off int) uint64 {
	if off < 0 || off+8 > len(b) {
		panic(fmt.Sprintf("libloc: verified read: u64 at %d out of range (len %d)", off, len(b)))
	}
	return binary.BigEndian.Uint64(b[off : off+8])
}
