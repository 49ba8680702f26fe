package libloc

import (
	"bytes"
	"encoding/binary"
)

// Binary layout of the libloc v1 header. Multi-byte integers are
// big-endian throughout the format, header included.
//
//	magic[7] version[1] created_at[8] vendor[4] description[4] license[4]
//	as[8] networks[8] nodes[8] countries[8] pool[8]
//	signature1[2048] signature2[2048] padding[32]
//
// Segment order within the header is this reader's own choice — the
// format doesn't mandate one, and readers are expected to consult the
// offsets rather than assume adjacency (spec.md §6).
const (
	magicSize      = 7
	versionSize    = 1
	createdAtSize  = 8
	refSize        = 4
	fileRangeSize  = 8
	sigSlotSize    = 2048
	sigSlotCount   = 2
	trailerPadding = 32

	headerSize = magicSize + versionSize + createdAtSize + 3*refSize +
		5*fileRangeSize + sigSlotCount*sigSlotSize + trailerPadding

	currentVersion = 0x01

	asEntrySize      = 8
	networkEntrySize = 12
	nodeEntrySize    = 12
	countryEntrySize = 8

	maxSignatureLength = sigSlotSize - 2 // first 2 bytes of a slot are its declared length
)

var magicBytes = [magicSize]byte{'L', 'O', 'C', 'D', 'B', 'X', 'X'}

// fileRange is an (offset, length) descriptor naming a segment of the file.
type fileRange struct {
	Offset uint32
	Length uint32
}

func (r fileRange) recordCount(width uint32) int {
	return int(r.Length / width)
}

// header holds the parsed, validated contents of a libloc v1 file header.
type header struct {
	createdAt      uint64
	vendorRef      uint32
	descriptionRef uint32
	licenseRef     uint32

	as        fileRange
	networks  fileRange
	nodes     fileRange
	countries fileRange
	pool      fileRange
}

func parseHeader(data []byte) (header, error) {
	var h header

	if len(data) < headerSize {
		return h, &OpenError{Op: "header", Err: ErrTooShort}
	}

	if !bytes.Equal(data[0:magicSize], magicBytes[:]) {
		return h, &OpenError{Op: "magic", Err: ErrBadMagic}
	}

	version := data[magicSize]
	if version != currentVersion {
		return h, &OpenError{Op: "version", Err: ErrUnsupportedVersion}
	}

	off := magicSize + versionSize
	h.createdAt = binary.BigEndian.Uint64(data[off : off+createdAtSize])
	off += createdAtSize

	h.vendorRef = binary.BigEndian.Uint32(data[off : off+refSize])
	off += refSize
	h.descriptionRef = binary.BigEndian.Uint32(data[off : off+refSize])
	off += refSize
	h.licenseRef = binary.BigEndian.Uint32(data[off : off+refSize])
	off += refSize

	ranges := make([]*fileRange, 0, 5)
	widths := make([]uint32, 0, 5)
	names := make([]string, 0, 5)

	addRange := func(dst *fileRange, width uint32, name string) {
		*dst = fileRange{
			Offset: binary.BigEndian.Uint32(data[off : off+4]),
			Length: binary.BigEndian.Uint32(data[off+4 : off+8]),
		}
		off += fileRangeSize
		ranges = append(ranges, dst)
		widths = append(widths, width)
		names = append(names, name)
	}

	addRange(&h.as, asEntrySize, "as")
	addRange(&h.networks, networkEntrySize, "networks")
	addRange(&h.nodes, nodeEntrySize, "nodes")
	addRange(&h.countries, countryEntrySize, "countries")
	addRange(&h.pool, 1, "pool")

	fileLen := uint32(len(data))
	for i, r := range ranges {
		if r.Length%widths[i] != 0 {
			return h, &OpenError{Op: names[i], Err: ErrMisalignedSegment}
		}
		end, overflow := addUint32(r.Offset, r.Length)
		if overflow || end > fileLen {
			return h, &OpenError{Op: names[i], Err: ErrSegmentOutOfBounds}
		}
	}

	// Two opaque signature slots: declared length (u16) followed by
	// padding. Signature verification is out of scope; we only need to
	// step past the slots and sanity-check the declared length.
	for i := 0; i < sigSlotCount; i++ {
		declared := binary.BigEndian.Uint16(data[off : off+2])
		if int(declared) > maxSignatureLength {
			return h, &OpenError{Op: "signature", Err: ErrSegmentOutOfBounds}
		}
		off += sigSlotSize
	}
	off += trailerPadding

	if h.networks.Length > 0 && h.nodes.recordCount(nodeEntrySize) < 1 {
		return h, &OpenError{Op: "nodes", Err: ErrSegmentOutOfBounds}
	}

	return h, nil
}

func addUint32(a, b uint32) (uint32, bool) {
	sum := a + b
	return sum, sum < a
}
