package libloc

import "bytes"

// Fixed-stride views over the AS, network, node and country segments.
// Each table is a thin wrapper around the segment's raw bytes; indexed
// access decodes one record in place without copying or allocating,
// per the Binary View Layer in spec.md §4.

type asEntry struct {
	ASN     uint32
	NameRef uint32
}

type asTable struct{ data []byte }

func (t asTable) count() int { return len(t.data) / asEntrySize }

func (t asTable) at(i int) asEntry {
	off := i * asEntrySize
	b := t.data[off : off+asEntrySize]
	return asEntry{
		ASN:     readU32(b, 0),
		NameRef: readU32(b, 4),
	}
}

// bsearchASN returns the index of the entry whose ASN equals asn, using
// binary search over the ascending-sorted AS table (spec.md §4.3).
func (t asTable) bsearchASN(asn uint32) (int, bool) {
	lo, hi := 0, t.count()
	for lo < hi {
		mid := lo + (hi-lo)/2
		v := t.at(mid).ASN
		switch {
		case v == asn:
			return mid, true
		case v < asn:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, false
}

type countryEntry struct {
	Code          [2]byte
	ContinentCode [2]byte
	NameRef       uint32
}

type countryTable struct{ data []byte }

func (t countryTable) count() int { return len(t.data) / countryEntrySize }

func (t countryTable) at(i int) countryEntry {
	off := i * countryEntrySize
	b := t.data[off : off+countryEntrySize]
	var e countryEntry
	copy(e.Code[:], b[0:2])
	copy(e.ContinentCode[:], b[2:4])
	e.NameRef = readU32(b, 4)
	return e
}

// bsearchCode returns the index of the entry whose code equals the
// given 2-byte ASCII code, using binary search over the ascending
// lexicographically-sorted country table (spec.md §4.3).
func (t countryTable) bsearchCode(code [2]byte) (int, bool) {
	lo, hi := 0, t.count()
	for lo < hi {
		mid := lo + (hi-lo)/2
		v := t.at(mid).Code
		switch c := bytes.Compare(v[:], code[:]); {
		case c == 0:
			return mid, true
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, false
}

type networkEntry struct {
	CountryCode [2]byte
	ASN         uint32
	Flags       uint16
}

type networkTable struct{ data []byte }

func (t networkTable) count() int { return len(t.data) / networkEntrySize }

func (t networkTable) at(i int) networkEntry {
	off := i * networkEntrySize
	b := t.data[off : off+networkEntrySize]
	var e networkEntry
	copy(e.CountryCode[:], b[0:2])
	// bytes 2-3 are padding
	e.ASN = readU32(b, 4)
	e.Flags = readU16(b, 8)
	// bytes 10-11 are padding
	return e
}

type nodeEntry struct {
	ChildZero uint32
	ChildOne  uint32
	Network   uint32
}

type nodeTable struct{ data []byte }

func (t nodeTable) count() int { return len(t.data) / nodeEntrySize }

func (t nodeTable) at(i uint32) nodeEntry {
	off := int(i) * nodeEntrySize
	b := t.data[off : off+nodeEntrySize]
	return nodeEntry{
		ChildZero: readU32(b, 0),
		ChildOne:  readU32(b, 4),
		Network:   readU32(b, 8),
	}
}
