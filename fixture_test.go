package libloc

import (
	"bytes"
	"encoding/binary"
	"net/netip"
	"sort"
)

// testTrieBuilder assembles a node table bit-by-bit from a set of
// (prefix, network index) pairs, mirroring how a real libloc database's
// trie is built offline. It's only used to construct fixtures for
// tests, never by the reader itself.
type testTrieBuilder struct {
	nodes []nodeEntry
}

func newTestTrieBuilder() *testTrieBuilder {
	return &testTrieBuilder{nodes: []nodeEntry{{ChildZero: noChild, ChildOne: noChild, Network: invalidNetwork}}}
}

func (b *testTrieBuilder) insert(key [16]byte, bits int, networkIdx uint32) {
	cur := uint32(0)
	for d := 0; d < bits; d++ {
		bit := (key[d/8] >> uint(7-d%8)) & 1
		n := &b.nodes[cur]
		var next *uint32
		if bit == 1 {
			next = &n.ChildOne
		} else {
			next = &n.ChildZero
		}
		if *next == noChild {
			b.nodes = append(b.nodes, nodeEntry{ChildZero: noChild, ChildOne: noChild, Network: invalidNetwork})
			*next = uint32(len(b.nodes) - 1)
		}
		cur = *next
	}
	b.nodes[cur].Network = networkIdx
}

func (b *testTrieBuilder) bytes() []byte {
	buf := make([]byte, len(b.nodes)*nodeEntrySize)
	for i, n := range b.nodes {
		off := i * nodeEntrySize
		binary.BigEndian.PutUint32(buf[off:], n.ChildZero)
		binary.BigEndian.PutUint32(buf[off+4:], n.ChildOne)
		binary.BigEndian.PutUint32(buf[off+8:], n.Network)
	}
	return buf
}

// prefixKey renders prefix's address as a 16-byte trie key (IPv4-mapped
// for IPv4 prefixes) and returns the bit-length to insert at (96+prefix
// bits for v4).
func prefixKey(p netip.Prefix) (key [16]byte, bits int) {
	addr := p.Addr()
	if addr.Is4() {
		b4 := addr.As4()
		key[10], key[11] = 0xff, 0xff
		copy(key[12:], b4[:])
		return key, ipv4MappedDepth + p.Bits()
	}
	key = addr.As16()
	return key, p.Bits()
}

type fixtureAS struct {
	asn  uint32
	name string
}

type fixtureCountry struct {
	code, continent, name string
}

type fixtureNetwork struct {
	prefix  netip.Prefix
	country string
	asn     uint32
	flags   uint16
}

// buildFixtureDB serializes a complete, valid libloc v1 file from the
// given records, returning the raw bytes. It exists purely so tests can
// exercise the reader against something shaped like a real database
// without shipping a binary fixture file.
func buildFixtureDB(ass []fixtureAS, countries []fixtureCountry, networks []fixtureNetwork) []byte {
	sort.Slice(ass, func(i, j int) bool { return ass[i].asn < ass[j].asn })
	sort.Slice(countries, func(i, j int) bool { return countries[i].code < countries[j].code })

	var pool bytes.Buffer
	pool.WriteByte(0) // offset 0 is reserved: an empty string, never a real ref
	intern := func(s string) uint32 {
		off := uint32(pool.Len())
		pool.WriteString(s)
		pool.WriteByte(0)
		return off
	}

	vendorRef := intern("Test Vendor GmbH")
	descRef := intern("fixture database for libloc reader tests")
	licenseRef := intern("CC0")

	var asBuf bytes.Buffer
	for _, a := range ass {
		nameRef := intern(a.name)
		var rec [asEntrySize]byte
		binary.BigEndian.PutUint32(rec[0:], a.asn)
		binary.BigEndian.PutUint32(rec[4:], nameRef)
		asBuf.Write(rec[:])
	}

	var countryBuf bytes.Buffer
	for _, c := range countries {
		nameRef := intern(c.name)
		var rec [countryEntrySize]byte
		copy(rec[0:2], c.code)
		copy(rec[2:4], c.continent)
		binary.BigEndian.PutUint32(rec[4:], nameRef)
		countryBuf.Write(rec[:])
	}

	var networkBuf bytes.Buffer
	builder := newTestTrieBuilder()
	for i, n := range networks {
		var rec [networkEntrySize]byte
		copy(rec[0:2], n.country)
		binary.BigEndian.PutUint32(rec[4:], n.asn)
		binary.BigEndian.PutUint16(rec[8:], n.flags)
		networkBuf.Write(rec[:])

		key, bits := prefixKey(n.prefix)
		builder.insert(key, bits, uint32(i))
	}
	nodeBuf := builder.bytes()

	segStart := uint32(headerSize)
	asRange := fileRange{Offset: segStart, Length: uint32(asBuf.Len())}
	segStart += asRange.Length
	netRange := fileRange{Offset: segStart, Length: uint32(networkBuf.Len())}
	segStart += netRange.Length
	nodeRange := fileRange{Offset: segStart, Length: uint32(len(nodeBuf))}
	segStart += nodeRange.Length
	countryRange := fileRange{Offset: segStart, Length: uint32(countryBuf.Len())}
	segStart += countryRange.Length
	poolRange := fileRange{Offset: segStart, Length: uint32(pool.Len())}
	segStart += poolRange.Length

	var buf bytes.Buffer
	buf.Write(magicBytes[:])
	buf.WriteByte(currentVersion)

	var createdAt [8]byte
	binary.BigEndian.PutUint64(createdAt[:], 1700000000)
	buf.Write(createdAt[:])

	var refs [12]byte
	binary.BigEndian.PutUint32(refs[0:], vendorRef)
	binary.BigEndian.PutUint32(refs[4:], descRef)
	binary.BigEndian.PutUint32(refs[8:], licenseRef)
	buf.Write(refs[:])

	writeRange := func(r fileRange) {
		var b [8]byte
		binary.BigEndian.PutUint32(b[0:], r.Offset)
		binary.BigEndian.PutUint32(b[4:], r.Length)
		buf.Write(b[:])
	}
	writeRange(asRange)
	writeRange(netRange)
	writeRange(nodeRange)
	writeRange(countryRange)
	writeRange(poolRange)

	sigSlot := make([]byte, sigSlotSize)
	buf.Write(sigSlot)
	buf.Write(sigSlot)
	buf.Write(make([]byte, trailerPadding))

	if buf.Len() != headerSize {
		panic("fixture header size drifted out of sync with headerSize")
	}

	buf.Write(asBuf.Bytes())
	buf.Write(networkBuf.Bytes())
	buf.Write(nodeBuf)
	buf.Write(countryBuf.Bytes())
	buf.Write(pool.Bytes())

	return buf.Bytes()
}
