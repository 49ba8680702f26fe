package libloc

import "net/netip"

// NetworkFlags is the bitfield stored in a network record (spec.md §3).
type NetworkFlags uint16

const (
	FlagAnonymousProxy   NetworkFlags = 0x0001
	FlagSatelliteProvider NetworkFlags = 0x0002
	FlagAnycast          NetworkFlags = 0x0004
	FlagDrop             NetworkFlags = 0x0008
)

// Network is a per-query view over one matched network record. It
// holds the record index, a decoded copy of the record and the matched
// prefix; it keeps no reference back to the Locations handle it was
// produced from, and it is cheap to construct.
type Network struct {
	idx    uint32
	prefix netip.Prefix
	rec    networkEntry
}

// CountryCode returns the 2-letter ISO code stored on the network record.
func (n *Network) CountryCode() string {
	return string(n.rec.CountryCode[:])
}

// ASN returns the network's autonomous system number, or 0 if none.
func (n *Network) ASN() uint32 {
	return n.rec.ASN
}

// Flags returns the raw flag bitfield.
func (n *Network) Flags() NetworkFlags {
	return NetworkFlags(n.rec.Flags)
}

func (n *Network) IsAnonymousProxy() bool    { return n.Flags()&FlagAnonymousProxy != 0 }
func (n *Network) IsSatelliteProvider() bool { return n.Flags()&FlagSatelliteProvider != 0 }
func (n *Network) IsAnycast() bool           { return n.Flags()&FlagAnycast != 0 }
func (n *Network) IsDrop() bool              { return n.Flags()&FlagDrop != 0 }

// Addrs returns the CIDR network this record covers: IPv4-shaped when
// the match depth was within the IPv4-mapped subtree, IPv6 otherwise
// (spec.md §4.5).
func (n *Network) Addrs() netip.Prefix {
	return n.prefix
}

// buildNetwork constructs the CIDR and resolves the matched record.
// depth is the bit-depth at which the match was recorded by the trie
// walk; key is the 16-byte form of the queried address (IPv4-mapped for
// IPv4 queries).
func (l *Locations) buildNetwork(key [16]byte, idx uint32, depth int) *Network {
	var prefix netip.Prefix
	mapped := [12]byte(key[:12]) == [12]byte{10: 0xff, 11: 0xff}
	if mapped && depth >= ipv4MappedDepth {
		plen := depth - ipv4MappedDepth
		var b4 [4]byte
		copy(b4[:], key[12:16])
		maskBytes(b4[:], plen)
		prefix = netip.PrefixFrom(netip.AddrFrom4(b4), plen)
	} else {
		var b16 [16]byte
		copy(b16[:], key[:])
		maskBytes(b16[:], depth)
		prefix = netip.PrefixFrom(netip.AddrFrom16(b16), depth)
	}

	return &Network{
		idx:    idx,
		prefix: prefix,
		rec:    l.networks.at(int(idx)),
	}
}

// maskBytes zeroes every bit of b beyond the first prefixLen bits, in place.
func maskBytes(b []byte, prefixLen int) {
	full := prefixLen / 8
	rem := prefixLen % 8
	for i := full; i < len(b); i++ {
		if i == full && rem > 0 {
			b[i] &= byte(0xFF << uint(8-rem))
			continue
		}
		b[i] = 0
	}
}
