package libloc

// Longest-prefix-match lookup over the packed binary trie (spec.md §4.4).
// The tree is keyed bit-by-bit, MSB first, over the 128 bits of an
// IPv4-mapped IPv6 address. A node's stored network index becomes the
// current "best" candidate whenever it's non-sentinel; the last such
// node seen along the downward walk wins, because the trie's
// topological depth equals the matched prefix's length.

const (
	noChild         = 0
	invalidNetwork  = 0xFFFFFFFF
	ipv4MappedDepth = 96
)

// trieCursor is a resumable position in the trie: the node currently
// occupied, how many bits of the key have been consumed to reach it, and
// the best (deepest) network match seen so far along the path.
type trieCursor struct {
	node      uint32
	depth     int
	best      uint32
	bestDepth int
}

// logCorruption reports an invariant violation before the caller
// panics. l.logger is nil when a Locations is built directly rather
// than through Open (as tests do), so this degrades silently rather
// than panicking on the logger itself.
func (l *Locations) logCorruption(invariant string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Error("libloc: corrupt database", append([]any{"invariant", invariant}, args...)...)
}

func (l *Locations) rootCursor() trieCursor {
	c := trieCursor{node: 0, depth: 0, best: invalidNetwork}
	if l.nodes.count() == 0 {
		return c
	}
	n := l.nodes.at(0)
	if n.Network != invalidNetwork {
		c.best = n.Network
		c.bestDepth = 0
	}
	return c
}

// walk advances cursor c by consuming bits of key from c.depth up to
// (but not including) stopBit, following child_zero/child_one and
// updating best/bestDepth whenever a visited node carries a network. It
// stops early the moment the next child index is the sentinel 0.
//
// A child index at or beyond the node count, or a network index at or
// beyond the network count, indicates a corrupt database; both panic
// per the documented panics-as-contract behavior (spec.md §4.4/§6/§7).
func (l *Locations) walk(key [16]byte, c trieCursor, stopBit int) trieCursor {
	nodeCount := uint32(l.nodes.count())
	networkCount := uint32(l.networks.count())

	for c.depth < stopBit {
		n := l.nodes.at(c.node)

		bit := (key[c.depth/8] >> uint(7-c.depth%8)) & 1
		var next uint32
		if bit == 1 {
			next = n.ChildOne
		} else {
			next = n.ChildZero
		}
		if next == noChild {
			break
		}
		if next >= nodeCount {
			l.logCorruption("child index in range", "node", c.node, "child", next, "node_count", nodeCount)
			panic("libloc: corrupt database: trie child index out of range")
		}

		c.node = next
		c.depth++

		nn := l.nodes.at(next)
		if nn.Network != invalidNetwork {
			if nn.Network >= networkCount {
				l.logCorruption("network index in range", "node", next, "network", nn.Network, "network_count", networkCount)
				panic("libloc: corrupt database: trie network index out of range")
			}
			c.best = nn.Network
			c.bestDepth = c.depth
		}
	}
	return c
}

// computeIPv4Cursor descends the fixed ::ffff:0:0/96 prefix (80 zero
// bits, 16 one bits) once at open time, so later IPv4 queries resume
// from here instead of re-walking those 96 levels (spec.md §4.4 IPv4
// Fast Path). If the subtree is absent the walk terminates early and
// later IPv4 lookups simply inherit whatever was found up to that
// point — there is nothing deeper to reach, so this degrades correctly
// without any special-casing at lookup time.
func (l *Locations) computeIPv4Cursor() trieCursor {
	var key [16]byte
	key[10] = 0xff
	key[11] = 0xff
	return l.walk(key, l.rootCursor(), ipv4MappedDepth)
}

// lookup performs the longest-prefix-match described in spec.md §4.4,
// starting from the IPv4 fast-path cursor when key is IPv4-mapped.
func (l *Locations) lookup(key [16]byte, isV4 bool) (networkIndex uint32, depth int, ok bool) {
	start := l.rootCursor()
	if isV4 {
		start = l.v4Cursor
	}
	result := l.walk(key, start, 128)
	if result.best == invalidNetwork {
		return 0, 0, false
	}
	return result.best, result.bestDepth, true
}
