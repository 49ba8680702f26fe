package libloc

import (
	"crypto/rand"
	"log/slog"
	"net/netip"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Locations is a read-only handle onto an opened libloc v1 database. It
// is immutable after Open returns and safe for concurrent use by
// multiple goroutines without external locking (spec.md §5).
type Locations struct {
	m      mapping
	data   []byte
	header header

	as        asTable
	networks  networkTable
	nodes     nodeTable
	countries countryTable
	pool      stringPool

	v4Cursor trieCursor

	id      ulid.ULID
	logger  *slog.Logger
	metrics *metrics
}

// Open memory-maps path (falling back to a full read when mapping isn't
// available), parses and validates its header, and precomputes the IPv4
// fast-path cursor. The returned handle must be closed with Close.
func Open(path string, opts ...Option) (*Locations, error) {
	cfg := locationsConfig{logLevel: slog.LevelWarn}
	for _, o := range opts {
		o(&cfg)
	}

	m, err := acquire(path)
	if err != nil {
		return nil, err
	}

	data := m.Bytes()
	h, err := parseHeader(data)
	if err != nil {
		m.Close()
		return nil, err
	}

	l := &Locations{
		m:      m,
		data:   data,
		header: h,

		as:        asTable{data: segment(data, h.as)},
		networks:  networkTable{data: segment(data, h.networks)},
		nodes:     nodeTable{data: segment(data, h.nodes)},
		countries: countryTable{data: segment(data, h.countries)},
		pool:      stringPool{data: segment(data, h.pool)},

		id:     ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader),
		logger: discardLogger(),
	}

	switch {
	case cfg.logger != nil:
		l.logger = cfg.logger
	case cfg.logFile != "":
		l.logger = slog.New(rotatingFileHandler(cfg.logFile, cfg.logFileMaxSizeM, cfg.logFileBackups, cfg.logLevel))
	}

	if cfg.metricsEnabled {
		l.metrics = &metrics{
			asBytes:        uint64(h.as.Length),
			networksBytes:  uint64(h.networks.Length),
			nodesBytes:     uint64(h.nodes.Length),
			countriesBytes: uint64(h.countries.Length),
			poolBytes:      uint64(h.pool.Length),
		}
	}

	for _, seg := range []struct {
		name string
		r    fileRange
		w    uint32
	}{
		{"as", h.as, asEntrySize},
		{"networks", h.networks, networkEntrySize},
		{"nodes", h.nodes, nodeEntrySize},
		{"countries", h.countries, countryEntrySize},
		{"pool", h.pool, 1},
	} {
		l.logger.Debug("libloc: segment validated",
			"segment", seg.name, "offset", seg.r.Offset, "length", seg.r.Length, "record_width", seg.w)
	}

	l.v4Cursor = l.computeIPv4Cursor()

	l.logger.Info("libloc: database opened",
		"handle_id", l.id.String(),
		"as_count", l.as.count(),
		"network_count", l.networks.count(),
		"node_count", l.nodes.count(),
		"country_count", l.countries.count(),
		"pool_length", h.pool.Length)

	return l, nil
}

func segment(data []byte, r fileRange) []byte {
	return data[r.Offset : r.Offset+r.Length]
}

// Close releases the underlying mapping. It is not safe to use a
// Locations, or any Network/Country/AsInfo view produced from it, after
// Close returns.
func (l *Locations) Close() error {
	return l.m.Close()
}

// HandleID returns the ULID assigned to this handle at Open, useful for
// correlating log lines across a process that opens more than one
// database.
func (l *Locations) HandleID() string {
	return l.id.String()
}

// Collector returns a prometheus.Collector tracking this handle's
// lookup counters and segment sizes, or nil unless the handle was
// opened with WithMetrics. Registering it is the caller's
// responsibility; this package never touches a global registry.
func (l *Locations) Collector() prometheus.Collector {
	if l.metrics == nil {
		return nil
	}
	return l.metrics
}

// Lookup returns the most specific (longest-prefix) network record
// covering addr, if the database has one (spec.md §4.4).
func (l *Locations) Lookup(addr netip.Addr) (*Network, bool) {
	start := time.Now()

	key, isV4 := addrKey(addr)
	idx, depth, ok := l.lookup(key, isV4)

	if l.metrics != nil {
		l.metrics.recordLookup(ok, uint64(time.Since(start).Nanoseconds()))
	}
	if !ok {
		return nil, false
	}
	return l.buildNetwork(key, idx, depth), true
}

// addrKey renders addr as the 16-byte IPv4-mapped form the trie is keyed
// on, reporting whether addr was IPv4 (so Lookup can use the
// precomputed fast-path cursor instead of walking from the root).
func addrKey(addr netip.Addr) (key [16]byte, isV4 bool) {
	if addr.Is4() || addr.Is4In6() {
		b4 := addr.As4()
		key[10] = 0xff
		key[11] = 0xff
		copy(key[12:], b4[:])
		return key, true
	}
	return addr.As16(), false
}

// Country looks up country metadata by its 2-letter ISO code. The code
// is matched case-sensitively against the database's stored form
// (uppercase, per spec.md §3).
func (l *Locations) Country(code string) (*Country, bool) {
	if len(code) != 2 {
		return nil, false
	}
	var c [2]byte
	copy(c[:], code)
	i, ok := l.countries.bsearchCode(c)
	if !ok {
		return nil, false
	}
	return l.buildCountry(i), true
}

// As looks up autonomous system metadata by number.
func (l *Locations) As(asn uint32) (*AsInfo, bool) {
	i, ok := l.as.bsearchASN(asn)
	if !ok {
		return nil, false
	}
	return l.buildAsInfo(i), true
}

// CreatedAt returns the database's creation time as a Unix timestamp in
// seconds, exactly as stored in the header.
func (l *Locations) CreatedAt() uint64 {
	return l.header.createdAt
}

// Vendor resolves the database vendor string from the pool.
func (l *Locations) Vendor() (string, error) {
	return l.pool.resolve(l.header.vendorRef)
}

// Description resolves the database description string from the pool.
func (l *Locations) Description() (string, error) {
	return l.pool.resolve(l.header.descriptionRef)
}

// License resolves the database license string from the pool.
func (l *Locations) License() (string, error) {
	return l.pool.resolve(l.header.licenseRef)
}
