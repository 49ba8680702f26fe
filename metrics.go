package libloc

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics is a prometheus.Collector describing one Locations handle. It
// is not registered with any global registry by this package — callers
// that want it exposed call prometheus.Register(l.Collector()) themselves
// (SPEC_FULL.md §4.8). Counters are plain atomics so the hot lookup path
// never takes a lock.
type metrics struct {
	lookups    atomic.Uint64
	hits       atomic.Uint64
	durationNs atomic.Uint64

	asBytes        uint64
	networksBytes  uint64
	nodesBytes     uint64
	countriesBytes uint64
	poolBytes      uint64
}

var (
	lookupsDesc = prometheus.NewDesc(
		"libloc_lookups_total", "Total number of network lookups performed.", []string{"result"}, nil)
	durationDesc = prometheus.NewDesc(
		"libloc_lookup_duration_seconds_total", "Cumulative time spent in Lookup.", nil, nil)
	segmentBytesDesc = prometheus.NewDesc(
		"libloc_segment_bytes", "Size in bytes of each database segment as of Open.", []string{"segment"}, nil)
)

func (m *metrics) Describe(ch chan<- *prometheus.Desc) {
	ch <- lookupsDesc
	ch <- durationDesc
	ch <- segmentBytesDesc
}

func (m *metrics) Collect(ch chan<- prometheus.Metric) {
	hits := m.hits.Load()
	total := m.lookups.Load()
	ch <- prometheus.MustNewConstMetric(lookupsDesc, prometheus.CounterValue, float64(hits), "hit")
	ch <- prometheus.MustNewConstMetric(lookupsDesc, prometheus.CounterValue, float64(total-hits), "miss")
	ch <- prometheus.MustNewConstMetric(durationDesc, prometheus.CounterValue, float64(m.durationNs.Load())/1e9)

	for _, seg := range []struct {
		name string
		n    uint64
	}{
		{"as", m.asBytes},
		{"networks", m.networksBytes},
		{"nodes", m.nodesBytes},
		{"countries", m.countriesBytes},
		{"pool", m.poolBytes},
	} {
		ch <- prometheus.MustNewConstMetric(segmentBytesDesc, prometheus.GaugeValue, float64(seg.n), seg.name)
	}
}

func (m *metrics) recordLookup(hit bool, elapsedNs uint64) {
	m.lookups.Add(1)
	if hit {
		m.hits.Add(1)
	}
	m.durationNs.Add(elapsedNs)
}
