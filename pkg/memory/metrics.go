package memory

import "github.com/prometheus/client_golang/prometheus"

// Metrics - optional Prometheus exposition for the control block lifecycle
//
// The CORE package never logs and never reaches into a global registry on
// its own (spec §7: "no retries, no backoff, no logging"); this file only
// accumulates plain counters as control blocks are allocated, destroyed
// and collected, and hands them out through a prometheus.Collector an
// embedding application can register itself. That mirrors how the pack's
// AleutianLocal services/trace/graph package defines its histograms: a
// package-local var block, but registration is the caller's decision.
//
// These counters are themselves part of the single-threaded model the rest
// of the library assumes (spec §5, Non-goals: multi-threaded safety): a
// Prometheus scrape racing a mutation on another goroutine is exactly as
// undefined as any other cross-thread access to this package.
type metrics struct {
	allocated       int
	destroyed       int
	collections     int
	cyclesReclaimed int
}

var collectorMetrics = &metrics{}

func (m *metrics) observeAlloc() {
	m.allocated++
}

func (m *metrics) observeDestroy() {
	m.destroyed++
}

func (m *metrics) observeCollection(reclaimed int) {
	m.collections++
	m.cyclesReclaimed += reclaimed
}

var (
	blocksAllocatedDesc = prometheus.NewDesc(
		"cyclic_memory_blocks_allocated_total",
		"Control blocks allocated by NewStrong over the process lifetime.",
		nil, nil,
	)
	blocksDestroyedDesc = prometheus.NewDesc(
		"cyclic_memory_blocks_destroyed_total",
		"Control blocks destroyed (strong and weak both reached zero).",
		nil, nil,
	)
	collectionsRunDesc = prometheus.NewDesc(
		"cyclic_memory_collect_cycles_runs_total",
		"Number of completed CollectCycles invocations.",
		nil, nil,
	)
	cyclesReclaimedDesc = prometheus.NewDesc(
		"cyclic_memory_cycles_reclaimed_total",
		"Payloads destroyed by the trial-deletion collector (White blocks).",
		nil, nil,
	)
	rootBufferDepthDesc = prometheus.NewDesc(
		"cyclic_memory_root_buffer_depth",
		"Current number of possible-cycle-root entries awaiting collection.",
		nil, nil,
	)
)

// PrometheusCollector returns a prometheus.Collector exposing this
// package's lifecycle counters. It is not registered anywhere by default;
// callers that want it scraped must register it with their own registry,
// e.g. prometheus.MustRegister(memory.PrometheusCollector()).
func PrometheusCollector() prometheus.Collector {
	return promCollector{m: collectorMetrics}
}

type promCollector struct {
	m *metrics
}

func (promCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- blocksAllocatedDesc
	ch <- blocksDestroyedDesc
	ch <- collectionsRunDesc
	ch <- cyclesReclaimedDesc
	ch <- rootBufferDepthDesc
}

func (c promCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(blocksAllocatedDesc, prometheus.CounterValue, float64(c.m.allocated))
	ch <- prometheus.MustNewConstMetric(blocksDestroyedDesc, prometheus.CounterValue, float64(c.m.destroyed))
	ch <- prometheus.MustNewConstMetric(collectionsRunDesc, prometheus.CounterValue, float64(c.m.collections))
	ch <- prometheus.MustNewConstMetric(cyclesReclaimedDesc, prometheus.CounterValue, float64(c.m.cyclesReclaimed))
	ch <- prometheus.MustNewConstMetric(rootBufferDepthDesc, prometheus.GaugeValue, float64(globalRoots.len()))
}
