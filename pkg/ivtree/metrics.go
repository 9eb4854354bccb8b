package ivtree

import "github.com/prometheus/client_golang/prometheus"

// Metrics is an optional set of Prometheus collectors a Tree reports
// through when attached via Tree.Instrument. A Tree works identically
// with no Metrics attached; this only exists for callers that already run
// a Prometheus registry and want node counts and operation rates for
// free.
type Metrics struct {
	size    prometheus.Gauge
	inserts prometheus.Counter
	erases  prometheus.Counter
	finds   prometheus.Counter
}

// NewMetrics builds a Metrics with the given namespace/subsystem prefix,
// ready to be registered and passed to Tree.Instrument.
func NewMetrics(namespace, subsystem string) *Metrics {
	return &Metrics{
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "size",
			Help:      "Number of intervals currently stored in the tree.",
		}),
		inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "inserts_total",
			Help:      "Total number of intervals inserted.",
		}),
		erases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "erases_total",
			Help:      "Total number of intervals erased.",
		}),
		finds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "finds_total",
			Help:      "Total number of overlap queries started.",
		}),
	}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.size.Describe(ch)
	m.inserts.Describe(ch)
	m.erases.Describe(ch)
	m.finds.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.size.Collect(ch)
	m.inserts.Collect(ch)
	m.erases.Collect(ch)
	m.finds.Collect(ch)
}
