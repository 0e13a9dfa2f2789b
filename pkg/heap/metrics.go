package heap

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opInsert     = "insert"
	opExtractMin = "extract_min"
	opSearch     = "search"
	opSort       = "sort"
)

// Metrics counts heap operations. A nil *Metrics is valid and records
// nothing. The collectors may be shared by several heaps.
type Metrics struct {
	operations   *prometheus.CounterVec
	extractEmpty prometheus.Counter
	size         prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		operations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "intheap_operations_total",
			Help: "Total number of heap operations by type.",
		}, []string{"op"}),
		extractEmpty: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "intheap_extract_empty_total",
			Help: "Total number of extract-min calls on an empty heap.",
		}),
		size: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "intheap_size",
			Help: "Number of values in the heap after the last insert or extract.",
		}),
	}
}

func (m *Metrics) observe(op string, size int) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op).Inc()
	switch op {
	case opInsert, opExtractMin:
		m.size.Set(float64(size))
	}
}

func (m *Metrics) observeEmpty() {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(opExtractMin).Inc()
	m.extractEmpty.Inc()
}
