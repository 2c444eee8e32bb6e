package metrics

import "github.com/prometheus/client_golang/prometheus"

// SearchMetrics observes retrieval pass execution. Registered explicitly
// (no init()) so library consumers can opt out.
type SearchMetrics struct {
	passesTotal prometheus.Counter
	passErrors  prometheus.Counter
	passHits    prometheus.Histogram
}

// NewSearchMetrics creates the search metric set.
func NewSearchMetrics() *SearchMetrics {
	return &SearchMetrics{
		passesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "driveseek",
			Name:      "search_passes_total",
			Help:      "Total number of retrieval passes executed",
		}),
		passErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "driveseek",
			Name:      "search_pass_errors_total",
			Help:      "Total number of retrieval passes that failed upstream",
		}),
		passHits: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "driveseek",
			Name:      "search_pass_hits",
			Help:      "Raw hits returned per retrieval pass, before dedup",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
	}
}

// Register registers the search metrics with the default registry.
func (m *SearchMetrics) Register() {
	prometheus.MustRegister(m.passesTotal, m.passErrors, m.passHits)
}

// PassExecuted records one successful pass with its raw hit count.
func (m *SearchMetrics) PassExecuted(hits int) {
	m.passesTotal.Inc()
	m.passHits.Observe(float64(hits))
}

// PassFailed records one pass that failed upstream.
func (m *SearchMetrics) PassFailed() {
	m.passesTotal.Inc()
	m.passErrors.Inc()
}
