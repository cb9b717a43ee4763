package pow

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iotaledger/bctcurl/packages/ternary"
)

// Metrics contains the collectors updated by a Worker. A nil *Metrics ignores all updates.
type Metrics struct {
	batches    prometheus.Counter
	candidates prometheus.Counter
	found      prometheus.Counter
	duration   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with the given registerer.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pow_batches_total",
			Help: "Number of multi-lane register states handed to the transform.",
		}),
		candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pow_candidates_total",
			Help: "Number of nonce candidates tested, up to one per lane and batch.",
		}),
		found: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pow_found_total",
			Help: "Number of searches that found a nonce.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pow_mine_duration_seconds",
			Help:    "Duration of a nonce search.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}

	for _, collector := range []prometheus.Collector{m.batches, m.candidates, m.found, m.duration} {
		if err := registerer.Register(collector); err != nil {
			return nil, errors.Wrap(err, "failed to register PoW metrics")
		}
	}

	return m, nil
}

func (m *Metrics) batchProcessed(lanes int) {
	if m == nil {
		return
	}

	m.batches.Inc()
	if lanes > ternary.NumberOfLanes {
		lanes = ternary.NumberOfLanes
	}
	m.candidates.Add(float64(lanes))
}

func (m *Metrics) nonceFound() {
	if m == nil {
		return
	}

	m.found.Inc()
}

func (m *Metrics) searchFinished(duration time.Duration) {
	if m == nil {
		return
	}

	m.duration.Observe(duration.Seconds())
}
