package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SearchRecorder exports per-search Prometheus metrics.
type SearchRecorder struct {
	duration prometheus.Histogram
	results  prometheus.Histogram
	corpus   prometheus.Histogram
}

// NewSearchRecorder registers search metrics on reg. Collectors already
// registered by another recorder are reused.
func NewSearchRecorder(reg prometheus.Registerer) (*SearchRecorder, error) {
	r := &SearchRecorder{
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Search duration in seconds, corpus load included",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		results: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Matched records per search before pagination",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		corpus: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_corpus_records",
			Help:      "Records scanned per search",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 12),
		}),
	}
	for _, c := range []*prometheus.Histogram{&r.duration, &r.results, &r.corpus} {
		if err := RegisterOrReuse(reg, c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveSearch implements usecase/search.Recorder.
func (r *SearchRecorder) ObserveSearch(duration time.Duration, corpus, matched int) {
	r.duration.Observe(duration.Seconds())
	r.corpus.Observe(float64(corpus))
	r.results.Observe(float64(matched))
}

// RegisterOrReuse registers a collector, or points c at the compatible one already registered.
func RegisterOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("register metric: %w", err)
	}
	return nil
}
