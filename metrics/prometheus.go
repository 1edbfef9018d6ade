// Package metrics provides a Prometheus implementation of the cache's
// Metrics interface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/krisalay/timed-cache/types"
)

// Prometheus counts cache lifecycle events as Prometheus counters.
type Prometheus struct {
	hits          prometheus.Counter
	misses        prometheus.Counter
	expirations   prometheus.Counter
	computes      prometheus.Counter
	computeErrors prometheus.Counter
}

var _ types.Metrics = (*Prometheus)(nil)

// NewPrometheus creates a Prometheus metrics sink with the given
// namespace, registering its counters on reg. A nil reg registers on the
// default registerer.
func NewPrometheus(namespace string, reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Prometheus{
		hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total number of fresh entries served without computing",
		}),
		misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total number of lookups that found no entry",
		}),
		expirations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "expirations_total",
			Help:      "Total number of lookups that found an entry too old to serve",
		}),
		computes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "computes_total",
			Help:      "Total number of caller-supplied computes that ran",
		}),
		computeErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "compute_errors_total",
			Help:      "Total number of computes that failed",
		}),
	}
}

func (m *Prometheus) Hit()          { m.hits.Inc() }
func (m *Prometheus) Miss()         { m.misses.Inc() }
func (m *Prometheus) Expire()       { m.expirations.Inc() }
func (m *Prometheus) Compute()      { m.computes.Inc() }
func (m *Prometheus) ComputeError() { m.computeErrors.Inc() }
