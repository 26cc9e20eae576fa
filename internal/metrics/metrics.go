// Package metrics defines the Prometheus instrumentation a Prover
// exposes over its saturation loop. Each Prover owns its own Registry
// rather than registering against prometheus.DefaultRegisterer, so
// that multiple independent provers in one process never collide on
// metric names.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry bundles one Prover's saturation metrics behind its own
// prometheus.Registerer.
type Registry struct {
	reg *prometheus.Registry

	ActiveSize  prometheus.Gauge
	PassiveSize prometheus.Gauge
	Steps       prometheus.Counter
	Generated   *prometheus.CounterVec
}

// New constructs and registers a fresh set of saturation metrics.
func New() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		reg: reg,
		ActiveSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "zeta",
			Subsystem: "saturation",
			Name:      "active_clauses",
			Help:      "Number of clauses currently in the active set.",
		}),
		PassiveSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "zeta",
			Subsystem: "saturation",
			Name:      "passive_clauses",
			Help:      "Number of clauses currently queued in the passive set.",
		}),
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "zeta",
			Subsystem: "saturation",
			Name:      "given_clause_steps_total",
			Help:      "Number of given-clause steps taken.",
		}),
		Generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zeta",
			Subsystem: "saturation",
			Name:      "clauses_generated_total",
			Help:      "Number of clauses generated, by inference rule.",
		}, []string{"rule"}),
	}

	reg.MustRegister(r.ActiveSize, r.PassiveSize, r.Steps, r.Generated)
	return r
}

// Gatherer exposes the underlying registry for an HTTP /metrics
// handler or a test scrape, without handing out MustRegister access.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// Observe records one given-clause step's outcome: the post-step
// active/passive sizes and how many clauses each rule produced.
func (r *Registry) Observe(activeSize, passiveSize int, generatedByRule map[string]int) {
	r.ActiveSize.Set(float64(activeSize))
	r.PassiveSize.Set(float64(passiveSize))
	r.Steps.Inc()
	for rule, n := range generatedByRule {
		r.Generated.WithLabelValues(rule).Add(float64(n))
	}
}
