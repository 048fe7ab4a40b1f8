// Package metrics counts backend arithmetic with Prometheus collectors on a
// private registry.
package metrics

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/faed235/hyperf-saas-helper/foundation/utils/mathx"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Collector holds the operation counters and latency histogram.
type Collector struct {
	registry *prometheus.Registry

	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// NewCollector registers the calculator metrics on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		Operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calc_backend_operations_total",
				Help: "Total number of backend operations",
			},
			[]string{"backend", "op", "outcome"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calc_backend_operation_duration_seconds",
				Help:    "Backend operation duration in seconds",
				Buckets: []float64{.000001, .00001, .0001, .001, .01, .1},
			},
			[]string{"backend", "op"},
		),
	}
}

// Registry exposes the registry, e.g. for promhttp.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Instrument returns a Backend that records every call of b.
func (c *Collector) Instrument(b mathx.Backend) mathx.Backend {
	if b == nil {
		return nil
	}
	return &instrumented{next: b, collector: c}
}

func (c *Collector) observe(backend, op string, start time.Time, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	c.Operations.WithLabelValues(backend, op, outcome).Inc()
	c.Duration.WithLabelValues(backend, op).Observe(time.Since(start).Seconds())
}

// OpCount is one row of Summary.
type OpCount struct {
	Backend string `json:"backend" yaml:"backend"`
	Op      string `json:"op" yaml:"op"`
	Outcome string `json:"outcome" yaml:"outcome"`
	Count   uint64 `json:"count" yaml:"count"`
}

// Summary gathers the operation counters sorted by backend, op and outcome.
func (c *Collector) Summary() ([]OpCount, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, err
	}

	var rows []OpCount
	for _, family := range families {
		if family.GetName() != "calc_backend_operations_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			row := OpCount{Count: uint64(m.GetCounter().GetValue())}
			for _, label := range m.GetLabel() {
				switch label.GetName() {
				case "backend":
					row.Backend = label.GetValue()
				case "op":
					row.Op = label.GetValue()
				case "outcome":
					row.Outcome = label.GetValue()
				}
			}
			rows = append(rows, row)
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Backend != rows[j].Backend {
			return rows[i].Backend < rows[j].Backend
		}
		if rows[i].Op != rows[j].Op {
			return rows[i].Op < rows[j].Op
		}
		return rows[i].Outcome < rows[j].Outcome
	})
	return rows, nil
}

type instrumented struct {
	next      mathx.Backend
	collector *Collector
}

func (b *instrumented) Name() string { return b.next.Name() }

func (b *instrumented) Add(x, y string, scale int) (string, error) {
	return b.call("add", x, y, scale, b.next.Add)
}

func (b *instrumented) Sub(x, y string, scale int) (string, error) {
	return b.call("sub", x, y, scale, b.next.Sub)
}

func (b *instrumented) Mul(x, y string, scale int) (string, error) {
	return b.call("mul", x, y, scale, b.next.Mul)
}

func (b *instrumented) Div(x, y string, scale int) (string, error) {
	return b.call("div", x, y, scale, b.next.Div)
}

func (b *instrumented) Cmp(x, y string, scale int) int {
	start := time.Now()
	r := b.next.Cmp(x, y, scale)
	b.collector.observe(b.next.Name(), "cmp", start, nil)
	return r
}

func (b *instrumented) call(op, x, y string, scale int, fn func(string, string, int) (string, error)) (string, error) {
	start := time.Now()
	r, err := fn(x, y, scale)
	b.collector.observe(b.next.Name(), op, start, err)
	return r, err
}
