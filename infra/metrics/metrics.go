package metrics

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const (
	OutcomeOk       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Recorder counts cart operations on its own registry.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	totals     prometheus.Histogram
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Recorder{
		registry: registry,
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cart_operations_total",
				Help: "Total number of cart operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		totals: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cart_total_cost",
				Help:    "Cart totals computed",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
			},
		),
	}
}

// ObserveOperation classifies err: nil is ok, invalid arguments are rejected, anything else is an error.
func (r *Recorder) ObserveOperation(operation string, err error, rejected func(error) bool) {
	outcome := OutcomeOk
	switch {
	case err == nil:
	case rejected != nil && rejected(err):
		outcome = OutcomeRejected
	default:
		outcome = OutcomeError
	}
	r.operations.WithLabelValues(operation, outcome).Inc()
}

func (r *Recorder) ObserveTotal(total float64) {
	r.totals.Observe(total)
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteText writes the text exposition format of everything recorded so far.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var errs []error
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
