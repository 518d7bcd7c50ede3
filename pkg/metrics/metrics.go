package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/dmitrymomot/formcheck"
)

// Collector records validation activity. It implements formcheck.Observer.
type Collector struct {
	fieldChecks *prometheus.CounterVec
	validations *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewCollector registers the formcheck metrics with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		fieldChecks: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formcheck_field_checks_total",
				Help: "Total number of field checks by outcome",
			},
			[]string{"field", "outcome"}, // valid, absent, missing, coercion or rule
		),
		validations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formcheck_validations_total",
				Help: "Total number of Validate calls",
			},
			[]string{"status"}, // valid or invalid
		),
		duration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "formcheck_validate_duration_seconds",
				Help:    "Duration of a Validate call in seconds",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
			},
		),
	}
}

func (c *Collector) FieldChecked(field string, outcome formcheck.Outcome) {
	c.fieldChecks.WithLabelValues(field, string(outcome)).Inc()
}

func (c *Collector) ValidationDone(valid bool, elapsed time.Duration) {
	status := "invalid"
	if valid {
		status = "valid"
	}
	c.validations.WithLabelValues(status).Inc()
	c.duration.Observe(elapsed.Seconds())
}

// WriteText writes every metric gathered by g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
