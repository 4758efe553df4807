package validation

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

const adhocRuleSet = "adhoc"

// Metrics records validation outcomes. A nil *Metrics records nothing.
type Metrics struct {
	validations *prometheus.CounterVec
	failures    *prometheus.CounterVec
	checks      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rulekit_validations_total",
			Help: "Validation passes by rule set and result.",
		}, []string{"rule_set", "result"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rulekit_rule_failures_total",
			Help: "Field errors by the rule that produced them.",
		}, []string{"rule"}),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rulekit_checks_total",
			Help: "Single value checks by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rulekit_validation_duration_seconds",
			Help:    "Duration of validation passes.",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}, []string{"rule_set"}),
	}

	for _, c := range []prometheus.Collector{m.validations, m.failures, m.checks, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Join(ErrMetricsRegistration, err)
		}
	}
	return m, nil
}

func (m *Metrics) observePass(set string, ok bool, err error, d time.Duration) {
	if m == nil {
		return
	}
	if set == "" {
		set = adhocRuleSet
	}
	m.validations.WithLabelValues(set, result(ok)).Inc()
	m.duration.WithLabelValues(set).Observe(d.Seconds())
	for _, ve := range validator.ExtractValidationErrors(err) {
		rule := ve.Rule
		if rule == "" {
			rule = "custom"
		}
		m.failures.WithLabelValues(rule).Inc()
	}
}

func (m *Metrics) observeCheck(ok bool, err error) {
	if m == nil {
		return
	}
	res := result(ok)
	if errors.Is(err, validator.ErrUnknownRule) {
		res = "unknown_rule"
	}
	m.checks.WithLabelValues(res).Inc()
}

func result(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}
