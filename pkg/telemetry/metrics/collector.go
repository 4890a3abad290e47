package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"bastion-hq/bastion/pkg/rule"
)

// Collector records validation and policy-reload metrics. All methods
// are safe for concurrent use.
type Collector struct {
	registry *prometheus.Registry

	validationsTotal *prometheus.CounterVec
	ruleFailures     *prometheus.CounterVec
	passwordLength   prometheus.Histogram
	policyReloads    *prometheus.CounterVec
}

// NewCollector creates a collector registering its metrics on registry.
// If registry is nil a fresh one is created. The namespace prefixes all
// metric names; empty falls back to "bastion".
func NewCollector(namespace string, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if namespace == "" {
		namespace = "bastion"
	}

	c := &Collector{
		registry: registry,
		validationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Completed password validations by outcome.",
		}, []string{"outcome"}),
		ruleFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_failures_total",
			Help:      "Rule failures by base error code.",
		}, []string{"code"}),
		passwordLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "password_length",
			Help:      "Candidate password length in runes.",
			Buckets:   []float64{4, 8, 12, 16, 24, 32, 48, 64, 128},
		}),
		policyReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "policy_reloads_total",
			Help:      "Policy reload attempts by outcome.",
		}, []string{"outcome"}),
	}

	registry.MustRegister(
		c.validationsTotal,
		c.ruleFailures,
		c.passwordLength,
		c.policyReloads,
	)
	return c
}

// Registry returns the underlying Prometheus registry, for serving
// or test scraping.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordValidation records one completed validation: the candidate's
// rune length and the per-rule results.
func (c *Collector) RecordValidation(length int, results []*rule.Result) {
	c.passwordLength.Observe(float64(length))

	failed := false
	for _, result := range results {
		for _, detail := range result.Errors {
			failed = true
			c.ruleFailures.WithLabelValues(baseCode(detail.Code)).Inc()
		}
	}

	outcome := "pass"
	if failed {
		outcome = "fail"
	}
	c.validationsTotal.WithLabelValues(outcome).Inc()
}

// RecordReload records a policy reload attempt.
func (c *Collector) RecordReload(err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	c.policyReloads.WithLabelValues(outcome).Inc()
}

// baseCode strips the enhanced per-character suffix from an error code,
// bounding label cardinality to the rule set.
func baseCode(code string) string {
	if i := strings.IndexByte(code, '.'); i >= 0 {
		return code[:i]
	}
	return code
}
