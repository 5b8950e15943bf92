package report

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fjglira/GoSpecRunner/internal/domain"
	"github.com/fjglira/GoSpecRunner/pkg/spec"
)

// MetricsSink counts sink notifications as Prometheus metrics in its own
// registry, ready to be exported for the node_exporter textfile collector.
type MetricsSink struct {
	registry   *prometheus.Registry
	features   prometheus.Counter
	cases      prometheus.Counter
	assertions *prometheus.CounterVec
	raised     prometheus.Counter
	runs       prometheus.Counter
	lastPassed prometheus.Gauge
	lastFailed prometheus.Gauge

	passed int
	failed int
}

// NewMetricsSink creates a MetricsSink with metric names prefixed by namespace.
func NewMetricsSink(namespace string) *MetricsSink {
	m := &MetricsSink{
		registry: prometheus.NewRegistry(),
		features: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "features_total",
			Help:      "Number of features entered.",
		}),
		cases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cases_total",
			Help:      "Number of cases entered.",
		}),
		assertions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assertions_total",
			Help:      "Number of evaluated assertions by verb and outcome.",
		}, []string{"verb", "outcome"}),
		raised: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "raised_total",
			Help:      "Number of scope bodies that panicked.",
		}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of finished runs.",
		}),
		lastPassed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_passed",
			Help:      "Passed assertions of the last finished run.",
		}),
		lastFailed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_failed",
			Help:      "Failures of the last finished run.",
		}),
	}
	m.registry.MustRegister(m.features, m.cases, m.assertions, m.raised, m.runs, m.lastPassed, m.lastFailed)
	return m
}

// Registry returns the registry holding the sink's metrics.
func (m *MetricsSink) Registry() *prometheus.Registry {
	return m.registry
}

// EnterFeature counts an entered feature.
func (m *MetricsSink) EnterFeature(f *spec.Feature) { m.features.Inc() }

// EnterCase counts an entered case.
func (m *MetricsSink) EnterCase(c *spec.Case) { m.cases.Inc() }

// Success counts a passed assertion by verb.
func (m *MetricsSink) Success(t *spec.Target) {
	m.passed++
	m.assertions.WithLabelValues(t.Verb(), "passed").Inc()
}

// Failure counts a failed assertion by verb.
func (m *MetricsSink) Failure(t *spec.Target) {
	m.failed++
	m.assertions.WithLabelValues(t.Verb(), "failed").Inc()
}

// Raised counts a panicking scope body as a failure.
func (m *MetricsSink) Raised(f *spec.Feature, c *spec.Case, cause error) {
	m.failed++
	m.raised.Inc()
}

// Finish counts the run, publishes its tally as gauges and resets the counters.
func (m *MetricsSink) Finish() {
	m.runs.Inc()
	m.lastPassed.Set(float64(m.passed))
	m.lastFailed.Set(float64(m.failed))
	m.passed, m.failed = 0, 0
}

// Failed returns the failures counted since the last Finish.
func (m *MetricsSink) Failed() int {
	return m.failed
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
func (m *MetricsSink) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return domain.NewErrorWithSuggestion("report", path, 0,
			"failed to write metrics textfile",
			"check that the directory of metrics.textfile exists and is writable",
			err)
	}
	return nil
}
