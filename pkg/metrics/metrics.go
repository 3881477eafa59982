// Package metrics exposes service counters and store gauges in Prometheus format.
package metrics

import (
	"net/http"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gym"

type Collector struct {
	registry        *prometheus.Registry
	events          *prometheus.CounterVec
	inspectionScore prometheus.Histogram
	callsOpened     *prometheus.CounterVec
	loginFailures   prometheus.Counter
}

func New() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "domain_events_total",
				Help:      "Domain events published, by event name.",
			},
			[]string{"event"},
		),
		inspectionScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "inspection_average_score",
				Help:      "Average score of submitted inspection checklists.",
				Buckets:   prometheus.LinearBuckets(1, 1, 10),
			},
		),
		callsOpened: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "technical_calls_opened_total",
				Help:      "Technical calls opened, by type and priority.",
			},
			[]string{"type", "priority"},
		),
		loginFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_failures_total",
				Help:      "Rejected login attempts.",
			},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.events,
		c.inspectionScore,
		c.callsOpened,
		c.loginFailures,
	)
	return c
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) RecordEvent(name string) {
	c.events.WithLabelValues(name).Inc()
}

func (c *Collector) ObserveInspection(averageScore float64) {
	c.inspectionScore.Observe(averageScore)
}

func (c *Collector) CallOpened(callType, priority string) {
	c.callsOpened.WithLabelValues(callType, priority).Inc()
}

func (c *Collector) LoginFailed() {
	c.loginFailures.Inc()
}

// RegisterOpenCalls exposes the number of unresolved calls, read at scrape time.
func (c *Collector) RegisterOpenCalls(count func() int) error {
	return c.registry.Register(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "technical_calls_open",
			Help:      "Technical calls not yet resolved.",
		},
		func() float64 { return float64(count()) },
	))
}

// RegisterLifecycle exposes equipment counts per lifecycle status, read at scrape time.
func (c *Collector) RegisterLifecycle(counts func() map[string]int) error {
	return c.registry.Register(&lifecycleCollector{
		counts: counts,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "equipment_lifecycle"),
			"Equipment count by lifecycle status.",
			[]string{"status"}, nil,
		),
	})
}

type lifecycleCollector struct {
	counts func() map[string]int
	desc   *prometheus.Desc
}

func (l *lifecycleCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- l.desc
}

func (l *lifecycleCollector) Collect(ch chan<- prometheus.Metric) {
	counts := l.counts()
	statuses := make([]string, 0, len(counts))
	for s := range counts {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)
	for _, s := range statuses {
		ch <- prometheus.MustNewConstMetric(l.desc, prometheus.GaugeValue, float64(counts[s]), s)
	}
}
