// Package metrics exposes prometheus collectors for plantops. Domain
// counters are fed by the change feed; HTTP timings by the API middleware.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/example/plantops/internal/ports/secondary"
)

// Event attribute keys read by the collectors.
const (
	AttrIssues  = "issues"
	AttrRemarks = "remarks"
	AttrStatus  = "status"
)

// Collectors groups every plantops metric.
type Collectors struct {
	// changesTotal counts change-feed events by topic and action
	changesTotal *prometheus.CounterVec

	// inspectionIssues tracks attention+critical answers per completed inspection
	inspectionIssues prometheus.Histogram

	// remarksRaised counts remarks created by inspections and maintenance notes
	remarksRaised *prometheus.CounterVec

	// operationalTotal counts completed inspections by derived operational status
	operationalTotal *prometheus.CounterVec

	// requestDuration tracks HTTP API latency
	requestDuration *prometheus.HistogramVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)
	return &Collectors{
		changesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "plantops_changes_total",
			Help: "Total change-feed events by topic and action",
		}, []string{"topic", "action"}),

		inspectionIssues: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "plantops_inspection_issues",
			Help:    "Attention and critical answers per completed inspection",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
		}),

		remarksRaised: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "plantops_remarks_raised_total",
			Help: "Total remarks raised automatically, by source topic",
		}, []string{"topic"}),

		operationalTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "plantops_inspection_operational_total",
			Help: "Completed inspections by derived operational status",
		}, []string{"status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "plantops_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
		}, []string{"method", "route", "code"}),
	}
}

// Subscribe attaches the collectors to feed. The returned func detaches them.
func (c *Collectors) Subscribe(feed secondary.ChangeFeed) func() {
	return feed.Subscribe(c.Observe)
}

// Observe records one change event.
func (c *Collectors) Observe(_ context.Context, event secondary.ChangeEvent) {
	c.changesTotal.WithLabelValues(string(event.Topic), event.Action).Inc()

	if n, ok := intAttr(event.Attrs, AttrRemarks); ok && n > 0 {
		c.remarksRaised.WithLabelValues(string(event.Topic)).Add(float64(n))
	}

	if event.Topic != secondary.TopicInspection || event.Action != secondary.ActionCompleted {
		return
	}
	if n, ok := intAttr(event.Attrs, AttrIssues); ok {
		c.inspectionIssues.Observe(float64(n))
	}
	if status := event.Attrs[AttrStatus]; status != "" {
		c.operationalTotal.WithLabelValues(status).Inc()
	}
}

// ObserveRequest records the latency of one HTTP request.
func (c *Collectors) ObserveRequest(method, route string, code int, elapsed time.Duration) {
	c.requestDuration.WithLabelValues(method, route, strconv.Itoa(code)).Observe(elapsed.Seconds())
}

func intAttr(attrs map[string]string, key string) (int, bool) {
	raw, ok := attrs[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
