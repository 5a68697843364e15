package shopify

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records upstream pagination activity
type Metrics struct {
	pages    *prometheus.CounterVec
	items    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the upstream collectors on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		pages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "course_export",
			Subsystem: "shopify",
			Name:      "pages_fetched_total",
			Help:      "Upstream pages fetched, by resource.",
		}, []string{"resource"}),
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "course_export",
			Subsystem: "shopify",
			Name:      "items_fetched_total",
			Help:      "Upstream items accumulated, by resource.",
		}, []string{"resource"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "course_export",
			Subsystem: "shopify",
			Name:      "fetch_errors_total",
			Help:      "Upstream non-success responses, by resource and status.",
		}, []string{"resource", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "course_export",
			Subsystem: "shopify",
			Name:      "fetch_all_duration_seconds",
			Help:      "Wall time of a complete paginated fetch.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource"}),
	}
	reg.MustRegister(m.pages, m.items, m.errors, m.duration)
	return m
}

func (m *Metrics) observePage(resource string, items int) {
	if m == nil {
		return
	}
	m.pages.WithLabelValues(resource).Inc()
	m.items.WithLabelValues(resource).Add(float64(items))
}

func (m *Metrics) observeError(resource string, status int) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(resource, strconv.Itoa(status)).Inc()
}

func (m *Metrics) observeDuration(resource string, start time.Time) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
}
