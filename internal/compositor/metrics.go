package compositor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments the compositor's own operations: how long arrangement
// and rendering take, and how much of the screen gets repainted. Nothing in
// spec.md's non-goals excludes observing the compositor itself -- only
// scheduling and caching of widget content are excluded.
type Metrics struct {
	reflowDuration  *prometheus.HistogramVec
	renderDuration  *prometheus.HistogramVec
	dirtyRegions    prometheus.Gauge
	updatesTotal    *prometheus.CounterVec
}

// NewMetrics builds a Metrics instance registered against reg. Pass
// prometheus.NewRegistry() (or prometheus.DefaultRegisterer) from the
// caller; the compositor package never reaches for the global registry on
// its own.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		reflowDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "loomterm",
			Subsystem: "compositor",
			Name:      "reflow_duration_seconds",
			Help:      "Time spent arranging the widget tree.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "loomterm",
			Subsystem: "compositor",
			Name:      "render_duration_seconds",
			Help:      "Time spent producing a screen update.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		dirtyRegions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "loomterm",
			Subsystem: "compositor",
			Name:      "dirty_regions",
			Help:      "Number of pending dirty regions at the start of the last render.",
		}),
		updatesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loomterm",
			Subsystem: "compositor",
			Name:      "updates_total",
			Help:      "Count of renders by kind (full, partial, none).",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.reflowDuration, m.renderDuration, m.dirtyRegions, m.updatesTotal)
	return m
}

// observeReflow records how long a Reflow ("full") or ReflowVisible
// ("visible") pass took.
func (m *Metrics) observeReflow(path string, d time.Duration) {
	if m == nil {
		return
	}
	m.reflowDuration.WithLabelValues(path).Observe(d.Seconds())
}

// observeRender records how long a render produced a given kind of update,
// and how many dirty regions it started from.
func (m *Metrics) observeRender(kind string, dirtyCount int, d time.Duration) {
	if m == nil {
		return
	}
	m.renderDuration.WithLabelValues(kind).Observe(d.Seconds())
	m.dirtyRegions.Set(float64(dirtyCount))
	m.updatesTotal.WithLabelValues(kind).Inc()
}
