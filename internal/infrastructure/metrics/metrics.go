// Package metrics exposes pagecore counters and gauges through Prometheus.
//
// Collectors are registered on the Registerer handed to New, never on the
// global default, so several coordinators can live in one test binary.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pagecore"

// Cache kinds used as the "kind" label of the capacity gauge.
const (
	CacheTotal   = "memory_total"
	CacheMinDead = "memory_min_dead"
	CacheMaxDead = "memory_max_dead"
	CachePages   = "page_cache"
	CacheDisk    = "disk_quota"
)

// Metrics holds all pagecore collectors.
type Metrics struct {
	Pages           prometheus.Gauge
	Frames          prometheus.Gauge
	DamageSpans     prometheus.Counter
	Blits           prometheus.Counter
	CacheCapacity   *prometheus.GaugeVec
	BlockedRequests prometheus.Counter
	LastPageClosed  prometheus.Counter
	IPCMessages     *prometheus.CounterVec
}

// New creates the collectors on reg. A nil reg yields unregistered collectors.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Pages: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pages",
			Help:      "Number of live page sessions",
		}),
		Frames: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frames",
			Help:      "Number of registered frames",
		}),
		DamageSpans: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "damage_spans_painted_total",
			Help:      "Damaged spans repainted by draw surfaces",
		}),
		Blits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blits_total",
			Help:      "Rectangles copied to platform targets",
		}),
		CacheCapacity: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_capacity",
			Help:      "Cache capacities derived from the active cache model",
		}, []string{"kind"}),
		BlockedRequests: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocked_requests_total",
			Help:      "Subresource requests refused by the ad filter",
		}),
		LastPageClosed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "last_page_closed_total",
			Help:      "Transitions into a state with no pages and no frames",
		}),
		IPCMessages: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ipc_messages_total",
			Help:      "Messages handled by the in-process bus",
		}, []string{"name", "mode"}),
	}
}

func (m *Metrics) SetPages(n int) {
	if m != nil {
		m.Pages.Set(float64(n))
	}
}

func (m *Metrics) SetFrames(n int) {
	if m != nil {
		m.Frames.Set(float64(n))
	}
}

func (m *Metrics) AddDamageSpans(n int) {
	if m != nil && n > 0 {
		m.DamageSpans.Add(float64(n))
	}
}

func (m *Metrics) AddBlits(n int) {
	if m != nil && n > 0 {
		m.Blits.Add(float64(n))
	}
}

func (m *Metrics) SetCacheCapacity(kind string, v float64) {
	if m != nil {
		m.CacheCapacity.WithLabelValues(kind).Set(v)
	}
}

func (m *Metrics) IncBlocked() {
	if m != nil {
		m.BlockedRequests.Inc()
	}
}

func (m *Metrics) IncLastPageClosed() {
	if m != nil {
		m.LastPageClosed.Inc()
	}
}

// IncIPC counts a message; mode is "async" or "sync".
func (m *Metrics) IncIPC(name, mode string) {
	if m != nil {
		m.IPCMessages.WithLabelValues(name, mode).Inc()
	}
}
