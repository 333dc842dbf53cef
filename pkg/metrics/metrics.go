package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics colectores Prometheus de la aplicación sobre un registry propio.
// Todos los métodos aceptan receptor nil (tests y componentes sin métricas).
type Metrics struct {
	registry *prometheus.Registry

	unmatchedItems   prometheus.Counter
	statsDuration    prometheus.Histogram
	campaignMessages *prometheus.CounterVec
	catalogCache     *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
}

// New registra los colectores bajo el namespace indicado.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		unmatchedItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unmatched_items_total",
			Help:      "Ítems de pedidos mayoristas sin coincidencia en el catálogo.",
		}),
		statsDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "outlet_stats_duration_seconds",
			Help:      "Duración del cálculo de estadísticas de puntos de venta.",
			Buckets:   prometheus.DefBuckets,
		}),
		campaignMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaign_messages_total",
			Help:      "Mensajes de campañas por canal y resultado.",
		}, []string{"channel", "result"}),
		catalogCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_requests_total",
			Help:      "Lecturas del caché de catálogo por resultado (hit/miss).",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requests HTTP por método, ruta y código.",
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(
		m.unmatchedItems, m.statsDuration, m.campaignMessages, m.catalogCache, m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry devuelve el registry (tests).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// UnmatchedItems suma n ítems sin match.
func (m *Metrics) UnmatchedItems(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.unmatchedItems.Add(float64(n))
}

// ObserveStats registra la duración de un cálculo de estadísticas.
func (m *Metrics) ObserveStats(d time.Duration) {
	if m == nil {
		return
	}
	m.statsDuration.Observe(d.Seconds())
}

// CampaignMessages suma n mensajes del canal con el resultado dado ("sent" | "failed").
func (m *Metrics) CampaignMessages(channel, result string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.campaignMessages.WithLabelValues(channel, result).Add(float64(n))
}

// CatalogCache registra un hit o miss del caché de catálogo.
func (m *Metrics) CatalogCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.catalogCache.WithLabelValues(result).Inc()
}

// HTTPRequest registra un request atendido.
func (m *Metrics) HTTPRequest(method, route, status string) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
}
