package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eligibility-engine/domain"
)

// EstimateMetrics counts estimates and cache lookups. It satisfies
// service.EstimateRecorder.
type EstimateMetrics struct {
	registry  *prometheus.Registry
	estimates *prometheus.CounterVec
	cache     *prometheus.CounterVec
}

func NewEstimateMetrics(namespace string) *EstimateMetrics {
	if namespace == "" {
		namespace = "eligibility"
	}

	registry := prometheus.NewRegistry()
	estimates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimates_total",
		Help:      "Eligibility estimates returned, by product and binding cap.",
	}, []string{"product", "cap_source"})
	cache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimate_cache_lookups_total",
		Help:      "Estimate cache lookups by result.",
	}, []string{"result"})

	registry.MustRegister(
		estimates,
		cache,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &EstimateMetrics{
		registry:  registry,
		estimates: estimates,
		cache:     cache,
	}
}

func (m *EstimateMetrics) ObserveEstimate(productID string, capSource domain.CapSource) {
	m.estimates.WithLabelValues(productID, string(capSource)).Inc()
}

func (m *EstimateMetrics) ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cache.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *EstimateMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
