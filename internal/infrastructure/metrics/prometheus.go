// Package metrics expone métricas Prometheus de las llamadas al backend y del
// registro de ventas.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/amazonia/internal/application/sales"
	"github.com/jhoicas/amazonia/internal/infrastructure/rest"
)

// Metrics colectores de la aplicación sobre un registry propio.
type Metrics struct {
	registry        *prometheus.Registry
	backendRequests *prometheus.CounterVec
	backendLatency  *prometheus.HistogramVec
	sales           *prometheus.CounterVec
}

var (
	_ rest.RequestObserver = (*Metrics)(nil)
	_ sales.SaleObserver   = (*Metrics)(nil)
)

// New registra los colectores bajo el namespace dado (más los del runtime de Go).
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		backendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Peticiones al backend REST por método, recurso y código (0 = error de red).",
		}, []string{"method", "resource", "status"}),
		backendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Latencia de las peticiones al backend REST.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "resource"}),
		sales: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_total",
			Help:      "Intentos de registro de venta por resultado y paso fallido.",
		}, []string{"outcome", "step"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.backendRequests,
		m.backendLatency,
		m.sales,
	)
	return m
}

// ObserveRequest implementa rest.RequestObserver.
func (m *Metrics) ObserveRequest(method, resource string, status int, elapsed time.Duration) {
	m.backendRequests.WithLabelValues(method, resource, strconv.Itoa(status)).Inc()
	m.backendLatency.WithLabelValues(method, resource).Observe(elapsed.Seconds())
}

// ObserveSale implementa sales.SaleObserver.
func (m *Metrics) ObserveSale(outcome, step string) {
	m.sales.WithLabelValues(outcome, step).Inc()
}

// Handler expone el registry en formato texto de Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry para pruebas y colectores adicionales.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
