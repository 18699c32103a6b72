// Package metrics expone contadores Prometheus del servicio en un registro propio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "veterinaria"

// Metrics agrupa los colectores del servicio.
type Metrics struct {
	registry *prometheus.Registry

	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	salesRecorded    prometheus.Counter
	unitsSold        prometheus.Counter
	stockAdjustments *prometheus.CounterVec
	productsImported *prometheus.CounterVec
}

// New crea un registro nuevo con los colectores del proceso y de Go.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de peticiones HTTP",
		}, []string{"method", "path", "status"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		salesRecorded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_recorded_total",
			Help:      "Ventas registradas",
		}),
		unitsSold: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_sold_total",
			Help:      "Unidades vendidas",
		}),
		stockAdjustments: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_adjustments_total",
			Help:      "Ajustes manuales de stock por dirección (in/out)",
		}, []string{"direction"}),
		productsImported: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "products_imported_total",
			Help:      "Filas de importación procesadas por resultado",
		}, []string{"result"}),
	}
}

// ObserveRequest registra una petición HTTP terminada.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// StockAdjusted cuenta un ajuste manual.
func (m *Metrics) StockAdjusted(delta int) {
	direction := "in"
	if delta < 0 {
		direction = "out"
	}
	m.stockAdjustments.WithLabelValues(direction).Inc()
}

// SaleRecorded cuenta una venta y sus unidades.
func (m *Metrics) SaleRecorded(quantity int) {
	m.salesRecorded.Inc()
	m.unitsSold.Add(float64(quantity))
}

// RowsImported cuenta filas insertadas y rechazadas de una importación.
func (m *Metrics) RowsImported(inserted, rejected int) {
	m.productsImported.WithLabelValues("inserted").Add(float64(inserted))
	m.productsImported.WithLabelValues("rejected").Add(float64(rejected))
}

// Handler sirve el formato de exposición de Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry devuelve el registro (pruebas).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
