package catalog

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the catalog fetch and the widget.
type Metrics struct {
	Registry             *prometheus.Registry
	RequestsTotal        *prometheus.CounterVec
	RequestDuration      prometheus.Histogram
	ErrorsTotal          *prometheus.CounterVec
	ProductsFetchedTotal prometheus.Counter
	SelectionsTotal      *prometheus.CounterVec
	AddToCartTotal       prometheus.Counter
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slider_catalog_requests_total",
			Help: "Catalog requests by outcome.",
		},
		[]string{"outcome"},
	)
	requestDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "slider_catalog_request_duration_seconds",
			Help:    "Catalog request latency.",
			Buckets: prometheus.DefBuckets,
		},
	)
	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slider_catalog_errors_total",
			Help: "Failed catalog fetches by error type.",
		},
		[]string{"error_type"},
	)
	productsFetched := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slider_catalog_products_fetched_total",
			Help: "Products received from the catalog.",
		},
	)
	selections := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slider_selections_total",
			Help: "Product selections by input modality.",
		},
		[]string{"input"},
	)
	addToCart := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slider_add_to_cart_total",
			Help: "Call-to-action activations.",
		},
	)

	registry.MustRegister(requests, requestDuration, errorsTotal, productsFetched, selections, addToCart)

	return &Metrics{
		Registry:             registry,
		RequestsTotal:        requests,
		RequestDuration:      requestDuration,
		ErrorsTotal:          errorsTotal,
		ProductsFetchedTotal: productsFetched,
		SelectionsTotal:      selections,
		AddToCartTotal:       addToCart,
	}
}

// IncRequest increments the requests counter for an outcome.
func (m *Metrics) IncRequest(outcome string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(outcome).Inc()
}

// ObserveDuration records a catalog request duration.
func (m *Metrics) ObserveDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.Observe(d.Seconds())
}

// IncError increments the errors counter for a type label.
func (m *Metrics) IncError(errorType string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(errorType).Inc()
}

// AddProducts counts fetched products.
func (m *Metrics) AddProducts(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ProductsFetchedTotal.Add(float64(n))
}

// IncSelection counts a selection made with the given input ("pointer" or "keyboard").
func (m *Metrics) IncSelection(input string) {
	if m == nil {
		return
	}
	m.SelectionsTotal.WithLabelValues(input).Inc()
}

// IncAddToCart counts a call-to-action activation.
func (m *Metrics) IncAddToCart() {
	if m == nil {
		return
	}
	m.AddToCartTotal.Inc()
}
