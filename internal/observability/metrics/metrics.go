package metrics

import "github.com/prometheus/client_golang/prometheus"

// SlotMetrics exposes counters for the reservation gate.
type SlotMetrics struct {
	reserveTotal *prometheus.CounterVec
	cancelTotal  *prometheus.CounterVec
	fetchTotal   *prometheus.CounterVec
}

func NewSlotMetrics(reg prometheus.Registerer) *SlotMetrics {
	m := &SlotMetrics{
		reserveTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ddlogi",
			Subsystem: "slots",
			Name:      "reserve_total",
			Help:      "Total slot reservation attempts",
		}, []string{"status"}),
		cancelTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ddlogi",
			Subsystem: "slots",
			Name:      "cancel_total",
			Help:      "Total slot cancellations",
		}, []string{"status"}),
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ddlogi",
			Subsystem: "slots",
			Name:      "fetch_total",
			Help:      "Total confirmed-slot fetches",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.reserveTotal, m.cancelTotal, m.fetchTotal)
	return m
}

func (m *SlotMetrics) ObserveReserve(status string) {
	if m == nil {
		return
	}
	m.reserveTotal.WithLabelValues(status).Inc()
}

func (m *SlotMetrics) ObserveCancel(status string) {
	if m == nil {
		return
	}
	m.cancelTotal.WithLabelValues(status).Inc()
}

func (m *SlotMetrics) ObserveFetch(status string) {
	if m == nil {
		return
	}
	m.fetchTotal.WithLabelValues(status).Inc()
}

// QuoteMetrics counts price computations by service and outcome.
type QuoteMetrics struct {
	computeTotal *prometheus.CounterVec
}

func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	m := &QuoteMetrics{
		computeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ddlogi",
			Subsystem: "quotes",
			Name:      "compute_total",
			Help:      "Total quote computations",
		}, []string{"service", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.computeTotal)
	return m
}

func (m *QuoteMetrics) ObserveCompute(service, status string) {
	if m == nil {
		return
	}
	m.computeTotal.WithLabelValues(service, status).Inc()
}

// DistanceMetrics tracks resolver calls and fallbacks.
type DistanceMetrics struct {
	resolveTotal   *prometheus.CounterVec
	resolveLatency *prometheus.HistogramVec
}

func NewDistanceMetrics(reg prometheus.Registerer) *DistanceMetrics {
	m := &DistanceMetrics{
		resolveTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ddlogi",
			Subsystem: "distance",
			Name:      "resolve_total",
			Help:      "Total distance resolutions",
		}, []string{"source", "status"}),
		resolveLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ddlogi",
			Subsystem: "distance",
			Name:      "resolve_latency_seconds",
			Help:      "Latency of distance resolution",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.resolveTotal, m.resolveLatency)
	return m
}

func (m *DistanceMetrics) ObserveResolve(source, status string) {
	if m == nil {
		return
	}
	m.resolveTotal.WithLabelValues(source, status).Inc()
}

func (m *DistanceMetrics) ObserveLatency(source string, seconds float64) {
	if m == nil {
		return
	}
	m.resolveLatency.WithLabelValues(source).Observe(seconds)
}
