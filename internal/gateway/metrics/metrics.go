package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Requests               *prometheus.CounterVec
	VendorDispatchDuration *prometheus.HistogramVec
	TranslationDrops       *prometheus.CounterVec
	PublishFailures        prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		Requests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "medgate_gateway_requests_total",
			Help: "Gateway operations by operation name and outcome",
		}, []string{"operation", "outcome"}),
		VendorDispatchDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "medgate_vendor_dispatch_duration_seconds",
			Help:    "Duration of vendor backend calls",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation", "vendor"}),
		TranslationDrops: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "medgate_translation_drops_total",
			Help: "Resources dropped because translation failed",
		}, []string{"resource_type"}),
		PublishFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "medgate_publish_failures_total",
			Help: "Best-effort queue publishes that failed",
		}),
	}
}

func (m *Metrics) IncrementRequest(operation, outcome string) {
	m.Requests.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveVendorDispatch(operation, vendor string, start time.Time) {
	m.VendorDispatchDuration.WithLabelValues(operation, vendor).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementTranslationDrop(resourceType string) {
	m.TranslationDrops.WithLabelValues(resourceType).Inc()
}

func (m *Metrics) IncrementPublishFailure() {
	m.PublishFailures.Inc()
}
