package metrics

import "github.com/prometheus/client_golang/prometheus"

// Translation Prometheus metrics.
var (
	TranslationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "filterdsl",
			Name:      "translations_total",
			Help:      "Total number of filter translation requests",
		},
		[]string{"model", "status"}, // status: ok / invalid / not_found / error
	)

	TranslationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "filterdsl",
			Name:      "translation_duration_seconds",
			Help:      "Filter translation duration in seconds",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
		[]string{"model"},
	)
)

var translationMetricsRegistered bool

// RegisterTranslationMetrics registers Prometheus translation metrics. Must be called once from main.
func RegisterTranslationMetrics() {
	if translationMetricsRegistered {
		return
	}
	prometheus.MustRegister(TranslationsTotal)
	prometheus.MustRegister(TranslationDuration)
	translationMetricsRegistered = true
}
