package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	forecastsTotal   *prometheus.CounterVec
	errorsTotal      *prometheus.CounterVec
	predictedPrice   *prometheus.GaugeVec
	pipelineDuration *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		forecastsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "etfcast_forecasts_total",
				Help: "Total number of forecast pipeline invocations",
			},
			[]string{"model", "symbol"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "etfcast_errors_total",
				Help: "Total number of pipeline errors by kind",
			},
			[]string{"type"},
		),
		predictedPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "etfcast_predicted_price",
				Help: "Most recent first-step predicted price for a symbol",
			},
			[]string{"symbol"},
		),
		pipelineDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "etfcast_pipeline_duration_seconds",
				Help:    "Duration of forecast pipeline invocations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"model"},
		),
	}
}

// RecordForecast records a completed pipeline invocation.
func (r *Recorder) RecordForecast(model, symbol string) {
	r.forecastsTotal.WithLabelValues(model, symbol).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordPredictedPrice records the first projected price for a symbol.
func (r *Recorder) RecordPredictedPrice(symbol string, price float64) {
	r.predictedPrice.WithLabelValues(symbol).Set(price)
}

// RecordPipelineDuration records pipeline latency in seconds.
func (r *Recorder) RecordPipelineDuration(model string, seconds float64) {
	r.pipelineDuration.WithLabelValues(model).Observe(seconds)
}
