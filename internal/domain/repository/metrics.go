package repository

// Metrics records operational measurements about pipeline invocations. The
// Prometheus implementation lives in pkg/metrics.
type Metrics interface {
	RecordForecast(model, symbol string)
	RecordError(kind string)
	RecordPredictedPrice(symbol string, price float64)
	RecordPipelineDuration(model string, seconds float64)
}
