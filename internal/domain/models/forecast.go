package models

import "time"

// ForecastPoint is one projected step: predicted price with a naive band.
// Lower/Upper come from scaling the prediction by (1 ∓ test RMSE); they are an
// approximation, not a statistical prediction interval.
type ForecastPoint struct {
	Date      time.Time `json:"date"`
	Predicted float64   `json:"predicted"`
	Lower     float64   `json:"lower"`
	Upper     float64   `json:"upper"`
}

// EvaluationMetrics are held-out accuracy figures in the scaled domain.
type EvaluationMetrics struct {
	RMSE float64 `json:"rmse"`
	MAE  float64 `json:"mae"`
	R2   float64 `json:"r2"`
}

// ForecastReport is the full outcome of one pipeline invocation for a symbol.
type ForecastReport struct {
	Symbol      string            `json:"symbol"`
	Model       string            `json:"model"`
	GeneratedAt time.Time         `json:"generated_at"`
	Metrics     EvaluationMetrics `json:"metrics"`
	Points      []ForecastPoint   `json:"points"`
}

// TrendLine is a least-squares fit of close price against its series index.
type TrendLine struct {
	Symbol    string  `json:"symbol"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	R2        float64 `json:"r2"`
	StdErr    float64 `json:"std_err"`
	Direction string  `json:"direction"` // "bullish" or "bearish"
}
