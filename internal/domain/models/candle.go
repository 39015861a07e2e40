package models

import "time"

// Candle is one daily OHLCV observation of an ETF price series.
type Candle struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// Closes extracts the close column in series order.
func Closes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}

// ChronologicallyOrdered reports whether dates are strictly increasing.
func ChronologicallyOrdered(candles []Candle) bool {
	for i := 1; i < len(candles); i++ {
		if !candles[i].Date.After(candles[i-1].Date) {
			return false
		}
	}
	return true
}
