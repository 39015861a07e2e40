package models

// Requests for the forecast HTTP endpoints. Defined in domain for consistency
// and reuse. The caller supplies the historical series; this service does not
// fetch market data itself. The handler seeds requests with the configured
// defaults before binding; the default tags here are the fallback when no
// configured value is set.

// CandlePayload is one OHLCV row as submitted over HTTP. Date accepts
// RFC3339, YYYY-MM-DD, or unix seconds.
type CandlePayload struct {
	Date   string  `json:"date" validate:"required"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close" validate:"required"`
	Volume float64 `json:"volume"`
}

type ForecastRequest struct {
	Symbol       string          `json:"symbol" validate:"required"`
	Candles      []CandlePayload `json:"candles" validate:"required,min=2,dive"`
	Lookback     int             `json:"lookback" default:"30" validate:"gte=1,lte=365"`
	Horizon      int             `json:"horizon" default:"5" validate:"gte=1,lte=60"`
	TestFraction float64         `json:"test_fraction" default:"0.2" validate:"gt=0,lt=1"`
	Model        string          `json:"model" default:"linear" validate:"oneof=linear forest svr"`
}

type CompareRequest struct {
	Symbol       string          `json:"symbol" validate:"required"`
	Candles      []CandlePayload `json:"candles" validate:"required,min=2,dive"`
	Lookback     int             `json:"lookback" default:"30" validate:"gte=1,lte=365"`
	Horizon      int             `json:"horizon" default:"5" validate:"gte=1,lte=60"`
	TestFraction float64         `json:"test_fraction" default:"0.2" validate:"gt=0,lt=1"`
}

type TrendRequest struct {
	Symbol  string          `json:"symbol" validate:"required"`
	Candles []CandlePayload `json:"candles" validate:"required,min=2,dive"`
}
