package forecast

import (
	"math"

	"github.com/bentunaru/spy-etf-news-agent/internal/domain/models"
)

// Config selects the windowing parameters and model strategy for one pipeline
// invocation. It is passed explicitly; the package keeps no global state.
type Config struct {
	Lookback     int
	Horizon      int
	TestFraction float64
	Strategy     Strategy
}

// Validate checks the configuration before any data processing.
func (c Config) Validate() error {
	if c.Lookback <= 0 {
		return &InvalidConfigError{Field: "lookback", Reason: "must be positive"}
	}
	if c.Horizon <= 0 {
		return &InvalidConfigError{Field: "horizon", Reason: "must be positive"}
	}
	if c.TestFraction <= 0 || c.TestFraction >= 1 {
		return &InvalidConfigError{Field: "test_fraction", Reason: "must be in (0,1)"}
	}
	if _, err := NewModel(c.Strategy); err != nil {
		return err
	}
	return nil
}

// Dataset is a windowed, scaled, chronologically split view of a price series.
// Train examples strictly precede test examples; no shuffling happens anywhere.
type Dataset struct {
	TrainInputs  [][]float64
	TrainTargets [][]float64
	TestInputs   [][]float64
	TestTargets  [][]float64

	Scaler *Scaler

	// LatestWindow holds the final Lookback scaled closes of the whole
	// series, the input for the out-of-sample forecast.
	LatestWindow []float64
}

// BuildDataset fits a scaler over all closes, slides a lookback window across
// the scaled series (one example per start index, input length L, target
// length H) and splits the examples into a train prefix and test suffix.
//
// The scaler is fit over the full series, including the closes that end up in
// the test split. That leaks the test min/max into training-time normalization;
// it is kept for compatibility with the behavior this service replaces.
func BuildDataset(candles []models.Candle, cfg Config) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	closes := models.Closes(candles)
	n := len(closes)
	need := cfg.Lookback + cfg.Horizon + 1
	if n < need {
		return nil, &InsufficientDataError{Have: n, Need: need}
	}

	scaler := FitScaler(closes)
	scaled := scaler.TransformAll(closes)

	count := n - cfg.Lookback - cfg.Horizon + 1
	inputs := make([][]float64, count)
	targets := make([][]float64, count)
	for i := 0; i < count; i++ {
		inputs[i] = scaled[i : i+cfg.Lookback]
		targets[i] = scaled[i+cfg.Lookback : i+cfg.Lookback+cfg.Horizon]
	}

	trainSize := int(math.Floor(float64(count) * (1 - cfg.TestFraction)))

	return &Dataset{
		TrainInputs:  inputs[:trainSize],
		TrainTargets: targets[:trainSize],
		TestInputs:   inputs[trainSize:],
		TestTargets:  targets[trainSize:],
		Scaler:       scaler,
		LatestWindow: scaled[n-cfg.Lookback:],
	}, nil
}
