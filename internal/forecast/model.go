package forecast

import (
	"fmt"
	"math"
)

// Strategy identifies one of the closed set of regression variants.
type Strategy string

const (
	StrategyLinear Strategy = "linear"
	StrategyForest Strategy = "forest"
	StrategySVR    Strategy = "svr"
)

// Strategies lists every supported strategy in presentation order.
func Strategies() []Strategy {
	return []Strategy{StrategyLinear, StrategyForest, StrategySVR}
}

// ParseStrategy maps a user-supplied name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyLinear, StrategyForest, StrategySVR:
		return Strategy(s), nil
	}
	return "", &InvalidConfigError{Field: "model", Reason: fmt.Sprintf("unknown strategy %q", s)}
}

// Model maps an L-length scaled window to an H-length scaled forecast vector.
// A Model belongs to the pipeline invocation that created it and is never
// cached across invocations. Fit is deterministic for a fixed seed.
type Model interface {
	Fit(inputs, targets [][]float64) error
	Predict(input []float64) []float64
	Name() string
}

// NewModel builds an unfitted model for the strategy.
//
// The SVR variant is canonically single-output; it is constructed as H
// independent per-step sub-models at fit time (see newSVRModel), not as a
// native multi-output regressor.
func NewModel(s Strategy) (Model, error) {
	switch s {
	case StrategyLinear:
		return newLinearModel(), nil
	case StrategyForest:
		return newForestModel(forestSize, forestSeed), nil
	case StrategySVR:
		return newSVRModel(svrC, svrGamma, svrEpsilon), nil
	}
	return nil, &InvalidConfigError{Field: "model", Reason: fmt.Sprintf("unknown strategy %q", string(s))}
}

// checkTrainingData rejects degenerate training matrices: fewer than two
// examples, NaN/Inf values, or zero variance across the input matrix.
func checkTrainingData(s Strategy, inputs, targets [][]float64) error {
	if len(inputs) < 2 || len(inputs) != len(targets) {
		return &ModelFitError{Strategy: s, Reason: fmt.Sprintf("need at least 2 training examples, got %d inputs / %d targets", len(inputs), len(targets))}
	}
	var sum, sum2 float64
	var count int
	scan := func(rows [][]float64, label string) error {
		for _, row := range rows {
			for _, v := range row {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return &ModelFitError{Strategy: s, Reason: "non-finite value in " + label}
				}
			}
		}
		return nil
	}
	if err := scan(inputs, "inputs"); err != nil {
		return err
	}
	if err := scan(targets, "targets"); err != nil {
		return err
	}
	for _, row := range inputs {
		for _, v := range row {
			sum += v
			sum2 += v * v
			count++
		}
	}
	mean := sum / float64(count)
	if sum2/float64(count)-mean*mean <= 0 {
		return &ModelFitError{Strategy: s, Reason: "zero variance in inputs"}
	}
	return nil
}
