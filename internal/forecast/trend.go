package forecast

import "math"

// Trend is the least-squares line through close prices indexed 0..n-1, the
// same fit the historical chart overlays on the candles.
type Trend struct {
	Slope     float64
	Intercept float64
	R2        float64
	StdErr    float64
}

// Bullish reports whether the fitted slope points up.
func (t Trend) Bullish() bool { return t.Slope > 0 }

// FitTrend fits a simple regression of close against its index. At least two
// points are required.
func FitTrend(closes []float64) (Trend, error) {
	n := len(closes)
	if n < 2 {
		return Trend{}, &InsufficientDataError{Have: n, Need: 2}
	}

	var sumX, sumY, sumXX, sumXY float64
	for i, y := range closes {
		x := float64(i)
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	var ssRes, ssTot float64
	meanY := sumY / fn
	for i, y := range closes {
		fit := intercept + slope*float64(i)
		ssRes += (y - fit) * (y - fit)
		ssTot += (y - meanY) * (y - meanY)
	}

	r2 := 1.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	// Standard error of the slope: sqrt(MSE / Σ(x-x̄)²) with Σ(x-x̄)² = denom/n.
	stderr := 0.0
	if n > 2 {
		stderr = math.Sqrt(ssRes / (fn - 2) / (denom / fn))
	}

	return Trend{Slope: slope, Intercept: intercept, R2: r2, StdErr: stderr}, nil
}
