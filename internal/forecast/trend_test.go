package forecast

import (
	"math"
	"testing"
)

func TestFitTrendLine(t *testing.T) {
	// y = 2x + 10, exact fit.
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 10 + 2*float64(i)
	}
	tr, err := FitTrend(closes)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if math.Abs(tr.Slope-2) > 1e-9 || math.Abs(tr.Intercept-10) > 1e-9 {
		t.Fatalf("got slope %v intercept %v", tr.Slope, tr.Intercept)
	}
	if math.Abs(tr.R2-1) > 1e-9 {
		t.Fatalf("exact fit should have r2 1, got %v", tr.R2)
	}
	if tr.StdErr > 1e-6 {
		t.Fatalf("exact fit should have ~0 stderr, got %v", tr.StdErr)
	}
	if !tr.Bullish() {
		t.Fatalf("positive slope should be bullish")
	}
}

func TestFitTrendDirection(t *testing.T) {
	tr, err := FitTrend([]float64{100, 98, 95, 96, 90})
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if tr.Bullish() {
		t.Fatalf("falling series should not be bullish")
	}
}

func TestFitTrendTooShort(t *testing.T) {
	if _, err := FitTrend([]float64{100}); err == nil {
		t.Fatalf("expected error")
	}
}
