package forecast

import (
	"math"
	"testing"
)

// A strictly linear series is the canonical regression check: the linear
// strategy must recover the trend almost exactly and keep projecting it.
func TestRunLinearSeries(t *testing.T) {
	candles := rampSeries(40, 101) // closes 101..140
	res, err := Run(candles, testConfig())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if res.Metrics.RMSE > 1e-4 {
		t.Fatalf("test rmse should be near zero, got %v", res.Metrics.RMSE)
	}
	if res.Metrics.R2 < 0.999 {
		t.Fatalf("r2 should be near one, got %v", res.Metrics.R2)
	}

	if len(res.Points) != 5 {
		t.Fatalf("expected 5 forecast points, got %d", len(res.Points))
	}
	for i, p := range res.Points {
		want := 141 + float64(i)
		if math.Abs(p.Predicted-want) > 1e-3 {
			t.Fatalf("step %d: predicted %v want %v", i, p.Predicted, want)
		}
	}
}

func TestRunForecastLength(t *testing.T) {
	for _, strategy := range Strategies() {
		cfg := testConfig()
		cfg.Strategy = strategy
		cfg.Horizon = 3
		res, err := Run(rampSeries(60, 250), cfg)
		if err != nil {
			t.Fatalf("run %s: %v", strategy, err)
		}
		if len(res.Points) != 3 {
			t.Fatalf("%s: expected 3 points, got %d", strategy, len(res.Points))
		}
	}
}

func TestRunForecastDatesAndBand(t *testing.T) {
	candles := rampSeries(40, 101)
	res, err := Run(candles, testConfig())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	last := candles[len(candles)-1].Date
	for i, p := range res.Points {
		wantDate := last.AddDate(0, 0, i+1)
		if !p.Date.Equal(wantDate) {
			t.Fatalf("step %d: date %v want %v", i, p.Date, wantDate)
		}
		if p.Lower > p.Predicted || p.Upper < p.Predicted {
			t.Fatalf("step %d: band [%v, %v] does not bracket %v", i, p.Lower, p.Upper, p.Predicted)
		}
	}
}

func TestRunValidatesConfigFirst(t *testing.T) {
	// Config errors must surface before any data handling, even on an
	// empty series.
	_, err := Run(nil, Config{Lookback: 0, Horizon: 5, TestFraction: 0.2, Strategy: StrategyLinear})
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := err.(*InvalidConfigError); !ok {
		t.Fatalf("expected *InvalidConfigError, got %T", err)
	}
}

func TestRunShortSeries(t *testing.T) {
	_, err := Run(rampSeries(12, 100), testConfig())
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := err.(*InsufficientDataError); !ok {
		t.Fatalf("expected *InsufficientDataError, got %T", err)
	}
}
