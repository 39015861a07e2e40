package forecast

import (
	"testing"
	"time"

	"github.com/bentunaru/spy-etf-news-agent/internal/domain/models"
)

// rampSeries builds n daily candles with closes start, start+1, ...
func rampSeries(n int, start float64) []models.Candle {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]models.Candle, n)
	for i := range candles {
		price := start + float64(i)
		candles[i] = models.Candle{
			Date:   base.AddDate(0, 0, i),
			Open:   price - 0.5,
			High:   price + 1,
			Low:    price - 1,
			Close:  price,
			Volume: 1_000_000,
		}
	}
	return candles
}

func testConfig() Config {
	return Config{Lookback: 10, Horizon: 5, TestFraction: 0.2, Strategy: StrategyLinear}
}

func TestConfigValidation(t *testing.T) {
	cases := []Config{
		{Lookback: 0, Horizon: 5, TestFraction: 0.2, Strategy: StrategyLinear},
		{Lookback: 10, Horizon: 0, TestFraction: 0.2, Strategy: StrategyLinear},
		{Lookback: 10, Horizon: 5, TestFraction: 0, Strategy: StrategyLinear},
		{Lookback: 10, Horizon: 5, TestFraction: 1, Strategy: StrategyLinear},
		{Lookback: 10, Horizon: 5, TestFraction: 0.2, Strategy: "prophet"},
	}
	for i, cfg := range cases {
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("case %d: expected error", i)
		}
		if _, ok := err.(*InvalidConfigError); !ok {
			t.Fatalf("case %d: expected *InvalidConfigError, got %T", i, err)
		}
	}
	if err := testConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestBuildDatasetExampleCount(t *testing.T) {
	ds, err := BuildDataset(rampSeries(40, 100), testConfig())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// 40 - 10 - 5 + 1 examples, split 80/20.
	if got := len(ds.TrainInputs) + len(ds.TestInputs); got != 26 {
		t.Fatalf("expected 26 examples, got %d", got)
	}
	if len(ds.TrainInputs) != 20 || len(ds.TestInputs) != 6 {
		t.Fatalf("expected 20/6 split, got %d/%d", len(ds.TrainInputs), len(ds.TestInputs))
	}
	if len(ds.TrainInputs[0]) != 10 || len(ds.TrainTargets[0]) != 5 {
		t.Fatalf("unexpected window shapes %d/%d", len(ds.TrainInputs[0]), len(ds.TrainTargets[0]))
	}
	if len(ds.LatestWindow) != 10 {
		t.Fatalf("latest window should have lookback length, got %d", len(ds.LatestWindow))
	}
}

func TestBuildDatasetInsufficientData(t *testing.T) {
	// Need at least lookback + horizon + 1 = 16 closes.
	_, err := BuildDataset(rampSeries(15, 100), testConfig())
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := err.(*InsufficientDataError); !ok {
		t.Fatalf("expected *InsufficientDataError, got %T", err)
	}

	if _, err := BuildDataset(rampSeries(16, 100), testConfig()); err != nil {
		t.Fatalf("16 closes should be enough: %v", err)
	}
}

func TestBuildDatasetChronologicalSplit(t *testing.T) {
	ds, err := BuildDataset(rampSeries(40, 100), testConfig())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// Closes are strictly increasing, so window start values preserve index
	// order: every train example must start before every test example.
	firstTest := ds.TestInputs[0][0]
	for i, input := range ds.TrainInputs {
		if input[0] >= firstTest {
			t.Fatalf("train example %d does not precede the test split", i)
		}
	}
}

func TestBuildDatasetLatestWindow(t *testing.T) {
	ds, err := BuildDataset(rampSeries(40, 100), testConfig())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// Last close is the series max, scaled to exactly 1.
	if got := ds.LatestWindow[len(ds.LatestWindow)-1]; got != 1 {
		t.Fatalf("latest window should end at the scaled max, got %v", got)
	}
}
