package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bentunaru/spy-etf-news-agent/internal/domain/models"
	"github.com/bentunaru/spy-etf-news-agent/internal/forecast"
	applogger "github.com/bentunaru/spy-etf-news-agent/pkg/logger"
)

// fakeMetrics must be safe for concurrent use: Compare records from one
// goroutine per strategy.
type fakeMetrics struct {
	mu        sync.Mutex
	forecasts int
	errors    map[string]int
}

func newFakeMetrics() *fakeMetrics { return &fakeMetrics{errors: map[string]int{}} }

func (m *fakeMetrics) RecordForecast(model, symbol string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forecasts++
}

func (m *fakeMetrics) RecordError(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[kind]++
}

func (m *fakeMetrics) forecastCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.forecasts
}

func (m *fakeMetrics) errorCount(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors[kind]
}

func (m *fakeMetrics) RecordPredictedPrice(symbol string, price float64) {}

func (m *fakeMetrics) RecordPipelineDuration(model string, secs float64) {}

func testForecaster(t *testing.T) (*Forecaster, *fakeMetrics) {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	m := newFakeMetrics()
	return NewForecaster(l, m), m
}

func series(n int) []models.Candle {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]models.Candle, n)
	for i := range candles {
		price := 400 + float64(i)*0.5
		candles[i] = models.Candle{Date: base.AddDate(0, 0, i), Close: price, Open: price, High: price, Low: price, Volume: 1000}
	}
	return candles
}

func TestForecastRecordsMetrics(t *testing.T) {
	f, m := testForecaster(t)
	cfg := forecast.Config{Lookback: 10, Horizon: 5, TestFraction: 0.2, Strategy: forecast.StrategyLinear}

	report, err := f.Forecast(context.Background(), "SPY", series(40), cfg)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if report.Symbol != "SPY" || report.Model != "linear" {
		t.Fatalf("unexpected report header %q/%q", report.Symbol, report.Model)
	}
	if len(report.Points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(report.Points))
	}
	if got := m.forecastCount(); got != 1 {
		t.Fatalf("expected 1 recorded forecast, got %d", got)
	}
}

func TestForecastErrorKinds(t *testing.T) {
	f, m := testForecaster(t)

	cfg := forecast.Config{Lookback: 10, Horizon: 5, TestFraction: 0.2, Strategy: forecast.StrategyLinear}
	if _, err := f.Forecast(context.Background(), "SPY", series(5), cfg); err == nil {
		t.Fatalf("expected insufficient data error")
	}
	if got := m.errorCount("insufficient_data"); got != 1 {
		t.Fatalf("expected insufficient_data recorded once, got %d", got)
	}

	cfg.Lookback = 0
	if _, err := f.Forecast(context.Background(), "SPY", series(40), cfg); err == nil {
		t.Fatalf("expected invalid config error")
	}
	if got := m.errorCount("invalid_config"); got != 1 {
		t.Fatalf("expected invalid_config recorded once, got %d", got)
	}
}

func TestCompareAllStrategies(t *testing.T) {
	f, m := testForecaster(t)
	cfg := forecast.Config{Lookback: 10, Horizon: 5, TestFraction: 0.2}

	reports, err := f.Compare(context.Background(), "QQQ", series(60), cfg)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}
	if got := m.forecastCount(); got != 3 {
		t.Fatalf("expected 3 recorded forecasts, got %d", got)
	}
	seen := map[string]bool{}
	for _, r := range reports {
		seen[r.Model] = true
	}
	for _, want := range []string{"linear", "forest", "svr"} {
		if !seen[want] {
			t.Fatalf("missing report for %s (got %v)", want, seen)
		}
	}
}

func TestTrendDirection(t *testing.T) {
	f, _ := testForecaster(t)
	tr, err := f.Trend(context.Background(), "SPY", series(30))
	if err != nil {
		t.Fatalf("trend: %v", err)
	}
	if tr.Direction != "bullish" {
		t.Fatalf("rising series should be bullish, got %q", tr.Direction)
	}
	if tr.Symbol != "SPY" {
		t.Fatalf("unexpected symbol %q", tr.Symbol)
	}
}
