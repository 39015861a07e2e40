package forecast

import (
	"github.com/bentunaru/spy-etf-news-agent/internal/domain/models"
)

// Result bundles what one pipeline invocation produces: held-out metrics and
// the projected points. Nothing in it references internal pipeline state.
type Result struct {
	Strategy Strategy
	Metrics  Metrics
	Points   []models.ForecastPoint
}

// Run executes the whole pipeline on a chronological price series: validate
// the configuration, window and split the series, fit the selected strategy,
// evaluate it on the held-out suffix and project the forecast from the latest
// window. Every artifact (scaler, dataset, model) is owned by this call and
// discarded with it.
func Run(candles []models.Candle, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ds, err := BuildDataset(candles, cfg)
	if err != nil {
		return nil, err
	}

	model, err := NewModel(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	if err := model.Fit(ds.TrainInputs, ds.TrainTargets); err != nil {
		return nil, err
	}

	metrics, err := Evaluate(model, ds.TestInputs, ds.TestTargets)
	if err != nil {
		return nil, err
	}

	lastDate := candles[len(candles)-1].Date
	points := Forecast(model, ds, lastDate, cfg.Horizon, metrics.RMSE)

	return &Result{Strategy: cfg.Strategy, Metrics: metrics, Points: points}, nil
}
