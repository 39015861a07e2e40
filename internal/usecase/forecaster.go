package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/bentunaru/spy-etf-news-agent/internal/domain/models"
	domrepo "github.com/bentunaru/spy-etf-news-agent/internal/domain/repository"
	"github.com/bentunaru/spy-etf-news-agent/internal/forecast"
	applogger "github.com/bentunaru/spy-etf-news-agent/pkg/logger"
)

// Forecaster runs forecast pipelines for callers, adding logging and metrics
// around the core. Each call owns its pipeline state end to end, so concurrent
// calls need no coordination.
type Forecaster struct {
	logger  *applogger.Logger
	metrics domrepo.Metrics
}

func NewForecaster(logger *applogger.Logger, metrics domrepo.Metrics) *Forecaster {
	return &Forecaster{logger: logger, metrics: metrics}
}

// Forecast executes one pipeline invocation and shapes the result for the
// presentation layer.
func (f *Forecaster) Forecast(ctx context.Context, symbol string, candles []models.Candle, cfg forecast.Config) (models.ForecastReport, error) {
	if err := ctx.Err(); err != nil {
		return models.ForecastReport{}, err
	}

	start := time.Now()
	res, err := forecast.Run(candles, cfg)
	if err != nil {
		f.metrics.RecordError(errorKind(err))
		f.logger.Error("forecast pipeline failed",
			applogger.String("symbol", symbol),
			applogger.String("model", string(cfg.Strategy)),
			applogger.Error(err),
		)
		return models.ForecastReport{}, err
	}

	elapsed := time.Since(start)
	f.metrics.RecordForecast(string(cfg.Strategy), symbol)
	f.metrics.RecordPipelineDuration(string(cfg.Strategy), elapsed.Seconds())
	if len(res.Points) > 0 {
		f.metrics.RecordPredictedPrice(symbol, res.Points[0].Predicted)
	}
	f.logger.Info("forecast complete",
		applogger.String("symbol", symbol),
		applogger.String("model", string(cfg.Strategy)),
		applogger.Int("horizon", cfg.Horizon),
		applogger.Float("rmse", res.Metrics.RMSE),
		applogger.Duration("elapsed", elapsed),
	)

	return report(symbol, res), nil
}

// Compare runs every strategy over the same series, each as an independent
// pipeline invocation on its own goroutine. Strategies that fail are logged
// and skipped; the call errors only when none succeed.
func (f *Forecaster) Compare(ctx context.Context, symbol string, candles []models.Candle, cfg forecast.Config) ([]models.ForecastReport, error) {
	strategies := forecast.Strategies()
	reports := make([]models.ForecastReport, len(strategies))
	errs := make([]error, len(strategies))

	var wg sync.WaitGroup
	for i, strategy := range strategies {
		wg.Add(1)
		go func(i int, strategy forecast.Strategy) {
			defer wg.Done()
			runCfg := cfg
			runCfg.Strategy = strategy
			reports[i], errs[i] = f.Forecast(ctx, symbol, candles, runCfg)
		}(i, strategy)
	}
	wg.Wait()

	out := make([]models.ForecastReport, 0, len(strategies))
	var firstErr error
	for i := range strategies {
		if errs[i] != nil {
			if firstErr == nil {
				firstErr = errs[i]
			}
			continue
		}
		out = append(out, reports[i])
	}
	if len(out) == 0 {
		return nil, firstErr
	}
	return out, nil
}

// Trend fits the least-squares trend line over the series closes.
func (f *Forecaster) Trend(ctx context.Context, symbol string, candles []models.Candle) (models.TrendLine, error) {
	if err := ctx.Err(); err != nil {
		return models.TrendLine{}, err
	}

	t, err := forecast.FitTrend(models.Closes(candles))
	if err != nil {
		f.metrics.RecordError(errorKind(err))
		return models.TrendLine{}, err
	}
	direction := "bearish"
	if t.Bullish() {
		direction = "bullish"
	}
	return models.TrendLine{
		Symbol:    symbol,
		Slope:     t.Slope,
		Intercept: t.Intercept,
		R2:        t.R2,
		StdErr:    t.StdErr,
		Direction: direction,
	}, nil
}

func report(symbol string, res *forecast.Result) models.ForecastReport {
	return models.ForecastReport{
		Symbol:      symbol,
		Model:       string(res.Strategy),
		GeneratedAt: time.Now().UTC(),
		Metrics: models.EvaluationMetrics{
			RMSE: res.Metrics.RMSE,
			MAE:  res.Metrics.MAE,
			R2:   res.Metrics.R2,
		},
		Points: res.Points,
	}
}

func errorKind(err error) string {
	switch err.(type) {
	case *forecast.InvalidConfigError:
		return "invalid_config"
	case *forecast.InsufficientDataError:
		return "insufficient_data"
	case *forecast.ModelFitError:
		return "model_fit"
	case *forecast.EvaluationError:
		return "evaluation"
	}
	return "internal"
}
