package di

import (
	"fmt"

	"github.com/bentunaru/spy-etf-news-agent/internal/domain/repository"
	"github.com/bentunaru/spy-etf-news-agent/internal/handler/api"
	"github.com/bentunaru/spy-etf-news-agent/internal/usecase"
	"github.com/bentunaru/spy-etf-news-agent/pkg/config"
	xhttp "github.com/bentunaru/spy-etf-news-agent/pkg/http"
	applogger "github.com/bentunaru/spy-etf-news-agent/pkg/logger"
	"github.com/bentunaru/spy-etf-news-agent/pkg/metrics"
	"github.com/bentunaru/spy-etf-news-agent/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideForecaster creates the forecast use case.
func ProvideForecaster(logger *applogger.Logger, m repository.Metrics) *usecase.Forecaster {
	return usecase.NewForecaster(logger, m)
}

// ProvideHTTPHandler creates the API handler with the configured request
// defaults.
func ProvideHTTPHandler(cfg *config.Config, logger *applogger.Logger, forecaster *usecase.Forecaster) xhttp.Handler {
	defaults := api.Defaults{
		Lookback:     cfg.Forecast.Lookback,
		Horizon:      cfg.Forecast.Horizon,
		TestFraction: cfg.Forecast.TestFraction,
		Model:        cfg.Forecast.Model,
	}
	return api.NewForecastHandler(logger, forecaster, defaults, cfg.Forecast.MaxCandles)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, logger, handler)
}
