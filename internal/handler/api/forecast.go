package api

import (
	"errors"
	"fmt"

	"github.com/bentunaru/spy-etf-news-agent/internal/domain/models"
	"github.com/bentunaru/spy-etf-news-agent/internal/forecast"
	"github.com/bentunaru/spy-etf-news-agent/internal/usecase"
	xhttp "github.com/bentunaru/spy-etf-news-agent/pkg/http"
	xlogger "github.com/bentunaru/spy-etf-news-agent/pkg/logger"
	"github.com/bentunaru/spy-etf-news-agent/pkg/util"

	"github.com/labstack/echo/v4"
)

// Defaults holds the configured request defaults, seeded into a request
// before binding so that omitted fields take the service configuration.
// The struct tag defaults on the request types remain the fallback when a
// default here is zero.
type Defaults struct {
	Lookback     int
	Horizon      int
	TestFraction float64
	Model        string
}

// ForecastHandler exposes the forecasting pipeline over HTTP. The caller
// submits the price series in the request body; retrieval of market data is a
// separate collaborator, not this service.
type ForecastHandler struct {
	logger     *xlogger.Logger
	forecaster *usecase.Forecaster
	defaults   Defaults
	maxCandles int
}

func NewForecastHandler(logger *xlogger.Logger, forecaster *usecase.Forecaster, defaults Defaults, maxCandles int) *ForecastHandler {
	if maxCandles <= 0 {
		maxCandles = 10000
	}
	return &ForecastHandler{logger: logger, forecaster: forecaster, defaults: defaults, maxCandles: maxCandles}
}

func (h *ForecastHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/forecast", h.Forecast)
	g.POST("/forecast/compare", h.Compare)
	g.POST("/trend", h.Trend)
}

func (h *ForecastHandler) Forecast(c echo.Context) error {
	req := &models.ForecastRequest{
		Lookback:     h.defaults.Lookback,
		Horizon:      h.defaults.Horizon,
		TestFraction: h.defaults.TestFraction,
		Model:        h.defaults.Model,
	}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	candles, err := h.decodeCandles(req.Candles)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	cfg := forecast.Config{
		Lookback:     req.Lookback,
		Horizon:      req.Horizon,
		TestFraction: req.TestFraction,
		Strategy:     forecast.Strategy(req.Model),
	}
	res, err := h.forecaster.Forecast(c.Request().Context(), req.Symbol, candles, cfg)
	if err != nil {
		return xhttp.AppErrorResponse(c, mapCoreError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *ForecastHandler) Compare(c echo.Context) error {
	req := &models.CompareRequest{
		Lookback:     h.defaults.Lookback,
		Horizon:      h.defaults.Horizon,
		TestFraction: h.defaults.TestFraction,
	}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	candles, err := h.decodeCandles(req.Candles)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	cfg := forecast.Config{
		Lookback:     req.Lookback,
		Horizon:      req.Horizon,
		TestFraction: req.TestFraction,
	}
	res, err := h.forecaster.Compare(c.Request().Context(), req.Symbol, candles, cfg)
	if err != nil {
		return xhttp.AppErrorResponse(c, mapCoreError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *ForecastHandler) Trend(c echo.Context) error {
	req := &models.TrendRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	candles, err := h.decodeCandles(req.Candles)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	res, err := h.forecaster.Trend(c.Request().Context(), req.Symbol, candles)
	if err != nil {
		return xhttp.AppErrorResponse(c, mapCoreError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

// decodeCandles converts payload rows to domain candles and enforces the
// input contract: bounded size, parseable dates, strictly increasing order.
func (h *ForecastHandler) decodeCandles(payload []models.CandlePayload) ([]models.Candle, error) {
	if len(payload) > h.maxCandles {
		return nil, xhttp.BadRequestError(fmt.Sprintf("too many candles: %d (max %d)", len(payload), h.maxCandles))
	}
	candles := make([]models.Candle, len(payload))
	for i, row := range payload {
		date, ok := util.ParseTime(row.Date)
		if !ok {
			return nil, xhttp.BadRequestError(fmt.Sprintf("candle %d: unparseable date %q", i, row.Date))
		}
		candles[i] = models.Candle{
			Date:   date,
			Open:   row.Open,
			High:   row.High,
			Low:    row.Low,
			Close:  row.Close,
			Volume: row.Volume,
		}
	}
	if !models.ChronologicallyOrdered(candles) {
		return nil, xhttp.BadRequestError("candles must be in strictly increasing date order")
	}
	return candles, nil
}

// mapCoreError translates the pipeline error taxonomy into HTTP app errors:
// caller mistakes are 400, data the pipeline cannot learn from is 422.
func mapCoreError(err error) error {
	var (
		invalidCfg   *forecast.InvalidConfigError
		insufficient *forecast.InsufficientDataError
		fitErr       *forecast.ModelFitError
		evalErr      *forecast.EvaluationError
	)
	switch {
	case errors.As(err, &invalidCfg), errors.As(err, &insufficient):
		return xhttp.BadRequestError(err.Error()).WithError(err)
	case errors.As(err, &fitErr), errors.As(err, &evalErr):
		return xhttp.UnprocessableError(err.Error()).WithError(err)
	}
	return err
}
