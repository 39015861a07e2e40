package forecast

import (
	"time"

	"github.com/bentunaru/spy-etf-news-agent/internal/domain/models"
)

// Forecast feeds the latest scaled window through a fitted model, inverse
// transforms the prediction to the price domain and attaches dates and an
// uncertainty band.
//
// Dates advance in plain calendar-day steps from the last observed date; the
// series is not trading-calendar aware. The band scales each prediction by
// (1 ± rmse) where rmse is the scaled-domain test error, reused directly as a
// fractional band in the price domain.
func Forecast(m Model, ds *Dataset, lastDate time.Time, horizon int, rmse float64) []models.ForecastPoint {
	scaled := m.Predict(ds.LatestWindow)
	prices := ds.Scaler.InverseAll(scaled)

	points := make([]models.ForecastPoint, 0, horizon)
	for step := 0; step < horizon && step < len(prices); step++ {
		p := prices[step]
		points = append(points, models.ForecastPoint{
			Date:      lastDate.AddDate(0, 0, step+1),
			Predicted: p,
			Lower:     p * (1 - rmse),
			Upper:     p * (1 + rmse),
		})
	}
	return points
}
