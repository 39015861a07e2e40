package forecast

import "math"

// Metrics holds held-out accuracy figures computed over the flattened test
// predictions, plus the raw prediction matrix for downstream rendering.
type Metrics struct {
	RMSE        float64
	MAE         float64
	R2          float64
	Predictions [][]float64
}

// Evaluate predicts every test input and computes RMSE, MAE and R² against
// the test targets. An empty test split is an error, never degenerate zeros.
func Evaluate(m Model, inputs, targets [][]float64) (Metrics, error) {
	if len(inputs) == 0 || len(targets) == 0 {
		return Metrics{}, &EvaluationError{Reason: "empty test split"}
	}

	predictions := make([][]float64, len(inputs))
	for i, input := range inputs {
		predictions[i] = m.Predict(input)
	}

	var sumSq, sumAbs, sumTarget float64
	var count int
	for i, row := range targets {
		for j, want := range row {
			diff := predictions[i][j] - want
			sumSq += diff * diff
			sumAbs += math.Abs(diff)
			sumTarget += want
			count++
		}
	}
	mean := sumTarget / float64(count)

	var ssTot float64
	for _, row := range targets {
		for _, want := range row {
			d := want - mean
			ssTot += d * d
		}
	}

	r2 := 0.0
	switch {
	case ssTot > 0:
		r2 = 1 - sumSq/ssTot
	case sumSq == 0:
		// Constant target perfectly predicted.
		r2 = 1
	default:
		return Metrics{}, &EvaluationError{Reason: "undefined R²: constant target with nonzero residual"}
	}

	return Metrics{
		RMSE:        math.Sqrt(sumSq / float64(count)),
		MAE:         sumAbs / float64(count),
		R2:          r2,
		Predictions: predictions,
	}, nil
}
