package forecast

import "math"

// ridgeTerm keeps the normal equations solvable when lookback windows are
// collinear (e.g. a perfectly trending series). Small enough not to move
// predictions beyond floating-point noise.
const ridgeTerm = 1e-8

// linearModel is ordinary multivariate linear regression with an intercept.
// It natively produces an H-dimensional output vector from an L-dimensional
// input window.
type linearModel struct {
	weights [][]float64 // (L+1) x H, row 0 is the intercept
	fitted  bool
}

func newLinearModel() *linearModel { return &linearModel{} }

func (m *linearModel) Name() string { return string(StrategyLinear) }

func (m *linearModel) Fit(inputs, targets [][]float64) error {
	if err := checkTrainingData(StrategyLinear, inputs, targets); err != nil {
		return err
	}
	n := len(inputs)
	d := len(inputs[0]) + 1 // +1 intercept
	h := len(targets[0])

	// Normal equations: (XᵀX + λI) W = XᵀY with X carrying a leading ones column.
	gram := make([][]float64, d)
	rhs := make([][]float64, d)
	for i := range gram {
		gram[i] = make([]float64, d)
		rhs[i] = make([]float64, h)
	}
	row := make([]float64, d)
	for k := 0; k < n; k++ {
		row[0] = 1
		copy(row[1:], inputs[k])
		for i := 0; i < d; i++ {
			for j := i; j < d; j++ {
				gram[i][j] += row[i] * row[j]
			}
			for t := 0; t < h; t++ {
				rhs[i][t] += row[i] * targets[k][t]
			}
		}
	}
	for i := 0; i < d; i++ {
		for j := 0; j < i; j++ {
			gram[i][j] = gram[j][i]
		}
		gram[i][i] += ridgeTerm
	}

	weights, ok := solveLinearSystem(gram, rhs)
	if !ok {
		return &ModelFitError{Strategy: StrategyLinear, Reason: "singular normal equations"}
	}
	m.weights = weights
	m.fitted = true
	return nil
}

func (m *linearModel) Predict(input []float64) []float64 {
	if !m.fitted {
		return nil
	}
	h := len(m.weights[0])
	out := make([]float64, h)
	for t := 0; t < h; t++ {
		v := m.weights[0][t]
		for j, x := range input {
			v += m.weights[j+1][t] * x
		}
		out[t] = v
	}
	return out
}

// solveLinearSystem solves A·W = B for W by Gaussian elimination with partial
// pivoting, for multiple right-hand sides. A and B are modified in place.
func solveLinearSystem(a, b [][]float64) ([][]float64, bool) {
	d := len(a)
	h := len(b[0])
	for col := 0; col < d; col++ {
		pivot := col
		for r := col + 1; r < d; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, false
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < d; r++ {
			factor := a[r][col] / a[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c < d; c++ {
				a[r][c] -= factor * a[col][c]
			}
			for t := 0; t < h; t++ {
				b[r][t] -= factor * b[col][t]
			}
		}
	}
	w := make([][]float64, d)
	for r := d - 1; r >= 0; r-- {
		w[r] = make([]float64, h)
		for t := 0; t < h; t++ {
			v := b[r][t]
			for c := r + 1; c < d; c++ {
				v -= a[r][c] * w[c][t]
			}
			w[r][t] = v / a[r][r]
		}
	}
	return w, true
}
