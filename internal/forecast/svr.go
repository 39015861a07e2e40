package forecast

import "math"

const (
	svrC       = 100.0
	svrGamma   = 0.1
	svrEpsilon = 0.1

	svrEpochs = 300
	svrTol    = 1e-6
)

// svrModel is RBF-kernel support vector regression. The canonical form
// predicts a single scalar, so the H-step horizon is decomposed structurally
// into H independent sub-models, one per forecast step, each trained on the
// same input windows against its own target column. This is a deliberate
// per-step decomposition, not a native multi-output capability.
type svrModel struct {
	c, gamma, eps float64

	inputs [][]float64
	steps  []svrStep
}

// svrStep holds the dual coefficients for one forecast step.
type svrStep struct {
	beta []float64
	bias float64
}

func newSVRModel(c, gamma, eps float64) *svrModel {
	return &svrModel{c: c, gamma: gamma, eps: eps}
}

func (m *svrModel) Name() string { return string(StrategySVR) }

func (m *svrModel) Fit(inputs, targets [][]float64) error {
	if err := checkTrainingData(StrategySVR, inputs, targets); err != nil {
		return err
	}
	n := len(inputs)
	h := len(targets[0])

	// The kernel matrix is shared by every per-step sub-model.
	kernel := make([][]float64, n)
	for i := range kernel {
		kernel[i] = make([]float64, n)
		for j := 0; j <= i; j++ {
			v := rbf(inputs[i], inputs[j], m.gamma)
			kernel[i][j] = v
			kernel[j][i] = v
		}
	}

	m.inputs = inputs
	m.steps = make([]svrStep, h)
	column := make([]float64, n)
	for step := 0; step < h; step++ {
		for i := range column {
			column[i] = targets[i][step]
		}
		m.steps[step] = solveSVR(kernel, column, m.c, m.eps)
	}
	return nil
}

func (m *svrModel) Predict(input []float64) []float64 {
	if len(m.steps) == 0 {
		return nil
	}
	out := make([]float64, len(m.steps))
	for s, step := range m.steps {
		v := step.bias
		for j, train := range m.inputs {
			if step.beta[j] != 0 {
				v += step.beta[j] * rbf(train, input, m.gamma)
			}
		}
		out[s] = v
	}
	return out
}

// solveSVR fits one scalar sub-model by clipped epsilon-insensitive updates in
// the dual, sweeping samples in fixed order so training is deterministic.
func solveSVR(kernel [][]float64, y []float64, c, eps float64) svrStep {
	n := len(y)
	beta := make([]float64, n)
	bias := 0.0
	for epoch := 0; epoch < svrEpochs; epoch++ {
		maxStep := 0.0
		for i := 0; i < n; i++ {
			f := bias
			for j := 0; j < n; j++ {
				if beta[j] != 0 {
					f += beta[j] * kernel[i][j]
				}
			}
			err := y[i] - f
			switch {
			case err > eps:
				err -= eps
			case err < -eps:
				err += eps
			default:
				continue
			}
			delta := err / (kernel[i][i] + 1)
			next := clamp(beta[i]+delta, -c, c)
			applied := next - beta[i]
			beta[i] = next
			bias += applied
			if a := math.Abs(applied); a > maxStep {
				maxStep = a
			}
		}
		if maxStep < svrTol {
			break
		}
	}
	return svrStep{beta: beta, bias: bias}
}

func rbf(a, b []float64, gamma float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Exp(-gamma * sum)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
