package forecast

// Scaler is an invertible min-max mapping from the raw close-price domain to
// [0,1]. It is fit once per pipeline invocation and never shared.
type Scaler struct {
	min  float64
	span float64
}

// FitScaler fits the scaler over the full value domain. A constant domain gets
// unit span so Transform maps everything to 0 and Inverse stays defined.
func FitScaler(values []float64) *Scaler {
	if len(values) == 0 {
		return &Scaler{min: 0, span: 1}
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	return &Scaler{min: lo, span: span}
}

// Transform maps a raw value into the scaled domain.
func (s *Scaler) Transform(v float64) float64 {
	return (v - s.min) / s.span
}

// Inverse maps a scaled value back to the raw domain. Inverse(Transform(x)) == x
// up to floating-point epsilon.
func (s *Scaler) Inverse(v float64) float64 {
	return v*s.span + s.min
}

// TransformAll transforms a slice, returning a fresh slice.
func (s *Scaler) TransformAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = s.Transform(v)
	}
	return out
}

// InverseAll inverse-transforms a slice, returning a fresh slice.
func (s *Scaler) InverseAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = s.Inverse(v)
	}
	return out
}
