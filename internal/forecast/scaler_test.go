package forecast

import (
	"math"
	"testing"
)

func TestScalerRoundTrip(t *testing.T) {
	values := []float64{432.1, 418.7, 440.0, 425.3, 433.8}
	s := FitScaler(values)
	for _, v := range values {
		got := s.Inverse(s.Transform(v))
		if math.Abs(got-v) > 1e-9 {
			t.Fatalf("round trip %v -> %v", v, got)
		}
	}
}

func TestScalerRange(t *testing.T) {
	values := []float64{100, 150, 125, 200}
	s := FitScaler(values)
	for _, v := range s.TransformAll(values) {
		if v < 0 || v > 1 {
			t.Fatalf("scaled value %v outside [0,1]", v)
		}
	}
	if s.Transform(100) != 0 || s.Transform(200) != 1 {
		t.Fatalf("min/max should map to 0 and 1")
	}
}

func TestScalerConstantDomain(t *testing.T) {
	s := FitScaler([]float64{50, 50, 50})
	if got := s.Transform(50); got != 0 {
		t.Fatalf("constant domain should scale to 0, got %v", got)
	}
	if got := s.Inverse(0); got != 50 {
		t.Fatalf("inverse of 0 should be 50, got %v", got)
	}
}
