package forecast

import (
	"math"
	"testing"
)

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"linear", "forest", "svr"} {
		s, err := ParseStrategy(name)
		if err != nil {
			t.Fatalf("parse %q: %v", name, err)
		}
		if string(s) != name {
			t.Fatalf("parse %q returned %q", name, s)
		}
	}
	if _, err := ParseStrategy("lstm"); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}

func TestFitRejectsDegenerateData(t *testing.T) {
	good := [][]float64{{0.1, 0.2}, {0.2, 0.3}, {0.3, 0.4}}
	targets := [][]float64{{0.3}, {0.4}, {0.5}}

	cases := []struct {
		name    string
		inputs  [][]float64
		targets [][]float64
	}{
		{"one example", good[:1], targets[:1]},
		{"nan input", [][]float64{{math.NaN(), 0.2}, {0.2, 0.3}}, targets[:2]},
		{"inf target", good[:2], [][]float64{{math.Inf(1)}, {0.4}}},
		{"zero variance", [][]float64{{0.5, 0.5}, {0.5, 0.5}}, targets[:2]},
	}
	for _, strategy := range Strategies() {
		for _, tc := range cases {
			m, err := NewModel(strategy)
			if err != nil {
				t.Fatalf("new %s: %v", strategy, err)
			}
			err = m.Fit(tc.inputs, tc.targets)
			if err == nil {
				t.Fatalf("%s/%s: expected fit error", strategy, tc.name)
			}
			if _, ok := err.(*ModelFitError); !ok {
				t.Fatalf("%s/%s: expected *ModelFitError, got %T", strategy, tc.name, err)
			}
		}
	}
}

func TestFitDeterminism(t *testing.T) {
	ds, err := BuildDataset(rampSeries(40, 100), testConfig())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, strategy := range Strategies() {
		var prev []float64
		for run := 0; run < 2; run++ {
			m, err := NewModel(strategy)
			if err != nil {
				t.Fatalf("new %s: %v", strategy, err)
			}
			if err := m.Fit(ds.TrainInputs, ds.TrainTargets); err != nil {
				t.Fatalf("fit %s: %v", strategy, err)
			}
			got := m.Predict(ds.LatestWindow)
			if len(got) != 5 {
				t.Fatalf("%s: expected 5 outputs, got %d", strategy, len(got))
			}
			for _, v := range got {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("%s: non-finite prediction %v", strategy, got)
				}
			}
			if prev != nil {
				for i := range got {
					if got[i] != prev[i] {
						t.Fatalf("%s: run %d differs at step %d: %v vs %v", strategy, run, i, got[i], prev[i])
					}
				}
			}
			prev = got
		}
	}
}

func TestSVRPerStepDecomposition(t *testing.T) {
	ds, err := BuildDataset(rampSeries(40, 100), testConfig())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	m := newSVRModel(svrC, svrGamma, svrEpsilon)
	if err := m.Fit(ds.TrainInputs, ds.TrainTargets); err != nil {
		t.Fatalf("fit: %v", err)
	}
	if len(m.steps) != 5 {
		t.Fatalf("expected one sub-model per horizon step, got %d", len(m.steps))
	}
}
