package q47verify

import (
	"math"
	"testing"
)

func TestPredictCount_UndefinedBelowTwo(t *testing.T) {
	for _, d := range []int{-1, 0, 1} {
		if got := PredictCount(d); got != 0 {
			t.Errorf("PredictCount(%d) = %v, want 0", d, got)
		}
	}
}

func TestPredictCount_ReferenceValues(t *testing.T) {
	// Values from the published checkpoint table.
	cases := map[int]float64{
		100:       22.45,
		1000:      150.98,
		1_000_000: 76634.38,
	}
	for d, want := range cases {
		if got := PredictCount(d); math.Abs(got-want) > 0.01 {
			t.Errorf("PredictCount(%d) = %.2f, want %.2f", d, got, want)
		}
	}
}

func TestDensityConstants(t *testing.T) {
	if math.Abs(SplitDensity*46-1) > 1e-15 {
		t.Errorf("SplitDensity = %v, want 1/46", SplitDensity)
	}
	if math.Abs((1-SplitDensity)-LandauRamanujanExponent) > 1e-15 {
		t.Errorf("LandauRamanujanExponent = %v, want 1 − 1/46", LandauRamanujanExponent)
	}
}

// TestFitExponent_RecoversSyntheticModel: samples generated exactly from
// N = C·D/(log D)^α must give back α and C, up to integer rounding of
// the counts.
func TestFitExponent_RecoversSyntheticModel(t *testing.T) {
	const c = 25.0
	checkpoints := []int{1000, 5000, 10_000, 50_000, 100_000, 500_000, 1_000_000}

	samples := make([]Sample, 0, len(checkpoints))
	for _, d := range checkpoints {
		n := int(math.Round(c * float64(d) / math.Pow(math.Log(float64(d)), LandauRamanujanExponent)))
		samples = append(samples, Sample{D: d, NEff: n})
	}

	fit, err := FitExponent(samples)
	if err != nil {
		t.Fatalf("FitExponent: %v", err)
	}

	if math.Abs(fit.Alpha-LandauRamanujanExponent) > 0.005 {
		t.Errorf("fitted α = %.6f, want %.6f ± 0.005", fit.Alpha, LandauRamanujanExponent)
	}
	if math.Abs(fit.Constant-c) > 0.1 {
		t.Errorf("fitted C = %.4f, want %.1f ± 0.1", fit.Constant, c)
	}
	if fit.RSquared < 0.999 {
		t.Errorf("R² = %.6f, want ≥ 0.999 for exact model data", fit.RSquared)
	}
	t.Logf("✓ recovered α = %.6f, C = %.4f, R² = %.6f", fit.Alpha, fit.Constant, fit.RSquared)
}

func TestFitExponent_NeedsTwoSamples(t *testing.T) {
	if _, err := FitExponent([]Sample{{D: 1000, NEff: 4}}); err == nil {
		t.Errorf("expected error for a single sample")
	}
	if _, err := FitExponent(nil); err == nil {
		t.Errorf("expected error for no samples")
	}
}

// TestFitExponent_SkipsDegenerateSamples: D ≤ 2 and zero counts carry no
// information and must not poison the regression.
func TestFitExponent_SkipsDegenerateSamples(t *testing.T) {
	degenerate := []Sample{
		{D: 1, NEff: 1},
		{D: 2, NEff: 1},
		{D: 1000, NEff: 0},
	}
	if _, err := FitExponent(degenerate); err == nil {
		t.Errorf("expected error: no usable samples after skipping degenerates")
	}
}

func TestRatioStability_Window(t *testing.T) {
	samples := []Sample{
		{D: 500, Ratio: 0.5}, // Below the window, ignored
		{D: 10_000, Ratio: 0.020},
		{D: 100_000, Ratio: 0.030},
		{D: 1_000_000, Ratio: 0.025},
	}

	lo, hi, stable := RatioStability(samples, 10_000, 2.0)
	if !stable || lo != 0.020 || hi != 0.030 {
		t.Errorf("RatioStability = (%.3f, %.3f, %v), want (0.020, 0.030, true)", lo, hi, stable)
	}

	if _, _, stable := RatioStability(samples, 10_000, 1.2); stable {
		t.Errorf("spread 1.5 reported stable under maxFactor 1.2")
	}

	if lo, hi, stable := RatioStability(samples, 2_000_000, 2.0); stable || lo != 0 || hi != 0 {
		t.Errorf("empty window reported stable (lo %.3f, hi %.3f)", lo, hi)
	}
}
