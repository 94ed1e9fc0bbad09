package q47verify

import "testing"

// AssertionConfig contains tolerances for the verification properties.
type AssertionConfig struct {
	// Samples below this D are ignored for stability and fitting;
	// small checkpoints are dominated by the first splitting prime 283.
	MinStableD int

	// Maximum allowed spread (max ratio / min ratio) for the ≍ claim.
	MaxRatioSpread float64

	// Maximum relative error of the fitted exponent vs 45/46.
	// Convergence is in powers of log D, so this stays loose.
	MaxExponentError float64

	// Minimum R² of the log-log regression.
	MinRSquared float64
}

// DefaultAssertionConfig returns tolerances calibrated against the
// published run at D_max = 10⁶.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MinStableD:       10_000,
		MaxRatioSpread:   2.0,
		MaxExponentError: 0.5,
		MinRSquared:      0.9,
	}
}

// AssertEffectivePredicate verifies the membership predicate against its
// definition for every d up to dmax: d ∈ Q_eff iff no prime factor of d
// lies outside the class 1 (mod 47).
func AssertEffectivePredicate(t *testing.T, dmax int) {
	t.Helper()

	for d := 1; d <= dmax; d++ {
		want := true
		for _, pp := range Factorize(d) {
			if pp.Prime%Conductor != 1 {
				want = false
				break
			}
		}
		if got := IsEffective(d); got != want {
			t.Errorf("IsEffective(%d) = %v, definition says %v (factors %v)",
				d, got, want, Factorize(d))
		}
	}
}

// AssertMonotoneCount verifies that N_eff is non-decreasing with
// per-step increments in {0, 1}, and that the sieve-based count agrees
// with the per-d predicate at every point.
func AssertMonotoneCount(t *testing.T, dmax int) {
	t.Helper()

	eff := effectiveSieve(dmax)
	prev := 0
	for d := 1; d <= dmax; d++ {
		count := prev
		if eff[d] {
			count++
		}
		step := count - prev
		if step != 0 && step != 1 {
			t.Errorf("N_eff(%d) − N_eff(%d) = %d, want 0 or 1", d, d-1, step)
		}
		if eff[d] != IsEffective(d) {
			t.Errorf("sieve and predicate disagree at d = %d: sieve %v, predicate %v",
				d, eff[d], IsEffective(d))
		}
		prev = count
	}
}

// AssertRatioStability verifies the ≍ claim: over samples with
// D ≥ MinStableD, the ratio N_eff(D)/prediction varies by at most
// MaxRatioSpread.
func AssertRatioStability(t *testing.T, samples []Sample, cfg AssertionConfig) {
	t.Helper()

	lo, hi, stable := RatioStability(samples, cfg.MinStableD, cfg.MaxRatioSpread)
	if lo == 0 {
		t.Errorf("no usable samples with D ≥ %d", cfg.MinStableD)
		return
	}
	if !stable {
		t.Errorf("ratio spread %.4f exceeds %.1f (min %.4f, max %.4f)\n"+
			"N_eff(D) is not tracking D/(log D)^{45/46} within the claimed bound",
			hi/lo, cfg.MaxRatioSpread, lo, hi)
	} else {
		t.Logf("✓ ratio stable on D ≥ %d: [%.4f, %.4f], spread %.4f",
			cfg.MinStableD, lo, hi, hi/lo)
	}
}

// AssertExponentFit verifies the log-log regression recovers the
// Landau–Ramanujan exponent within tolerance on the stable tail.
func AssertExponentFit(t *testing.T, samples []Sample, cfg AssertionConfig) {
	t.Helper()

	tail := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if s.D >= cfg.MinStableD {
			tail = append(tail, s)
		}
	}

	fit, err := FitExponent(tail)
	if err != nil {
		t.Fatalf("exponent fit failed: %v", err)
	}

	if fit.RelError > cfg.MaxExponentError {
		t.Errorf("fitted exponent α = %.4f, relative error %.2f%% exceeds %.0f%% (theory 45/46 = %.4f)",
			fit.Alpha, fit.RelError*100, cfg.MaxExponentError*100, LandauRamanujanExponent)
	} else {
		t.Logf("✓ fitted exponent α = %.4f (theory %.4f, relative error %.2f%%)",
			fit.Alpha, LandauRamanujanExponent, fit.RelError*100)
	}

	if fit.RSquared < cfg.MinRSquared {
		t.Errorf("poor log-log fit: R² = %.4f (min %.2f)", fit.RSquared, cfg.MinRSquared)
	}
}

// AssertTrichotomy verifies that every brute-forced ω(p) matches the
// trichotomy and that exactly one ramified prime was seen.
func AssertTrichotomy(t *testing.T, report *LocalRootReport) {
	t.Helper()

	for _, rec := range report.Records {
		if !rec.Match {
			t.Errorf("ω(%d): brute %d, theory %d (%s)", rec.P, rec.Brute, rec.Theory, rec.Class)
		}
	}
	if report.Ramified != 1 {
		t.Errorf("ramified primes seen: %d, want exactly 1 (p = 47)", report.Ramified)
	}
	if !report.AllMatch {
		t.Errorf("trichotomy violated below %d", report.Config.PMax)
	} else {
		t.Logf("✓ trichotomy holds for all %d primes ≤ %d (inert %d, splitting %d, ramified %d)",
			len(report.Records), report.Config.PMax, report.Inert, report.Split, report.Ramified)
	}
}
