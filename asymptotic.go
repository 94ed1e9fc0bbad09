package q47verify

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// SplitDensity is the Dirichlet density of splitting primes p ≡ 1
// (mod 47): one residue class out of φ(47) = 46.
const SplitDensity = 1.0 / 46

// LandauRamanujanExponent is 1 − SplitDensity = 45/46, the exponent of
// log D in the effective-moduli count N_eff(D) ≍ D/(log D)^(45/46).
const LandauRamanujanExponent = 45.0 / 46

// PredictCount returns the Landau–Ramanujan prediction D (log D)^(−45/46).
// Returns 0 for d ≤ 1, where the prediction is undefined.
func PredictCount(d int) float64 {
	if d <= 1 {
		return 0
	}
	return float64(d) / math.Pow(math.Log(float64(d)), LandauRamanujanExponent)
}

// ExponentFit is the result of a log-log regression against the model
// N_eff(D) ≈ C · D / (log D)^α.
type ExponentFit struct {
	Alpha    float64 // Fitted exponent α
	Constant float64 // Fitted leading constant C
	RSquared float64 // Goodness of fit in log-log coordinates
	RelError float64 // |α − 45/46| / (45/46)
}

// FitExponent fits the asymptotic model to the samples by least squares.
// Taking logarithms linearizes the model:
//
//	log(N_eff(D)/D) = log C − α · log log D
//
// so α is minus the slope of log(N/D) against log log D. Samples with
// D ≤ 2 or N_eff = 0 carry no information and are skipped; at least two
// usable samples are required.
func FitExponent(samples []Sample) (ExponentFit, error) {
	xs := make([]float64, 0, len(samples))
	ys := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.D <= 2 || s.NEff <= 0 {
			continue
		}
		xs = append(xs, math.Log(math.Log(float64(s.D))))
		ys = append(ys, math.Log(float64(s.NEff)/float64(s.D)))
	}
	if len(xs) < 2 {
		return ExponentFit{}, fmt.Errorf("fit needs at least 2 usable samples, got %d", len(xs))
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	alpha := -slope

	return ExponentFit{
		Alpha:    alpha,
		Constant: math.Exp(intercept),
		RSquared: stat.RSquared(xs, ys, nil, intercept, slope),
		RelError: math.Abs(alpha-LandauRamanujanExponent) / LandauRamanujanExponent,
	}, nil
}

// RatioStability inspects the ratio N_eff(D)/prediction over all samples
// with D ≥ minD and reports the smallest and largest ratio seen, plus
// whether max/min stays within maxFactor. This is the ≍ check: the claim
// asserts a bounded ratio, not an exact constant.
func RatioStability(samples []Sample, minD int, maxFactor float64) (lo, hi float64, stable bool) {
	for _, s := range samples {
		if s.D < minD || s.Ratio <= 0 {
			continue
		}
		if lo == 0 || s.Ratio < lo {
			lo = s.Ratio
		}
		if s.Ratio > hi {
			hi = s.Ratio
		}
	}
	if lo == 0 {
		return 0, 0, false
	}
	return lo, hi, hi/lo <= maxFactor
}
