package q47verify

import (
	"fmt"
	"sort"
)

// Conductor is the modulus of the congruence condition defining Q_eff.
// Q(n) = n⁴⁷ − (n−1)⁴⁷ has conductor 47; primes split completely exactly
// when p ≡ 1 (mod 47).
const Conductor = 47

// IsEffective reports whether d belongs to Q_eff, the set of moduli with
// non-vanishing local density: every prime factor of d must be ≡ 1
// (mod 47). d = 1 is vacuously effective. The ramified prime 47 does not
// qualify (ω(47) = 0), so 47 and its multiples are never effective.
// Non-positive d is not a modulus and returns false.
func IsEffective(d int) bool {
	if d < 1 {
		return false
	}
	for _, pp := range Factorize(d) {
		if pp.Prime%Conductor != 1 {
			return false
		}
	}
	return true
}

// CountConfig controls the effective-moduli scan.
type CountConfig struct {
	DMax        int   // Upper bound of the scan (inclusive)
	Checkpoints []int // Sample points; out-of-range values are dropped, DMax is always sampled
}

// DefaultCountConfig returns the published scan: D_max = 10⁶ with the
// reference checkpoint list.
func DefaultCountConfig() CountConfig {
	return CountConfig{
		DMax:        1_000_000,
		Checkpoints: []int{100, 500, 1000, 5000, 10_000, 50_000, 100_000, 500_000, 1_000_000},
	}
}

// StrideCheckpoints returns n evenly spaced checkpoints ending at dmax,
// for scans at non-default bounds.
func StrideCheckpoints(dmax, n int) []int {
	if dmax < 1 || n < 1 {
		return nil
	}
	stride := dmax / n
	if stride < 1 {
		stride = 1
	}
	cps := make([]int, 0, n)
	for d := stride; d < dmax; d += stride {
		cps = append(cps, d)
	}
	return append(cps, dmax)
}

// Sample is the running count observed at one checkpoint.
type Sample struct {
	D         int     // Checkpoint modulus
	NEff      int     // N_eff(D) = #{q ≤ D : q ∈ Q_eff}
	Predicted float64 // D (log D)^(−45/46)
	Ratio     float64 // NEff / Predicted (0 when the prediction is 0)
	Fraction  float64 // 100 · NEff / D
}

// CountReport holds the result of one full scan.
type CountReport struct {
	Config  CountConfig
	Samples []Sample
	Total   int // N_eff(DMax)
}

// CountEffectiveModuli scans D = 1..DMax, counting effective moduli and
// recording a Sample at each checkpoint. The count is built with a
// multiplicative sieve: start with every integer marked effective, then
// strike all multiples of each non-qualifying prime; survivors have only
// qualifying prime factors. A bound below 1 is a usage error and yields
// no partial output.
func CountEffectiveModuli(cfg CountConfig) (*CountReport, error) {
	if cfg.DMax < 1 {
		return nil, fmt.Errorf("invalid bound: DMax = %d, must be a positive integer", cfg.DMax)
	}

	checkpoints := normalizeCheckpoints(cfg.Checkpoints, cfg.DMax)
	eff := effectiveSieve(cfg.DMax)

	report := &CountReport{
		Config:  cfg,
		Samples: make([]Sample, 0, len(checkpoints)),
	}

	count := 0
	next := 0
	for d := 1; d <= cfg.DMax; d++ {
		if eff[d] {
			count++
		}
		if next < len(checkpoints) && d == checkpoints[next] {
			report.Samples = append(report.Samples, newSample(d, count))
			next++
		}
	}
	report.Total = count

	return report, nil
}

func newSample(d, count int) Sample {
	predicted := PredictCount(d)
	ratio := 0.0
	if predicted > 0 {
		ratio = float64(count) / predicted
	}
	return Sample{
		D:         d,
		NEff:      count,
		Predicted: predicted,
		Ratio:     ratio,
		Fraction:  float64(count) / float64(d) * 100,
	}
}

// normalizeCheckpoints sorts, deduplicates and clips the checkpoint list
// to [1, dmax], always keeping dmax itself as the final sample.
func normalizeCheckpoints(cps []int, dmax int) []int {
	out := make([]int, 0, len(cps)+1)
	for _, d := range cps {
		if d >= 1 && d <= dmax {
			out = append(out, d)
		}
	}
	out = append(out, dmax)
	sort.Ints(out)

	dedup := out[:1]
	for _, d := range out[1:] {
		if d != dedup[len(dedup)-1] {
			dedup = append(dedup, d)
		}
	}
	return dedup
}

// effectiveSieve marks every d in [1, dmax] lying in Q_eff.
func effectiveSieve(dmax int) []bool {
	eff := make([]bool, dmax+1)
	for d := 1; d <= dmax; d++ {
		eff[d] = true
	}
	for _, p := range SievePrimes(dmax) {
		if p%Conductor == 1 {
			continue
		}
		for m := p; m <= dmax; m += p {
			eff[m] = false
		}
	}
	return eff
}

// countByFactorization is the direct rendition of the definition: apply
// the membership predicate to every d independently. Quadratic-ish and
// kept for cross-checking the sieve in tests.
func countByFactorization(dmax int) int {
	count := 0
	for d := 1; d <= dmax; d++ {
		if IsEffective(d) {
			count++
		}
	}
	return count
}
