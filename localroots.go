package q47verify

import "fmt"

// PrimeClass classifies a prime by its behavior for Q(n) = n⁴⁷ − (n−1)⁴⁷.
type PrimeClass int

const (
	Inert     PrimeClass = iota // p ≢ 1 (mod 47), p ≠ 47: ω(p) = 0
	Splitting                   // p ≡ 1 (mod 47): ω(p) = 46
	Ramified                    // p = 47: ω(p) = 0, forced by Q(n) ≡ 1 (mod 47)
)

func (c PrimeClass) String() string {
	switch c {
	case Splitting:
		return "splitting"
	case Ramified:
		return "ramified"
	default:
		return "inert"
	}
}

// ClassifyPrime returns the trichotomy class of p.
func ClassifyPrime(p int) PrimeClass {
	switch {
	case p == Conductor:
		return Ramified
	case p%Conductor == 1:
		return Splitting
	default:
		return Inert
	}
}

// QPoly evaluates Q(n) = n⁴⁷ − (n−1)⁴⁷ modulo m, reduced into [0, m).
func QPoly(n, m int64) int64 {
	q := PowMod(n, Conductor, m) - PowMod(n-1, Conductor, m)
	q %= m
	if q < 0 {
		q += m
	}
	return q
}

// OmegaBrute counts the roots of Q modulo p by testing every residue
// class n in [0, p).
func OmegaBrute(p int) int {
	count := 0
	for n := int64(0); n < int64(p); n++ {
		if QPoly(n, int64(p)) == 0 {
			count++
		}
	}
	return count
}

// OmegaTheory returns ω(p) as given by the local root trichotomy.
func OmegaTheory(p int) int {
	if ClassifyPrime(p) == Splitting {
		return Conductor - 1
	}
	return 0
}

// VerifyResidueClasses checks the identity Q(n) ≡ 1 (mod 47) for every
// residue class n. The identity is what makes 47 ramified with no roots:
// Q is constant 1 modulo its own conductor.
func VerifyResidueClasses() error {
	for n := int64(0); n < Conductor; n++ {
		if q := QPoly(n, Conductor); q != 1 {
			return fmt.Errorf("Q(%d) ≡ %d (mod %d), want 1", n, q, Conductor)
		}
	}
	return nil
}

// LocalRootConfig controls the trichotomy verification.
type LocalRootConfig struct {
	PMax int // Verify all primes up to this bound (inclusive)
}

// DefaultLocalRootConfig returns the published bound, which covers the
// ramified prime and the first twenty splitting primes.
func DefaultLocalRootConfig() LocalRootConfig {
	return LocalRootConfig{PMax: 6299}
}

// PrimeRecord is the verification outcome for one prime.
type PrimeRecord struct {
	P      int
	Class  PrimeClass
	Theory int // ω(p) from the trichotomy
	Brute  int // ω(p) by exhaustive root counting
	Match  bool
}

// LocalRootReport summarizes a trichotomy verification run.
type LocalRootReport struct {
	Config   LocalRootConfig
	Records  []PrimeRecord
	Inert    int
	Split    int
	Ramified int
	AllMatch bool
}

// VerifyLocalRoots computes ω(p) by brute force for every prime p ≤ PMax
// and compares it against the trichotomy. A bound below 2 admits no
// primes and is a usage error.
func VerifyLocalRoots(cfg LocalRootConfig) (*LocalRootReport, error) {
	if cfg.PMax < 2 {
		return nil, fmt.Errorf("invalid bound: PMax = %d, must be at least 2", cfg.PMax)
	}

	primes := SievePrimes(cfg.PMax)
	report := &LocalRootReport{
		Config:   cfg,
		Records:  make([]PrimeRecord, 0, len(primes)),
		AllMatch: true,
	}

	for _, p := range primes {
		class := ClassifyPrime(p)
		rec := PrimeRecord{
			P:      p,
			Class:  class,
			Theory: OmegaTheory(p),
			Brute:  OmegaBrute(p),
		}
		rec.Match = rec.Theory == rec.Brute
		if !rec.Match {
			report.AllMatch = false
		}

		switch class {
		case Splitting:
			report.Split++
		case Ramified:
			report.Ramified++
		default:
			report.Inert++
		}
		report.Records = append(report.Records, rec)
	}

	return report, nil
}
