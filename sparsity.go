package q47verify

import (
	"fmt"
	"math"
)

// GlobalCriticalB is the variance exponent at which the global
// Cauchy–Schwarz bound changes sign: (46B − 45)/92 = 0 at B = 45/46.
const GlobalCriticalB = 45.0 / 46

// RestrictedCriticalB is the sign-change threshold for the restricted
// bound: (23B′ − 45)/46 = 0 at B′ = 45/23. The restricted bound carries
// two factors of the sparse count instead of one, doubling the
// logarithmic saving and pushing the threshold past the standard B = 1.
const RestrictedCriticalB = 45.0 / 23

// GlobalExponent returns the global Cauchy–Schwarz exponent (46B − 45)/92.
// A negative value means the sparse part is admissible for θ = 1/2.
func GlobalExponent(b float64) float64 {
	return (46*b - 45) / 92
}

// RestrictedExponent returns the restricted-variance exponent (23B′ − 45)/46.
func RestrictedExponent(b float64) float64 {
	return (23*b - 45) / 46
}

// SparsityRow compares both exponents at one variance strength B.
type SparsityRow struct {
	B            float64
	Label        string // B rendered exactly for the two critical rationals
	Global       float64
	GlobalOK     bool // θ = 1/2 achieved (exponent < 0)
	Restricted   float64
	RestrictedOK bool
}

// SparsityReport is the exponent comparison table.
type SparsityReport struct {
	Rows []SparsityRow
}

// DefaultBValues returns the published comparison points, including both
// critical thresholds and the standard Barban–Davenport–Halberstam
// value B = 1.
func DefaultBValues() []float64 {
	return []float64{0.5, 0.8, 0.9, GlobalCriticalB, 0.98, 1.0, 1.5, RestrictedCriticalB}
}

// CompareSparsity evaluates the global and restricted exponents at each
// B value and classifies each as achieving θ = 1/2 or failing.
func CompareSparsity(bValues []float64) *SparsityReport {
	report := &SparsityReport{Rows: make([]SparsityRow, 0, len(bValues))}
	for _, b := range bValues {
		global := GlobalExponent(b)
		restricted := RestrictedExponent(b)
		report.Rows = append(report.Rows, SparsityRow{
			B:            b,
			Label:        bLabel(b),
			Global:       global,
			GlobalOK:     global < 0,
			Restricted:   restricted,
			RestrictedOK: restricted < 0,
		})
	}
	return report
}

func bLabel(b float64) string {
	switch {
	case math.Abs(b-GlobalCriticalB) < 1e-6:
		return "45/46"
	case math.Abs(b-RestrictedCriticalB) < 1e-6:
		return "45/23"
	default:
		return fmt.Sprintf("%.4f", b)
	}
}
