// Package q47verify numerically verifies the closed-form claims of the
// Q47 null/sparse decomposition.
//
// # Overview
//
// The underlying object is the degree-47 polynomial
//
//	Q(n) = n⁴⁷ − (n−1)⁴⁷
//
// and its root counts ω(p) modulo primes p. Three independent claims are
// checked, each by exhaustive computation over a bounded range:
//
//   - Local root structure: the trichotomy ω(47) = 0 (ramified),
//     ω(p) = 46 for p ≡ 1 (mod 47) (splitting), ω(p) = 0 otherwise (inert)
//   - Effective moduli density: N_eff(D) ≍ D/(log D)^(45/46)
//   - Double sparsity: the Cauchy–Schwarz exponents (46B−45)/92 (global)
//     and (23B′−45)/46 (restricted) and their sign change thresholds
//
// # Effective Moduli
//
// An integer q is an effective modulus when every prime factor of q is
// congruent to 1 modulo 47. These are exactly the moduli whose local
// density ρ(q) is non-zero; the ramified prime 47 itself has ω(47) = 0
// and so does not qualify. The count obeys a Landau–Ramanujan law with
// exponent 1 − 1/46 = 45/46:
//
//	N_eff(D) = #{q ≤ D : q ∈ Q_eff} ≍ D / (log D)^(45/46)
//
// Count and compare against the prediction:
//
//	report, err := q47verify.CountEffectiveModuli(q47verify.DefaultCountConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, s := range report.Samples {
//	    fmt.Printf("D=%d  N_eff=%d  ratio=%.4f\n", s.D, s.NEff, s.Ratio)
//	}
//
//	fit, err := q47verify.FitExponent(report.Samples)
//	if err == nil {
//	    fmt.Printf("fitted exponent: %.4f (theory: %.4f)\n",
//	        fit.Alpha, q47verify.LandauRamanujanExponent)
//	}
//
// Convergence in log D is slow: the fitted exponent approaches 45/46 from
// above and at D = 10⁶ is still far from its limit, so the verification
// asserts bounded-ratio stability rather than an exact constant.
//
// # Local Roots
//
// ω(p) is computed two ways and compared: by evaluating Q at every residue
// class modulo p (brute force), and from the trichotomy (theory):
//
//	report, err := q47verify.VerifyLocalRoots(q47verify.DefaultLocalRootConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !report.AllMatch {
//	    log.Fatal("trichotomy violated")
//	}
//
// The identity Q(n) ≡ 1 (mod 47) for all 47 residue classes, which forces
// ω(47) = 0, is checked by VerifyResidueClasses.
//
// # Double Sparsity
//
// The sparse part of the error sum admits two Cauchy–Schwarz bounds. The
// global bound saves one factor of N_eff, the restricted bound saves two,
// doubling the logarithmic saving:
//
//	global:     exponent (46B − 45)/92,  zero at B  = 45/46
//	restricted: exponent (23B′ − 45)/46, zero at B′ = 45/23
//
// At the standard value B = B′ = 1 only the restricted exponent is
// negative, so only the restricted variance hypothesis achieves θ = 1/2:
//
//	report := q47verify.CompareSparsity(q47verify.DefaultBValues())
//	q47verify.RenderSparsityTable(os.Stdout, report)
//
// # Testing
//
// Assertion helpers validate the arithmetic properties in tests:
//
//	func TestEffectiveCount(t *testing.T) {
//	    report, _ := q47verify.CountEffectiveModuli(q47verify.CountConfig{DMax: 100000})
//	    cfg := q47verify.DefaultAssertionConfig()
//
//	    // Ratio N_eff(D)/prediction stays within a bounded factor
//	    q47verify.AssertRatioStability(t, report.Samples, cfg)
//
//	    // Log-log regression recovers the exponent within tolerance
//	    q47verify.AssertExponentFit(t, report.Samples, cfg)
//	}
//
// # Artifacts
//
// Each verification renders a console table and can write a CSV matching
// the schemas of the checked-in data files (effective_moduli_count.csv,
// local_root_structure.csv, cauchy_schwarz_comparison.csv), so a run is
// diffable against the published results.
package q47verify
