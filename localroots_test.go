package q47verify

import "testing"

// TestVerifyResidueClasses: Q(n) ≡ 1 (mod 47) for every residue class,
// the identity behind ω(47) = 0.
func TestVerifyResidueClasses(t *testing.T) {
	if err := VerifyResidueClasses(); err != nil {
		t.Errorf("residue class identity: %v", err)
	} else {
		t.Logf("✓ Q(n) ≡ 1 (mod 47) for all 47 residue classes")
	}
}

func TestQPoly_NegativeOperandWraps(t *testing.T) {
	// Q(0) = 0⁴⁷ − (−1)⁴⁷ = 1 in any odd modulus
	for _, m := range []int64{5, 47, 283} {
		if got := QPoly(0, m); got != 1 {
			t.Errorf("QPoly(0, %d) = %d, want 1", m, got)
		}
	}
}

func TestClassifyPrime(t *testing.T) {
	cases := []struct {
		p    int
		want PrimeClass
	}{
		{2, Inert},
		{3, Inert},
		{46, Inert},
		{47, Ramified},
		{283, Splitting},
		{659, Splitting},
		{941, Splitting},
		{6299, Splitting},
	}
	for _, c := range cases {
		if got := ClassifyPrime(c.p); got != c.want {
			t.Errorf("ClassifyPrime(%d) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestPrimeClass_String(t *testing.T) {
	if Inert.String() != "inert" || Splitting.String() != "splitting" || Ramified.String() != "ramified" {
		t.Errorf("PrimeClass strings: %q, %q, %q", Inert, Splitting, Ramified)
	}
}

// TestOmegaBrute_InertPrimes: small primes are all inert and carry no
// roots of Q.
func TestOmegaBrute_InertPrimes(t *testing.T) {
	for _, p := range []int{2, 3, 5, 7, 11, 13} {
		if got := OmegaBrute(p); got != 0 {
			t.Errorf("ω(%d) = %d, want 0 (inert)", p, got)
		}
	}
}

// TestOmegaBrute_Ramified: ω(47) = 0 despite 47 dividing the conductor,
// because Q is constant 1 modulo 47.
func TestOmegaBrute_Ramified(t *testing.T) {
	if got := OmegaBrute(Conductor); got != 0 {
		t.Errorf("ω(47) = %d, want 0 (ramified)", got)
	}
}

// TestOmegaBrute_SplittingPrimes: splitting primes carry the full
// 46 = 47 − 1 roots.
func TestOmegaBrute_SplittingPrimes(t *testing.T) {
	for _, p := range []int{283, 659} {
		if got := OmegaBrute(p); got != 46 {
			t.Errorf("ω(%d) = %d, want 46 (splitting)", p, got)
		}
	}
	t.Logf("✓ full root count 46 at the first splitting primes")
}

func TestOmegaTheory(t *testing.T) {
	cases := map[int]int{2: 0, 47: 0, 283: 46, 659: 46, 661: 0}
	for p, want := range cases {
		if got := OmegaTheory(p); got != want {
			t.Errorf("OmegaTheory(%d) = %d, want %d", p, got, want)
		}
	}
}

// TestVerifyLocalRoots_To700 covers the ramified prime and the first two
// splitting primes with exact class tallies.
func TestVerifyLocalRoots_To700(t *testing.T) {
	report, err := VerifyLocalRoots(LocalRootConfig{PMax: 700})
	if err != nil {
		t.Fatalf("VerifyLocalRoots: %v", err)
	}

	if len(report.Records) != 125 {
		t.Errorf("records = %d, want 125 = π(700)", len(report.Records))
	}
	if report.Inert != 122 || report.Split != 2 || report.Ramified != 1 {
		t.Errorf("tallies inert=%d split=%d ramified=%d, want 122/2/1",
			report.Inert, report.Split, report.Ramified)
	}
	AssertTrichotomy(t, report)
}

// TestVerifyLocalRoots_PublishedBound replays the published run at
// P_max = 6299, which ends exactly on the twentieth splitting prime.
func TestVerifyLocalRoots_PublishedBound(t *testing.T) {
	report, err := VerifyLocalRoots(DefaultLocalRootConfig())
	if err != nil {
		t.Fatalf("VerifyLocalRoots: %v", err)
	}

	if len(report.Records) != 819 {
		t.Errorf("records = %d, want 819 = π(6299)", len(report.Records))
	}
	if report.Split != 20 {
		t.Errorf("splitting primes = %d, want 20", report.Split)
	}
	if report.Inert != 798 || report.Ramified != 1 {
		t.Errorf("tallies inert=%d ramified=%d, want 798/1", report.Inert, report.Ramified)
	}

	last := report.Records[len(report.Records)-1]
	if last.P != 6299 || last.Class != Splitting || last.Brute != 46 {
		t.Errorf("final record %+v, want splitting prime 6299 with ω = 46", last)
	}

	AssertTrichotomy(t, report)
}

func TestVerifyLocalRoots_InvalidBound(t *testing.T) {
	for _, pmax := range []int{1, 0, -5} {
		report, err := VerifyLocalRoots(LocalRootConfig{PMax: pmax})
		if err == nil {
			t.Errorf("PMax = %d: expected error, got %+v", pmax, report)
		}
	}
}
