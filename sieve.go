package q47verify

// PrimePower is one term of a prime factorization.
type PrimePower struct {
	Prime int // Prime base
	Exp   int // Multiplicity
}

// SievePrimes returns all primes up to n (inclusive) using the sieve of
// Eratosthenes. Returns an empty slice for n < 2.
func SievePrimes(n int) []int {
	if n < 2 {
		return []int{}
	}

	composite := make([]bool, n+1)
	for i := 2; i*i <= n; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}

	primes := make([]int, 0, n/2)
	for i := 2; i <= n; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes
}

// IsPrime reports whether n is prime, by trial division.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Factorize returns the prime factorization of d in increasing prime
// order, by trial division up to √d. Factorize(1) is empty; d < 1
// returns nil.
func Factorize(d int) []PrimePower {
	if d < 1 {
		return nil
	}

	factors := make([]PrimePower, 0, 4)
	appendFactor := func(p int) {
		exp := 0
		for d%p == 0 {
			d /= p
			exp++
		}
		if exp > 0 {
			factors = append(factors, PrimePower{Prime: p, Exp: exp})
		}
	}

	appendFactor(2)
	for p := 3; p*p <= d; p += 2 {
		appendFactor(p)
	}
	if d > 1 {
		// Remaining cofactor is prime
		factors = append(factors, PrimePower{Prime: d, Exp: 1})
	}
	return factors
}

// PowMod computes base^exp mod m by binary exponentiation.
// m must be positive; a negative base is reduced into [0, m).
func PowMod(base, exp, m int64) int64 {
	if m == 1 {
		return 0
	}
	b := base % m
	if b < 0 {
		b += m
	}

	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = result * b % m
		}
		b = b * b % m
		exp >>= 1
	}
	return result
}
