package primes

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/ntheory/arith"
)

// Sieve returns all primes less than or equal to n in ascending order
// using an odd-only sieve of Eratosthenes. Inputs below 2 yield an
// empty slice.
//
// Only odd candidates are stored: slot i represents the value 2i+3,
// halving memory and skipping every even composite. Marking for a
// prime p starts at p² and steps by 2p so the walk stays on odd
// values.
//
// Panics if the sieve's index space does not fit in int.
func Sieve[T constraints.Integer](n T) []T {
	if n < 2 {
		return []T{}
	}
	if n == 2 {
		return []T{2}
	}

	size := uint64(n-1) / 2
	if size > uint64(math.MaxInt) {
		panic("primes: sieve too large")
	}
	composite := make([]bool, int(size))

	valOf := func(i int) uint64 { return uint64(i)<<1 + 3 }
	indexOf := func(v uint64) uint64 { return (v - 3) >> 1 }

	for i := range composite {
		if composite[i] {
			continue
		}
		p := valOf(i)
		// Smaller multiples were marked by smaller primes.
		first := indexOf(p * p)
		if first >= size {
			break
		}
		for j := first; j < size; j += p {
			composite[j] = true
		}
	}

	result := make([]T, 1, size/2+1)
	result[0] = 2
	for i, c := range composite {
		if !c {
			result = append(result, T(valOf(i)))
		}
	}
	return result
}

// IsPrime reports whether n is prime using trial division with a 6k±1
// wheel. The second return value witnesses the answer: the smallest
// divisor greater than 1 when n is composite, or 1 when n is prime.
//
// Panics if n < 2.
func IsPrime[T constraints.Integer](n T) (bool, T) {
	if n < 2 {
		panic("primes: n must be at least 2")
	}
	if n == 2 || n == 3 {
		return true, 1
	}
	if n%2 == 0 {
		return false, 2
	}
	if n%3 == 0 {
		return false, 3
	}

	// Candidates above 3 are of the form 6k±1.
	limit := arith.Isqrt(n)
	for i := T(5); i <= limit; i += 6 {
		if n%i == 0 {
			return false, i
		}
		if n%(i+2) == 0 {
			return false, i + 2
		}
	}
	return true, 1
}

// Coprime reports whether gcd(a, b) == 1. Note that Coprime(1, 0) is
// true while Coprime(n, 0) is false for any other n. Panics on
// negative inputs.
func Coprime[T constraints.Integer](a, b T) bool {
	return arith.Gcd(a, b) == 1
}
