package factors

import "golang.org/x/exp/constraints"

// DivisorCounts returns d(k) for every k from 0 through n as a slice
// of length n+1, using one harmonic sweep: each i >= 2 marks its
// multiples. O(n log n). Panics if n is negative.
func DivisorCounts[T constraints.Integer](n int) []T {
	if n < 0 {
		panic("factors: n must be non-negative")
	}
	counts := make([]T, n+1)
	for i := 1; i <= n; i++ {
		counts[i] = 1
	}
	for i := 2; i <= n; i++ {
		for j := i; j <= n; j += i {
			counts[j]++
		}
	}
	return counts
}

// ProperDivisorCounts is DivisorCounts without counting k itself.
// Panics if n is negative.
func ProperDivisorCounts[T constraints.Integer](n int) []T {
	if n < 0 {
		panic("factors: n must be non-negative")
	}
	counts := make([]T, n+1)
	for i := 2; i <= n; i++ {
		for j := i; j <= n; j += i {
			counts[j]++
		}
	}
	return counts
}

// DivisorSums returns σ(k) for every k from 0 through n as a slice of
// length n+1. O(n log n). Panics if n is negative.
func DivisorSums[T constraints.Integer](n int) []T {
	if n < 0 {
		panic("factors: n must be non-negative")
	}
	sums := make([]T, n+1)
	for i := 1; i <= n; i++ {
		for j := i; j <= n; j += i {
			sums[j] += T(i)
		}
	}
	return sums
}

// ProperDivisorSums returns the aliquot sum σ(k) - k for every k from
// 0 through n; each i contributes to its multiples starting at 2i.
// Panics if n is negative.
func ProperDivisorSums[T constraints.Integer](n int) []T {
	if n < 0 {
		panic("factors: n must be non-negative")
	}
	sums := make([]T, n+1)
	for i := 1; i <= n; i++ {
		for j := 2 * i; j <= n; j += i {
			sums[j] += T(i)
		}
	}
	return sums
}

// Totients returns φ(k) for every k from 0 through n as a slice of
// length n+1, with a sieve-style sweep: a slot still holding its own
// index is prime, and discounts all its multiples. Panics if n is
// negative.
func Totients[T constraints.Integer](n int) []T {
	if n < 0 {
		panic("factors: n must be non-negative")
	}
	phi := make([]T, n+1)
	for i := 1; i <= n; i++ {
		phi[i] = T(i)
	}
	for i := 2; i <= n; i++ {
		if phi[i] == T(i) {
			for j := i; j <= n; j += i {
				phi[j] -= phi[j] / T(i)
			}
		}
	}
	return phi
}
