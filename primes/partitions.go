package primes

import "golang.org/x/exp/constraints"

// Partitions returns the number of ways to write n as an unordered sum
// of primes. Negative n and n < 2 have no prime partitions, so the
// count is 0 (except that arguments below 0 also yield 0).
//
// For example Partitions(7) = 3: 7, 5+2 and 3+2+2.
func Partitions[T constraints.Integer](n int) T {
	if n < 2 {
		return 0
	}
	return PartitionsUpTo[T](n)[n]
}

// PartitionsUpTo returns the prime partition counts for every integer
// from 0 through n as a slice of length n+1. Index 0 holds 1, the
// empty sum. Panics if n is negative.
//
// Classic coin-change dynamic programming with the primes <= n as
// denominations: O(n · π(n)) time, O(n) space.
func PartitionsUpTo[T constraints.Integer](n int) []T {
	if n < 0 {
		panic("primes: n must be non-negative")
	}
	counts := make([]T, n+1)
	counts[0] = 1
	for _, p := range Sieve(n) {
		for v := p; v <= n; v++ {
			counts[v] += counts[v-p]
		}
	}
	return counts
}
