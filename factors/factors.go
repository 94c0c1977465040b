package factors

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/ntheory/arith"
	"github.com/katalvlaran/ntheory/primes"
)

// PrimeFactors iterates over the prime factors of an integer in
// ascending order, repeating each factor according to its
// multiplicity. The candidate primes come from a sieve up to ⌊√n⌋;
// whatever cofactor survives trial division is itself prime and is
// yielded last.
type PrimeFactors[T constraints.Integer] struct {
	n      T
	factor T
	table  []T
	idx    int
}

// NewPrimeFactors returns a factor iterator for n. Integers below 2
// produce an exhausted iterator. Panics if n is negative.
func NewPrimeFactors[T constraints.Integer](n T) *PrimeFactors[T] {
	if n < 0 {
		panic("factors: n must be non-negative")
	}
	var table []T
	if n >= 2 {
		table = primes.Sieve(arith.Isqrt(n))
	}
	it := &PrimeFactors[T]{n: n, factor: 2, table: table}
	if len(table) > 0 {
		it.factor = table[0]
		it.idx = 1
	}
	return it
}

// Next returns the next prime factor, or false when n is fully
// factored.
func (it *PrimeFactors[T]) Next() (T, bool) {
	for it.n >= it.factor {
		if it.n%it.factor == 0 {
			it.n /= it.factor
			return it.factor, true
		}
		if it.idx < len(it.table) {
			it.factor = it.table[it.idx]
			it.idx++
		} else if it.n != 1 {
			// No sieve prime divides n, so the leftover cofactor is
			// prime.
			it.factor = it.n
		} else {
			return 0, false
		}
	}
	return 0, false
}

// Collect drains the iterator into a slice.
func (it *PrimeFactors[T]) Collect() []T {
	out := []T{}
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		out = append(out, f)
	}
	return out
}

// Factor is a distinct prime factor together with its multiplicity.
type Factor[T constraints.Integer] struct {
	Prime        T
	Multiplicity int
}

// Distinct returns the distinct prime factors of n in ascending order,
// each paired with its multiplicity. Distinct(0) and Distinct(1) are
// empty. Panics if n is negative.
func Distinct[T constraints.Integer](n T) []Factor[T] {
	it := NewPrimeFactors(n)
	out := []Factor[T]{}
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		if len(out) > 0 && out[len(out)-1].Prime == p {
			out[len(out)-1].Multiplicity++
		} else {
			out = append(out, Factor[T]{Prime: p, Multiplicity: 1})
		}
	}
	return out
}
