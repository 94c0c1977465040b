package primes

import (
	"math"

	"github.com/katalvlaran/ntheory/arith"
)

// CountApprox estimates π(x), the number of primes less than or equal
// to x. It follows the prime number theorem, π(x) ≈ x/ln(x): the
// estimate is exact for x < 11 and a strict underestimate for x ≥ 11.
func CountApprox(x float64) float64 {
	switch {
	case x < 2:
		return 0
	case x < 3:
		return 1
	case x < 5:
		return 2
	case x < 7:
		return 3
	case x < 11:
		return 4
	default:
		return x / math.Log(x)
	}
}

// NthApprox estimates the smallest x with CountApprox(x) ≈ n, i.e. an
// inverse prime-counting function. Exact for n < 4 (⌊n⌋ mapped through
// the first primes) and a strict overestimate for n ≥ 4, which makes
// it a safe bound when sizing a sieve that must contain the first n
// primes.
//
// The inverse of x/ln(x) has no closed form; the root of
// n·ln(x) - x is found with Newton's method instead. Panics if n is
// negative.
func NthApprox(n float64) float64 {
	if n < 0 {
		panic("primes: n must be non-negative")
	}
	if n < 4 {
		switch math.Floor(n) {
		case 0:
			return 0
		case 1:
			return 2
		case 2:
			return 3
		default:
			return 5
		}
	}

	x0 := n + 1
	f := func(x float64) float64 { return n*math.Log(x) - x }
	df := func(x float64) float64 { return n/x - 1 }
	root, err := arith.NewtonsMethod(x0, 1e-10, f, df)
	if err != nil {
		// n/x - 1 only vanishes at x = n, which Newton's iteration
		// from n+1 never lands on for n >= 4.
		panic("primes: " + err.Error())
	}
	return root
}
