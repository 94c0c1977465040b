package arith

import (
	"errors"
	"math"
	"sync"

	"golang.org/x/exp/constraints"
)

// ErrZeroDerivative indicates Newton's method hit a point where the
// derivative vanishes and the iteration cannot continue.
var ErrZeroDerivative = errors.New("arith: derivative is zero, Newton's method cannot proceed")

// Isqrt returns ⌊√n⌋ using Newton's integer iteration. Unlike a float64
// round-trip it stays exact for every representable n.
//
// Panics if n is negative.
func Isqrt[T constraints.Integer](n T) T {
	if n < 0 {
		panic("arith: Isqrt requires a non-negative argument")
	}
	if n <= 1 {
		return n
	}
	// Initial guess: 2^(⌊log2 n⌋/2 + 1), always ≥ ⌊√n⌋.
	bits := 0
	for v := n; v > 0; v >>= 1 {
		bits++
	}
	x0 := T(1) << (uint(bits-1)/2 + 1)
	x1 := (x0 + n/x0) / 2
	for x1 < x0 {
		x0 = x1
		x1 = (x0 + n/x0) / 2
	}
	return x0
}

// smallFactorials caches 0!..20!, the full range representable in 64
// bits; initialized on first use.
var (
	factOnce        sync.Once
	smallFactorials [21]uint64
)

func initFactorials() {
	smallFactorials[0] = 1
	for i := uint64(1); i <= 20; i++ {
		smallFactorials[i] = smallFactorials[i-1] * i
	}
}

// Factorial returns n!. The caller is responsible for choosing a type
// wide enough for the result; multiplication wraps like any other Go
// integer arithmetic when it is not.
//
// Panics if n is negative.
func Factorial[T constraints.Integer](n T) T {
	if n < 0 {
		panic("arith: Factorial requires a non-negative argument")
	}
	if uint64(n) <= 20 {
		factOnce.Do(initFactorials)
		return T(smallFactorials[int(n)])
	}
	fact := T(1)
	for i := T(2); i <= n; i++ {
		fact *= i
	}
	return fact
}

// Factorials returns 0!..n! as a slice indexed by the argument.
//
// Panics if n is negative.
func Factorials[T constraints.Integer](n int) []T {
	if n < 0 {
		panic("arith: Factorials requires a non-negative argument")
	}
	out := make([]T, n+1)
	out[0] = 1
	for i := 1; i <= n; i++ {
		out[i] = out[i-1] * T(i)
	}
	return out
}

// NewtonsMethod finds a zero of f starting from x0, iterating until two
// successive estimates differ by less than precision. The caller must
// supply the derivative df.
//
// If f does not converge to a zero the iteration may run indefinitely;
// bounding the input is the caller's responsibility. Returns
// ErrZeroDerivative when the derivative vanishes at an iterate.
func NewtonsMethod(x0, precision float64, f, df func(float64) float64) (float64, error) {
	x := x0
	prev := math.Inf(-1)
	for math.Abs(x-prev) > precision {
		prev = x
		d := df(prev)
		if d == 0 {
			return 0, ErrZeroDerivative
		}
		x = prev - f(prev)/d
	}
	return x, nil
}
