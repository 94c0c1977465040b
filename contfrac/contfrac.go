package contfrac

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/ntheory/arith"
)

// ContinuedFraction is a simple continued fraction: a non-periodic
// coefficient prefix optionally followed by an infinitely repeating
// tail. A nil/empty tail means the fraction is finite and represents
// an exact rational. Values are immutable after construction.
type ContinuedFraction[T constraints.Integer] struct {
	nonPeriodic []T
	periodic    []T
}

// New builds a continued fraction from explicit coefficients. Pass a
// nil or empty periodic slice for a finite fraction. Both slices are
// copied. Panics if no coefficients at all are given.
func New[T constraints.Integer](nonPeriodic, periodic []T) ContinuedFraction[T] {
	if len(nonPeriodic) == 0 && len(periodic) == 0 {
		panic("contfrac: at least one coefficient is required")
	}
	cf := ContinuedFraction[T]{
		nonPeriodic: append([]T(nil), nonPeriodic...),
	}
	if len(periodic) > 0 {
		cf.periodic = append([]T(nil), periodic...)
	}
	return cf
}

// surd tracks the state (num + √n)/den of the square-root expansion;
// the period closes at the first repeated state.
type surd[T constraints.Integer] struct {
	num, den T
}

// FromSqrt expands √n as a continued fraction. Perfect squares give
// the finite fraction [√n]; everything else gives [a₀; (a₁, ..., aₗ)]
// where the tail repeats forever. Panics if n is negative.
//
// Each step rewrites (num + √n)/den: the emitted coefficient is the
// integer part, and the remainder is inverted back into the same surd
// form. The pair (num, den) fully determines the rest of the
// expansion, so the first repeat marks the period.
func FromSqrt[T constraints.Integer](n T) ContinuedFraction[T] {
	if n < 0 {
		panic("contfrac: cannot expand the square root of a negative integer")
	}
	root := arith.Isqrt(n)
	cf := ContinuedFraction[T]{nonPeriodic: []T{root}}
	if root*root == n {
		return cf
	}

	seen := make(map[surd[T]]struct{})
	num, den := root, T(1)
	for {
		state := surd[T]{num: num, den: den}
		if _, ok := seen[state]; ok {
			return cf
		}
		seen[state] = struct{}{}

		den = (n - num*num) / den
		a := (num + root) / den
		cf.periodic = append(cf.periodic, a)
		num = den*a - num
	}
}

// NonPeriodic returns a copy of the non-repeating coefficients.
func (cf ContinuedFraction[T]) NonPeriodic() []T {
	return append([]T(nil), cf.nonPeriodic...)
}

// Periodic returns a copy of the repeating coefficients, or nil when
// the fraction is finite.
func (cf ContinuedFraction[T]) Periodic() []T {
	if len(cf.periodic) == 0 {
		return nil
	}
	return append([]T(nil), cf.periodic...)
}

// PeriodLen returns the length of the repeating tail, 0 for a finite
// fraction.
func (cf ContinuedFraction[T]) PeriodLen() int { return len(cf.periodic) }

// IsFinite reports whether the fraction has no repeating tail and thus
// represents an exact rational.
func (cf ContinuedFraction[T]) IsFinite() bool { return len(cf.periodic) == 0 }

// coefficient returns the i-th coefficient, cycling through the
// periodic tail, and false when a finite fraction is exhausted.
func (cf ContinuedFraction[T]) coefficient(i int) (T, bool) {
	if i < len(cf.nonPeriodic) {
		return cf.nonPeriodic[i], true
	}
	if len(cf.periodic) == 0 {
		return 0, false
	}
	return cf.periodic[(i-len(cf.nonPeriodic))%len(cf.periodic)], true
}
