package contfrac

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// Convergent is one rational approximation p/q of a continued
// fraction. Successive convergents produced by the recurrence are
// automatically in lowest terms.
type Convergent struct {
	Num *big.Int
	Den *big.Int
}

// ConvergentIter yields the convergents of a continued fraction in
// order, each built from one more coefficient than the previous. For a
// finite fraction the last convergent is the exact value; for a
// periodic one the iterator never ends.
type ConvergentIter[T constraints.Integer] struct {
	cf       ContinuedFraction[T]
	idx      int
	prevNum  *big.Int
	prevDen  *big.Int
	num, den *big.Int
}

// Convergents returns an iterator over the convergents of cf.
func (cf ContinuedFraction[T]) Convergents() *ConvergentIter[T] {
	// Seeds p₋₁=1, p₋₂=0 and q₋₁=0, q₋₂=1 make the two-term
	// recurrence pₖ = aₖ·pₖ₋₁ + pₖ₋₂ start without special cases.
	return &ConvergentIter[T]{
		cf:      cf,
		prevNum: big.NewInt(0),
		prevDen: big.NewInt(1),
		num:     big.NewInt(1),
		den:     big.NewInt(0),
	}
}

// Next returns the next convergent, or false when a finite fraction is
// exhausted. The returned big.Ints are never mutated by the iterator
// afterward.
func (it *ConvergentIter[T]) Next() (Convergent, bool) {
	a, ok := it.cf.coefficient(it.idx)
	if !ok {
		return Convergent{}, false
	}
	it.idx++

	coeff := big.NewInt(int64(a))
	nextNum := new(big.Int).Add(new(big.Int).Mul(coeff, it.num), it.prevNum)
	nextDen := new(big.Int).Add(new(big.Int).Mul(coeff, it.den), it.prevDen)
	it.prevNum, it.num = it.num, nextNum
	it.prevDen, it.den = it.den, nextDen

	return Convergent{Num: it.num, Den: it.den}, true
}
