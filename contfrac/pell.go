package contfrac

import (
	"errors"
	"math/big"

	"golang.org/x/exp/constraints"
)

// ErrEvenPeriod reports that x² - d·y² = -1 has no solution because
// the continued fraction of √d has an even period.
var ErrEvenPeriod = errors.New("contfrac: even period has no negative Pell solution")

// SolvePell returns the minimal positive solution (x, y) of Pell's
// equation x² - d·y² = 1 for a positive non-square d. The minimal
// solution always appears among the convergents of √d, so they are
// tested in order and the first hit is the answer. Panics if d is not
// positive or is a perfect square.
func SolvePell[T constraints.Integer](d T) (x, y *big.Int) {
	it, bigD := pellConvergents(d)
	one := big.NewInt(1)
	for {
		c, _ := it.Next()
		if pellResidue(c, bigD).Cmp(one) == 0 {
			return c.Num, c.Den
		}
	}
}

// SolvePellNegative returns the minimal positive solution of
// x² - d·y² = -1 for a positive non-square d. A solution exists only
// when the period of √d's continued fraction is odd; an even period
// returns ErrEvenPeriod instead of searching forever. Panics if d is
// not positive or is a perfect square.
func SolvePellNegative[T constraints.Integer](d T) (x, y *big.Int, err error) {
	it, bigD := pellConvergents(d)
	if it.cf.PeriodLen()%2 == 0 {
		return nil, nil, ErrEvenPeriod
	}
	minusOne := big.NewInt(-1)
	for {
		c, _ := it.Next()
		if pellResidue(c, bigD).Cmp(minusOne) == 0 {
			return c.Num, c.Den, nil
		}
	}
}

func pellConvergents[T constraints.Integer](d T) (*ConvergentIter[T], *big.Int) {
	if d <= 0 {
		panic("contfrac: Pell parameter must be positive")
	}
	cf := FromSqrt(d)
	if cf.IsFinite() {
		panic("contfrac: Pell parameter must not be a perfect square")
	}
	return cf.Convergents(), big.NewInt(int64(d))
}

// pellResidue computes x² - d·y² for a convergent x/y.
func pellResidue(c Convergent, d *big.Int) *big.Int {
	x2 := new(big.Int).Mul(c.Num, c.Num)
	y2 := new(big.Int).Mul(c.Den, c.Den)
	return x2.Sub(x2, y2.Mul(y2, d))
}
