package contfrac

import "math/big"

// DecimalDigits returns the first m decimal digits of the value the
// fraction represents, most significant first, starting with the
// integer part. For √2 and m = 4 the result is [1 4 1 4].
//
// Convergents advance until qₖ·qₖ₊₁ ≥ 10^m; the error bound
// |x - pₖ/qₖ| < 1/(qₖ·qₖ₊₁) then guarantees pₖ/qₖ matches the true
// value to at least m digits. A finite fraction that runs out of
// convergents first is already exact. Digits past the integer part
// come from long division, so no floating point is involved.
//
// Panics if m is negative or the represented value is negative.
func (cf ContinuedFraction[T]) DecimalDigits(m int) []int8 {
	if m < 0 {
		panic("contfrac: digit count must be non-negative")
	}
	if m == 0 {
		return []int8{}
	}

	it := cf.Convergents()
	best, ok := it.Next()
	if !ok {
		panic("contfrac: no coefficients")
	}
	bound := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(m)), nil)
	for {
		next, more := it.Next()
		if !more {
			break
		}
		if new(big.Int).Mul(best.Den, next.Den).Cmp(bound) >= 0 {
			break
		}
		best = next
	}
	if best.Num.Sign() < 0 {
		panic("contfrac: value must be non-negative")
	}

	quo, rem := new(big.Int).QuoRem(best.Num, best.Den, new(big.Int))
	out := make([]int8, 0, m)
	for _, ch := range quo.String() {
		if len(out) == m {
			return out
		}
		out = append(out, int8(ch-'0'))
	}

	ten := big.NewInt(10)
	digit := new(big.Int)
	scratch := new(big.Int)
	for len(out) < m {
		rem.Mul(rem, ten)
		digit.QuoRem(rem, best.Den, scratch)
		out = append(out, int8(digit.Int64()))
		rem, scratch = scratch, rem
	}
	return out
}
