package digits

import (
	"math"
	"sync"

	"golang.org/x/exp/constraints"
)

// HexLower and HexUpper are the character representations of the
// sixteen hexadecimal digits.
const (
	HexLower = "0123456789abcdef"
	HexUpper = "0123456789ABCDEF"
)

// IsPalindrome reports whether n reads the same from both ends in the
// given radix. Single-digit integers, including 0, are palindromes.
//
// Runs in O(digit count) with no allocation. Panics if radix < 2 or
// n < 0.
func IsPalindrome[T constraints.Integer](n, radix T) bool {
	it := New(n, radix)
	for it.Len() > 1 {
		front, _ := it.Next()
		back, _ := it.Back()
		if front != back {
			return false
		}
	}
	return true
}

// histPool recycles digit-frequency histograms across IsPermutation
// calls; the slice is resized to the radix on each use.
var histPool = sync.Pool{
	New: func() any { return make([]int32, 0, 64) },
}

// IsPermutation reports whether a and b have the same digit multiset in
// the given radix. Both operands are interpreted in one shared radix;
// comparing representations across two different radices is not
// expressible through this API.
//
// Runs in O(digit count + radix) using a histogram sized to the radix.
// Panics if radix < 2, either operand is negative, or the radix exceeds
// the host's addressable histogram size.
func IsPermutation[T constraints.Integer](a, b, radix T) bool {
	if radix < 2 {
		panic("digits: radix must be at least 2")
	}
	if a < 0 || b < 0 {
		panic("digits: integer must be non-negative")
	}
	if uint64(radix) > uint64(math.MaxInt) {
		panic("digits: radix too large for digit histogram")
	}
	r := int(radix)

	hist := histPool.Get().([]int32)
	if cap(hist) < r {
		hist = make([]int32, r)
	} else {
		hist = hist[:r]
		clear(hist)
	}
	defer histPool.Put(hist[:0])

	ai := New(a, radix)
	for d, ok := ai.Back(); ok; d, ok = ai.Back() {
		hist[int(d)]++
	}
	bi := New(b, radix)
	for d, ok := bi.Back(); ok; d, ok = bi.Back() {
		hist[int(d)]--
	}
	for _, count := range hist {
		if count != 0 {
			return false
		}
	}
	return true
}
