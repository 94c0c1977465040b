package digits

import "golang.org/x/exp/constraints"

// Iter is a double-ended, exact-size iterator over the digits of a
// non-negative integer in a fixed radix.
//
// Next yields digits from the most-significant end, Back from the
// least-significant end; both ends may be consumed independently and
// meet in the middle. Len always reports the exact number of digits
// still unconsumed.
//
// The zero value is not usable; construct with New.
type Iter[T constraints.Integer] struct {
	num    T
	radix  T
	weight T // place value of the most-significant unconsumed digit
}

// New returns a digit iterator over n in the given radix.
//
// Zero has exactly one digit. Panics if radix < 2 or n < 0.
func New[T constraints.Integer](n, radix T) Iter[T] {
	if radix < 2 {
		panic("digits: radix must be at least 2")
	}
	if n < 0 {
		panic("digits: integer must be non-negative")
	}
	weight := T(1)
	for v := n; v >= radix; v /= radix {
		weight *= radix
	}
	return Iter[T]{num: n, radix: radix, weight: weight}
}

// Next consumes and returns the most-significant unconsumed digit.
// The second result is false once the iterator is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	if it.weight == 0 {
		return 0, false
	}
	d := it.num / it.weight
	it.num %= it.weight
	it.weight /= it.radix
	return d, true
}

// Back consumes and returns the least-significant unconsumed digit.
// The second result is false once the iterator is exhausted.
func (it *Iter[T]) Back() (T, bool) {
	if it.weight == 0 {
		return 0, false
	}
	d := it.num % it.radix
	it.num /= it.radix
	it.weight /= it.radix
	return d, true
}

// Len reports the exact number of unconsumed digits, derived from the
// remaining front weight rather than by materializing the digits.
func (it *Iter[T]) Len() int {
	if it.weight == 0 {
		return 0
	}
	n, length := it.weight, 1
	for n >= it.radix {
		n /= it.radix
		length++
	}
	return length
}

// Collect drains the iterator from the front and returns the remaining
// digits, most-significant first.
func (it *Iter[T]) Collect() []T {
	out := make([]T, 0, it.Len())
	for d, ok := it.Next(); ok; d, ok = it.Next() {
		out = append(out, d)
	}
	return out
}

// Compose recomposes an integer from its digits, most-significant
// first, by Horner's method. It is the exact inverse of draining an
// Iter with Next: Compose(New(n, r).Collect(), r) == n for every valid
// pair. An empty digit slice composes to 0.
//
// Panics if radix < 2 or any digit is negative or ≥ radix.
func Compose[T constraints.Integer](digs []T, radix T) T {
	if radix < 2 {
		panic("digits: radix must be at least 2")
	}
	var n T
	for _, d := range digs {
		if d < 0 {
			panic("digits: digits must be non-negative")
		}
		if d >= radix {
			panic("digits: digits must be less than the radix")
		}
		n = n*radix + d
	}
	return n
}

// Reverse returns n with its digits reversed in the given radix.
// Trailing zeros collapse: Reverse(100, 10) == 1.
//
// Panics if radix < 2 or n < 0.
func Reverse[T constraints.Integer](n, radix T) T {
	it := New(n, radix)
	var out T
	for d, ok := it.Back(); ok; d, ok = it.Back() {
		out = out*radix + d
	}
	return out
}
