package sequences

import "golang.org/x/exp/constraints"

// Sequence is a stateful iterator over an integer sequence. Next
// yields the next element, false when the sequence has ended. SumNext
// sums the next n elements, advancing the iterator past them; if fewer
// than n remain it sums what is left.
type Sequence[T constraints.Integer] interface {
	Next() (T, bool)
	SumNext(n int) T
}

// Arithmetic is the progression a, a+d, a+2d, ... It never ends.
type Arithmetic[T constraints.Integer] struct {
	cur  T
	step T
}

// NewArithmetic returns the progression starting at a with common
// difference d.
func NewArithmetic[T constraints.Integer](a, d T) *Arithmetic[T] {
	return &Arithmetic[T]{cur: a, step: d}
}

// Naturals counts 1, 2, 3, ...
func Naturals[T constraints.Integer]() *Arithmetic[T] { return NewArithmetic[T](1, 1) }

// NaturalsWithZero counts 0, 1, 2, ...
func NaturalsWithZero[T constraints.Integer]() *Arithmetic[T] { return NewArithmetic[T](0, 1) }

// Odds counts 1, 3, 5, ...
func Odds[T constraints.Integer]() *Arithmetic[T] { return NewArithmetic[T](1, 2) }

// Evens counts 2, 4, 6, ...
func Evens[T constraints.Integer]() *Arithmetic[T] { return NewArithmetic[T](2, 2) }

// EvensWithZero counts 0, 2, 4, ...
func EvensWithZero[T constraints.Integer]() *Arithmetic[T] { return NewArithmetic[T](0, 2) }

// Next returns the next element; an arithmetic progression never ends.
func (s *Arithmetic[T]) Next() (T, bool) {
	v := s.cur
	s.cur += s.step
	return v, true
}

// Skip advances past n elements without yielding them.
func (s *Arithmetic[T]) Skip(n int) {
	if n > 0 {
		s.cur += s.step * T(n)
	}
}

// SumNext sums the next n elements in O(1):
// Σ(cur + k·d) for k in [0, n) = n·cur + d·n(n-1)/2.
func (s *Arithmetic[T]) SumNext(n int) T {
	if n <= 0 {
		return 0
	}
	tn := T(n)
	triangle := tn * (tn - 1) / 2
	sum := tn*s.cur + s.step*triangle
	s.cur += s.step * tn
	return sum
}

// Squares yields the squares of an arithmetic progression:
// a², (a+d)², (a+2d)², ... It never ends.
type Squares[T constraints.Integer] struct {
	base T
	step T
}

// NewSquares returns the squared progression with base a and common
// difference d.
func NewSquares[T constraints.Integer](a, d T) *Squares[T] {
	return &Squares[T]{base: a, step: d}
}

// NaturalSquares yields 1, 4, 9, ...
func NaturalSquares[T constraints.Integer]() *Squares[T] { return NewSquares[T](1, 1) }

// NaturalSquaresWithZero yields 0, 1, 4, ...
func NaturalSquaresWithZero[T constraints.Integer]() *Squares[T] { return NewSquares[T](0, 1) }

// OddSquares yields 1, 9, 25, ...
func OddSquares[T constraints.Integer]() *Squares[T] { return NewSquares[T](1, 2) }

// EvenSquares yields 4, 16, 36, ...
func EvenSquares[T constraints.Integer]() *Squares[T] { return NewSquares[T](2, 2) }

// EvenSquaresWithZero yields 0, 4, 16, ...
func EvenSquaresWithZero[T constraints.Integer]() *Squares[T] { return NewSquares[T](0, 2) }

// Next returns the next element; a squared progression never ends.
func (s *Squares[T]) Next() (T, bool) {
	v := s.base * s.base
	s.base += s.step
	return v, true
}

// Skip advances past n elements without yielding them.
func (s *Squares[T]) Skip(n int) {
	if n > 0 {
		s.base += s.step * T(n)
	}
}

// SumNext sums the next n elements in O(1). Expanding
// Σ(base + k·d)² over k in [0, n) gives
// n·base² + 2·base·d·n(n-1)/2 + d²·(n-1)n(2n-1)/6; both divisions are
// exact for every n.
func (s *Squares[T]) SumNext(n int) T {
	if n <= 0 {
		return 0
	}
	tn := T(n)
	triangle := tn * (tn - 1) / 2
	pyramid := (tn - 1) * tn * (2*tn - 1) / 6
	sum := tn*s.base*s.base + 2*s.base*s.step*triangle + s.step*s.step*pyramid
	s.base += s.step * tn
	return sum
}
