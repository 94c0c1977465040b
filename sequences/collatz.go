package sequences

import "golang.org/x/exp/constraints"

// Collatz iterates the 3x+1 trajectory from a positive start: halve
// when even, triple-and-add-one when odd, ending after 1 is yielded.
type Collatz[T constraints.Integer] struct {
	cur T
}

// NewCollatz returns the Collatz trajectory starting at n. Panics if
// n < 1.
func NewCollatz[T constraints.Integer](n T) *Collatz[T] {
	if n < 1 {
		panic("sequences: Collatz sequence requires a positive starting point")
	}
	return &Collatz[T]{cur: n}
}

// Next returns the next element of the trajectory, false once 1 has
// been yielded.
func (s *Collatz[T]) Next() (T, bool) {
	if s.cur == 0 {
		return 0, false
	}
	v := s.cur
	switch {
	case s.cur == 1:
		s.cur = 0
	case s.cur%2 == 0:
		s.cur /= 2
	default:
		s.cur = 3*s.cur + 1
	}
	return v, true
}

// SumNext sums the next n elements, or whatever remains if the
// trajectory reaches 1 first.
func (s *Collatz[T]) SumNext(n int) T {
	var sum T
	for i := 0; i < n; i++ {
		v, ok := s.Next()
		if !ok {
			break
		}
		sum += v
	}
	return sum
}

// Collect drains the whole trajectory into a slice.
func (s *Collatz[T]) Collect() []T {
	out := []T{}
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		out = append(out, v)
	}
	return out
}
