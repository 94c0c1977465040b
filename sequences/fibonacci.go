package sequences

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Fibonacci iterates 0, 1, 1, 2, 3, 5, ... It never ends, though the
// element type will eventually wrap.
type Fibonacci[T constraints.Integer] struct {
	cur, next T
	index     int
}

// NewFibonacci returns the Fibonacci sequence from F(0) = 0.
func NewFibonacci[T constraints.Integer]() *Fibonacci[T] {
	return &Fibonacci[T]{cur: 0, next: 1}
}

// Next returns the next Fibonacci number.
func (s *Fibonacci[T]) Next() (T, bool) {
	v := s.cur
	s.cur, s.next = s.next, s.cur+s.next
	s.index++
	return v, true
}

// Skip jumps past n elements in O(1) using Binet's formula,
// F(k) = (φᵏ - ψᵏ)/√5, rounded to the nearest integer. The rounding is
// exact while F(k) fits comfortably in the float64 mantissa (k ≤ 70);
// past that, prefer plain Next calls.
func (s *Fibonacci[T]) Skip(n int) {
	if n <= 0 {
		return
	}
	s.index += n
	s.cur = binet[T](s.index)
	s.next = binet[T](s.index + 1)
}

// SumNext sums the next n elements term by term; the recurrence keeps
// every value exact, Binet would not.
func (s *Fibonacci[T]) SumNext(n int) T {
	var sum T
	for i := 0; i < n; i++ {
		v, _ := s.Next()
		sum += v
	}
	return sum
}

func binet[T constraints.Integer](k int) T {
	sqrt5 := math.Sqrt(5)
	phi := (1 + sqrt5) / 2
	psi := (1 - sqrt5) / 2
	return T(math.Round((math.Pow(phi, float64(k)) - math.Pow(psi, float64(k))) / sqrt5))
}
