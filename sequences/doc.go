// Package sequences provides stateful iterators over classic integer
// sequences, with closed-form bulk summation where one exists.
//
// What you get:
//
//	🚀 Sequence   - the shared contract: Next() and SumNext(n).
//	🚀 Arithmetic - any a, a+d, a+2d, ... progression; Naturals, Odds,
//	                Evens and friends are ready-made constructors.
//	🚀 Squares    - squares of a progression: a², (a+d)², (a+2d)², ...
//	🚀 Fibonacci  - the recurrence, with Skip fast-forwarding through
//	                Binet's formula.
//	🚀 Collatz    - the 3x+1 trajectory, finite for every known start.
//
// SumNext(n) sums the next n elements and advances the iterator as if
// Next had been called n times. For Arithmetic and Squares it is O(1):
// the partial-sum polynomial is evaluated at the current position and
// at the target, and the difference is exact in integer arithmetic.
// The other sequences fall back to term-by-term accumulation. A
// sequence that ends early (Collatz) sums whatever remains.
//
// Iterators are plain structs, cheap to copy; a copy continues
// independently from the same position.
package sequences
