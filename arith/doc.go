// Package arith provides the elementary integer arithmetic the rest of
// ntheory is built on: Euclidean gcd/lcm (binary and variadic), the
// extended Euclidean algorithm, exact integer square roots, factorials,
// Newton's root finding and integer-partition counting.
//
// Every function is generic over the caller's integer type; nothing is
// silently widened. Domain violations (negative input to an
// unsigned-domain function, fewer than two arguments to GcdAll/LcmAll)
// are programmer errors and panic. The only recoverable condition in
// this package is a vanishing derivative inside NewtonsMethod, reported
// as ErrZeroDerivative.
//
// Complexity:
//
//   - Gcd/Lcm:        O(log min(a,b)) divisions
//   - Isqrt:          O(log n) Newton steps
//   - Factorial:      O(n) multiplications (O(1) for n ≤ 20)
//   - PartitionsUpTo: O(n^1.5) via Euler's pentagonal recurrence
package arith
