// Package digits decomposes non-negative integers into their digits in
// an arbitrary radix ≥ 2 and recomposes them, without ever
// materializing the digit list.
//
// The central type is Iter, a double-ended, exact-size digit iterator:
// Next walks from the most-significant end, Back from the
// least-significant end, and the two ends meet in the middle without
// double-yielding. Zero is a single digit 0, never an empty sequence.
//
// On top of the iterator the package provides Compose (Horner
// recomposition, the exact inverse of Next order), Reverse, and the two
// predicates most digit work reduces to: IsPalindrome (two-ended
// comparison, O(digit count), allocation-free) and IsPermutation
// (digit-frequency histogram sized to the radix).
//
// All inputs are validated eagerly: a radix below 2, a negative
// integer, or a digit outside [0, radix) is a programmer error and
// panics. There are no recoverable errors in this package.
package digits
