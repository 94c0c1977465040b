// Package ntheory is your in-process toolbox for exact integer
// mathematics — digits, primes, divisors, continued fractions and
// closed-form sequences, all generic over the caller's integer type.
//
// 🚀 What is ntheory?
//
//	A small, synchronous, allocation-light library that brings together:
//		• Digit machinery: double-ended digit iteration, palindrome &
//		  permutation tests in any radix ≥ 2
//		• Primes: odd-only sieve of Eratosthenes, 6k±1 trial division
//		  with a divisor witness
//		• Factorization: streaming prime factors, divisor enumeration,
//		  divisor count/sum and Euler's totient, batch range sieves
//		• Continued fractions: periodic √n expansions, exact big-integer
//		  convergents, Pell-equation solving, decimal-digit extraction
//		• Sequences: arithmetic & squared progressions with O(1) partial
//		  sums, Fibonacci with Binet fast-forward, Collatz
//		• Statistics: Welford running mean/variance for timing harnesses
//
// ✨ Why choose ntheory?
//
//   - Exact by construction – no silent clamping, truncation or widening
//   - Generic – one implementation per algorithm, any integer width
//   - Pure Go – no cgo, no hidden deps
//   - Predictable failure – programmer errors panic, absent results are
//     explicit sentinel errors or (value, ok) pairs
//
// Everything is organized under flat subpackages:
//
//	arith/     — gcd/lcm, extended Euclid, integer sqrt, factorials,
//	             Newton's method, partition counting
//	contfrac/  — continued fractions, convergents, Pell's equation
//	digits/    — radix digit iterator, compose/reverse, palindrome &
//	             permutation predicates
//	factors/   — prime factorization, divisors, multiplicative functions
//	modular/   — multiplicative order, Chinese remainder theorem
//	primes/    — sieve of Eratosthenes, primality with witness,
//	             prime-counting estimates, prime partitions
//	sequences/ — closed-form sequence iterators with SumNext
//	stats/     — running statistical sample (Welford)
//
// Quick example:
//
//	cf := contfrac.FromSqrt(int64(2)) // [1; 2, 2, 2, ...]
//	x, y := contfrac.SolvePell(int64(2))
//	// x=3, y=2 — the minimal solution of x² − 2y² = 1
//
// Dive into each package's doc.go for the full contract, complexity
// notes and runnable examples.
//
//	go get github.com/katalvlaran/ntheory
package ntheory
