// Package factors decomposes integers into prime factors and
// enumerates their divisors.
//
// What you get:
//
//	🚀 PrimeFactors   - streaming iterator over prime factors in
//	                    ascending order (with multiplicity).
//	🚀 Distinct       - distinct prime factors paired with their
//	                    multiplicities.
//	🚀 Divisors       - iterator over all divisors with O(1) Count and
//	                    Sum from the multiplicative formulas
//	                    d(n) = Π(aᵢ+1) and σ(n) = Π(pᵢ^(aᵢ+1)-1)/(pᵢ-1).
//	🚀 ProperDivisors - the same, excluding n itself.
//	🚀 Totient        - Euler's φ via the distinct-factor product.
//	🚀 Batch variants - DivisorCounts, DivisorSums, Totients and the
//	                    proper-divisor forms for every integer 0..n in
//	                    one O(n log n) harmonic sweep.
//
// Divisor iteration order is unspecified; it follows an odometer over
// prime-power exponents, not numeric order. All constructors panic on
// negative input with a "factors: ..." message; 0 and 1 follow the
// usual conventions (0 has no divisors, 1 has only itself).
package factors
