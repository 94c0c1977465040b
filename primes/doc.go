// Package primes provides primality testing, prime enumeration and
// prime-counting estimates.
//
// What you get:
//
//	🚀 Sieve       - odd-only sieve of Eratosthenes, all primes ≤ n.
//	🚀 IsPrime     - deterministic trial division with a 6k±1 wheel;
//	                 returns the smallest divisor as a witness.
//	🚀 Coprime     - gcd(a, b) == 1 shorthand.
//	🚀 CountApprox - π(x) estimate from the prime number theorem,
//	                 exact below 11, an underestimate above.
//	🚀 NthApprox   - inverse of CountApprox via Newton's method,
//	                 an overestimate for n ≥ 4; handy for sizing a
//	                 sieve that must contain the first n primes.
//	🚀 Partitions  - number of ways to write n as a sum of primes.
//
// Error model: domain violations (n < 2 for IsPrime, negative inputs,
// a sieve that cannot fit in memory) panic with a "primes: ..."
// message. Functions never return errors; every in-domain input has a
// result.
//
// Complexity:
//
//	✨ Sieve       - O(n log log n) time, (n-1)/2 bits of bool storage.
//	✨ IsPrime     - O(√n) worst case.
//	✨ Partitions  - O(n · π(n)) time, O(n) space.
//
// See contfrac and factors for the consumers of these primitives.
package primes
