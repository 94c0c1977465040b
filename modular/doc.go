// Package modular covers modular-arithmetic utilities: multiplicative
// order and systems of linear congruences.
//
// Ord(a, n) finds the smallest k with aᵏ ≡ 1 (mod n); Solve combines
// congruences x ≡ aᵢ (mod nᵢ) through the Chinese remainder theorem.
// The moduli do not have to be pairwise coprime; when they are not, a
// contradictory system is reported as ErrNoSolution rather than a
// panic, since it depends on the data and not on the caller's code.
package modular
