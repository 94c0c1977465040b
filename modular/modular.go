package modular

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/ntheory/arith"
)

// ErrNoSolution reports a contradictory system of congruences: two
// congruences demand different remainders modulo a shared factor of
// their moduli.
var ErrNoSolution = errors.New("modular: system of congruences has no solution")

// Ord returns the multiplicative order of a modulo n, the smallest
// positive k with aᵏ ≡ 1 (mod n). Panics if a or n is below 2 or if
// they are not coprime (the order exists only for coprime a, n).
//
// The walk keeps aᵏ mod n as a running product, so no exponentiation
// is needed; Euler's theorem caps the search at n-1 steps.
func Ord[T constraints.Integer](a, n T) T {
	if a < 2 || n < 2 {
		panic("modular: a and n must be at least 2")
	}
	if arith.Gcd(a, n) != 1 {
		panic("modular: a and n must be coprime")
	}
	result := T(1)
	for k := T(1); k < n; k++ {
		result = result * a % n
		if result == 1 {
			return k
		}
	}
	panic("modular: order not found for coprime inputs")
}

// Congruence is the relation x ≡ a (mod n) with the remainder stored
// in canonical reduced form, 0 ≤ a < n.
type Congruence[T constraints.Signed] struct {
	a T
	n T
}

// NewCongruence builds x ≡ a (mod n); a may be any integer and is
// reduced into [0, n). Panics if n is not positive.
func NewCongruence[T constraints.Signed](a, n T) Congruence[T] {
	if n <= 0 {
		panic("modular: modulus must be positive")
	}
	return Congruence[T]{a: modEuclid(a, n), n: n}
}

// A returns the reduced remainder.
func (c Congruence[T]) A() T { return c.a }

// N returns the modulus.
func (c Congruence[T]) N() T { return c.n }

// Solve finds the smallest non-negative x satisfying every congruence,
// via the Chinese remainder theorem; the solution is unique modulo the
// lcm of the moduli. Non-coprime moduli are allowed: each merge
// divides out the shared factor first, and an inconsistent pair yields
// ErrNoSolution. Panics if no congruences are given.
func Solve[T constraints.Signed](congruences ...Congruence[T]) (T, error) {
	if len(congruences) == 0 {
		panic("modular: at least one congruence is required")
	}
	a, n := congruences[0].a, congruences[0].n

	for _, c := range congruences[1:] {
		a1, n1 := a, n
		a2, n2 := c.a, c.n

		g := arith.Gcd(n1, n2)
		// Both congruences constrain x mod g; they must agree there.
		if modEuclid(a2-a1, g) != 0 {
			return 0, ErrNoSolution
		}

		// Every x ≡ a1 (mod n1) is a1 + n1·t; the second congruence then
		// reads (n1/g)·t ≡ (a2−a1)/g (mod n2/g), where n1/g and n2/g are
		// coprime, so t is the residue times the modular inverse of n1/g.
		n2g := n2 / g
		_, inv, _ := arith.GcdExtended(modEuclid(n1/g, n2g), n2g)
		t := modEuclid(modEuclid((a2-a1)/g, n2g)*inv, n2g)

		n = n1 / g * n2
		a = modEuclid(a1+n1*t, n)
	}
	return a, nil
}

// modEuclid reduces x into [0, m) for positive m.
func modEuclid[T constraints.Signed](x, m T) T {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
