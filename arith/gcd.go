package arith

import "golang.org/x/exp/constraints"

// Gcd returns the greatest common divisor of a and b, computed with the
// Euclidean algorithm. Gcd(0, 0) is 0 by convention.
//
// Panics if either argument is negative.
func Gcd[T constraints.Integer](a, b T) T {
	if a < 0 || b < 0 {
		panic("arith: Gcd requires non-negative arguments")
	}
	if a < b {
		a, b = b, a
	}
	for b > 0 {
		a, b = b, a%b
	}
	return a
}

// GcdAll folds Gcd over nums, left to right.
//
// Panics if fewer than two numbers are given or any number is negative.
func GcdAll[T constraints.Integer](nums ...T) T {
	if len(nums) < 2 {
		panic("arith: GcdAll requires at least two numbers")
	}
	result := Gcd(nums[0], nums[1])
	for _, n := range nums[2:] {
		result = Gcd(result, n)
	}
	return result
}

// GcdExtended returns gcd(a, b) together with the Bézout coefficients
// x, y satisfying a·x + b·y = gcd(a, b).
//
// Panics if either argument is negative.
func GcdExtended[T constraints.Signed](a, b T) (g, x, y T) {
	if a < 0 || b < 0 {
		panic("arith: GcdExtended requires non-negative arguments")
	}
	r0, r1 := a, b
	swapped := false
	if r0 < r1 {
		r0, r1 = r1, r0
		swapped = true
	}
	s0, s1 := T(1), T(0)
	t0, t1 := T(0), T(1)
	for r1 > 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0-q*s1
		t0, t1 = t1, t0-q*t1
	}
	if swapped {
		s0, t0 = t0, s0
	}
	return r0, s0, t0
}

// Lcm returns the least common multiple of a and b. If either argument
// is 0, the result is 0.
//
// Panics if either argument is negative.
func Lcm[T constraints.Integer](a, b T) T {
	g := Gcd(a, b)
	if g == 0 {
		return 0
	}
	return (a / g) * b
}

// LcmAll folds Lcm over nums, left to right.
//
// Panics if fewer than two numbers are given or any number is negative.
func LcmAll[T constraints.Integer](nums ...T) T {
	if len(nums) < 2 {
		panic("arith: LcmAll requires at least two numbers")
	}
	result := Lcm(nums[0], nums[1])
	for _, n := range nums[2:] {
		result = Lcm(result, n)
	}
	return result
}
