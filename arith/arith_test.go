package arith_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ntheory/arith"
)

// TestGcd_Basic verifies gcd values including the zero conventions.
func TestGcd_Basic(t *testing.T) {
	assert.Equal(t, 6, arith.Gcd(12, 18))
	assert.Equal(t, 6, arith.Gcd(18, 12), "Gcd must be symmetric")
	assert.Equal(t, 0, arith.Gcd(0, 0), "Gcd(0,0) is 0 by convention")
	assert.Equal(t, 5, arith.Gcd(0, 5))
	assert.Equal(t, uint64(1), arith.Gcd(uint64(7), uint64(20)))
}

// TestGcd_NegativePanics ensures the non-negative precondition is fatal.
func TestGcd_NegativePanics(t *testing.T) {
	assert.Panics(t, func() { arith.Gcd(-12, 18) })
}

// TestGcdAll_Fold verifies the variadic fold and its arity precondition.
func TestGcdAll_Fold(t *testing.T) {
	assert.Equal(t, 6, arith.GcdAll(12, 18, 24))
	assert.Equal(t, 1, arith.GcdAll(9, 10, 25, 49))
	assert.Panics(t, func() { arith.GcdAll(12) }, "fewer than two numbers is a programmer error")
	assert.Panics(t, func() { arith.GcdAll[int]() })
}

// TestGcdExtended_Bezout checks gcd plus Bézout coefficients.
func TestGcdExtended_Bezout(t *testing.T) {
	g, x, y := arith.GcdExtended(12, 18)
	assert.Equal(t, 6, g)
	assert.Equal(t, 6, 12*x+18*y, "coefficients must satisfy Bézout's identity")

	g, x, y = arith.GcdExtended(0, 5)
	assert.Equal(t, 5, g)
	assert.Equal(t, 5, 0*x+5*y)

	g, _, _ = arith.GcdExtended(0, 0)
	assert.Equal(t, 0, g)
}

// TestGcdExtended_IdentityHolds cross-checks Bézout's identity on a grid.
func TestGcdExtended_IdentityHolds(t *testing.T) {
	for a := 0; a <= 30; a++ {
		for b := 0; b <= 30; b++ {
			g, x, y := arith.GcdExtended(a, b)
			require.Equal(t, arith.Gcd(a, b), g, "GcdExtended(%d,%d) gcd mismatch", a, b)
			require.Equal(t, g, a*x+b*y, "Bézout identity fails for (%d,%d)", a, b)
		}
	}
}

// TestLcm_Basic verifies lcm values including zero handling.
func TestLcm_Basic(t *testing.T) {
	assert.Equal(t, 36, arith.Lcm(12, 18))
	assert.Equal(t, 0, arith.Lcm(0, 5))
	assert.Equal(t, 0, arith.Lcm(0, 0))
	assert.Equal(t, 72, arith.LcmAll(12, 18, 24))
	assert.Panics(t, func() { arith.LcmAll(12) })
}

// TestIsqrt_Exact verifies ⌊√n⌋ against the float reference for a range
// and at the exact-square boundaries where float sqrt is treacherous.
func TestIsqrt_Exact(t *testing.T) {
	for n := 0; n <= 10_000; n++ {
		want := int(math.Sqrt(float64(n)))
		require.Equal(t, want, arith.Isqrt(n), "Isqrt(%d)", n)
	}
	for _, root := range []uint64{1, 2, 3, 1 << 10, 1 << 20, 1<<26 - 1} {
		sq := root * root
		assert.Equal(t, root, arith.Isqrt(sq))
		assert.Equal(t, root, arith.Isqrt(sq+1))
		if sq > 0 {
			assert.Equal(t, root-1, arith.Isqrt(sq-1))
		}
	}
	assert.Panics(t, func() { arith.Isqrt(-1) })
}

// TestFactorial_Values verifies small factorials and the table fast path.
func TestFactorial_Values(t *testing.T) {
	assert.Equal(t, 1, arith.Factorial(0))
	assert.Equal(t, 1, arith.Factorial(1))
	assert.Equal(t, 120, arith.Factorial(5))
	assert.Equal(t, uint64(2_432_902_008_176_640_000), arith.Factorial(uint64(20)))
	assert.Panics(t, func() { arith.Factorial(-1) })
}

// TestFactorials_Table verifies the 0!..n! table.
func TestFactorials_Table(t *testing.T) {
	assert.Equal(t, []int{1, 1, 2, 6, 24, 120}, arith.Factorials[int](5))
	assert.Equal(t, []int{1}, arith.Factorials[int](0))
	assert.Panics(t, func() { arith.Factorials[int](-1) })
}

// TestNewtonsMethod_Sqrt2 finds √2 as the zero of x²−2.
func TestNewtonsMethod_Sqrt2(t *testing.T) {
	const precision = 1e-10
	zero, err := arith.NewtonsMethod(1.0, precision,
		func(x float64) float64 { return x*x - 2 },
		func(x float64) float64 { return 2 * x },
	)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, zero, precision)
}

// TestNewtonsMethod_ZeroDerivative surfaces the absence condition.
func TestNewtonsMethod_ZeroDerivative(t *testing.T) {
	_, err := arith.NewtonsMethod(0.0, 1e-10,
		func(x float64) float64 { return x*x - 2 },
		func(x float64) float64 { return 2 * x },
	)
	assert.ErrorIs(t, err, arith.ErrZeroDerivative)
}

// TestPartitions_KnownPrefix verifies p(n) against the known sequence.
func TestPartitions_KnownPrefix(t *testing.T) {
	want := []int{1, 1, 2, 3, 5, 7, 11, 15, 22, 30, 42}
	assert.Equal(t, want, arith.PartitionsUpTo(10))
	assert.Equal(t, 7, arith.Partitions(5))
	assert.Equal(t, 0, arith.Partitions(-3), "negative integers have no partitions")
	assert.Equal(t, []int{1}, arith.PartitionsUpTo(0))
	assert.Panics(t, func() { arith.PartitionsUpTo(-1) })
}
