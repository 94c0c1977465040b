package factors_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ntheory/factors"
	"github.com/katalvlaran/ntheory/primes"
)

// TestPrimeFactors_Known pins factorizations with multiplicity.
func TestPrimeFactors_Known(t *testing.T) {
	cases := []struct {
		n    int
		want []int
	}{
		{0, []int{}},
		{1, []int{}},
		{2, []int{2}},
		{12, []int{2, 2, 3}},
		{28, []int{2, 2, 7}},
		{500, []int{2, 2, 5, 5, 5}},
		{97, []int{97}},
		{1024, []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}},
	}
	for _, c := range cases {
		got := factors.NewPrimeFactors(c.n).Collect()
		assert.Equal(t, c.want, got, "PrimeFactors(%d)", c.n)
	}

	assert.Panics(t, func() { factors.NewPrimeFactors(-12) })
}

// TestPrimeFactors_Soundness verifies for every n that the factors
// multiply back to n, arrive in ascending order, and are all prime.
func TestPrimeFactors_Soundness(t *testing.T) {
	for n := 2; n <= 2000; n++ {
		fs := factors.NewPrimeFactors(n).Collect()
		product := 1
		prev := 0
		for _, f := range fs {
			require.GreaterOrEqual(t, f, prev, "factors of %d must ascend", n)
			isP, _ := primes.IsPrime(f)
			require.True(t, isP, "factor %d of %d must be prime", f, n)
			product *= f
			prev = f
		}
		require.Equal(t, n, product, "factors of %d must multiply back", n)
	}
}

// TestDistinct groups multiplicities.
func TestDistinct(t *testing.T) {
	assert.Equal(t, []factors.Factor[int]{}, factors.Distinct(0))
	assert.Equal(t, []factors.Factor[int]{}, factors.Distinct(1))
	assert.Equal(t,
		[]factors.Factor[int]{{Prime: 2, Multiplicity: 2}, {Prime: 3, Multiplicity: 1}},
		factors.Distinct(12))
	assert.Equal(t,
		[]factors.Factor[int]{{Prime: 2, Multiplicity: 2}, {Prime: 5, Multiplicity: 3}},
		factors.Distinct(500))
	assert.Equal(t,
		[]factors.Factor[int]{{Prime: 97, Multiplicity: 1}},
		factors.Distinct(97))
}

// enumerateDivisors is the brute-force oracle.
func enumerateDivisors(n int) []int {
	out := []int{}
	for d := 1; d <= n; d++ {
		if n%d == 0 {
			out = append(out, d)
		}
	}
	return out
}

// TestDivisors_Known pins small divisor sets.
func TestDivisors_Known(t *testing.T) {
	d := factors.NewDivisors(12)
	assert.Equal(t, 6, d.Count())
	assert.Equal(t, 28, d.Sum())
	got := d.Collect()
	sort.Ints(got)
	assert.Equal(t, []int{1, 2, 3, 4, 6, 12}, got)

	d = factors.NewDivisors(1)
	assert.Equal(t, 1, d.Count())
	assert.Equal(t, 1, d.Sum())
	assert.Equal(t, []int{1}, d.Collect())

	d = factors.NewDivisors(0)
	assert.Equal(t, 0, d.Count())
	assert.Equal(t, 0, d.Sum())
	assert.Equal(t, []int{}, d.Collect())

	assert.Panics(t, func() { factors.NewDivisors(-4) })
}

// TestDivisors_Agreement cross-checks the multiplicative formulas and
// the odometer enumeration against brute force for 0..1000.
func TestDivisors_Agreement(t *testing.T) {
	for n := 0; n <= 1000; n++ {
		want := enumerateDivisors(n)
		wantSum := 0
		for _, v := range want {
			wantSum += v
		}

		d := factors.NewDivisors(n)
		require.Equal(t, len(want), d.Count(), "Count(%d)", n)
		require.Equal(t, wantSum, d.Sum(), "Sum(%d)", n)

		got := d.Collect()
		sort.Ints(got)
		require.Equal(t, want, got, "divisor enumeration of %d", n)

		require.Equal(t, len(want), int(factors.DivisorCount(n)), "DivisorCount(%d)", n)
		require.Equal(t, wantSum, factors.DivisorSum(n), "DivisorSum(%d)", n)
	}
}

// TestProperDivisors checks the aliquot variants.
func TestProperDivisors(t *testing.T) {
	p := factors.NewProperDivisors(28)
	assert.Equal(t, 5, p.Count())
	assert.Equal(t, 28, p.Sum(), "28 is perfect")
	got := p.Collect()
	sort.Ints(got)
	assert.Equal(t, []int{1, 2, 4, 7, 14}, got)

	p = factors.NewProperDivisors(1)
	assert.Equal(t, 0, p.Count())
	assert.Equal(t, 0, p.Sum())
	assert.Equal(t, []int{}, p.Collect())

	p = factors.NewProperDivisors(0)
	assert.Equal(t, 0, p.Count())
	assert.Equal(t, 0, p.Sum())
	assert.Equal(t, []int{}, p.Collect())
}

// TestTotient checks φ against a brute-force coprime count.
func TestTotient(t *testing.T) {
	assert.Equal(t, 0, factors.Totient(0))
	assert.Equal(t, 1, factors.Totient(1))
	assert.Equal(t, 1, factors.Totient(2))
	assert.Equal(t, 2, factors.Totient(3))
	assert.Equal(t, 2, factors.Totient(4))
	assert.Equal(t, 4, factors.Totient(5))

	for n := 1; n <= 500; n++ {
		want := 0
		for k := 1; k <= n; k++ {
			if primes.Coprime(k, n) {
				want++
			}
		}
		require.Equal(t, want, factors.Totient(n), "Totient(%d)", n)
	}
}

// TestBatches checks every batch function against its scalar sibling.
func TestBatches(t *testing.T) {
	const n = 300

	assert.Equal(t, []int{0, 1, 2, 2, 3, 2, 4, 2, 4, 3, 4}, factors.DivisorCounts[int](10))
	assert.Equal(t, []int{0, 0, 1, 1, 2, 1, 3, 1, 3, 2, 3}, factors.ProperDivisorCounts[int](10))
	assert.Equal(t, []int{0, 1, 3, 4, 7, 6, 12, 8, 15, 13, 18}, factors.DivisorSums[int](10))
	assert.Equal(t, []int{0, 0, 1, 1, 3, 1, 6, 1, 7, 4, 8}, factors.ProperDivisorSums[int](10))
	assert.Equal(t, []int{0, 1, 1, 2, 2, 4}, factors.Totients[int](5))

	counts := factors.DivisorCounts[int](n)
	sums := factors.DivisorSums[int](n)
	properCounts := factors.ProperDivisorCounts[int](n)
	properSums := factors.ProperDivisorSums[int](n)
	phis := factors.Totients[int](n)
	for k := 0; k <= n; k++ {
		require.Equal(t, factors.DivisorCount(k), counts[k], "DivisorCounts[%d]", k)
		require.Equal(t, factors.DivisorSum(k), sums[k], "DivisorSums[%d]", k)
		require.Equal(t, factors.Totient(k), phis[k], "Totients[%d]", k)
		if k >= 1 {
			require.Equal(t, counts[k]-1, properCounts[k], "ProperDivisorCounts[%d]", k)
			require.Equal(t, sums[k]-k, properSums[k], "ProperDivisorSums[%d]", k)
		}
	}

	assert.Panics(t, func() { factors.DivisorCounts[int](-1) })
	assert.Panics(t, func() { factors.Totients[int](-1) })
}
