package factors

import "golang.org/x/exp/constraints"

// divisorSlot tracks one prime's position in the odometer: the prime,
// its maximum exponent, the current power p^exp and the current
// exponent.
type divisorSlot[T constraints.Integer] struct {
	prime T
	max   int
	power T
	exp   int
}

// Divisors iterates over every divisor of an integer in an unspecified
// order. The divisor count and sum are available in O(1) through the
// multiplicative formulas, without enumerating anything.
type Divisors[T constraints.Integer] struct {
	slots   []divisorSlot[T]
	value   T
	count   int
	emitted int
	sum     T
}

// NewDivisors returns a divisor iterator for n. NewDivisors(0) is
// empty with Count 0 and Sum 0. Panics if n is negative.
func NewDivisors[T constraints.Integer](n T) *Divisors[T] {
	if n < 0 {
		panic("factors: n must be non-negative")
	}
	distinct := Distinct(n)
	slots := make([]divisorSlot[T], len(distinct))

	// Every divisor picks an exponent 0..aᵢ per prime, so
	// d(n) = Π(aᵢ+1) and σ(n) = Π(1 + p + ... + p^aᵢ).
	count := 1
	sum := T(1)
	for i, f := range distinct {
		slots[i] = divisorSlot[T]{prime: f.Prime, max: f.Multiplicity, power: 1}
		count *= f.Multiplicity + 1

		geometric := T(1)
		power := T(1)
		for k := 0; k < f.Multiplicity; k++ {
			power *= f.Prime
			geometric += power
		}
		sum *= geometric
	}
	if n == 0 {
		count = 0
		sum = 0
	}
	return &Divisors[T]{slots: slots, value: 1, count: count, sum: sum}
}

// Count returns the total number of divisors, independent of how many
// have been iterated. O(1).
func (d *Divisors[T]) Count() int { return d.count }

// Sum returns σ(n), the sum of all divisors, independent of iteration
// progress. O(1).
func (d *Divisors[T]) Sum() T { return d.sum }

// Next returns the next divisor, or false when all have been yielded.
func (d *Divisors[T]) Next() (T, bool) {
	if d.emitted == d.count {
		return 0, false
	}
	ret := d.value
	d.emitted++

	if d.emitted < d.count {
		// Odometer step: bump the rightmost slot with headroom, reset
		// everything after it.
		i := len(d.slots) - 1
		for {
			s := &d.slots[i]
			if s.exp < s.max {
				s.exp++
				s.power *= s.prime
				d.value *= s.prime
				break
			}
			s.exp = 0
			d.value /= s.power
			s.power = 1
			i--
		}
	}
	return ret, true
}

// Collect drains the iterator into a slice.
func (d *Divisors[T]) Collect() []T {
	out := []T{}
	for v, ok := d.Next(); ok; v, ok = d.Next() {
		out = append(out, v)
	}
	return out
}

// ProperDivisors iterates over the divisors of n excluding n itself.
type ProperDivisors[T constraints.Integer] struct {
	n   T
	div *Divisors[T]
}

// NewProperDivisors returns a proper-divisor iterator for n. Both 0
// and 1 yield nothing. Panics if n is negative.
func NewProperDivisors[T constraints.Integer](n T) *ProperDivisors[T] {
	return &ProperDivisors[T]{n: n, div: NewDivisors(n)}
}

// Count returns the number of proper divisors. O(1).
func (p *ProperDivisors[T]) Count() int {
	if p.div.count == 0 {
		return 0
	}
	return p.div.count - 1
}

// Sum returns the aliquot sum σ(n) - n. O(1).
func (p *ProperDivisors[T]) Sum() T {
	if p.div.sum == 0 {
		return 0
	}
	return p.div.sum - p.n
}

// Next returns the next proper divisor, or false when exhausted. The
// odometer yields n itself last, so hitting it terminates iteration.
func (p *ProperDivisors[T]) Next() (T, bool) {
	v, ok := p.div.Next()
	if !ok || v == p.n {
		return 0, false
	}
	return v, true
}

// Collect drains the iterator into a slice.
func (p *ProperDivisors[T]) Collect() []T {
	out := []T{}
	for v, ok := p.Next(); ok; v, ok = p.Next() {
		out = append(out, v)
	}
	return out
}

// DivisorCount returns d(n), the number of divisors of n, via the
// multiplicative formula. DivisorCount(0) = 0 and DivisorCount(1) = 1.
// Panics if n is negative.
func DivisorCount[T constraints.Integer](n T) T {
	if n == 0 {
		return 0
	}
	count := T(1)
	for _, f := range Distinct(n) {
		count *= T(f.Multiplicity + 1)
	}
	return count
}

// DivisorSum returns σ(n), the sum of all divisors of n, via the
// multiplicative formula. DivisorSum(0) = 0 and DivisorSum(1) = 1.
// Panics if n is negative.
func DivisorSum[T constraints.Integer](n T) T {
	if n == 0 {
		return 0
	}
	sum := T(1)
	for _, f := range Distinct(n) {
		geometric := T(1)
		power := T(1)
		for k := 0; k < f.Multiplicity; k++ {
			power *= f.Prime
			geometric += power
		}
		sum *= geometric
	}
	return sum
}

// Totient returns Euler's φ(n), the count of integers in [1, n]
// coprime to n, folding acc -= acc/p over the distinct prime factors.
// Totient(0) = 0 and Totient(1) = 1. Panics if n is negative.
func Totient[T constraints.Integer](n T) T {
	acc := n
	for _, f := range Distinct(n) {
		acc -= acc / f.Prime
	}
	return acc
}
