package arith

import "golang.org/x/exp/constraints"

// Partitions returns p(n), the number of ways n can be written as a sum
// of positive integers. Negative n has no partitions and yields 0.
//
// Computing p(n) requires p(k) for every k < n, so callers needing the
// whole range should use PartitionsUpTo instead.
func Partitions[T constraints.Integer](n T) T {
	if n < 0 {
		return 0
	}
	all := PartitionsUpTo(n)
	return all[len(all)-1]
}

// PartitionsUpTo returns p(0)..p(n) as a slice indexed by the argument,
// computed with Euler's pentagonal-number recurrence:
//
//	p(n) = Σ_{k≥1} (-1)^(k+1) · (p(n − k(3k−1)/2) + p(n − k(3k+1)/2))
//
// Panics if n is negative.
func PartitionsUpTo[T constraints.Integer](n T) []T {
	if n < 0 {
		panic("arith: PartitionsUpTo requires a non-negative argument")
	}
	limit := int(n)
	out := make([]T, 1, limit+1)
	out[0] = 1 // p(0) = 1, the empty partition
	for len(out) <= limit {
		cur := len(out)
		var next T
		for k := 1; k <= cur; k++ {
			left := cur - k*(3*k-1)/2
			if left < 0 {
				// Both pentagonal indices only grow with k.
				break
			}
			value := out[left]
			if right := cur - k*(3*k+1)/2; right >= 0 {
				value += out[right]
			}
			if k%2 == 0 {
				next -= value
			} else {
				next += value
			}
		}
		out = append(out, next)
	}
	return out
}
