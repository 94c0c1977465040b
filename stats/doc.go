// Package stats maintains a running statistical sample with O(1)
// mean, variance and standard deviation queries.
//
// The aggregate state (count, running mean, running sum of squared
// deviations) is kept incrementally by Welford's online algorithm,
// which avoids the catastrophic cancellation of the naive
// sum-of-squares approach. Both insertion (Push) and removal
// (RemoveAt) update the aggregates without revisiting prior
// observations, so they always reflect exactly the current contents.
//
// Absence of a result is an error value, not a panic: Mean of an
// empty sample returns ErrEmptySample, sample variance of fewer than
// two observations returns ErrTooFewSamples. Only an out-of-range
// RemoveAt index panics.
//
// Median and Mode still inspect the stored observations (O(n log n)
// and O(n) respectively); ties in Mode go to the occurrence latest in
// insertion order.
package stats
