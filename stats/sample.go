package stats

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrEmptySample is returned when a statistic needs at least one
	// observation.
	ErrEmptySample = errors.New("stats: empty sample")
	// ErrTooFewSamples is returned when a statistic needs at least two
	// observations.
	ErrTooFewSamples = errors.New("stats: need at least two observations")
)

// Sample is an ordered collection of observations with incrementally
// maintained aggregates. The zero value is an empty sample ready for
// use.
type Sample struct {
	data []float64
	mean float64
	m2   float64 // running sum of squared deviations from the mean
}

// NewSample returns a sample pre-filled with the given observations.
func NewSample(values ...float64) *Sample {
	s := &Sample{}
	for _, v := range values {
		s.Push(v)
	}
	return s
}

// Len returns the number of observations.
func (s *Sample) Len() int { return len(s.data) }

// Values returns a copy of the observations in insertion order.
func (s *Sample) Values() []float64 {
	return append([]float64(nil), s.data...)
}

// At returns the i-th observation in insertion order. Panics if i is
// out of range.
func (s *Sample) At(i int) float64 { return s.data[i] }

// Push appends an observation, updating the aggregates with the
// standard Welford step.
func (s *Sample) Push(x float64) {
	s.data = append(s.data, x)
	n := float64(len(s.data))
	delta := x - s.mean
	s.mean += delta / n
	s.m2 += delta * (x - s.mean)
}

// RemoveAt deletes the i-th observation (insertion order) and returns
// it, reversing the Welford update so the aggregates stay consistent
// without a full recomputation. Panics if i is out of range.
func (s *Sample) RemoveAt(i int) float64 {
	x := s.data[i]
	s.data = append(s.data[:i], s.data[i+1:]...)

	n := len(s.data)
	if n == 0 {
		s.mean = 0
		s.m2 = 0
		return x
	}
	oldMean := s.mean
	s.mean = (oldMean*float64(n+1) - x) / float64(n)
	s.m2 -= (x - s.mean) * (x - oldMean)
	// Rounding can leave a tiny negative residue.
	if s.m2 < 0 {
		s.m2 = 0
	}
	return x
}

// Mean returns the arithmetic mean in O(1), or ErrEmptySample.
func (s *Sample) Mean() (float64, error) {
	if len(s.data) == 0 {
		return 0, ErrEmptySample
	}
	return s.mean, nil
}

// SampleVariance returns the Bessel-corrected variance m2/(n-1) in
// O(1), or ErrTooFewSamples when fewer than two observations exist.
func (s *Sample) SampleVariance() (float64, error) {
	if len(s.data) < 2 {
		return 0, ErrTooFewSamples
	}
	return s.m2 / float64(len(s.data)-1), nil
}

// SampleStdDev returns the square root of SampleVariance.
func (s *Sample) SampleStdDev() (float64, error) {
	v, err := s.SampleVariance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// PopulationVariance returns m2/n in O(1), for when the sample is the
// whole population, or ErrEmptySample.
func (s *Sample) PopulationVariance() (float64, error) {
	if len(s.data) == 0 {
		return 0, ErrEmptySample
	}
	return s.m2 / float64(len(s.data)), nil
}

// PopulationStdDev returns the square root of PopulationVariance.
func (s *Sample) PopulationStdDev() (float64, error) {
	v, err := s.PopulationVariance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Median returns the middle observation (or the average of the two
// middle ones) of the sorted sample, or ErrEmptySample. O(n log n).
func (s *Sample) Median() (float64, error) {
	if len(s.data) == 0 {
		return 0, ErrEmptySample
	}
	sorted := s.Values()
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// Mode returns the most frequent observation, or ErrEmptySample. When
// several values share the highest frequency, the one occurring last
// in insertion order wins. O(n).
func (s *Sample) Mode() (float64, error) {
	if len(s.data) == 0 {
		return 0, ErrEmptySample
	}
	freq := make(map[float64]int, len(s.data))
	highest := 0
	for _, v := range s.data {
		freq[v]++
		if freq[v] > highest {
			highest = freq[v]
		}
	}
	for i := len(s.data) - 1; i >= 0; i-- {
		if freq[s.data[i]] == highest {
			return s.data[i], nil
		}
	}
	return 0, ErrEmptySample // unreachable
}
