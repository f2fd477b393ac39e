// File: stats/stats.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Small mathematical statistics toolkit: binomial coefficients, Bernoulli
// draws and descriptive statistics over float64 samples.

// Package stats provides the numeric helpers shared by the random-graph
// experiments: binomial coefficients, Bernoulli random variables and
// descriptive statistics (mean, extrema, quantiles).
package stats

import (
	"math/rand"
	"slices"
)

// Binom computes the binomial coefficient C(n, k) without evaluating
// factorials: the running product multiplies by (n-i) and divides by (i+1)
// on each step, which keeps intermediate values integral.
//
// The result is not checked for overflow; it is exact only while C(n, k)
// fits in uint64. Returns 0 when k < 0 or k > n.
func Binom(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	switch {
	case k == 0 || k == n:
		return 1
	case k == 1 || k == n-1:
		return uint64(n)
	case k == 2 || k == n-2:
		return uint64(n) * uint64(n-1) / 2
	}

	if k > n-k {
		k = n - k
	}
	coeff := uint64(1)
	for i := 0; i < k; i++ {
		coeff *= uint64(n - i)
		coeff /= uint64(i + 1)
	}
	return coeff
}

// Bernoulli draws one Bernoulli random variable: true with probability p.
// The caller owns the generator and its seeding, which keeps experiment
// runs reproducible.
func Bernoulli(rng *rand.Rand, p float64) bool {
	return rng.Float64() <= p
}

// Mean returns the arithmetic mean of xs. Mean of an empty sample is NaN.
func Mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Min returns the smallest value in xs. Panics on an empty sample.
func Min(xs []float64) float64 { return slices.Min(xs) }

// Max returns the largest value in xs. Panics on an empty sample.
func Max(xs []float64) float64 { return slices.Max(xs) }

// Quantile returns the q-th quantile of xs for q in [0, 1], leaving xs
// untouched: the sample is copied and the copy sorted ascending. The index
// is truncated from q*(len-1); for even-length samples the result is the
// midpoint of the two neighboring order statistics, so the median of
// {1, 2, 3, 4} is 2.5. Panics on an empty sample.
func Quantile(xs []float64, q float64) float64 {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	idx := int(q * float64(len(sorted)-1))
	if len(sorted)%2 == 1 || idx+1 == len(sorted) {
		return sorted[idx]
	}
	return (sorted[idx] + sorted[idx+1]) / 2
}

// SortAsc returns a copy of xs sorted ascending.
func SortAsc(xs []float64) []float64 {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	return sorted
}

// SortDesc returns a copy of xs sorted descending.
func SortDesc(xs []float64) []float64 {
	sorted := slices.Clone(xs)
	slices.SortFunc(sorted, func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})
	return sorted
}
