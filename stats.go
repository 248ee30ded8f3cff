package montecarlo

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// GrowthDistribution holds the final growth, in percent, of every trial.
type GrowthDistribution []float64

// FinalGrowths derives the growth distribution from a trial matrix: for each
// trajectory, (final / initial - 1) * 100. Its length always equals the
// number of trials.
func FinalGrowths(matrix TrialMatrix, initialInvestment float64) GrowthDistribution {
	dist := make(GrowthDistribution, len(matrix))
	for i, trajectory := range matrix {
		dist[i] = (trajectory.Final()/initialInvestment - 1) * 100
	}
	return dist
}

// Summary condenses the final growth distribution. All values are percents.
type Summary struct {
	Mean   Percent
	Median Percent
	Min    Percent
	Max    Percent
	StdDev Percent
	P10    Percent // 10th percentile
	P90    Percent // 90th percentile
}

// Summarize computes the Summary of a growth distribution.
// It fails with EmptyDistributionError over zero trials.
func Summarize(dist GrowthDistribution) (Summary, error) {
	if len(dist) == 0 {
		return Summary{}, &EmptyDistributionError{Op: "summary"}
	}
	sorted := make([]float64, len(dist))
	copy(sorted, dist)
	sort.Float64s(sorted)

	return Summary{
		Mean:   Percent(stat.Mean(sorted, nil)),
		Median: Percent(median(sorted)),
		Min:    Percent(sorted[0]),
		Max:    Percent(sorted[len(sorted)-1]),
		StdDev: Percent(stat.StdDev(sorted, nil)),
		P10:    Percent(stat.Quantile(0.10, stat.Empirical, sorted, nil)),
		P90:    Percent(stat.Quantile(0.90, stat.Empirical, sorted, nil)),
	}, nil
}

// median is the midpoint of the two central order statistics for an even
// count, the central one otherwise. Input must be sorted.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// QueryMode selects how a growth probability query bounds the distribution.
type QueryMode int

const (
	// AtMost counts trials whose growth is strictly below Max.
	AtMost QueryMode = iota + 1
	// AtLeast counts trials whose growth is strictly above Min.
	AtLeast
	// Between counts trials whose growth is strictly between Min and Max.
	Between
)

// Query is a growth range test over a distribution, with three explicit
// modes instead of a pair of nullable bounds.
//
// Comparisons are strict on both ends: a trial whose growth lands exactly on
// a bound is not counted. The historical usage text promised inclusive
// bounds while the comparison was strict; callers have relied on the strict
// behavior, so strict it stays.
type Query struct {
	Mode QueryMode
	Min  float64 // lower bound in percent, used by AtLeast and Between
	Max  float64 // upper bound in percent, used by AtMost and Between
}

// AtMostQuery matches growths strictly below max (in percent).
func AtMostQuery(max float64) Query { return Query{Mode: AtMost, Max: max} }

// AtLeastQuery matches growths strictly above min (in percent).
func AtLeastQuery(min float64) Query { return Query{Mode: AtLeast, Min: min} }

// BetweenQuery matches growths strictly between min and max (in percent).
func BetweenQuery(min, max float64) Query { return Query{Mode: Between, Min: min, Max: max} }

func (q Query) matches(growth float64) bool {
	switch q.Mode {
	case AtMost:
		return growth < q.Max
	case AtLeast:
		return growth > q.Min
	case Between:
		return q.Min < growth && growth < q.Max
	}
	return false
}

// Probability returns the percentage of trials whose growth satisfies the
// query. A zero-valued query (no bound selected) fails with
// InvalidRangeError, an empty distribution with EmptyDistributionError.
func Probability(dist GrowthDistribution, q Query) (Percent, error) {
	switch q.Mode {
	case AtMost, AtLeast, Between:
	default:
		return 0, &InvalidRangeError{}
	}
	if len(dist) == 0 {
		return 0, &EmptyDistributionError{Op: "probability"}
	}
	count := 0
	for _, growth := range dist {
		if q.matches(growth) {
			count++
		}
	}
	return Percent(float64(count) / float64(len(dist)) * 100), nil
}

// BenchmarkFutureValue compounds the initial investment at a fixed annual
// return over the simulated period: initial * (1+annualReturn)^years.
func BenchmarkFutureValue(initialInvestment, annualReturn float64, years int) float64 {
	return initialInvestment * math.Pow(1+annualReturn, float64(years))
}

// OutperformanceProbability returns the percentage of trials whose final
// growth exceeds the growth of the benchmark's future value.
func OutperformanceProbability(dist GrowthDistribution, initialInvestment, annualReturn float64, years int) (Percent, error) {
	futureValue := BenchmarkFutureValue(initialInvestment, annualReturn, years)
	benchmarkGrowth := (futureValue/initialInvestment - 1) * 100
	return Probability(dist, AtLeastQuery(benchmarkGrowth))
}
