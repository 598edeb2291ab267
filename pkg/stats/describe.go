package stats

import (
	"math"
	"sort"
)

// Description is the standard summary set of one numeric column.
type Description struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q1    float64
	Q2    float64
	Q3    float64
	Max   float64
}

// Describe summarizes x. An empty slice yields a zero count and NaN elsewhere.
func Describe(x []float64) Description {
	if len(x) == 0 {
		nan := math.NaN()
		return Description{Mean: nan, Std: nan, Min: nan, Q1: nan, Q2: nan, Q3: nan, Max: nan}
	}
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)

	return Description{
		Count: len(x),
		Mean:  Mean(x),
		Std:   Std(x),
		Min:   sorted[0],
		Q1:    sortedPercentile(sorted, 25),
		Q2:    sortedPercentile(sorted, 50),
		Q3:    sortedPercentile(sorted, 75),
		Max:   sorted[len(sorted)-1],
	}
}

// Values returns the summary in display order: count, mean, std, min, 25%, 50%, 75%, max.
func (d Description) Values() []float64 {
	return []float64{float64(d.Count), d.Mean, d.Std, d.Min, d.Q1, d.Q2, d.Q3, d.Max}
}

// DescriptionLabels names the entries returned by Description.Values.
var DescriptionLabels = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}
