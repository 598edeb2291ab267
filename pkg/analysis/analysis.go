// Package analysis computes the summary statistics reported for a cleaned
// observation table.
package analysis

import (
	"math"

	mstats "github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"github.com/irisdemo/irisexplore/pkg/data"
	"github.com/irisdemo/irisexplore/pkg/stats"
)

// FieldDescription pairs a numeric field with its descriptive statistics.
type FieldDescription struct {
	Field data.Field
	stats.Description
}

// GroupMean is the mean of one field over the rows of one species.
type GroupMean struct {
	Species data.Species
	Mean    float64
}

// GroupedMeans holds one entry per species present, in category order.
type GroupedMeans []GroupMean

// Lookup returns the mean recorded for s.
func (g GroupedMeans) Lookup(s data.Species) (float64, bool) {
	for _, m := range g {
		if m.Species == s {
			return m.Mean, true
		}
	}
	return 0, false
}

// Summary is everything the aggregator derives from a cleaned table.
type Summary struct {
	Rows         int
	Descriptions []FieldDescription
	// GroupedMeans is the per-species mean of petal length.
	GroupedMeans GroupedMeans
	PetalMedian  float64
	PetalStd     float64
}

// Describe computes descriptive statistics for every numeric field.
func Describe(t *data.Table) []FieldDescription {
	out := make([]FieldDescription, 0, len(data.AllFields))
	for _, f := range data.AllFields {
		out = append(out, FieldDescription{Field: f, Description: stats.Describe(t.Column(f))})
	}
	return out
}

// GroupMeans computes the mean of f per species. Species without rows are omitted.
func GroupMeans(t *data.Table, f data.Field) GroupedMeans {
	sums := make(map[data.Species]float64)
	counts := make(map[data.Species]int)
	for _, row := range t.Rows() {
		sums[row.Species] += row.Value(f)
		counts[row.Species]++
	}

	var out GroupedMeans
	for _, s := range data.AllSpecies {
		if n := counts[s]; n > 0 {
			out = append(out, GroupMean{Species: s, Mean: sums[s] / float64(n)})
		}
	}
	return out
}

// Analyze derives the full summary of a cleaned table. An empty table is
// valid input: its median and deviation are reported as NaN.
func Analyze(t *data.Table) (Summary, error) {
	summary := Summary{
		Rows:         t.Len(),
		Descriptions: Describe(t),
		GroupedMeans: GroupMeans(t, data.PetalLength),
		PetalMedian:  math.NaN(),
		PetalStd:     math.NaN(),
	}
	if t.Len() == 0 {
		return summary, nil
	}

	petals := t.Column(data.PetalLength)
	median, err := mstats.Median(petals)
	if err != nil {
		return Summary{}, errors.Wrap(err, "median petal length")
	}
	std, err := mstats.StandardDeviationSample(petals)
	if err != nil {
		return Summary{}, errors.Wrap(err, "petal length deviation")
	}
	summary.PetalMedian = median
	summary.PetalStd = std
	return summary, nil
}
