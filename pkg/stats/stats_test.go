package stats

import (
	"math"
	"testing"

	mstats "github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []float64{1.4, 4.7, 6.0, 1.3, 5.1, 4.5, 1.5}

func TestMeanAndStd(t *testing.T) {
	assert.InDelta(t, 24.5/7, Mean(sample), 1e-12)

	want, err := mstats.StandardDeviationSample(sample)
	require.NoError(t, err)
	assert.InDelta(t, want, Std(sample), 1e-12)

	assert.True(t, math.IsNaN(Mean(nil)))
	assert.True(t, math.IsNaN(Variance([]float64{1})))
}

func TestMinMax(t *testing.T) {
	lo, hi := MinMax(sample)
	assert.Equal(t, 1.3, lo)
	assert.Equal(t, 6.0, hi)

	lo, hi = MinMax([]float64{3, 2, 1})
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 3.0, hi)
}

func TestMedianDoesNotMutate(t *testing.T) {
	in := []float64{3, 1, 2, 4}
	assert.Equal(t, 2.5, Median(in))
	assert.Equal(t, []float64{3, 1, 2, 4}, in)
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))
}

func TestPercentileInterpolates(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1.75, Percentile(x, 25), 1e-12)
	assert.InDelta(t, 3.25, Percentile(x, 75), 1e-12)
	assert.Equal(t, 1.0, Percentile(x, 0))
	assert.Equal(t, 4.0, Percentile(x, 100))
}

func TestDescribe(t *testing.T) {
	d := Describe([]float64{1, 2, 3, 4})
	assert.Equal(t, 4, d.Count)
	assert.InDelta(t, 2.5, d.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), d.Std, 1e-12)
	assert.Equal(t, []float64{4, 2.5, d.Std, 1, 1.75, 2.5, 3.25, 4}, d.Values())
	assert.Len(t, DescriptionLabels, len(d.Values()))

	empty := Describe(nil)
	assert.Zero(t, empty.Count)
	assert.True(t, math.IsNaN(empty.Mean))
}

func TestBins(t *testing.T) {
	bins := Bins(sample, 15)
	require.Len(t, bins, 15)

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, len(sample), total)
	assert.Equal(t, 1.3, bins[0].Min)
	assert.InDelta(t, 6.0, bins[14].Max, 1e-12)
	assert.Equal(t, 1, bins[14].Count, "maximum lands in the last bin")

	flat := Bins([]float64{2, 2, 2}, 3)
	assert.Equal(t, 1.5, flat[0].Min)
	assert.Equal(t, 2.5, flat[2].Max)
	assert.Equal(t, 3, flat[1].Count)
	assert.Nil(t, Bins(nil, 3))
}

func TestKDEIntegratesToOne(t *testing.T) {
	k, err := NewKDE(sample)
	require.NoError(t, err)
	assert.Greater(t, k.Bandwidth, 0.0)

	lo, hi := MinMax(sample)
	lo -= 6 * k.Bandwidth
	hi += 6 * k.Bandwidth
	const steps = 4000
	dx := (hi - lo) / steps
	area := 0.0
	for i := 0; i < steps; i++ {
		x := lo + (float64(i)+0.5)*dx
		area += k.Density(x) * dx
	}
	assert.InDelta(t, 1.0, area, 1e-3)
}

func TestKDEDegenerate(t *testing.T) {
	_, err := NewKDE([]float64{1})
	assert.True(t, errors.Is(err, ErrDegenerate))
	_, err = NewKDE([]float64{2, 2, 2})
	assert.True(t, errors.Is(err, ErrDegenerate))
}
