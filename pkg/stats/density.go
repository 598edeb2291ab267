package stats

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrDegenerate is returned when a sample has no spread to estimate a density from.
var ErrDegenerate = errors.New("degenerate sample")

// Bin is one equal-width histogram interval.
type Bin struct {
	Min, Max float64
	Count    int
}

// Bins splits the range of x into n equal-width bins and counts the values
// falling into each. The last bin includes its upper edge. A sample without
// spread is binned over [v-0.5, v+0.5].
func Bins(x []float64, n int) []Bin {
	if len(x) == 0 || n <= 0 {
		return nil
	}
	lo, hi := MinMax(x)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Min = lo + float64(i)*width
		bins[i].Max = lo + float64(i+1)*width
	}
	for _, v := range x {
		bins[min(int((v-lo)/width), n-1)].Count++
	}
	return bins
}

// KDE is a Gaussian kernel density estimate.
type KDE struct {
	kernels   []distuv.Normal
	Bandwidth float64
}

// NewKDE fits a Gaussian KDE to x using Scott's rule for the bandwidth.
func NewKDE(x []float64) (*KDE, error) {
	if len(x) < 2 {
		return nil, errors.Wrapf(ErrDegenerate, "need at least 2 values, got %d", len(x))
	}
	sd := stat.StdDev(x, nil)
	if sd == 0 || math.IsNaN(sd) {
		return nil, errors.Wrap(ErrDegenerate, "zero variance")
	}
	bw := sd * math.Pow(float64(len(x)), -0.2)

	k := &KDE{Bandwidth: bw, kernels: make([]distuv.Normal, len(x))}
	for i, v := range x {
		k.kernels[i] = distuv.Normal{Mu: v, Sigma: bw}
	}
	return k, nil
}

// Density evaluates the estimate at v.
func (k *KDE) Density(v float64) float64 {
	sum := 0.0
	for _, n := range k.kernels {
		sum += n.Prob(v)
	}
	return sum / float64(len(k.kernels))
}
