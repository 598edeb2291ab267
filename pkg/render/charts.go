package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/irisdemo/irisexplore/pkg/analysis"
	"github.com/irisdemo/irisexplore/pkg/data"
	"github.com/irisdemo/irisexplore/pkg/stats"
)

// HistogramBins is the number of bins of the sepal width histogram.
const HistogramBins = 15

var (
	green        = color.RGBA{G: 128, A: 255}
	mediumPurple = color.RGBA{R: 147, G: 112, B: 219, A: 255}

	// barColors follow the species category order.
	barColors = []color.Color{
		color.RGBA{R: 135, G: 206, B: 235, A: 255}, // skyblue
		color.RGBA{R: 144, G: 238, B: 144, A: 255}, // lightgreen
		color.RGBA{R: 250, G: 128, B: 114, A: 255}, // salmon
	}

	// set1 is the first three colors of the ColorBrewer Set1 palette.
	set1 = []color.Color{
		color.RGBA{R: 228, G: 26, B: 28, A: 255},
		color.RGBA{R: 55, G: 126, B: 184, A: 255},
		color.RGBA{R: 77, G: 175, B: 74, A: 255},
	}
)

// TrendPoints returns the finite petal lengths sorted ascending, each paired
// with its rank.
func TrendPoints(t *data.Table) plotter.XYs {
	petals := finite(t.Column(data.PetalLength))
	sort.Float64s(petals)
	pts := make(plotter.XYs, len(petals))
	for i, v := range petals {
		pts[i] = plotter.XY{X: float64(i), Y: v}
	}
	return pts
}

// Trend plots sorted petal lengths against their rank.
func Trend(t *data.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Line Chart: Petal Length Trend Across Samples"
	p.X.Label.Text = "Sample Index (sorted)"
	p.Y.Label.Text = "Petal Length (cm)"
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(TrendPoints(t))
	if err != nil {
		return nil, errors.Wrap(err, "trend line")
	}
	line.Color = green
	points.Shape = draw.CircleGlyph{}
	points.Color = green
	points.Radius = vg.Points(2)
	p.Add(line, points)
	return p, nil
}

// Bars draws one bar per species with its mean petal length.
func Bars(means analysis.GroupedMeans) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Average Petal Length by Species"
	p.X.Label.Text = "Species"
	p.Y.Label.Text = "Average Petal Length (cm)"

	names := make([]string, len(means))
	for i, m := range means {
		bar, err := plotter.NewBarChart(plotter.Values{m.Mean}, vg.Points(60))
		if err != nil {
			return nil, errors.Wrapf(err, "bar %s", m.Species)
		}
		bar.XMin = float64(i)
		bar.Color = barColors[int(m.Species)%len(barColors)]
		bar.LineStyle.Width = 0
		p.Add(bar)
		names[i] = m.Species.String()
	}
	p.NominalX(names...)
	return p, nil
}

// Histogram draws the sepal width distribution with a density curve scaled to
// bin counts. The curve is left out when the widths have no spread.
func Histogram(t *data.Table) (*plot.Plot, error) {
	widths := finite(t.Column(data.SepalWidth))
	bins := stats.Bins(widths, HistogramBins)
	if len(bins) == 0 {
		return nil, errors.New("histogram: no sepal width values")
	}
	p := plot.New()
	p.Title.Text = "Histogram: Sepal Width Distribution"
	p.X.Label.Text = "Sepal Width (cm)"
	p.Y.Label.Text = "Frequency"

	hist := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, len(bins)),
		Width:     bins[0].Max - bins[0].Min,
		FillColor: mediumPurple,
		LineStyle: plotter.DefaultLineStyle,
	}
	for i, b := range bins {
		hist.Bins[i] = plotter.HistogramBin{Min: b.Min, Max: b.Max, Weight: float64(b.Count)}
	}

	p.Add(hist)

	// A sample without spread has no density; the bars alone are drawn.
	kde, err := stats.NewKDE(widths)
	if errors.Is(err, stats.ErrDegenerate) {
		return p, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "histogram density")
	}
	scale := float64(len(widths)) * hist.Width
	curve := plotter.NewFunction(func(x float64) float64 { return kde.Density(x) * scale })
	curve.XMin = bins[0].Min - 3*kde.Bandwidth
	curve.XMax = bins[len(bins)-1].Max + 3*kde.Bandwidth
	curve.Samples = 200
	curve.Color = mediumPurple
	curve.Width = vg.Points(2)
	p.Add(curve)
	return p, nil
}

// Scatter plots sepal length against petal length, one series per species.
func Scatter(t *data.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Scatter Plot: Sepal Length vs Petal Length"
	p.X.Label.Text = "Sepal Length (cm)"
	p.Y.Label.Text = "Petal Length (cm)"
	p.Legend.Top = true
	p.Legend.Add("Species")

	for _, s := range data.AllSpecies {
		var pts plotter.XYs
		for _, row := range t.Rows() {
			if row.Species != s || math.IsNaN(row.SepalLength) || math.IsNaN(row.PetalLength) {
				continue
			}
			pts = append(pts, plotter.XY{X: row.SepalLength, Y: row.PetalLength})
		}
		if len(pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "scatter %s", s)
		}
		sc.Color = set1[s]
		sc.Shape = draw.CircleGlyph{}
		sc.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add(s.String(), sc)
	}
	return p, nil
}

func finite(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
