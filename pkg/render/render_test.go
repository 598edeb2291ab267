package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/irisdemo/irisexplore/pkg/analysis"
	"github.com/irisdemo/irisexplore/pkg/data"
)

func quietLogger() log.Interface {
	return &log.Logger{Handler: discard.New(), Level: log.ErrorLevel}
}

func loadIris(t *testing.T) *data.Table {
	t.Helper()
	table, err := data.LoadIris()
	require.NoError(t, err)
	return table
}

func TestTrendPointsSorted(t *testing.T) {
	pts := TrendPoints(loadIris(t))
	require.Len(t, pts, 150)
	for i := 1; i < len(pts); i++ {
		assert.LessOrEqual(t, pts[i-1].Y, pts[i].Y)
		assert.Equal(t, float64(i), pts[i].X)
	}
	assert.Equal(t, 1.0, pts[0].Y)
	assert.Equal(t, 6.9, pts[len(pts)-1].Y)
}

func TestTrendPointsSkipMissing(t *testing.T) {
	table := data.NewTable([]data.Observation{
		{PetalLength: 3, Species: data.Setosa},
		{PetalLength: math.NaN(), Species: data.Setosa},
		{PetalLength: 1, Species: data.Setosa},
	})
	pts := TrendPoints(table)
	assert.Equal(t, plotter.XYs{{X: 0, Y: 1}, {X: 1, Y: 3}}, pts)
}

func TestBuildCharts(t *testing.T) {
	table := loadIris(t)
	means := analysis.GroupMeans(table, data.PetalLength)

	charts := Charts(table, means)
	require.Len(t, charts, 4)
	for _, c := range charts {
		p, err := c.Build()
		require.NoError(t, err, c.Name)
		assert.NotEmpty(t, p.Title.Text, c.Name)
	}
}

func TestHistogramWithoutSpread(t *testing.T) {
	rows := make([]data.Observation, 10)
	for i := range rows {
		rows[i] = data.Observation{SepalLength: 5, SepalWidth: 3.0, PetalLength: 1.4, PetalWidth: 0.2, Species: data.Setosa}
	}
	p, err := Histogram(data.NewTable(rows))
	require.NoError(t, err)
	require.NoError(t, p.Save(4*vg.Inch, 3*vg.Inch, filepath.Join(t.TempDir(), "flat.png")))

	_, err = Histogram(data.NewTable(nil))
	assert.Error(t, err)
}

func TestRenderAll(t *testing.T) {
	table := loadIris(t)
	means := analysis.GroupMeans(table, data.PetalLength)
	dir := filepath.Join(t.TempDir(), "charts")

	paths, err := New(dir, quietLogger()).RenderAll(table, means)
	require.NoError(t, err)
	require.Len(t, paths, 4)
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
	assert.Equal(t, filepath.Join(dir, "trend.png"), paths[0])
	assert.Equal(t, filepath.Join(dir, "scatter.png"), paths[3])
}

func TestRenderAllIsolatesFailures(t *testing.T) {
	table := loadIris(t)
	means := analysis.GroupMeans(table, data.PetalLength)
	dir := t.TempDir()
	// A directory in the way of histogram.png makes only that save fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "histogram.png"), 0o755))

	paths, err := New(dir, quietLogger()).RenderAll(table, means)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRender))
	assert.Contains(t, err.Error(), "histogram")
	assert.Equal(t, []string{
		filepath.Join(dir, "trend.png"),
		filepath.Join(dir, "bars.png"),
		filepath.Join(dir, "scatter.png"),
	}, paths)
}

func TestRenderAllUnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "charts")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := New(file, quietLogger()).RenderAll(loadIris(t), nil)
	assert.Error(t, err)
}

func TestRenderIncompleteRows(t *testing.T) {
	table := data.NewTable([]data.Observation{
		{SepalLength: 5.1, SepalWidth: 3.5, PetalLength: 1.4, PetalWidth: math.NaN(), Species: data.Setosa},
		{SepalLength: 7.0, SepalWidth: 3.2, PetalLength: 4.7, PetalWidth: 1.4, Species: data.NoSpecies},
	})

	paths, err := New(t.TempDir(), quietLogger()).RenderAll(table, nil)
	require.NoError(t, err)
	assert.Len(t, paths, 4)
}
