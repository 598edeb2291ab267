// Package render draws the exploration charts and writes them as images.
package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/irisdemo/irisexplore/pkg/analysis"
	"github.com/irisdemo/irisexplore/pkg/data"
)

// ErrRender is returned when at least one chart could not be produced.
var ErrRender = errors.New("render failed")

// Chart is one independent chart: a name, its size, and how to build it.
type Chart struct {
	Name   string
	Width  vg.Length
	Height vg.Length
	Build  func() (*plot.Plot, error)
}

// Charts lists the four charts in rendering order.
func Charts(t *data.Table, means analysis.GroupedMeans) []Chart {
	return []Chart{
		{"trend", 10 * vg.Inch, 5 * vg.Inch, func() (*plot.Plot, error) { return Trend(t) }},
		{"bars", 8 * vg.Inch, 5 * vg.Inch, func() (*plot.Plot, error) { return Bars(means) }},
		{"histogram", 8 * vg.Inch, 5 * vg.Inch, func() (*plot.Plot, error) { return Histogram(t) }},
		{"scatter", 8 * vg.Inch, 6 * vg.Inch, func() (*plot.Plot, error) { return Scatter(t) }},
	}
}

// Renderer saves charts as PNG files into Dir.
type Renderer struct {
	Dir    string
	Logger log.Interface
}

// New returns a Renderer writing into dir.
func New(dir string, logger log.Interface) *Renderer {
	return &Renderer{Dir: dir, Logger: logger}
}

// Render builds and saves one chart, returning the written path.
func (r *Renderer) Render(c Chart) (string, error) {
	p, err := c.Build()
	if err != nil {
		return "", errors.Wrapf(err, "build %s", c.Name)
	}
	path := filepath.Join(r.Dir, c.Name+".png")
	if err := p.Save(c.Width, c.Height, path); err != nil {
		return "", errors.Wrapf(err, "save %s", path)
	}
	return path, nil
}

// RenderAll renders every chart in order. A failing chart is logged and
// skipped; the returned error names all charts that failed.
func (r *Renderer) RenderAll(t *data.Table, means analysis.GroupedMeans) ([]string, error) {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create %s", r.Dir)
	}

	var written, failed []string
	for _, c := range Charts(t, means) {
		path, err := r.Render(c)
		if err != nil {
			r.Logger.WithField("chart", c.Name).WithError(err).Error("chart failed")
			failed = append(failed, c.Name)
			continue
		}
		r.Logger.WithField("chart", c.Name).Infof("saved %s", path)
		written = append(written, path)
	}
	if len(failed) > 0 {
		return written, errors.Wrapf(ErrRender, "%s", strings.Join(failed, ", "))
	}
	return written, nil
}
