package pipeline

import (
	"io"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/irisdemo/irisexplore/pkg/analysis"
	"github.com/irisdemo/irisexplore/pkg/data"
	"github.com/irisdemo/irisexplore/pkg/dataprep"
	"github.com/irisdemo/irisexplore/pkg/render"
	"github.com/irisdemo/irisexplore/pkg/report"
)

// Result carries what each stage produced.
type Result struct {
	Table   *data.Table
	Cleaned *data.Table
	Summary analysis.Summary
	Charts  []string
}

// Pipeline runs load, clean, aggregate and render in sequence.
type Pipeline struct {
	cfg      Config
	logger   log.Interface
	reporter *report.Reporter
	renderer *render.Renderer

	// Load obtains the observation table. It defaults to the embedded dataset.
	Load func() (*data.Table, error)
}

// NewPipeline returns a Pipeline printing its report to out and logging to
// logger. Charts go to cfg.OutDir.
func NewPipeline(cfg Config, out io.Writer, logger log.Interface) *Pipeline {
	r := report.New(out)
	if cfg.Width > 0 {
		r.Width = cfg.Width
	}
	return &Pipeline{
		cfg:      cfg,
		logger:   logger,
		reporter: r,
		renderer: render.New(cfg.OutDir, logger),
		Load:     data.LoadIris,
	}
}

// Run executes every stage. A load failure stops the run before any later
// stage sees the table; chart failures are reported after all charts ran.
func (p *Pipeline) Run() (*Result, error) {
	table, err := p.Load()
	if err != nil {
		return nil, errors.Wrap(err, "load dataset")
	}
	p.logger.WithField("rows", table.Len()).Debug("dataset loaded")
	p.reporter.Loaded()
	p.reporter.Preview(table, p.cfg.Head)

	missing := dataprep.MissingCounts(table)
	p.reporter.Info(table, missing)
	p.reporter.Missing(missing)

	cleaned := dataprep.DropMissing(table)
	if dropped := table.Len() - cleaned.Len(); dropped > 0 {
		p.logger.WithField("dropped", dropped).Warn("removed incomplete rows")
	}

	summary, err := analysis.Analyze(cleaned)
	if err != nil {
		return nil, errors.Wrap(err, "analyze")
	}
	p.reporter.Describe(summary.Descriptions)
	p.reporter.GroupedMeans(summary.GroupedMeans)
	p.reporter.Spread(summary)
	p.reporter.Observations()

	res := &Result{Table: table, Cleaned: cleaned, Summary: summary}
	res.Charts, err = p.renderer.RenderAll(table, summary.GroupedMeans)
	p.reporter.FinalObservations()
	return res, err
}
