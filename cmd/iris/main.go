// Command iris explores the iris flower dataset: it prints summary
// statistics and saves four charts.
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/irisdemo/irisexplore/pkg/pipeline"
)

func main() {
	defaults := pipeline.DefaultConfig()

	app := kingpin.New("iris", "Load, explore, analyze and visualize the iris dataset.")
	outDir := app.Flag("out-dir", "Directory receiving the chart images.").Short('o').Default(defaults.OutDir).String()
	head := app.Flag("head", "Number of rows shown in the preview.").Default("5").Int()
	width := app.Flag("width", "Column at which commentary is wrapped.").Default("0").Uint()
	verbose := app.Flag("verbose", "Enable verbose log output.").Short('v').Bool()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log.SetHandler(cli.Default)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := pipeline.Config{OutDir: *outDir, Head: *head, Width: *width}
	log.WithField("out-dir", cfg.OutDir).Debug("starting")

	if _, err := pipeline.NewPipeline(cfg, os.Stdout, log.Log).Run(); err != nil {
		log.WithError(err).Error("iris exploration failed")
		os.Exit(1)
	}
}
