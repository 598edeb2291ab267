// Package report prints the human-readable exploration output.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"

	"github.com/irisdemo/irisexplore/pkg/analysis"
	"github.com/irisdemo/irisexplore/pkg/data"
	"github.com/irisdemo/irisexplore/pkg/dataprep"
	"github.com/irisdemo/irisexplore/pkg/stats"
)

// DefaultWidth is the column at which commentary is wrapped.
const DefaultWidth = 120

const observations = `Observations:
- Petal length varies significantly across species.
- Virginica has the highest average petal length.
- Low standard deviation suggests consistent measurements within species.`

const finalObservations = `Final Observations:
- Virginica species stands out with highest petal and sepal lengths.
- Species are well-separated in the scatter plot, suggesting strong feature-based classification potential.`

// Reporter writes report sections to W.
type Reporter struct {
	W     io.Writer
	Width uint

	heading *color.Color
}

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{W: w, Width: DefaultWidth, heading: color.New(color.Bold, color.FgCyan)}
}

func (r *Reporter) section(title string) {
	fmt.Fprintln(r.W)
	r.heading.Fprintln(r.W, title)
}

func (r *Reporter) table(fn func(tw *tabwriter.Writer)) {
	tw := tabwriter.NewWriter(r.W, 0, 0, 2, ' ', tabwriter.AlignRight)
	fn(tw)
	tw.Flush()
}

// Loaded announces a successful load.
func (r *Reporter) Loaded() {
	fmt.Fprintln(r.W, "Iris dataset loaded successfully.")
}

// Preview prints the first n rows of t.
func (r *Reporter) Preview(t *data.Table, n int) {
	head := t.Head(n)
	r.heading.Fprintf(r.W, "First %d rows of the dataset:\n", head.Len())
	r.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "\t%s\t\n", strings.Join(data.IrisSchema().FeatureNames, "\t"))
		for i, row := range head.Rows() {
			cells := []string{strconv.Itoa(i)}
			for _, f := range data.AllFields {
				cells = append(cells, formatValue(row.Value(f)))
			}
			cells = append(cells, row.Species.String())
			fmt.Fprintf(tw, "%s\t\n", strings.Join(cells, "\t"))
		}
	})
}

// Info prints the table layout: entries, columns, non-null counts and dtypes.
func (r *Reporter) Info(t *data.Table, missing []dataprep.ColumnCount) {
	r.section("Dataset Info:")
	schema := data.IrisSchema()
	n := t.Len()
	if n == 0 {
		fmt.Fprintln(r.W, "RangeIndex: 0 entries")
	} else {
		fmt.Fprintf(r.W, "RangeIndex: %d entries, 0 to %d\n", n, n-1)
	}
	fmt.Fprintf(r.W, "Data columns (total %d columns):\n", schema.Columns())

	tw := tabwriter.NewWriter(r.W, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " #\tColumn\tNon-Null Count\tDtype")
	fmt.Fprintln(tw, "---\t------\t--------------\t-----")
	types := map[string]int{}
	for c, name := range schema.FeatureNames {
		fmt.Fprintf(tw, " %d\t%s\t%d non-null\t%s\n", c, name, n-missing[c].Missing, schema.Types[c])
		types[schema.Types[c]]++
	}
	tw.Flush()
	fmt.Fprintf(r.W, "dtypes: category(%d), float64(%d)\n", types["category"], types["float64"])
}

// Missing prints the missing-value count of every column.
func (r *Reporter) Missing(counts []dataprep.ColumnCount) {
	r.section("Missing Values:")
	r.table(func(tw *tabwriter.Writer) {
		for _, c := range counts {
			fmt.Fprintf(tw, "%s\t%d\t\n", c.Column, c.Missing)
		}
	})
}

// Describe prints the descriptive statistics table, one column per field.
func (r *Reporter) Describe(descs []analysis.FieldDescription) {
	r.section("Basic Statistical Summary:")
	r.table(func(tw *tabwriter.Writer) {
		header := []string{""}
		for _, d := range descs {
			header = append(header, d.Field.String())
		}
		fmt.Fprintf(tw, "%s\t\n", strings.Join(header, "\t"))
		for i, label := range stats.DescriptionLabels {
			cells := []string{label}
			for _, d := range descs {
				cells = append(cells, fmt.Sprintf("%.6f", d.Values()[i]))
			}
			fmt.Fprintf(tw, "%s\t\n", strings.Join(cells, "\t"))
		}
	})
}

// GroupedMeans prints the per-species mean petal length.
func (r *Reporter) GroupedMeans(means analysis.GroupedMeans) {
	r.section("Average Petal Length by Species:")
	r.table(func(tw *tabwriter.Writer) {
		for _, m := range means {
			fmt.Fprintf(tw, "%s\t%.3f\t\n", m.Species, m.Mean)
		}
	})
	fmt.Fprintf(r.W, "Name: %s, dtype: float64\n", data.PetalLength)
}

// Spread prints the median and standard deviation of petal length.
func (r *Reporter) Spread(s analysis.Summary) {
	fmt.Fprintf(r.W, "\nMedian Petal Length: %v\n", s.PetalMedian)
	fmt.Fprintf(r.W, "Standard Deviation of Petal Length: %v\n", s.PetalStd)
}

// Observations prints the commentary that follows the statistics.
func (r *Reporter) Observations() { r.commentary(observations) }

// FinalObservations prints the commentary that follows the charts.
func (r *Reporter) FinalObservations() { r.commentary(finalObservations) }

func (r *Reporter) commentary(text string) {
	fmt.Fprintln(r.W)
	fmt.Fprintln(r.W, wordwrap.WrapString(text, r.Width))
	fmt.Fprintln(r.W)
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
