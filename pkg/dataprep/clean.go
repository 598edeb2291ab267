package dataprep

import (
	"math"

	"github.com/irisdemo/irisexplore/pkg/data"
)

// ColumnCount is the number of missing values found in one column.
type ColumnCount struct {
	Column  string
	Missing int
}

// MissingCounts counts missing values per column, in schema order.
func MissingCounts(t *data.Table) []ColumnCount {
	schema := data.IrisSchema()
	out := make([]ColumnCount, schema.Columns())
	for c, name := range schema.FeatureNames {
		out[c].Column = name
	}

	labelCol := len(data.AllFields)
	for _, row := range t.Rows() {
		for c, f := range data.AllFields {
			if math.IsNaN(row.Value(f)) {
				out[c].Missing++
			}
		}
		if !row.Species.Valid() {
			out[labelCol].Missing++
		}
	}
	return out
}

// TotalMissing sums the per-column counts.
func TotalMissing(counts []ColumnCount) int {
	total := 0
	for _, c := range counts {
		total += c.Missing
	}
	return total
}

// DropMissing returns a new table without the rows that hold a missing value.
// The input table is left untouched.
func DropMissing(t *data.Table) *data.Table {
	return t.Filter(data.Observation.Complete)
}
