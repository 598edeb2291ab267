package data

import "math"

// Field identifies one of the four numeric measurements.
type Field int

const (
	SepalLength Field = iota
	SepalWidth
	PetalLength
	PetalWidth
)

// AllFields lists the measurements in column order.
var AllFields = []Field{SepalLength, SepalWidth, PetalLength, PetalWidth}

var fieldNames = [...]string{
	"sepal length (cm)",
	"sepal width (cm)",
	"petal length (cm)",
	"petal width (cm)",
}

func (f Field) String() string {
	if f < SepalLength || f > PetalWidth {
		return "unknown"
	}
	return fieldNames[f]
}

// Observation represents a single measured flower. Missing measurements are NaN.
type Observation struct {
	SepalLength float64
	SepalWidth  float64
	PetalLength float64
	PetalWidth  float64
	Species     Species
}

// Value returns the measurement selected by f.
func (o Observation) Value(f Field) float64 {
	switch f {
	case SepalLength:
		return o.SepalLength
	case SepalWidth:
		return o.SepalWidth
	case PetalLength:
		return o.PetalLength
	case PetalWidth:
		return o.PetalWidth
	}
	return math.NaN()
}

// Complete reports whether no field of o is missing.
func (o Observation) Complete() bool {
	for _, f := range AllFields {
		if math.IsNaN(o.Value(f)) {
			return false
		}
	}
	return o.Species.Valid()
}

// Table is an ordered, read-only sequence of observations.
// Every accessor hands out copies; derived tables never share backing storage.
type Table struct {
	rows []Observation
}

// NewTable copies rows into a new Table.
func NewTable(rows []Observation) *Table {
	cp := make([]Observation, len(rows))
	copy(cp, rows)
	return &Table{rows: cp}
}

// Len returns the number of rows. A nil table has none.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Row returns row i.
func (t *Table) Row(i int) Observation { return t.rows[i] }

// Rows returns a copy of all rows.
func (t *Table) Rows() []Observation {
	cp := make([]Observation, t.Len())
	if t != nil {
		copy(cp, t.rows)
	}
	return cp
}

// Head returns a table with at most the first n rows.
func (t *Table) Head(n int) *Table {
	n = max(0, min(n, t.Len()))
	if n == 0 {
		return NewTable(nil)
	}
	return NewTable(t.rows[:n])
}

// Column extracts the values of f in row order.
func (t *Table) Column(f Field) []float64 {
	out := make([]float64, t.Len())
	for i := range out {
		out[i] = t.rows[i].Value(f)
	}
	return out
}

// Species extracts the labels in row order.
func (t *Table) Species() []Species {
	out := make([]Species, t.Len())
	for i := range out {
		out[i] = t.rows[i].Species
	}
	return out
}

// Filter derives a new table holding the rows for which keep returns true.
func (t *Table) Filter(keep func(Observation) bool) *Table {
	out := &Table{rows: make([]Observation, 0, t.Len())}
	for i := 0; i < t.Len(); i++ {
		if keep(t.rows[i]) {
			out.rows = append(out.rows, t.rows[i])
		}
	}
	return out
}
