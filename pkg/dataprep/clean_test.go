package dataprep

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irisdemo/irisexplore/pkg/data"
)

func dirtyTable() *data.Table {
	nan := math.NaN()
	return data.NewTable([]data.Observation{
		{SepalLength: 5.1, SepalWidth: 3.5, PetalLength: 1.4, PetalWidth: 0.2, Species: data.Setosa},
		{SepalLength: nan, SepalWidth: 3.0, PetalLength: 1.4, PetalWidth: 0.2, Species: data.Setosa},
		{SepalLength: 7.0, SepalWidth: 3.2, PetalLength: nan, PetalWidth: nan, Species: data.Versicolor},
		{SepalLength: 6.3, SepalWidth: 3.3, PetalLength: 6.0, PetalWidth: 2.5, Species: data.NoSpecies},
		{SepalLength: 6.4, SepalWidth: 3.2, PetalLength: 4.5, PetalWidth: 1.5, Species: data.Versicolor},
	})
}

func TestMissingCounts(t *testing.T) {
	got := MissingCounts(dirtyTable())
	want := []ColumnCount{
		{"sepal length (cm)", 1},
		{"sepal width (cm)", 0},
		{"petal length (cm)", 1},
		{"petal width (cm)", 1},
		{"species", 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MissingCounts mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, TotalMissing(got))
}

func TestDropMissing(t *testing.T) {
	in := dirtyTable()
	cleaned := DropMissing(in)

	assert.Equal(t, 2, cleaned.Len())
	assert.Equal(t, 5, in.Len(), "input must not be mutated")
	assert.Equal(t, 0, TotalMissing(MissingCounts(cleaned)))
}

func TestDropMissingAllIncomplete(t *testing.T) {
	in := data.NewTable([]data.Observation{{SepalLength: math.NaN(), Species: data.Setosa}})
	cleaned := DropMissing(in)
	assert.Equal(t, 0, cleaned.Len())
}

func TestDropMissingIris(t *testing.T) {
	table, err := data.LoadIris()
	require.NoError(t, err)

	for _, c := range MissingCounts(table) {
		assert.Zero(t, c.Missing, c.Column)
	}

	once := DropMissing(table)
	twice := DropMissing(once)
	assert.Equal(t, table.Len(), once.Len())
	assert.Equal(t, once.Rows(), twice.Rows())
}
