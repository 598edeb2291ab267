package data

import (
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//go:embed iris.csv
var irisFS embed.FS

const irisFile = "iris.csv"

var (
	// ErrDataUnavailable is returned when the dataset source cannot be read.
	ErrDataUnavailable = errors.New("dataset unavailable")
	// ErrMalformedRow is returned for rows that do not hold five parsable fields.
	ErrMalformedRow = errors.New("malformed row")
	// ErrUnknownSpecies is returned for labels outside the closed species set.
	ErrUnknownSpecies = errors.New("unknown species")
)

var header = []string{"sepal_length", "sepal_width", "petal_length", "petal_width", "species"}

// LoadIris loads the embedded 150-row iris dataset.
func LoadIris() (*Table, error) {
	return Load(irisFS, irisFile)
}

// Load reads and parses the named CSV file from fsys.
func Load(fsys fs.FS, name string) (*Table, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(ErrDataUnavailable, "open %s: %v", name, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a header line followed by one observation per line.
// Empty, "NA" and "NaN" cells are treated as missing values; any other
// measurement must be a finite positive number.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)
	reader.TrimLeadingSpace = true

	head, err := reader.Read()
	if err != nil {
		return nil, readError(err, "read header")
	}
	for i, name := range header {
		if strings.TrimSpace(head[i]) != name {
			return nil, errors.Wrapf(ErrMalformedRow, "header column %d is %q, want %q", i, head[i], name)
		}
	}

	var rows []Observation
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readError(err, fmt.Sprintf("line %d", line))
		}
		obs, err := parseRecord(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		rows = append(rows, obs)
	}
	return &Table{rows: rows}, nil
}

// readError classifies a csv read failure: a wrong field count is a
// malformed row, anything else means the source could not be read.
func readError(err error, where string) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) && perr.Err == csv.ErrFieldCount {
		return errors.Wrapf(ErrMalformedRow, "%s: %v", where, err)
	}
	return errors.Wrapf(ErrDataUnavailable, "%s: %v", where, err)
}

func parseRecord(rec []string) (Observation, error) {
	var vals [4]float64
	for i := range vals {
		v, err := parseMeasurement(rec[i])
		if err != nil {
			return Observation{}, err
		}
		vals[i] = v
	}
	species, err := ParseSpecies(rec[4])
	if err != nil {
		return Observation{}, err
	}
	return Observation{
		SepalLength: vals[SepalLength],
		SepalWidth:  vals[SepalWidth],
		PetalLength: vals[PetalLength],
		PetalWidth:  vals[PetalWidth],
		Species:     species,
	}, nil
}

func parseMeasurement(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if isMissing(s) {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedRow, "parse %q", s)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) || v <= 0 {
		return 0, errors.Wrapf(ErrMalformedRow, "measurement %q is not a positive length", s)
	}
	return v, nil
}

func isMissing(s string) bool {
	return s == "" || s == "NA" || s == "NaN"
}
