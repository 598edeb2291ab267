package data

import (
	"strings"

	"github.com/pkg/errors"
)

// Species is the categorical label of an observation.
// Values are ordered the way the dataset lists them.
type Species int

const (
	// NoSpecies marks a missing label.
	NoSpecies Species = iota - 1
	Setosa
	Versicolor
	Virginica
)

// AllSpecies lists the closed label set in category order.
var AllSpecies = []Species{Setosa, Versicolor, Virginica}

var speciesNames = [...]string{"setosa", "versicolor", "virginica"}

func (s Species) String() string {
	if !s.Valid() {
		return "NaN"
	}
	return speciesNames[s]
}

// Valid reports whether s is one of the three known species.
func (s Species) Valid() bool {
	return s >= Setosa && s <= Virginica
}

// ParseSpecies maps a label to its Species. Missing tokens map to NoSpecies
// without error; anything outside the closed set is ErrUnknownSpecies.
func ParseSpecies(label string) (Species, error) {
	label = strings.TrimSpace(label)
	if isMissing(label) {
		return NoSpecies, nil
	}
	for i, name := range speciesNames {
		if strings.EqualFold(label, name) {
			return Species(i), nil
		}
	}
	return NoSpecies, errors.Wrapf(ErrUnknownSpecies, "%q", label)
}
