package data

// Schema describes the structure of the observation table.
type Schema struct {
	FeatureNames []string
	Types        []string // "float64" or "category"
}

// Columns is the number of columns including the label.
func (s Schema) Columns() int { return len(s.FeatureNames) }

// IrisSchema returns the column layout every Table shares: the four
// measurements followed by the species label.
func IrisSchema() Schema {
	s := Schema{}
	for _, f := range AllFields {
		s.FeatureNames = append(s.FeatureNames, f.String())
		s.Types = append(s.Types, "float64")
	}
	s.FeatureNames = append(s.FeatureNames, "species")
	s.Types = append(s.Types, "category")
	return s
}
