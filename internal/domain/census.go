package domain

// MaritalStatusBySex holds one sex's marital-status counts for a bracket.
// Counts are in thousands, as published in the census tables.
type MaritalStatusBySex struct {
	Total        float64 `yaml:"total" json:"total"`
	NeverMarried float64 `yaml:"never_married" json:"neverMarried"`
	Married      float64 `yaml:"married" json:"married"`
	Divorced     float64 `yaml:"divorced" json:"divorced"`
	Widowed      float64 `yaml:"widowed" json:"widowed"`
	Separated    float64 `yaml:"separated" json:"separated"`
}

// AgeBracketData is one row of the marital-status table.
type AgeBracketData struct {
	Range  AgeBracket         `yaml:"range" json:"range"`
	Male   MaritalStatusBySex `yaml:"male" json:"male"`
	Female MaritalStatusBySex `yaml:"female" json:"female"`
}

// ForSex returns the column for the given sex.
func (d AgeBracketData) ForSex(sex Sex) MaritalStatusBySex {
	if sex == Male {
		return d.Male
	}
	return d.Female
}

// CensusData is the marital-status reference table.
type CensusData struct {
	Year        int              `yaml:"year" json:"year"`
	Source      string           `yaml:"source" json:"source"`
	SourceURL   string           `yaml:"source_url" json:"sourceUrl"`
	LastUpdated string           `yaml:"last_updated" json:"lastUpdated"`
	AgeBrackets []AgeBracketData `yaml:"age_brackets" json:"ageBrackets"`
}

// Bracket returns the first row whose range matches b.
func (c *CensusData) Bracket(b AgeBracket) (AgeBracketData, bool) {
	if c == nil {
		return AgeBracketData{}, false
	}
	for _, row := range c.AgeBrackets {
		if row.Range == b {
			return row, true
		}
	}
	return AgeBracketData{}, false
}
