package calculation

import "github.com/biblemarriages/surplus/internal/domain"

// censusUnit converts the census table's thousands into individuals.
const censusUnit = 1000

// UnmarriedCount is an unmarried head count for one bracket and sex, in
// individuals. Widowed and Divorced report zero when their toggle is off.
type UnmarriedCount struct {
	Total    float64
	Widowed  float64
	Divorced float64
}

// GetUnmarriedCount derives the unmarried population of a bracket and sex.
// Never-married and separated are always counted; divorced and widowed are
// added only when their toggles are on. A bracket missing from the table
// yields zeros.
func GetUnmarriedCount(bracket domain.AgeBracket, sex domain.Sex, includeWidows, includeDivorced bool, census *domain.CensusData) UnmarriedCount {
	row, ok := census.Bracket(bracket)
	if !ok {
		return UnmarriedCount{}
	}
	data := row.ForSex(sex)

	total := (data.NeverMarried + data.Separated) * censusUnit
	widowed := data.Widowed * censusUnit
	divorced := data.Divorced * censusUnit

	out := UnmarriedCount{}
	if includeDivorced {
		total += divorced
		out.Divorced = divorced
	}
	if includeWidows {
		total += widowed
		out.Widowed = widowed
	}
	out.Total = total
	return out
}
