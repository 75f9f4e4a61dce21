package calculation

import "github.com/biblemarriages/surplus/internal/domain"

func floatPtr(v float64) *float64 { return &v }

// uniformCensus builds a seven-bracket table where each bracket holds only
// never-married people, in thousands.
func uniformCensus(men, women [7]float64) *domain.CensusData {
	census := &domain.CensusData{Year: 2023, Source: "test"}
	for i, b := range domain.AllAgeBrackets() {
		census.AgeBrackets = append(census.AgeBrackets, domain.AgeBracketData{
			Range:  b,
			Male:   domain.MaritalStatusBySex{Total: men[i], NeverMarried: men[i]},
			Female: domain.MaritalStatusBySex{Total: women[i], NeverMarried: women[i]},
		})
	}
	return census
}

// allChristian makes every bracket 100% Christian with a 20/30/50 tier split.
func allChristian() *domain.ReligiousData {
	rel := &domain.ReligiousData{Year: "2023", Source: "test", OverallChristianPercent: 100}
	for _, b := range domain.AllAgeBrackets() {
		rel.ByAge = append(rel.ByAge, domain.AgeReligiosity{
			Range:             b,
			ChristianPercent:  100,
			DevoutPercent:     20,
			PracticingPercent: 30,
			NominalPercent:    50,
		})
	}
	rel.ByDenomination = []domain.DenominationData{
		{
			ID:                  domain.DenominationEvangelical,
			Name:                "Evangelical Protestant",
			PercentOfChristians: 25,
			GenderRatio:         &domain.DenominationGenderRatio{MenPer100Women: 85},
		},
		{
			ID:                  domain.DenominationCatholic,
			Name:                "Catholic",
			PercentOfChristians: 40,
			GenderRatio:         &domain.DenominationGenderRatio{MenPer100Women: 100},
		},
		{
			ID:                  domain.DenominationOther,
			Name:                "Other Christian",
			PercentOfChristians: 10,
		},
	}
	return rel
}

var steppedMen = [7]float64{100, 200, 300, 400, 500, 600, 700}
var flatWomen = [7]float64{1000, 1000, 1000, 1000, 1000, 1000, 1000}

func filtersFor(brackets ...domain.AgeBracket) domain.CalculatorFilters {
	f := domain.DefaultFilters()
	f.AgeBrackets = brackets
	return f
}

// TestLogger records formatted messages.
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...any) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...any) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...any) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...any) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}
