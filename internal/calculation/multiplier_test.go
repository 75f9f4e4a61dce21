package calculation

import (
	"testing"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestChristianMultiplier(t *testing.T) {
	rel := allChristian()
	rel.ByAge[0].ChristianPercent = 60
	rel.ByAge[0].ChristianPercentMale = floatPtr(50)
	rel.ByAge[0].ChristianPercentFemale = floatPtr(70)

	tests := []struct {
		name         string
		bracket      domain.AgeBracket
		sex          domain.Sex
		denomination domain.Denomination
		religiosity  domain.ReligiosityLevel
		want         float64
	}{
		{"male base", domain.Bracket18to24, domain.Male, domain.DenominationAll, domain.LevelAll, 0.5},
		{"female base", domain.Bracket18to24, domain.Female, domain.DenominationAll, domain.LevelAll, 0.7},
		{"neutral fallback", domain.Bracket25to34, domain.Male, domain.DenominationAll, domain.LevelAll, 1.0},
		{"evangelical men skewed down", domain.Bracket18to24, domain.Male, domain.DenominationEvangelical, domain.LevelAll, 0.5 * 0.25 * (85.0 / 185.0) / 0.5},
		{"evangelical women skewed up", domain.Bracket18to24, domain.Female, domain.DenominationEvangelical, domain.LevelAll, 0.7 * 0.25 * (100.0 / 185.0) / 0.5},
		{"even ratio leaves share unchanged", domain.Bracket25to34, domain.Male, domain.DenominationCatholic, domain.LevelAll, 0.4},
		{"denomination without ratio", domain.Bracket25to34, domain.Female, domain.DenominationOther, domain.LevelAll, 0.1},
		{"unknown denomination skipped", domain.Bracket25to34, domain.Male, domain.DenominationOrthodox, domain.LevelAll, 1.0},
		{"devout tier", domain.Bracket18to24, domain.Female, domain.DenominationAll, domain.LevelDevout, 0.14},
		{"practicing tier", domain.Bracket25to34, domain.Male, domain.DenominationAll, domain.LevelPracticing, 0.3},
		{"nominal tier", domain.Bracket25to34, domain.Male, domain.DenominationAll, domain.LevelNominal, 0.5},
		{"all stages", domain.Bracket25to34, domain.Male, domain.DenominationOther, domain.LevelDevout, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChristianMultiplier(tt.bracket, tt.sex, tt.denomination, tt.religiosity, rel)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestChristianMultiplier_MissingBracket(t *testing.T) {
	rel := allChristian()
	rel.ByAge = rel.ByAge[:1]

	assert.Equal(t, 0.0, ChristianMultiplier(domain.Bracket75Plus, domain.Female, domain.DenominationEvangelical, domain.LevelDevout, rel))
	assert.Equal(t, 0.0, ChristianMultiplier(domain.Bracket18to24, domain.Female, domain.DenominationAll, domain.LevelAll, nil))
}
