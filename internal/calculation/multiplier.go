package calculation

import "github.com/biblemarriages/surplus/internal/domain"

// ChristianMultiplier returns the share of a bracket/sex population that
// matches the religious filters, built as a product of stages:
//
//	base        sex-specific Christian % (falling back to the neutral %) / 100
//	denomination percent of Christians / 100, skewed by the gender ratio
//	religiosity tier % / 100
//
// "all" skips its stage. A bracket missing from the table short-circuits
// to 0; an unknown denomination leaves the multiplier unchanged.
func ChristianMultiplier(bracket domain.AgeBracket, sex domain.Sex, denomination domain.Denomination, religiosity domain.ReligiosityLevel, religious *domain.ReligiousData) float64 {
	row, ok := religious.AgeRow(bracket)
	if !ok {
		return 0
	}

	multiplier := row.ChristianPercentFor(sex) / 100

	if denomination != domain.DenominationAll {
		if d, found := religious.DenominationByID(denomination); found {
			multiplier *= d.PercentOfChristians / 100
			if d.GenderRatio != nil && d.GenderRatio.MenPer100Women != 0 {
				multiplier *= genderSkew(d.GenderRatio.MenPer100Women, sex)
			}
		}
	}

	if religiosity != domain.LevelAll {
		multiplier *= row.TierPercent(religiosity) / 100
	}

	return multiplier
}

// genderSkew renormalizes a men-per-100-women ratio around a 50/50 split,
// so r = 100 yields 1 for both sexes.
func genderSkew(menPer100Women float64, sex domain.Sex) float64 {
	r := menPer100Women
	if sex == domain.Male {
		return (r / (r + 100)) / 0.5
	}
	return (100 / (r + 100)) / 0.5
}
