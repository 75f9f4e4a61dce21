package calculation

import (
	"math"

	"github.com/biblemarriages/surplus/internal/domain"
)

// CalculateBracketResult computes one anchor bracket under monogamy.
func CalculateBracketResult(bracket domain.AgeBracket, filters domain.CalculatorFilters, census *domain.CensusData, religious *domain.ReligiousData) domain.BracketResult {
	return calculateBracketResult(bracket, filters, census, religious, NopLogger{})
}

func calculateBracketResult(bracket domain.AgeBracket, filters domain.CalculatorFilters, census *domain.CensusData, religious *domain.ReligiousData, log Logger) domain.BracketResult {
	women := GetUnmarriedCount(bracket, domain.Female, filters.IncludeWidows, filters.IncludeDivorced, census)
	womenMult := ChristianMultiplier(bracket, domain.Female, filters.Denomination, filters.Religiosity, religious)
	unmarriedWomen := round(women.Total * womenMult)
	widows := round(women.Widowed * womenMult)

	currentMen := qualifyingMen(bracket, filters, census, religious)
	available := currentMen

	matching := MatchingBrackets(bracket, filters.AgeOverlap)
	for _, older := range matching[1:] {
		inflow := round(qualifyingMenExact(older, filters, census, religious) * OlderMenShare)
		log.Debugf("bracket %s: +%d men from %s", bracket, inflow, older)
		available += inflow
	}

	if depletesLocalMen(bracket, filters.AgeOverlap) {
		depletion := round(float64(currentMen) * OlderMenShare)
		log.Debugf("bracket %s: -%d local men pursuing younger brackets", bracket, depletion)
		available -= depletion
	}

	if available < 0 {
		available = 0
	}
	surplus := surplusOf(unmarriedWomen, available)

	log.Debugf("bracket %s: women=%d (mult %.4f) men=%d available=%d surplus=%d",
		bracket, unmarriedWomen, womenMult, currentMen, available, surplus)

	return domain.BracketResult{
		AgeBracket:     bracket,
		UnmarriedMen:   currentMen,
		UnmarriedWomen: unmarriedWomen,
		Widows:         widows,
		AvailableMen:   available,
		Surplus:        surplus,
		SurplusPercent: surplusPercent(surplus, unmarriedWomen),
	}
}

// qualifyingMen is a bracket's unmarried men after the religious filters.
// Widowers are never counted.
func qualifyingMen(bracket domain.AgeBracket, filters domain.CalculatorFilters, census *domain.CensusData, religious *domain.ReligiousData) int64 {
	return round(qualifyingMenExact(bracket, filters, census, religious))
}

// qualifyingMenExact is qualifyingMen before rounding. Older-bracket inflow
// is rounded once, after the 50% share is applied.
func qualifyingMenExact(bracket domain.AgeBracket, filters domain.CalculatorFilters, census *domain.CensusData, religious *domain.ReligiousData) float64 {
	men := GetUnmarriedCount(bracket, domain.Male, false, filters.IncludeDivorced, census)
	return men.Total * ChristianMultiplier(bracket, domain.Male, filters.Denomination, filters.Religiosity, religious)
}

func surplusOf(women, availableMen int64) int64 {
	if women > availableMen {
		return women - availableMen
	}
	return 0
}

func surplusPercent(surplus, women int64) float64 {
	if women <= 0 {
		return 0
	}
	return float64(surplus) / float64(women) * 100
}

func round(v float64) int64 {
	return int64(math.Round(v))
}
