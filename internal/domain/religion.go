package domain

// AgeReligiosity is one row of the religious-demographics table. All
// percentages are on a 0-100 scale; the practice tiers are shares of the
// Christian population of the bracket.
type AgeReligiosity struct {
	Range                  AgeBracket `yaml:"range" json:"range"`
	ChristianPercent       float64    `yaml:"christian_percent" json:"christianPercent"`
	ChristianPercentMale   *float64   `yaml:"christian_percent_male,omitempty" json:"christianPercentMale,omitempty"`
	ChristianPercentFemale *float64   `yaml:"christian_percent_female,omitempty" json:"christianPercentFemale,omitempty"`
	DevoutPercent          float64    `yaml:"devout_percent" json:"devoutPercent"`
	PracticingPercent      float64    `yaml:"practicing_percent" json:"practicingPercent"`
	NominalPercent         float64    `yaml:"nominal_percent" json:"nominalPercent"`
	AttendMonthlyPercent   *float64   `yaml:"attend_monthly_percent,omitempty" json:"attendMonthlyPercent,omitempty"`
	PrayDailyPercent       *float64   `yaml:"pray_daily_percent,omitempty" json:"prayDailyPercent,omitempty"`
}

// ChristianPercentFor returns the sex-specific Christian percentage, falling
// back to the sex-neutral figure when the specific one is absent.
func (a AgeReligiosity) ChristianPercentFor(sex Sex) float64 {
	switch sex {
	case Male:
		if a.ChristianPercentMale != nil {
			return *a.ChristianPercentMale
		}
	case Female:
		if a.ChristianPercentFemale != nil {
			return *a.ChristianPercentFemale
		}
	}
	return a.ChristianPercent
}

// TierPercent returns the practice-tier percentage for level. LevelAll and
// unknown levels report 100.
func (a AgeReligiosity) TierPercent(level ReligiosityLevel) float64 {
	switch level {
	case LevelDevout:
		return a.DevoutPercent
	case LevelPracticing:
		return a.PracticingPercent
	case LevelNominal:
		return a.NominalPercent
	default:
		return 100
	}
}

// DenominationGenderRatio skews a denomination's membership by sex.
type DenominationGenderRatio struct {
	MenPer100Women  float64  `yaml:"men_per_100_women" json:"menPer100Women"`
	Source          string   `yaml:"source" json:"source"`
	SelfIdentified  *float64 `yaml:"self_identified,omitempty" json:"selfIdentified,omitempty"`
	ActualAttendees *float64 `yaml:"actual_attendees,omitempty" json:"actualAttendees,omitempty"`
}

// DenominationData describes one denomination's share of the population.
type DenominationData struct {
	ID                  Denomination             `yaml:"id" json:"id"`
	Name                string                   `yaml:"name" json:"name"`
	PercentOfPopulation float64                  `yaml:"percent_of_population" json:"percentOfPopulation"`
	PercentOfChristians float64                  `yaml:"percent_of_christians" json:"percentOfChristians"`
	GenderRatio         *DenominationGenderRatio `yaml:"gender_ratio,omitempty" json:"genderRatio,omitempty"`
	MarriageRate        float64                  `yaml:"marriage_rate" json:"marriageRate"`
}

// ReligiousData is the religious-demographics reference table.
type ReligiousData struct {
	Year                    string             `yaml:"year" json:"year"`
	Source                  string             `yaml:"source" json:"source"`
	SourceURL               string             `yaml:"source_url" json:"sourceUrl"`
	LastUpdated             string             `yaml:"last_updated" json:"lastUpdated"`
	OverallChristianPercent float64            `yaml:"overall_christian_percent" json:"overallChristianPercent"`
	ByAge                   []AgeReligiosity   `yaml:"by_age" json:"byAge"`
	ByDenomination          []DenominationData `yaml:"by_denomination" json:"byDenomination"`
}

// AgeRow returns the first by-age row for b.
func (r *ReligiousData) AgeRow(b AgeBracket) (AgeReligiosity, bool) {
	if r == nil {
		return AgeReligiosity{}, false
	}
	for _, row := range r.ByAge {
		if row.Range == b {
			return row, true
		}
	}
	return AgeReligiosity{}, false
}

// DenominationByID returns the first denomination row with the given id.
func (r *ReligiousData) DenominationByID(id Denomination) (DenominationData, bool) {
	if r == nil {
		return DenominationData{}, false
	}
	for _, d := range r.ByDenomination {
		if d.ID == id {
			return d, true
		}
	}
	return DenominationData{}, false
}
