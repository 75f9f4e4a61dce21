package refdata

import (
	"testing"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCensus(t *testing.T) {
	census, err := Census()
	require.NoError(t, err)

	assert.Equal(t, 2023, census.Year)
	assert.NotEmpty(t, census.Source)
	require.Len(t, census.AgeBrackets, domain.NumAgeBrackets())

	for i, b := range domain.AllAgeBrackets() {
		row := census.AgeBrackets[i]
		assert.Equal(t, b, row.Range, "rows follow bracket order")
		for _, sex := range []domain.Sex{domain.Male, domain.Female} {
			s := row.ForSex(sex)
			sum := s.NeverMarried + s.Married + s.Divorced + s.Widowed + s.Separated
			assert.InDelta(t, s.Total, sum, 1e-9, "%s %s", b, sex)
		}
	}

	young, ok := census.Bracket(domain.Bracket18to24)
	require.True(t, ok)
	assert.Equal(t, 14500.0, young.Male.NeverMarried)
}

func TestReligious(t *testing.T) {
	religious, err := Religious()
	require.NoError(t, err)

	require.Len(t, religious.ByAge, domain.NumAgeBrackets())
	for _, row := range religious.ByAge {
		assert.InDelta(t, 100, row.DevoutPercent+row.PracticingPercent+row.NominalPercent, 1e-9, row.Range)
		require.NotNil(t, row.ChristianPercentMale)
		require.NotNil(t, row.ChristianPercentFemale)
		assert.Less(t, *row.ChristianPercentMale, *row.ChristianPercentFemale)
	}

	var share float64
	for _, opt := range domain.Denominations() {
		if opt.Value == string(domain.DenominationAll) {
			continue
		}
		d, ok := religious.DenominationByID(domain.Denomination(opt.Value))
		require.True(t, ok, opt.Value)
		share += d.PercentOfChristians
	}
	assert.InDelta(t, 100, share, 1e-9)

	evangelical, _ := religious.DenominationByID(domain.DenominationEvangelical)
	require.NotNil(t, evangelical.GenderRatio)
	assert.Equal(t, 85.0, evangelical.GenderRatio.MenPer100Women)

	other, _ := religious.DenominationByID(domain.DenominationOther)
	assert.Nil(t, other.GenderRatio)
}

func TestLoad_ReturnsFreshCopies(t *testing.T) {
	c1, r1 := MustLoad()
	c1.AgeBrackets[0].Male.NeverMarried = 0
	r1.ByAge[0].ChristianPercent = 0

	c2, r2, err := Load()
	require.NoError(t, err)
	assert.NotZero(t, c2.AgeBrackets[0].Male.NeverMarried)
	assert.NotZero(t, r2.ByAge[0].ChristianPercent)
}
