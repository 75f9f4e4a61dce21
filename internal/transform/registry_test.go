package transform

import (
	"testing"

	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformRegistry_List(t *testing.T) {
	names := NewTransformRegistry().List()
	assert.Equal(t, []string{
		"include_divorced",
		"include_widows",
		"select_brackets",
		"set_denomination",
		"set_overlap",
		"set_polygyny",
		"set_religiosity",
	}, names)
}

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		spec string
		want ScenarioTransform
	}{
		{"set_overlap:years=20", &SetOverlap{Years: 20}},
		{"set_denomination:denomination=Catholic", &SetDenomination{Denomination: domain.DenominationCatholic}},
		{"set_religiosity:level=devout", &SetReligiosity{Level: domain.LevelDevout}},
		{"include_widows:include=false", &IncludeWidows{Include: false}},
		{"include_divorced:include=true", &IncludeDivorced{Include: true}},
		{"select_brackets:brackets=18-24|25-34", &SelectBrackets{Brackets: []domain.AgeBracket{domain.Bracket18to24, domain.Bracket25to34}}},
		{"select_brackets:brackets=all", &SelectBrackets{Brackets: domain.AllAgeBrackets()}},
		{"set_polygyny:two=20", &SetPolygyny{Distribution: domain.PolygynyDistribution{OneWife: 80, TwoWives: 20}}},
		{"set_polygyny:one=70,two=20,three=5,four_plus=5",
			&SetPolygyny{Distribution: domain.PolygynyDistribution{OneWife: 70, TwoWives: 20, ThreeWives: 5, FourPlusWives: 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := registry.ParseTransformSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransformRegistry_ParseTransformSpec_Errors(t *testing.T) {
	registry := NewTransformRegistry()

	for _, spec := range []string{
		"set_overlap",
		"set_overlap:20",
		"set_overlap:years=ten",
		"set_overlap:months=12",
		"unknown:x=1",
		"set_denomination:denomination=baptist",
		"set_religiosity:level=",
		"include_widows:include=maybe",
		"select_brackets:brackets=18-24|90+",
		"set_polygyny:",
		"set_polygyny:two=abc",
	} {
		t.Run(spec, func(t *testing.T) {
			_, err := registry.ParseTransformSpec(spec)
			assert.Error(t, err)
		})
	}
}
