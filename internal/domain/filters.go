package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Denomination identifies a Christian denomination filter.
type Denomination string

const (
	DenominationAll             Denomination = "all"
	DenominationEvangelical     Denomination = "evangelical"
	DenominationCatholic        Denomination = "catholic"
	DenominationMainline        Denomination = "mainline"
	DenominationBlackProtestant Denomination = "blackProtestant"
	DenominationOrthodox        Denomination = "orthodox"
	DenominationOther           Denomination = "other"
)

// ReligiosityLevel identifies a practice-intensity tier.
type ReligiosityLevel string

const (
	LevelAll        ReligiosityLevel = "all"
	LevelNominal    ReligiosityLevel = "nominal"
	LevelPracticing ReligiosityLevel = "practicing"
	LevelDevout     ReligiosityLevel = "devout"
)

// Option pairs a filter value with its display label.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

var denominationOptions = [...]Option{
	{Value: string(DenominationAll), Label: "All Christians"},
	{Value: string(DenominationEvangelical), Label: "Evangelical Protestant"},
	{Value: string(DenominationCatholic), Label: "Catholic"},
	{Value: string(DenominationMainline), Label: "Mainline Protestant"},
	{Value: string(DenominationBlackProtestant), Label: "Historically Black Protestant"},
	{Value: string(DenominationOrthodox), Label: "Orthodox"},
	{Value: string(DenominationOther), Label: "Other Christian"},
}

var religiosityOptions = [...]Option{
	{Value: string(LevelAll), Label: "All Christians"},
	{Value: string(LevelNominal), Label: "Nominal"},
	{Value: string(LevelPracticing), Label: "Practicing"},
	{Value: string(LevelDevout), Label: "Devout"},
}

// Denominations returns the denomination options in display order.
func Denominations() []Option {
	out := make([]Option, len(denominationOptions))
	copy(out, denominationOptions[:])
	return out
}

// ReligiosityLevels returns the religiosity options in display order.
func ReligiosityLevels() []Option {
	out := make([]Option, len(religiosityOptions))
	copy(out, religiosityOptions[:])
	return out
}

// Valid reports whether d is a known denomination identifier.
func (d Denomination) Valid() bool {
	for _, o := range denominationOptions {
		if o.Value == string(d) {
			return true
		}
	}
	return false
}

// Label returns the display label, or the raw identifier when unknown.
func (d Denomination) Label() string {
	for _, o := range denominationOptions {
		if o.Value == string(d) {
			return o.Label
		}
	}
	return string(d)
}

// Valid reports whether l is a known religiosity tier.
func (l ReligiosityLevel) Valid() bool {
	for _, o := range religiosityOptions {
		if o.Value == string(l) {
			return true
		}
	}
	return false
}

// Label returns the display label, or the raw identifier when unknown.
func (l ReligiosityLevel) Label() string {
	for _, o := range religiosityOptions {
		if o.Value == string(l) {
			return o.Label
		}
	}
	return string(l)
}

// ParseDenomination matches an identifier case-insensitively.
func ParseDenomination(s string) (Denomination, error) {
	s = strings.TrimSpace(s)
	for _, o := range denominationOptions {
		if strings.EqualFold(o.Value, s) {
			return Denomination(o.Value), nil
		}
	}
	return "", fmt.Errorf("unknown denomination %q", s)
}

// ParseReligiosityLevel matches a tier case-insensitively.
func ParseReligiosityLevel(s string) (ReligiosityLevel, error) {
	s = strings.TrimSpace(s)
	for _, o := range religiosityOptions {
		if strings.EqualFold(o.Value, s) {
			return ReligiosityLevel(o.Value), nil
		}
	}
	return "", fmt.Errorf("unknown religiosity level %q", s)
}

// CalculatorFilters is the per-call filter configuration. The engine only
// reads it.
type CalculatorFilters struct {
	AgeBrackets     []AgeBracket     `yaml:"age_brackets" json:"ageBrackets"`
	Denomination    Denomination     `yaml:"denomination" json:"denomination"`
	Religiosity     ReligiosityLevel `yaml:"religiosity" json:"religiosity"`
	IncludeWidows   bool             `yaml:"include_widows" json:"includeWidows"`
	IncludeDivorced bool             `yaml:"include_divorced" json:"includeDivorced"`
	AgeOverlap      int              `yaml:"age_overlap" json:"ageOverlap"` // years, used in multiples of 10
}

// DefaultFilters selects every bracket with no religious narrowing, both
// inclusion toggles on, and no age overlap.
func DefaultFilters() CalculatorFilters {
	return CalculatorFilters{
		AgeBrackets:     AllAgeBrackets(),
		Denomination:    DenominationAll,
		Religiosity:     LevelAll,
		IncludeWidows:   true,
		IncludeDivorced: true,
		AgeOverlap:      0,
	}
}

// UnmarshalYAML fills omitted keys from DefaultFilters. An explicit empty
// age_brackets list still selects no brackets.
func (f *CalculatorFilters) UnmarshalYAML(value *yaml.Node) error {
	type plain CalculatorFilters
	p := plain(DefaultFilters())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*f = CalculatorFilters(p)
	return nil
}

// UnmarshalJSON fills omitted keys from DefaultFilters.
func (f *CalculatorFilters) UnmarshalJSON(data []byte) error {
	type plain CalculatorFilters
	p := plain(DefaultFilters())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*f = CalculatorFilters(p)
	return nil
}

// Clone returns a copy that shares no slice storage with f.
func (f CalculatorFilters) Clone() CalculatorFilters {
	out := f
	if f.AgeBrackets != nil {
		out.AgeBrackets = append([]AgeBracket(nil), f.AgeBrackets...)
	}
	return out
}

// HasBracket reports whether b is selected.
func (f CalculatorFilters) HasBracket(b AgeBracket) bool {
	for _, s := range f.AgeBrackets {
		if s == b {
			return true
		}
	}
	return false
}

// ToggleBracket returns a copy with b removed when selected, or appended
// when not.
func (f CalculatorFilters) ToggleBracket(b AgeBracket) CalculatorFilters {
	out := f.Clone()
	if f.HasBracket(b) {
		kept := out.AgeBrackets[:0]
		for _, s := range out.AgeBrackets {
			if s != b {
				kept = append(kept, s)
			}
		}
		out.AgeBrackets = kept
		return out
	}
	out.AgeBrackets = append(out.AgeBrackets, b)
	return out
}
