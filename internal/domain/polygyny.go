package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FourPlusMeanWives is the assumed mean wife count for the "4+" category.
const FourPlusMeanWives = 4.5

// PolygynyDistribution gives the percentage of men with each wife count.
// Callers keep the four shares summing to 100; the engine computes whatever
// it is handed.
type PolygynyDistribution struct {
	OneWife       float64 `yaml:"one_wife" json:"oneWife"`
	TwoWives      float64 `yaml:"two_wives" json:"twoWives"`
	ThreeWives    float64 `yaml:"three_wives" json:"threeWives"`
	FourPlusWives float64 `yaml:"four_plus_wives" json:"fourPlusWives"`
}

// DefaultMonogamy is the pure-monogamy baseline.
var DefaultMonogamy = PolygynyDistribution{OneWife: 100}

// WifeCapacity returns the mean number of wife slots per man.
func (d PolygynyDistribution) WifeCapacity() float64 {
	return (d.OneWife*1 +
		d.TwoWives*2 +
		d.ThreeWives*3 +
		d.FourPlusWives*FourPlusMeanWives) / 100
}

// IsPolygynous reports whether any non-monogamous share is positive.
func (d PolygynyDistribution) IsPolygynous() bool {
	return d.TwoWives > 0 || d.ThreeWives > 0 || d.FourPlusWives > 0
}

// Sum returns the total of all four shares.
func (d PolygynyDistribution) Sum() float64 {
	return d.OneWife + d.TwoWives + d.ThreeWives + d.FourPlusWives
}

// Description lists the non-zero non-monogamous components, e.g.
// "20% with 2 wives, 5% with 4+ wives".
func (d PolygynyDistribution) Description() string {
	var parts []string
	if d.TwoWives > 0 {
		parts = append(parts, formatShare(d.TwoWives)+"% with 2 wives")
	}
	if d.ThreeWives > 0 {
		parts = append(parts, formatShare(d.ThreeWives)+"% with 3 wives")
	}
	if d.FourPlusWives > 0 {
		parts = append(parts, formatShare(d.FourPlusWives)+"% with 4+ wives")
	}
	if len(parts) == 0 {
		return "Pure monogamy"
	}
	return strings.Join(parts, ", ")
}

// ScenarioName is the Alternative scenario label, e.g.
// "Polygyny (1.20x capacity)".
func (d PolygynyDistribution) ScenarioName() string {
	return fmt.Sprintf("Polygyny (%.2fx capacity)", d.WifeCapacity())
}

func formatShare(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ShareField names one of the non-monogamous shares.
type ShareField string

const (
	ShareTwoWives      ShareField = "two_wives"
	ShareThreeWives    ShareField = "three_wives"
	ShareFourPlusWives ShareField = "four_plus_wives"
)

// ParseShareField accepts snake_case or camelCase field names.
func ParseShareField(s string) (ShareField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "two_wives", "twowives", "two":
		return ShareTwoWives, nil
	case "three_wives", "threewives", "three":
		return ShareThreeWives, nil
	case "four_plus_wives", "fourpluswives", "four_plus", "fourplus":
		return ShareFourPlusWives, nil
	}
	return "", fmt.Errorf("unknown polygyny share %q", s)
}

// Share returns the value of a non-monogamous share.
func (d PolygynyDistribution) Share(field ShareField) float64 {
	switch field {
	case ShareTwoWives:
		return d.TwoWives
	case ShareThreeWives:
		return d.ThreeWives
	case ShareFourPlusWives:
		return d.FourPlusWives
	}
	return 0
}

// WithShare sets one non-monogamous share and recomputes OneWife as whatever
// remains of 100, floored at zero.
func (d PolygynyDistribution) WithShare(field ShareField, value float64) PolygynyDistribution {
	switch field {
	case ShareTwoWives:
		d.TwoWives = value
	case ShareThreeWives:
		d.ThreeWives = value
	case ShareFourPlusWives:
		d.FourPlusWives = value
	}
	multiple := d.TwoWives + d.ThreeWives + d.FourPlusWives
	d.OneWife = 100 - multiple
	if d.OneWife < 0 {
		d.OneWife = 0
	}
	return d
}

// MaxShare returns the largest value field can take while the non-monogamous
// shares still fit within 100.
func (d PolygynyDistribution) MaxShare(field ShareField) float64 {
	others := d.TwoWives + d.ThreeWives + d.FourPlusWives - d.Share(field)
	return 100 - others
}
