package domain

import (
	"fmt"
	"strings"
)

// AgeBracket identifies one of the fixed census age ranges.
type AgeBracket string

const (
	Bracket18to24 AgeBracket = "18-24"
	Bracket25to34 AgeBracket = "25-34"
	Bracket35to44 AgeBracket = "35-44"
	Bracket45to54 AgeBracket = "45-54"
	Bracket55to64 AgeBracket = "55-64"
	Bracket65to74 AgeBracket = "65-74"
	Bracket75Plus AgeBracket = "75+"
)

// ageBrackets is ordered youngest to oldest. Adjacency for age matching is
// defined by this order, so it must never be reordered at runtime.
var ageBrackets = [...]AgeBracket{
	Bracket18to24,
	Bracket25to34,
	Bracket35to44,
	Bracket45to54,
	Bracket55to64,
	Bracket65to74,
	Bracket75Plus,
}

var bracketIndex = func() map[AgeBracket]int {
	idx := make(map[AgeBracket]int, len(ageBrackets))
	for i, b := range ageBrackets {
		idx[b] = i
	}
	return idx
}()

// AllAgeBrackets returns a fresh copy of the ordered bracket list.
func AllAgeBrackets() []AgeBracket {
	out := make([]AgeBracket, len(ageBrackets))
	copy(out, ageBrackets[:])
	return out
}

// NumAgeBrackets is the number of recognised brackets.
func NumAgeBrackets() int { return len(ageBrackets) }

// BracketAt returns the bracket at position i in the ordered list.
func BracketAt(i int) (AgeBracket, bool) {
	if i < 0 || i >= len(ageBrackets) {
		return "", false
	}
	return ageBrackets[i], true
}

// Index returns the bracket's position in the ordered list, or -1 when the
// bracket is not recognised.
func (b AgeBracket) Index() int {
	if i, ok := bracketIndex[b]; ok {
		return i
	}
	return -1
}

// Valid reports whether b is one of the recognised brackets.
func (b AgeBracket) Valid() bool { return b.Index() >= 0 }

func (b AgeBracket) String() string { return string(b) }

// ParseAgeBracket accepts the canonical label ("25-34", "75+") with
// surrounding whitespace tolerated.
func ParseAgeBracket(s string) (AgeBracket, error) {
	b := AgeBracket(strings.TrimSpace(s))
	if !b.Valid() {
		return "", fmt.Errorf("unknown age bracket %q", s)
	}
	return b, nil
}

// ParseAgeBrackets parses a comma-separated bracket list. The keyword "all"
// selects every bracket; an empty string selects none.
func ParseAgeBrackets(s string) ([]AgeBracket, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []AgeBracket{}, nil
	}
	if strings.EqualFold(s, "all") {
		return AllAgeBrackets(), nil
	}
	parts := strings.Split(s, ",")
	out := make([]AgeBracket, 0, len(parts))
	for _, p := range parts {
		b, err := ParseAgeBracket(p)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// Sex selects the male or female column of a reference table.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)
