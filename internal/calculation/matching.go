package calculation

import "github.com/biblemarriages/surplus/internal/domain"

// OlderMenShare is the fraction of an older bracket's men counted as
// available to a younger bracket, and the fraction of an anchor bracket's
// own men withdrawn when they look younger. It does not decay with
// bracket distance.
const OlderMenShare = 0.5

// BracketsToInclude converts overlap years to a number of adjacent
// brackets: one per full ten years.
func BracketsToInclude(ageOverlap int) int {
	if ageOverlap <= 0 {
		return 0
	}
	return ageOverlap / 10
}

// MatchingBrackets returns the anchor followed by up to k older brackets
// whose men count toward the anchor's available pool, clipped at the
// oldest bracket. An unknown anchor yields just itself.
func MatchingBrackets(anchor domain.AgeBracket, ageOverlap int) []domain.AgeBracket {
	out := []domain.AgeBracket{anchor}
	idx := anchor.Index()
	if idx < 0 {
		return out
	}
	k := BracketsToInclude(ageOverlap)
	for i := 1; i <= k; i++ {
		older, ok := domain.BracketAt(idx + i)
		if !ok {
			break
		}
		out = append(out, older)
	}
	return out
}

// depletesLocalMen reports whether the anchor's own men pool is reduced:
// only when some overlap is active and the anchor has a younger neighbour.
func depletesLocalMen(anchor domain.AgeBracket, ageOverlap int) bool {
	return BracketsToInclude(ageOverlap) > 0 && anchor.Index() > 0
}
