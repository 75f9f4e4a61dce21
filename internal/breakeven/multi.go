package breakeven

import (
	"context"
	"fmt"

	"github.com/biblemarriages/surplus/internal/domain"
)

// SolveAllCategories runs a search for each polygyny category against the
// same scenario and target and compares the outcomes.
func (s *Solver) SolveAllCategories(
	ctx context.Context,
	scenario *domain.Scenario,
	targetSurplus int64,
) (*MultiCategoryResult, error) {
	var results []Result

	for _, category := range Categories() {
		req := Request{
			Scenario:      scenario,
			Category:      category,
			TargetSurplus: targetSurplus,
			MaxIterations: s.Options.MaxIterations,
			Tolerance:     s.Options.Tolerance,
		}

		result, err := s.Solve(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to solve for %s: %w", category, err)
		}
		results = append(results, *result)
	}

	mcResult := &MultiCategoryResult{
		TargetSurplus: targetSurplus,
		Results:       results,
	}

	for i := range results {
		if !results[i].Success {
			continue
		}
		if mcResult.LowestShare == nil || results[i].Share.LessThan(mcResult.LowestShare.Share) {
			mcResult.LowestShare = &results[i]
		}
		if mcResult.LowestCapacity == nil || results[i].WifeCapacity.LessThan(mcResult.LowestCapacity.WifeCapacity) {
			mcResult.LowestCapacity = &results[i]
		}
	}

	mcResult.Recommendations = generateMultiCategoryRecommendations(mcResult)

	return mcResult, nil
}

func generateMultiCategoryRecommendations(result *MultiCategoryResult) []string {
	var recommendations []string

	if result.LowestShare == nil {
		return append(recommendations,
			fmt.Sprintf("No single polygyny category brings the surplus to %d", result.TargetSurplus))
	}

	recommendations = append(recommendations,
		fmt.Sprintf("Fewest men involved: %s%% with %s",
			result.LowestShare.Share.StringFixed(2), categoryLabel(result.LowestShare.Request.Category)))

	if result.LowestCapacity != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("Smallest change in wife capacity: %sx with %s",
				result.LowestCapacity.WifeCapacity.StringFixed(2), categoryLabel(result.LowestCapacity.Request.Category)))
	}

	for _, r := range result.Results {
		if !r.Success {
			recommendations = append(recommendations,
				fmt.Sprintf("%s cannot reach the target on its own", categoryLabel(r.Request.Category)))
		}
	}

	return recommendations
}

func categoryLabel(c domain.ShareField) string {
	switch c {
	case domain.ShareTwoWives:
		return "2 wives"
	case domain.ShareThreeWives:
		return "3 wives"
	case domain.ShareFourPlusWives:
		return "4+ wives"
	}
	return string(c)
}
