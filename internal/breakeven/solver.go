package breakeven

import (
	"context"
	"fmt"

	"github.com/biblemarriages/surplus/internal/calculation"
	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Solver finds break-even polygyny shares.
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Solve bisects the category share over [0,100]. Surplus is non-increasing in
// the share, so the upper bound always satisfies the target once 100 does.
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	iterations := 0
	evaluate := func(share decimal.Decimal) (*Result, error) {
		iterations++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return s.evaluate(ctx, req, share)
	}

	low, err := evaluate(decimal.Zero)
	if err != nil {
		return nil, wrapSolveError(err)
	}
	if low.SurplusReached <= req.TargetSurplus {
		low.Success = true
		low.Iterations = iterations
		low.ConvergenceInfo = "Target already met under monogamy"
		return low, nil
	}

	high, err := evaluate(hundred)
	if err != nil {
		return nil, wrapSolveError(err)
	}
	if high.SurplusReached > req.TargetSurplus {
		high.Success = false
		high.Iterations = iterations
		high.ConvergenceInfo = fmt.Sprintf("Target unreachable: %d surplus women remain with every man in %s",
			high.SurplusReached, req.Category)
		return high, nil
	}

	lo, hi := decimal.Zero, hundred
	two := decimal.NewFromInt(2)
	for iterations < req.MaxIterations && hi.Sub(lo).GreaterThan(req.Tolerance) {
		mid := lo.Add(hi).Div(two)
		r, err := evaluate(mid)
		if err != nil {
			return nil, wrapSolveError(err)
		}
		if r.SurplusReached <= req.TargetSurplus {
			hi, high = mid, r
		} else {
			lo = mid
		}
	}

	high.Success = true
	high.Iterations = iterations
	if hi.Sub(lo).GreaterThan(req.Tolerance) {
		high.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)
	} else {
		high.ConvergenceInfo = fmt.Sprintf("Converged within %s percentage points", req.Tolerance.String())
	}
	return high, nil
}

func wrapSolveError(err error) error {
	return &BreakEvenError{
		Operation: "solve",
		Message:   "failed to calculate scenario",
		Cause:     err,
	}
}

// evaluate runs the scenario with the category at share and every other man
// monogamous.
func (s *Solver) evaluate(ctx context.Context, req Request, share decimal.Decimal) (*Result, error) {
	dist := domain.DefaultMonogamy.WithShare(req.Category, share.InexactFloat64())

	scenario := req.Scenario.DeepCopy()
	scenario.Polygyny = &dist

	run, err := s.CalcEngine.RunScenario(ctx, scenario)
	if err != nil {
		return nil, err
	}

	return &Result{
		Request:         req,
		Share:           share,
		Distribution:    dist,
		WifeCapacity:    decimal.NewFromFloat(dist.WifeCapacity()).Round(4),
		MonogamySurplus: run.Result.Monogamy.TotalSurplus,
		SurplusReached:  run.Result.Effective().TotalSurplus,
		Calculation:     run.Result,
	}, nil
}
