package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/biblemarriages/surplus/internal/breakeven"
	"github.com/biblemarriages/surplus/internal/domain"
)

func breakEvenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "break-even <config-file>",
		Short: "Find the polygyny share that brings the surplus down to a target",
		Long: `Search for the smallest share of men with multiple wives that brings the
surplus of a scenario down to --target (default zero). Without --category
every category is searched.

Examples:
  surplus break-even scenarios.yaml
  surplus break-even scenarios.yaml --scenario Devout --category two_wives
  surplus break-even scenarios.yaml --target 1000000 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runBreakEven,
	}

	cmd.Flags().String("scenario", "", "Scenario to search (default: first scenario)")
	cmd.Flags().String("category", "", "Polygyny category (two_wives, three_wives, four_plus_wives); empty searches all")
	cmd.Flags().Int64("target", 0, "Surplus to reach, in women")
	cmd.Flags().String("tolerance", "", "Convergence tolerance in percentage points (default 0.01)")
	cmd.Flags().Int("max-iterations", 0, "Maximum solver evaluations (default 50)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	return cmd
}

func runBreakEven(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args[0])
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("scenario")
	scenario, err := selectScenario(cfg, name)
	if err != nil {
		return err
	}

	engine, err := buildEngine(cmd, referencePaths(cmd, cfg))
	if err != nil {
		return err
	}

	opts := breakeven.DefaultSolverOptions()
	if tol, _ := cmd.Flags().GetString("tolerance"); tol != "" {
		d, err := decimal.NewFromString(tol)
		if err != nil {
			return fmt.Errorf("invalid tolerance %q: %w", tol, err)
		}
		opts.Tolerance = d
	}
	if n, _ := cmd.Flags().GetInt("max-iterations"); n > 0 {
		opts.MaxIterations = n
	}
	solver := breakeven.NewSolver(engine, opts)

	target, _ := cmd.Flags().GetInt64("target")
	categoryFlag, _ := cmd.Flags().GetString("category")
	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()

	if categoryFlag == "" {
		result, err := solver.SolveAllCategories(cmd.Context(), scenario, target)
		if err != nil {
			return err
		}
		return writeBreakEven(out, format,
			func() string { return (&breakeven.TableFormatter{}).FormatMultiCategory(result) },
			func() (string, error) { return (&breakeven.JSONFormatter{Pretty: true}).FormatMultiCategory(result) },
		)
	}

	category, err := domain.ParseShareField(categoryFlag)
	if err != nil {
		return err
	}
	result, err := solver.Solve(cmd.Context(), breakeven.Request{
		Scenario:      scenario,
		Category:      category,
		TargetSurplus: target,
	})
	if err != nil {
		return err
	}
	return writeBreakEven(out, format,
		func() string { return (&breakeven.TableFormatter{}).Format(result) },
		func() (string, error) { return (&breakeven.JSONFormatter{Pretty: true}).Format(result) },
	)
}

func writeBreakEven(out io.Writer, format string, table func() string, asJSON func() (string, error)) error {
	switch strings.ToLower(format) {
	case "json":
		s, err := asJSON()
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		_, err = fmt.Fprint(out, s)
		return err
	case "table", "console", "":
		_, err := fmt.Fprint(out, table())
		return err
	default:
		return fmt.Errorf("unknown output format: %s (valid: table, json)", format)
	}
}
