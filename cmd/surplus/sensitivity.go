package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/biblemarriages/surplus/internal/calculation"
	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/biblemarriages/surplus/internal/output"
)

func sensitivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensitivity <config-file>",
		Short: "Sweep one or more parameters and report how the surplus responds",
		Long: `Perform sensitivity analysis to show how the surplus responds to a parameter.

Parameters: age_overlap, two_wives, three_wives, four_plus_wives.

Examples:
  # Every built-in parameter over its default range
  surplus sensitivity scenarios.yaml

  # One parameter over a custom range
  surplus sensitivity scenarios.yaml --parameter two_wives --range 0-40 --steps 5

  # Several parameters, range embedded per parameter
  surplus sensitivity scenarios.yaml --parameter age_overlap:0-20:3 --parameter four_plus_wives:0-10:6`,
		Args: cobra.ExactArgs(1),
		RunE: runSensitivity,
	}

	cmd.Flags().StringSlice("parameter", nil, "Parameter to analyze (name or name:min-max:steps)")
	cmd.Flags().String("range", "", "Range for a single --parameter (format: min-max)")
	cmd.Flags().Int("steps", 0, "Number of steps for a single --parameter")
	cmd.Flags().String("scenario", "", "Base scenario name (default: first scenario)")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json)")
	return cmd
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args[0])
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("scenario")
	scenario, err := selectScenario(cfg, name)
	if err != nil {
		return err
	}

	specs, _ := cmd.Flags().GetStringSlice("parameter")
	rangeFlag, _ := cmd.Flags().GetString("range")
	steps, _ := cmd.Flags().GetInt("steps")

	parameters, err := resolveParameters(specs, rangeFlag, steps)
	if err != nil {
		return err
	}

	for i := range parameters {
		parameters[i].BaseValue = baseValue(scenario, parameters[i].Name)
	}

	engine, err := buildEngine(cmd, referencePaths(cmd, cfg))
	if err != nil {
		return err
	}

	analyses, err := calculation.NewSensitivityAnalyzer(engine).AnalyzeMultipleParameters(cmd.Context(), scenario, parameters)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	formatter := output.NewSensitivityFormatter(strings.ToLower(format))
	out := cmd.OutOrStdout()
	for i, analysis := range analyses {
		s, err := formatter.FormatSensitivityAnalysis(analysis)
		if err != nil {
			return fmt.Errorf("failed to format %s: %w", analysis.Parameter.Name, err)
		}
		if i > 0 && formatter.Name() == "console" {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, s)
	}
	return nil
}

// resolveParameters turns the --parameter specs into sweep parameters. A
// bare name takes its built-in range, overridden by --range and --steps when
// exactly one parameter is named.
func resolveParameters(specs []string, rangeFlag string, steps int) ([]domain.SensitivityParameter, error) {
	if len(specs) == 0 {
		if rangeFlag != "" || steps != 0 {
			return nil, fmt.Errorf("--range and --steps require a --parameter")
		}
		return domain.GetCommonParameters(), nil
	}
	if len(specs) > 1 && (rangeFlag != "" || steps != 0) {
		return nil, fmt.Errorf("--range and --steps apply to a single --parameter; use name:min-max:steps instead")
	}

	out := make([]domain.SensitivityParameter, 0, len(specs))
	for _, spec := range specs {
		p, err := parseParameterSpec(spec)
		if err != nil {
			return nil, err
		}
		if rangeFlag != "" {
			if p.MinValue, p.MaxValue, err = parseRange(rangeFlag); err != nil {
				return nil, err
			}
		}
		if steps != 0 {
			p.Steps = steps
		}
		out = append(out, p)
	}
	return out, nil
}

// baseValue is the scenario's own setting for a sweep parameter.
func baseValue(scenario *domain.Scenario, name string) decimal.Decimal {
	if name == domain.AgeOverlapParam.Name {
		return decimal.NewFromInt(int64(scenario.Filters.AgeOverlap))
	}
	field, err := domain.ParseShareField(name)
	if err != nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(scenario.Distribution().Share(field))
}

// parseParameterSpec parses "name" or "name:min-max:steps".
func parseParameterSpec(spec string) (domain.SensitivityParameter, error) {
	parts := strings.Split(strings.TrimSpace(spec), ":")
	p, ok := domain.LookupParameter(parts[0])
	if !ok {
		return domain.SensitivityParameter{}, fmt.Errorf("unknown sensitivity parameter %q", parts[0])
	}

	switch len(parts) {
	case 1:
		return p, nil
	case 3:
		lo, hi, err := parseRange(parts[1])
		if err != nil {
			return domain.SensitivityParameter{}, err
		}
		var n int
		if _, err := fmt.Sscanf(parts[2], "%d", &n); err != nil || n < 1 {
			return domain.SensitivityParameter{}, fmt.Errorf("invalid steps %q in %q", parts[2], spec)
		}
		p.MinValue, p.MaxValue, p.Steps = lo, hi, n
		return p, nil
	}
	return domain.SensitivityParameter{}, fmt.Errorf("invalid parameter %q (format: name or name:min-max:steps)", spec)
}

// parseRange parses "min-max".
func parseRange(s string) (decimal.Decimal, decimal.Decimal, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid range %q (format: min-max)", s)
	}
	minValue, err := decimal.NewFromString(strings.TrimSpace(lo))
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid range minimum %q: %w", lo, err)
	}
	maxValue, err := decimal.NewFromString(strings.TrimSpace(hi))
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid range maximum %q: %w", hi, err)
	}
	if maxValue.LessThan(minValue) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid range %q: maximum is below minimum", s)
	}
	return minValue, maxValue, nil
}
