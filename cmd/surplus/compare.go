package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biblemarriages/surplus/internal/compare"
	"github.com/biblemarriages/surplus/internal/transform"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <config-file>",
		Short: "Compare a base scenario against built-in what-if templates",
		Long: `Compare a base scenario against alternative templates.

Examples:
  surplus compare scenarios.yaml --base Base --with polygyny_10,polygyny_20
  surplus compare scenarios.yaml --with devout_only,overlap_10 --format csv
  surplus compare scenarios.yaml --base Base --scenarios Doubled,Devout
  surplus compare --list-templates`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompare,
	}

	cmd.Flags().String("base", "", "Base scenario name (default: first scenario)")
	cmd.Flags().String("with", "", "Comma-separated list of templates to compare")
	cmd.Flags().String("scenarios", "", "Comma-separated scenarios from the configuration file to compare against the base")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	cmd.Flags().Bool("list-templates", false, "List all available scenario templates")
	cmd.MarkFlagsMutuallyExclusive("with", "scenarios")
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if list, _ := cmd.Flags().GetBool("list-templates"); list {
		for _, t := range transform.CreateBuiltInTemplates().All() {
			fmt.Fprintf(out, "  %-20s %s\n", t.Name, t.Description)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("config file required for comparison (use --list-templates to see available templates)")
	}

	withFlag, _ := cmd.Flags().GetString("with")
	scenariosFlag, _ := cmd.Flags().GetString("scenarios")
	templateNames := splitList(withFlag)
	scenarioNames := splitList(scenariosFlag)
	if len(templateNames) == 0 && len(scenarioNames) == 0 {
		return fmt.Errorf("--with or --scenarios is required to specify what to compare (or use --list-templates)")
	}

	cfg, err := loadConfig(args[0])
	if err != nil {
		return err
	}

	engine, err := buildEngine(cmd, referencePaths(cmd, cfg))
	if err != nil {
		return err
	}

	baseName, _ := cmd.Flags().GetString("base")
	compareEngine := compare.NewCompareEngine(engine)

	var compSet *compare.ComparisonSet
	if len(scenarioNames) > 0 {
		base, err := selectScenario(cfg, baseName)
		if err != nil {
			return err
		}
		compSet, err = compareEngine.CompareScenarios(cmd.Context(), cfg, base.Name, scenarioNames)
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}
	} else {
		compSet, err = compareEngine.Compare(cmd.Context(), cfg, compare.CompareOptions{
			BaseScenarioName: baseName,
			Templates:        templateNames,
		})
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}
	}
	compSet.ConfigPath = args[0]

	format, _ := cmd.Flags().GetString("format")
	switch strings.ToLower(format) {
	case "csv":
		s, err := (&compare.CSVFormatter{}).Format(compSet)
		if err != nil {
			return fmt.Errorf("failed to format CSV: %w", err)
		}
		fmt.Fprint(out, s)
	case "json":
		s, err := (&compare.JSONFormatter{Pretty: true}).Format(compSet)
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		fmt.Fprint(out, s)
	case "compact":
		fmt.Fprint(out, (&compare.TableFormatter{}).FormatCompact(compSet))
	case "table", "console", "":
		fmt.Fprint(out, (&compare.TableFormatter{}).Format(compSet))
	default:
		return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", format)
	}
	return nil
}
