package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biblemarriages/surplus/internal/calculation"
	"github.com/biblemarriages/surplus/internal/config"
	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/biblemarriages/surplus/internal/output"
	"github.com/biblemarriages/surplus/internal/transform"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "surplus %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "surplus",
		Short: "Christian marriage surplus calculator",
		Long: `Estimates how many unmarried Christian women in the United States have no
available unmarried Christian man, by age bracket, under monogamy and under
hypothetical polygyny distributions.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().Bool("debug", false, "Log per-bracket intermediate values")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("census", "", "Census marital-status table (.json or .yaml); embedded default when empty")
	root.PersistentFlags().String("religious", "", "Religious demographics table (.json or .yaml); embedded default when empty")

	root.AddCommand(
		calculateCmd(),
		validateCmd(),
		compareCmd(),
		breakEvenCmd(),
		sensitivityCmd(),
		templatesCmd(),
		serveCmd(),
		versionCmd(),
	)
	return root
}

// referencePaths merges the --census/--religious flags over the paths named
// in a configuration file. Flags win.
func referencePaths(cmd *cobra.Command, cfg *domain.Configuration) domain.ReferenceDataPaths {
	var paths domain.ReferenceDataPaths
	if cfg != nil {
		paths = cfg.ReferenceData
	}
	if v, _ := cmd.Flags().GetString("census"); v != "" {
		paths.Census = v
	}
	if v, _ := cmd.Flags().GetString("religious"); v != "" {
		paths.Religious = v
	}
	return paths
}

// buildEngine loads the reference tables and wires the logger.
func buildEngine(cmd *cobra.Command, paths domain.ReferenceDataPaths) (*calculation.CalculationEngine, error) {
	census, religious, err := config.NewInputParser().LoadReferenceData(paths)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}

	engine := calculation.NewCalculationEngine(census, religious)
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode {
		level, _ := cmd.Flags().GetString("log-level")
		if !cmd.Flags().Changed("log-level") {
			level = "debug"
		}
		logger, err := newLogger(cmd.ErrOrStderr(), level)
		if err != nil {
			return nil, err
		}
		engine.SetLogger(zerologAdapter{log: logger})
		engine.Debug = true
	}
	return engine, nil
}

// loadConfig reads and validates a run configuration.
func loadConfig(path string) (*domain.Configuration, error) {
	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// selectScenario returns the named scenario, or the first one when name is
// empty.
func selectScenario(cfg *domain.Configuration, name string) (*domain.Scenario, error) {
	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("configuration has no scenarios")
	}
	if name == "" {
		return &cfg.Scenarios[0], nil
	}
	s, ok := cfg.FindScenario(name)
	if !ok {
		return nil, fmt.Errorf("scenario %q not found in configuration", name)
	}
	return s, nil
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [config-file]",
		Short: "Calculate the surplus for configured scenarios or ad-hoc filters",
		Long: `Calculate the surplus of unmarried Christian women.

With a configuration file every scenario is calculated (or only --scenario).
Without one, the filters and polygyny shares come from flags.

Examples:
  surplus calculate
  surplus calculate --brackets 18-24,25-34 --religiosity devout --overlap 10
  surplus calculate --two 20 --format json
  surplus calculate scenarios.yaml --scenario Base --format html --save`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCalculate,
	}

	cmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	cmd.Flags().String("scenario", "", "Only calculate this scenario from the configuration file")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	cmd.Flags().String("brackets", "", "Comma-separated age brackets, \"all\", or empty for none (default all)")
	cmd.Flags().String("denomination", string(domain.DenominationAll), "Denomination filter")
	cmd.Flags().String("religiosity", string(domain.LevelAll), "Religiosity filter (all, nominal, practicing, devout)")
	cmd.Flags().Bool("no-widows", false, "Exclude widowed people")
	cmd.Flags().Bool("no-divorced", false, "Exclude divorced people")
	cmd.Flags().Int("overlap", 0, "Years older men may be than the women they pair with (0, 10, 20, ...)")
	cmd.Flags().Float64("two", 0, "Percent of men with two wives")
	cmd.Flags().Float64("three", 0, "Percent of men with three wives")
	cmd.Flags().Float64("four", 0, "Percent of men with four or more wives")
	return cmd
}

func runCalculate(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unknown output format %q (valid: %s; aliases: %s)", format,
			strings.Join(output.AvailableFormatterNames(), ", "),
			strings.Join(output.AvailableFormatAliases(), ", "))
	}

	var cfg *domain.Configuration
	if len(args) == 1 {
		loaded, err := loadConfig(args[0])
		if err != nil {
			return err
		}
		cfg = loaded
		if name, _ := cmd.Flags().GetString("scenario"); name != "" {
			s, err := selectScenario(cfg, name)
			if err != nil {
				return err
			}
			cfg.Scenarios = []domain.Scenario{*s}
		}
	} else {
		scenario, err := scenarioFromFlags(cmd)
		if err != nil {
			return err
		}
		cfg = &domain.Configuration{Scenarios: []domain.Scenario{*scenario}}
	}

	engine, err := buildEngine(cmd, referencePaths(cmd, cfg))
	if err != nil {
		return err
	}

	runs, err := engine.RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	save, _ := cmd.Flags().GetBool("save")
	out := cmd.OutOrStdout()
	for i, run := range runs {
		if save {
			filename, err := output.WriteFormatted(formatter, run.Result, output.ExtensionFor(formatter.Name()))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: report written to %s\n", run.Name, filename)
			continue
		}

		data, err := formatter.Format(run.Result)
		if err != nil {
			return fmt.Errorf("failed to format scenario %s: %w", run.Name, err)
		}
		if len(runs) > 1 && strings.HasPrefix(formatter.Name(), "console") {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "=== %s ===\n", run.Name)
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// scenarioFromFlags builds an ad-hoc scenario from the calculate flags.
func scenarioFromFlags(cmd *cobra.Command) (*domain.Scenario, error) {
	filters := domain.DefaultFilters()

	if cmd.Flags().Changed("brackets") {
		v, _ := cmd.Flags().GetString("brackets")
		brackets, err := domain.ParseAgeBrackets(v)
		if err != nil {
			return nil, err
		}
		filters.AgeBrackets = brackets
	}

	denom, _ := cmd.Flags().GetString("denomination")
	d, err := domain.ParseDenomination(denom)
	if err != nil {
		return nil, err
	}
	filters.Denomination = d

	rel, _ := cmd.Flags().GetString("religiosity")
	l, err := domain.ParseReligiosityLevel(rel)
	if err != nil {
		return nil, err
	}
	filters.Religiosity = l

	noWidows, _ := cmd.Flags().GetBool("no-widows")
	noDivorced, _ := cmd.Flags().GetBool("no-divorced")
	filters.IncludeWidows = !noWidows
	filters.IncludeDivorced = !noDivorced
	filters.AgeOverlap, _ = cmd.Flags().GetInt("overlap")

	if err := config.ValidateFilters(filters); err != nil {
		return nil, err
	}

	scenario := &domain.Scenario{Name: "Ad hoc", Filters: filters}

	two, _ := cmd.Flags().GetFloat64("two")
	three, _ := cmd.Flags().GetFloat64("three")
	four, _ := cmd.Flags().GetFloat64("four")
	if two != 0 || three != 0 || four != 0 {
		dist := domain.DefaultMonogamy.
			WithShare(domain.ShareTwoWives, two).
			WithShare(domain.ShareThreeWives, three).
			WithShare(domain.ShareFourPlusWives, four)
		if err := config.ValidateDistribution(dist); err != nil {
			return nil, err
		}
		scenario.Polygyny = &dist
	}
	return scenario, nil
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file and the reference tables it names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args[0])
			if err != nil {
				return err
			}
			if _, _, err := config.NewInputParser().LoadReferenceData(referencePaths(cmd, cfg)); err != nil {
				return fmt.Errorf("reference data: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration is valid: %d scenario(s)\n", len(cfg.Scenarios))
			for _, s := range cfg.Scenarios {
				fmt.Fprintf(out, "  - %s: %s\n", s.Name, s.Distribution().Description())
			}
			return nil
		},
	}
}

func templatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the built-in comparison templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Available templates:")
			for _, t := range transform.CreateBuiltInTemplates().All() {
				fmt.Fprintf(out, "  %-20s %s\n", t.Name, t.Description)
			}
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
