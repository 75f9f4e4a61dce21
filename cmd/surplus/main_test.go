package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblemarriages/surplus/internal/breakeven"
	"github.com/biblemarriages/surplus/internal/compare"
	"github.com/biblemarriages/surplus/internal/domain"
)

const (
	scenariosFile = "../../test/testdata/scenarios.yaml"
	invalidFile   = "../../test/testdata/invalid.yaml"
	censusFile    = "../../test/testdata/young_census.yaml"
	religiousFile = "../../test/testdata/young_religious.yaml"
)

// execute runs a fresh command tree and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "surplus", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Available Commands")
}

func TestCommandSubcommands(t *testing.T) {
	registered := map[string]bool{}
	for _, c := range newRootCmd().Commands() {
		registered[c.Name()] = true
	}
	for _, name := range []string{
		"calculate", "validate", "compare", "break-even",
		"sensitivity", "templates", "serve", "version",
	} {
		assert.True(t, registered[name], "missing command %s", name)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "surplus dev (commit none, built unknown)")
}

func TestTemplatesCommand(t *testing.T) {
	out, err := execute(t, "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "Available templates:")
	assert.Contains(t, out, "polygyny_20")
	assert.Contains(t, out, "young_adults")
}

func TestCalculate_EmbeddedDefaults(t *testing.T) {
	out, err := execute(t, "calculate", "--format", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, out, "CHRISTIAN WOMEN WITHOUT MARRIAGE PROSPECTS")
	assert.Contains(t, out, "Under strict monogamy:")
	assert.NotContains(t, out, "Women helped")
}

func TestCalculate_AdHocFlags(t *testing.T) {
	out, err := execute(t, "calculate",
		"--census", censusFile, "--religious", religiousFile,
		"--brackets", "18-24", "--two", "20", "--format", "json")
	require.NoError(t, err)

	var result domain.CalculatorResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []domain.AgeBracket{domain.Bracket18to24}, result.Filters.AgeBrackets)
	assert.Equal(t, int64(1000000), result.Monogamy.TotalUnmarriedWomen)
	assert.Equal(t, int64(300000), result.Monogamy.TotalSurplus)
	require.NotNil(t, result.Alternative)
	assert.Equal(t, int64(160000), result.Alternative.TotalSurplus)
	require.NotNil(t, result.PolygynyDistribution)
	assert.Equal(t, 80.0, result.PolygynyDistribution.OneWife)
}

func TestCalculate_AdHocReligiousFilters(t *testing.T) {
	out, err := execute(t, "calculate",
		"--census", censusFile, "--religious", religiousFile,
		"--brackets", "18-24", "--religiosity", "devout", "--no-widows", "--format", "json")
	require.NoError(t, err)

	var result domain.CalculatorResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, int64(190000), result.Monogamy.TotalUnmarriedWomen)
	assert.Equal(t, int64(140000), result.Monogamy.TotalUnmarriedMen)
	assert.Equal(t, int64(50000), result.Monogamy.TotalSurplus)
	assert.Nil(t, result.Alternative)
}

func TestCalculate_ConfigFile(t *testing.T) {
	out, err := execute(t, "calculate", scenariosFile, "--format", "console-lite")
	require.NoError(t, err)

	assert.Contains(t, out, "=== Base ===")
	assert.Contains(t, out, "=== Doubled ===")
	assert.Contains(t, out, "=== Devout ===")
	assert.Contains(t, out, "Under strict monogamy:  300K")
	assert.Contains(t, out, "Surplus reduces to:  160K")
	assert.Contains(t, out, "Women helped:        +140K")
	assert.Contains(t, out, "Under strict monogamy:  50K")
}

func TestCalculate_SingleScenario(t *testing.T) {
	out, err := execute(t, "calculate", scenariosFile, "--scenario", "Base", "--format", "console")
	require.NoError(t, err)
	assert.NotContains(t, out, "=== ")
	assert.Contains(t, out, "CHRISTIAN MARRIAGE SURPLUS ANALYSIS")
	assert.Contains(t, out, "1,000,000")
	assert.Contains(t, out, "300,000")

	_, err = execute(t, "calculate", scenariosFile, "--scenario", "Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario "Nope" not found`)
}

func TestCalculate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown format", []string{"calculate", "--format", "pdf"}, `unknown output format "pdf"`},
		{"unknown bracket", []string{"calculate", "--brackets", "19-29"}, "unknown age bracket"},
		{"unknown denomination", []string{"calculate", "--denomination", "quaker"}, "unknown denomination"},
		{"shares over 100", []string{"calculate", "--two", "60", "--three", "50"}, "polygyny"},
		{"negative overlap", []string{"calculate", "--overlap=-10"}, "age overlap cannot be negative"},
		{"missing config", []string{"calculate", "missing.yaml"}, "failed to read file"},
		{"missing census", []string{"calculate", "--census", "missing.json"}, "failed to load reference data"},
		{"bad log level", []string{"calculate", "--debug", "--log-level", "loud"}, "invalid log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", scenariosFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid: 3 scenario(s)")
	assert.Contains(t, out, "- Base: Pure monogamy")
	assert.Contains(t, out, "- Doubled: 20% with 2 wives")

	_, err = execute(t, "validate", invalidFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")

	_, err = execute(t, "validate")
	require.Error(t, err)
}

func TestCompareCommand(t *testing.T) {
	out, err := execute(t, "compare", scenariosFile, "--base", "Base", "--with", "polygyny_20,exclude_widows", "--format", "json")
	require.NoError(t, err)

	var set compare.ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	assert.Equal(t, "Base", set.BaseScenarioName)
	assert.Equal(t, scenariosFile, set.ConfigPath)
	require.NotNil(t, set.BaseResult)
	assert.Equal(t, int64(300000), set.BaseResult.EffectiveSurplus)
	require.Len(t, set.AlternativeResults, 2)
	assert.Equal(t, int64(160000), set.AlternativeResults[0].EffectiveSurplus)
	assert.Equal(t, int64(-140000), set.AlternativeResults[0].SurplusDiffFromBase)
	assert.Equal(t, int64(250000), set.AlternativeResults[1].EffectiveSurplus)
	assert.NotEmpty(t, set.Recommendations)

	table, err := execute(t, "compare", scenariosFile, "--with", "polygyny_20")
	require.NoError(t, err)
	assert.Contains(t, table, "SURPLUS SCENARIO COMPARISON")

	csvOut, err := execute(t, "compare", scenariosFile, "--with", "polygyny_10", "--format", "csv")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, strings.Count(csvOut, "\n"), 3)
}

func TestCompareCommand_ConfiguredScenarios(t *testing.T) {
	out, err := execute(t, "compare", scenariosFile, "--scenarios", "Doubled,Devout", "--format", "json")
	require.NoError(t, err)

	var set compare.ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	assert.Equal(t, "Base", set.BaseScenarioName)
	require.Len(t, set.AlternativeResults, 2)
	assert.Equal(t, "Doubled", set.AlternativeResults[0].ScenarioName)
	assert.Equal(t, int64(160000), set.AlternativeResults[0].EffectiveSurplus)
	assert.Equal(t, "Devout", set.AlternativeResults[1].ScenarioName)
	assert.Equal(t, int64(50000), set.AlternativeResults[1].EffectiveSurplus)
	assert.Equal(t, int64(-250000), set.AlternativeResults[1].SurplusDiffFromBase)

	table, err := execute(t, "compare", scenariosFile, "--base", "Devout", "--scenarios", "Base")
	require.NoError(t, err)
	assert.Contains(t, table, "SURPLUS SCENARIO COMPARISON")
}

func TestCompareCommand_Errors(t *testing.T) {
	out, err := execute(t, "compare", "--list-templates")
	require.NoError(t, err)
	assert.Contains(t, out, "polygyny_mixed")

	_, err = execute(t, "compare")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file required")

	_, err = execute(t, "compare", scenariosFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--with or --scenarios is required")

	_, err = execute(t, "compare", scenariosFile, "--with", "polygyny_10", "--scenarios", "Doubled")
	require.Error(t, err)

	_, err = execute(t, "compare", scenariosFile, "--scenarios", "Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alternative scenario Missing not found")

	_, err = execute(t, "compare", scenariosFile, "--with", "no_such_template")
	require.Error(t, err)

	_, err = execute(t, "compare", scenariosFile, "--with", "polygyny_10", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestBreakEvenCommand(t *testing.T) {
	out, err := execute(t, "break-even", scenariosFile, "--category", "two_wives", "--format", "json")
	require.NoError(t, err)

	var result breakeven.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success)
	assert.Equal(t, int64(300000), result.MonogamySurplus)
	assert.Equal(t, int64(0), result.SurplusReached)
	assert.True(t, result.Share.GreaterThanOrEqual(decimal.RequireFromString("42.857")), "share %s", result.Share)
	assert.True(t, result.Share.LessThanOrEqual(decimal.RequireFromString("42.87")), "share %s", result.Share)

	single, err := execute(t, "break-even", scenariosFile, "--scenario", "Devout", "--category", "three_wives")
	require.NoError(t, err)
	assert.Contains(t, single, "BREAK-EVEN POLYGYNY SHARE")
	assert.Contains(t, single, "Devout")

	all, err := execute(t, "break-even", scenariosFile)
	require.NoError(t, err)
	assert.Contains(t, all, "BREAK-EVEN BY POLYGYNY CATEGORY")
	assert.Contains(t, all, "reached")

	_, err = execute(t, "break-even", scenariosFile, "--category", "five_wives")
	require.Error(t, err)

	_, err = execute(t, "break-even", scenariosFile, "--tolerance", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tolerance")
}

func TestSensitivityCommand(t *testing.T) {
	out, err := execute(t, "sensitivity", scenariosFile,
		"--scenario", "Doubled", "--parameter", "two_wives", "--range", "0-40", "--steps", "3", "--format", "json")
	require.NoError(t, err)

	var analysis domain.SensitivityAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &analysis))
	assert.Equal(t, "Doubled", analysis.BaseScenarioName)
	require.Len(t, analysis.Points, 3)
	assert.Equal(t, int64(300000), analysis.Points[0].AlternativeSurplus)
	assert.Equal(t, int64(160000), analysis.Points[1].AlternativeSurplus)
	assert.Equal(t, int64(20000), analysis.Points[2].AlternativeSurplus)
	assert.Equal(t, int64(160000), analysis.Summary.BaseSurplus)
	assert.Equal(t, int64(140000), analysis.Points[0].ChangeFromBase)

	console, err := execute(t, "sensitivity", scenariosFile, "--parameter", "age_overlap:0-20:3")
	require.NoError(t, err)
	assert.Contains(t, console, "age_overlap")
}

func TestResolveParameters(t *testing.T) {
	all, err := resolveParameters(nil, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, len(domain.GetCommonParameters()))

	one, err := resolveParameters([]string{"three_wives"}, "5-15", 3)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.True(t, one[0].MinValue.Equal(decimal.NewFromInt(5)))
	assert.True(t, one[0].MaxValue.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, 3, one[0].Steps)

	spec, err := resolveParameters([]string{"age_overlap:0-30:4"}, "", 0)
	require.NoError(t, err)
	assert.True(t, spec[0].MaxValue.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 4, spec[0].Steps)

	for _, tt := range []struct {
		specs []string
		rng   string
		steps int
	}{
		{nil, "0-10", 0},
		{[]string{"two_wives", "three_wives"}, "0-10", 0},
		{[]string{"bogus"}, "", 0},
		{[]string{"two_wives:0-10"}, "", 0},
		{[]string{"two_wives:10-0:3"}, "", 0},
		{[]string{"two_wives:0-10:x"}, "", 0},
		{[]string{"two_wives"}, "ten", 0},
	} {
		_, err := resolveParameters(tt.specs, tt.rng, tt.steps)
		assert.Error(t, err, "specs=%v range=%q", tt.specs, tt.rng)
	}
}

func TestZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "debug")
	require.NoError(t, err)

	adapter := zerologAdapter{log: logger}
	adapter.Debugf("bracket %s surplus %d", "18-24", 300000)
	adapter.Warnf("careful")
	assert.Contains(t, buf.String(), "bracket 18-24 surplus 300000")
	assert.Contains(t, buf.String(), "careful")

	quiet, err := newLogger(&buf, "error")
	require.NoError(t, err)
	buf.Reset()
	zerologAdapter{log: quiet}.Infof("hidden")
	assert.Empty(t, buf.String())

	_, err = newLogger(&buf, "loud")
	assert.Error(t, err)
}

func TestCalculate_DebugLogsToStderr(t *testing.T) {
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"calculate", "--census", censusFile, "--religious", religiousFile,
		"--brackets", "18-24", "--two", "20", "--format", "console-lite", "--debug"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "Under strict monogamy:  300K")
	assert.Contains(t, stderr.String(), "capacity 1.2000")
}
