package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/biblemarriages/surplus/internal/domain"
)

// Formatter renders a calculator result in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.CalculatorResult) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(result *domain.CalculatorResult) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(result *domain.CalculatorResult) ([]byte, error) {
	return f.F(result)
}

var registered = []Formatter{
	ConsoleFormatter{},
	ConsoleVerboseFormatter{},
	CSVFormatter{},
	JSONFormatter{Pretty: true},
	YAMLFormatter{},
	HTMLFormatter{},
}

var formatAliases = map[string]string{
	"verbose":         "console",
	"console-verbose": "console",
	"lite":            "console-lite",
	"summary":         "console-lite",
	"yml":             "yaml",
}

// GetFormatterByName returns the formatter registered under name or one of
// its aliases, or nil.
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if target, ok := formatAliases[name]; ok {
		name = target
	}
	for _, f := range registered {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames lists the registered formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(registered))
	for _, f := range registered {
		names = append(names, f.Name())
	}
	return names
}

// AvailableFormatAliases lists the accepted aliases, sorted.
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for a := range formatAliases {
		aliases = append(aliases, a)
	}
	sort.Strings(aliases)
	return aliases
}

// WriteFormatted renders result with f and writes it to a timestamped file
// in the working directory, returning the file name.
func WriteFormatted(f Formatter, result *domain.CalculatorResult, ext string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", fmt.Errorf("failed to format report: %w", err)
	}
	filename := fmt.Sprintf("surplus_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return filename, nil
}

// ExtensionFor is the file extension conventionally used for a format.
func ExtensionFor(name string) string {
	switch name {
	case "csv", "json", "yaml", "html":
		return name
	}
	return "txt"
}
