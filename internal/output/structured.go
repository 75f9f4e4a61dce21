package output

import (
	"encoding/json"

	"github.com/biblemarriages/surplus/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter renders the result with camelCase keys.
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.CalculatorResult) ([]byte, error) {
	if j.Pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

// YAMLFormatter renders the result with snake_case keys.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(result *domain.CalculatorResult) ([]byte, error) {
	return yaml.Marshal(result)
}
