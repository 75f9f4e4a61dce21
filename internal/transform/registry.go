package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/biblemarriages/surplus/internal/domain"
)

// TransformRegistry creates transforms by name from string parameters,
// for CLI flags and HTTP requests.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set_overlap", createSetOverlap)
	registry.Register("set_denomination", createSetDenomination)
	registry.Register("set_religiosity", createSetReligiosity)
	registry.Register("include_widows", createIncludeWidows)
	registry.Register("include_divorced", createIncludeDivorced)
	registry.Register("select_brackets", createSelectBrackets)
	registry.Register("set_polygyny", createSetPolygyny)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the sorted names of all registered transforms.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "set_polygyny:one=80,two=20"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// Factory functions for each transform

func createSetOverlap(params map[string]string) (ScenarioTransform, error) {
	yearsStr, ok := params["years"]
	if !ok {
		return nil, fmt.Errorf("set_overlap requires 'years' parameter")
	}
	years, err := strconv.Atoi(yearsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid years value: %w", err)
	}
	return &SetOverlap{Years: years}, nil
}

func createSetDenomination(params map[string]string) (ScenarioTransform, error) {
	value, ok := params["denomination"]
	if !ok {
		return nil, fmt.Errorf("set_denomination requires 'denomination' parameter")
	}
	d, err := domain.ParseDenomination(value)
	if err != nil {
		return nil, err
	}
	return &SetDenomination{Denomination: d}, nil
}

func createSetReligiosity(params map[string]string) (ScenarioTransform, error) {
	value, ok := params["level"]
	if !ok {
		return nil, fmt.Errorf("set_religiosity requires 'level' parameter")
	}
	level, err := domain.ParseReligiosityLevel(value)
	if err != nil {
		return nil, err
	}
	return &SetReligiosity{Level: level}, nil
}

func createIncludeWidows(params map[string]string) (ScenarioTransform, error) {
	include, err := boolParam("include_widows", params)
	if err != nil {
		return nil, err
	}
	return &IncludeWidows{Include: include}, nil
}

func createIncludeDivorced(params map[string]string) (ScenarioTransform, error) {
	include, err := boolParam("include_divorced", params)
	if err != nil {
		return nil, err
	}
	return &IncludeDivorced{Include: include}, nil
}

func boolParam(name string, params map[string]string) (bool, error) {
	value, ok := params["include"]
	if !ok {
		return false, fmt.Errorf("%s requires 'include' parameter", name)
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid include value: %w", err)
	}
	return b, nil
}

// createSelectBrackets reads "brackets=18-24|25-34" or "brackets=all";
// ';' and spaces also separate brackets since ',' separates parameters.
func createSelectBrackets(params map[string]string) (ScenarioTransform, error) {
	value, ok := params["brackets"]
	if !ok {
		return nil, fmt.Errorf("select_brackets requires 'brackets' parameter")
	}
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == '|' || r == ';' || r == ' '
	})
	brackets, err := domain.ParseAgeBrackets(strings.Join(fields, ","))
	if err != nil {
		return nil, err
	}
	return &SelectBrackets{Brackets: brackets}, nil
}

// createSetPolygyny reads one/two/three/four_plus percentages. Omitted
// multi-wife shares are zero; an omitted one-wife share is whatever
// remains of 100.
func createSetPolygyny(params map[string]string) (ScenarioTransform, error) {
	var dist domain.PolygynyDistribution
	keys := []struct {
		names []string
		dst   *float64
	}{
		{[]string{"one", "one_wife"}, &dist.OneWife},
		{[]string{"two", "two_wives"}, &dist.TwoWives},
		{[]string{"three", "three_wives"}, &dist.ThreeWives},
		{[]string{"four_plus", "four", "four_plus_wives"}, &dist.FourPlusWives},
	}

	found := 0
	oneGiven := false
	for i, k := range keys {
		for _, n := range k.names {
			value, ok := params[n]
			if !ok {
				continue
			}
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid %s value: %w", n, err)
			}
			*k.dst = v
			found++
			if i == 0 {
				oneGiven = true
			}
		}
	}
	if found == 0 {
		return nil, fmt.Errorf("set_polygyny requires at least one of 'one', 'two', 'three', 'four_plus'")
	}
	if !oneGiven {
		dist.OneWife = 100 - dist.TwoWives - dist.ThreeWives - dist.FourPlusWives
	}
	return &SetPolygyny{Distribution: dist}, nil
}
