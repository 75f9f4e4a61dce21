package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/biblemarriages/surplus/internal/breakeven"
	"github.com/biblemarriages/surplus/internal/calculation"
	"github.com/biblemarriages/surplus/internal/compare"
	"github.com/biblemarriages/surplus/internal/config"
	"github.com/biblemarriages/surplus/internal/domain"
	"github.com/biblemarriages/surplus/internal/transform"
)

// defaultScenarioName names request scenarios that arrive without one.
const defaultScenarioName = "request"

// Handler serves the API over one set of reference tables.
type Handler struct {
	Engine    *calculation.CalculationEngine
	Comparer  *compare.CompareEngine
	Solver    *breakeven.Solver
	Templates *transform.TemplateRegistry
	parser    *config.InputParser
}

// NewHandler wires the engines over the given reference tables.
func NewHandler(census *domain.CensusData, religious *domain.ReligiousData) *Handler {
	engine := calculation.NewCalculationEngine(census, religious)
	return &Handler{
		Engine:    engine,
		Comparer:  compare.NewCompareEngine(engine),
		Solver:    breakeven.NewDefaultSolver(engine),
		Templates: transform.CreateBuiltInTemplates(),
		parser:    config.NewInputParser(),
	}
}

// ListBrackets returns the ordered age brackets.
func (h *Handler) ListBrackets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.AllAgeBrackets())
}

// GetOptions returns the filter option catalogues.
func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, OptionsDTO{
		AgeBrackets:       domain.AllAgeBrackets(),
		Denominations:     domain.Denominations(),
		ReligiosityLevels: domain.ReligiosityLevels(),
		DefaultFilters:    domain.DefaultFilters(),
	})
}

// GetReference returns the loaded reference tables.
func (h *Handler) GetReference(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ReferenceDTO{
		Census:    h.Engine.Census,
		Religious: h.Engine.Religious,
	})
}

// Calculate runs the engine for one filter set.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	req := CalculateRequest{Filters: domain.DefaultFilters()}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := config.ValidateFilters(req.Filters); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid filters", err)
		return
	}
	if req.Polygyny != nil {
		if err := config.ValidateDistribution(*req.Polygyny); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid polygyny distribution", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, h.Engine.CalculateResults(req.Filters, req.Polygyny))
}

// ListTemplates returns the built-in templates.
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	all := h.Templates.All()
	dtos := make([]TemplateDTO, 0, len(all))
	for _, t := range all {
		dtos = append(dtos, TemplateDTO{Name: t.Name, Description: t.Description})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Compare runs a scenario against templates.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	req := CompareRequest{Scenario: defaultScenario()}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !h.validScenario(w, &req.Scenario) {
		return
	}
	for _, name := range req.Templates {
		if _, ok := h.Templates.Get(name); !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown template: %s", name), nil)
			return
		}
	}

	set, err := h.Comparer.CompareScenario(r.Context(), &req.Scenario, req.Templates)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Comparison failed", err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// BreakEven searches for the break-even polygyny share.
func (h *Handler) BreakEven(w http.ResponseWriter, r *http.Request) {
	req := BreakEvenRequest{Scenario: defaultScenario()}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !h.validScenario(w, &req.Scenario) {
		return
	}
	if req.TargetSurplus < 0 {
		writeError(w, http.StatusBadRequest, "targetSurplus cannot be negative", nil)
		return
	}

	if req.Category == "" {
		result, err := h.Solver.SolveAllCategories(r.Context(), &req.Scenario, req.TargetSurplus)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Break-even search failed", err)
			return
		}
		writeJSON(w, http.StatusOK, result)
		return
	}

	category, err := domain.ParseShareField(req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid category", err)
		return
	}
	result, err := h.Solver.Solve(r.Context(), breakeven.Request{
		Scenario:      &req.Scenario,
		Category:      category,
		TargetSurplus: req.TargetSurplus,
	})
	if err != nil {
		var beErr *breakeven.BreakEvenError
		if errors.As(err, &beErr) && beErr.Operation == "validate_request" {
			writeError(w, http.StatusBadRequest, "Invalid break-even request", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Break-even search failed", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func defaultScenario() domain.Scenario {
	return domain.Scenario{Name: defaultScenarioName, Filters: domain.DefaultFilters()}
}

func (h *Handler) validScenario(w http.ResponseWriter, s *domain.Scenario) bool {
	if s.Name == "" {
		s.Name = defaultScenarioName
	}
	if err := h.parser.ValidateScenario(s); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scenario", err)
		return false
	}
	return true
}

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
