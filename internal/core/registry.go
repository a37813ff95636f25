package core

import (
	"fmt"
	"sort"

	"github.com/valter-silva-au/foresight/pkg/models"
)

// Diagnostic is a structured data-quality finding produced while aggregating
// authored content. Diagnostics are returned to callers, never logged as a
// side channel, so tests and tools can assert on them.
type Diagnostic struct {
	ScenarioID string
	Subject    string
	Message    string
}

func (d Diagnostic) String() string {
	if d.ScenarioID == "" {
		return fmt.Sprintf("%s: %s", d.Subject, d.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", d.Subject, d.ScenarioID, d.Message)
}

// ParameterUsage identifies one parameter occurrence inside one scenario.
type ParameterUsage struct {
	ScenarioID  string
	ParameterID string
}

// AggregatedParameter groups equivalently-named parameters across scenarios.
// Grouping is by display name, not ID, because different scenarios mint
// different IDs for the same concept.
type AggregatedParameter struct {
	Name          string
	Description   string
	Unit          string
	ScenarioCount int
	ParameterIDs  []ParameterUsage
}

// AggregatedAssumption groups equivalently-described assumptions across
// scenarios, bucketed by category.
type AggregatedAssumption struct {
	Description   string
	Category      string
	ScenarioCount int
	ScenarioIDs   []string
}

// Registry holds the full normalized scenario set and answers cross-scenario
// queries for comparison views. It is built once at startup and never
// mutated, so every method is a pure read.
type Registry struct {
	scenarios []*models.AIScenario
	byID      map[string]*models.AIScenario

	// assumptions holds each scenario's inline assumptions concatenated with
	// its resolved assumption references, flattened once at build time.
	assumptions map[string][]models.Assumption
}

// NewRegistry normalizes every scenario and builds the registry over the
// results. A scenario that fails to normalize fails registry construction;
// dangling references must surface at load time, not at render time.
func NewRegistry(normalizer Normalizer, scenarios []models.Scenario) (*Registry, error) {
	r := &Registry{
		byID:        make(map[string]*models.AIScenario, len(scenarios)),
		assumptions: make(map[string][]models.Assumption, len(scenarios)),
	}

	for _, s := range scenarios {
		normalized, err := normalizer.Normalize(s)
		if err != nil {
			return nil, fmt.Errorf("building scenario registry: %w", err)
		}
		if _, exists := r.byID[normalized.ID]; exists {
			return nil, fmt.Errorf("building scenario registry: duplicate scenario id %q", normalized.ID)
		}
		flat, err := normalizer.AllAssumptions(normalized.Assumptions, normalized.AssumptionRefs)
		if err != nil {
			return nil, fmt.Errorf("building scenario registry: scenario %s: %w", normalized.ID, err)
		}
		r.scenarios = append(r.scenarios, normalized)
		r.byID[normalized.ID] = normalized
		r.assumptions[normalized.ID] = flat
	}

	return r, nil
}

// ScenarioAssumptions returns a scenario's full assumption set: inline
// assumptions followed by its resolved references.
func (r *Registry) ScenarioAssumptions(id string) []models.Assumption {
	return r.assumptions[id]
}

// Scenarios returns all scenarios in registration order.
func (r *Registry) Scenarios() []*models.AIScenario {
	return r.scenarios
}

// ScenarioByID looks up a scenario by its identifier.
func (r *Registry) ScenarioByID(id string) (*models.AIScenario, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// ScenariosByTag returns every scenario carrying the tag.
func (r *Registry) ScenariosByTag(tag string) []*models.AIScenario {
	var result []*models.AIScenario
	for _, s := range r.scenarios {
		if hasTag(s.Tags, tag) {
			result = append(result, s)
		}
	}
	return result
}

// ScenariosByType returns every scenario of the given type.
func (r *Registry) ScenariosByType(t models.ScenarioType) []*models.AIScenario {
	var result []*models.AIScenario
	for _, s := range r.scenarios {
		if s.ScenarioType == t {
			result = append(result, s)
		}
	}
	return result
}

// AllTags returns the sorted set of distinct tags across all scenarios.
func (r *Registry) AllTags() []string {
	seen := make(map[string]bool)
	for _, s := range r.scenarios {
		for _, tag := range s.Tags {
			seen[tag] = true
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// ScenarioParameterData is one scenario's series for a given parameter ID.
type ScenarioParameterData struct {
	Scenario  *models.AIScenario
	Parameter models.ScenarioParameter
}

// ParameterData collects the series of every scenario that tracks the
// parameter with the given ID.
func (r *Registry) ParameterData(parameterID string) []ScenarioParameterData {
	var result []ScenarioParameterData
	for _, s := range r.scenarios {
		for _, p := range s.Parameters {
			if p.ID == parameterID {
				result = append(result, ScenarioParameterData{Scenario: s, Parameter: p})
				break
			}
		}
	}
	return result
}

// AggregateParameters groups same-named parameters across all scenarios,
// counting one per scenario occurrence and collecting the per-scenario IDs.
// Ordering: descending by scenario count, ties by ascending name.
func (r *Registry) AggregateParameters() []AggregatedParameter {
	byName := make(map[string]*AggregatedParameter)
	var order []string

	for _, s := range r.scenarios {
		for _, p := range s.Parameters {
			agg, ok := byName[p.Name]
			if !ok {
				agg = &AggregatedParameter{
					Name:        p.Name,
					Description: p.Description,
					Unit:        p.Unit,
				}
				byName[p.Name] = agg
				order = append(order, p.Name)
			}
			agg.ScenarioCount++
			agg.ParameterIDs = append(agg.ParameterIDs, ParameterUsage{
				ScenarioID:  s.ID,
				ParameterID: p.ID,
			})
		}
	}

	result := make([]AggregatedParameter, 0, len(order))
	for _, name := range order {
		result = append(result, *byName[name])
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].ScenarioCount != result[j].ScenarioCount {
			return result[i].ScenarioCount > result[j].ScenarioCount
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// AggregateAssumptions groups same-described assumptions across all
// scenarios, bucketed by category. Categories outside the fixed table are
// reported as diagnostics; the assumption is kept with its raw category
// string as display label.
func (r *Registry) AggregateAssumptions() ([]AggregatedAssumption, []Diagnostic) {
	byKey := make(map[string]*AggregatedAssumption)
	var order []string
	var diagnostics []Diagnostic

	for _, s := range r.scenarios {
		for _, a := range r.assumptions[s.ID] {
			if !ValidCategory(a.Category) {
				diagnostics = append(diagnostics, Diagnostic{
					ScenarioID: s.ID,
					Subject:    "assumption " + a.ID,
					Message:    fmt.Sprintf("category %q is not in the category table", a.Category),
				})
			}

			key := a.Category + "\x00" + a.Description
			agg, ok := byKey[key]
			if !ok {
				agg = &AggregatedAssumption{
					Description: a.Description,
					Category:    a.Category,
				}
				byKey[key] = agg
				order = append(order, key)
			}
			agg.ScenarioCount++
			agg.ScenarioIDs = append(agg.ScenarioIDs, s.ID)
		}
	}

	result := make([]AggregatedAssumption, 0, len(order))
	for _, key := range order {
		result = append(result, *byKey[key])
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].ScenarioCount != result[j].ScenarioCount {
			return result[i].ScenarioCount > result[j].ScenarioCount
		}
		return result[i].Description < result[j].Description
	})
	return result, diagnostics
}
