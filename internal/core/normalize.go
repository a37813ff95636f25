package core

import (
	"fmt"

	"github.com/valter-silva-au/foresight/pkg/models"
)

// Normalizer converts either authored scenario shape into the canonical
// inline AIScenario all downstream consumers expect. Inline scenarios pass
// through untouched; repository-based scenarios have their parameter and
// milestone references resolved. Assumption references are carried through
// unflattened and merged only at the point of consumption via AllAssumptions.
type Normalizer interface {
	Normalize(s models.Scenario) (*models.AIScenario, error)
	AllParameters(s models.Scenario) ([]models.ScenarioParameter, error)
	AllMilestones(s models.Scenario) ([]models.Milestone, error)
	AllAssumptions(inline []models.Assumption, refs []models.AssumptionReference) ([]models.Assumption, error)
}

type scenarioNormalizer struct {
	resolver Resolver
}

// NewNormalizer creates a Normalizer that resolves repository references
// through the given resolver.
func NewNormalizer(resolver Resolver) Normalizer {
	return &scenarioNormalizer{resolver: resolver}
}

// Normalize returns the canonical inline form of a scenario. Inline input is
// returned as-is, so normalization is idempotent; the input is never mutated.
// A dangling reference fails the whole scenario.
func (n *scenarioNormalizer) Normalize(s models.Scenario) (*models.AIScenario, error) {
	if s.Kind() == models.KindInline {
		return s.Inline, nil
	}

	rb := s.RepoBased
	parameters := make([]models.ScenarioParameter, 0, len(rb.ParameterRefs))
	for _, ref := range rb.ParameterRefs {
		resolved, err := n.resolver.ResolveParameter(ref)
		if err != nil {
			return nil, fmt.Errorf("normalizing scenario %s: %w", rb.ID, err)
		}
		parameters = append(parameters, resolved)
	}

	milestones := make([]models.Milestone, 0, len(rb.MilestoneRefs))
	for _, ref := range rb.MilestoneRefs {
		resolved, err := n.resolver.ResolveMilestone(ref)
		if err != nil {
			return nil, fmt.Errorf("normalizing scenario %s: %w", rb.ID, err)
		}
		milestones = append(milestones, resolved)
	}

	return &models.AIScenario{
		ID:             rb.ID,
		Title:          rb.Title,
		Author:         rb.Author,
		Source:         rb.Source,
		SourceURL:      rb.SourceURL,
		DatePublished:  rb.DatePublished,
		Summary:        rb.Summary,
		ScenarioType:   rb.ScenarioType,
		TimelineStart:  rb.TimelineStart,
		TimelineEnd:    rb.TimelineEnd,
		Periods:        rb.Periods,
		Parameters:     parameters,
		Milestones:     milestones,
		HasBranching:   rb.HasBranching,
		Branches:       rb.Branches,
		Assumptions:    rb.Assumptions,
		AssumptionRefs: rb.AssumptionRefs,
		OpenQuestions:  rb.OpenQuestions,
		Outcomes:       rb.Outcomes,
		Tags:           rb.Tags,
	}, nil
}

// AllParameters returns the scenario's parameters in resolved form without
// building the full normalized scenario.
func (n *scenarioNormalizer) AllParameters(s models.Scenario) ([]models.ScenarioParameter, error) {
	if s.Kind() == models.KindInline {
		return s.Inline.Parameters, nil
	}

	parameters := make([]models.ScenarioParameter, 0, len(s.RepoBased.ParameterRefs))
	for _, ref := range s.RepoBased.ParameterRefs {
		resolved, err := n.resolver.ResolveParameter(ref)
		if err != nil {
			return nil, fmt.Errorf("resolving parameters for scenario %s: %w", s.RepoBased.ID, err)
		}
		parameters = append(parameters, resolved)
	}
	return parameters, nil
}

// AllMilestones returns the scenario's milestones in resolved form.
func (n *scenarioNormalizer) AllMilestones(s models.Scenario) ([]models.Milestone, error) {
	if s.Kind() == models.KindInline {
		return s.Inline.Milestones, nil
	}

	milestones := make([]models.Milestone, 0, len(s.RepoBased.MilestoneRefs))
	for _, ref := range s.RepoBased.MilestoneRefs {
		resolved, err := n.resolver.ResolveMilestone(ref)
		if err != nil {
			return nil, fmt.Errorf("resolving milestones for scenario %s: %w", s.RepoBased.ID, err)
		}
		milestones = append(milestones, resolved)
	}
	return milestones, nil
}

// AllAssumptions concatenates inline assumptions with resolved references,
// inline first. Nil inputs are legitimate empty states.
func (n *scenarioNormalizer) AllAssumptions(inline []models.Assumption, refs []models.AssumptionReference) ([]models.Assumption, error) {
	assumptions := make([]models.Assumption, 0, len(inline)+len(refs))
	assumptions = append(assumptions, inline...)

	for _, ref := range refs {
		resolved, err := n.resolver.ResolveAssumption(ref)
		if err != nil {
			return nil, fmt.Errorf("resolving assumptions: %w", err)
		}
		assumptions = append(assumptions, resolved)
	}
	return assumptions, nil
}

// GroupAssumptionsByCategory buckets assumptions by their category string.
func GroupAssumptionsByCategory(assumptions []models.Assumption) map[string][]models.Assumption {
	groups := make(map[string][]models.Assumption)
	for _, a := range assumptions {
		groups[a.Category] = append(groups[a.Category], a)
	}
	return groups
}

// AssumptionStats summarizes a set of assumptions by confidence and impact.
type AssumptionStats struct {
	Total        int
	ByConfidence map[models.Level]int
	ByImpact     map[models.Level]int
	ByCategory   map[string][]models.Assumption
}

// ComputeAssumptionStats counts assumptions per confidence level, impact
// level, and category.
func ComputeAssumptionStats(assumptions []models.Assumption) AssumptionStats {
	stats := AssumptionStats{
		Total:        len(assumptions),
		ByConfidence: make(map[models.Level]int),
		ByImpact:     make(map[models.Level]int),
		ByCategory:   GroupAssumptionsByCategory(assumptions),
	}
	for _, a := range assumptions {
		stats.ByConfidence[a.Confidence]++
		stats.ByImpact[a.Impact]++
	}
	return stats
}
