package core

import (
	"strings"

	"github.com/valter-silva-au/foresight/pkg/models"
)

// Store is the read-only catalog of reusable parameter, milestone, and
// assumption definitions. It is built once from already-parsed definition
// slices and never mutated afterwards, so lookups are safe from any context.
type Store interface {
	Parameter(id string) (models.ParameterDefinition, bool)
	FindParameterByName(name string) (models.ParameterDefinition, bool)
	ParametersByCategory(category models.ParameterCategory) []models.ParameterDefinition
	ParametersByTag(tag string) []models.ParameterDefinition
	Parameters() []models.ParameterDefinition

	Milestone(id string) (models.MilestoneDefinition, bool)
	FindMilestoneByName(name string) (models.MilestoneDefinition, bool)
	MilestonesByCategory(category models.MilestoneCategory) []models.MilestoneDefinition
	MilestonesByTag(tag string) []models.MilestoneDefinition
	Milestones() []models.MilestoneDefinition

	Assumption(id string) (models.AssumptionDefinition, bool)
	FindAssumptionByName(name string) (models.AssumptionDefinition, bool)
	AssumptionsByCategory(category string) []models.AssumptionDefinition
	AssumptionsByTag(tag string) []models.AssumptionDefinition
	AssumptionsForParameter(parameterID string) []models.AssumptionDefinition
	Assumptions() []models.AssumptionDefinition
}

type memoryStore struct {
	parameters  []models.ParameterDefinition
	milestones  []models.MilestoneDefinition
	assumptions []models.AssumptionDefinition

	paramByID      map[string]int
	milestoneByID  map[string]int
	assumptionByID map[string]int
}

// NewStore builds a Store over the given definition slices. The slices are
// not copied; callers must not mutate them after construction.
func NewStore(parameters []models.ParameterDefinition, milestones []models.MilestoneDefinition, assumptions []models.AssumptionDefinition) Store {
	s := &memoryStore{
		parameters:     parameters,
		milestones:     milestones,
		assumptions:    assumptions,
		paramByID:      make(map[string]int, len(parameters)),
		milestoneByID:  make(map[string]int, len(milestones)),
		assumptionByID: make(map[string]int, len(assumptions)),
	}
	for i, p := range parameters {
		s.paramByID[p.ID] = i
	}
	for i, m := range milestones {
		s.milestoneByID[m.ID] = i
	}
	for i, a := range assumptions {
		s.assumptionByID[a.ID] = i
	}
	return s
}

// normalizeName lowercases and trims a name for exact-match comparison.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// matchesNameOrAlias reports whether the item's name or any alias equals the
// already-normalized name.
func matchesNameOrAlias(item models.RepositoryItem, normalized string) bool {
	if normalizeName(item.Name) == normalized {
		return true
	}
	for _, alias := range item.Aliases {
		if normalizeName(alias) == normalized {
			return true
		}
	}
	return false
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (s *memoryStore) Parameter(id string) (models.ParameterDefinition, bool) {
	i, ok := s.paramByID[id]
	if !ok {
		return models.ParameterDefinition{}, false
	}
	return s.parameters[i], true
}

func (s *memoryStore) FindParameterByName(name string) (models.ParameterDefinition, bool) {
	normalized := normalizeName(name)
	for _, p := range s.parameters {
		if matchesNameOrAlias(p.RepositoryItem, normalized) {
			return p, true
		}
	}
	return models.ParameterDefinition{}, false
}

func (s *memoryStore) ParametersByCategory(category models.ParameterCategory) []models.ParameterDefinition {
	var result []models.ParameterDefinition
	for _, p := range s.parameters {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result
}

func (s *memoryStore) ParametersByTag(tag string) []models.ParameterDefinition {
	var result []models.ParameterDefinition
	for _, p := range s.parameters {
		if hasTag(p.Tags, tag) {
			result = append(result, p)
		}
	}
	return result
}

func (s *memoryStore) Parameters() []models.ParameterDefinition {
	return s.parameters
}

func (s *memoryStore) Milestone(id string) (models.MilestoneDefinition, bool) {
	i, ok := s.milestoneByID[id]
	if !ok {
		return models.MilestoneDefinition{}, false
	}
	return s.milestones[i], true
}

func (s *memoryStore) FindMilestoneByName(name string) (models.MilestoneDefinition, bool) {
	normalized := normalizeName(name)
	for _, m := range s.milestones {
		if matchesNameOrAlias(m.RepositoryItem, normalized) {
			return m, true
		}
	}
	return models.MilestoneDefinition{}, false
}

func (s *memoryStore) MilestonesByCategory(category models.MilestoneCategory) []models.MilestoneDefinition {
	var result []models.MilestoneDefinition
	for _, m := range s.milestones {
		if m.Category == category {
			result = append(result, m)
		}
	}
	return result
}

func (s *memoryStore) MilestonesByTag(tag string) []models.MilestoneDefinition {
	var result []models.MilestoneDefinition
	for _, m := range s.milestones {
		if hasTag(m.Tags, tag) {
			result = append(result, m)
		}
	}
	return result
}

func (s *memoryStore) Milestones() []models.MilestoneDefinition {
	return s.milestones
}

func (s *memoryStore) Assumption(id string) (models.AssumptionDefinition, bool) {
	i, ok := s.assumptionByID[id]
	if !ok {
		return models.AssumptionDefinition{}, false
	}
	return s.assumptions[i], true
}

func (s *memoryStore) FindAssumptionByName(name string) (models.AssumptionDefinition, bool) {
	normalized := normalizeName(name)
	for _, a := range s.assumptions {
		if matchesNameOrAlias(a.RepositoryItem, normalized) {
			return a, true
		}
	}
	return models.AssumptionDefinition{}, false
}

func (s *memoryStore) AssumptionsByCategory(category string) []models.AssumptionDefinition {
	var result []models.AssumptionDefinition
	for _, a := range s.assumptions {
		if a.Category == category {
			result = append(result, a)
		}
	}
	return result
}

func (s *memoryStore) AssumptionsByTag(tag string) []models.AssumptionDefinition {
	var result []models.AssumptionDefinition
	for _, a := range s.assumptions {
		if hasTag(a.Tags, tag) {
			result = append(result, a)
		}
	}
	return result
}

func (s *memoryStore) AssumptionsForParameter(parameterID string) []models.AssumptionDefinition {
	var result []models.AssumptionDefinition
	for _, a := range s.assumptions {
		for _, p := range a.RelatedParameters {
			if p == parameterID {
				result = append(result, a)
				break
			}
		}
	}
	return result
}

func (s *memoryStore) Assumptions() []models.AssumptionDefinition {
	return s.assumptions
}
