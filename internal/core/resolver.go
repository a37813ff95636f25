package core

import (
	"github.com/valter-silva-au/foresight/pkg/models"
)

// Resolver expands scenario references into fully-populated entities by
// merging repository defaults with per-scenario overrides. For every
// overridable field the override wins when present; a reference to a missing
// ID is a hard error, never a silently dropped item.
type Resolver interface {
	ResolveParameter(ref models.ParameterReference) (models.ScenarioParameter, error)
	ResolveMilestone(ref models.MilestoneReference) (models.Milestone, error)
	ResolveAssumption(ref models.AssumptionReference) (models.Assumption, error)
}

type storeResolver struct {
	store Store
}

// NewResolver creates a Resolver backed by the given repository store.
func NewResolver(store Store) Resolver {
	return &storeResolver{store: store}
}

// override returns the override when set, otherwise the definition's value.
func override(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func overrideLevel(value, fallback models.Level) models.Level {
	if value != "" {
		return value
	}
	return fallback
}

// ResolveParameter merges a parameter reference with its definition. Data
// always comes from the reference verbatim; the definition's declared range
// is not enforced against it.
func (r *storeResolver) ResolveParameter(ref models.ParameterReference) (models.ScenarioParameter, error) {
	def, ok := r.store.Parameter(ref.ParameterID)
	if !ok {
		return models.ScenarioParameter{}, &NotFoundError{Kind: RefParameter, ID: ref.ParameterID}
	}

	return models.ScenarioParameter{
		ID:          def.ID,
		Name:        override(ref.NameOverride, def.Name),
		Description: override(ref.DescriptionOverride, def.Description),
		Unit:        override(ref.UnitOverride, def.Unit),
		Color:       override(ref.ColorOverride, def.Color),
		Data:        ref.Data,
	}, nil
}

// ResolveMilestone merges a milestone reference with its definition. Date is
// required on the reference; significance falls back to the definition's
// default and category always comes from the definition.
func (r *storeResolver) ResolveMilestone(ref models.MilestoneReference) (models.Milestone, error) {
	def, ok := r.store.Milestone(ref.MilestoneID)
	if !ok {
		return models.Milestone{}, &NotFoundError{Kind: RefMilestone, ID: ref.MilestoneID}
	}

	return models.Milestone{
		ID:           def.ID,
		Date:         ref.Date,
		Title:        override(ref.TitleOverride, def.Name),
		Description:  override(ref.DescriptionOverride, def.Description),
		Significance: overrideLevel(ref.Significance, def.DefaultSignificance),
		Category:     string(def.Category),
	}, nil
}

// ResolveAssumption merges an assumption reference with its definition.
// Category always comes from the definition; confidence and impact fall back
// to the definition's defaults.
func (r *storeResolver) ResolveAssumption(ref models.AssumptionReference) (models.Assumption, error) {
	def, ok := r.store.Assumption(ref.AssumptionID)
	if !ok {
		return models.Assumption{}, &NotFoundError{Kind: RefAssumption, ID: ref.AssumptionID}
	}

	return models.Assumption{
		ID:          def.ID,
		Category:    def.Category,
		Description: override(ref.DescriptionOverride, def.Description),
		Confidence:  overrideLevel(ref.Confidence, def.DefaultConfidence),
		Impact:      overrideLevel(ref.Impact, def.DefaultImpact),
	}, nil
}
