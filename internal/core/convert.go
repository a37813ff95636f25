package core

import (
	"fmt"

	"github.com/valter-silva-au/foresight/pkg/models"
)

// ConvertOptions tunes inline-to-repository conversion.
type ConvertOptions struct {
	// CreateOverrides records per-field overrides on references whose inline
	// values differ from the matched definition. Without it the definition's
	// values win silently on re-resolution.
	CreateOverrides bool
}

// ConversionResult is the outcome of converting an inline scenario to
// repository-referencing form. Unmatched items are reported, never dropped
// silently: the caller decides whether to add them to the repository or keep
// the scenario inline.
type ConversionResult struct {
	Scenario            *models.RepositoryBasedScenario
	Diagnostics         []Diagnostic
	UnmatchedParameters []models.ScenarioParameter
	UnmatchedMilestones []models.Milestone
}

// ConvertToRepositoryScenario rewrites an inline scenario against the
// repository by matching parameters and milestones by name or alias. It is an
// authoring aid: the result is advisory and the input is never mutated.
func ConvertToRepositoryScenario(store Store, scenario *models.AIScenario, options ConvertOptions) ConversionResult {
	result := ConversionResult{}

	var parameterRefs []models.ParameterReference
	for _, param := range scenario.Parameters {
		match, ok := store.FindParameterByName(param.Name)
		if !ok {
			result.UnmatchedParameters = append(result.UnmatchedParameters, param)
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				ScenarioID: scenario.ID,
				Subject:    "parameter " + param.ID,
				Message:    fmt.Sprintf("%q not found in repository; add it or keep the parameter inline", param.Name),
			})
			continue
		}

		ref := models.ParameterReference{
			ParameterID: match.ID,
			Data:        param.Data,
		}
		if options.CreateOverrides {
			if param.Name != match.Name {
				ref.NameOverride = param.Name
			}
			if param.Description != match.Description {
				ref.DescriptionOverride = param.Description
			}
			if param.Unit != match.Unit {
				ref.UnitOverride = param.Unit
			}
			if param.Color != "" && param.Color != match.Color {
				ref.ColorOverride = param.Color
			}
		}
		parameterRefs = append(parameterRefs, ref)
	}

	var milestoneRefs []models.MilestoneReference
	for _, milestone := range scenario.Milestones {
		match, ok := store.FindMilestoneByName(milestone.Title)
		if !ok {
			result.UnmatchedMilestones = append(result.UnmatchedMilestones, milestone)
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				ScenarioID: scenario.ID,
				Subject:    "milestone " + milestone.ID,
				Message:    fmt.Sprintf("%q not found in repository; add it or keep the milestone inline", milestone.Title),
			})
			continue
		}

		ref := models.MilestoneReference{
			MilestoneID:  match.ID,
			Date:         milestone.Date,
			Significance: milestone.Significance,
		}
		if options.CreateOverrides {
			if milestone.Title != match.Name {
				ref.TitleOverride = milestone.Title
			}
			if milestone.Description != match.Description {
				ref.DescriptionOverride = milestone.Description
			}
		}
		milestoneRefs = append(milestoneRefs, ref)
	}

	result.Scenario = &models.RepositoryBasedScenario{
		ID:             scenario.ID,
		Title:          scenario.Title,
		Author:         scenario.Author,
		Source:         scenario.Source,
		SourceURL:      scenario.SourceURL,
		DatePublished:  scenario.DatePublished,
		Summary:        scenario.Summary,
		ScenarioType:   scenario.ScenarioType,
		TimelineStart:  scenario.TimelineStart,
		TimelineEnd:    scenario.TimelineEnd,
		Periods:        scenario.Periods,
		ParameterRefs:  parameterRefs,
		MilestoneRefs:  milestoneRefs,
		HasBranching:   scenario.HasBranching,
		Branches:       scenario.Branches,
		Assumptions:    scenario.Assumptions,
		AssumptionRefs: scenario.AssumptionRefs,
		OpenQuestions:  scenario.OpenQuestions,
		Outcomes:       scenario.Outcomes,
		Tags:           scenario.Tags,
	}
	return result
}
