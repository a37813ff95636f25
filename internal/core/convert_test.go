package core

import (
	"strings"
	"testing"

	"github.com/valter-silva-au/foresight/pkg/models"
)

func conversionScenario() *models.AIScenario {
	return &models.AIScenario{
		ID:    "inline-takeover",
		Title: "Inline Takeover",
		Parameters: []models.ScenarioParameter{
			{
				ID:          "tension",
				Name:        "AI Race Tension", // alias of the repository definition
				Description: "Scenario-specific description",
				Unit:        "tension index",
				Data:        []models.DataPoint{{Date: "2026-06", Value: 100}},
			},
			{
				ID:   "unknown-param",
				Name: "Completely Novel Parameter",
				Data: []models.DataPoint{{Date: "2026-01", Value: 1}},
			},
		},
		Milestones: []models.Milestone{
			{
				ID: "m1", Date: "2025-11", Title: "AGI Achieved",
				Description:  "Artificial General Intelligence capability achieved",
				Significance: models.LevelHigh,
			},
			{
				ID: "m2", Date: "2026-06", Title: "Unknown Event",
				Significance: models.LevelMedium,
			},
		},
		Tags: []string{"takeover"},
	}
}

func conversionStore() Store {
	return NewStore(
		[]models.ParameterDefinition{
			{
				RepositoryItem: models.RepositoryItem{
					ID: "geopolitical-tension", Name: "Geopolitical Tension",
					Description: "Level of geopolitical tension and competition over AI development",
					Aliases:     []string{"AI Race Tension"},
				},
				Unit: "tension index", Color: "#dc2626",
			},
		},
		[]models.MilestoneDefinition{
			{
				RepositoryItem: models.RepositoryItem{
					ID: "agi-achieved", Name: "AGI Achieved",
					Description: "Artificial General Intelligence capability achieved",
				},
				Category:            models.MilestoneCapability,
				DefaultSignificance: models.LevelCritical,
			},
		},
		nil,
	)
}

func TestConvertToRepositoryScenario(t *testing.T) {
	scenario := conversionScenario()
	result := ConvertToRepositoryScenario(conversionStore(), scenario, ConvertOptions{CreateOverrides: true})

	rb := result.Scenario
	if rb.ID != "inline-takeover" || rb.Title != "Inline Takeover" {
		t.Fatalf("metadata = %s / %s", rb.ID, rb.Title)
	}

	if len(rb.ParameterRefs) != 1 {
		t.Fatalf("ParameterRefs = %+v, want exactly the matched parameter", rb.ParameterRefs)
	}
	ref := rb.ParameterRefs[0]
	if ref.ParameterID != "geopolitical-tension" {
		t.Errorf("ParameterID = %s", ref.ParameterID)
	}
	if len(ref.Data) != 1 || ref.Data[0].Value != 100 {
		t.Errorf("Data = %+v, want the inline series carried over", ref.Data)
	}
	// The inline name is an alias, not the definition name, so it becomes an
	// override; the matching unit does not.
	if ref.NameOverride != "AI Race Tension" {
		t.Errorf("NameOverride = %q", ref.NameOverride)
	}
	if ref.DescriptionOverride != "Scenario-specific description" {
		t.Errorf("DescriptionOverride = %q", ref.DescriptionOverride)
	}
	if ref.UnitOverride != "" {
		t.Errorf("UnitOverride = %q, want empty for identical unit", ref.UnitOverride)
	}
	if ref.ColorOverride != "" {
		t.Errorf("ColorOverride = %q, want empty when the inline color is unset", ref.ColorOverride)
	}

	if len(rb.MilestoneRefs) != 1 {
		t.Fatalf("MilestoneRefs = %+v", rb.MilestoneRefs)
	}
	mref := rb.MilestoneRefs[0]
	if mref.MilestoneID != "agi-achieved" || mref.Date != "2025-11" || mref.Significance != models.LevelHigh {
		t.Errorf("MilestoneRef = %+v", mref)
	}
	if mref.TitleOverride != "" || mref.DescriptionOverride != "" {
		t.Errorf("identical fields must not become overrides: %+v", mref)
	}

	if len(result.UnmatchedParameters) != 1 || result.UnmatchedParameters[0].ID != "unknown-param" {
		t.Errorf("UnmatchedParameters = %+v", result.UnmatchedParameters)
	}
	if len(result.UnmatchedMilestones) != 1 || result.UnmatchedMilestones[0].ID != "m2" {
		t.Errorf("UnmatchedMilestones = %+v", result.UnmatchedMilestones)
	}
	if len(result.Diagnostics) != 2 {
		t.Fatalf("Diagnostics = %+v, want one per unmatched item", result.Diagnostics)
	}
	for _, d := range result.Diagnostics {
		if d.ScenarioID != "inline-takeover" || !strings.Contains(d.Message, "not found in repository") {
			t.Errorf("diagnostic = %+v", d)
		}
	}

	// The input scenario is advisory-only input and must stay untouched.
	if len(scenario.Parameters) != 2 || len(scenario.Milestones) != 2 {
		t.Error("input scenario was mutated")
	}
}

func TestConvertToRepositoryScenario_WithoutOverrides(t *testing.T) {
	result := ConvertToRepositoryScenario(conversionStore(), conversionScenario(), ConvertOptions{})

	ref := result.Scenario.ParameterRefs[0]
	if ref.NameOverride != "" || ref.DescriptionOverride != "" || ref.UnitOverride != "" {
		t.Fatalf("overrides recorded despite CreateOverrides=false: %+v", ref)
	}
}
