package core

import (
	"strings"
	"testing"

	"github.com/valter-silva-au/foresight/pkg/models"
)

func registryFixture(t *testing.T) *Registry {
	t.Helper()

	inline := &models.AIScenario{
		ID:           "inline-forecast",
		Title:        "Inline Forecast",
		ScenarioType: models.TypeModal,
		Parameters: []models.ScenarioParameter{
			{
				ID: "local-tension", Name: "Geopolitical Tension", Unit: "tension index",
				Data: []models.DataPoint{{Date: "2026-06", Value: 60}},
			},
			{
				ID: "local-rd", Name: "AI R&D Progress Multiplier", Unit: "x faster",
				Data: []models.DataPoint{{Date: "2026-06", Value: 2}},
			},
		},
		Assumptions: []models.Assumption{
			{ID: "in-1", Category: "technical", Description: "Agents automate research"},
			{ID: "in-2", Category: "made-up-category", Description: "Unclassifiable premise"},
		},
		Tags: []string{"forecast", "modal"},
	}

	repoBased := &models.RepositoryBasedScenario{
		ID:           "repo-takeover",
		Title:        "Repository Takeover",
		ScenarioType: models.TypeWorstCase,
		ParameterRefs: []models.ParameterReference{
			{
				ParameterID:  "alignment-status",
				NameOverride: "Geopolitical Tension", // collides with the inline name on purpose
				Data:         []models.DataPoint{{Date: "2026-01", Value: 10}},
			},
		},
		MilestoneRefs: []models.MilestoneReference{
			{MilestoneID: "agi-achieved", Date: "2025-11"},
		},
		AssumptionRefs: []models.AssumptionReference{
			{AssumptionID: "us-china-ai-race"},
		},
		Tags: []string{"takeover", "worst-case"},
	}

	normalizer := NewNormalizer(NewResolver(testStore()))
	registry, err := NewRegistry(normalizer, []models.Scenario{
		models.InlineScenario(inline),
		models.RepoScenario(repoBased),
	})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return registry
}

func TestNewRegistry_DuplicateID(t *testing.T) {
	normalizer := NewNormalizer(NewResolver(testStore()))
	a := &models.AIScenario{ID: "same"}
	b := &models.AIScenario{ID: "same"}

	_, err := NewRegistry(normalizer, []models.Scenario{
		models.InlineScenario(a),
		models.InlineScenario(b),
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate scenario id") {
		t.Fatalf("NewRegistry() error = %v, want duplicate id error", err)
	}
}

func TestNewRegistry_DanglingReferenceFails(t *testing.T) {
	normalizer := NewNormalizer(NewResolver(testStore()))
	broken := &models.RepositoryBasedScenario{
		ID:            "broken",
		ParameterRefs: []models.ParameterReference{{ParameterID: "missing"}},
	}

	_, err := NewRegistry(normalizer, []models.Scenario{models.RepoScenario(broken)})
	if err == nil || !IsNotFound(err) {
		t.Fatalf("NewRegistry() error = %v, want a not-found error", err)
	}
}

func TestRegistryLookups(t *testing.T) {
	registry := registryFixture(t)

	if got := registry.Scenarios(); len(got) != 2 || got[0].ID != "inline-forecast" {
		t.Fatalf("Scenarios() = %v, want registration order", got)
	}

	s, ok := registry.ScenarioByID("repo-takeover")
	if !ok || s.Title != "Repository Takeover" {
		t.Fatalf("ScenarioByID() = %+v, %v", s, ok)
	}
	if _, ok := registry.ScenarioByID("nope"); ok {
		t.Error("ScenarioByID(nope) reported found")
	}

	if got := registry.ScenariosByTag("forecast"); len(got) != 1 || got[0].ID != "inline-forecast" {
		t.Errorf("ScenariosByTag(forecast) = %v", got)
	}
	if got := registry.ScenariosByType(models.TypeWorstCase); len(got) != 1 || got[0].ID != "repo-takeover" {
		t.Errorf("ScenariosByType(worst-case) = %v", got)
	}

	wantTags := []string{"forecast", "modal", "takeover", "worst-case"}
	gotTags := registry.AllTags()
	if len(gotTags) != len(wantTags) {
		t.Fatalf("AllTags() = %v, want %v", gotTags, wantTags)
	}
	for i := range wantTags {
		if gotTags[i] != wantTags[i] {
			t.Fatalf("AllTags() = %v, want %v", gotTags, wantTags)
		}
	}
}

func TestRegistryParameterData(t *testing.T) {
	registry := registryFixture(t)

	got := registry.ParameterData("local-tension")
	if len(got) != 1 || got[0].Scenario.ID != "inline-forecast" || got[0].Parameter.Data[0].Value != 60 {
		t.Fatalf("ParameterData(local-tension) = %+v", got)
	}

	// Resolved references keep the definition's ID.
	got = registry.ParameterData("alignment-status")
	if len(got) != 1 || got[0].Scenario.ID != "repo-takeover" {
		t.Fatalf("ParameterData(alignment-status) = %+v", got)
	}

	if got := registry.ParameterData("unknown"); len(got) != 0 {
		t.Fatalf("ParameterData(unknown) = %+v, want empty", got)
	}
}

func TestAggregateParameters(t *testing.T) {
	registry := registryFixture(t)

	got := registry.AggregateParameters()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(got), got)
	}

	// Grouping is by display name: the repository-based scenario renames its
	// parameter to match the inline one, so both count toward one group.
	first := got[0]
	if first.Name != "Geopolitical Tension" || first.ScenarioCount != 2 {
		t.Fatalf("first group = %+v, want Geopolitical Tension across 2 scenarios", first)
	}
	if len(first.ParameterIDs) != 2 {
		t.Fatalf("ParameterIDs = %+v", first.ParameterIDs)
	}
	if first.ParameterIDs[0] != (ParameterUsage{ScenarioID: "inline-forecast", ParameterID: "local-tension"}) {
		t.Errorf("ParameterIDs[0] = %+v", first.ParameterIDs[0])
	}
	if first.ParameterIDs[1] != (ParameterUsage{ScenarioID: "repo-takeover", ParameterID: "alignment-status"}) {
		t.Errorf("ParameterIDs[1] = %+v", first.ParameterIDs[1])
	}

	if got[1].Name != "AI R&D Progress Multiplier" || got[1].ScenarioCount != 1 {
		t.Errorf("second group = %+v", got[1])
	}
}

func TestScenarioAssumptions(t *testing.T) {
	registry := registryFixture(t)

	// Inline assumptions and resolved references both appear, inline first.
	got := registry.ScenarioAssumptions("repo-takeover")
	if len(got) != 1 || got[0].ID != "us-china-ai-race" {
		t.Fatalf("ScenarioAssumptions(repo-takeover) = %+v", got)
	}
	if got[0].Confidence != models.LevelHigh || got[0].Impact != models.LevelCritical {
		t.Errorf("resolved assumption defaults = %+v", got[0])
	}

	got = registry.ScenarioAssumptions("inline-forecast")
	if len(got) != 2 || got[0].ID != "in-1" {
		t.Fatalf("ScenarioAssumptions(inline-forecast) = %+v", got)
	}
}

func TestAggregateAssumptions(t *testing.T) {
	registry := registryFixture(t)

	got, diagnostics := registry.AggregateAssumptions()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3: %+v", len(got), got)
	}
	for _, agg := range got {
		if agg.ScenarioCount != 1 || len(agg.ScenarioIDs) != 1 {
			t.Errorf("group %+v, want single-scenario counts", agg)
		}
	}

	// The invalid category is reported but the assumption is kept.
	if len(diagnostics) != 1 {
		t.Fatalf("diagnostics = %+v, want exactly one", diagnostics)
	}
	d := diagnostics[0]
	if d.ScenarioID != "inline-forecast" || !strings.Contains(d.Message, "made-up-category") {
		t.Errorf("diagnostic = %+v", d)
	}
	if !strings.Contains(d.String(), "[inline-forecast]") {
		t.Errorf("Diagnostic.String() = %q", d.String())
	}

	kept := false
	for _, agg := range got {
		if agg.Category == "made-up-category" {
			kept = true
		}
	}
	if !kept {
		t.Error("assumption with unknown category was dropped from aggregation")
	}
}
