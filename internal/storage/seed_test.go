package storage

import (
	"testing"

	"github.com/valter-silva-au/foresight/internal/core"
	"github.com/valter-silva-au/foresight/pkg/models"
)

// The seed data is the out-of-the-box experience: every reference must
// resolve and every category must be legal, or the tool breaks before the
// user has authored anything.

func TestSeedCatalogIsValid(t *testing.T) {
	catalog := NewCatalogManager(t.TempDir())
	if err := catalog.Load(); err != nil {
		t.Fatalf("seed catalog failed validation: %v", err)
	}

	for _, a := range catalog.Assumptions() {
		if !core.ValidCategory(a.Category) {
			t.Errorf("seed assumption %s has unknown category %q", a.ID, a.Category)
		}
	}
}

func TestSeedScenariosResolveAgainstSeedCatalog(t *testing.T) {
	store := core.NewStore(SeedParameters(), SeedMilestones(), SeedAssumptions())
	normalizer := core.NewNormalizer(core.NewResolver(store))

	registry, err := core.NewRegistry(normalizer, SeedScenarios())
	if err != nil {
		t.Fatalf("seed scenarios failed to build a registry: %v", err)
	}

	if len(registry.Scenarios()) != 2 {
		t.Fatalf("len(Scenarios()) = %d, want 2", len(registry.Scenarios()))
	}

	takeover, ok := registry.ScenarioByID("ai-takeover-2027-joshc")
	if !ok {
		t.Fatal("takeover seed missing from registry")
	}
	if len(takeover.Parameters) != 7 || len(takeover.Milestones) != 8 {
		t.Errorf("takeover resolved to %d parameters and %d milestones",
			len(takeover.Parameters), len(takeover.Milestones))
	}
	if got := registry.ScenarioAssumptions(takeover.ID); len(got) != 5 {
		t.Errorf("takeover assumptions = %d, want 5 resolved refs", len(got))
	}

	forecast, ok := registry.ScenarioByID("ai-2027-forecast")
	if !ok {
		t.Fatal("forecast seed missing from registry")
	}
	if !forecast.HasBranching || len(forecast.Branches) != 1 || len(forecast.Branches[0].Paths) != 2 {
		t.Errorf("forecast branching shape = %+v", forecast.Branches)
	}

	// Both seeds track geopolitical tension under the same display name, so
	// aggregation groups them.
	found := false
	for _, agg := range registry.AggregateParameters() {
		if agg.Name == "Geopolitical Tension" {
			found = true
			if agg.ScenarioCount != 2 {
				t.Errorf("Geopolitical Tension ScenarioCount = %d, want 2", agg.ScenarioCount)
			}
		}
	}
	if !found {
		t.Error("Geopolitical Tension missing from aggregation")
	}

	if _, diagnostics := registry.AggregateAssumptions(); len(diagnostics) != 0 {
		t.Errorf("seed data produced diagnostics: %v", diagnostics)
	}
}

func TestSeedAliasLookup(t *testing.T) {
	store := core.NewStore(SeedParameters(), SeedMilestones(), SeedAssumptions())

	milestone, ok := store.FindMilestoneByName("Superintelligence Achieved")
	if !ok {
		t.Fatal("alias lookup found nothing")
	}
	if milestone.ID != "asi-achieved" {
		t.Errorf("alias resolved to %s, want asi-achieved", milestone.ID)
	}
}

func TestSeedColorOverrideWins(t *testing.T) {
	store := core.NewStore(SeedParameters(), SeedMilestones(), SeedAssumptions())
	resolver := core.NewResolver(store)

	resolved, err := resolver.ResolveParameter(models.ParameterReference{
		ParameterID:   "ai-capability-multiplier",
		ColorOverride: "#f59e0b",
		Data:          []models.DataPoint{{Date: "2026-01", Value: 100}},
	})
	if err != nil {
		t.Fatalf("ResolveParameter() error = %v", err)
	}
	if resolved.Color != "#f59e0b" {
		t.Errorf("Color = %s, want the override", resolved.Color)
	}
	if resolved.Name != "AI Capability Multiplier" || resolved.Unit != "x faster" {
		t.Errorf("definition fields not filled: name %q unit %q", resolved.Name, resolved.Unit)
	}
}

func TestSeedBranchingScenarioExpands(t *testing.T) {
	store := core.NewStore(SeedParameters(), SeedMilestones(), SeedAssumptions())
	normalizer := core.NewNormalizer(core.NewResolver(store))
	registry, err := core.NewRegistry(normalizer, SeedScenarios())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	forecast, _ := registry.ScenarioByID("ai-2027-forecast")
	expander := core.NewExpander(nil, "")

	var multiplier *core.ExpandedParameter
	for _, p := range forecast.Parameters {
		if p.ID == "ai-rd-multiplier" {
			expanded := expander.ExpandParameter(forecast, p)
			multiplier = &expanded
		}
	}
	if multiplier == nil {
		t.Fatal("ai-rd-multiplier missing from forecast seed")
	}

	if len(multiplier.Paths) != 2 {
		t.Fatalf("len(Paths) = %d, want one per branch path", len(multiplier.Paths))
	}
	for _, path := range multiplier.Paths {
		if len(path.Data) != 7 {
			t.Errorf("path %s has %d points, want 5 shared + 2 divergent", path.PathID, len(path.Data))
		}
		for i := 1; i < len(path.Data); i++ {
			if path.Data[i].Date < path.Data[i-1].Date {
				t.Errorf("path %s data out of order at %d", path.PathID, i)
			}
		}
	}
}
