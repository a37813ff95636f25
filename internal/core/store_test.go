package core

import (
	"testing"

	"github.com/valter-silva-au/foresight/pkg/models"
)

func TestStoreLookups(t *testing.T) {
	store := NewStore(
		[]models.ParameterDefinition{
			{
				RepositoryItem: models.RepositoryItem{
					ID: "geopolitical-tension", Name: "Geopolitical Tension",
					Tags:    []string{"geopolitical", "competition"},
					Aliases: []string{"AI Race Tension", "Global Competition"},
				},
				Category: models.ParamGeopolitical,
			},
			{
				RepositoryItem: models.RepositoryItem{
					ID: "us-robot-count", Name: "US Robot Count",
					Tags: []string{"deployment", "robots"},
				},
				Category: models.ParamOther,
			},
		},
		[]models.MilestoneDefinition{
			{
				RepositoryItem: models.RepositoryItem{
					ID: "agi-achieved", Name: "AGI Achieved",
					Tags:    []string{"capability"},
					Aliases: []string{"AGI Breakthrough"},
				},
				Category: models.MilestoneCapability,
			},
		},
		[]models.AssumptionDefinition{
			{
				RepositoryItem: models.RepositoryItem{
					ID: "us-china-ai-race", Name: "US-China AI Race",
					Tags: []string{"competition"},
				},
				Category:          "geopolitical",
				RelatedParameters: []string{"geopolitical-tension"},
			},
		},
	)

	t.Run("parameter by id", func(t *testing.T) {
		p, ok := store.Parameter("geopolitical-tension")
		if !ok || p.Name != "Geopolitical Tension" {
			t.Fatalf("Parameter() = %+v, %v", p, ok)
		}
		if _, ok := store.Parameter("nope"); ok {
			t.Fatal("Parameter(nope) reported found")
		}
	})

	t.Run("find by name is case-insensitive", func(t *testing.T) {
		p, ok := store.FindParameterByName("  geopolitical TENSION ")
		if !ok || p.ID != "geopolitical-tension" {
			t.Fatalf("FindParameterByName() = %+v, %v", p, ok)
		}
	})

	t.Run("find by alias", func(t *testing.T) {
		p, ok := store.FindParameterByName("AI Race Tension")
		if !ok || p.ID != "geopolitical-tension" {
			t.Fatalf("FindParameterByName(alias) = %+v, %v", p, ok)
		}
		m, ok := store.FindMilestoneByName("agi breakthrough")
		if !ok || m.ID != "agi-achieved" {
			t.Fatalf("FindMilestoneByName(alias) = %+v, %v", m, ok)
		}
	})

	t.Run("by category and tag", func(t *testing.T) {
		if got := store.ParametersByCategory(models.ParamGeopolitical); len(got) != 1 || got[0].ID != "geopolitical-tension" {
			t.Errorf("ParametersByCategory() = %+v", got)
		}
		if got := store.ParametersByTag("robots"); len(got) != 1 || got[0].ID != "us-robot-count" {
			t.Errorf("ParametersByTag() = %+v", got)
		}
		if got := store.AssumptionsByCategory("geopolitical"); len(got) != 1 {
			t.Errorf("AssumptionsByCategory() = %+v", got)
		}
		if got := store.AssumptionsByCategory("technical"); len(got) != 0 {
			t.Errorf("AssumptionsByCategory(technical) = %+v, want empty", got)
		}
	})

	t.Run("assumptions related to a parameter", func(t *testing.T) {
		got := store.AssumptionsForParameter("geopolitical-tension")
		if len(got) != 1 || got[0].ID != "us-china-ai-race" {
			t.Fatalf("AssumptionsForParameter() = %+v", got)
		}
		if got := store.AssumptionsForParameter("us-robot-count"); len(got) != 0 {
			t.Fatalf("AssumptionsForParameter(unrelated) = %+v, want empty", got)
		}
	})
}
