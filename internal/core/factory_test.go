package core

import (
	"strings"
	"testing"

	"github.com/valter-silva-au/foresight/pkg/models"
)

func factoryStore() Store {
	return NewStore(
		[]models.ParameterDefinition{
			{
				RepositoryItem: models.RepositoryItem{
					ID: "ai-capability-multiplier", Name: "AI Capability Multiplier",
					Description: "How much faster AI systems perform cognitive tasks",
					Tags:        []string{"capability"},
					Aliases:     []string{"AI R&D Progress Multiplier"},
				},
				Unit: "x faster", Category: models.ParamCapability,
			},
		},
		[]models.MilestoneDefinition{
			{
				RepositoryItem: models.RepositoryItem{
					ID: "agi-achieved", Name: "AGI Achieved",
					Description: "Artificial General Intelligence capability achieved",
					Tags:        []string{"capability"},
				},
				Category:            models.MilestoneCapability,
				DefaultSignificance: models.LevelCritical,
			},
		},
		nil,
	)
}

func TestFindOrCreateParameter(t *testing.T) {
	factory := NewFactory(factoryStore(), FindOrCreateOptions{})

	tests := []struct {
		name      string
		query     ParameterQuery
		wantNew   bool
		wantID    string
		msgSubstr string
	}{
		{
			name:      "exact name adopts existing",
			query:     ParameterQuery{Name: "AI Capability Multiplier"},
			wantNew:   false,
			wantID:    "ai-capability-multiplier",
			msgSubstr: "Found existing parameter",
		},
		{
			name:      "alias adopts existing",
			query:     ParameterQuery{Name: "ai r&d progress multiplier"},
			wantNew:   false,
			wantID:    "ai-capability-multiplier",
			msgSubstr: "Found existing parameter",
		},
		{
			name:      "near-duplicate recommends existing",
			query:     ParameterQuery{Name: "AI Capability Multipliers"},
			wantNew:   false,
			wantID:    "ai-capability-multiplier",
			msgSubstr: "very similar",
		},
		{
			name:      "unrelated name creates a template",
			query:     ParameterQuery{Name: "Ocean Temperature Anomaly", Unit: "°C"},
			wantNew:   true,
			wantID:    "ocean-temperature-anomaly",
			msgSubstr: "No similar parameters found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := factory.FindOrCreateParameter(tt.query)
			if result.IsNew != tt.wantNew {
				t.Fatalf("IsNew = %v, want %v (message: %s)", result.IsNew, tt.wantNew, result.Message)
			}
			if result.Item.ID != tt.wantID {
				t.Errorf("Item.ID = %s, want %s", result.Item.ID, tt.wantID)
			}
			if !strings.Contains(result.Message, tt.msgSubstr) {
				t.Errorf("Message = %q, want substring %q", result.Message, tt.msgSubstr)
			}
		})
	}
}

func TestFindOrCreateParameter_Template(t *testing.T) {
	factory := NewFactory(factoryStore(), FindOrCreateOptions{})

	result := factory.FindOrCreateParameter(ParameterQuery{
		Name:        "Ocean Temperature Anomaly",
		Description: "Deviation from the baseline sea surface temperature",
		Unit:        "°C",
	})
	if !result.IsNew {
		t.Fatalf("IsNew = false, message %s", result.Message)
	}

	got := result.Item
	if got.ID != "ocean-temperature-anomaly" {
		t.Errorf("slug = %s", got.ID)
	}
	if got.Unit != "°C" || got.Category != models.ParamOther {
		t.Errorf("template = %+v", got)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "uncategorized" {
		t.Errorf("Tags = %v, want the uncategorized default", got.Tags)
	}
}

func TestFindOrCreateMilestone(t *testing.T) {
	factory := NewFactory(factoryStore(), FindOrCreateOptions{})

	existing := factory.FindOrCreateMilestone(MilestoneQuery{Name: "AGI Achieved"})
	if existing.IsNew || existing.Item.ID != "agi-achieved" {
		t.Fatalf("existing milestone = %+v", existing)
	}

	fresh := factory.FindOrCreateMilestone(MilestoneQuery{Name: "First Orbital Data Center"})
	if !fresh.IsNew {
		t.Fatalf("IsNew = false, message %s", fresh.Message)
	}
	if fresh.Item.ID != "first-orbital-data-center" {
		t.Errorf("slug = %s", fresh.Item.ID)
	}
	if fresh.Item.DefaultSignificance != models.LevelMedium || fresh.Item.Category != models.MilestoneOther {
		t.Errorf("template = %+v", fresh.Item)
	}
}

func TestFindOrCreateOptions_Thresholds(t *testing.T) {
	// With the very-similar bar raised, a near-duplicate falls back to a
	// template with candidates attached.
	factory := NewFactory(factoryStore(), FindOrCreateOptions{
		SearchThreshold:      0.6,
		VerySimilarThreshold: 0.999,
	})

	result := factory.FindOrCreateParameter(ParameterQuery{Name: "AI Capability Multipliers"})
	if !result.IsNew {
		t.Fatalf("IsNew = false, want new template under strict threshold")
	}
	if len(result.SimilarItems) == 0 {
		t.Fatal("SimilarItems empty, want review candidates")
	}
	if !strings.Contains(result.Message, "review before creating") {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AI Capability Multiplier", "ai-capability-multiplier"},
		{"  Spaces  Everywhere  ", "spaces-everywhere"},
		{"Non-ASCII: naïve café", "non-ascii-na-ve-caf"},
		{"---", ""},
	}

	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAnalyzeParameters(t *testing.T) {
	factory := NewFactory(factoryStore(), FindOrCreateOptions{})

	analysis := factory.AnalyzeParameters([]ParameterQuery{
		{Name: "AI Capability Multiplier"},
		{Name: "Ocean Temperature Anomaly"},
	})

	if len(analysis.Matched) != 1 || analysis.Matched[0].Match.ID != "ai-capability-multiplier" {
		t.Errorf("Matched = %+v", analysis.Matched)
	}
	if len(analysis.New) != 1 || analysis.New[0] != "Ocean Temperature Anomaly" {
		t.Errorf("New = %+v", analysis.New)
	}
	if len(analysis.Similar) != 0 {
		t.Errorf("Similar = %+v, want empty", analysis.Similar)
	}
}
