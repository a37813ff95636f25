package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valter-silva-au/foresight/pkg/models"
)

func TestScenarioLoad_SeedsWhenMissing(t *testing.T) {
	loader := NewScenarioLoader(t.TempDir())
	if err := loader.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	scenarios := loader.Scenarios()
	if len(scenarios) != 2 {
		t.Fatalf("len = %d, want the two seed scenarios", len(scenarios))
	}

	kinds := map[string]models.ScenarioKind{}
	for _, s := range scenarios {
		kinds[s.ID()] = s.Kind()
	}
	if kinds["ai-takeover-2027-joshc"] != models.KindRepoBased {
		t.Errorf("takeover seed kind = %s, want repository", kinds["ai-takeover-2027-joshc"])
	}
	if kinds["ai-2027-forecast"] != models.KindInline {
		t.Errorf("forecast seed kind = %s, want inline", kinds["ai-2027-forecast"])
	}
}

func TestScenarioLoad_ReadsDirectorySortedByID(t *testing.T) {
	dir := t.TempDir()
	scenDir := filepath.Join(dir, "scenarios")
	if err := os.MkdirAll(scenDir, 0o755); err != nil {
		t.Fatal(err)
	}

	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(scenDir, name), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	write("zz-file.yaml", "id: alpha\ntitle: Alpha\n")
	write("aa-file.yaml", "id: zulu\ntitle: Zulu\n")
	write("notes.txt", "not a scenario")

	loader := NewScenarioLoader(dir)
	if err := loader.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	scenarios := loader.Scenarios()
	if len(scenarios) != 2 {
		t.Fatalf("len = %d, want 2 (non-YAML files skipped)", len(scenarios))
	}
	// Order follows scenario IDs, not file names.
	if scenarios[0].ID() != "alpha" || scenarios[1].ID() != "zulu" {
		t.Errorf("order = %s, %s; want alpha, zulu", scenarios[0].ID(), scenarios[1].ID())
	}
}

func TestDecodeScenario_ShapeDetection(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want models.ScenarioKind
	}{
		{
			name: "parameter refs mark repository shape",
			yaml: "id: r\nparameter_refs:\n  - parameter_id: alignment-status\n",
			want: models.KindRepoBased,
		},
		{
			name: "milestone refs mark repository shape",
			yaml: "id: r\nmilestone_refs:\n  - milestone_id: agi-achieved\n    date: \"2027-06\"\n",
			want: models.KindRepoBased,
		},
		{
			name: "inline parameters stay inline",
			yaml: "id: i\nparameters:\n  - id: p\n    name: P\n",
			want: models.KindInline,
		},
		{
			name: "bare scenario is inline",
			yaml: "id: i\ntitle: Bare\n",
			want: models.KindInline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := DecodeScenario([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("DecodeScenario() error = %v", err)
			}
			if s.Kind() != tt.want {
				t.Fatalf("Kind() = %s, want %s", s.Kind(), tt.want)
			}
		})
	}
}

func TestDecodeScenario_MissingID(t *testing.T) {
	for _, doc := range []string{"title: No ID\n", "parameter_refs:\n  - parameter_id: x\n"} {
		_, err := DecodeScenario([]byte(doc))
		if err == nil || !strings.Contains(err.Error(), "missing id") {
			t.Fatalf("DecodeScenario(%q) error = %v, want missing id", doc, err)
		}
	}
}

func TestEncodeDecodeScenarioRoundTrip(t *testing.T) {
	inline := &models.AIScenario{
		ID:           "round-trip",
		Title:        "Round Trip",
		ScenarioType: models.TypeModal,
		Parameters: []models.ScenarioParameter{
			{
				ID: "p", Name: "P", Unit: "%",
				Data: []models.DataPoint{{Date: "2026-01", Value: 42.5, Confidence: models.LevelHigh}},
			},
		},
		Outcomes: models.OutcomeList{{
			AlignmentStatus: models.Aligned,
			ControlStatus:   models.Controlled,
			HumanOutcome:    models.OutcomeGood,
		}},
		Tags: []string{"test"},
	}

	data, err := EncodeScenario(models.InlineScenario(inline))
	if err != nil {
		t.Fatalf("EncodeScenario() error = %v", err)
	}

	decoded, err := DecodeScenario(data)
	if err != nil {
		t.Fatalf("DecodeScenario() error = %v", err)
	}
	if decoded.Kind() != models.KindInline {
		t.Fatalf("Kind() = %s, want inline", decoded.Kind())
	}
	got := decoded.Inline
	if got.ID != inline.ID || got.Title != inline.Title || got.ScenarioType != inline.ScenarioType {
		t.Errorf("metadata = %+v", got)
	}
	if len(got.Parameters) != 1 || got.Parameters[0].Data[0].Value != 42.5 {
		t.Errorf("parameters = %+v", got.Parameters)
	}
	if len(got.Outcomes) != 1 || got.Outcomes[0].HumanOutcome != models.OutcomeGood {
		t.Errorf("outcomes = %+v", got.Outcomes)
	}
}

func TestEncodeScenario_Empty(t *testing.T) {
	if _, err := EncodeScenario(models.Scenario{}); err == nil {
		t.Fatal("EncodeScenario(empty) expected error")
	}
}

func TestOutcomeList_AcceptsSingleMapping(t *testing.T) {
	doc := `id: single-outcome
outcomes:
  alignment_status: misaligned
  control_status: uncontrolled
  human_outcome: extinction
`
	s, err := DecodeScenario([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeScenario() error = %v", err)
	}
	outcomes := s.Inline.Outcomes
	if len(outcomes) != 1 || outcomes[0].HumanOutcome != models.OutcomeExtinction {
		t.Fatalf("Outcomes = %+v, want single extinction outcome", outcomes)
	}
}

func TestWriteScenario(t *testing.T) {
	dir := t.TempDir()
	inline := &models.AIScenario{ID: "written", Title: "Written"}

	path, err := WriteScenario(dir, models.InlineScenario(inline))
	if err != nil {
		t.Fatalf("WriteScenario() error = %v", err)
	}
	if want := filepath.Join(dir, "scenarios", "written.yaml"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	loader := NewScenarioLoader(dir)
	if err := loader.Load(); err != nil {
		t.Fatalf("Load() after write error = %v", err)
	}
	scenarios := loader.Scenarios()
	if len(scenarios) != 1 || scenarios[0].ID() != "written" || scenarios[0].Title() != "Written" {
		t.Fatalf("Scenarios() = %+v", scenarios)
	}
}

func TestWriteScenario_MissingID(t *testing.T) {
	if _, err := WriteScenario(t.TempDir(), models.InlineScenario(&models.AIScenario{})); err == nil {
		t.Fatal("WriteScenario() expected error for missing id")
	}
}
