package core

import (
	"testing"

	"github.com/valter-silva-au/foresight/pkg/models"
)

func branchingScenario() *models.AIScenario {
	return &models.AIScenario{
		ID:           "forecast",
		Title:        "Race and Slowdown",
		HasBranching: true,
		Parameters: []models.ScenarioParameter{
			{
				ID:   "rd-multiplier",
				Name: "AI R&D Progress Multiplier",
				Data: []models.DataPoint{
					{Date: "2026-01", Value: 1.5},
					{Date: "2027-10", Value: 50},
					{Date: "2027-12", Value: 75, Label: "stray post-branch point"},
				},
			},
		},
		Branches: []models.Branch{
			{
				ID:         "oct-2027",
				BranchDate: "2027-10",
				Paths: []models.BranchPath{
					{
						ID:    "race",
						Name:  "Race Ending",
						Color: "#ef4444",
						Parameters: []models.ScenarioParameter{
							{
								ID: "rd-multiplier",
								Data: []models.DataPoint{
									{Date: "2027-09", Value: 999, Label: "pre-branch point must be dropped"},
									{Date: "2028-06", Value: 1000},
									{Date: "2027-12", Value: 300},
								},
							},
						},
					},
					{
						ID:   "slowdown",
						Name: "Slowdown Ending",
						Parameters: []models.ScenarioParameter{
							{
								ID: "rd-multiplier",
								Data: []models.DataPoint{
									{Date: "2027-12", Value: 30},
									{Date: "2028-06", Value: 60},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestExpandParameter_Branching(t *testing.T) {
	expander := NewExpander([]string{"#111111", "#222222"}, "")
	scenario := branchingScenario()

	expanded := expander.ExpandParameter(scenario, scenario.Parameters[0])

	if expanded.ParameterID != "rd-multiplier" || expanded.ParameterName != "AI R&D Progress Multiplier" {
		t.Fatalf("parameter identity = %s / %s", expanded.ParameterID, expanded.ParameterName)
	}
	if len(expanded.Paths) != 2 {
		t.Fatalf("len(Paths) = %d, want 2", len(expanded.Paths))
	}

	race := expanded.Paths[0]
	if race.PathID != "forecast-race" {
		t.Errorf("PathID = %s, want forecast-race", race.PathID)
	}
	if race.PathName != "Race and Slowdown: Race Ending" {
		t.Errorf("PathName = %s", race.PathName)
	}
	if race.Color != "#ef4444" {
		t.Errorf("path color %s, want the path's own #ef4444", race.Color)
	}

	// History up to the branch date, path future strictly after, sorted.
	wantRace := []models.DataPoint{
		{Date: "2026-01", Value: 1.5},
		{Date: "2027-10", Value: 50},
		{Date: "2027-12", Value: 300},
		{Date: "2028-06", Value: 1000},
	}
	if len(race.Data) != len(wantRace) {
		t.Fatalf("race data = %+v, want %+v", race.Data, wantRace)
	}
	for i := range wantRace {
		if race.Data[i].Date != wantRace[i].Date || race.Data[i].Value != wantRace[i].Value {
			t.Errorf("race.Data[%d] = %+v, want %+v", i, race.Data[i], wantRace[i])
		}
	}

	slowdown := expanded.Paths[1]
	if slowdown.PathID != "forecast-slowdown" {
		t.Errorf("PathID = %s, want forecast-slowdown", slowdown.PathID)
	}
	// Second path has no color of its own: palette position 1 applies.
	if slowdown.Color != "#222222" {
		t.Errorf("palette color = %s, want #222222", slowdown.Color)
	}
	if len(slowdown.Data) != 4 || slowdown.Data[2].Value != 30 || slowdown.Data[3].Value != 60 {
		t.Errorf("slowdown data = %+v", slowdown.Data)
	}
}

func TestExpandParameter_NonBranching(t *testing.T) {
	expander := NewExpander(nil, "")
	scenario := &models.AIScenario{
		ID:    "takeover",
		Title: "Takeover",
		Parameters: []models.ScenarioParameter{
			{
				ID:    "pop",
				Name:  "Global Population",
				Color: "#7c2d12",
				Data:  []models.DataPoint{{Date: "2026-12", Value: 20}},
			},
		},
	}

	expanded := expander.ExpandParameter(scenario, scenario.Parameters[0])
	if len(expanded.Paths) != 1 {
		t.Fatalf("len(Paths) = %d, want 1", len(expanded.Paths))
	}
	path := expanded.Paths[0]
	if path.PathID != "takeover" || path.PathName != "Takeover" {
		t.Errorf("path identity = %s / %s", path.PathID, path.PathName)
	}
	if path.Color != "#7c2d12" {
		t.Errorf("color = %s, want the parameter's own", path.Color)
	}
	if len(path.Data) != 1 || path.Data[0].Value != 20 {
		t.Errorf("data = %+v", path.Data)
	}
}

func TestExpandParameter_ParameterAbsentFromBranch(t *testing.T) {
	expander := NewExpander(nil, "#abcdef")
	scenario := branchingScenario()
	other := models.ScenarioParameter{
		ID:   "tension",
		Name: "Geopolitical Tension",
		Data: []models.DataPoint{{Date: "2027-04", Value: 75}},
	}

	// No path declares this parameter, so branching does not apply to it.
	expanded := expander.ExpandParameter(scenario, other)
	if len(expanded.Paths) != 1 {
		t.Fatalf("len(Paths) = %d, want 1", len(expanded.Paths))
	}
	if expanded.Paths[0].PathID != "forecast" {
		t.Errorf("PathID = %s, want the scenario ID", expanded.Paths[0].PathID)
	}
	if expanded.Paths[0].Color != defaultPathColor {
		t.Errorf("color = %s, want the built-in default", expanded.Paths[0].Color)
	}
}

func TestExpandParameterAtBranch_IndexOutOfRange(t *testing.T) {
	expander := NewExpander(nil, "")
	scenario := branchingScenario()

	expanded := expander.ExpandParameterAtBranch(scenario, scenario.Parameters[0], 5)
	if len(expanded.Paths) != 1 || expanded.Paths[0].PathID != "forecast" {
		t.Fatalf("out-of-range branch index must fall back to a single path, got %+v", expanded.Paths)
	}
}

func TestMergeExpandedParameters(t *testing.T) {
	expander := NewExpander([]string{"#111111", "#222222"}, "")
	scenario := branchingScenario()
	expanded := expander.ExpandParameter(scenario, scenario.Parameters[0])

	other := ExpandedParameter{
		ParameterID:   "rd-multiplier",
		ParameterName: "AI R&D Progress Multiplier",
		Paths: []PathSeries{{
			PathID:   "takeover",
			PathName: "Takeover",
			Color:    "#7c2d12",
			Data: []models.DataPoint{
				{Date: "2025-02", Value: 1},
				{Date: "2026-01", Value: 100},
			},
		}},
	}

	rows, paths := MergeExpandedParameters([]ExpandedParameter{expanded, other})

	if len(paths) != 3 {
		t.Fatalf("len(paths) = %d, want 3", len(paths))
	}
	if paths[0].PathID != "forecast-race" || paths[2].PathID != "takeover" {
		t.Errorf("path order = %v", paths)
	}

	for i := 1; i < len(rows); i++ {
		if rows[i].Date <= rows[i-1].Date {
			t.Fatalf("rows not strictly ascending at %d: %s then %s", i, rows[i-1].Date, rows[i].Date)
		}
	}

	byDate := make(map[string]ChartRow, len(rows))
	for _, row := range rows {
		byDate[row.Date] = row
	}

	// Shared dates carry one column per series holding a point there.
	shared, ok := byDate["2026-01"]
	if !ok {
		t.Fatal("no row for 2026-01")
	}
	if shared.Values["forecast-race"] != 1.5 || shared.Values["forecast-slowdown"] != 1.5 || shared.Values["takeover"] != 100 {
		t.Errorf("row 2026-01 = %+v", shared.Values)
	}

	divergent, ok := byDate["2027-12"]
	if !ok {
		t.Fatal("no row for 2027-12")
	}
	if divergent.Values["forecast-race"] != 300 || divergent.Values["forecast-slowdown"] != 30 {
		t.Errorf("row 2027-12 = %+v", divergent.Values)
	}
	if _, present := divergent.Values["takeover"]; present {
		t.Error("takeover has no point on 2027-12; gap must stay absent, not zero-filled")
	}
}

func TestCreateBranchingChartData(t *testing.T) {
	expander := NewExpander([]string{"#111111", "#222222"}, "")
	scenario := branchingScenario()

	chart := expander.CreateBranchingChartData(scenario, scenario.Parameters[0])

	if chart.BranchDate != "2027-10" {
		t.Errorf("BranchDate = %s, want 2027-10", chart.BranchDate)
	}
	if len(chart.Paths) != 2 || chart.Paths[0].PathID != "race" || chart.Paths[1].PathID != "slowdown" {
		t.Fatalf("Paths = %+v, want raw path IDs", chart.Paths)
	}

	byDate := make(map[string]ChartRow, len(chart.Rows))
	for i, row := range chart.Rows {
		if i > 0 && chart.Rows[i-1].Date >= row.Date {
			t.Fatalf("rows not sorted: %s then %s", chart.Rows[i-1].Date, row.Date)
		}
		byDate[row.Date] = row
	}

	// Shared history fans out into every path column so the chart draws one
	// line up to the split.
	history := byDate["2026-01"]
	if history.Values["race"] != 1.5 || history.Values["slowdown"] != 1.5 {
		t.Errorf("shared history row = %+v", history.Values)
	}

	split := byDate["2027-12"]
	if split.Values["race"] != 300 || split.Values["slowdown"] != 30 {
		t.Errorf("post-branch row = %+v", split.Values)
	}

	if label := chart.Labels["2027-09"]; label != nil {
		t.Errorf("pre-branch path point must be dropped, got label %+v", label)
	}
}

func TestCreateBranchingChartData_NonBranching(t *testing.T) {
	expander := NewExpander(nil, "")
	scenario := &models.AIScenario{
		ID:    "plain",
		Title: "Plain",
		Parameters: []models.ScenarioParameter{
			{
				ID:   "p",
				Name: "Plain Series",
				Data: []models.DataPoint{
					{Date: "2025-01", Value: 1},
					{Date: "2026-01", Value: 2},
				},
			},
		},
	}

	chart := expander.CreateBranchingChartData(scenario, scenario.Parameters[0])
	if len(chart.Paths) != 0 || chart.BranchDate != "" {
		t.Errorf("non-branching chart must carry no paths: %+v", chart)
	}
	if len(chart.Rows) != 2 || chart.Rows[0].Values["value"] != 1 || chart.Rows[1].Values["value"] != 2 {
		t.Errorf("Rows = %+v", chart.Rows)
	}
}

func TestPathColorPrecedence(t *testing.T) {
	expander := NewExpander([]string{"#111111"}, "#999999")

	tests := []struct {
		name     string
		path     models.BranchPath
		position int
		want     string
	}{
		{name: "explicit path color wins", path: models.BranchPath{Color: "#ef4444"}, position: 0, want: "#ef4444"},
		{name: "palette by position", path: models.BranchPath{}, position: 0, want: "#111111"},
		{name: "fallback past palette", path: models.BranchPath{}, position: 1, want: "#999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expander.pathColor(tt.path, tt.position); got != tt.want {
				t.Fatalf("pathColor() = %s, want %s", got, tt.want)
			}
		})
	}
}
