package core

import (
	"fmt"
	"sort"

	"github.com/valter-silva-au/foresight/pkg/models"
)

// defaultPathColor is used when neither the path nor the palette gives one.
const defaultPathColor = "#8b5cf6"

// PathSeries is one chartable line: a branch path (or the whole scenario for
// non-branching input) with its merged history plus path-specific future.
type PathSeries struct {
	PathID   string
	PathName string
	Color    string
	Data     []models.DataPoint
}

// ExpandedParameter is a parameter flattened across branch paths, one series
// per path. Path IDs are composite ("scenarioID-pathID") so series stay
// unique when several scenarios are merged into one comparison.
type ExpandedParameter struct {
	ParameterID   string
	ParameterName string
	Paths         []PathSeries
}

// ChartRow is one row of a chart-ready table: a date plus the value of every
// path that has a point on that date. Paths without a point on the date are
// simply absent; gap handling is the chart's decision.
type ChartRow struct {
	Date   string
	Values map[string]float64
}

// ChartPath describes one series of a merged chart table.
type ChartPath struct {
	PathID   string
	PathName string
	Color    string
}

// Expander flattens branching scenarios into chart-ready series. The palette
// colors branch paths by position; a path's own Color field wins over the
// palette.
type Expander struct {
	palette  []string
	fallback string
}

// NewExpander creates an Expander with the given positional path-color
// palette. A nil palette is valid; paths then rely on their own Color field
// or the fallback. An empty fallback means the built-in default color.
func NewExpander(palette []string, fallback string) *Expander {
	if fallback == "" {
		fallback = defaultPathColor
	}
	return &Expander{palette: palette, fallback: fallback}
}

// pathColor picks a display color for a branch path: the path's explicit
// color, then the configured palette by path position, then the fallback.
func (e *Expander) pathColor(path models.BranchPath, position int) string {
	if path.Color != "" {
		return path.Color
	}
	if position >= 0 && position < len(e.palette) {
		return e.palette[position]
	}
	return e.fallback
}

// branchDeclaresParameter reports whether any path of the branch carries its
// own series for the parameter.
func branchDeclaresParameter(branch models.Branch, parameterID string) bool {
	for _, path := range branch.Paths {
		for _, p := range path.Parameters {
			if p.ID == parameterID {
				return true
			}
		}
	}
	return false
}

func pathParameter(path models.BranchPath, parameterID string) (models.ScenarioParameter, bool) {
	for _, p := range path.Parameters {
		if p.ID == parameterID {
			return p, true
		}
	}
	return models.ScenarioParameter{}, false
}

// sortByDate orders points lexically by date. Dates are ISO-like strings, so
// lexical order is chronological order.
func sortByDate(points []models.DataPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
}

// ExpandParameter flattens the given parameter across the scenario's first
// branch. Multi-branch scenarios are not supported; only branch index 0 is
// consulted. Use ExpandParameterAtBranch to address another branch.
func (e *Expander) ExpandParameter(scenario *models.AIScenario, parameter models.ScenarioParameter) ExpandedParameter {
	return e.ExpandParameterAtBranch(scenario, parameter, 0)
}

// ExpandParameterAtBranch flattens the given parameter across the paths of
// the branch at branchIndex. If the scenario does not branch there, or no
// path of that branch declares the parameter, the result is a single path
// covering the whole scenario with the parameter's own data untouched.
//
// Every emitted path series shares the same history up to and including the
// branch date and diverges strictly after it.
func (e *Expander) ExpandParameterAtBranch(scenario *models.AIScenario, parameter models.ScenarioParameter, branchIndex int) ExpandedParameter {
	branching := scenario.HasBranching &&
		branchIndex >= 0 && branchIndex < len(scenario.Branches) &&
		branchDeclaresParameter(scenario.Branches[branchIndex], parameter.ID)

	if !branching {
		color := parameter.Color
		if color == "" {
			color = defaultPathColor
		}
		return ExpandedParameter{
			ParameterID:   parameter.ID,
			ParameterName: parameter.Name,
			Paths: []PathSeries{{
				PathID:   scenario.ID,
				PathName: scenario.Title,
				Color:    color,
				Data:     parameter.Data,
			}},
		}
	}

	branch := scenario.Branches[branchIndex]
	branchDate := branch.BranchDate

	var baseData []models.DataPoint
	for _, point := range parameter.Data {
		if point.Date <= branchDate {
			baseData = append(baseData, point)
		}
	}

	paths := make([]PathSeries, 0, len(branch.Paths))
	for i, branchPath := range branch.Paths {
		merged := make([]models.DataPoint, 0, len(baseData))
		merged = append(merged, baseData...)

		if pathParam, ok := pathParameter(branchPath, parameter.ID); ok {
			for _, point := range pathParam.Data {
				if point.Date > branchDate {
					merged = append(merged, point)
				}
			}
		}
		sortByDate(merged)

		paths = append(paths, PathSeries{
			PathID:   fmt.Sprintf("%s-%s", scenario.ID, branchPath.ID),
			PathName: fmt.Sprintf("%s: %s", scenario.Title, branchPath.Name),
			Color:    e.pathColor(branchPath, i),
			Data:     merged,
		})
	}

	return ExpandedParameter{
		ParameterID:   parameter.ID,
		ParameterName: parameter.Name,
		Paths:         paths,
	}
}

// MergeExpandedParameters folds many expanded parameters, typically one per
// compared scenario, into a single table with one row per distinct date
// across all inputs and one column per path.
func MergeExpandedParameters(expanded []ExpandedParameter) ([]ChartRow, []ChartPath) {
	dateValues := make(map[string]map[string]float64)
	var paths []ChartPath

	for _, param := range expanded {
		for _, path := range param.Paths {
			paths = append(paths, ChartPath{
				PathID:   path.PathID,
				PathName: path.PathName,
				Color:    path.Color,
			})

			for _, point := range path.Data {
				row, ok := dateValues[point.Date]
				if !ok {
					row = make(map[string]float64)
					dateValues[point.Date] = row
				}
				row[path.PathID] = point.Value
			}
		}
	}

	rows := make([]ChartRow, 0, len(dateValues))
	for date, values := range dateValues {
		rows = append(rows, ChartRow{Date: date, Values: values})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})

	return rows, paths
}

// BranchingChartData is the single-parameter convenience shape for charting
// one scenario's branches: rows keyed by the raw branch path ID and the
// branch date for drawing a divergence marker.
type BranchingChartData struct {
	Rows       []ChartRow
	Labels     map[string]map[string]string // date -> pathID -> label
	Paths      []ChartPath
	BranchDate string
}

// CreateBranchingChartData builds chart rows for a single parameter of a
// single scenario, keyed by raw branch path ID. Shared history before the
// branch date carries every path's column so the chart draws one line that
// splits at the branch point. Non-branching scenarios yield a plain
// single-column table with no paths.
func (e *Expander) CreateBranchingChartData(scenario *models.AIScenario, parameter models.ScenarioParameter) BranchingChartData {
	branching := scenario.HasBranching &&
		len(scenario.Branches) > 0 &&
		branchDeclaresParameter(scenario.Branches[0], parameter.ID)

	if !branching {
		rows := make([]ChartRow, 0, len(parameter.Data))
		for _, point := range parameter.Data {
			rows = append(rows, ChartRow{
				Date:   point.Date,
				Values: map[string]float64{"value": point.Value},
			})
		}
		return BranchingChartData{Rows: rows, Labels: map[string]map[string]string{}}
	}

	branch := scenario.Branches[0]
	branchDate := branch.BranchDate

	dateValues := make(map[string]map[string]float64)
	labels := make(map[string]map[string]string)

	setLabel := func(date, pathID, label string) {
		if label == "" {
			return
		}
		if labels[date] == nil {
			labels[date] = make(map[string]string)
		}
		labels[date][pathID] = label
	}

	// Shared history: every path carries the same value up to the branch date.
	for _, point := range parameter.Data {
		if point.Date > branchDate {
			continue
		}
		row := make(map[string]float64, len(branch.Paths))
		for _, path := range branch.Paths {
			row[path.ID] = point.Value
			setLabel(point.Date, path.ID, point.Label)
		}
		dateValues[point.Date] = row
	}

	for _, path := range branch.Paths {
		pathParam, ok := pathParameter(path, parameter.ID)
		if !ok {
			continue
		}
		for _, point := range pathParam.Data {
			if point.Date <= branchDate {
				continue
			}
			row, exists := dateValues[point.Date]
			if !exists {
				row = make(map[string]float64)
				dateValues[point.Date] = row
			}
			row[path.ID] = point.Value
			setLabel(point.Date, path.ID, point.Label)
		}
	}

	rows := make([]ChartRow, 0, len(dateValues))
	for date, values := range dateValues {
		rows = append(rows, ChartRow{Date: date, Values: values})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})

	chartPaths := make([]ChartPath, 0, len(branch.Paths))
	for i, path := range branch.Paths {
		chartPaths = append(chartPaths, ChartPath{
			PathID:   path.ID,
			PathName: path.Name,
			Color:    e.pathColor(path, i),
		})
	}

	return BranchingChartData{
		Rows:       rows,
		Labels:     labels,
		Paths:      chartPaths,
		BranchDate: branchDate,
	}
}
