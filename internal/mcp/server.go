// Package mcp provides an MCP (Model Context Protocol) server that exposes
// foresight scenario data as MCP tools for AI assistants.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/valter-silva-au/foresight/internal/core"
	"github.com/valter-silva-au/foresight/internal/storage"
	"github.com/valter-silva-au/foresight/pkg/models"
)

// Server wraps foresight services and exposes them as MCP tools.
type Server struct {
	server   *gomcp.Server
	registry *core.Registry
	store    core.Store
	expander *core.Expander
	config   models.Config
}

// NewServer creates a new MCP server over the given services.
func NewServer(registry *core.Registry, store core.Store, expander *core.Expander, config models.Config, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		registry: registry,
		store:    store,
		expander: expander,
		config:   config,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "foresight", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type listScenariosInput struct {
	Tag  string `json:"tag,omitempty" jsonschema:"filter scenarios carrying this tag"`
	Type string `json:"type,omitempty" jsonschema:"filter scenarios by type (optimistic, pessimistic, modal, median, worst-case, best-case)"`
}

type scenarioSummary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	ScenarioType string   `json:"scenario_type"`
	Author       string   `json:"author,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Parameters   int      `json:"parameters"`
	Milestones   int      `json:"milestones"`
	Branches     int      `json:"branches"`
}

type listScenariosOutput struct {
	Scenarios []scenarioSummary `json:"scenarios"`
	Count     int               `json:"count"`
}

type getScenarioInput struct {
	ScenarioID string `json:"scenario_id" jsonschema:"required,the scenario identifier (e.g. ai-2027-forecast)"`
}

type getScenarioOutput struct {
	ScenarioYAML string `json:"scenario_yaml"`
}

type expandParameterInput struct {
	ScenarioID  string `json:"scenario_id" jsonschema:"required,the scenario identifier"`
	ParameterID string `json:"parameter_id" jsonschema:"required,the parameter identifier within the scenario"`
	BranchIndex int    `json:"branch_index,omitempty" jsonschema:"which branch to expand along when the scenario has several (default 0)"`
}

type chartPathOutput struct {
	PathID   string `json:"path_id"`
	PathName string `json:"path_name"`
	Color    string `json:"color"`
}

type chartRowOutput struct {
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
}

type expandParameterOutput struct {
	ParameterID   string            `json:"parameter_id"`
	ParameterName string            `json:"parameter_name"`
	Paths         []chartPathOutput `json:"paths"`
	Rows          []chartRowOutput  `json:"rows"`
}

type findSimilarInput struct {
	Name        string   `json:"name" jsonschema:"required,the name to match against repository definitions"`
	Description string   `json:"description,omitempty" jsonschema:"description text for similarity scoring"`
	Tags        []string `json:"tags,omitempty" jsonschema:"tags for similarity scoring"`
	Threshold   float64  `json:"threshold,omitempty" jsonschema:"minimum similarity score between 0 and 1 (defaults to the configured search threshold)"`
}

type similarityOutput struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

type findSimilarOutput struct {
	Matches []similarityOutput `json:"matches"`
	Count   int                `json:"count"`
}

type aggregateParametersInput struct{}

type aggregatedParameterOutput struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Unit          string   `json:"unit,omitempty"`
	ScenarioCount int      `json:"scenario_count"`
	ScenarioIDs   []string `json:"scenario_ids"`
}

type aggregateParametersOutput struct {
	Parameters []aggregatedParameterOutput `json:"parameters"`
	Count      int                         `json:"count"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_scenarios",
		Description: "List loaded scenarios with optional tag and type filters. Returns summaries with content counts.",
	}, s.handleListScenarios)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_scenario",
		Description: "Get a scenario by ID in fully resolved inline form, with all repository references expanded.",
	}, s.handleGetScenario)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "expand_parameter",
		Description: "Expand one scenario parameter across its branch paths into a merged chart table, one column per path.",
	}, s.handleExpandParameter)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "find_similar",
		Description: "Rank repository definitions by fuzzy similarity to a name, description, and tags.",
	}, s.handleFindSimilar)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "aggregate_parameters",
		Description: "Aggregate parameters across all scenarios by name, most widely tracked first.",
	}, s.handleAggregateParameters)
}

// --- Tool handlers ---

func (s *Server) handleListScenarios(_ context.Context, _ *gomcp.CallToolRequest, input listScenariosInput) (*gomcp.CallToolResult, listScenariosOutput, error) {
	scenarios := s.registry.Scenarios()
	if input.Tag != "" {
		scenarios = s.registry.ScenariosByTag(input.Tag)
	}
	if input.Type != "" {
		filtered := scenarios[:0:0]
		for _, sc := range scenarios {
			if string(sc.ScenarioType) == input.Type {
				filtered = append(filtered, sc)
			}
		}
		scenarios = filtered
	}

	out := listScenariosOutput{
		Scenarios: make([]scenarioSummary, len(scenarios)),
		Count:     len(scenarios),
	}
	for i, sc := range scenarios {
		out.Scenarios[i] = scenarioSummary{
			ID:           sc.ID,
			Title:        sc.Title,
			ScenarioType: string(sc.ScenarioType),
			Author:       sc.Author,
			Summary:      sc.Summary,
			Tags:         sc.Tags,
			Parameters:   len(sc.Parameters),
			Milestones:   len(sc.Milestones),
			Branches:     len(sc.Branches),
		}
	}

	return nil, out, nil
}

func (s *Server) handleGetScenario(_ context.Context, _ *gomcp.CallToolRequest, input getScenarioInput) (*gomcp.CallToolResult, getScenarioOutput, error) {
	if input.ScenarioID == "" {
		return errorResult("scenario_id is required"), getScenarioOutput{}, nil
	}

	scenario, ok := s.registry.ScenarioByID(input.ScenarioID)
	if !ok {
		return errorResult(fmt.Sprintf("no scenario with id %q", input.ScenarioID)), getScenarioOutput{}, nil
	}

	encoded, err := storage.EncodeScenario(models.InlineScenario(scenario))
	if err != nil {
		return errorResult(fmt.Sprintf("encoding scenario %s: %s", input.ScenarioID, err)), getScenarioOutput{}, nil
	}

	return nil, getScenarioOutput{ScenarioYAML: string(encoded)}, nil
}

func (s *Server) handleExpandParameter(_ context.Context, _ *gomcp.CallToolRequest, input expandParameterInput) (*gomcp.CallToolResult, expandParameterOutput, error) {
	if input.ScenarioID == "" {
		return errorResult("scenario_id is required"), expandParameterOutput{}, nil
	}
	if input.ParameterID == "" {
		return errorResult("parameter_id is required"), expandParameterOutput{}, nil
	}

	scenario, ok := s.registry.ScenarioByID(input.ScenarioID)
	if !ok {
		return errorResult(fmt.Sprintf("no scenario with id %q", input.ScenarioID)), expandParameterOutput{}, nil
	}

	var parameter models.ScenarioParameter
	found := false
	for _, p := range scenario.Parameters {
		if p.ID == input.ParameterID {
			parameter = p
			found = true
			break
		}
	}
	if !found {
		return errorResult(fmt.Sprintf("scenario %q has no parameter %q", input.ScenarioID, input.ParameterID)), expandParameterOutput{}, nil
	}

	if input.BranchIndex < 0 || (len(scenario.Branches) > 0 && input.BranchIndex >= len(scenario.Branches)) {
		return errorResult(fmt.Sprintf("scenario %q has no branch index %d", input.ScenarioID, input.BranchIndex)), expandParameterOutput{}, nil
	}

	expanded := s.expander.ExpandParameterAtBranch(scenario, parameter, input.BranchIndex)
	rows, paths := core.MergeExpandedParameters([]core.ExpandedParameter{expanded})

	out := expandParameterOutput{
		ParameterID:   expanded.ParameterID,
		ParameterName: expanded.ParameterName,
		Paths:         make([]chartPathOutput, len(paths)),
		Rows:          make([]chartRowOutput, len(rows)),
	}
	for i, p := range paths {
		out.Paths[i] = chartPathOutput{PathID: p.PathID, PathName: p.PathName, Color: p.Color}
	}
	for i, r := range rows {
		out.Rows[i] = chartRowOutput{Date: r.Date, Values: r.Values}
	}

	return nil, out, nil
}

func (s *Server) handleFindSimilar(_ context.Context, _ *gomcp.CallToolRequest, input findSimilarInput) (*gomcp.CallToolResult, findSimilarOutput, error) {
	if input.Name == "" {
		return errorResult("name is required"), findSimilarOutput{}, nil
	}

	threshold := input.Threshold
	if threshold == 0 {
		threshold = s.config.SearchThreshold
	}
	if threshold == 0 {
		threshold = core.DefaultSearchThreshold
	}
	if threshold < 0 || threshold > 1 {
		return errorResult(fmt.Sprintf("threshold %g out of range [0, 1]", threshold)), findSimilarOutput{}, nil
	}

	query := models.SimilarityQuery{
		Name:        input.Name,
		Description: input.Description,
		Tags:        input.Tags,
	}

	var items []models.RepositoryItem
	for _, p := range s.store.Parameters() {
		items = append(items, p.RepositoryItem)
	}
	for _, m := range s.store.Milestones() {
		items = append(items, m.RepositoryItem)
	}
	for _, a := range s.store.Assumptions() {
		items = append(items, a.RepositoryItem)
	}

	matches := core.FindSimilar(query, items, threshold)
	out := findSimilarOutput{
		Matches: make([]similarityOutput, len(matches)),
		Count:   len(matches),
	}
	for i, m := range matches {
		out.Matches[i] = similarityOutput{
			ID:     m.Item.ID,
			Name:   m.Item.Name,
			Score:  m.Score,
			Reason: m.Reason,
		}
	}

	return nil, out, nil
}

func (s *Server) handleAggregateParameters(_ context.Context, _ *gomcp.CallToolRequest, _ aggregateParametersInput) (*gomcp.CallToolResult, aggregateParametersOutput, error) {
	aggregated := s.registry.AggregateParameters()

	out := aggregateParametersOutput{
		Parameters: make([]aggregatedParameterOutput, len(aggregated)),
		Count:      len(aggregated),
	}
	for i, agg := range aggregated {
		ids := make([]string, len(agg.ParameterIDs))
		for j, usage := range agg.ParameterIDs {
			ids[j] = usage.ScenarioID
		}
		out.Parameters[i] = aggregatedParameterOutput{
			Name:          agg.Name,
			Description:   agg.Description,
			Unit:          agg.Unit,
			ScenarioCount: agg.ScenarioCount,
			ScenarioIDs:   ids,
		}
	}

	return nil, out, nil
}

// --- Helpers ---

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
