package models

import "fmt"

// ScenarioType classifies the overall stance of a forecast scenario.
type ScenarioType string

const (
	TypeOptimistic  ScenarioType = "optimistic"
	TypePessimistic ScenarioType = "pessimistic"
	TypeModal       ScenarioType = "modal"
	TypeMedian      ScenarioType = "median"
	TypeWorstCase   ScenarioType = "worst-case"
	TypeBestCase    ScenarioType = "best-case"
)

// Level is a coarse low/medium/high/critical rating used for milestone
// significance, assumption confidence, and assumption impact.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// AlignmentStatus describes how aligned AI systems end up in a scenario outcome.
type AlignmentStatus string

const (
	Aligned            AlignmentStatus = "aligned"
	Misaligned         AlignmentStatus = "misaligned"
	AlignmentUncertain AlignmentStatus = "uncertain"
	AlignmentPartial   AlignmentStatus = "partial"
)

// ControlStatus describes whether humans retain control in a scenario outcome.
type ControlStatus string

const (
	Controlled       ControlStatus = "controlled"
	Uncontrolled     ControlStatus = "uncontrolled"
	ControlUncertain ControlStatus = "uncertain"
	ControlPartial   ControlStatus = "partial"
)

// HumanOutcome is the terminal classification of how humanity fares.
type HumanOutcome string

const (
	OutcomeExtremelyGood HumanOutcome = "extremely-good"
	OutcomeGood          HumanOutcome = "good"
	OutcomeNeutral       HumanOutcome = "neutral"
	OutcomeBad           HumanOutcome = "bad"
	OutcomeExtremelyBad  HumanOutcome = "extremely-bad"
	OutcomeExtinction    HumanOutcome = "extinction"
)

// DataPoint is a single dated observation in a parameter series. Dates are
// lexically sortable ISO-like strings ("2027-10" or "2027-10-15"); within one
// parameter's series they are unique.
type DataPoint struct {
	Date       string  `yaml:"date"`
	Value      float64 `yaml:"value"`
	Label      string  `yaml:"label,omitempty"`
	Confidence Level   `yaml:"confidence,omitempty"`
}

// ScenarioParameter is a named, unit-bearing, time-indexed numeric series
// tracked within a scenario (e.g., "Geopolitical Tension").
type ScenarioParameter struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Unit        string      `yaml:"unit"`
	Color       string      `yaml:"color,omitempty"`
	Data        []DataPoint `yaml:"data"`
}

// Milestone is a dated, significant point event within a scenario's narrative.
type Milestone struct {
	ID           string `yaml:"id"`
	Date         string `yaml:"date"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	Significance Level  `yaml:"significance"`
	Category     string `yaml:"category,omitempty"`
}

// TimelinePeriod is a contiguous, non-branching slice of the story.
type TimelinePeriod struct {
	ID        string             `yaml:"id"`
	StartDate string             `yaml:"start_date"`
	EndDate   string             `yaml:"end_date"`
	Title     string             `yaml:"title"`
	Narrative string             `yaml:"narrative"`
	KeyEvents []string           `yaml:"key_events"`
	Metrics   map[string]float64 `yaml:"metrics,omitempty"`
}

// BranchPath is one of the mutually exclusive futures a branch diverges into.
// Periods and milestones continue from the branch date onward; pre-branch
// history lives on the parent scenario, never duplicated per path.
type BranchPath struct {
	ID          string              `yaml:"id"`
	Name        string              `yaml:"name"`
	Probability float64             `yaml:"probability,omitempty"`
	Description string              `yaml:"description"`
	Outcome     string              `yaml:"outcome"`
	Color       string              `yaml:"color,omitempty"`
	Periods     []TimelinePeriod    `yaml:"periods"`
	Milestones  []Milestone         `yaml:"milestones"`
	Parameters  []ScenarioParameter `yaml:"parameters,omitempty"`
}

// Branch is a single point in time at which the narrative diverges into paths.
// Sibling path probabilities are advisory and are not required to sum to 1.
type Branch struct {
	ID               string       `yaml:"id"`
	BranchDate       string       `yaml:"branch_date"`
	TriggerCondition string       `yaml:"trigger_condition"`
	Description      string       `yaml:"description"`
	Paths            []BranchPath `yaml:"paths"`
}

// Assumption is a stated, confidence/impact-rated premise underlying a
// scenario's narrative.
type Assumption struct {
	ID          string `yaml:"id"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Confidence  Level  `yaml:"confidence"`
	Impact      Level  `yaml:"impact"`
	Note        string `yaml:"note,omitempty"`
}

// ScenarioOutcome is the terminal classification of a scenario or branch path.
type ScenarioOutcome struct {
	AlignmentStatus AlignmentStatus `yaml:"alignment_status"`
	ControlStatus   ControlStatus   `yaml:"control_status"`
	HumanOutcome    HumanOutcome    `yaml:"human_outcome"`
	Description     string          `yaml:"description"`
	WinningActor    string          `yaml:"winning_actor,omitempty"`
}

// OutcomeList holds one outcome for a linear scenario or one per branch path.
// Authored YAML may give either a single mapping or a sequence.
type OutcomeList []ScenarioOutcome

// UnmarshalYAML accepts both a single outcome mapping and a sequence of them.
func (o *OutcomeList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var many []ScenarioOutcome
	if err := unmarshal(&many); err == nil {
		*o = many
		return nil
	}
	var one ScenarioOutcome
	if err := unmarshal(&one); err != nil {
		return fmt.Errorf("outcomes must be an outcome or a list of outcomes: %w", err)
	}
	*o = OutcomeList{one}
	return nil
}

// AIScenario is the canonical, fully resolved scenario shape every consumer
// expects: all parameters, milestones, and assumptions inline.
type AIScenario struct {
	ID            string       `yaml:"id"`
	Title         string       `yaml:"title"`
	Author        string       `yaml:"author"`
	Source        string       `yaml:"source"`
	SourceURL     string       `yaml:"source_url,omitempty"`
	DatePublished string       `yaml:"date_published"`
	Summary       string       `yaml:"summary"`
	ScenarioType  ScenarioType `yaml:"scenario_type"`

	TimelineStart string           `yaml:"timeline_start"`
	TimelineEnd   string           `yaml:"timeline_end"`
	Periods       []TimelinePeriod `yaml:"periods"`

	Parameters []ScenarioParameter `yaml:"parameters"`
	Milestones []Milestone         `yaml:"milestones"`

	HasBranching bool     `yaml:"has_branching"`
	Branches     []Branch `yaml:"branches,omitempty"`

	Assumptions   []Assumption `yaml:"assumptions"`
	OpenQuestions []string     `yaml:"open_questions,omitempty"`

	// AssumptionRefs may accompany inline assumptions on scenarios that came
	// through normalization; they are flattened only at the point of
	// consumption via Normalizer.AllAssumptions.
	AssumptionRefs []AssumptionReference `yaml:"assumption_refs,omitempty"`

	Outcomes OutcomeList `yaml:"outcomes"`
	Tags     []string    `yaml:"tags"`
}

// RepositoryBasedScenario mirrors AIScenario but references repository
// definitions instead of carrying inline parameters and milestones.
type RepositoryBasedScenario struct {
	ID            string       `yaml:"id"`
	Title         string       `yaml:"title"`
	Author        string       `yaml:"author"`
	Source        string       `yaml:"source"`
	SourceURL     string       `yaml:"source_url,omitempty"`
	DatePublished string       `yaml:"date_published"`
	Summary       string       `yaml:"summary"`
	ScenarioType  ScenarioType `yaml:"scenario_type"`

	TimelineStart string           `yaml:"timeline_start"`
	TimelineEnd   string           `yaml:"timeline_end"`
	Periods       []TimelinePeriod `yaml:"periods"`

	ParameterRefs []ParameterReference `yaml:"parameter_refs"`
	MilestoneRefs []MilestoneReference `yaml:"milestone_refs"`

	HasBranching bool     `yaml:"has_branching"`
	Branches     []Branch `yaml:"branches,omitempty"`

	Assumptions    []Assumption          `yaml:"assumptions,omitempty"`
	AssumptionRefs []AssumptionReference `yaml:"assumption_refs,omitempty"`
	OpenQuestions  []string              `yaml:"open_questions,omitempty"`

	Outcomes OutcomeList `yaml:"outcomes"`
	Tags     []string    `yaml:"tags"`
}

// ScenarioKind tags the two authored scenario shapes.
type ScenarioKind string

const (
	KindInline    ScenarioKind = "inline"
	KindRepoBased ScenarioKind = "repository"
)

// Scenario is the tagged union of the two authored shapes. The shape is
// decided once at load time; exactly one of Inline or RepoBased is set.
type Scenario struct {
	Inline    *AIScenario
	RepoBased *RepositoryBasedScenario
}

// InlineScenario wraps a fully inline scenario.
func InlineScenario(s *AIScenario) Scenario {
	return Scenario{Inline: s}
}

// RepoScenario wraps a repository-referencing scenario.
func RepoScenario(s *RepositoryBasedScenario) Scenario {
	return Scenario{RepoBased: s}
}

// Kind reports which shape the scenario carries.
func (s Scenario) Kind() ScenarioKind {
	if s.RepoBased != nil {
		return KindRepoBased
	}
	return KindInline
}

// ID returns the scenario's identifier regardless of shape.
func (s Scenario) ID() string {
	if s.RepoBased != nil {
		return s.RepoBased.ID
	}
	if s.Inline != nil {
		return s.Inline.ID
	}
	return ""
}

// Title returns the scenario's title regardless of shape.
func (s Scenario) Title() string {
	if s.RepoBased != nil {
		return s.RepoBased.Title
	}
	if s.Inline != nil {
		return s.Inline.Title
	}
	return ""
}
