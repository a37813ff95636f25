package models

// RepositoryItem carries the metadata common to every definition in the
// centralized repository. IDs are stable and immutable once any scenario
// references them; names need not be unique but IDs must be.
type RepositoryItem struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Aliases     []string `yaml:"aliases,omitempty"`
}

// ParameterCategory groups parameter definitions.
type ParameterCategory string

const (
	ParamCapability   ParameterCategory = "capability"
	ParamEconomic     ParameterCategory = "economic"
	ParamSocial       ParameterCategory = "social"
	ParamSafety       ParameterCategory = "safety"
	ParamGeopolitical ParameterCategory = "geopolitical"
	ParamOther        ParameterCategory = "other"
)

// MilestoneCategory groups milestone definitions.
type MilestoneCategory string

const (
	MilestoneCapability MilestoneCategory = "capability"
	MilestoneDeployment MilestoneCategory = "deployment"
	MilestoneSocietal   MilestoneCategory = "societal"
	MilestoneRegulatory MilestoneCategory = "regulatory"
	MilestoneIncident   MilestoneCategory = "incident"
	MilestoneOther      MilestoneCategory = "other"
)

// ValueRange is the typical numeric range of a parameter.
type ValueRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ParameterDefinition is a reusable parameter in the centralized repository.
type ParameterDefinition struct {
	RepositoryItem `yaml:",inline"`

	Unit           string            `yaml:"unit"`
	Color          string            `yaml:"color"`
	Category       ParameterCategory `yaml:"category"`
	Range          *ValueRange       `yaml:"range,omitempty"`
	UsesConfidence bool              `yaml:"uses_confidence,omitempty"`
}

// MilestoneDefinition is a reusable milestone in the centralized repository.
type MilestoneDefinition struct {
	RepositoryItem `yaml:",inline"`

	Category            MilestoneCategory `yaml:"category"`
	DefaultSignificance Level             `yaml:"default_significance,omitempty"`
	RelatedParameters   []string          `yaml:"related_parameters,omitempty"`
}

// AssumptionDefinition is a reusable assumption in the centralized repository.
// Category is one of the fixed assumption categories (see core.AssumptionCategories).
type AssumptionDefinition struct {
	RepositoryItem `yaml:",inline"`

	Category          string   `yaml:"category"`
	DefaultConfidence Level    `yaml:"default_confidence"`
	DefaultImpact     Level    `yaml:"default_impact"`
	RelatedParameters []string `yaml:"related_parameters,omitempty"`
}

// ParameterReference points a scenario at a repository parameter. Data always
// comes from the reference; the overrides win field-by-field over the
// definition when present.
type ParameterReference struct {
	ParameterID         string      `yaml:"parameter_id"`
	Data                []DataPoint `yaml:"data"`
	NameOverride        string      `yaml:"name_override,omitempty"`
	DescriptionOverride string      `yaml:"description_override,omitempty"`
	ColorOverride       string      `yaml:"color_override,omitempty"`
	UnitOverride        string      `yaml:"unit_override,omitempty"`
}

// MilestoneReference points a scenario at a repository milestone. Date and
// significance are scenario-specific and required; category always comes from
// the definition.
type MilestoneReference struct {
	MilestoneID         string `yaml:"milestone_id"`
	Date                string `yaml:"date"`
	Significance        Level  `yaml:"significance"`
	TitleOverride       string `yaml:"title_override,omitempty"`
	DescriptionOverride string `yaml:"description_override,omitempty"`
}

// AssumptionReference points a scenario at a repository assumption, with
// optional scenario-specific confidence and impact.
type AssumptionReference struct {
	AssumptionID        string `yaml:"assumption_id"`
	DescriptionOverride string `yaml:"description_override,omitempty"`
	Confidence          Level  `yaml:"confidence,omitempty"`
	Impact              Level  `yaml:"impact,omitempty"`
}

// SimilarityQuery is the free-text candidate side of a similarity comparison.
// Empty fields are excluded from scoring rather than scored as zero.
type SimilarityQuery struct {
	Name        string
	Description string
	Tags        []string
}
