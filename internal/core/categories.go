package core

// CategoryConfig describes one assumption category's display configuration.
type CategoryConfig struct {
	ID          string
	Label       string
	Color       string
	Description string
}

// AssumptionCategories is the fixed table of assumption categories. Authored
// data using a category outside this table is reported as a diagnostic and
// kept with its raw string as the display label, never dropped.
var AssumptionCategories = map[string]CategoryConfig{
	"technical": {
		ID:          "technical",
		Label:       "Technical",
		Color:       "#60a5fa",
		Description: "AI capabilities, compute, architecture breakthroughs",
	},
	"alignment": {
		ID:          "alignment",
		Label:       "Alignment",
		Color:       "#fbbf24",
		Description: "AI alignment and control challenges",
	},
	"safety": {
		ID:          "safety",
		Label:       "Safety",
		Color:       "#22d3ee",
		Description: "Safety measures, control mechanisms, risks",
	},
	"security": {
		ID:          "security",
		Label:       "Security",
		Color:       "#fb923c",
		Description: "Cybersecurity, model theft, infrastructure protection",
	},
	"economic": {
		ID:          "economic",
		Label:       "Economic",
		Color:       "#34d399",
		Description: "Deployment, automation, market dynamics",
	},
	"geopolitical": {
		ID:          "geopolitical",
		Label:       "Geopolitical",
		Color:       "#f87171",
		Description: "US-China competition, manufacturing, espionage",
	},
	"regulatory": {
		ID:          "regulatory",
		Label:       "Regulatory",
		Color:       "#f472b6",
		Description: "Government response, international coordination",
	},
	"strategic": {
		ID:          "strategic",
		Label:       "Strategic",
		Color:       "#a78bfa",
		Description: "Takeoff speed, value drift, long-term considerations",
	},
}

// CategoryOrder fixes the display order of the category table.
var CategoryOrder = []string{
	"technical", "alignment", "safety", "security",
	"economic", "geopolitical", "regulatory", "strategic",
}

// ValidCategory reports whether the category is in the fixed table.
func ValidCategory(category string) bool {
	_, ok := AssumptionCategories[category]
	return ok
}

// CategoryLabel returns the display label for a category, falling back to the
// raw string for categories outside the fixed table.
func CategoryLabel(category string) string {
	if cfg, ok := AssumptionCategories[category]; ok {
		return cfg.Label
	}
	return category
}

// ValidateCategoryTable checks that every entry of the fixed table is fully
// populated. It returns one message per defect; an empty slice means the
// table is complete.
func ValidateCategoryTable() []string {
	var errs []string
	for id, cfg := range AssumptionCategories {
		if cfg.Label == "" {
			errs = append(errs, "missing label for category: "+id)
		}
		if cfg.Description == "" {
			errs = append(errs, "missing description for category: "+id)
		}
		if cfg.Color == "" {
			errs = append(errs, "missing color for category: "+id)
		}
	}
	return errs
}
