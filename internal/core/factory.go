package core

import (
	"fmt"
	"strings"

	"github.com/valter-silva-au/foresight/pkg/models"
)

// Default similarity thresholds for the find-or-create workflow. A match at
// or above VerySimilar is recommended outright; matches between Search and
// VerySimilar are surfaced for review alongside a fresh template.
const (
	DefaultVerySimilarThreshold = 0.85
	DefaultSearchThreshold      = 0.7
)

// FindOrCreateOptions tunes the find-or-create workflow. Zero values fall
// back to the defaults.
type FindOrCreateOptions struct {
	// SearchThreshold is the minimum similarity for an item to appear among
	// the surfaced candidates.
	SearchThreshold float64
	// VerySimilarThreshold is the score at or above which the best candidate
	// is recommended instead of creating a new item.
	VerySimilarThreshold float64
}

func (o FindOrCreateOptions) searchThreshold() float64 {
	if o.SearchThreshold > 0 {
		return o.SearchThreshold
	}
	return DefaultSearchThreshold
}

func (o FindOrCreateOptions) verySimilarThreshold() float64 {
	if o.VerySimilarThreshold > 0 {
		return o.VerySimilarThreshold
	}
	return DefaultVerySimilarThreshold
}

// FindOrCreateResult is the advisory outcome of a find-or-create probe. The
// workflow never merges on its own: IsNew reports whether Item is a fresh
// template (true) or an existing repository entry the caller should adopt
// (false), and SimilarItems carries the ranked candidates either way.
type FindOrCreateResult[T any] struct {
	Item         T
	IsNew        bool
	SimilarItems []SimilarityMatch
	Message      string
}

// ParameterQuery is the authored shape of a parameter being checked against
// the repository.
type ParameterQuery struct {
	Name        string
	Description string
	Unit        string
	Tags        []string
}

// MilestoneQuery is the authored shape of a milestone being checked against
// the repository.
type MilestoneQuery struct {
	Name        string
	Description string
	Tags        []string
}

// Factory runs the three-tier find-or-create workflow over the repository:
// exact name/alias match, high-similarity suggestion, or new-item template.
type Factory struct {
	store   Store
	options FindOrCreateOptions
}

// NewFactory creates a Factory over the given store with the given options.
func NewFactory(store Store, options FindOrCreateOptions) *Factory {
	return &Factory{store: store, options: options}
}

// slugify derives a stable id from a display name.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func parameterItems(defs []models.ParameterDefinition) []models.RepositoryItem {
	items := make([]models.RepositoryItem, len(defs))
	for i, d := range defs {
		items[i] = d.RepositoryItem
	}
	return items
}

func milestoneItems(defs []models.MilestoneDefinition) []models.RepositoryItem {
	items := make([]models.RepositoryItem, len(defs))
	for i, d := range defs {
		items[i] = d.RepositoryItem
	}
	return items
}

func formatCandidates(matches []SimilarityMatch) string {
	var b strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&b, "  - %q (%.0f%% similar)\n", m.Item.Name, m.Score*100)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FindOrCreateParameter probes the repository for the queried parameter:
// an exact name/alias match is returned directly; a best candidate at or
// above the very-similar threshold is recommended; otherwise a new-parameter
// template is returned, with any moderate candidates attached for review.
func (f *Factory) FindOrCreateParameter(query ParameterQuery) FindOrCreateResult[models.ParameterDefinition] {
	if exact, ok := f.store.FindParameterByName(query.Name); ok {
		return FindOrCreateResult[models.ParameterDefinition]{
			Item:    exact,
			IsNew:   false,
			Message: fmt.Sprintf("Found existing parameter %q (id %s)", exact.Name, exact.ID),
		}
	}

	similar := FindSimilar(models.SimilarityQuery{
		Name:        query.Name,
		Description: query.Description,
		Tags:        query.Tags,
	}, parameterItems(f.store.Parameters()), f.options.searchThreshold())

	if len(similar) > 0 {
		best := similar[0]
		if best.Score >= f.options.verySimilarThreshold() {
			def, _ := f.store.Parameter(best.Item.ID)
			return FindOrCreateResult[models.ParameterDefinition]{
				Item:         def,
				IsNew:        false,
				SimilarItems: similar,
				Message: fmt.Sprintf("Found very similar parameter %q (id %s, %.0f%% similar); consider using it instead",
					best.Item.Name, best.Item.ID, best.Score*100),
			}
		}
		return FindOrCreateResult[models.ParameterDefinition]{
			Item:         f.parameterTemplate(query),
			IsNew:        true,
			SimilarItems: similar,
			Message:      "Similar parameters found, review before creating:\n" + formatCandidates(similar),
		}
	}

	return FindOrCreateResult[models.ParameterDefinition]{
		Item:    f.parameterTemplate(query),
		IsNew:   true,
		Message: fmt.Sprintf("No similar parameters found; creating new parameter %q", query.Name),
	}
}

// FindOrCreateMilestone is the milestone counterpart of FindOrCreateParameter.
func (f *Factory) FindOrCreateMilestone(query MilestoneQuery) FindOrCreateResult[models.MilestoneDefinition] {
	if exact, ok := f.store.FindMilestoneByName(query.Name); ok {
		return FindOrCreateResult[models.MilestoneDefinition]{
			Item:    exact,
			IsNew:   false,
			Message: fmt.Sprintf("Found existing milestone %q (id %s)", exact.Name, exact.ID),
		}
	}

	similar := FindSimilar(models.SimilarityQuery{
		Name:        query.Name,
		Description: query.Description,
		Tags:        query.Tags,
	}, milestoneItems(f.store.Milestones()), f.options.searchThreshold())

	if len(similar) > 0 {
		best := similar[0]
		if best.Score >= f.options.verySimilarThreshold() {
			def, _ := f.store.Milestone(best.Item.ID)
			return FindOrCreateResult[models.MilestoneDefinition]{
				Item:         def,
				IsNew:        false,
				SimilarItems: similar,
				Message: fmt.Sprintf("Found very similar milestone %q (id %s, %.0f%% similar); consider using it instead",
					best.Item.Name, best.Item.ID, best.Score*100),
			}
		}
		return FindOrCreateResult[models.MilestoneDefinition]{
			Item:         f.milestoneTemplate(query),
			IsNew:        true,
			SimilarItems: similar,
			Message:      "Similar milestones found, review before creating:\n" + formatCandidates(similar),
		}
	}

	return FindOrCreateResult[models.MilestoneDefinition]{
		Item:    f.milestoneTemplate(query),
		IsNew:   true,
		Message: fmt.Sprintf("No similar milestones found; creating new milestone %q", query.Name),
	}
}

func (f *Factory) parameterTemplate(query ParameterQuery) models.ParameterDefinition {
	tags := query.Tags
	if len(tags) == 0 {
		tags = []string{"uncategorized"}
	}
	return models.ParameterDefinition{
		RepositoryItem: models.RepositoryItem{
			ID:          slugify(query.Name),
			Name:        query.Name,
			Description: query.Description,
			Tags:        tags,
		},
		Unit:           query.Unit,
		Color:          "#6b7280",
		Category:       models.ParamOther,
		UsesConfidence: true,
	}
}

func (f *Factory) milestoneTemplate(query MilestoneQuery) models.MilestoneDefinition {
	tags := query.Tags
	if len(tags) == 0 {
		tags = []string{"uncategorized"}
	}
	return models.MilestoneDefinition{
		RepositoryItem: models.RepositoryItem{
			ID:          slugify(query.Name),
			Name:        query.Name,
			Description: query.Description,
			Tags:        tags,
		},
		Category:            models.MilestoneOther,
		DefaultSignificance: models.LevelMedium,
	}
}

// ParameterAnalysis is the batch report of checking a scenario's parameters
// against the repository.
type ParameterAnalysis struct {
	Matched []struct {
		Query string
		Match models.ParameterDefinition
	}
	Similar []struct {
		Query   string
		Matches []SimilarityMatch
	}
	New []string
}

// AnalyzeParameters batch-checks authored parameter names against the
// repository, classifying each as matched, similar, or new.
func (f *Factory) AnalyzeParameters(queries []ParameterQuery) ParameterAnalysis {
	var analysis ParameterAnalysis
	for _, q := range queries {
		result := f.FindOrCreateParameter(q)
		switch {
		case !result.IsNew:
			analysis.Matched = append(analysis.Matched, struct {
				Query string
				Match models.ParameterDefinition
			}{Query: q.Name, Match: result.Item})
		case len(result.SimilarItems) > 0:
			analysis.Similar = append(analysis.Similar, struct {
				Query   string
				Matches []SimilarityMatch
			}{Query: q.Name, Matches: result.SimilarItems})
		default:
			analysis.New = append(analysis.New, q.Name)
		}
	}
	return analysis
}
