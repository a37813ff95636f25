package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/foresight/internal/core"
	"github.com/valter-silva-au/foresight/internal/storage"
	"github.com/valter-silva-au/foresight/pkg/models"
)

// Shared services, wired by internal/app.go before Execute runs.
var (
	Store      core.Store
	Factory    *core.Factory
	CatalogMgr storage.CatalogManager
	Config     models.Config
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Inspect the definition repository",
	Long: `Browse the catalog of reusable parameter, milestone, and assumption
definitions that repository-based scenarios reference by ID.`,
}

var repoListCmd = &cobra.Command{
	Use:       "list <parameters|milestones|assumptions>",
	Short:     "List definitions of one kind",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"parameters", "milestones", "assumptions"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("definition store not initialized")
		}

		switch args[0] {
		case "parameters":
			fmt.Printf("  %-36s %-34s %-14s %s\n", "ID", "NAME", "CATEGORY", "UNIT")
			for _, p := range Store.Parameters() {
				fmt.Printf("  %-36s %-34s %-14s %s\n", p.ID, p.Name, p.Category, p.Unit)
			}
		case "milestones":
			fmt.Printf("  %-40s %-40s %-12s %s\n", "ID", "NAME", "CATEGORY", "SIGNIFICANCE")
			for _, m := range Store.Milestones() {
				fmt.Printf("  %-40s %-40s %-12s %s\n", m.ID, m.Name, m.Category, m.DefaultSignificance)
			}
		case "assumptions":
			fmt.Printf("  %-40s %-14s %s\n", "ID", "CATEGORY", "NAME")
			for _, a := range Store.Assumptions() {
				fmt.Printf("  %-40s %-14s %s\n", a.ID, core.CategoryLabel(a.Category), a.Name)
			}
		default:
			return fmt.Errorf("unknown kind %q (want parameters, milestones, or assumptions)", args[0])
		}
		return nil
	},
}

var repoShowCmd = &cobra.Command{
	Use:   "show <definition-id>",
	Short: "Show one definition in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("definition store not initialized")
		}

		id := args[0]
		if p, ok := Store.Parameter(id); ok {
			printParameterDefinition(p)
			return nil
		}
		if m, ok := Store.Milestone(id); ok {
			printMilestoneDefinition(m)
			return nil
		}
		if a, ok := Store.Assumption(id); ok {
			printAssumptionDefinition(a)
			return nil
		}
		return fmt.Errorf("no definition with id %q", id)
	},
}

func printItemHeader(item models.RepositoryItem, kind string) {
	fmt.Println(titleStyle.Render(item.Name))
	fmt.Printf("  %s %s\n", dimStyle.Render(kind), item.ID)
	if item.Description != "" {
		fmt.Printf("  %s\n", item.Description)
	}
	if len(item.Tags) > 0 {
		fmt.Printf("  %s %s\n", dimStyle.Render("tags:"), strings.Join(item.Tags, ", "))
	}
	if len(item.Aliases) > 0 {
		fmt.Printf("  %s %s\n", dimStyle.Render("aliases:"), strings.Join(item.Aliases, ", "))
	}
}

func printParameterDefinition(p models.ParameterDefinition) {
	printItemHeader(p.RepositoryItem, "parameter")
	fmt.Printf("  %s %s\n", dimStyle.Render("category:"), p.Category)
	fmt.Printf("  %s %s\n", dimStyle.Render("unit:"), p.Unit)
	fmt.Printf("  %s %s\n", dimStyle.Render("color:"), p.Color)
	if p.Range != nil {
		fmt.Printf("  %s %g to %g\n", dimStyle.Render("range:"), p.Range.Min, p.Range.Max)
	}
	if related := Store.AssumptionsForParameter(p.ID); len(related) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render("  Related Assumptions"))
		for _, a := range related {
			fmt.Printf("    %s  %s\n", a.ID, a.Name)
		}
	}
}

func printMilestoneDefinition(m models.MilestoneDefinition) {
	printItemHeader(m.RepositoryItem, "milestone")
	fmt.Printf("  %s %s\n", dimStyle.Render("category:"), m.Category)
	fmt.Printf("  %s %s\n", dimStyle.Render("default significance:"), m.DefaultSignificance)
	if len(m.RelatedParameters) > 0 {
		fmt.Printf("  %s %s\n", dimStyle.Render("related parameters:"), strings.Join(m.RelatedParameters, ", "))
	}
}

func printAssumptionDefinition(a models.AssumptionDefinition) {
	printItemHeader(a.RepositoryItem, "assumption")
	fmt.Printf("  %s %s\n", dimStyle.Render("category:"), core.CategoryLabel(a.Category))
	fmt.Printf("  %s %s\n", dimStyle.Render("default confidence:"), a.DefaultConfidence)
	fmt.Printf("  %s %s\n", dimStyle.Render("default impact:"), a.DefaultImpact)
	if len(a.RelatedParameters) > 0 {
		fmt.Printf("  %s %s\n", dimStyle.Render("related parameters:"), strings.Join(a.RelatedParameters, ", "))
	}
}

var repoFindCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Find-or-create probe for a parameter or milestone name",
	Long: `Run the find-or-create workflow against the repository: an exact
name or alias match is adopted, a very similar definition is recommended,
and otherwise a new-definition template is printed for review. Nothing is
written; the result is advisory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Factory == nil {
			return fmt.Errorf("definition factory not initialized")
		}

		kind, _ := cmd.Flags().GetString("kind")
		description, _ := cmd.Flags().GetString("description")
		tags, _ := cmd.Flags().GetStringSlice("tag")

		switch kind {
		case "parameter":
			unit, _ := cmd.Flags().GetString("unit")
			result := Factory.FindOrCreateParameter(core.ParameterQuery{
				Name:        args[0],
				Description: description,
				Unit:        unit,
				Tags:        tags,
			})
			printFindResult(result.Message, result.IsNew, result.Item.ID)
		case "milestone":
			result := Factory.FindOrCreateMilestone(core.MilestoneQuery{
				Name:        args[0],
				Description: description,
				Tags:        tags,
			})
			printFindResult(result.Message, result.IsNew, result.Item.ID)
		default:
			return fmt.Errorf("unknown kind %q (want parameter or milestone)", kind)
		}
		return nil
	},
}

func printFindResult(message string, isNew bool, id string) {
	fmt.Println(message)
	if isNew {
		fmt.Printf("%s %s\n", dimStyle.Render("new id:"), id)
	} else {
		fmt.Printf("%s %s\n", dimStyle.Render("existing id:"), id)
	}
}

var repoSimilarCmd = &cobra.Command{
	Use:   "similar <name>",
	Short: "Rank repository definitions by similarity to a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("definition store not initialized")
		}

		description, _ := cmd.Flags().GetString("description")
		tags, _ := cmd.Flags().GetStringSlice("tag")
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		if threshold == 0 {
			threshold = Config.SearchThreshold
		}
		if threshold == 0 {
			threshold = core.DefaultSearchThreshold
		}

		query := models.SimilarityQuery{Name: args[0], Description: description, Tags: tags}
		items := make([]models.RepositoryItem, 0)
		for _, p := range Store.Parameters() {
			items = append(items, p.RepositoryItem)
		}
		for _, m := range Store.Milestones() {
			items = append(items, m.RepositoryItem)
		}
		for _, a := range Store.Assumptions() {
			items = append(items, a.RepositoryItem)
		}

		matches := core.FindSimilar(query, items, threshold)
		if len(matches) == 0 {
			fmt.Printf("No definitions at or above %.0f%% similarity.\n", threshold*100)
			return nil
		}
		for _, m := range matches {
			fmt.Printf("  %5.1f%%  %-36s %s\n", m.Score*100, m.Item.ID, m.Reason)
		}
		return nil
	},
}

var repoExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the loaded catalog to the data directory",
	Long: `Persist the currently loaded definition catalog as YAML files under
repository/ in the data directory. Useful for materializing the built-in
catalog as a starting point for local edits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if CatalogMgr == nil {
			return fmt.Errorf("catalog manager not initialized")
		}
		if err := CatalogMgr.Save(); err != nil {
			return fmt.Errorf("exporting catalog: %w", err)
		}
		fmt.Printf("Catalog written under %s\n", BasePath)
		return nil
	},
}

func init() {
	repoFindCmd.Flags().String("kind", "parameter", "definition kind to probe (parameter or milestone)")
	repoFindCmd.Flags().String("description", "", "description for similarity scoring")
	repoFindCmd.Flags().String("unit", "", "unit for a new parameter template")
	repoFindCmd.Flags().StringSlice("tag", nil, "tags for similarity scoring (repeatable)")

	repoSimilarCmd.Flags().String("description", "", "description for similarity scoring")
	repoSimilarCmd.Flags().StringSlice("tag", nil, "tags for similarity scoring (repeatable)")
	repoSimilarCmd.Flags().Float64("threshold", 0, "minimum similarity score (defaults to configured search threshold)")

	repoCmd.AddCommand(repoListCmd)
	repoCmd.AddCommand(repoShowCmd)
	repoCmd.AddCommand(repoFindCmd)
	repoCmd.AddCommand(repoSimilarCmd)
	repoCmd.AddCommand(repoExportCmd)
	rootCmd.AddCommand(repoCmd)
}
