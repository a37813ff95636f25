package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/foresight/internal/core"
	"github.com/valter-silva-au/foresight/pkg/models"
)

var showCmd = &cobra.Command{
	Use:   "show <scenario-id>",
	Short: "Show a scenario in detail",
	Long: `Show a scenario's summary, timeline periods, parameters, milestones,
assumptions, and outcomes. Repository-based scenarios are shown fully
resolved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Registry == nil {
			return fmt.Errorf("scenario registry not initialized")
		}

		s, ok := Registry.ScenarioByID(args[0])
		if !ok {
			return fmt.Errorf("scenario %q not found", args[0])
		}

		printScenario(s, Registry.ScenarioAssumptions(s.ID))
		return nil
	},
}

func printScenario(s *models.AIScenario, assumptions []models.Assumption) {
	fmt.Println(titleStyle.Render(s.Title))
	fmt.Println()
	fmt.Printf("%s  %s\n", dimStyle.Render("id:"), s.ID)
	fmt.Printf("%s  %s (%s)\n", dimStyle.Render("by:"), s.Author, s.Source)
	fmt.Printf("%s  %s\n", dimStyle.Render("type:"), styleScenarioType(s.ScenarioType))
	fmt.Printf("%s  %s - %s\n", dimStyle.Render("span:"), s.TimelineStart, s.TimelineEnd)
	if len(s.Tags) > 0 {
		fmt.Printf("%s  %s\n", dimStyle.Render("tags:"), strings.Join(s.Tags, ", "))
	}
	fmt.Println()
	fmt.Println(s.Summary)

	if len(s.Periods) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render("Timeline"))
		for _, p := range s.Periods {
			fmt.Printf("  %s - %s  %s\n", p.StartDate, p.EndDate, p.Title)
		}
	}

	if len(s.Parameters) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render("Parameters"))
		for _, p := range s.Parameters {
			fmt.Printf("  %-32s %-14s %d points\n", p.Name, p.Unit, len(p.Data))
		}
	}

	if len(s.Milestones) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render("Milestones"))
		for _, m := range s.Milestones {
			fmt.Printf("  %-10s [%s] %s\n", m.Date, m.Significance, m.Title)
		}
	}

	if s.HasBranching && len(s.Branches) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render("Branches"))
		for i, b := range s.Branches {
			fmt.Printf("  [%d] %s at %s: %s\n", i, b.ID, b.BranchDate, b.TriggerCondition)
			for _, p := range b.Paths {
				prob := ""
				if p.Probability > 0 {
					prob = fmt.Sprintf(" (p=%.2f)", p.Probability)
				}
				fmt.Printf("      - %s%s: %s\n", p.Name, prob, p.Outcome)
			}
		}
	}

	if len(assumptions) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render("Assumptions"))
		grouped := core.GroupAssumptionsByCategory(assumptions)
		for _, category := range orderedCategories(grouped) {
			fmt.Printf("  %s\n", core.CategoryLabel(category))
			for _, a := range grouped[category] {
				fmt.Printf("    [%s/%s] %s\n", a.Confidence, a.Impact, a.Description)
			}
		}
	}

	if len(s.OpenQuestions) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render("Open Questions"))
		for _, q := range s.OpenQuestions {
			fmt.Printf("  - %s\n", q)
		}
	}

	if len(s.Outcomes) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render("Outcomes"))
		for _, o := range s.Outcomes {
			fmt.Printf("  alignment=%s control=%s humanity=%s\n", o.AlignmentStatus, o.ControlStatus, o.HumanOutcome)
			if o.WinningActor != "" {
				fmt.Printf("  winner: %s\n", o.WinningActor)
			}
			fmt.Printf("  %s\n", o.Description)
		}
	}
}

// orderedCategories lists the grouped categories in fixed table order, with
// any out-of-table categories appended alphabetically.
func orderedCategories(grouped map[string][]models.Assumption) []string {
	var result []string
	for _, c := range core.CategoryOrder {
		if _, ok := grouped[c]; ok {
			result = append(result, c)
		}
	}
	var extra []string
	for c := range grouped {
		if !core.ValidCategory(c) {
			extra = append(extra, c)
		}
	}
	sort.Strings(extra)
	return append(result, extra...)
}

func init() {
	rootCmd.AddCommand(showCmd)
}
