package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/foresight/internal/core"
	"github.com/valter-silva-au/foresight/pkg/models"
)

// Expander is set during app initialization in app.go.
var Expander *core.Expander

var chartCmd = &cobra.Command{
	Use:   "chart <scenario-id> <parameter-id>",
	Short: "Print a parameter's chart table",
	Long: `Print the chart-ready table for one parameter of one scenario. For
branching scenarios the table carries one column per branch path, with the
shared history fanned out to every column up to the branch date.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Registry == nil || Expander == nil {
			return fmt.Errorf("scenario registry not initialized")
		}

		s, ok := Registry.ScenarioByID(args[0])
		if !ok {
			return fmt.Errorf("scenario %q not found", args[0])
		}
		parameter, ok := findScenarioParameter(s, args[1])
		if !ok {
			return fmt.Errorf("parameter %q not found in scenario %s", args[1], s.ID)
		}

		branchIndex, _ := cmd.Flags().GetInt("branch")
		if branchIndex != 0 {
			return printExpandedTable(s, parameter, branchIndex)
		}

		data := Expander.CreateBranchingChartData(s, parameter)
		printBranchingTable(parameter, data)
		return nil
	},
}

func findScenarioParameter(s *models.AIScenario, id string) (models.ScenarioParameter, bool) {
	for _, p := range s.Parameters {
		if p.ID == id {
			return p, true
		}
	}
	return models.ScenarioParameter{}, false
}

func pathHeader(p core.ChartPath) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(p.PathName)
}

func printBranchingTable(parameter models.ScenarioParameter, data core.BranchingChartData) {
	fmt.Println(titleStyle.Render(parameter.Name))
	if parameter.Unit != "" {
		fmt.Println(dimStyle.Render("unit: " + parameter.Unit))
	}
	fmt.Println()

	if len(data.Paths) == 0 {
		fmt.Printf("  %-12s %s\n", "DATE", "VALUE")
		for _, row := range data.Rows {
			if v, ok := row.Values["value"]; ok {
				fmt.Printf("  %-12s %s\n", row.Date, core.FormatTickValue(v))
			}
		}
		return
	}

	fmt.Printf("  %-12s", "DATE")
	for _, p := range data.Paths {
		fmt.Printf(" %-36s", pathHeader(p))
	}
	fmt.Println()

	for _, row := range data.Rows {
		fmt.Printf("  %-12s", row.Date)
		for _, p := range data.Paths {
			if v, ok := row.Values[p.PathID]; ok {
				cell := core.FormatTickValue(v)
				if label, ok := data.Labels[row.Date][p.PathID]; ok {
					cell += "  (" + label + ")"
				}
				fmt.Printf(" %-24s", cell)
			} else {
				fmt.Printf(" %-24s", "-")
			}
		}
		fmt.Println()
	}
	if data.BranchDate != "" {
		fmt.Println()
		fmt.Println(dimStyle.Render("branches at " + data.BranchDate))
	}
}

// printExpandedTable addresses a branch other than the first through the
// composite-ID expansion used for cross-scenario merges.
func printExpandedTable(s *models.AIScenario, parameter models.ScenarioParameter, branchIndex int) error {
	if branchIndex < 0 || branchIndex >= len(s.Branches) {
		return fmt.Errorf("scenario %s has no branch %d", s.ID, branchIndex)
	}
	expanded := Expander.ExpandParameterAtBranch(s, parameter, branchIndex)
	rows, paths := core.MergeExpandedParameters([]core.ExpandedParameter{expanded})

	fmt.Println(titleStyle.Render(parameter.Name))
	fmt.Println()
	fmt.Printf("  %-12s", "DATE")
	for _, p := range paths {
		fmt.Printf(" %-36s", pathHeader(p))
	}
	fmt.Println()
	for _, row := range rows {
		fmt.Printf("  %-12s", row.Date)
		for _, p := range paths {
			if v, ok := row.Values[p.PathID]; ok {
				fmt.Printf(" %-24s", core.FormatTickValue(v))
			} else {
				fmt.Printf(" %-24s", "-")
			}
		}
		fmt.Println()
	}
	return nil
}

func init() {
	chartCmd.Flags().Int("branch", 0, "branch index for multi-branch scenarios")
	rootCmd.AddCommand(chartCmd)
}
