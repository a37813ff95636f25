package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/foresight/internal/core"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare content across scenarios",
	Long: `Cross-scenario comparison views: which parameters and assumptions recur
across the loaded scenarios, and merged chart tables for a shared parameter.`,
}

var compareParamsCmd = &cobra.Command{
	Use:   "params",
	Short: "Aggregate parameters across scenarios by name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Registry == nil {
			return fmt.Errorf("scenario registry not initialized")
		}

		aggregated := Registry.AggregateParameters()
		if len(aggregated) == 0 {
			fmt.Println("No parameters found.")
			return nil
		}

		fmt.Printf("  %-6s %-36s %-18s %s\n", "COUNT", "NAME", "UNIT", "SCENARIOS")
		for _, agg := range aggregated {
			fmt.Printf("  %-6d %-36s %-18s", agg.ScenarioCount, agg.Name, agg.Unit)
			for i, usage := range agg.ParameterIDs {
				if i > 0 {
					fmt.Print(", ")
				} else {
					fmt.Print(" ")
				}
				fmt.Print(usage.ScenarioID)
			}
			fmt.Println()
		}
		return nil
	},
}

var compareAssumptionsCmd = &cobra.Command{
	Use:   "assumptions",
	Short: "Aggregate assumptions across scenarios by category and description",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Registry == nil {
			return fmt.Errorf("scenario registry not initialized")
		}

		aggregated, diagnostics := Registry.AggregateAssumptions()
		for _, d := range diagnostics {
			fmt.Fprintf(os.Stderr, "warning: %s\n", d)
		}

		if len(aggregated) == 0 {
			fmt.Println("No assumptions found.")
			return nil
		}

		for _, agg := range aggregated {
			fmt.Printf("  [%d] %-14s %s\n", agg.ScenarioCount, core.CategoryLabel(agg.Category), agg.Description)
		}
		return nil
	},
}

var compareChartCmd = &cobra.Command{
	Use:   "chart <parameter-id>",
	Short: "Merged chart table for a parameter across scenarios",
	Long: `Merge the series of every scenario tracking the given parameter ID into
one table. Branching scenarios contribute one column per branch path, with
composite column IDs so paths stay unique across scenarios.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Registry == nil || Expander == nil {
			return fmt.Errorf("scenario registry not initialized")
		}

		usages := Registry.ParameterData(args[0])
		if len(usages) == 0 {
			return fmt.Errorf("no scenario tracks parameter %q", args[0])
		}

		expanded := make([]core.ExpandedParameter, 0, len(usages))
		for _, usage := range usages {
			expanded = append(expanded, Expander.ExpandParameter(usage.Scenario, usage.Parameter))
		}
		rows, paths := core.MergeExpandedParameters(expanded)

		fmt.Println(titleStyle.Render(usages[0].Parameter.Name))
		fmt.Println()
		fmt.Printf("  %-12s", "DATE")
		for _, p := range paths {
			fmt.Printf(" %-44s", pathHeader(p))
		}
		fmt.Println()
		for _, row := range rows {
			fmt.Printf("  %-12s", row.Date)
			for _, p := range paths {
				if v, ok := row.Values[p.PathID]; ok {
					fmt.Printf(" %-32s", core.FormatTickValue(v))
				} else {
					fmt.Printf(" %-32s", "-")
				}
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	compareCmd.AddCommand(compareParamsCmd)
	compareCmd.AddCommand(compareAssumptionsCmd)
	compareCmd.AddCommand(compareChartCmd)
	rootCmd.AddCommand(compareCmd)
}
