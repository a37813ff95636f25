package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/foresight/internal/core"
	"github.com/valter-silva-au/foresight/internal/storage"
	"github.com/valter-silva-au/foresight/pkg/models"
)

var convertCmd = &cobra.Command{
	Use:   "convert <scenario-id>",
	Short: "Rewrite a scenario against the definition repository",
	Long: `Match a scenario's parameters and milestones against the repository by
name or alias and print the repository-referencing form as YAML. Items with
no repository match stay unmatched and are reported on stderr; the stored
scenario is not modified.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Registry == nil || Store == nil {
			return fmt.Errorf("scenario registry not initialized")
		}

		scenario, ok := Registry.ScenarioByID(args[0])
		if !ok {
			return fmt.Errorf("no scenario with id %q", args[0])
		}

		withOverrides, _ := cmd.Flags().GetBool("overrides")
		result := core.ConvertToRepositoryScenario(Store, scenario, core.ConvertOptions{
			CreateOverrides: withOverrides,
		})

		for _, d := range result.Diagnostics {
			fmt.Fprintf(os.Stderr, "warning: %s\n", d)
		}

		out, err := storage.EncodeScenario(models.RepoScenario(result.Scenario))
		if err != nil {
			return fmt.Errorf("encoding converted scenario: %w", err)
		}
		fmt.Print(string(out))

		if n := len(result.UnmatchedParameters) + len(result.UnmatchedMilestones); n > 0 {
			fmt.Fprintf(os.Stderr, "%d item(s) left inline with no repository match\n", n)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().Bool("overrides", true, "record per-field overrides where inline values differ from the matched definition")
	rootCmd.AddCommand(convertCmd)
}
