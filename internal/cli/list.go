package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/foresight/internal/core"
	"github.com/valter-silva-au/foresight/pkg/models"
)

// Registry is set during app initialization in app.go.
var Registry *core.Registry

// BasePath is the data directory, set during app initialization in app.go.
var BasePath string

// Style definitions shared across scenario output.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	typeOptimistic  = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	typePessimistic = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	typeWorstCase   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	typeNeutral     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func styleScenarioType(t models.ScenarioType) string {
	s := string(t)
	switch t {
	case models.TypeOptimistic, models.TypeBestCase:
		return typeOptimistic.Render(s)
	case models.TypePessimistic:
		return typePessimistic.Render(s)
	case models.TypeWorstCase:
		return typeWorstCase.Render(s)
	default:
		return typeNeutral.Render(s)
	}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded scenarios",
	Long:  `List all loaded scenarios with their timeline, type, and tags. Filter with --tag and --type.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Registry == nil {
			return fmt.Errorf("scenario registry not initialized")
		}

		tag, _ := cmd.Flags().GetString("tag")
		scenarioType, _ := cmd.Flags().GetString("type")

		scenarios := Registry.Scenarios()
		if tag != "" {
			scenarios = Registry.ScenariosByTag(tag)
		}
		if scenarioType != "" {
			scenarios = filterByType(scenarios, models.ScenarioType(scenarioType))
		}

		if len(scenarios) == 0 {
			fmt.Println("No scenarios found.")
			return nil
		}

		fmt.Printf("%d scenario(s):\n\n", len(scenarios))
		fmt.Printf("  %-28s %-12s %-18s %s\n", "ID", "TYPE", "TIMELINE", "TITLE")
		for _, s := range scenarios {
			fmt.Printf("  %-28s %-12s %-18s %s\n",
				s.ID,
				styleScenarioType(s.ScenarioType),
				s.TimelineStart+" - "+s.TimelineEnd,
				s.Title,
			)
		}
		return nil
	},
}

func filterByType(scenarios []*models.AIScenario, t models.ScenarioType) []*models.AIScenario {
	var result []*models.AIScenario
	for _, s := range scenarios {
		if s.ScenarioType == t {
			result = append(result, s)
		}
	}
	return result
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all scenario tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Registry == nil {
			return fmt.Errorf("scenario registry not initialized")
		}
		tags := Registry.AllTags()
		if len(tags) == 0 {
			fmt.Println("No tags.")
			return nil
		}
		fmt.Println(strings.Join(tags, "\n"))
		return nil
	},
}

func init() {
	listCmd.Flags().String("tag", "", "only scenarios carrying this tag")
	listCmd.Flags().String("type", "", "only scenarios of this type (optimistic, pessimistic, modal, median, worst-case, best-case)")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(tagsCmd)
}
