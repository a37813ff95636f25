package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/foresight/internal/core"
	"github.com/valter-silva-au/foresight/internal/storage"
	"github.com/valter-silva-au/foresight/pkg/models"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Generate a custom scenario from quiz answers",
	Long: `Build a complete inline scenario from quiz answers. Answers come from
--answer flags (question=value pairs) or a --code share string; unanswered
questions take their defaults. The scenario prints as YAML, or is written
into the data directory with --save.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, _ := cmd.Flags().GetString("code")
		pairs, _ := cmd.Flags().GetStringSlice("answer")
		save, _ := cmd.Flags().GetBool("save")

		var answers []models.QuizAnswer
		if code != "" {
			decoded, err := core.DecodeQuizAnswers(code)
			if err != nil {
				return fmt.Errorf("decoding share code: %w", err)
			}
			answers = decoded
		}
		for _, pair := range pairs {
			questionID, value, ok := strings.Cut(pair, "=")
			if !ok {
				return fmt.Errorf("invalid answer %q (want question=value)", pair)
			}
			answers = append(answers, models.QuizAnswer{QuestionID: questionID, Value: value})
		}

		scenario := core.GenerateForecast(answers, core.ForecastOptions{})
		if save {
			if BasePath == "" {
				return fmt.Errorf("data directory not initialized")
			}
			path, err := storage.WriteScenario(BasePath, models.InlineScenario(scenario))
			if err != nil {
				return fmt.Errorf("saving forecast: %w", err)
			}
			fmt.Printf("Forecast written to %s\n", path)
			return nil
		}

		out, err := storage.EncodeScenario(models.InlineScenario(scenario))
		if err != nil {
			return fmt.Errorf("encoding forecast: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	forecastCmd.Flags().StringSlice("answer", nil, "quiz answer as question=value (repeatable)")
	forecastCmd.Flags().String("code", "", "share code produced by foresight share encode")
	forecastCmd.Flags().Bool("save", false, "write the forecast into the data directory")
	rootCmd.AddCommand(forecastCmd)
}
