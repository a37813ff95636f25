package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/foresight/internal/core"
	"github.com/valter-silva-au/foresight/pkg/models"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Encode and decode quiz answer share codes",
}

var shareEncodeCmd = &cobra.Command{
	Use:   "encode <question=value>...",
	Short: "Pack quiz answers into a URL-safe share code",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answers := make([]models.QuizAnswer, 0, len(args))
		for _, pair := range args {
			questionID, value, ok := strings.Cut(pair, "=")
			if !ok {
				return fmt.Errorf("invalid answer %q (want question=value)", pair)
			}
			answers = append(answers, models.QuizAnswer{QuestionID: questionID, Value: value})
		}
		fmt.Println(core.EncodeQuizAnswers(answers))
		return nil
	},
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode <code>",
	Short: "Unpack a share code back into quiz answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, err := core.DecodeQuizAnswers(args[0])
		if err != nil {
			return fmt.Errorf("decoding share code: %w", err)
		}
		for _, a := range answers {
			fmt.Printf("  %s=%s\n", a.QuestionID, a.Value)
		}
		return nil
	},
}

func init() {
	shareCmd.AddCommand(shareEncodeCmd)
	shareCmd.AddCommand(shareDecodeCmd)
	rootCmd.AddCommand(shareCmd)
}
