package core

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/valter-silva-au/foresight/pkg/models"
)

// Quiz share-string format: "questionId:value" pairs joined with "|", then
// base64. The round trip is byte-exact for every answer whose question ID and
// value contain neither '|' nor ':'. This is the one format contract that
// crosses the process boundary (shared forecast links).

// EncodeQuizAnswers packs quiz answers into a URL-safe share string.
func EncodeQuizAnswers(answers []models.QuizAnswer) string {
	pairs := make([]string, len(answers))
	for i, a := range answers {
		pairs[i] = a.QuestionID + ":" + a.Value
	}
	return base64.StdEncoding.EncodeToString([]byte(strings.Join(pairs, "|")))
}

// DecodeQuizAnswers unpacks a share string produced by EncodeQuizAnswers.
func DecodeQuizAnswers(encoded string) ([]models.QuizAnswer, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding quiz answers: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	pairs := strings.Split(string(raw), "|")
	answers := make([]models.QuizAnswer, 0, len(pairs))
	for _, pair := range pairs {
		questionID, value, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("decoding quiz answers: malformed pair %q", pair)
		}
		answers = append(answers, models.QuizAnswer{QuestionID: questionID, Value: value})
	}
	return answers, nil
}
