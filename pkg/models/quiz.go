package models

// QuizQuestionType distinguishes the input style of a quiz question.
type QuizQuestionType string

const (
	QuestionMultipleChoice QuizQuestionType = "multiple-choice"
	QuestionScale          QuizQuestionType = "scale"
	QuestionYear           QuizQuestionType = "year"
)

// QuizQuestion is one question in the forecast quiz.
type QuizQuestion struct {
	ID       string           `yaml:"id"`
	Question string           `yaml:"question"`
	Type     QuizQuestionType `yaml:"type"`
	Options  []QuizOption     `yaml:"options,omitempty"`
	Min      int              `yaml:"min,omitempty"`
	Max      int              `yaml:"max,omitempty"`
	Unit     string           `yaml:"unit,omitempty"`
	Category string           `yaml:"category"`
}

// QuizOption is one selectable answer for a multiple-choice question.
type QuizOption struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Value       string `yaml:"value"`
	Description string `yaml:"description,omitempty"`
}

// QuizAnswer pairs a question with the value the user chose. Value keeps the
// raw string form; numeric answers are parsed where the consumer needs them.
type QuizAnswer struct {
	QuestionID string `yaml:"question_id"`
	Value      string `yaml:"value"`
}
