package content

// Flashcard is a two-sided study card.
type Flashcard struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Front      string `json:"front"`
	Back       string `json:"back"`
}

// Quiz question types.
const (
	QuizMultipleChoice = "multiple_choice"
	QuizShortAnswer    = "short_answer"
)

// QuizQuestion is either a multiple choice question (Options + Correct) or
// a short answer question (Keywords + ExpectedAnswer).
type QuizQuestion struct {
	ID             string   `json:"id"`
	Category       string   `json:"category"`
	Difficulty     string   `json:"difficulty"`
	Type           string   `json:"type,omitempty"`
	Question       string   `json:"question"`
	Options        []string `json:"options,omitempty"`
	Correct        *int     `json:"correct,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	ExpectedAnswer string   `json:"expected_answer,omitempty"`
}

// ExplainPrompt is a free-text prompt graded against its rubric. The rubric
// never leaves the process; listings use PublicPrompt.
type ExplainPrompt struct {
	ID         string   `json:"id"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	Prompt     string   `json:"prompt"`
	Rubric     []string `json:"rubric"`
}

// PublicPrompt is ExplainPrompt without its rubric. Only the known prompt
// fields are carried; unrecognised keys in the source file are dropped.
type PublicPrompt struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Prompt     string `json:"prompt"`
}

// Public strips the rubric.
func (p ExplainPrompt) Public() PublicPrompt {
	return PublicPrompt{
		ID:         p.ID,
		Category:   p.Category,
		Difficulty: p.Difficulty,
		Prompt:     p.Prompt,
	}
}

// CategoryCounts is the per-collection record count for one category.
type CategoryCounts struct {
	Flashcards int `json:"flashcards"`
	Quiz       int `json:"quiz"`
	Explain    int `json:"explain"`
}

// Stats summarizes all three collections.
type Stats struct {
	Flashcards     int                       `json:"flashcards"`
	QuizQuestions  int                       `json:"quiz_questions"`
	ExplainPrompts int                       `json:"explain_prompts"`
	ByCategory     map[string]CategoryCounts `json:"by_category"`
}

// QuizCheck is the outcome of checking one quiz answer.
type QuizCheck struct {
	Correct        bool   `json:"correct"`
	Explanation    string `json:"explanation"`
	ExpectedAnswer string `json:"expected_answer"`
}

// Filter narrows a listing. Empty fields do not filter.
type Filter struct {
	Category   string
	Difficulty string
}

// QuizFilter narrows a quiz listing. Category is a comma separated list.
// Count <= 0 means no limit.
type QuizFilter struct {
	Count      int
	Category   string
	Difficulty string
}

func (f Flashcard) categoryName() string     { return f.Category }
func (q QuizQuestion) categoryName() string  { return q.Category }
func (p ExplainPrompt) categoryName() string { return p.Category }
