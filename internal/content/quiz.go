package content

import (
	"strconv"
	"strings"
)

// CheckQuizAnswer grades a single answer. Multiple choice answers are the
// option index, or the option text. Short answers are correct when they
// contain any keyword, ignoring case.
func CheckQuizAnswer(q QuizQuestion, answer string) QuizCheck {
	answer = strings.TrimSpace(answer)
	check := QuizCheck{Explanation: q.Explanation, ExpectedAnswer: q.ExpectedAnswer}

	if q.isMultipleChoice() {
		if q.Correct == nil {
			return check
		}
		want := *q.Correct
		if want >= 0 && want < len(q.Options) {
			check.ExpectedAnswer = q.Options[want]
		}
		if idx, err := strconv.Atoi(answer); err == nil {
			check.Correct = idx == want
			return check
		}
		check.Correct = answer != "" && check.ExpectedAnswer != "" && strings.EqualFold(answer, check.ExpectedAnswer)
		return check
	}

	lower := strings.ToLower(answer)
	if lower == "" {
		return check
	}
	for _, kw := range q.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(lower, kw) {
			check.Correct = true
			break
		}
	}
	return check
}

func (q QuizQuestion) isMultipleChoice() bool {
	switch q.Type {
	case QuizMultipleChoice:
		return true
	case QuizShortAnswer:
		return false
	}
	return len(q.Options) > 0
}
