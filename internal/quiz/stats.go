package quiz

import "strings"

// Question categories reported by Statistics.
const (
	CategoryProblemSolving   = "problem_solving"
	CategoryConceptual       = "conceptual"
	CategoryCriticalThinking = "critical_thinking"
	CategoryRecall           = "recall"
)

var categoryKeywords = []struct {
	category string
	words    []string
}{
	{CategoryProblemSolving, []string{"calculate", "solve", "find"}},
	{CategoryConceptual, []string{"explain", "why", "how"}},
	{CategoryCriticalThinking, []string{"compare", "analyze", "evaluate"}},
}

// Stats summarizes a quiz's composition.
type Stats struct {
	TotalQuestions int            `json:"total_questions"`
	QuestionTypes  map[string]int `json:"question_types"`
	Difficulty     Difficulty     `json:"difficulty"`
	EstimatedTime  int            `json:"estimated_time"`
	Subject        string         `json:"subject"`
	Topic          string         `json:"topic"`
}

// Statistics classifies each question by keyword: the first matching
// category wins and anything unmatched counts as recall.
func Statistics(q *Quiz) Stats {
	st := Stats{
		TotalQuestions: len(q.Questions),
		QuestionTypes:  make(map[string]int),
		Difficulty:     q.Difficulty,
		EstimatedTime:  q.TimeLimit,
		Subject:        q.Subject,
		Topic:          q.Topic,
	}
	for _, qu := range q.Questions {
		st.QuestionTypes[classify(qu.Prompt)]++
	}
	return st
}

func classify(prompt string) string {
	text := strings.ToLower(prompt)
	for _, c := range categoryKeywords {
		for _, w := range c.words {
			if strings.Contains(text, w) {
				return c.category
			}
		}
	}
	return CategoryRecall
}
