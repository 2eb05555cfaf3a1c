package quiz

import (
	"fmt"
	"strings"
)

const (
	MinQuestions     = 1
	MaxQuestions     = 20
	DefaultQuestions = 5

	// timeBuffer is added to every timed quiz.
	timeBuffer = 300
)

// secondsPerQuestion is the time allowance by difficulty.
var secondsPerQuestion = map[Difficulty]int{
	Beginner:     90,
	Intermediate: 75,
	Advanced:     60,
}

// Params are the inputs to Build.
type Params struct {
	Subject    string     `json:"subject"`
	Topic      string     `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
	Type       Type       `json:"quiz_type"`
	Count      int        `json:"num_questions"`
}

// Normalize trims and defaults p. Subject and topic must be non-empty;
// Count is clamped to [MinQuestions, MaxQuestions] and unknown enums take
// their defaults.
func (p Params) Normalize() (Params, error) {
	p.Subject = strings.TrimSpace(p.Subject)
	p.Topic = strings.TrimSpace(p.Topic)
	if p.Subject == "" {
		return p, &ValidationError{Field: "subject", Message: "must not be empty"}
	}
	if p.Topic == "" {
		return p, &ValidationError{Field: "topic", Message: "must not be empty"}
	}
	p.Difficulty = ParseDifficulty(string(p.Difficulty))
	p.Type = ParseType(string(p.Type))
	p.Count = min(max(p.Count, MinQuestions), MaxQuestions)
	return p, nil
}

// TimeLimit returns the allowance in seconds for n questions at level d.
func TimeLimit(d Difficulty, n int) int {
	per, ok := secondsPerQuestion[d]
	if !ok {
		per = secondsPerQuestion[Intermediate]
	}
	return n*per + timeBuffer
}

// DefaultTitle is used when the generator did not supply one.
func DefaultTitle(p Params) string {
	return fmt.Sprintf("%s - %s Quiz (%s)", p.Subject, p.Topic, p.Difficulty.Title())
}
