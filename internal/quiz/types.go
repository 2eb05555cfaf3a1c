package quiz

import (
	"strings"
	"time"
)

// Difficulty is the requested quiz level.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Difficulties lists every level in ascending order.
var Difficulties = []Difficulty{Beginner, Intermediate, Advanced}

// ParseDifficulty maps s to a Difficulty, case-insensitively. Anything
// unrecognized becomes Intermediate.
func ParseDifficulty(s string) Difficulty {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if d.Valid() {
		return d
	}
	return Intermediate
}

func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// complexity is how the level is described to the question generator.
func (d Difficulty) complexity() string {
	switch d {
	case Beginner:
		return "basic"
	case Advanced:
		return "challenging"
	}
	return "moderate"
}

// Type is the kind of thinking a quiz exercises.
type Type string

const (
	ConceptCheck         Type = "concept_check"
	ProblemSolving       Type = "problem_solving"
	CriticalThinking     Type = "critical_thinking"
	RealWorldApplication Type = "real_world_application"
)

// Types lists every quiz type.
var Types = []Type{ConceptCheck, ProblemSolving, CriticalThinking, RealWorldApplication}

// ParseType maps s to a Type. The older "application" name is accepted;
// anything else unrecognized becomes ConceptCheck.
func ParseType(s string) Type {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if t == "application" {
		return RealWorldApplication
	}
	if t.Valid() {
		return t
	}
	return ConceptCheck
}

func (t Type) Valid() bool {
	switch t {
	case ConceptCheck, ProblemSolving, CriticalThinking, RealWorldApplication:
		return true
	}
	return false
}

func (t Type) describe() string {
	switch t {
	case ProblemSolving:
		return "apply knowledge to solve problems"
	case CriticalThinking:
		return "analyze and evaluate information"
	case RealWorldApplication:
		return "use knowledge in real-world scenarios"
	}
	return "test understanding of fundamental concepts"
}

// Origin records where a quiz's questions came from.
type Origin string

const (
	OriginGenerated Origin = "generated"
	OriginFallback  Origin = "fallback"
)

// Question is one multiple choice item. Correct holds the literal text of
// the right option, so options can be shown in any order.
type Question struct {
	Prompt      string   `json:"question"`
	Options     []string `json:"options"`
	Correct     string   `json:"correct_answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// HasOption reports whether answer is exactly one of the options.
func (q Question) HasOption(answer string) bool {
	for _, o := range q.Options {
		if o == answer {
			return true
		}
	}
	return false
}

// Quiz is an immutable set of questions. Build a new one for a retake.
type Quiz struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Subject    string     `json:"subject"`
	Topic      string     `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
	Type       Type       `json:"quiz_type"`
	Questions  []Question `json:"questions"`

	// TimeLimit is in seconds; 0 means untimed.
	TimeLimit int       `json:"time_limit"`
	CreatedAt time.Time `json:"created_at"`
	Source    Origin    `json:"source"`

	// Generator names the source that produced the questions and Padded
	// counts questions topped up from the bank.
	Generator string `json:"generator"`
	Padded    int    `json:"padded_questions,omitempty"`
}

// Limit returns the time limit as a duration.
func (q *Quiz) Limit() time.Duration {
	return time.Duration(q.TimeLimit) * time.Second
}

// Clone returns a deep copy.
func (q *Quiz) Clone() *Quiz {
	c := *q
	c.Questions = make([]Question, len(q.Questions))
	for i, qu := range q.Questions {
		qu.Options = append([]string(nil), qu.Options...)
		c.Questions[i] = qu
	}
	return &c
}
