package session

import (
	"fmt"
	"time"
)

// Kind tags an interaction.
type Kind string

const (
	KindQuestion    Kind = "question"
	KindQuizAttempt Kind = "quiz_attempt"
)

// Interaction is one entry of a session's log. Question interactions fill
// Question; quiz attempts fill Score, TimeTaken and Difficulty. Topic is
// set for both. Score and TimeTaken are always serialised, so a 0% attempt
// reads as a score of 0 rather than a missing one.
type Interaction struct {
	Kind       Kind      `json:"type"`
	Subject    string    `json:"subject"`
	Topic      string    `json:"topic"`
	Question   string    `json:"question_text,omitempty"`
	QuizID     string    `json:"quiz_id,omitempty"`
	Score      float64   `json:"score_percentage"`
	TimeTaken  int       `json:"time_taken_seconds"`
	Difficulty string    `json:"difficulty,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewQuestion builds a question interaction with its topic taken from
// the subject's keyword table.
func NewQuestion(subject, text string, at time.Time) Interaction {
	return Interaction{
		Kind:      KindQuestion,
		Subject:   subject,
		Topic:     ExtractTopic(subject, text),
		Question:  text,
		Timestamp: at,
	}
}

// NewQuizAttempt builds a quiz attempt interaction. The score is clamped
// to [0, 100] and a negative time to 0.
func NewQuizAttempt(subject, topic string, score float64, timeTaken int, difficulty string, at time.Time) Interaction {
	if topic == "" {
		topic = GeneralTopic
	}
	return Interaction{
		Kind:       KindQuizAttempt,
		Subject:    subject,
		Topic:      topic,
		Score:      min(max(score, 0), 100),
		TimeTaken:  max(timeTaken, 0),
		Difficulty: difficulty,
		Timestamp:  at,
	}
}

func (in Interaction) validate() error {
	switch in.Kind {
	case KindQuestion, KindQuizAttempt:
	default:
		return fmt.Errorf("unknown interaction kind %q", in.Kind)
	}
	if in.Subject == "" {
		return fmt.Errorf("%s interaction has no subject", in.Kind)
	}
	return nil
}

// Counters are the denormalized totals kept next to the log.
type Counters struct {
	TotalQuestions  int     `json:"total_questions"`
	TotalQuizzes    int     `json:"total_quizzes"`
	CumulativeScore float64 `json:"cumulative_score"`
}

func (c *Counters) add(in Interaction) {
	switch in.Kind {
	case KindQuestion:
		c.TotalQuestions++
	case KindQuizAttempt:
		c.TotalQuizzes++
		c.CumulativeScore += in.Score
	}
}

// AverageScore is the mean quiz score, or 0 with no attempts.
func (c Counters) AverageScore() float64 {
	if c.TotalQuizzes == 0 {
		return 0
	}
	return c.CumulativeScore / float64(c.TotalQuizzes)
}

// Project recomputes counters from a log. A session's stored counters
// always equal Project of its interactions.
func Project(log []Interaction) Counters {
	var c Counters
	for _, in := range log {
		c.add(in)
	}
	return c
}

// Session is a student's learning history.
type Session struct {
	ID           string        `json:"session_id"`
	CreatedAt    time.Time     `json:"created_at"`
	LastActivity time.Time     `json:"last_activity"`
	Interactions []Interaction `json:"interactions"`
	Counters     Counters      `json:"counters"`
}

func newSession(id string, now time.Time) *Session {
	return &Session{ID: id, CreatedAt: now, LastActivity: now}
}

// fromLog rebuilds a session from journaled interactions.
func fromLog(id string, log []Interaction, now time.Time) *Session {
	s := newSession(id, now)
	if len(log) == 0 {
		return s
	}
	s.Interactions = log
	s.Counters = Project(log)
	s.CreatedAt = log[0].Timestamp
	s.LastActivity = log[len(log)-1].Timestamp
	return s
}

func (s *Session) append(in Interaction) {
	s.Interactions = append(s.Interactions, in)
	s.Counters.add(in)
	if in.Timestamp.After(s.LastActivity) {
		s.LastActivity = in.Timestamp
	}
}

// Clone returns a copy that shares nothing with s.
func (s *Session) Clone() *Session {
	c := *s
	c.Interactions = append([]Interaction(nil), s.Interactions...)
	return &c
}

// Questions returns the question interactions in log order.
func (s *Session) Questions() []Interaction { return s.filter(KindQuestion) }

// QuizAttempts returns the quiz attempt interactions in log order.
func (s *Session) QuizAttempts() []Interaction { return s.filter(KindQuizAttempt) }

func (s *Session) filter(k Kind) []Interaction {
	var out []Interaction
	for _, in := range s.Interactions {
		if in.Kind == k {
			out = append(out, in)
		}
	}
	return out
}
