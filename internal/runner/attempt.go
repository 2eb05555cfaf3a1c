package runner

import (
	"sync"
	"time"

	"github.com/abhisek/smartlearn/internal/quiz"
)

type attempt struct {
	mu sync.Mutex

	id        string
	sessionID string
	quiz      *quiz.Quiz
	state     State
	answers   []*string

	startedAt time.Time
	timeTaken time.Duration
	auto      bool
	report    *Report

	// claimed is set once a caller has received the report from Submit.
	claimed bool
}

// Snapshot is a point-in-time copy of an attempt.
type Snapshot struct {
	ID        string     `json:"attempt_id"`
	QuizID    string     `json:"quiz_id"`
	SessionID string     `json:"session_id"`
	State     State      `json:"state"`
	Answers   []*string  `json:"answers"`
	StartedAt *time.Time `json:"started_at,omitempty"`

	// TimeLimit and Remaining are in seconds; both are 0 for untimed quizzes.
	TimeLimit     int     `json:"time_limit"`
	Remaining     int     `json:"remaining_seconds"`
	AutoSubmitted bool    `json:"auto_submitted"`
	Report        *Report `json:"report,omitempty"`
}

func (a *attempt) transition(to State) {
	if !canTransition(a.state, to) {
		// Callers check state first; reaching this is a runner bug.
		panic(invalidState(a.id, a.state, "move to "+to.String()))
	}
	a.state = to
}

func (a *attempt) begin(now time.Time) {
	a.transition(InProgress)
	a.startedAt = now
}

func (a *attempt) deadline() (time.Time, bool) {
	limit := a.quiz.Limit()
	if limit <= 0 {
		return time.Time{}, false
	}
	return a.startedAt.Add(limit), true
}

// expire submits an InProgress attempt whose time is up and returns its
// report, or nil if nothing changed.
func (a *attempt) expire(now time.Time) *Report {
	if a.state != InProgress {
		return nil
	}
	if dl, ok := a.deadline(); !ok || now.Before(dl) {
		return nil
	}
	return a.submit(now, true)
}

// submit moves InProgress to Submitted and straight on to Graded.
func (a *attempt) submit(now time.Time, auto bool) *Report {
	elapsed := now.Sub(a.startedAt)
	if limit := a.quiz.Limit(); limit > 0 && elapsed > limit {
		elapsed = limit
	}
	a.transition(Submitted)
	a.timeTaken = elapsed
	a.auto = auto
	a.claimed = !auto

	rep := Grade(a.quiz, a.answers, int(elapsed/time.Second))
	rep.AttemptID = a.id
	rep.SessionID = a.sessionID
	rep.AutoSubmitted = auto
	a.transition(Graded)
	a.report = rep
	return rep
}

func (a *attempt) snapshot(now time.Time) *Snapshot {
	s := &Snapshot{
		ID:            a.id,
		QuizID:        a.quiz.ID,
		SessionID:     a.sessionID,
		State:         a.state,
		Answers:       copyAnswers(a.answers),
		TimeLimit:     a.quiz.TimeLimit,
		AutoSubmitted: a.auto,
	}
	if a.state != Created {
		started := a.startedAt
		s.StartedAt = &started
	}
	if dl, ok := a.deadline(); ok {
		switch a.state {
		case Created:
			s.Remaining = a.quiz.TimeLimit
		case InProgress:
			s.Remaining = max(int(dl.Sub(now)/time.Second), 0)
		}
	}
	if a.report != nil {
		s.Report = copyReport(a.report)
	}
	return s
}

func copyAnswers(in []*string) []*string {
	out := make([]*string, len(in))
	for i, p := range in {
		if p != nil {
			v := *p
			out[i] = &v
		}
	}
	return out
}

func copyReport(r *Report) *Report {
	c := *r
	c.Breakdown = make([]QuestionResult, len(r.Breakdown))
	for i, qr := range r.Breakdown {
		if qr.StudentAnswer != nil {
			v := *qr.StudentAnswer
			qr.StudentAnswer = &v
		}
		qr.Options = append([]string(nil), qr.Options...)
		c.Breakdown[i] = qr
	}
	c.Feedback = append([]string(nil), r.Feedback...)
	return &c
}
