package runner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/smartlearn/internal/quiz"
	"github.com/google/uuid"
)

// Hook is called once per attempt, after it is graded.
type Hook func(ctx context.Context, r *Report) error

// Runner owns registered quizzes and the attempts made on them. Each
// attempt has its own lock; the maps are guarded by mu.
//
// Deadlines are checked lazily: whichever call first touches an attempt
// after its time limit submits it with the answers set at that point.
type Runner struct {
	mu       sync.RWMutex
	quizzes  map[string]*quiz.Quiz
	attempts map[string]*attempt

	hooks  []Hook
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Runner)

// WithClock sets the time source used for start times and deadlines.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

func New(opts ...Option) *Runner {
	r := &Runner{
		quizzes:  make(map[string]*quiz.Quiz),
		attempts: make(map[string]*attempt),
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// OnGraded registers a hook. Hooks run in registration order, outside the
// attempt's lock; a failing hook is logged and does not undo the grade.
func (r *Runner) OnGraded(h Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, h)
}

// Register stores a copy of q so attempts can be started on it.
func (r *Runner) Register(q *quiz.Quiz) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quizzes[q.ID] = q.Clone()
}

// Quiz returns a copy of a registered quiz.
func (r *Runner) Quiz(id string) (*quiz.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.quizzes[id]
	if !ok {
		return nil, fmt.Errorf("%w: quiz %s", ErrNotFound, id)
	}
	return q.Clone(), nil
}

// Start creates an attempt in the Created state and returns its ID.
func (r *Runner) Start(quizID, sessionID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.quizzes[quizID]
	if !ok {
		return "", fmt.Errorf("%w: quiz %s", ErrNotFound, quizID)
	}
	a := &attempt{
		id:        uuid.NewString(),
		sessionID: sessionID,
		quiz:      q,
		answers:   make([]*string, len(q.Questions)),
	}
	r.attempts[a.id] = a
	return a.id, nil
}

// Begin moves a Created attempt to InProgress and starts its clock.
func (r *Runner) Begin(ctx context.Context, id string) (*Snapshot, error) {
	a, err := r.attempt(id)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	if a.state != Created {
		s := a.state
		a.mu.Unlock()
		return nil, invalidState(id, s, "begin")
	}
	a.begin(r.now())
	snap := a.snapshot(r.now())
	a.mu.Unlock()
	return snap, nil
}

// View returns the attempt's current state. Viewing a Created attempt
// begins it; viewing an expired one submits it.
func (r *Runner) View(ctx context.Context, id string) (*Snapshot, error) {
	a, err := r.attempt(id)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	now := r.now()
	if a.state == Created {
		a.begin(now)
	}
	graded := a.expire(now)
	snap := a.snapshot(now)
	a.mu.Unlock()

	r.runHooks(ctx, graded)
	return snap, nil
}

// SetAnswer records answer for the question at index, replacing any
// earlier answer. answer must be one of the question's options.
func (r *Runner) SetAnswer(ctx context.Context, id string, index int, answer string) (*Snapshot, error) {
	return r.mutate(ctx, id, index, func(a *attempt, q quiz.Question) error {
		if !q.HasOption(answer) {
			return &quiz.ValidationError{Field: "answer", Message: fmt.Sprintf("%q is not an option of question %d", answer, index+1)}
		}
		v := answer
		a.answers[index] = &v
		return nil
	})
}

// ClearAnswer unsets the answer at index.
func (r *Runner) ClearAnswer(ctx context.Context, id string, index int) (*Snapshot, error) {
	return r.mutate(ctx, id, index, func(a *attempt, _ quiz.Question) error {
		a.answers[index] = nil
		return nil
	})
}

func (r *Runner) mutate(ctx context.Context, id string, index int, fn func(*attempt, quiz.Question) error) (*Snapshot, error) {
	a, err := r.attempt(id)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	now := r.now()
	if a.state == Created {
		a.begin(now)
	}
	if graded := a.expire(now); graded != nil {
		a.mu.Unlock()
		r.runHooks(ctx, graded)
		return nil, fmt.Errorf("%w: attempt %s ran out of time", ErrInvalidState, id)
	}
	if a.state != InProgress {
		s := a.state
		a.mu.Unlock()
		return nil, invalidState(id, s, "answer")
	}
	if index < 0 || index >= len(a.quiz.Questions) {
		a.mu.Unlock()
		return nil, &quiz.ValidationError{Field: "index", Message: fmt.Sprintf("question index %d out of range [0, %d)", index, len(a.quiz.Questions))}
	}
	if err := fn(a, a.quiz.Questions[index]); err != nil {
		a.mu.Unlock()
		return nil, err
	}
	snap := a.snapshot(now)
	a.mu.Unlock()
	return snap, nil
}

// Submit ends the attempt and grades it. A submit after the time limit is
// accepted with the time taken capped at the limit. When a read already
// graded the attempt at its deadline, the first Submit returns that report.
// Any other submit of a graded attempt fails with ErrInvalidState.
func (r *Runner) Submit(ctx context.Context, id string) (*Report, error) {
	return r.SubmitSheet(ctx, id, nil)
}

// SubmitSheet applies an answer sheet and submits in one step. Every entry
// is checked before any is applied, so a bad sheet leaves the attempt
// untouched. A nil entry keeps the question's current answer. Past the
// deadline the sheet is ignored and the answers held at the limit are
// graded.
func (r *Runner) SubmitSheet(ctx context.Context, id string, sheet []*string) (*Report, error) {
	a, err := r.attempt(id)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	if err := checkSheet(a.quiz, sheet); err != nil {
		a.mu.Unlock()
		return nil, err
	}

	now := r.now()
	if a.state == Created {
		a.begin(now)
	}
	switch {
	case a.state == Graded && a.auto && !a.claimed:
		a.claimed = true
		rep := copyReport(a.report)
		a.mu.Unlock()
		return rep, nil
	case a.state != InProgress:
		s := a.state
		a.mu.Unlock()
		return nil, invalidState(id, s, "submit")
	}

	if dl, ok := a.deadline(); !ok || now.Before(dl) {
		for i, ans := range sheet {
			if ans != nil {
				v := *ans
				a.answers[i] = &v
			}
		}
	}
	rep := a.submit(now, false)
	a.mu.Unlock()

	r.runHooks(ctx, rep)
	return copyReport(rep), nil
}

func checkSheet(q *quiz.Quiz, sheet []*string) error {
	if len(sheet) > len(q.Questions) {
		return &quiz.ValidationError{Field: "answers", Message: fmt.Sprintf("%d answers for %d questions", len(sheet), len(q.Questions))}
	}
	for i, ans := range sheet {
		if ans != nil && !q.Questions[i].HasOption(*ans) {
			return &quiz.ValidationError{Field: "answers", Message: fmt.Sprintf("%q is not an option of question %d", *ans, i+1)}
		}
	}
	return nil
}

// Owner returns the session an attempt belongs to without touching its
// state or clock.
func (r *Runner) Owner(id string) (string, error) {
	a, err := r.attempt(id)
	if err != nil {
		return "", err
	}
	return a.sessionID, nil
}

// Peek returns the attempt as it stands, without beginning it or applying
// its deadline.
func (r *Runner) Peek(id string) (*Snapshot, error) {
	a, err := r.attempt(id)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot(r.now()), nil
}

// Report returns the grading report of a graded attempt.
func (r *Runner) Report(ctx context.Context, id string) (*Report, error) {
	snap, err := r.View(ctx, id)
	if err != nil {
		return nil, err
	}
	if snap.Report == nil {
		return nil, invalidState(id, snap.State, "report on")
	}
	return snap.Report, nil
}

// Active lists the session's attempts that are not yet graded.
func (r *Runner) Active(ctx context.Context, sessionID string) []*Snapshot {
	var out []*Snapshot
	for _, a := range r.sessionAttempts(sessionID) {
		a.mu.Lock()
		now := r.now()
		graded := a.expire(now)
		var snap *Snapshot
		if a.state < Submitted {
			snap = a.snapshot(now)
		}
		a.mu.Unlock()

		r.runHooks(ctx, graded)
		if snap != nil {
			out = append(out, snap)
		}
	}
	return out
}

// Discard drops every attempt of a session; later calls on them report
// ErrNotFound. It returns how many were dropped.
func (r *Runner) Discard(sessionID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, a := range r.attempts {
		if a.sessionID == sessionID {
			delete(r.attempts, id)
			n++
		}
	}
	return n
}

func (r *Runner) sessionAttempts(sessionID string) []*attempt {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*attempt
	for _, a := range r.attempts {
		if a.sessionID == sessionID {
			out = append(out, a)
		}
	}
	return out
}

func (r *Runner) attempt(id string) (*attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.attempts[id]
	if !ok {
		return nil, fmt.Errorf("%w: attempt %s", ErrNotFound, id)
	}
	return a, nil
}

func (r *Runner) runHooks(ctx context.Context, rep *Report) {
	if rep == nil {
		return
	}
	r.mu.RLock()
	hooks := append([]Hook(nil), r.hooks...)
	r.mu.RUnlock()

	for _, h := range hooks {
		if err := h(ctx, copyReport(rep)); err != nil {
			r.logger.Error("graded hook failed", "attempt", rep.AttemptID, "session", rep.SessionID, "err", err)
		}
	}
}
