package quiz

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/smartlearn/internal/fallback"
	"github.com/google/uuid"
)

// Builder turns Params into a Quiz. Generators are tried in order and the
// bank is the terminal source, so Build fails only when the bank is empty
// and every generator failed too.
type Builder struct {
	generators []Source
	bank       *BankSource
	repairers  []Repairer
	now        func() time.Time
	timed      bool
	logger     *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithSources sets the generators tried before the bank, in priority order.
func WithSources(sources ...Source) Option {
	return func(b *Builder) { b.generators = sources }
}

// WithRepairers replaces the default repair pipeline.
func WithRepairers(r ...Repairer) Option {
	return func(b *Builder) { b.repairers = r }
}

// WithClock sets the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// WithoutTimeLimit builds untimed quizzes.
func WithoutTimeLimit() Option {
	return func(b *Builder) { b.timed = false }
}

func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

func NewBuilder(bank *fallback.Bank, opts ...Option) *Builder {
	b := &Builder{
		bank:      NewBankSource(bank),
		repairers: DefaultRepairers(),
		now:       time.Now,
		timed:     true,
		logger:    slog.Default(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Build validates p and produces a quiz with exactly p.Count questions
// (after clamping) unless the bank runs dry. It returns a
// *ValidationError for bad parameters and ErrGenerationUnavailable when
// nothing could be produced.
func (b *Builder) Build(ctx context.Context, p Params) (*Quiz, error) {
	p, err := p.Normalize()
	if err != nil {
		return nil, err
	}

	q := &Quiz{
		ID:         uuid.NewString(),
		Subject:    p.Subject,
		Topic:      p.Topic,
		Difficulty: p.Difficulty,
		Type:       p.Type,
		CreatedAt:  b.now(),
		Source:     OriginFallback,
	}

	for _, src := range b.generators {
		draft, err := src.Generate(ctx, p)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			b.logger.Warn("quiz source failed", "source", src.Name(), "subject", p.Subject, "topic", p.Topic, "err", err)
			continue
		}
		questions, dropped := repair(draft.Candidates, b.repairers)
		if len(dropped) > 0 {
			b.logger.Info("dropped malformed questions", "source", src.Name(), "dropped", len(dropped), "err", errors.Join(dropped...))
		}
		if len(questions) == 0 {
			b.logger.Warn("quiz source returned no usable questions", "source", src.Name())
			continue
		}
		if len(questions) > p.Count {
			questions = questions[:p.Count]
		}
		q.Questions = questions
		q.Title = strings.TrimSpace(draft.Title)
		q.Source = OriginGenerated
		q.Generator = src.Name()
		break
	}

	if q.Source == OriginFallback {
		q.Generator = b.bank.Name()
	}
	if missing := p.Count - len(q.Questions); missing > 0 {
		added := b.topUp(p, q, missing)
		if q.Source == OriginGenerated {
			q.Padded = added
		}
	}
	if len(q.Questions) == 0 {
		return nil, ErrGenerationUnavailable
	}

	if q.Title == "" {
		q.Title = DefaultTitle(p)
	}
	if b.timed {
		q.TimeLimit = TimeLimit(p.Difficulty, len(q.Questions))
	}
	return q, nil
}

// topUp appends up to n bank questions to q, skipping prompts already
// present, and returns how many were added.
func (b *Builder) topUp(p Params, q *Quiz, n int) int {
	exclude := make(map[string]bool, len(q.Questions))
	for _, qu := range q.Questions {
		exclude[qu.Prompt] = true
	}
	questions, _ := repair(b.bank.Sample(p, n, exclude), b.repairers)
	added := 0
	for _, qu := range questions {
		if exclude[qu.Prompt] {
			continue
		}
		q.Questions = append(q.Questions, qu)
		added++
	}
	return added
}
