package quiz

import (
	"context"

	"github.com/abhisek/smartlearn/internal/fallback"
)

// Draft is a generator's raw output.
type Draft struct {
	Title      string
	Candidates []Candidate
}

// Source produces candidate questions. Sources are tried in order by the
// Builder; an error or an empty draft moves on to the next one.
type Source interface {
	// Name identifies the source in logs and Quiz.Generator.
	Name() string
	Generate(ctx context.Context, p Params) (*Draft, error)
}

// BankSource serves questions from the fallback bank. It is always the
// last source in a Builder's chain.
type BankSource struct {
	bank *fallback.Bank
}

func NewBankSource(bank *fallback.Bank) *BankSource {
	return &BankSource{bank: bank}
}

func (s *BankSource) Name() string { return "fallback-bank" }

func (s *BankSource) Generate(_ context.Context, p Params) (*Draft, error) {
	items := s.Sample(p, p.Count, nil)
	if len(items) == 0 {
		return nil, ErrGenerationUnavailable
	}
	return &Draft{Candidates: items}, nil
}

// Sample draws n candidates for p, skipping prompts in exclude.
func (s *BankSource) Sample(p Params, n int, exclude map[string]bool) []Candidate {
	if s.bank == nil {
		return nil
	}
	items := s.bank.Sample(p.Subject, p.Topic, n, exclude)
	out := make([]Candidate, len(items))
	for i, it := range items {
		out[i] = Candidate{
			Question:      it.Question,
			Options:       append([]string(nil), it.Options...),
			CorrectOption: it.Correct,
			Explanation:   it.Explanation,
		}
	}
	return out
}
