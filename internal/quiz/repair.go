package quiz

import (
	"fmt"
	"strings"

	"github.com/abhisek/smartlearn/internal/fallback"
)

// Candidate is a question as a generator produced it, before repair.
type Candidate struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
	Explanation   string   `json:"explanation"`
}

// Repairer checks one candidate and may fix it in place. An error means
// the candidate is dropped.
// Implementations should be stateless and safe for concurrent use.
type Repairer interface {
	Name() string
	Repair(c *Candidate) error
}

// RepairError explains why a candidate was dropped.
type RepairError struct {
	Repairer string
	Message  string
}

func (e *RepairError) Error() string {
	return fmt.Sprintf("repair %q: %s", e.Repairer, e.Message)
}

// DefaultRepairers is the standard pipeline, in order.
func DefaultRepairers() []Repairer {
	return []Repairer{
		StructuralRepairer{},
		DuplicateOptionRepairer{},
		CorrectOptionRepairer{},
		OptionCountRepairer{Min: 2, Max: 6},
	}
}

// StructuralRepairer trims text fields and drops blank options.
type StructuralRepairer struct{}

func (StructuralRepairer) Name() string { return "structural" }

func (r StructuralRepairer) Repair(c *Candidate) error {
	c.Question = strings.TrimSpace(c.Question)
	c.CorrectOption = strings.TrimSpace(c.CorrectOption)
	c.Explanation = strings.TrimSpace(c.Explanation)
	if c.Question == "" {
		return &RepairError{Repairer: r.Name(), Message: "question text is empty"}
	}
	opts := c.Options[:0]
	for _, o := range c.Options {
		if o = strings.TrimSpace(o); o != "" {
			opts = append(opts, o)
		}
	}
	c.Options = opts
	return nil
}

// DuplicateOptionRepairer removes repeated option values, keeping the first.
type DuplicateOptionRepairer struct{}

func (DuplicateOptionRepairer) Name() string { return "duplicate-option" }

func (DuplicateOptionRepairer) Repair(c *Candidate) error {
	seen := make(map[string]bool, len(c.Options))
	opts := c.Options[:0]
	for _, o := range c.Options {
		if seen[o] {
			continue
		}
		seen[o] = true
		opts = append(opts, o)
	}
	c.Options = opts
	return nil
}

// CorrectOptionRepairer requires the correct option to be one of the
// options. A bare letter ("B", "b)") naming an option by position is
// rewritten to that option's text.
type CorrectOptionRepairer struct{}

func (CorrectOptionRepairer) Name() string { return "correct-option" }

func (r CorrectOptionRepairer) Repair(c *Candidate) error {
	if c.CorrectOption == "" {
		return &RepairError{Repairer: r.Name(), Message: "no correct option"}
	}
	for _, o := range c.Options {
		if o == c.CorrectOption {
			return nil
		}
	}
	if i, ok := letterIndex(c.CorrectOption); ok && i < len(c.Options) {
		c.CorrectOption = c.Options[i]
		return nil
	}
	return &RepairError{Repairer: r.Name(), Message: fmt.Sprintf("correct option %q is not among the options", c.CorrectOption)}
}

func letterIndex(s string) (int, bool) {
	s = strings.TrimRight(strings.TrimSpace(s), ").:")
	if len(s) != 1 {
		return 0, false
	}
	ch := s[0] | 0x20 // lower-case ASCII letters
	if ch < 'a' || ch > 'z' {
		return 0, false
	}
	return int(ch - 'a'), true
}

// OptionCountRepairer bounds the number of options.
type OptionCountRepairer struct {
	Min, Max int
}

func (OptionCountRepairer) Name() string { return "option-count" }

func (r OptionCountRepairer) Repair(c *Candidate) error {
	if n := len(c.Options); n < r.Min || n > r.Max {
		return &RepairError{Repairer: r.Name(), Message: fmt.Sprintf("%d options, want %d to %d", n, r.Min, r.Max)}
	}
	return nil
}

// repair runs each candidate through the pipeline and drops failures and
// repeated question texts. It returns the surviving questions and one
// error per dropped candidate.
func repair(cands []Candidate, pipeline []Repairer) ([]Question, []error) {
	var (
		out     []Question
		dropped []error
		seen    = make(map[string]bool, len(cands))
	)
	for i := range cands {
		c := cands[i]
		c.Options = append([]string(nil), c.Options...)

		var err error
		for _, r := range pipeline {
			if err = r.Repair(&c); err != nil {
				break
			}
		}
		if err == nil {
			k := fallback.Key(c.Question)
			if seen[k] {
				err = &RepairError{Repairer: "duplicate-question", Message: "question text repeated"}
			}
			seen[k] = true
		}
		if err != nil {
			dropped = append(dropped, fmt.Errorf("candidate %d: %w", i+1, err))
			continue
		}
		out = append(out, Question{
			Prompt:      c.Question,
			Options:     c.Options,
			Correct:     c.CorrectOption,
			Explanation: c.Explanation,
		})
	}
	return out, dropped
}
