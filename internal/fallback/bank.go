package fallback

import (
	"fmt"
	"strings"
)

// Item is a single multiple-choice question held by the bank.
// Correct is the literal text of one of Options.
type Item struct {
	Question    string
	Options     []string
	Correct     string
	Explanation string
}

// TopicSet groups the items for one topic.
type TopicSet struct {
	Name  string
	Items []Item
}

// SubjectSet groups the topics for one subject, in display order.
type SubjectSet struct {
	Name   string
	Topics []TopicSet
}

// Bank is a static, deterministic question source. Subjects, topics and
// items are kept in slices so that every lookup returns the same order.
// A Bank is read-only after construction and safe for concurrent use.
type Bank struct {
	subjects []SubjectSet
	generic  []Item // templates; {subject} and {topic} are substituted
}

// New creates a bank from the given subject sets and generic templates.
func New(subjects []SubjectSet, generic []Item) *Bank {
	return &Bank{subjects: subjects, generic: generic}
}

// Default returns the built-in bank.
func Default() *Bank {
	return New(defaultSubjects(), genericTemplates())
}

// Empty reports whether the bank has no questions at all.
func (b *Bank) Empty() bool {
	if len(b.generic) > 0 {
		return false
	}
	for _, s := range b.subjects {
		for _, t := range s.Topics {
			if len(t.Items) > 0 {
				return false
			}
		}
	}
	return true
}

// Topic returns the items for an exact subject/topic pair (case-insensitive).
func (b *Bank) Topic(subject, topic string) []Item {
	s := b.subject(subject)
	if s == nil {
		return nil
	}
	for _, t := range s.Topics {
		if strings.EqualFold(t.Name, topic) {
			return t.Items
		}
	}
	return nil
}

// Subject returns every item of a subject across all of its topics.
func (b *Bank) Subject(subject string) []Item {
	s := b.subject(subject)
	if s == nil {
		return nil
	}
	var out []Item
	for _, t := range s.Topics {
		out = append(out, t.Items...)
	}
	return out
}

// Generic returns the cross-subject pool with subject and topic filled in.
func (b *Bank) Generic(subject, topic string) []Item {
	r := strings.NewReplacer("{subject}", subject, "{topic}", topic)
	out := make([]Item, len(b.generic))
	for i, g := range b.generic {
		opts := make([]string, len(g.Options))
		for j, o := range g.Options {
			opts[j] = r.Replace(o)
		}
		out[i] = Item{
			Question:    r.Replace(g.Question),
			Options:     opts,
			Correct:     r.Replace(g.Correct),
			Explanation: r.Replace(g.Explanation),
		}
	}
	return out
}

// Sample picks n items for subject/topic without replacement, skipping any
// question text present in exclude. Pools are drawn in order: the exact
// topic, the rest of the subject, then the generic pool. When every pool is
// exhausted the combined pool is cycled with a numbered review label so
// that question texts stay distinct.
func (b *Bank) Sample(subject, topic string, n int, exclude map[string]bool) []Item {
	if n <= 0 {
		return nil
	}

	seen := make(map[string]bool, len(exclude))
	for k := range exclude {
		seen[Key(k)] = true
	}

	var pool []Item
	for _, group := range [][]Item{b.Topic(subject, topic), b.Subject(subject), b.Generic(subject, topic)} {
		for _, it := range group {
			k := Key(it.Question)
			if seen[k] {
				continue
			}
			seen[k] = true
			pool = append(pool, it)
		}
	}

	if len(pool) == 0 {
		return nil
	}
	if len(pool) >= n {
		return append([]Item(nil), pool[:n]...)
	}

	out := append([]Item(nil), pool...)
	for round := 2; len(out) < n; round++ {
		for _, it := range pool {
			if len(out) == n {
				break
			}
			it.Question = fmt.Sprintf("%s (review %d)", it.Question, round)
			out = append(out, it)
		}
	}
	return out
}

// Key normalizes question text for duplicate detection.
func Key(question string) string {
	return strings.ToLower(strings.Join(strings.Fields(question), " "))
}

func (b *Bank) subject(name string) *SubjectSet {
	for i := range b.subjects {
		if strings.EqualFold(b.subjects[i].Name, name) {
			return &b.subjects[i]
		}
	}
	return nil
}
