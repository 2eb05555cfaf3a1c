package analytics

import (
	"fmt"
	"sort"

	"github.com/abhisek/smartlearn/internal/fallback"
	"github.com/abhisek/smartlearn/internal/session"
)

// Priority orders recommendations; higher comes first.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// MaxRecommendations caps Recommend's output.
const MaxRecommendations = 5

// Rule thresholds beyond the score constants.
const (
	weakSubjectMinAttempts = 2
	minSubjects            = 3
	minQuestions           = 5
)

// Recommendation is one suggested next step.
type Recommendation struct {
	Type        string   `json:"type"`
	Priority    Priority `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Action      string   `json:"action"`
	Subject     string   `json:"subject"`
}

// facts is what the rules look at, computed once per call.
type facts struct {
	subjects  []string
	stats     map[string]SubjectStats
	topics    []string
	topicAvg  map[string]float64
	explored  map[string]bool
	questions int
	mostAsked string
}

func gather(s *session.Session) *facts {
	f := &facts{
		subjects:  subjectOrder(s.Interactions),
		stats:     BySubject(s),
		explored:  make(map[string]bool),
		questions: s.Counters.TotalQuestions,
	}
	f.topics, f.topicAvg = topicAverages(s.Interactions)
	for _, in := range s.Interactions {
		f.explored[in.Topic] = true
	}
	asked := 0
	for _, subj := range f.subjects {
		if n := f.stats[subj].QuestionsAsked; n > asked {
			f.mostAsked, asked = subj, n
		}
	}
	return f
}

// rule returns a recommendation when its trigger holds, or nil.
type rule func(f *facts) *Recommendation

// rules run in this order, which is also the tie-break within a priority.
var rules = []rule{
	weakSubject,
	lowTopic,
	untestedSubject,
	strongTopic,
	unexploredTopic,
	fewSubjects,
	fewQuestions,
}

// Recommend applies the rules to the session's log, orders the results by
// priority and keeps the first MaxRecommendations.
func Recommend(s *session.Session) []Recommendation {
	f := gather(s)
	out := []Recommendation{}
	for _, r := range rules {
		if rec := r(f); rec != nil {
			out = append(out, *rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.rank() > out[j].Priority.rank()
	})
	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}
	return out
}

func weakSubject(f *facts) *Recommendation {
	for _, subj := range f.subjects {
		st := f.stats[subj]
		if st.QuizAttempts >= weakSubjectMinAttempts && st.AverageQuizScore < WeakSubjectScore {
			return &Recommendation{
				Type:        "subject_focus",
				Priority:    PriorityHigh,
				Title:       "Focus on " + subj,
				Description: fmt.Sprintf("You've shown some challenges in %s. Consider reviewing fundamental concepts.", subj),
				Action:      fmt.Sprintf("Take a beginner quiz on %s basics", subj),
				Subject:     subj,
			}
		}
	}
	return nil
}

func lowTopic(f *facts) *Recommendation {
	for _, t := range f.topics {
		if f.topicAvg[t] < ImprovementScore {
			return &Recommendation{
				Type:        "quiz_practice",
				Priority:    PriorityHigh,
				Title:       "Practice " + t,
				Description: fmt.Sprintf("Your quiz performance in %s suggests you need more practice.", t),
				Action:      "Take more quizzes on " + t,
				Subject:     "General",
			}
		}
	}
	return nil
}

func untestedSubject(f *facts) *Recommendation {
	if f.mostAsked == "" || f.stats[f.mostAsked].QuizAttempts > 0 {
		return nil
	}
	subj := f.mostAsked
	return &Recommendation{
		Type:        "quiz_suggestion",
		Priority:    PriorityHigh,
		Title:       "Test yourself in " + subj,
		Description: fmt.Sprintf("You've asked the most questions about %s but haven't taken a quiz on it yet.", subj),
		Action:      "Generate a quiz on " + subj,
		Subject:     subj,
	}
}

func strongTopic(f *facts) *Recommendation {
	for _, t := range f.topics {
		if f.topicAvg[t] >= HighScore {
			return &Recommendation{
				Type:        "quiz_advancement",
				Priority:    PriorityMedium,
				Title:       "Advance in " + t,
				Description: fmt.Sprintf("You're doing well in %s. Try more challenging questions.", t),
				Action:      "Take an advanced quiz on " + t,
				Subject:     "General",
			}
		}
	}
	return nil
}

func unexploredTopic(f *facts) *Recommendation {
	for _, subj := range f.subjects {
		for _, t := range fallback.CommonTopics(subj) {
			if !f.explored[t] {
				return &Recommendation{
					Type:        "topic_exploration",
					Priority:    PriorityMedium,
					Title:       "Explore " + t,
					Description: fmt.Sprintf("You haven't covered %s yet. This could expand your knowledge.", t),
					Action:      "Generate a quiz on " + t,
					Subject:     subj,
				}
			}
		}
	}
	return nil
}

func fewSubjects(f *facts) *Recommendation {
	if len(f.subjects) >= minSubjects {
		return nil
	}
	return &Recommendation{
		Type:        "subject_exploration",
		Priority:    PriorityLow,
		Title:       "Explore a new subject",
		Description: fmt.Sprintf("You've explored %d of the available subjects. Broad practice builds connections between them.", len(f.subjects)),
		Action:      "Ask a question in a subject you haven't tried",
		Subject:     "General",
	}
}

func fewQuestions(f *facts) *Recommendation {
	if f.questions >= minQuestions {
		return nil
	}
	return &Recommendation{
		Type:        "engagement",
		Priority:    PriorityLow,
		Title:       "Build learning momentum",
		Description: "Start with simple questions to build confidence.",
		Action:      "Ask any question that comes to mind",
		Subject:     "General",
	}
}
