package analytics

import (
	"time"

	"github.com/abhisek/smartlearn/internal/session"
)

// SubjectStats is the per-subject breakdown of a session.
type SubjectStats struct {
	QuestionsAsked    int       `json:"questions_asked"`
	QuizAttempts      int       `json:"quiz_attempts"`
	AverageQuizScore  float64   `json:"average_quiz_score"`
	TopicsCovered     []string  `json:"topics_covered"`
	LastActivity      time.Time `json:"last_activity"`
	HighScores        int       `json:"high_scores"`
	ImprovementNeeded int       `json:"improvement_needed"`
}

// BySubject groups the log by subject. Topics are listed in first-seen
// order; the placeholder General topic is left out.
func BySubject(s *session.Session) map[string]SubjectStats {
	out := make(map[string]SubjectStats)
	totals := make(map[string]float64)
	seenTopic := make(map[string]map[string]bool)

	for _, in := range s.Interactions {
		st, ok := out[in.Subject]
		if !ok {
			st.TopicsCovered = []string{}
			seenTopic[in.Subject] = make(map[string]bool)
		}
		switch in.Kind {
		case session.KindQuestion:
			st.QuestionsAsked++
		case session.KindQuizAttempt:
			st.QuizAttempts++
			totals[in.Subject] += in.Score
			if in.Score >= HighScore {
				st.HighScores++
			}
			if in.Score < ImprovementScore {
				st.ImprovementNeeded++
			}
		}
		if in.Topic != "" && in.Topic != session.GeneralTopic && !seenTopic[in.Subject][in.Topic] {
			seenTopic[in.Subject][in.Topic] = true
			st.TopicsCovered = append(st.TopicsCovered, in.Topic)
		}
		if in.Timestamp.After(st.LastActivity) {
			st.LastActivity = in.Timestamp
		}
		out[in.Subject] = st
	}

	for subj, st := range out {
		if st.QuizAttempts > 0 {
			st.AverageQuizScore = round2(totals[subj] / float64(st.QuizAttempts))
			out[subj] = st
		}
	}
	return out
}

// topicAverages averages quiz scores per topic, in first-seen order.
func topicAverages(log []session.Interaction) ([]string, map[string]float64) {
	var order []string
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, in := range log {
		if in.Kind != session.KindQuizAttempt {
			continue
		}
		if counts[in.Topic] == 0 {
			order = append(order, in.Topic)
		}
		sums[in.Topic] += in.Score
		counts[in.Topic]++
	}
	avgs := make(map[string]float64, len(order))
	for _, t := range order {
		avgs[t] = sums[t] / float64(counts[t])
	}
	return order, avgs
}
