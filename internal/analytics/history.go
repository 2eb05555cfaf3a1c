package analytics

import "github.com/abhisek/smartlearn/internal/session"

// DefaultRecentLimit is used when RecentActivity is given no limit.
const DefaultRecentLimit = 10

// RecentActivity returns up to limit interactions, newest first.
func RecentActivity(s *session.Session, limit int) []session.Interaction {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return newestFirst(s.Interactions, limit)
}

// QuizHistory returns every quiz attempt, newest first.
func QuizHistory(s *session.Session) []session.Interaction {
	attempts := s.QuizAttempts()
	return newestFirst(attempts, len(attempts))
}

// newestFirst walks the log backwards. The log is append-only, so
// reverse log order is reverse time order.
func newestFirst(log []session.Interaction, limit int) []session.Interaction {
	n := min(limit, len(log))
	out := make([]session.Interaction, 0, n)
	for i := len(log) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, log[i])
	}
	return out
}
