package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/abhisek/smartlearn/internal/analytics"
)

const maxHistoryLimit = 100

func (s *Server) ask(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Subject  string `json:"subject"`
		Question string `json:"question"`
	}
	if err := decode(w, r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}
	question := strings.TrimSpace(body.Question)
	if question == "" {
		s.handleError(w, r, &badRequest{msg: "question is required"})
		return
	}
	subject := strings.TrimSpace(body.Subject)
	if subject == "" {
		subject = "General"
	}

	res, err := s.engine.Ask(r.Context(), SessionID(r.Context()), subject, question)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.engine.Dashboard(r.Context(), SessionID(r.Context()))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) history(w http.ResponseWriter, r *http.Request) {
	limit := analytics.DefaultRecentLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxHistoryLimit {
			s.handleError(w, r, &badRequest{msg: "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	sid := SessionID(r.Context())
	hist, err := s.engine.History(r.Context(), sid, limit)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"history":    hist,
		"session_id": sid,
	})
}

func (s *Server) recommendations(w http.ResponseWriter, r *http.Request) {
	sid := SessionID(r.Context())
	recs, err := s.engine.Recommendations(r.Context(), sid)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"recommendations": recs,
		"session_id":      sid,
	})
}

func (s *Server) resetSession(w http.ResponseWriter, r *http.Request) {
	sid := SessionID(r.Context())
	if err := s.engine.Reset(r.Context(), sid); err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    "Session reset successfully",
		"session_id": sid,
	})
}
