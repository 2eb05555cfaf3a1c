package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/abhisek/smartlearn/internal/quiz"
	"github.com/abhisek/smartlearn/internal/runner"
	"github.com/abhisek/smartlearn/internal/session"
	"github.com/go-chi/chi/v5/middleware"
)

// Error codes returned in the error envelope.
const (
	CodeValidation            = "VALIDATION_ERROR"
	CodeNotFound              = "NOT_FOUND"
	CodeInvalidState          = "INVALID_STATE"
	CodeGenerationUnavailable = "GENERATION_UNAVAILABLE"
	CodeInternal              = "INTERNAL_ERROR"
)

type apiError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

const maxBodyBytes = 1 << 20

// badRequest is a request the handler rejected before reaching the engine.
type badRequest struct {
	msg string
}

func (e *badRequest) Error() string { return e.msg }

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: apiError{
		Code:      code,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	}})
}

// handleError maps engine errors onto the error envelope. Unexpected
// errors are logged and reported without detail.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *quiz.ValidationError
	var bad *badRequest
	switch {
	case errors.As(err, &verr), errors.As(err, &bad):
		writeError(w, r, http.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, runner.ErrNotFound), errors.Is(err, session.ErrNotFound):
		writeError(w, r, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, runner.ErrInvalidState):
		writeError(w, r, http.StatusConflict, CodeInvalidState, err.Error())
	case errors.Is(err, quiz.ErrGenerationUnavailable):
		writeError(w, r, http.StatusServiceUnavailable, CodeGenerationUnavailable, "No questions could be generated for this topic. Please try again later.")
	default:
		s.logger.Error("request failed", slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())), slog.Any("err", err))
		writeError(w, r, http.StatusInternalServerError, CodeInternal, "Internal server error")
	}
}

// decode reads a JSON body into dst. An empty body leaves dst untouched.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return &badRequest{msg: "Invalid request body"}
	}
	return nil
}
