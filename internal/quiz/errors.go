package quiz

import (
	"errors"
	"fmt"
)

// ErrGenerationUnavailable means no source, the bank included, produced a
// single usable question.
var ErrGenerationUnavailable = errors.New("quiz generation unavailable")

// ValidationError reports a request parameter that cannot be defaulted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
