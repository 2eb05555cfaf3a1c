package runner

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for unknown quiz or attempt IDs.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState is returned for an operation the attempt's current
	// state does not allow.
	ErrInvalidState = errors.New("invalid state")
)

// State is an attempt's lifecycle position.
type State int

const (
	Created State = iota
	InProgress
	Submitted
	Graded
)

var stateNames = [...]string{"created", "in_progress", "submitted", "graded"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// transitions is the only source of truth for legal moves. No state can
// be re-entered.
var transitions = map[State]State{
	Created:    InProgress,
	InProgress: Submitted,
	Submitted:  Graded,
}

func canTransition(from, to State) bool {
	next, ok := transitions[from]
	return ok && next == to
}

func invalidState(id string, s State, op string) error {
	return fmt.Errorf("%w: cannot %s attempt %s in state %s", ErrInvalidState, op, id, s)
}
