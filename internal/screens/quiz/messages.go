package quiz

import (
	"time"

	qz "github.com/abhisek/smartlearn/internal/quiz"
	"github.com/abhisek/smartlearn/internal/runner"
)

// quizReadyMsg is sent once the quiz is built and an attempt is open.
type quizReadyMsg struct {
	Quiz     *qz.Quiz
	Snapshot *runner.Snapshot
	Err      error
}

// snapshotMsg carries the attempt state after an answer or a timer refresh.
type snapshotMsg struct {
	Snapshot *runner.Snapshot
	Err      error
}

// gradedMsg is sent when the attempt has a report, whether submitted by
// the player or by the deadline.
type gradedMsg struct {
	Report *runner.Report
	Err    error
}

// timerTickMsg is sent every second while a timed attempt is open.
type timerTickMsg time.Time

// spinnerTickMsg animates the loading indicator.
type spinnerTickMsg time.Time
