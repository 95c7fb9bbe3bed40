package quiz

import "time"

// generateDoneMsg is sent when a question fetch completes. The outcome
// lives in the session; Err is carried for tests and logging only.
type generateDoneMsg struct {
	Err error
}

// spinnerTickMsg is sent at short intervals while a fetch is in flight
// so the loading view keeps repainting.
type spinnerTickMsg time.Time
