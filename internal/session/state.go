package session

import "github.com/abhisek/sciquiz/internal/quiz"

// DefaultDifficulty is the difficulty a fresh session starts with.
const DefaultDifficulty = 5

// NoAnswer is the SelectedAnswer value when no option is chosen.
const NoAnswer = -1

// DefaultTopics returns the topic selection a fresh session starts with.
func DefaultTopics() []quiz.Topic {
	return []quiz.Topic{
		quiz.TopicBiology,
		quiz.TopicChemistry,
		quiz.TopicPhysics,
	}
}

// Snapshot is a value copy of the session's visible state, taken under
// the session lock. Rendering layers read snapshots and never touch the
// session's internals. Question is shared by pointer; it is immutable
// once created.
type Snapshot struct {
	// SessionID is the UUID assigned when the session was created.
	SessionID string

	// Topics is the current topic selection in display order.
	Topics []quiz.Topic

	// Difficulty is the current difficulty setting (1-10).
	Difficulty int

	// Question is the current question, nil before the first
	// successful fetch.
	Question *quiz.Question

	// SelectedAnswer is the tentative answer index, NoAnswer when none.
	SelectedAnswer int

	// ShowSolution is true once the current question has been revealed.
	ShowSolution bool

	// Loading is true while a fetch is in flight.
	Loading bool

	// ErrorMsg is the last user-facing error line, empty when none.
	ErrorMsg string

	// Stats is the running score.
	Stats Stats
}

// HasTopic reports whether t is in the snapshot's topic selection.
func (s Snapshot) HasTopic(t quiz.Topic) bool {
	for _, st := range s.Topics {
		if st == t {
			return true
		}
	}
	return false
}
