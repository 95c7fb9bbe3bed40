package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/sciquiz/internal/llm"
	"github.com/abhisek/sciquiz/internal/quiz"
)

// NoTopicsMessage is the error line shown when Generate is called with
// an empty topic selection.
const NoTopicsMessage = "Please select at least one topic"

var (
	// ErrNoTopics is returned by Generate when no topics are selected.
	ErrNoTopics = errors.New("no topics selected")

	// ErrBusy is returned by Generate while a fetch is already in
	// flight. The second call is rejected with no side effects.
	ErrBusy = errors.New("a question fetch is already in flight")

	// ErrInvalidAnswer is returned by SelectAnswer for an out-of-range
	// index or when no question is loaded. Rejected, never clamped.
	ErrInvalidAnswer = errors.New("answer index out of range")
)

// Session owns all mutable quiz state for one process lifetime: the
// current question, the tentative answer, the running statistics, and
// the topic/difficulty settings. One instance exists per run.
//
// Methods are safe for the one-UI-task-plus-one-fetch-task pattern: an
// internal mutex guards every field, and the lock is never held across
// the network call (the loading flag covers that window).
type Session struct {
	gen quiz.Generator

	mu         sync.Mutex
	id         string
	topics     []quiz.Topic
	difficulty int
	question   *quiz.Question
	selected   int
	revealed   bool
	scored     bool
	loading    bool
	errMsg     string
	stats      Stats
	watchers   []func(Snapshot)

	// pick chooses a topic index in [0,n). Swapped out in tests for a
	// deterministic pick.
	pick func(n int) int
}

// New creates a Session with the default topics, difficulty 5, zero
// statistics, and a fresh session ID.
func New(gen quiz.Generator) *Session {
	return &Session{
		gen:        gen,
		id:         uuid.NewString(),
		topics:     DefaultTopics(),
		difficulty: DefaultDifficulty,
		selected:   NoAnswer,
		pick:       rand.IntN,
	}
}

// ID returns the session's UUID.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// SelectTopics replaces the selected-topic set. Duplicates are dropped,
// order is preserved for display. An empty selection is representable;
// Generate enforces the non-empty precondition.
func (s *Session) SelectTopics(topics []quiz.Topic) {
	deduped := make([]quiz.Topic, 0, len(topics))
	seen := make(map[quiz.Topic]bool, len(topics))
	for _, t := range topics {
		if seen[t] {
			continue
		}
		seen[t] = true
		deduped = append(deduped, t)
	}

	s.mu.Lock()
	s.topics = deduped
	s.mu.Unlock()
	s.notify()
}

// SetDifficulty sets the difficulty, clamped to 1-10.
func (s *Session) SetDifficulty(n int) {
	s.mu.Lock()
	s.difficulty = quiz.ClampDifficulty(n)
	s.mu.Unlock()
	s.notify()
}

// Generate fetches a new question for one topic picked uniformly at
// random from the selected set. On success the question is installed
// and Total is incremented. On failure the error becomes the session's
// error line and the previous question (if any) stays in place.
//
// Returns ErrBusy while a fetch is in flight and ErrNoTopics when the
// selection is empty; neither performs a network call. The fetch error
// itself is returned for callers that branch on the kind.
func (s *Session) Generate(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrBusy
	}
	if len(s.topics) == 0 {
		s.errMsg = NoTopicsMessage
		s.mu.Unlock()
		s.notify()
		return ErrNoTopics
	}

	topic := s.topics[s.pick(len(s.topics))]
	params := quiz.Params{Topic: topic, Difficulty: s.difficulty}
	id := s.id

	s.loading = true
	s.selected = NoAnswer
	s.revealed = false
	s.errMsg = ""
	s.mu.Unlock()
	s.notify()

	// Recorded LLM usage is labeled with the session that caused it.
	q, err := s.gen.Generate(llm.WithSessionID(ctx, id), params)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.errMsg = quiz.UserMessage(err)
		s.mu.Unlock()
		s.notify()
		return err
	}
	s.question = q
	s.scored = false
	s.stats.Total++
	s.mu.Unlock()
	s.notify()
	return nil
}

// SelectAnswer records the tentative answer index. A no-op once the
// solution is revealed; out-of-range indexes and no-question states are
// rejected with ErrInvalidAnswer.
func (s *Session) SelectAnswer(i int) error {
	s.mu.Lock()
	if s.revealed {
		s.mu.Unlock()
		return nil
	}
	if s.question == nil || i < 0 || i >= len(s.question.Options) {
		s.mu.Unlock()
		return ErrInvalidAnswer
	}
	s.selected = i
	s.mu.Unlock()
	s.notify()
	return nil
}

// Reveal shows the solution and scores the selected answer. A no-op
// when no question is loaded, no answer is selected, or the current
// question was already scored: a second Reveal without an intervening
// successful Generate never double-counts. Total is not touched here.
func (s *Session) Reveal() {
	s.mu.Lock()
	if s.question == nil || s.selected == NoAnswer || s.scored {
		s.mu.Unlock()
		return
	}
	s.revealed = true
	s.scored = true
	s.stats.Record(s.selected == s.question.CorrectAnswer)
	s.mu.Unlock()
	s.notify()
}

// ResetStatistics zeroes all four counters.
func (s *Session) ResetStatistics() {
	s.mu.Lock()
	s.stats.Reset()
	s.mu.Unlock()
	s.notify()
}

// Snapshot returns a value copy of the visible state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	topics := make([]quiz.Topic, len(s.topics))
	copy(topics, s.topics)
	return Snapshot{
		SessionID:      s.id,
		Topics:         topics,
		Difficulty:     s.difficulty,
		Question:       s.question,
		SelectedAnswer: s.selected,
		ShowSolution:   s.revealed,
		Loading:        s.loading,
		ErrorMsg:       s.errMsg,
		Stats:          s.stats,
	}
}

// Watch registers a callback invoked with a fresh Snapshot after every
// state mutation. Callbacks run synchronously on the mutating task,
// outside the session lock, in registration order.
func (s *Session) Watch(fn func(Snapshot)) {
	s.mu.Lock()
	s.watchers = append(s.watchers, fn)
	s.mu.Unlock()
}

func (s *Session) notify() {
	s.mu.Lock()
	snap := s.snapshotLocked()
	watchers := make([]func(Snapshot), len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(snap)
	}
}
