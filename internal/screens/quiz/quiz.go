package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sciquiz/internal/llm"
	"github.com/abhisek/sciquiz/internal/router"
	"github.com/abhisek/sciquiz/internal/screen"
	"github.com/abhisek/sciquiz/internal/screens/settings"
	"github.com/abhisek/sciquiz/internal/screens/stats"
	sess "github.com/abhisek/sciquiz/internal/session"
	"github.com/abhisek/sciquiz/internal/ui/layout"
)

// QuizScreen is the primary (and only root) screen: it displays the
// current question, collects the answer, and shows the revealed
// solution. All state lives in the session; the screen only keeps the
// option cursor and the quit-confirm flag.
type QuizScreen struct {
	session *sess.Session
	usage   *llm.UsageLog

	cursor       int
	confirmQuit  bool
	spinnerFrame int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen.
func New(session *sess.Session, usage *llm.UsageLog) *QuizScreen {
	return &QuizScreen{session: session, usage: usage}
}

// Init fetches the first question.
func (s *QuizScreen) Init() tea.Cmd {
	return s.startGenerate()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit"},
			{Key: "N", Description: "Keep playing"},
		}
	}

	snap := s.session.Snapshot()
	switch {
	case snap.Loading:
		return []layout.KeyHint{
			{Key: "S", Description: "Stats"},
			{Key: "T", Description: "Topics"},
		}
	case snap.Question != nil && !snap.ShowSolution:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓ Enter", Description: "Select"},
			{Key: "S", Description: "Stats"},
			{Key: "T", Description: "Topics"},
		}
	default:
		return []layout.KeyHint{
			{Key: "G", Description: "New question"},
			{Key: "S", Description: "Stats"},
			{Key: "T", Description: "Topics"},
			{Key: "Q", Description: "Quit"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generateDoneMsg:
		s.cursor = 0
		return s, nil

	case spinnerTickMsg:
		// Every delivery forces a frame; keep ticking while the fetch
		// is in flight.
		s.spinnerFrame++
		if s.session.Snapshot().Loading {
			return s, spinnerTickCmd()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, tea.Quit
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	snap := s.session.Snapshot()

	switch key {
	case "g", "n":
		if snap.Loading {
			return s, nil
		}
		return s, s.startGenerate()

	case "s":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: stats.New(s.session, s.usage)}
		}

	case "t":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: settings.New(s.session)}
		}

	case "q", "esc":
		// An open unanswered question gets a confirm; otherwise quit.
		if snap.Question != nil && !snap.ShowSolution && !snap.Loading {
			s.confirmQuit = true
			return s, nil
		}
		return s, tea.Quit
	}

	// Answer handling only while a question is open.
	if snap.Question == nil || snap.ShowSolution || snap.Loading {
		return s, nil
	}

	switch key {
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		s.cursor = i
		return s, s.answer(i)
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(snap.Question.Options)-1 {
			s.cursor++
		}
	case "enter":
		return s, s.answer(s.cursor)
	}

	return s, nil
}

// answer records the choice and reveals the solution. Scoring happens
// inside the session.
func (s *QuizScreen) answer(i int) tea.Cmd {
	if err := s.session.SelectAnswer(i); err != nil {
		return nil
	}
	s.session.Reveal()
	return nil
}

// startGenerate kicks off a fetch together with the spinner tick that
// keeps the loading view repainting until generateDoneMsg arrives.
func (s *QuizScreen) startGenerate() tea.Cmd {
	return tea.Batch(s.generateCmd(), spinnerTickCmd())
}

// generateCmd runs the fetch off the UI task and rejoins with a
// completion message. Overlapping requests are rejected by the session.
func (s *QuizScreen) generateCmd() tea.Cmd {
	session := s.session
	return func() tea.Msg {
		return generateDoneMsg{Err: session.Generate(context.Background())}
	}
}

const spinnerInterval = 120 * time.Millisecond

func spinnerTickCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
