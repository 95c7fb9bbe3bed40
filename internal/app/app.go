package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sciquiz/internal/llm"
	"github.com/abhisek/sciquiz/internal/router"
	"github.com/abhisek/sciquiz/internal/screen"
	quizscreen "github.com/abhisek/sciquiz/internal/screens/quiz"
	sess "github.com/abhisek/sciquiz/internal/session"
	"github.com/abhisek/sciquiz/internal/ui/layout"
)

// Options carries the dependencies the TUI consumes.
type Options struct {
	// Session is the single session driving all screens.
	Session *sess.Session

	// Usage is the in-memory LLM usage log shown on the stats screen.
	Usage *llm.UsageLog
}

// AppModel is the root Bubble Tea model. It owns the screen router and
// the window size; everything else lives in the session.
type AppModel struct {
	router  *router.Router
	session *sess.Session
	width   int
	height  int
}

// newAppModel boots straight into the quiz screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router:  router.New(quizscreen.New(opts.Session, opts.Usage)),
		session: opts.Session,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			// At the root, esc belongs to the quiz screen (quit confirm).
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	st := m.session.Snapshot().Stats
	header := layout.RenderHeader(title, st.Streak, st.BestStreak, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
