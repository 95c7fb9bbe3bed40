package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sciquiz/internal/llm"
	"github.com/abhisek/sciquiz/internal/screen"
	sess "github.com/abhisek/sciquiz/internal/session"
	"github.com/abhisek/sciquiz/internal/ui/components"
	"github.com/abhisek/sciquiz/internal/ui/layout"
	"github.com/abhisek/sciquiz/internal/ui/theme"
)

// StatsScreen shows the session score detail and the LLM usage totals.
type StatsScreen struct {
	session *sess.Session
	usage   *llm.UsageLog

	confirmReset bool
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the stats screen. usage may be nil when no provider is
// wired (tests); the usage section is skipped then.
func New(session *sess.Session, usage *llm.UsageLog) *StatsScreen {
	return &StatsScreen{session: session, usage: usage}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	if s.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset statistics"},
			{Key: "N", Description: "Keep them"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Reset statistics"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirmReset {
		switch kmsg.String() {
		case "y", "Y":
			s.session.ResetStatistics()
			s.confirmReset = false
		case "n", "N", "esc":
			s.confirmReset = false
		}
		return s, nil
	}

	if kmsg.String() == "r" {
		s.confirmReset = true
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.confirmReset {
		return renderResetConfirm(width)
	}

	snap := s.session.Snapshot()
	st := snap.Stats

	var b strings.Builder
	b.WriteString("\n")

	var rows strings.Builder
	rows.WriteString(fmt.Sprintf("  Questions answered   %d\n", st.Total))
	rows.WriteString(fmt.Sprintf("  Correct              %d\n", st.Correct))
	rows.WriteString(fmt.Sprintf("  Current streak       %d\n", st.Streak))
	rows.WriteString(fmt.Sprintf("  Best streak          %d\n", st.BestStreak))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(rows.String())))
	b.WriteString("\n")

	bar := components.NewProgressBar("  Accuracy", st.Accuracy(), true, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	if s.usage != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("LLM usage")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 50)))))
		b.WriteString("\n\n")

		t := s.usage.Totals()
		var usage strings.Builder
		usage.WriteString(fmt.Sprintf("  Requests     %d (%d failed)\n", t.Requests, t.Failures))
		usage.WriteString(fmt.Sprintf("  Tokens       %d in / %d out\n", t.InputTokens, t.OutputTokens))
		usage.WriteString(fmt.Sprintf("  Est. cost    $%.4f\n", t.CostUSD))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(usage.String())))
	}

	return b.String()
}

func renderResetConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Reset all statistics?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, reset"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep them"))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
