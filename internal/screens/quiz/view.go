package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/sciquiz/internal/session"
	"github.com/abhisek/sciquiz/internal/ui/components"
	"github.com/abhisek/sciquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}

	snap := s.session.Snapshot()

	var b strings.Builder

	b.WriteString(renderTopicBar(snap, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if snap.ErrorMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(snap.ErrorMsg))
		b.WriteString("\n\n")
	}

	switch {
	case snap.Loading:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Generating question" + strings.Repeat(".", 1+s.spinnerFrame%3)))
		b.WriteString("\n")

	case snap.Question == nil:
		if snap.ErrorMsg == "" {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Press G for a question"))
			b.WriteString("\n")
		}

	default:
		b.WriteString(s.renderQuestion(snap, width))
	}

	b.WriteString("\n")
	b.WriteString(renderStatsLine(snap.Stats, width))

	return b.String()
}

func (s *QuizScreen) renderQuestion(snap sess.Snapshot, width int) string {
	q := snap.Question

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("%s · difficulty %d", q.Topic.Display(), q.Difficulty)))
	b.WriteString("\n\n")

	mc := components.NewMultiChoice(q.Text, q.Options, q.CorrectAnswer)
	mc.Selected = s.cursor
	mc.Submitted = snap.ShowSolution
	mc.ChosenIndex = snap.SelectedAnswer
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, mc.View()))
	b.WriteString("\n")

	if snap.ShowSolution {
		if snap.SelectedAnswer == q.CorrectAnswer {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Success).
				Bold(true).
				Render("Correct!"))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Bold(true).
				Render("Not quite"))
		}
		b.WriteString("\n\n")

		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")

		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press G for the next question"))
		b.WriteString("\n")
	}

	return b.String()
}

func renderTopicBar(snap sess.Snapshot, width int) string {
	names := make([]string, 0, len(snap.Topics))
	for _, t := range snap.Topics {
		names = append(names, t.Display())
	}
	topics := "none"
	if len(names) > 0 {
		topics = strings.Join(names, ", ")
	}

	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Topics: %s   Difficulty: %d", topics, snap.Difficulty))
}

func renderStatsLine(st sess.Stats, width int) string {
	line := fmt.Sprintf("Score %d/%d   Accuracy %.0f%%   Streak %d   Best %d",
		st.Correct, st.Total, st.Accuracy()*100, st.Streak, st.BestStreak)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(line)
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Quit with a question open?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep playing"))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
