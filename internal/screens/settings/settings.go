package settings

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sciquiz/internal/quiz"
	"github.com/abhisek/sciquiz/internal/screen"
	sess "github.com/abhisek/sciquiz/internal/session"
	"github.com/abhisek/sciquiz/internal/ui/components"
	"github.com/abhisek/sciquiz/internal/ui/layout"
	"github.com/abhisek/sciquiz/internal/ui/theme"
)

// difficultyRow is the cursor position of the difficulty input, one
// past the last topic row.
var difficultyRow = len(quiz.AllTopics())

// SettingsScreen lets the player toggle topics and set the difficulty.
// Every change is applied to the session immediately, so backing out
// with Esc never loses edits.
type SettingsScreen struct {
	session  *sess.Session
	cursor   int
	selected map[quiz.Topic]bool
	input    components.TextInput
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen seeded from the session's current
// topic selection and difficulty.
func New(session *sess.Session) *SettingsScreen {
	snap := session.Snapshot()

	selected := make(map[quiz.Topic]bool, len(snap.Topics))
	for _, t := range snap.Topics {
		selected[t] = true
	}

	input := components.NewTextInput("5", true, 2)
	input.Model.SetValue(strconv.Itoa(snap.Difficulty))

	return &SettingsScreen{
		session:  session,
		selected: selected,
		input:    input,
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Topics & Difficulty"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
	}
	if s.cursor < difficultyRow {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "0-9", Description: "Difficulty"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil
	case "down", "j":
		if s.cursor < difficultyRow {
			s.cursor++
		}
		return s, nil
	case " ", "space":
		if s.cursor < difficultyRow {
			t := quiz.AllTopics()[s.cursor]
			s.selected[t] = !s.selected[t]
			s.session.SelectTopics(s.topicSelection())
		}
		return s, nil
	}

	// Remaining keys go to the difficulty input when it has the cursor.
	if s.cursor == difficultyRow {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if n, err := s.input.NumericValue(); err == nil {
			s.session.SetDifficulty(n)
		}
		return s, cmd
	}

	return s, nil
}

// topicSelection returns the checked topics in the fixed display order.
func (s *SettingsScreen) topicSelection() []quiz.Topic {
	var topics []quiz.Topic
	for _, t := range quiz.AllTopics() {
		if s.selected[t] {
			topics = append(topics, t)
		}
	}
	return topics
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pick the topics questions are drawn from"))
	b.WriteString("\n\n")

	var rows strings.Builder
	for i, t := range quiz.AllTopics() {
		mark := "[ ]"
		if s.selected[t] {
			mark = "[x]"
		}
		line := fmt.Sprintf("  %s %s", mark, t.Display())
		if i == s.cursor {
			line = "▸" + line[1:]
			rows.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			rows.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		rows.WriteString("\n")
	}

	rows.WriteString("\n")
	diffLine := fmt.Sprintf("  Difficulty (1-10): %s", s.input.View())
	if s.cursor == difficultyRow {
		diffLine = "▸" + diffLine[1:]
		rows.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(diffLine))
	} else {
		rows.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(diffLine))
	}
	rows.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))

	if len(s.topicSelection()) == 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Select at least one topic to generate questions"))
	}

	return b.String()
}
