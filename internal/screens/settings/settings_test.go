package settings

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sciquiz/internal/quiz"
	sess "github.com/abhisek/sciquiz/internal/session"
)

type nopGenerator struct{}

func (nopGenerator) Generate(context.Context, quiz.Params) (*quiz.Question, error) {
	return nil, nil
}

func TestToggleAppliesImmediately(t *testing.T) {
	session := sess.New(nopGenerator{})
	s := New(session)

	// First row is biology, selected by default; space removes it.
	s.Update(keyPress(' '))

	snap := session.Snapshot()
	if snap.HasTopic(quiz.TopicBiology) {
		t.Error("biology should be deselected")
	}
	if !snap.HasTopic(quiz.TopicChemistry) || !snap.HasTopic(quiz.TopicPhysics) {
		t.Error("other defaults must survive the toggle")
	}

	// Toggle back on.
	s.Update(keyPress(' '))
	if !session.Snapshot().HasTopic(quiz.TopicBiology) {
		t.Error("biology should be selected again")
	}
}

func TestToggleAllOff(t *testing.T) {
	session := sess.New(nopGenerator{})
	s := New(session)

	// The three defaults occupy the first three rows; untick each.
	for range sess.DefaultTopics() {
		s.Update(keyPress(' '))
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}

	if got := len(session.Snapshot().Topics); got != 0 {
		t.Errorf("expected empty selection, got %d topics", got)
	}
}

func TestDifficultyInput(t *testing.T) {
	session := sess.New(nopGenerator{})
	s := New(session)

	// Move the cursor onto the difficulty row.
	for i := 0; i < difficultyRow; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.cursor != difficultyRow {
		t.Fatalf("cursor = %d, want %d", s.cursor, difficultyRow)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	s.Update(keyPress('9'))

	if got := session.Snapshot().Difficulty; got != 9 {
		t.Errorf("difficulty = %d, want 9", got)
	}
}

func TestCursorBounds(t *testing.T) {
	session := sess.New(nopGenerator{})
	s := New(session)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.cursor != 0 {
		t.Errorf("cursor moved above first row: %d", s.cursor)
	}

	for i := 0; i < 20; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.cursor != difficultyRow {
		t.Errorf("cursor moved past difficulty row: %d", s.cursor)
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}
