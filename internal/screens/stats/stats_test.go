package stats

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sciquiz/internal/quiz"
	sess "github.com/abhisek/sciquiz/internal/session"
)

type stubGenerator struct{ question *quiz.Question }

func (g *stubGenerator) Generate(context.Context, quiz.Params) (*quiz.Question, error) {
	return g.question, nil
}

func scoredSession(t *testing.T) *sess.Session {
	t.Helper()
	session := sess.New(&stubGenerator{question: &quiz.Question{
		Text:          "Which acid is found in stomach fluid?",
		Options:       []string{"Sulfuric", "Hydrochloric", "Citric", "Acetic"},
		CorrectAnswer: 1,
		Explanation:   "Gastric juice is mostly hydrochloric acid.",
		Topic:         quiz.TopicChemistry,
		Difficulty:    5,
	}})
	if err := session.Generate(context.Background()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := session.SelectAnswer(1); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	session.Reveal()
	return session
}

func TestResetRequiresConfirm(t *testing.T) {
	session := scoredSession(t)
	s := New(session, nil)

	s.Update(keyPress('r'))
	if !s.confirmReset {
		t.Fatal("r should ask for confirmation")
	}
	if session.Snapshot().Stats.Total == 0 {
		t.Fatal("stats reset before confirmation")
	}

	s.Update(keyPress('n'))
	if s.confirmReset {
		t.Fatal("n should cancel")
	}
	if session.Snapshot().Stats.Total != 1 {
		t.Error("cancel must keep statistics")
	}

	s.Update(keyPress('r'))
	s.Update(keyPress('y'))
	if got := session.Snapshot().Stats; got != (sess.Stats{}) {
		t.Errorf("stats after confirmed reset = %+v", got)
	}
}

func TestViewWithoutUsageLog(t *testing.T) {
	s := New(scoredSession(t), nil)
	if out := s.View(80, 24); out == "" {
		t.Error("expected rendered output")
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}
