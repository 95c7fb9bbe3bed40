package quiz

import "testing"

func validQuestion() *Question {
	return &Question{
		Text:          "Which gas do plants absorb during photosynthesis?",
		Options:       []string{"Oxygen", "Carbon dioxide", "Nitrogen", "Hydrogen"},
		CorrectAnswer: 1,
		Explanation:   "Plants take in carbon dioxide and release oxygen.",
		Topic:         TopicBiology,
		Difficulty:    5,
	}
}

func TestStructural_ValidQuestion(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validQuestion()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_WrongOptionCount(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name    string
		options []string
		want    string
	}{
		{"three options", []string{"a", "b", "c"}, "expected 4 options, got 3"},
		{"five options", []string{"a", "b", "c", "d", "e"}, "expected 4 options, got 5"},
		{"no options", nil, "expected 4 options, got 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			q.Options = tt.options
			err := v.Validate(q)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Validator != "structural" {
				t.Errorf("expected validator %q, got %q", "structural", err.Validator)
			}
			if err.Message != tt.want {
				t.Errorf("message = %q, want %q", err.Message, tt.want)
			}
		})
	}
}

func TestStructural_CorrectAnswerOutOfRange(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		index int
		want  string
	}{
		{-1, "invalid correctAnswer: -1"},
		{4, "invalid correctAnswer: 4"},
		{17, "invalid correctAnswer: 17"},
	}

	for _, tt := range tests {
		q := validQuestion()
		q.CorrectAnswer = tt.index
		err := v.Validate(q)
		if err == nil {
			t.Fatalf("index %d: expected error", tt.index)
		}
		if err.Message != tt.want {
			t.Errorf("index %d: message = %q, want %q", tt.index, err.Message, tt.want)
		}
	}
}

func TestStructural_BoundaryIndexes(t *testing.T) {
	v := &StructuralValidator{}

	for _, idx := range []int{0, 3} {
		q := validQuestion()
		q.CorrectAnswer = idx
		if err := v.Validate(q); err != nil {
			t.Errorf("index %d: expected nil, got %v", idx, err)
		}
	}
}

func TestContent_ValidQuestion(t *testing.T) {
	v := &ContentValidator{}
	if err := v.Validate(validQuestion()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestContent_EmptyQuestionText(t *testing.T) {
	v := &ContentValidator{}
	q := validQuestion()
	q.Text = ""
	err := v.Validate(q)
	if err == nil {
		t.Fatal("expected error for empty question text")
	}
	if err.Validator != "content" {
		t.Errorf("expected validator %q, got %q", "content", err.Validator)
	}
}

func TestContent_EmptyOption(t *testing.T) {
	v := &ContentValidator{}
	q := validQuestion()
	q.Options[2] = ""
	err := v.Validate(q)
	if err == nil {
		t.Fatal("expected error for empty option")
	}
	if err.Message != "option 3 is empty" {
		t.Errorf("message = %q, want %q", err.Message, "option 3 is empty")
	}
}

func TestContent_EmptyExplanation(t *testing.T) {
	v := &ContentValidator{}
	q := validQuestion()
	q.Explanation = ""
	if err := v.Validate(q); err == nil {
		t.Fatal("expected error for empty explanation")
	}
}

func TestClampDifficulty(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{-5, 1},
		{1, 1},
		{5, 5},
		{10, 10},
		{11, 10},
		{100, 10},
	}

	for _, tt := range tests {
		if got := ClampDifficulty(tt.in); got != tt.want {
			t.Errorf("ClampDifficulty(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
