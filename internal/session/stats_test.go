package session

import "testing"

func TestStatsAccuracy(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  float64
	}{
		{"zero total", Stats{}, 0},
		{"half", Stats{Correct: 2, Total: 4}, 0.5},
		{"perfect", Stats{Correct: 3, Total: 3}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.Accuracy(); got != tt.want {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatsRecord(t *testing.T) {
	var s Stats
	s.Total = 3

	s.Record(true)
	s.Record(true)
	if s.Correct != 2 || s.Streak != 2 || s.BestStreak != 2 {
		t.Errorf("after two correct: %+v", s)
	}

	s.Record(false)
	if s.Correct != 2 {
		t.Errorf("wrong answer changed Correct: %d", s.Correct)
	}
	if s.Streak != 0 {
		t.Errorf("wrong answer should reset streak, got %d", s.Streak)
	}
	if s.BestStreak != 2 {
		t.Errorf("BestStreak should survive a miss, got %d", s.BestStreak)
	}

	s.Record(true)
	if s.Streak != 1 || s.BestStreak != 2 {
		t.Errorf("streak should restart at 1 below best, got streak=%d best=%d", s.Streak, s.BestStreak)
	}

	if s.Total != 3 {
		t.Errorf("Record must not touch Total, got %d", s.Total)
	}
}

func TestStatsReset(t *testing.T) {
	s := Stats{Correct: 5, Total: 9, Streak: 2, BestStreak: 4}
	s.Reset()
	if s != (Stats{}) {
		t.Errorf("Reset left %+v", s)
	}
}
