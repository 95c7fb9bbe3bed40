package session

// Stats tracks the running score for the session. Total counts served
// questions and is incremented when a question is installed, not when
// it is answered; Record only handles the answer side.
type Stats struct {
	Correct    int
	Total      int
	Streak     int
	BestStreak int
}

// Accuracy returns Correct/Total, or 0 when no questions were served.
func (s Stats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// Record scores one revealed answer.
func (s *Stats) Record(correct bool) {
	if correct {
		s.Correct++
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
		return
	}
	s.Streak = 0
}

// Reset zeroes all four counters.
func (s *Stats) Reset() {
	*s = Stats{}
}
