package session

import "github.com/abhisek/mathdrill/internal/catalog"

// LevelForStreak returns the adaptive level reached with streak
// consecutive correct answers: one level per two answers, capped.
func LevelForStreak(streak int) int {
	return min(catalog.MaxLevel, 1+streak/2)
}

// recordOutcome updates the per-session tallies for a revealed round.
func (s *State) recordOutcome(correct bool) {
	s.History = append(s.History, correct)
	s.Total++
	if correct {
		s.Correct++
		s.Streak++
		s.BestStreak = max(s.BestStreak, s.Streak)
	} else {
		s.Streak = 0
	}
	if s.Category.Adaptive {
		s.Level = LevelForStreak(s.Streak)
	}
}
