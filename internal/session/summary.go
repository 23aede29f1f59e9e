package session

import (
	"slices"
	"time"
)

// Summary condenses a session for display when the learner leaves.
type Summary struct {
	SessionID  string
	Category   string
	Duration   time.Duration
	Total      int
	Correct    int
	Accuracy   float64
	BestStreak int

	// History holds the revealed outcomes in order, true when correct.
	History []bool
}

// Summary returns the tallies of the current run.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var accuracy float64
	if s.st.Total > 0 {
		accuracy = float64(s.st.Correct) / float64(s.st.Total)
	}
	var dur time.Duration
	if !s.startedAt.IsZero() {
		dur = s.clock.Now().Sub(s.startedAt)
	}
	return Summary{
		SessionID:  s.st.SessionID,
		Category:   s.st.Category.ID,
		Duration:   dur,
		Total:      s.st.Total,
		Correct:    s.st.Correct,
		Accuracy:   accuracy,
		BestStreak: s.st.BestStreak,
		History:    slices.Clone(s.st.History),
	}
}
