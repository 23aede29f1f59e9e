package catalog

import (
	"fmt"
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

// ScoreKind says which direction of a best value is better.
type ScoreKind int

const (
	ScoreFastest ScoreKind = iota // Lower elapsed seconds on a correct answer wins
	ScoreStreak                   // Longer run of consecutive correct answers wins
)

func (k ScoreKind) String() string {
	switch k {
	case ScoreFastest:
		return "fastest"
	case ScoreStreak:
		return "streak"
	default:
		return fmt.Sprintf("ScoreKind(%d)", int(k))
	}
}

// Better reports whether v strictly improves on best.
func (k ScoreKind) Better(v, best float64) bool {
	if k == ScoreStreak {
		return v > best
	}
	return v < best
}

// Format renders a best value for display: "3.20s" or "7".
func (k ScoreKind) Format(v float64) string {
	if k == ScoreStreak {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.2fs", v)
}

// Timing holds the pacing of a drill round.
type Timing struct {
	// AnswerTimeout is the maximum time to answer. Zero means no deadline.
	AnswerTimeout time.Duration

	// Pause is the delay between a reveal and the next problem.
	Pause time.Duration

	// SkipPauseOnCorrect moves straight to the next problem after a
	// correct answer.
	SkipPauseOnCorrect bool
}

// HasDeadline reports whether rounds are answered against a countdown.
func (t Timing) HasDeadline() bool {
	return t.AnswerTimeout > 0
}

// Family groups the variants of one drill, e.g. all division sizes.
type Family struct {
	ID          string
	Name        string
	Description string
}

// Category is one playable drill variant.
type Category struct {
	// ID is the stable identifier, e.g. "multiplication-2digit".
	ID string

	// Family is the owning Family ID.
	Family string

	// Name is the variant label shown in menus.
	Name string

	// Alphabet is the set of characters the answer buffer accepts.
	Alphabet problemgen.Alphabet

	// AllowsRetry grants one extra attempt before the answer is revealed.
	AllowsRetry bool

	Timing Timing

	// Score selects how the best value is computed and compared.
	Score ScoreKind

	// StoreKey is the persisted best-value key. Variants of a family may
	// share one key.
	StoreKey string

	// Adaptive categories generate at the session level instead of a
	// fixed difficulty.
	Adaptive bool

	// Spec is handed to the problem generator.
	Spec problemgen.Spec
}

// Override replaces parts of a category's configuration. Nil durations and
// an empty StoreKey are left unchanged. A zero duration turns the deadline
// or the pause off.
type Override struct {
	AnswerTimeout *time.Duration
	Pause         *time.Duration
	StoreKey      string
}

// With returns a copy of c with o applied.
func (c Category) With(o Override) Category {
	if o.AnswerTimeout != nil {
		c.Timing.AnswerTimeout = *o.AnswerTimeout
	}
	if o.Pause != nil {
		c.Timing.Pause = *o.Pause
	}
	if o.StoreKey != "" {
		c.StoreKey = o.StoreKey
	}
	return c
}
