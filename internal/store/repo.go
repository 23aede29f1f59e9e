package store

import (
	"context"
	"time"
)

// KeyValueStore is a string-keyed store of string values.
type KeyValueStore interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists the keys starting with prefix in ascending order.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// BestScoreStore reads and writes one best value per key. It never fails:
// an unavailable backend reads as "no best" and drops writes.
type BestScoreStore interface {
	Best(key string) (float64, bool)
	SetBest(key string, value float64)
}

// Outcome values recorded for a round.
const (
	OutcomeCorrect   = "correct"
	OutcomeIncorrect = "incorrect"
	OutcomeTimeout   = "timeout"
)

// Round is one revealed drill round.
type Round struct {
	Sequence  int64
	SessionID string
	Category  string
	Problem   string // problem text as displayed
	Answer    string // canonical answer
	Given     string // learner's last input, empty on timeout
	Outcome   string
	Attempts  int
	ElapsedMs int64
	Timestamp time.Time
}

// RoundRecorder appends rounds to the round log.
type RoundRecorder interface {
	RecordRound(ctx context.Context, r Round) error
}

// RoundStats aggregates the round log for one category, or all of them.
type RoundStats struct {
	Category   string
	Attempted  int
	Correct    int
	Fastest    time.Duration // zero when no round was answered correctly
	LastPlayed time.Time
}

// Accuracy returns Correct / Attempted, or 0 with no rounds.
func (s RoundStats) Accuracy() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted)
}

// QueryOpts configures round queries with filtering and pagination.
type QueryOpts struct {
	Category  string // exact category ID ("" = all)
	SessionID string // exact session ID ("" = all)
	Limit     int    // max results (0 = unlimited)
	After     int64  // sequence > After
}

// RoundRepo provides append and query access to the round log.
type RoundRepo interface {
	RoundRecorder

	// Stats aggregates rounds of category, or every round when category
	// is empty.
	Stats(ctx context.Context, category string) (RoundStats, error)

	// StatsByCategory aggregates rounds per category, ordered by ID.
	StatsByCategory(ctx context.Context) ([]RoundStats, error)

	// Recent returns matching rounds, newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]Round, error)

	// DeleteRounds removes the rounds of category, or every round when
	// category is empty. It returns the number of rows removed.
	DeleteRounds(ctx context.Context, category string) (int64, error)
}
