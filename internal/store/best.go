package store

import (
	"context"
	"log/slog"
	"strconv"
	"time"
)

// bestTimeout bounds a single best-value read or write.
const bestTimeout = 2 * time.Second

// BestScores adapts a KeyValueStore to BestScoreStore. Values are stored
// as plain decimal text. Backend failures are logged and swallowed.
type BestScores struct {
	kv     KeyValueStore
	logger *slog.Logger
}

// NewBestScores wraps kv. A nil logger discards log output.
func NewBestScores(kv KeyValueStore, logger *slog.Logger) *BestScores {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &BestScores{kv: kv, logger: logger.With("component", "best-scores")}
}

// Best returns the stored value for key. Missing, unreadable and
// unparseable values all read as absent.
func (b *BestScores) Best(key string) (float64, bool) {
	if b == nil || b.kv == nil {
		return 0, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), bestTimeout)
	defer cancel()

	raw, ok, err := b.kv.Get(ctx, key)
	if err != nil {
		b.logger.Warn("read best value", "key", key, "error", err)
		return 0, false
	}
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		b.logger.Warn("ignore malformed best value", "key", key, "value", raw)
		return 0, false
	}
	return v, true
}

// SetBest writes value under key. The caller decides whether value is an
// improvement.
func (b *BestScores) SetBest(key string, value float64) {
	if b == nil || b.kv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), bestTimeout)
	defer cancel()

	if err := b.kv.Set(ctx, key, strconv.FormatFloat(value, 'f', -1, 64)); err != nil {
		b.logger.Warn("write best value", "key", key, "value", value, "error", err)
		return
	}
	b.logger.Debug("best value updated", "key", key, "value", value)
}
