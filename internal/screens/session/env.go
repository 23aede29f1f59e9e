package session

import (
	"log/slog"
	"time"

	"github.com/abhisek/mathdrill/internal/catalog"
	"github.com/abhisek/mathdrill/internal/clock"
	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
)

// DefaultTick is the drill screen refresh interval.
const DefaultTick = 100 * time.Millisecond

// Env carries the collaborators shared by the drill screens.
type Env struct {
	Catalog *catalog.Catalog
	Scores  store.BestScoreStore

	// Rounds backs the history screen and the round log. Optional.
	Rounds store.RoundRepo

	Clock  clock.Clock
	Logger *slog.Logger

	// Tick is the refresh interval of the drill screen.
	Tick time.Duration
}

func (e Env) withDefaults() Env {
	if e.Catalog == nil {
		e.Catalog = catalog.Builtin()
	}
	if e.Clock == nil {
		e.Clock = clock.Real()
	}
	if e.Logger == nil {
		e.Logger = slog.New(slog.DiscardHandler)
	}
	if e.Tick <= 0 {
		e.Tick = DefaultTick
	}
	return e
}

// NewSession builds a drill session wired to the environment's stores.
func (e Env) NewSession() *sess.Session {
	e = e.withDefaults()
	deps := sess.Deps{
		Clock:  e.Clock,
		Scores: e.Scores,
		Logger: e.Logger,
	}
	if e.Rounds != nil {
		deps.Recorder = e.Rounds
	}
	return sess.New(deps)
}
