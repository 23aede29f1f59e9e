package session

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/catalog"
	"github.com/abhisek/mathdrill/internal/clock"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
)

var epoch = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

type recorder struct {
	mu     sync.Mutex
	rounds []store.Round
}

func (r *recorder) RecordRound(_ context.Context, rd store.Round) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rounds = append(r.rounds, rd)
	return nil
}

func (r *recorder) all() []store.Round {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]store.Round(nil), r.rounds...)
}

type fixture struct {
	clock  *clock.Manual
	kv     *store.MemoryKV
	scores *store.BestScores
	rec    *recorder
	sess   *Session
	states []State
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		clock: clock.NewManual(epoch),
		kv:    store.NewMemoryKV(),
		rec:   &recorder{},
	}
	f.scores = store.NewBestScores(f.kv, nil)
	f.sess = New(Deps{
		Clock:    f.clock,
		Scores:   f.scores,
		Recorder: f.rec,
		Rand:     rand.New(rand.NewPCG(1, 2)),
		NewID:    func() string { return "sess-1" },
	})
	f.sess.OnChange(func(st State) { f.states = append(f.states, st) })
	t.Cleanup(f.sess.Close)
	return f
}

// fixed returns a timed multiplication category that always asks 12 × 24.
func fixed(mod func(*catalog.Category)) catalog.Category {
	c := catalog.Category{
		ID:       "multiplication-2digit",
		Family:   "multiplication",
		Name:     "2-digit × 2-digit",
		Alphabet: problemgen.AlphabetDigits,
		Timing:   catalog.Timing{Pause: 3 * time.Second},
		Score:    catalog.ScoreFastest,
		StoreKey: "best_multiplication",
		Spec: problemgen.Spec{
			Category: "multiplication-2digit",
			Build: func(*rand.Rand, int) problemgen.Problem {
				return problemgen.MultiplicationProblem(12, 24)
			},
		},
	}
	if mod != nil {
		mod(&c)
	}
	return c
}

func streakCategory(mod func(*catalog.Category)) catalog.Category {
	return fixed(func(c *catalog.Category) {
		c.ID = "rebus"
		c.Family = "rebus"
		c.AllowsRetry = true
		c.Score = catalog.ScoreStreak
		c.StoreKey = "rebus_best"
		c.Adaptive = true
		c.Timing = catalog.Timing{Pause: 2 * time.Second}
		if mod != nil {
			mod(c)
		}
	})
}

func (f *fixture) phases() []Phase {
	var out []Phase
	for _, st := range f.states {
		if len(out) == 0 || out[len(out)-1] != st.Phase {
			out = append(out, st.Phase)
		}
	}
	return out
}

func TestStart_ServesFirstProblem(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(nil))

	st := f.sess.Snapshot()
	require.NotNil(t, st.Problem)
	assert.Equal(t, "12 × 24", st.Problem.Text)
	assert.Equal(t, PhaseAnswering, st.Phase)
	assert.Equal(t, "sess-1", st.SessionID)
	assert.Equal(t, 1, st.Level)
	assert.False(t, st.HasBest)
	assert.False(t, st.HasDeadline())
}

func TestSubmit_CorrectAnswer(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(nil))

	f.clock.Advance(2 * time.Second)
	f.sess.SetInput("288")
	f.sess.Submit()

	st := f.sess.Snapshot()
	assert.Equal(t, PhaseAdvancing, st.Phase)
	assert.Equal(t, OutcomeCorrect, st.Outcome)
	assert.Equal(t, 1, st.Streak)
	assert.Equal(t, 2*time.Second, st.Elapsed)
	assert.Equal(t, 3*time.Second, st.Remaining)
	assert.Equal(t, []bool{true}, st.History)
	assert.Equal(t, []Phase{PhaseAnswering, PhaseRevealed, PhaseAdvancing}, f.phases())

	rounds := f.rec.all()
	require.Len(t, rounds, 1)
	assert.Equal(t, store.OutcomeCorrect, rounds[0].Outcome)
	assert.Equal(t, "288", rounds[0].Given)
	assert.Equal(t, int64(2000), rounds[0].ElapsedMs)
	assert.Equal(t, "sess-1", rounds[0].SessionID)
}

func TestSubmit_IncorrectAnswer(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(nil))

	f.sess.SetInput("287")
	f.sess.Submit()

	st := f.sess.Snapshot()
	assert.Equal(t, OutcomeIncorrect, st.Outcome)
	assert.Equal(t, 0, st.Streak)
	assert.False(t, st.NewBest)
	assert.False(t, st.HasBest)
	assert.Equal(t, "287", st.Input)
}

func TestSubmit_EmptyInputIgnored(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(nil))
	n := len(f.states)

	f.sess.Submit()

	st := f.sess.Snapshot()
	assert.Equal(t, PhaseAnswering, st.Phase)
	assert.Equal(t, 0, st.Attempts)
	assert.Len(t, f.states, n)
	assert.Empty(t, f.rec.all())
}

func TestSubmit_DuringPauseAdvances(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(nil))
	f.sess.SetInput("288")
	f.sess.Submit()

	f.sess.Submit()

	st := f.sess.Snapshot()
	assert.Equal(t, PhaseAnswering, st.Phase)
	assert.Empty(t, st.Input)
	assert.Equal(t, OutcomeNone, st.Outcome)
	assert.Equal(t, 0, f.clock.Pending(), "pause timer must be cancelled")

	// The cancelled pause must not advance a second time.
	f.clock.Advance(5 * time.Second)
	assert.Len(t, f.rec.all(), 1)
	assert.Equal(t, PhaseAnswering, f.sess.Snapshot().Phase)
}

func TestPause_AdvancesAfterTimer(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(nil))
	f.sess.SetInput("288")
	f.sess.Submit()

	f.clock.Advance(2999 * time.Millisecond)
	assert.Equal(t, PhaseAdvancing, f.sess.Snapshot().Phase)

	f.clock.Advance(time.Millisecond)
	st := f.sess.Snapshot()
	assert.Equal(t, PhaseAnswering, st.Phase)
	assert.Equal(t, time.Duration(0), st.Elapsed)
}

func TestInput_Sanitized(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(nil))

	f.sess.SetInput("12a3")
	assert.Equal(t, "123", f.sess.Snapshot().Input)

	f.sess.AppendInput("-4")
	assert.Equal(t, "1234", f.sess.Snapshot().Input)

	f.sess.Backspace()
	assert.Equal(t, "123", f.sess.Snapshot().Input)

	f.sess.ClearInput()
	assert.Empty(t, f.sess.Snapshot().Input)

	f.sess.Backspace()
	assert.Empty(t, f.sess.Snapshot().Input)
}

func TestInput_IgnoredOutsideAnswering(t *testing.T) {
	f := newFixture(t)
	f.sess.AppendInput("1")
	assert.Empty(t, f.sess.Snapshot().Input)

	f.sess.Start(fixed(nil))
	f.sess.SetInput("288")
	f.sess.Submit()

	f.sess.AppendInput("9")
	f.sess.Backspace()
	assert.Equal(t, "288", f.sess.Snapshot().Input)
}

func TestBestTime_Improves(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.kv.Set(context.Background(), "best_multiplication", "4.5"))
	f.sess.Start(fixed(nil))

	st := f.sess.Snapshot()
	require.True(t, st.HasBest)
	assert.Equal(t, 4.5, st.BestValue)

	f.clock.Advance(3200 * time.Millisecond)
	f.sess.SetInput("288")
	f.sess.Submit()

	st = f.sess.Snapshot()
	assert.True(t, st.NewBest)
	assert.Equal(t, 3.2, st.BestValue)
	v, ok := f.scores.Best("best_multiplication")
	require.True(t, ok)
	assert.Equal(t, 3.2, v)
}

func TestBestTime_SlowerKeepsBest(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.kv.Set(context.Background(), "best_multiplication", "4.5"))
	f.sess.Start(fixed(nil))

	f.clock.Advance(6 * time.Second)
	f.sess.SetInput("288")
	f.sess.Submit()

	st := f.sess.Snapshot()
	assert.False(t, st.NewBest)
	assert.Equal(t, 4.5, st.BestValue)
	v, _ := f.scores.Best("best_multiplication")
	assert.Equal(t, 4.5, v)
}

func TestBestTime_TieIsNotNewBest(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.kv.Set(context.Background(), "best_multiplication", "2"))
	f.sess.Start(fixed(nil))

	f.clock.Advance(2 * time.Second)
	f.sess.SetInput("288")
	f.sess.Submit()

	assert.False(t, f.sess.Snapshot().NewBest)
}

func TestBestTime_FirstCorrectSetsBest(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(nil))

	f.sess.Tick(1500 * time.Millisecond)
	f.sess.SetInput("288")
	f.sess.Submit()

	st := f.sess.Snapshot()
	assert.True(t, st.NewBest)
	assert.Equal(t, 1.5, st.BestValue)
}

func TestRetry_OneExtraAttempt(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(streakCategory(nil))

	f.sess.SetInput("100")
	f.sess.Submit()

	st := f.sess.Snapshot()
	assert.Equal(t, PhaseAnswering, st.Phase)
	assert.True(t, st.Retrying)
	assert.Equal(t, 1, st.Attempts)
	assert.Equal(t, "100", st.Input)
	assert.Empty(t, f.rec.all())

	f.sess.SetInput("288")
	f.sess.Submit()

	st = f.sess.Snapshot()
	assert.Equal(t, OutcomeCorrect, st.Outcome)
	assert.False(t, st.Retrying)
	rounds := f.rec.all()
	require.Len(t, rounds, 1)
	assert.Equal(t, 2, rounds[0].Attempts)
}

func TestRetry_SecondMissReveals(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(streakCategory(nil))

	f.sess.SetInput("100")
	f.sess.Submit()
	f.sess.Submit()

	st := f.sess.Snapshot()
	assert.Equal(t, PhaseAdvancing, st.Phase)
	assert.Equal(t, OutcomeIncorrect, st.Outcome)
	assert.Equal(t, 2, st.Attempts)
}

func TestStreakBest(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.kv.Set(context.Background(), "rebus_best", "1"))
	f.sess.Start(streakCategory(nil))

	answer := func(in string) {
		f.sess.SetInput(in)
		f.sess.Submit()
		f.sess.Submit()
	}

	answer("288")
	st := f.sess.Snapshot()
	assert.Equal(t, 1, st.Streak)
	assert.Equal(t, OutcomeNone, st.Outcome)

	answer("288")
	answer("288")
	st = f.sess.Snapshot()
	assert.Equal(t, 3, st.Streak)
	assert.Equal(t, 3, st.BestStreak)
	assert.Equal(t, 3.0, st.BestValue)
	assert.Equal(t, 2, st.Level)

	v, ok := f.scores.Best("rebus_best")
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	// A miss resets the streak and the level but not the best.
	f.sess.SetInput("1")
	f.sess.Submit()
	f.sess.Submit()
	st = f.sess.Snapshot()
	assert.Equal(t, 0, st.Streak)
	assert.Equal(t, 3, st.BestStreak)
	assert.Equal(t, 1, st.Level)
	assert.Equal(t, 3.0, st.BestValue)
}

func TestDeadline_TimesOut(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(func(c *catalog.Category) {
		c.Timing.AnswerTimeout = 10 * time.Second
	}))
	require.True(t, f.sess.Snapshot().HasDeadline())

	f.sess.SetInput("28")
	f.clock.Advance(10 * time.Second)

	st := f.sess.Snapshot()
	assert.Equal(t, PhaseAdvancing, st.Phase)
	assert.Equal(t, OutcomeTimeout, st.Outcome)
	assert.Equal(t, 10*time.Second, st.Elapsed)
	assert.Equal(t, 0, st.Streak)

	rounds := f.rec.all()
	require.Len(t, rounds, 1)
	assert.Equal(t, store.OutcomeTimeout, rounds[0].Outcome)
	assert.Empty(t, rounds[0].Given)
}

func TestDeadline_TickExpiry(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(func(c *catalog.Category) {
		c.Timing.AnswerTimeout = time.Second
	}))

	for i := 0; i < 9; i++ {
		f.sess.Tick(100 * time.Millisecond)
	}
	st := f.sess.Snapshot()
	assert.Equal(t, PhaseAnswering, st.Phase)
	assert.Equal(t, 100*time.Millisecond, st.Remaining)

	f.sess.Tick(100 * time.Millisecond)
	assert.Equal(t, OutcomeTimeout, f.sess.Snapshot().Outcome)
}

func TestDeadline_StaleTimerIgnored(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(func(c *catalog.Category) {
		c.Timing.AnswerTimeout = 10 * time.Second
		c.Timing.Pause = time.Second
	}))

	// Answer at 9s; the pause ends at 10s, the same instant the first
	// problem's deadline would have fired.
	f.clock.Advance(9 * time.Second)
	f.sess.SetInput("288")
	f.sess.Submit()
	f.clock.Advance(time.Second)

	st := f.sess.Snapshot()
	assert.Equal(t, PhaseAnswering, st.Phase)
	assert.Equal(t, OutcomeNone, st.Outcome)
	assert.Equal(t, 10*time.Second, st.Remaining)
	assert.Len(t, f.rec.all(), 1)
}

func TestBlitz_CorrectSkipsPause(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(func(c *catalog.Category) {
		c.ID = "blitz-2digit"
		c.Score = catalog.ScoreStreak
		c.StoreKey = "blitz_best"
		c.Timing = catalog.Timing{AnswerTimeout: 10 * time.Second, Pause: 1400 * time.Millisecond, SkipPauseOnCorrect: true}
	}))

	f.sess.SetInput("288")
	f.sess.Submit()
	st := f.sess.Snapshot()
	assert.Equal(t, PhaseAnswering, st.Phase)
	assert.Equal(t, 1, st.Streak)
	assert.Equal(t, 10*time.Second, st.Remaining)

	f.sess.SetInput("1")
	f.sess.Submit()
	st = f.sess.Snapshot()
	assert.Equal(t, PhaseAdvancing, st.Phase)
	assert.Equal(t, 1400*time.Millisecond, st.Remaining)
}

func TestShowHint(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(nil))
	f.sess.ShowHint()
	assert.False(t, f.sess.Snapshot().HintShown, "problem has no hint")

	f.sess.Start(fixed(func(c *catalog.Category) {
		c.Spec.Build = func(*rand.Rand, int) problemgen.Problem {
			return problemgen.RebusProblem("▲", "◼", 3, 5, true, 1)
		}
	}))
	f.sess.ShowHint()
	assert.True(t, f.sess.Snapshot().HintShown)
}

func TestSetCategory_Resets(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(streakCategory(nil))
	f.sess.SetInput("288")
	f.sess.Submit()
	require.Equal(t, 1, f.sess.Snapshot().Streak)

	f.sess.SetCategory(fixed(nil))

	st := f.sess.Snapshot()
	assert.Equal(t, "multiplication-2digit", st.Category.ID)
	assert.Equal(t, 0, st.Streak)
	assert.Equal(t, 0, st.Total)
	assert.Empty(t, st.History)
	assert.Equal(t, PhaseAnswering, st.Phase)
	assert.Equal(t, 0, f.clock.Pending(), "old pause timer must be stopped")
}

func TestClose_StopsTimers(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(func(c *catalog.Category) {
		c.Timing.AnswerTimeout = 5 * time.Second
	}))
	f.sess.Close()
	f.clock.Advance(time.Minute)

	st := f.sess.Snapshot()
	assert.Equal(t, PhaseAnswering, st.Phase)
	assert.Empty(t, f.rec.all())

	f.sess.AppendInput("1")
	f.sess.Submit()
	f.sess.Tick(time.Second)
	assert.Empty(t, f.sess.Snapshot().Input)
}

func TestSnapshot_IsCopy(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(nil))
	f.sess.SetInput("288")
	f.sess.Submit()

	st := f.sess.Snapshot()
	st.History[0] = false
	st.Problem.Operands[0] = 99

	again := f.sess.Snapshot()
	assert.True(t, again.History[0])
	assert.Equal(t, 12, again.Problem.Operands[0])
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(fixed(nil))
	for _, in := range []string{"288", "1", "288"} {
		f.sess.SetInput(in)
		f.sess.Submit()
		f.sess.Submit()
	}
	f.clock.Advance(time.Minute)

	sum := f.sess.Summary()
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 2, sum.Correct)
	assert.InDelta(t, 2.0/3, sum.Accuracy, 1e-9)
	assert.Equal(t, 1, sum.BestStreak)
	assert.Equal(t, time.Minute, sum.Duration)
}

func TestLevelForStreak(t *testing.T) {
	tests := []struct{ streak, want int }{
		{0, 1}, {1, 1}, {2, 2}, {5, 3}, {18, 10}, {40, catalog.MaxLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForStreak(tt.streak), "streak %d", tt.streak)
	}
}

func TestWithBuiltinCatalog(t *testing.T) {
	f := newFixture(t)
	cat, err := catalog.Lookup("division-2digit")
	require.NoError(t, err)
	f.sess.Start(cat)

	st := f.sess.Snapshot()
	require.NotNil(t, st.Problem)
	f.sess.SetInput(st.Problem.Answer)
	f.sess.Submit()
	assert.Equal(t, OutcomeCorrect, f.sess.Snapshot().Outcome)
}

func circleCategory() catalog.Category {
	return fixed(func(c *catalog.Category) {
		c.ID = "geometry-area"
		c.Family = "geometry"
		c.StoreKey = "best_geometry"
		c.Alphabet = problemgen.AlphabetGeometry
		c.Spec = problemgen.Spec{
			Category: "geometry-area",
			Build: func(*rand.Rand, int) problemgen.Problem {
				return problemgen.CircleArea(3)
			},
		}
	})
}

func TestCircleArea_BareCoefficientIsWrong(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(circleCategory())
	require.NotNil(t, f.sess.Snapshot().Problem)
	require.Equal(t, "9π", f.sess.Snapshot().Problem.Answer)

	f.sess.SetInput("9")
	f.sess.Submit()

	st := f.sess.Snapshot()
	assert.Equal(t, OutcomeIncorrect, st.Outcome)
	assert.Equal(t, 0, st.Streak)
	assert.False(t, st.HasBest)
}

func TestCircleArea_PiAnswerIsCorrect(t *testing.T) {
	f := newFixture(t)
	f.sess.Start(circleCategory())

	f.sess.SetInput("9π")
	f.sess.Submit()
	assert.Equal(t, OutcomeCorrect, f.sess.Snapshot().Outcome)
}
