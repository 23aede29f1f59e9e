// Package session implements the drill round lifecycle: generate a
// problem, collect an answer, reveal the outcome, pause, repeat.
package session

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathdrill/internal/catalog"
	"github.com/abhisek/mathdrill/internal/clock"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
)

// recordTimeout bounds a single round log write.
const recordTimeout = 2 * time.Second

// Deps are the collaborators of a Session. Only Clock is required.
type Deps struct {
	Clock clock.Clock

	// Scores persists best values. Nil disables persistence.
	Scores store.BestScoreStore

	// Recorder receives every revealed round. Nil disables the log.
	Recorder store.RoundRecorder

	// Rand seeds problem generation. Nil uses a random seed.
	Rand *rand.Rand

	// Generator overrides the problem generator built from Rand.
	Generator *problemgen.Generator

	Logger *slog.Logger

	// NewID issues session IDs. Defaults to random UUIDs.
	NewID func() string
}

// Session is a single-learner drill controller. All methods are safe for
// concurrent use; timer callbacks arrive on their own goroutines.
type Session struct {
	mu sync.Mutex

	clock    clock.Clock
	scores   store.BestScoreStore
	recorder store.RoundRecorder
	gen      *problemgen.Generator
	logger   *slog.Logger
	newID    func() string

	st State

	// round increments with every new problem. Timer callbacks carry the
	// round they were armed in and are ignored once it has moved on.
	round uint64

	startedAt  time.Time // session start
	roundStart time.Time // current problem shown

	deadline clock.Timer
	pause    clock.Timer
	closed   bool

	onChange []func(State)
	pending  []State
	effects  []func()
}

// New creates an idle session. Call Start to serve the first problem.
func New(deps Deps) *Session {
	if deps.Clock == nil {
		deps.Clock = clock.Real()
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	g := deps.Generator
	if g == nil {
		g = problemgen.New(deps.Rand, problemgen.DefaultConfig())
	}
	return &Session{
		clock:    deps.Clock,
		scores:   deps.Scores,
		recorder: deps.Recorder,
		gen:      g,
		logger:   deps.Logger.With("component", "session"),
		newID:    deps.NewID,
		st:       State{Level: 1},
	}
}

// OnChange registers fn to receive a snapshot after every state change.
// fn runs outside the session lock and may call back into the session.
func (s *Session) OnChange(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.clone()
}

// Start begins a fresh run of cat: streak, tallies and level reset, the
// stored best is loaded and the first problem is served.
func (s *Session) Start(cat catalog.Category) {
	s.mu.Lock()
	defer s.flush()

	s.stopTimers()
	s.closed = false
	s.st = State{
		SessionID: s.newID(),
		Category:  cat,
		Level:     1,
	}
	if s.scores != nil {
		s.st.BestValue, s.st.HasBest = s.scores.Best(cat.StoreKey)
	}
	s.startedAt = s.clock.Now()
	s.logger.Info("session started", "session_id", s.st.SessionID, "category", cat.ID)
	s.nextRound()
}

// SetCategory switches to cat. Nothing carries over from the previous
// category.
func (s *Session) SetCategory(cat catalog.Category) {
	s.Start(cat)
}

// AppendInput adds fragment to the answer buffer. Characters outside the
// category alphabet are dropped. Ignored unless answering.
func (s *Session) AppendInput(fragment string) {
	s.mu.Lock()
	defer s.flush()
	if !s.editable() {
		return
	}
	s.setInput(s.st.Input + fragment)
}

// SetInput replaces the answer buffer with the sanitized form of raw.
// Ignored unless answering.
func (s *Session) SetInput(raw string) {
	s.mu.Lock()
	defer s.flush()
	if !s.editable() {
		return
	}
	s.setInput(raw)
}

// Backspace removes the last character of the answer buffer.
func (s *Session) Backspace() {
	s.mu.Lock()
	defer s.flush()
	if !s.editable() || s.st.Input == "" {
		return
	}
	r := []rune(s.st.Input)
	s.setInput(string(r[:len(r)-1]))
}

// ClearInput empties the answer buffer.
func (s *Session) ClearInput() {
	s.mu.Lock()
	defer s.flush()
	if !s.editable() {
		return
	}
	s.setInput("")
}

// ShowHint reveals the current problem's hint, if it has one.
func (s *Session) ShowHint() {
	s.mu.Lock()
	defer s.flush()
	if !s.editable() || s.st.Problem.Hint == "" || s.st.HintShown {
		return
	}
	s.st.HintShown = true
	s.changed()
}

// Submit is the learner's Enter. While answering it checks the buffer;
// while advancing it skips the rest of the pause.
func (s *Session) Submit() {
	s.mu.Lock()
	defer s.flush()
	if s.st.Problem == nil || s.closed {
		return
	}

	switch s.st.Phase {
	case PhaseAdvancing:
		s.nextRound()
	case PhaseAnswering:
		s.check()
	}
}

// Tick advances the session by delta of wall time. Countdowns reaching
// zero trigger the same transition as their timers.
func (s *Session) Tick(delta time.Duration) {
	s.mu.Lock()
	defer s.flush()
	if delta <= 0 || s.st.Problem == nil || s.closed {
		return
	}

	switch s.st.Phase {
	case PhaseAnswering:
		s.st.Elapsed += delta
		if s.st.Category.Timing.HasDeadline() {
			s.st.Remaining = max(0, s.st.Remaining-delta)
			if s.st.Remaining == 0 {
				s.reveal(OutcomeTimeout)
				return
			}
		}
		s.changed()
	case PhaseAdvancing:
		s.st.Remaining = max(0, s.st.Remaining-delta)
		if s.st.Remaining == 0 {
			s.nextRound()
			return
		}
		s.changed()
	}
}

// Close stops all timers. Later timer callbacks are ignored; Start
// reopens the session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.flush()
	s.stopTimers()
	s.closed = true
	s.round++
}

// flush releases the lock, then runs queued side effects and change
// notifications in order.
func (s *Session) flush() {
	effects := s.effects
	pending := s.pending
	listeners := s.onChange
	s.effects = nil
	s.pending = nil
	s.mu.Unlock()

	for _, fn := range effects {
		fn()
	}
	for _, st := range pending {
		for _, fn := range listeners {
			fn(st)
		}
	}
}

// changed queues a snapshot for listeners.
func (s *Session) changed() {
	if len(s.onChange) > 0 {
		s.pending = append(s.pending, s.st.clone())
	}
}

func (s *Session) editable() bool {
	return s.st.Problem != nil && !s.closed && s.st.Phase == PhaseAnswering
}

func (s *Session) setInput(raw string) {
	clean := s.st.Category.Alphabet.Sanitize(raw)
	if clean == s.st.Input {
		return
	}
	s.st.Input = clean
	s.changed()
}

// check scores the buffer against the current problem.
func (s *Session) check() {
	if strings.TrimSpace(s.st.Input) == "" {
		return
	}
	s.st.Attempts++
	s.syncElapsed()

	if problemgen.CheckAnswer(s.st.Input, s.st.Problem) {
		s.reveal(OutcomeCorrect)
		return
	}
	if s.st.Category.AllowsRetry && s.st.Attempts == 1 {
		s.st.Retrying = true
		s.logger.Debug("retry granted", "category", s.st.Category.ID)
		s.changed()
		return
	}
	s.reveal(OutcomeIncorrect)
}

// syncElapsed reconciles the tick-driven elapsed time with the clock,
// keeping whichever has run further.
func (s *Session) syncElapsed() {
	s.st.Elapsed = max(s.st.Elapsed, s.clock.Now().Sub(s.roundStart))
}

// reveal ends the answering phase with outcome and moves on to the pause.
func (s *Session) reveal(outcome Outcome) {
	if s.deadline != nil {
		s.deadline.Stop()
		s.deadline = nil
	}
	if outcome == OutcomeTimeout {
		s.syncElapsed()
	}

	cat := s.st.Category
	correct := outcome == OutcomeCorrect

	s.st.Phase = PhaseRevealed
	s.st.Outcome = outcome
	s.st.Retrying = false
	s.st.Remaining = 0
	s.st.NewBest = false
	s.st.recordOutcome(correct)

	if correct {
		s.updateBest()
	}
	s.record(outcome)
	s.logger.Debug("round revealed",
		"category", cat.ID, "outcome", outcome.String(),
		"elapsed_ms", s.st.Elapsed.Milliseconds(), "streak", s.st.Streak)
	s.changed()

	s.advance(correct)
}

// updateBest compares the round with the stored best and persists it when
// strictly better.
func (s *Session) updateBest() {
	cat := s.st.Category
	var v float64
	switch cat.Score {
	case catalog.ScoreStreak:
		v = float64(s.st.Streak)
	default:
		v = float64(s.st.Elapsed.Milliseconds()) / 1000
	}
	if s.st.HasBest && !cat.Score.Better(v, s.st.BestValue) {
		return
	}

	s.st.BestValue = v
	s.st.HasBest = true
	s.st.NewBest = true
	s.logger.Info("new best", "category", cat.ID, "key", cat.StoreKey, "value", v)

	if s.scores != nil {
		scores, key := s.scores, cat.StoreKey
		s.effects = append(s.effects, func() { scores.SetBest(key, v) })
	}
}

// record queues the revealed round for the round log.
func (s *Session) record(outcome Outcome) {
	if s.recorder == nil {
		return
	}
	p := s.st.Problem
	given := s.st.Input
	if outcome == OutcomeTimeout {
		given = ""
	}
	rd := store.Round{
		SessionID: s.st.SessionID,
		Category:  s.st.Category.ID,
		Problem:   p.Text,
		Answer:    p.Answer,
		Given:     given,
		Outcome:   outcome.String(),
		Attempts:  s.st.Attempts,
		ElapsedMs: s.st.Elapsed.Milliseconds(),
		Timestamp: s.clock.Now(),
	}
	recorder, logger := s.recorder, s.logger
	s.effects = append(s.effects, func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := recorder.RecordRound(ctx, rd); err != nil {
			logger.Warn("record round", "error", err)
		}
	})
}

// advance enters the pause after a reveal. A zero pause, or a correct
// answer on a category that skips it, moves straight to the next round.
func (s *Session) advance(correct bool) {
	timing := s.st.Category.Timing
	pause := timing.Pause
	if correct && timing.SkipPauseOnCorrect {
		pause = 0
	}

	s.st.Phase = PhaseAdvancing
	s.st.Remaining = pause
	s.changed()

	if pause <= 0 {
		s.nextRound()
		return
	}
	round := s.round
	s.pause = s.clock.AfterFunc(pause, func() { s.onPauseDone(round) })
}

// nextRound serves a new problem and re-arms the answer deadline.
func (s *Session) nextRound() {
	s.stopTimers()
	s.round++

	cat := s.st.Category
	difficulty := 1
	if cat.Adaptive {
		difficulty = s.st.Level
	}
	p := s.gen.Generate(cat.Spec, difficulty)

	s.st.Problem = &p
	s.st.Input = ""
	s.st.Phase = PhaseAnswering
	s.st.Outcome = OutcomeNone
	s.st.Retrying = false
	s.st.Attempts = 0
	s.st.Elapsed = 0
	s.st.Remaining = 0
	s.st.NewBest = false
	s.st.HintShown = false
	s.roundStart = s.clock.Now()

	if cat.Timing.HasDeadline() {
		s.st.Remaining = cat.Timing.AnswerTimeout
		round := s.round
		s.deadline = s.clock.AfterFunc(cat.Timing.AnswerTimeout, func() { s.onDeadline(round) })
	}
	s.changed()
}

func (s *Session) onDeadline(round uint64) {
	s.mu.Lock()
	defer s.flush()
	if s.closed || round != s.round || s.st.Phase != PhaseAnswering {
		return
	}
	s.deadline = nil
	s.reveal(OutcomeTimeout)
}

func (s *Session) onPauseDone(round uint64) {
	s.mu.Lock()
	defer s.flush()
	if s.closed || round != s.round || s.st.Phase != PhaseAdvancing {
		return
	}
	s.pause = nil
	s.nextRound()
}

func (s *Session) stopTimers() {
	if s.deadline != nil {
		s.deadline.Stop()
		s.deadline = nil
	}
	if s.pause != nil {
		s.pause.Stop()
		s.pause = nil
	}
}
