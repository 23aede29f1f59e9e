package session

import (
	"fmt"
	"slices"
	"time"

	"github.com/abhisek/mathdrill/internal/catalog"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

// Phase is the position of the current round in its lifecycle.
type Phase int

const (
	PhaseAnswering Phase = iota // Input editable, elapsed clock running
	PhaseRevealed               // Outcome decided, answer shown
	PhaseAdvancing              // Pausing before the next problem
)

func (p Phase) String() string {
	switch p {
	case PhaseAnswering:
		return "answering"
	case PhaseRevealed:
		return "revealed"
	case PhaseAdvancing:
		return "advancing"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Outcome is the result of a revealed round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
	OutcomeTimeout // Answer deadline passed; scored as incorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// State is the observable state of a drill session.
type State struct {
	// SessionID identifies the run in the round log. A new ID is issued
	// by every Start.
	SessionID string

	Category catalog.Category

	// Problem is the current problem, nil before Start.
	Problem *problemgen.Problem

	// Input is the sanitized answer buffer.
	Input string

	Phase   Phase
	Outcome Outcome

	// Retrying is set after a wrong first attempt on a category that
	// allows one retry.
	Retrying bool

	// Attempts counts submissions on the current problem.
	Attempts int

	Streak     int
	BestStreak int

	// Elapsed is the time spent on the current problem. It stops when the
	// round leaves PhaseAnswering.
	Elapsed time.Duration

	// Remaining is the answer deadline countdown while answering against
	// a deadline, or the pause countdown while advancing.
	Remaining time.Duration

	// BestValue is the stored best for the category; valid when HasBest.
	BestValue float64
	HasBest   bool

	// NewBest is set when the last reveal improved BestValue.
	NewBest bool

	// History records the outcome of every revealed round.
	History []bool
	Total   int
	Correct int

	// Level drives problem difficulty for adaptive categories.
	Level int

	HintShown bool
}

// HasDeadline reports whether the current round is answered against a
// countdown.
func (s State) HasDeadline() bool {
	return s.Phase == PhaseAnswering && s.Category.Timing.HasDeadline()
}

// clone returns a deep copy safe to hand to another goroutine.
func (s State) clone() State {
	s.History = slices.Clone(s.History)
	if s.Problem != nil {
		p := *s.Problem
		p.Operands = slices.Clone(p.Operands)
		p.Lines = slices.Clone(p.Lines)
		p.Terms = slices.Clone(p.Terms)
		s.Problem = &p
	}
	return s
}
