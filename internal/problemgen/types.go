package problemgen

import "math/rand/v2"

// Problem represents a generated drill problem ready for display.
type Problem struct {
	// Category is the drill category this problem was generated for.
	Category string

	// Operands are the numeric inputs used to render the question, in
	// display order. For division this is [dividend, divisor, quotient].
	Operands []int

	// Text is the question prompt, e.g. "12 × 24" or "Simplify 12/18".
	Text string

	// Lines holds extra display lines for puzzle drills (rebus equations).
	Lines []string

	// Terms holds the visible terms of a sequence puzzle. A nil entry is a
	// gap the learner does not need to fill.
	Terms []*int

	// Expression is the bare arithmetic expression behind Text when the
	// problem is plain arithmetic ("47 × 386", "1/2 + 1/3"). Empty for word
	// problems and puzzles. Used by MathCheckValidator.
	Expression string

	// Answer is the canonical correct answer: "288", "7.5", "2/3", "9π".
	Answer string

	// AnswerType describes how Answer and learner input are normalized.
	AnswerType AnswerType

	// Hint is an optional short hint (sequence and rebus drills).
	Hint string

	// Difficulty is the tier this problem was generated at.
	Difficulty int
}

// AnswerType describes the representation of the correct answer.
type AnswerType string

const (
	AnswerTypeInteger  AnswerType = "integer"  // e.g. "623", "-15"
	AnswerTypeDecimal  AnswerType = "decimal"  // e.g. "3.75", "0.5"
	AnswerTypeFraction AnswerType = "fraction" // e.g. "3/4", "7/2"
	AnswerTypePi       AnswerType = "pi"       // e.g. "9π"
)

// GenerateFunc builds one candidate problem. Candidates may be invalid
// (overflow, trivially simplified fraction); Generate validates and
// resamples them.
type GenerateFunc func(r *rand.Rand, difficulty int) Problem

// Spec describes what Generate needs to know about a drill category.
type Spec struct {
	// Category is stamped on every produced problem.
	Category string

	// Build produces candidate problems.
	Build GenerateFunc

	// Fallback returns a known-valid problem used when every resample
	// failed validation. Optional.
	Fallback func(difficulty int) Problem

	// MaxDifficulty clamps the difficulty passed to Build (0 = no clamp).
	MaxDifficulty int
}
