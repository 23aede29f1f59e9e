package catalog

import (
	"fmt"
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

const (
	timedPause  = 3 * time.Second
	puzzlePause = 2 * time.Second
	blitzPause  = 1400 * time.Millisecond
	blitzLimit  = 10 * time.Second

	// MaxLevel is the highest adaptive level of the puzzle drills.
	MaxLevel = 10
)

type digitVariant struct {
	suffix string
	name   string
	pair   problemgen.DigitPair
}

var productVariants = []digitVariant{
	{"2digit", "2-digit × 2-digit", problemgen.DigitPair{Left: 2, Right: 2}},
	{"3digit", "3-digit × 3-digit", problemgen.DigitPair{Left: 3, Right: 3}},
	{"1x2", "1-digit × 2-digit", problemgen.DigitPair{Left: 1, Right: 2}},
	{"2x3", "2-digit × 3-digit", problemgen.DigitPair{Left: 2, Right: 3}},
	{"3x4", "3-digit × 4-digit", problemgen.DigitPair{Left: 3, Right: 4}},
	{"4x4", "4-digit × 4-digit", problemgen.DigitPair{Left: 4, Right: 4}},
	{"random", "Random sizes", problemgen.DigitPair{}},
}

var quotientVariants = []digitVariant{
	{"2digit", "2-digit quotient, 2-digit divisor", problemgen.DigitPair{Left: 2, Right: 2}},
	{"3digit", "3-digit quotient, 3-digit divisor", problemgen.DigitPair{Left: 3, Right: 3}},
	{"1x2", "1-digit quotient, 2-digit divisor", problemgen.DigitPair{Left: 1, Right: 2}},
	{"2x3", "2-digit quotient, 3-digit divisor", problemgen.DigitPair{Left: 2, Right: 3}},
	{"3x4", "3-digit quotient, 4-digit divisor", problemgen.DigitPair{Left: 3, Right: 4}},
	{"4x4", "4-digit quotient, 4-digit divisor", problemgen.DigitPair{Left: 4, Right: 4}},
	{"random", "Random sizes", problemgen.DigitPair{}},
}

var differenceVariants = []digitVariant{
	{"2digit", "2-digit − 2-digit", problemgen.DigitPair{Left: 2, Right: 2}},
	{"3digit", "3-digit − 3-digit", problemgen.DigitPair{Left: 3, Right: 3}},
	{"1x2", "1-digit − 2-digit", problemgen.DigitPair{Left: 1, Right: 2}},
	{"2x3", "2-digit − 3-digit", problemgen.DigitPair{Left: 2, Right: 3}},
	{"3x4", "3-digit − 4-digit", problemgen.DigitPair{Left: 3, Right: 4}},
	{"4x4", "4-digit − 4-digit", problemgen.DigitPair{Left: 4, Right: 4}},
	{"2x1", "2-digit − 1-digit", problemgen.DigitPair{Left: 2, Right: 1}},
	{"3x2", "3-digit − 2-digit", problemgen.DigitPair{Left: 3, Right: 2}},
	{"4x3", "4-digit − 3-digit", problemgen.DigitPair{Left: 4, Right: 3}},
	{"random", "Random sizes", problemgen.DigitPair{}},
}

func seedFamilies() []Family {
	return []Family{
		{ID: "multiplication", Name: "Multiplication", Description: "Beat your fastest product"},
		{ID: "blitz", Name: "Multiplication Blitz", Description: "Ten seconds per problem"},
		{ID: "division", Name: "Division", Description: "Exact quotients against the clock"},
		{ID: "subtraction", Name: "Subtraction", Description: "Differences, sometimes negative"},
		{ID: "sat-arithmetic", Name: "SAT Arithmetic", Description: "Percents and fractions"},
		{ID: "algebra", Name: "SAT Algebra", Description: "Linear equations"},
		{ID: "geometry", Name: "SAT Geometry", Description: "Areas, triangles and angles"},
		{ID: "sequence", Name: "Sequences", Description: "Find the next term"},
		{ID: "rebus", Name: "Rebus", Description: "Solve for the shapes"},
	}
}

func seedCategories() []Category {
	var cats []Category

	for _, v := range productVariants {
		cats = append(cats, timed("multiplication", v.suffix, v.name, problemgen.AlphabetDigits,
			problemgen.Multiplication(v.pair),
			func(int) problemgen.Problem { return problemgen.MultiplicationProblem(12, 24) }))
	}
	for _, v := range productVariants {
		if v.suffix == "1x2" {
			continue
		}
		c := timed("blitz", v.suffix, v.name, problemgen.AlphabetDigits,
			problemgen.Multiplication(v.pair),
			func(int) problemgen.Problem { return problemgen.MultiplicationProblem(12, 24) })
		c.Timing = Timing{AnswerTimeout: blitzLimit, Pause: blitzPause, SkipPauseOnCorrect: true}
		c.Score = ScoreStreak
		c.StoreKey = "blitz_best"
		cats = append(cats, c)
	}
	for _, v := range quotientVariants {
		cats = append(cats, timed("division", v.suffix, v.name, problemgen.AlphabetDigits,
			problemgen.Division(v.pair),
			func(int) problemgen.Problem { return problemgen.DivisionProblem(7, 5) }))
	}
	for _, v := range differenceVariants {
		cats = append(cats, timed("subtraction", v.suffix, v.name, problemgen.AlphabetSigned,
			problemgen.Subtraction(v.pair),
			func(int) problemgen.Problem { return problemgen.SubtractionProblem(52, 17) }))
	}

	arith := func(suffix, name string, build problemgen.GenerateFunc) Category {
		c := timed("sat-arithmetic", suffix, name, problemgen.AlphabetDecimalFraction, build,
			func(int) problemgen.Problem { return problemgen.SimplifyProblem(6, 8) })
		c.StoreKey = "best_arithmetic"
		return c
	}
	cats = append(cats,
		arith("percent", "Percent of a number", problemgen.Percent),
		arith("simplify", "Simplify a fraction", problemgen.Simplify),
		arith("add-fraction", "Add fractions", problemgen.AddFraction),
		arith("random", "Mixed", problemgen.OneOf(problemgen.Percent, problemgen.Simplify, problemgen.AddFraction)),
	)

	alg := func(suffix, name string, build problemgen.GenerateFunc) Category {
		return timed("algebra", suffix, name, problemgen.AlphabetSigned, build,
			func(int) problemgen.Problem { return problemgen.OneStepProblem(3, 5, 4) })
	}
	cats = append(cats,
		alg("one-step", "One-step equation", problemgen.OneStep),
		alg("two-step", "Two-step equation", problemgen.TwoStep),
		alg("evaluate", "Evaluate an expression", problemgen.Evaluate),
		alg("random", "Mixed", problemgen.OneOf(problemgen.OneStep, problemgen.TwoStep, problemgen.Evaluate)),
	)

	geo := func(suffix, name string, build problemgen.GenerateFunc) Category {
		return timed("geometry", suffix, name, problemgen.AlphabetGeometry, build,
			func(int) problemgen.Problem { return problemgen.RectangleArea(6, 4) })
	}
	cats = append(cats,
		geo("area", "Area", problemgen.Area),
		geo("pythag", "Pythagorean theorem", problemgen.Pythagoras),
		geo("angle", "Triangle angles", problemgen.Angle),
		geo("random", "Mixed", problemgen.OneOf(problemgen.Area, problemgen.Pythagoras, problemgen.Angle)),
	)

	cats = append(cats,
		puzzle("sequence", "Next term", "seq_best", problemgen.AlphabetSigned, problemgen.Sequence,
			func(int) problemgen.Problem {
				return problemgen.SequenceProblem([]int{2, 4, 6, 8, 10, 12}, -1, "Add +2")
			}),
		puzzle("rebus", "Shape equations", "rebus_best", problemgen.AlphabetDigits, problemgen.Rebus,
			func(int) problemgen.Problem {
				return problemgen.RebusProblem("▲", "◼", 3, 5, true, 1)
			}),
	)
	return cats
}

// timed builds a fastest-time category whose best value is shared by the
// whole family under best_<family>.
func timed(family, suffix, name string, alpha problemgen.Alphabet, build problemgen.GenerateFunc, fallback func(int) problemgen.Problem) Category {
	id := fmt.Sprintf("%s-%s", family, suffix)
	return Category{
		ID:       id,
		Family:   family,
		Name:     name,
		Alphabet: alpha,
		Timing:   Timing{Pause: timedPause},
		Score:    ScoreFastest,
		StoreKey: "best_" + family,
		Spec: problemgen.Spec{
			Category: id,
			Build:    build,
			Fallback: fallback,
		},
	}
}

// puzzle builds a streak category with one retry and adaptive level.
func puzzle(id, name, key string, alpha problemgen.Alphabet, build problemgen.GenerateFunc, fallback func(int) problemgen.Problem) Category {
	return Category{
		ID:          id,
		Family:      id,
		Name:        name,
		Alphabet:    alpha,
		AllowsRetry: true,
		Timing:      Timing{Pause: puzzlePause},
		Score:       ScoreStreak,
		StoreKey:    key,
		Adaptive:    true,
		Spec: problemgen.Spec{
			Category:      id,
			Build:         build,
			Fallback:      fallback,
			MaxDifficulty: MaxLevel,
		},
	}
}
