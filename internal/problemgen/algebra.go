package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// OneStep asks to solve ax + b = c for an integer x.
func OneStep(r *rand.Rand, _ int) Problem {
	return OneStepProblem(randInt(r, 2, 12), randInt(r, -20, 20), randInt(r, -20, 20))
}

// OneStepProblem builds "Solve for x: ax+b = c" with solution x.
func OneStepProblem(a, b, x int) Problem {
	c := a*x + b
	return Problem{
		Operands:   []int{a, b, c},
		Text:       fmt.Sprintf("Solve for x: %s = %d", linear(a, b), c),
		Answer:     strconv.Itoa(x),
		AnswerType: AnswerTypeInteger,
	}
}

// TwoStep asks to solve m(x + s) = c for an integer x.
func TwoStep(r *rand.Rand, _ int) Problem {
	return TwoStepProblem(randInt(r, 2, 12), randInt(r, -10, 10), randInt(r, -20, 20))
}

// TwoStepProblem builds "Solve for x: m(x+s) = c" with solution x.
func TwoStepProblem(m, s, x int) Problem {
	c := m * (x + s)
	lhs := fmt.Sprintf("%d(%s)", m, linear(1, s))
	if s == 0 {
		lhs = linear(m, 0)
	}
	return Problem{
		Operands:   []int{m, s, c},
		Text:       fmt.Sprintf("Solve for x: %s = %d", lhs, c),
		Answer:     strconv.Itoa(x),
		AnswerType: AnswerTypeInteger,
	}
}

// Evaluate asks for the value of ax + b at a given x. The coefficient is
// never zero.
func Evaluate(r *rand.Rand, _ int) Problem {
	a := randInt(r, -10, 10)
	if a == 0 {
		a = 1
	}
	return EvaluateProblem(a, randInt(r, -20, 20), randInt(r, -10, 10))
}

// EvaluateProblem builds "Evaluate ax+b at x = x0".
func EvaluateProblem(a, b, x int) Problem {
	return Problem{
		Operands:   []int{a, b, x},
		Text:       fmt.Sprintf("Evaluate %s at x = %d", linear(a, b), x),
		Answer:     strconv.Itoa(a*x + b),
		AnswerType: AnswerTypeInteger,
	}
}

// linear renders ax+b compactly: "3x+5", "-x-2", "x".
func linear(a, b int) string {
	var s string
	switch a {
	case 1:
		s = "x"
	case -1:
		s = "-x"
	default:
		s = fmt.Sprintf("%dx", a)
	}
	switch {
	case b > 0:
		s += fmt.Sprintf("+%d", b)
	case b < 0:
		s += strconv.Itoa(b)
	}
	return s
}
