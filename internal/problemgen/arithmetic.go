package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// DigitPair is the operand size of a digit drill. Left is the first
// operand (the quotient for division), Right the second (the divisor).
// A zero side draws a random size of 2 to 4 digits per problem.
type DigitPair struct {
	Left, Right int
}

// Random reports whether either side is drawn per problem.
func (d DigitPair) Random() bool {
	return d.Left == 0 || d.Right == 0
}

func (d DigitPair) draw(r *rand.Rand) (int, int) {
	left, right := d.Left, d.Right
	if left == 0 {
		left = 2 + r.IntN(3)
	}
	if right == 0 {
		right = 2 + r.IntN(3)
	}
	return left, right
}

// randDigits draws uniformly from the d-digit range 10^(d-1)..10^d-1.
func randDigits(r *rand.Rand, d int) int {
	if d < 1 {
		d = 1
	}
	lo := pow10(d - 1)
	hi := pow10(d) - 1
	return lo + r.IntN(hi-lo+1)
}

// randInt draws uniformly from min..max inclusive.
func randInt(r *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.IntN(max-min+1)
}

func pick[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// Multiplication draws both factors by digit count.
func Multiplication(d DigitPair) GenerateFunc {
	return func(r *rand.Rand, _ int) Problem {
		l, rt := d.draw(r)
		return MultiplicationProblem(randDigits(r, l), randDigits(r, rt))
	}
}

// MultiplicationProblem builds a × b.
func MultiplicationProblem(a, b int) Problem {
	expr := fmt.Sprintf("%d × %d", a, b)
	return Problem{
		Operands:   []int{a, b},
		Text:       expr,
		Expression: expr,
		Answer:     strconv.Itoa(a * b),
		AnswerType: AnswerTypeInteger,
	}
}

// Division draws the divisor and quotient first and derives the dividend,
// so the quotient is always exact and no candidate is ever rejected.
func Division(d DigitPair) GenerateFunc {
	return func(r *rand.Rand, _ int) Problem {
		ql, dl := d.draw(r)
		return DivisionProblem(randDigits(r, dl), randDigits(r, ql))
	}
}

// DivisionProblem builds (divisor × quotient) ÷ divisor. A zero divisor is
// replaced by 1.
func DivisionProblem(divisor, quotient int) Problem {
	if divisor == 0 {
		divisor = 1
	}
	dividend := divisor * quotient
	expr := fmt.Sprintf("%d ÷ %d", dividend, divisor)
	return Problem{
		Operands:   []int{dividend, divisor, quotient},
		Text:       expr,
		Expression: expr,
		Answer:     strconv.Itoa(quotient),
		AnswerType: AnswerTypeInteger,
	}
}

// Subtraction draws minuend and subtrahend by digit count. The difference
// may be negative when the right side is larger.
func Subtraction(d DigitPair) GenerateFunc {
	return func(r *rand.Rand, _ int) Problem {
		l, rt := d.draw(r)
		return SubtractionProblem(randDigits(r, l), randDigits(r, rt))
	}
}

// SubtractionProblem builds a − b.
func SubtractionProblem(a, b int) Problem {
	return Problem{
		Operands:   []int{a, b},
		Text:       fmt.Sprintf("%d − %d", a, b),
		Expression: fmt.Sprintf("%d - %d", a, b),
		Answer:     strconv.Itoa(a - b),
		AnswerType: AnswerTypeInteger,
	}
}
