package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// maxSimplifyDraws caps the resampling of fraction pairs that share no
// common factor.
const maxSimplifyDraws = 32

var (
	percentSteps     = []int{5, 10, 15, 20, 25, 30, 40, 50}
	unitDenominators = []int{2, 3, 4, 5, 6}
)

// Percent asks for p% of n.
func Percent(r *rand.Rand, _ int) Problem {
	return PercentProblem(pick(r, percentSteps), randInt(r, 20, 200))
}

// PercentProblem builds "What is p% of n?".
func PercentProblem(p, n int) Problem {
	return Problem{
		Operands:   []int{p, n},
		Text:       fmt.Sprintf("What is %d%% of %d?", p, n),
		Answer:     strconv.FormatFloat(float64(p*n)/100, 'f', -1, 64),
		AnswerType: AnswerTypeDecimal,
	}
}

// Simplify asks to reduce a fraction with one-digit terms. Pairs that are
// already in lowest terms (or equal) are resampled, up to a fixed cap.
func Simplify(r *rand.Rand, _ int) Problem {
	d1, d2 := 6, 8
	for i := 0; i < maxSimplifyDraws; i++ {
		a, b := randInt(r, 2, 9), randInt(r, 2, 9)
		if a != b && GCD(a, b) > 1 {
			d1, d2 = a, b
			break
		}
	}
	return SimplifyProblem(d1, d2)
}

// SimplifyProblem builds "Simplify d1/d2". The answer is the reduced
// fraction, or a whole number when the denominator reduces to 1.
func SimplifyProblem(d1, d2 int) Problem {
	if d2 == 0 {
		d2 = 1
	}
	n, d := reduce(d1, d2)
	return Problem{
		Operands:   []int{d1, d2, n, d},
		Text:       fmt.Sprintf("Simplify %d/%d", d1, d2),
		Answer:     formatFraction(n, d),
		AnswerType: AnswerTypeFraction,
	}
}

// AddFraction asks for the sum of two proper fractions with different
// denominators.
func AddFraction(r *rand.Rand, _ int) Problem {
	bi := r.IntN(len(unitDenominators))
	// Pick d from the remaining denominators so b != d without retrying.
	di := r.IntN(len(unitDenominators) - 1)
	if di >= bi {
		di++
	}
	b, d := unitDenominators[bi], unitDenominators[di]
	return AddFractionProblem(randInt(r, 1, b-1), b, randInt(r, 1, d-1), d)
}

// AddFractionProblem builds "What is a/b + c/d?".
func AddFractionProblem(a, b, c, d int) Problem {
	n, den := reduce(a*d+c*b, b*d)
	expr := fmt.Sprintf("%d/%d + %d/%d", a, b, c, d)
	return Problem{
		Operands:   []int{a, b, c, d},
		Text:       fmt.Sprintf("What is %s?", expr),
		Expression: expr,
		Answer:     formatFraction(n, den),
		AnswerType: AnswerTypeFraction,
	}
}

// reduce returns n/d in lowest terms with a positive denominator.
func reduce(n, d int) (int, int) {
	if d < 0 {
		n, d = -n, -d
	}
	g := GCD(n, d)
	if g == 0 {
		return n, d
	}
	return n / g, d / g
}

func formatFraction(n, d int) string {
	if d == 1 {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%d/%d", n, d)
}
