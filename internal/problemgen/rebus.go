package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

var rebusShapes = []string{"▲", "◼", "●"}

// Rebus builds a pair of equations over two shape symbols and asks for the
// value of one of them. Higher levels widen the value range and switch the
// second equation from a difference to a doubling to a product.
func Rebus(r *rand.Rand, level int) Problem {
	i := r.IntN(len(rebusShapes))
	j := r.IntN(len(rebusShapes) - 1)
	if j >= i {
		j++
	}
	a, b := rebusShapes[i], rebusShapes[j]

	hi := 4 + level*2
	va := randInt(r, 1, hi)
	vb := randInt(r, 1, hi)
	if vb == va {
		vb++
	}
	return RebusProblem(a, b, va, vb, r.IntN(2) == 0, level)
}

// RebusProblem builds a rebus where shape a is worth va and shape b is
// worth vb, asking for a when askFirst is set.
func RebusProblem(a, b string, va, vb int, askFirst bool, level int) Problem {
	lines := []string{fmt.Sprintf("%s + %s = %d", a, b, va+vb)}
	var hint string
	switch {
	case level < 4:
		if va >= vb {
			lines = append(lines, fmt.Sprintf("%s − %s = %d", a, b, va-vb))
		} else {
			lines = append(lines, fmt.Sprintf("%s − %s = %d", b, a, vb-va))
		}
		hint = "Add and subtract the two equations."
	case level < 7:
		lines = append(lines, fmt.Sprintf("2 × %s = %d", a, 2*va))
		hint = fmt.Sprintf("Find %s from the doubling equation first.", a)
	default:
		// Sum and product alone are symmetric; state which shape is larger.
		lines = append(lines, fmt.Sprintf("%s × %s = %d", a, b, va*vb))
		if va > vb {
			lines = append(lines, fmt.Sprintf("%s > %s", a, b))
		} else {
			lines = append(lines, fmt.Sprintf("%s > %s", b, a))
		}
		hint = "Use multiplication & addition together."
	}

	target, answer := b, vb
	if askFirst {
		target, answer = a, va
	}
	return Problem{
		Operands:   []int{va, vb},
		Text:       fmt.Sprintf("%s = ?", target),
		Lines:      lines,
		Answer:     strconv.Itoa(answer),
		AnswerType: AnswerTypeInteger,
		Hint:       hint,
	}
}
