package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

var pythagoreanTriples = [][3]int{{3, 4, 5}, {5, 12, 13}, {8, 15, 17}}

// Area asks for the area of a rectangle, a right triangle or a circle.
func Area(r *rand.Rand, _ int) Problem {
	switch r.IntN(3) {
	case 0:
		return RectangleArea(randInt(r, 4, 20), randInt(r, 3, 15))
	case 1:
		return TriangleArea(randInt(r, 6, 18), randInt(r, 4, 14))
	default:
		return CircleArea(randInt(r, 3, 10))
	}
}

// RectangleArea builds the area of an l × w rectangle.
func RectangleArea(l, w int) Problem {
	return Problem{
		Operands:   []int{l, w},
		Text:       fmt.Sprintf("Rectangle %d×%d. Find area.", l, w),
		Answer:     strconv.Itoa(l * w),
		AnswerType: AnswerTypeInteger,
	}
}

// TriangleArea builds the area of a right triangle with legs b and h. Odd
// products give a half-unit decimal answer.
func TriangleArea(b, h int) Problem {
	return Problem{
		Operands:   []int{b, h},
		Text:       fmt.Sprintf("Right triangle legs %d and %d. Area?", b, h),
		Answer:     strconv.FormatFloat(float64(b*h)/2, 'f', -1, 64),
		AnswerType: AnswerTypeDecimal,
	}
}

// CircleArea builds the area of a circle of radius r in terms of π.
func CircleArea(radius int) Problem {
	return Problem{
		Operands:   []int{radius},
		Text:       fmt.Sprintf("Circle radius %d. Area = ? (π)", radius),
		Answer:     fmt.Sprintf("%dπ", radius*radius),
		AnswerType: AnswerTypePi,
	}
}

// Pythagoras hides one side of a scaled Pythagorean triple.
func Pythagoras(r *rand.Rand, _ int) Problem {
	t := pick(r, pythagoreanTriples)
	k := randInt(r, 1, 3)
	return PythagorasProblem(t[0]*k, t[1]*k, t[2]*k, r.IntN(3))
}

// PythagorasProblem builds a right triangle with legs a, b and hypotenuse
// c, asking for side hide (0 = a, 1 = b, 2 = c).
func PythagorasProblem(a, b, c, hide int) Problem {
	p := Problem{
		Operands:   []int{a, b, c},
		AnswerType: AnswerTypeInteger,
	}
	switch hide {
	case 0:
		p.Text = fmt.Sprintf("Leg x, other leg %d, hypotenuse %d. Find x.", b, c)
		p.Answer = strconv.Itoa(a)
	case 1:
		p.Text = fmt.Sprintf("Leg %d, other leg x, hypotenuse %d. Find x.", a, c)
		p.Answer = strconv.Itoa(b)
	default:
		p.Text = fmt.Sprintf("Legs %d and %d. Hypotenuse?", a, b)
		p.Answer = strconv.Itoa(c)
	}
	return p
}

// Angle asks for the third angle of a triangle. Every angle is at least
// 20°.
func Angle(r *rand.Rand, _ int) Problem {
	a := randInt(r, 30, 80)
	b := randInt(r, 30, min(80, 160-a))
	return AngleProblem(a, b)
}

// AngleProblem builds "Angles: a°, b°, x°. Find x."
func AngleProblem(a, b int) Problem {
	return Problem{
		Operands:   []int{a, b},
		Text:       fmt.Sprintf("Angles: %d°, %d°, x°. Find x.", a, b),
		Answer:     strconv.Itoa(180 - a - b),
		AnswerType: AnswerTypeInteger,
	}
}
