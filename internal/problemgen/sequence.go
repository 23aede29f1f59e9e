package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// SequenceLength is the number of terms in a sequence puzzle, including
// the hidden final term.
const SequenceLength = 6

// SequenceKind names the rule behind a sequence puzzle.
type SequenceKind string

const (
	SeqArithmetic SequenceKind = "arithmetic"
	SeqGeometric  SequenceKind = "geometric"
	SeqFibonacci  SequenceKind = "fibonacci"
	SeqAlternate  SequenceKind = "alternating"
	SeqMixed      SequenceKind = "mixed"
	SeqQuadratic  SequenceKind = "quadratic"
	SeqSquare     SequenceKind = "square"
	SeqPow2       SequenceKind = "pow2"
)

// SequenceKinds returns the kinds unlocked at level.
func SequenceKinds(level int) []SequenceKind {
	kinds := []SequenceKind{SeqArithmetic, SeqGeometric, SeqFibonacci, SeqAlternate}
	if level >= 4 {
		kinds = append(kinds, SeqMixed, SeqQuadratic)
	}
	if level >= 8 {
		kinds = append(kinds, SeqSquare, SeqPow2)
	}
	return kinds
}

// Sequence builds a "next term" puzzle. Terms may exceed MagnitudeCeiling;
// the validator chain rejects those and Generate draws again.
func Sequence(r *rand.Rand, level int) Problem {
	kind := pick(r, SequenceKinds(level))
	terms, hint := sequenceTerms(r, kind, level)

	// Sometimes blank an interior term as a second visual challenge.
	gap := -1
	if kind != SeqAlternate && level < 9 && r.Float64() < 0.35 {
		gap = randInt(r, 2, SequenceLength-3)
	}
	return SequenceProblem(terms, gap, hint)
}

// SequenceProblem builds a puzzle from the full term list. The last term
// is the answer; gap is the index of an interior term shown blank, or -1.
func SequenceProblem(terms []int, gap int, hint string) Problem {
	shown := make([]*int, len(terms)-1)
	parts := make([]string, 0, len(terms))
	for i := 0; i < len(terms)-1; i++ {
		if i == gap {
			parts = append(parts, "__")
			continue
		}
		v := terms[i]
		shown[i] = &v
		parts = append(parts, strconv.Itoa(v))
	}
	parts = append(parts, "?")

	return Problem{
		Operands:   append([]int(nil), terms...),
		Terms:      shown,
		Text:       "Next term: " + strings.Join(parts, ", "),
		Answer:     strconv.Itoa(terms[len(terms)-1]),
		AnswerType: AnswerTypeInteger,
		Hint:       hint,
	}
}

func sequenceTerms(r *rand.Rand, kind SequenceKind, level int) ([]int, string) {
	seq := make([]int, 0, SequenceLength)
	signedStep := func() int {
		d := randInt(r, 1, 4+level)
		if r.IntN(2) == 0 {
			return -d
		}
		return d
	}

	switch kind {
	case SeqGeometric:
		start := randInt(r, 1, 6)
		if r.IntN(2) == 0 {
			start = -start
		}
		ratios := []int{2, 3}
		if level >= 4 {
			ratios = append(ratios, -2)
		}
		if level >= 7 {
			ratios = append(ratios, 4)
		}
		ratio := pick(r, ratios)
		seq = append(seq, start)
		for i := 1; i < SequenceLength; i++ {
			seq = append(seq, seq[i-1]*ratio)
		}
		return seq, fmt.Sprintf("Multiply by %d", ratio)

	case SeqFibonacci:
		seq = append(seq, randInt(r, 1, 9), randInt(r, 1, 9))
		for len(seq) < SequenceLength {
			seq = append(seq, seq[len(seq)-1]+seq[len(seq)-2])
		}
		return seq, "Next = sum of the two previous"

	case SeqAlternate:
		a1, d1 := randInt(r, 1, 15), signedStep()
		a2, d2 := randInt(r, 1, 15), signedStep()
		for i := 0; i < SequenceLength; i++ {
			if i%2 == 0 {
				seq = append(seq, a1+(i/2)*d1)
			} else {
				seq = append(seq, a2+((i-1)/2)*d2)
			}
		}
		return seq, "Two interleaved arithmetic rows"

	case SeqMixed:
		d := randInt(r, 1, 3+level)
		ratio := pick(r, []int{2, 3, 4})
		seq = append(seq, randInt(r, 2, 10))
		for i := 1; i < SequenceLength/2; i++ {
			seq = append(seq, seq[i-1]+d)
		}
		for i := SequenceLength / 2; i < SequenceLength; i++ {
			seq = append(seq, seq[i-1]*ratio)
		}
		return seq, fmt.Sprintf("Add %d, then ×%d", d, ratio)

	case SeqQuadratic:
		a, b, c := randInt(r, 1, 3), randInt(r, 0, 4), randInt(r, -3, 3)
		for n := 1; n <= SequenceLength; n++ {
			seq = append(seq, a*n*n+b*n+c)
		}
		return seq, "Quadratic pattern"

	case SeqSquare:
		off := randInt(r, 0, 3)
		for n := 1; n <= SequenceLength; n++ {
			seq = append(seq, (n+off)*(n+off))
		}
		return seq, "Perfect squares"

	case SeqPow2:
		k := randInt(r, 1, 3)
		for i := 0; i < SequenceLength; i++ {
			seq = append(seq, k<<i)
		}
		return seq, "Powers of two"

	default:
		start, d := randInt(r, -12, 18), signedStep()
		for i := 0; i < SequenceLength; i++ {
			seq = append(seq, start+i*d)
		}
		hint := fmt.Sprintf("Add %d", d)
		if d > 0 {
			hint = fmt.Sprintf("Add +%d", d)
		}
		return seq, hint
	}
}
