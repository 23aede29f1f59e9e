package problemgen

import (
	"strings"
	"testing"
)

func validProblem() *Problem {
	p := MultiplicationProblem(12, 24)
	return &p
}

func TestStructural_Valid(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validProblem()); err != nil {
		t.Fatalf("expected valid problem, got: %v", err)
	}
}

func TestStructural_Failures(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name   string
		mutate func(p *Problem)
	}{
		{"empty text", func(p *Problem) { p.Text = "" }},
		{"long text", func(p *Problem) { p.Text = strings.Repeat("x", 201) }},
		{"empty answer", func(p *Problem) { p.Answer = "" }},
		{"unknown answer type", func(p *Problem) { p.AnswerType = "roman" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validProblem()
			tc.mutate(p)
			err := v.Validate(p)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Validator != "structural" {
				t.Errorf("Validator = %q, want structural", err.Validator)
			}
		})
	}
}

func TestMagnitude(t *testing.T) {
	v := &MagnitudeValidator{Ceiling: 100}

	small := SequenceProblem([]int{1, 2, 3, 4, 5, 6}, -1, "")
	if err := v.Validate(&small); err != nil {
		t.Errorf("small sequence should pass: %v", err)
	}

	big := SequenceProblem([]int{1, 10, 100, 1000, 10000, 100000}, -1, "")
	if err := v.Validate(&big); err == nil {
		t.Error("expected visible term overflow to fail")
	}

	// Hidden term and answer are checked as well.
	hidden := SequenceProblem([]int{1, 2, 3, 500, 5, 6}, 3, "")
	if err := v.Validate(&hidden); err == nil {
		t.Error("expected hidden term overflow to fail")
	}
	answer := SequenceProblem([]int{1, 2, 3, 4, 5, 600}, -1, "")
	if err := v.Validate(&answer); err == nil {
		t.Error("expected answer overflow to fail")
	}

	// Problems without terms are not bounded.
	mult := MultiplicationProblem(9999, 9999)
	if err := v.Validate(&mult); err != nil {
		t.Errorf("multiplication should not be bounded: %v", err)
	}
}
