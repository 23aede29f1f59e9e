package problemgen

import (
	"fmt"
	"strconv"
)

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem) *ValidationError {
	if p.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "text is empty",
		}
	}
	if len(p.Text) > 200 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "text exceeds 200 characters",
		}
	}
	if p.Answer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer is empty",
		}
	}
	switch p.AnswerType {
	case AnswerTypeInteger, AnswerTypeDecimal, AnswerTypeFraction, AnswerTypePi:
	default:
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown answer type %q", p.AnswerType),
		}
	}
	return nil
}

// MagnitudeValidator keeps puzzle numbers presentable: every sequence
// term (visible, hidden or answer) must stay within Ceiling in absolute
// value. Problems without terms pass.
type MagnitudeValidator struct {
	Ceiling int
}

func (v *MagnitudeValidator) Name() string { return "magnitude" }

func (v *MagnitudeValidator) Validate(p *Problem) *ValidationError {
	if len(p.Terms) == 0 {
		return nil
	}
	for i, t := range p.Terms {
		if t != nil && abs(int64(*t)) > int64(v.Ceiling) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("term %d (%d) exceeds %d", i, *t, v.Ceiling),
			}
		}
	}
	for _, n := range p.Operands {
		if abs(int64(n)) > int64(v.Ceiling) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("hidden term %d exceeds %d", n, v.Ceiling),
			}
		}
	}
	if n, err := strconv.ParseInt(p.Answer, 10, 64); err == nil && abs(n) > int64(v.Ceiling) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %d exceeds %d", n, v.Ceiling),
		}
	}
	return nil
}
