package problemgen

// MagnitudeCeiling is the largest absolute value a puzzle term may take
// before the puzzle is regenerated.
const MagnitudeCeiling = 20000

// Config controls the behavior of the Generator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated problem. They execute in order; the first failure
	// triggers a resample.
	Validators []Validator

	// MaxResample is the number of candidates drawn before falling back
	// to the category's known-valid problem.
	MaxResample int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerFormatValidator{},
			&MagnitudeValidator{Ceiling: MagnitudeCeiling},
			&MathCheckValidator{},
		},
		MaxResample: 64,
	}
}
