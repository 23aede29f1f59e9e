package problemgen

import "math/rand/v2"

// Generator produces drill problems from category specs.
type Generator struct {
	cfg Config
	rnd *rand.Rand
}

// New creates a Generator drawing randomness from r. A nil r uses a
// randomly seeded source.
func New(r *rand.Rand, cfg Config) *Generator {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.MaxResample <= 0 {
		cfg.MaxResample = DefaultConfig().MaxResample
	}
	return &Generator{cfg: cfg, rnd: r}
}

// Generate produces a validated problem for spec at the given difficulty.
// Invalid candidates are resampled up to Config.MaxResample times; the
// caller never sees a validation failure.
func (g *Generator) Generate(spec Spec, difficulty int) Problem {
	difficulty = clampDifficulty(difficulty, spec.MaxDifficulty)

	var last Problem
	for attempt := 0; attempt < g.cfg.MaxResample; attempt++ {
		p := spec.Build(g.rnd, difficulty)
		p.Category = spec.Category
		p.Difficulty = difficulty
		if g.validate(&p) == nil {
			return p
		}
		last = p
	}

	if spec.Fallback != nil {
		p := spec.Fallback(difficulty)
		p.Category = spec.Category
		p.Difficulty = difficulty
		return p
	}
	return last
}

// validate runs the configured validator chain on p. The first failure
// stops the pipeline.
func (g *Generator) validate(p *Problem) *ValidationError {
	for _, v := range g.cfg.Validators {
		if err := v.Validate(p); err != nil {
			return err
		}
	}
	return nil
}

// Validate runs the default validator chain on p.
func Validate(p *Problem) *ValidationError {
	for _, v := range DefaultConfig().Validators {
		if err := v.Validate(p); err != nil {
			return err
		}
	}
	return nil
}

func clampDifficulty(d, max int) int {
	if d < 1 {
		d = 1
	}
	if max > 0 && d > max {
		d = max
	}
	return d
}

// OneOf draws one of gens uniformly for every problem.
func OneOf(gens ...GenerateFunc) GenerateFunc {
	return func(r *rand.Rand, difficulty int) Problem {
		return gens[r.IntN(len(gens))](r, difficulty)
	}
}
