package catalog

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

func TestBuiltin_Valid(t *testing.T) {
	if err := validateCategories(seedFamilies(), seedCategories()); err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}
}

func TestLookup(t *testing.T) {
	c, err := Lookup("multiplication-2digit")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if c.Family != "multiplication" || c.StoreKey != "best_multiplication" {
		t.Errorf("unexpected category: %+v", c)
	}
	if c.Alphabet != problemgen.AlphabetDigits {
		t.Errorf("Alphabet = %q, want digits", c.Alphabet)
	}

	_, err = Lookup("nonexistent")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestDefault(t *testing.T) {
	if id := Default().ID; id != "multiplication-2digit" {
		t.Errorf("Default() = %q, want multiplication-2digit", id)
	}
}

func TestFamilies_AllHaveVariants(t *testing.T) {
	for _, f := range Families() {
		if len(Builtin().ByFamily(f.ID)) == 0 {
			t.Errorf("family %q has no categories", f.ID)
		}
	}
}

func TestStoreKeys(t *testing.T) {
	tests := map[string]string{
		"multiplication-4x4":     "best_multiplication",
		"division-random":        "best_division",
		"subtraction-3x2":        "best_subtraction",
		"sat-arithmetic-percent": "best_arithmetic",
		"algebra-one-step":       "best_algebra",
		"geometry-area":          "best_geometry",
		"sequence":               "seq_best",
		"rebus":                  "rebus_best",
		"blitz-2digit":           "blitz_best",
	}
	for id, want := range tests {
		c, err := Lookup(id)
		if err != nil {
			t.Errorf("Lookup(%q): %v", id, err)
			continue
		}
		if c.StoreKey != want {
			t.Errorf("%s: StoreKey = %q, want %q", id, c.StoreKey, want)
		}
	}
}

func TestPolicies(t *testing.T) {
	seq, _ := Lookup("sequence")
	if !seq.AllowsRetry || seq.Score != ScoreStreak || !seq.Adaptive {
		t.Errorf("sequence policy wrong: %+v", seq)
	}
	if seq.Timing.Pause != 2*time.Second {
		t.Errorf("sequence pause = %v, want 2s", seq.Timing.Pause)
	}

	mult, _ := Lookup("multiplication-2digit")
	if mult.AllowsRetry || mult.Timing.HasDeadline() || mult.Timing.Pause != 3*time.Second {
		t.Errorf("multiplication policy wrong: %+v", mult.Timing)
	}

	blitz, _ := Lookup("blitz-3x4")
	if blitz.Timing.AnswerTimeout != 10*time.Second || !blitz.Timing.SkipPauseOnCorrect {
		t.Errorf("blitz timing wrong: %+v", blitz.Timing)
	}
}

func TestEveryCategoryGenerates(t *testing.T) {
	g := problemgen.New(rand.New(rand.NewPCG(1, 2)), problemgen.DefaultConfig())
	for _, c := range All() {
		for i := 0; i < 10; i++ {
			p := g.Generate(c.Spec, 1+i)
			if p.Answer == "" {
				t.Fatalf("%s: empty answer", c.ID)
			}
			if p.Category != c.ID {
				t.Fatalf("%s: problem stamped %q", c.ID, p.Category)
			}
			// The canonical answer must be typeable in the category's alphabet.
			if got := c.Alphabet.Sanitize(p.Answer); !problemgen.CheckAnswer(got, &p) {
				t.Fatalf("%s: answer %q not typeable (sanitized %q)", c.ID, p.Answer, got)
			}
			if c.Spec.Fallback != nil {
				fb := c.Spec.Fallback(1)
				if err := problemgen.Validate(&fb); err != nil {
					t.Fatalf("%s: invalid fallback: %v", c.ID, err)
				}
			}
		}
	}
}

func TestScoreKind_Better(t *testing.T) {
	if !ScoreFastest.Better(3.2, 4.5) || ScoreFastest.Better(4.5, 4.5) {
		t.Error("fastest: lower must win strictly")
	}
	if !ScoreStreak.Better(5, 4) || ScoreStreak.Better(4, 4) {
		t.Error("streak: higher must win strictly")
	}
	if got := ScoreFastest.Format(3.2); got != "3.20s" {
		t.Errorf("Format = %q", got)
	}
	if got := ScoreStreak.Format(7); got != "7" {
		t.Errorf("Format = %q", got)
	}
}

func TestNext_WrapsWithinFamily(t *testing.T) {
	c := Builtin()
	variants := c.ByFamily("algebra")
	last := variants[len(variants)-1]
	next, err := c.Next(last.ID)
	if err != nil {
		t.Fatal(err)
	}
	if next.ID != variants[0].ID {
		t.Errorf("Next(%q) = %q, want %q", last.ID, next.ID, variants[0].ID)
	}
}

func dur(d time.Duration) *time.Duration { return &d }

func TestWithOverrides(t *testing.T) {
	c, err := Builtin().WithOverrides(map[string]Override{
		"multiplication":     {Pause: dur(5 * time.Second)},
		"multiplication-4x4": {Pause: dur(time.Second), StoreKey: "best_mult_4x4"},
	})
	if err != nil {
		t.Fatalf("WithOverrides: %v", err)
	}

	m2, _ := c.Lookup("multiplication-2digit")
	if m2.Timing.Pause != 5*time.Second {
		t.Errorf("family override not applied: %v", m2.Timing.Pause)
	}
	m4, _ := c.Lookup("multiplication-4x4")
	if m4.Timing.Pause != time.Second || m4.StoreKey != "best_mult_4x4" {
		t.Errorf("category override not applied: %+v", m4)
	}

	// The built-in catalog is untouched.
	orig, _ := Lookup("multiplication-2digit")
	if orig.Timing.Pause != 3*time.Second {
		t.Errorf("built-in catalog mutated: %v", orig.Timing.Pause)
	}

	if _, err := Builtin().WithOverrides(map[string]Override{"bogus": {}}); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestRegister(t *testing.T) {
	c, err := New(seedFamilies(), seedCategories())
	if err != nil {
		t.Fatal(err)
	}

	extra := Category{
		ID:       "multiplication-5x5",
		Family:   "multiplication",
		Name:     "5-digit × 5-digit",
		Alphabet: problemgen.AlphabetDigits,
		Timing:   Timing{Pause: time.Second},
		StoreKey: "best_multiplication",
		Spec: problemgen.Spec{
			Category: "multiplication-5x5",
			Build:    problemgen.Multiplication(problemgen.DigitPair{Left: 5, Right: 5}),
		},
	}
	if err := c.Register(extra); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := c.Lookup("multiplication-5x5"); err != nil {
		t.Errorf("registered category not found: %v", err)
	}

	if err := c.Register(extra); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate error, got %v", err)
	}

	orphan := extra
	orphan.ID = "orphan"
	orphan.Spec.Category = "orphan"
	orphan.Family = "nope"
	if err := c.Register(orphan); err == nil {
		t.Error("expected error for unknown family")
	}
}

func TestWithOverrides_ZeroDisables(t *testing.T) {
	blitz, err := Lookup("blitz-2digit")
	if err != nil {
		t.Fatal(err)
	}
	if !blitz.Timing.HasDeadline() || blitz.Timing.Pause == 0 {
		t.Fatalf("blitz-2digit should be timed with a pause: %+v", blitz.Timing)
	}

	c, err := Builtin().WithOverrides(map[string]Override{
		"blitz-2digit": {AnswerTimeout: dur(0), Pause: dur(0)},
	})
	if err != nil {
		t.Fatalf("WithOverrides: %v", err)
	}
	got, _ := c.Lookup("blitz-2digit")
	if got.Timing.HasDeadline() {
		t.Errorf("deadline not disabled: %v", got.Timing.AnswerTimeout)
	}
	if got.Timing.Pause != 0 {
		t.Errorf("pause not disabled: %v", got.Timing.Pause)
	}

	// A nil field keeps the built-in value.
	kept := blitz.With(Override{Pause: dur(0)})
	if kept.Timing.AnswerTimeout != blitz.Timing.AnswerTimeout {
		t.Errorf("answer timeout changed: %v", kept.Timing.AnswerTimeout)
	}
}
