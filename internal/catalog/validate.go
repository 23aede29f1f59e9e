package catalog

import (
	"fmt"
	"slices"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

// validateCategories checks that the catalog is well formed: unique IDs,
// known families and alphabets, a generator and a storage key for every
// category.
func validateCategories(families []Family, categories []Category) error {
	if len(categories) == 0 {
		return fmt.Errorf("catalog has no categories")
	}

	famIDs := make(map[string]bool, len(families))
	for _, f := range families {
		if f.ID == "" {
			return fmt.Errorf("family with empty ID")
		}
		if famIDs[f.ID] {
			return fmt.Errorf("duplicate family %q", f.ID)
		}
		famIDs[f.ID] = true
	}

	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c.ID == "" {
			return fmt.Errorf("category with empty ID in family %q", c.Family)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate category %q", c.ID)
		}
		seen[c.ID] = true

		if !famIDs[c.Family] {
			return fmt.Errorf("category %q: unknown family %q", c.ID, c.Family)
		}
		if !slices.Contains(problemgen.Alphabets, c.Alphabet) {
			return fmt.Errorf("category %q: unknown alphabet %q", c.ID, c.Alphabet)
		}
		if c.Spec.Build == nil {
			return fmt.Errorf("category %q: no generator", c.ID)
		}
		if c.Spec.Category != c.ID {
			return fmt.Errorf("category %q: generator stamped as %q", c.ID, c.Spec.Category)
		}
		if c.StoreKey == "" {
			return fmt.Errorf("category %q: empty store key", c.ID)
		}
		if c.Timing.AnswerTimeout < 0 || c.Timing.Pause < 0 {
			return fmt.Errorf("category %q: negative timing", c.ID)
		}
	}
	return nil
}
