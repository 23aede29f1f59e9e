package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnknownCategory is returned when a category ID is not registered.
var ErrUnknownCategory = errors.New("unknown category")

// Catalog is an ordered, indexed set of drill categories.
type Catalog struct {
	mu         sync.RWMutex
	categories []Category
	byID       map[string]int
	families   []Family
	byFamily   map[string][]int
}

// New builds a catalog from families and categories. Every category must
// belong to one of families.
func New(families []Family, categories []Category) (*Catalog, error) {
	if err := validateCategories(families, categories); err != nil {
		return nil, err
	}
	c := &Catalog{}
	c.rebuild(slices.Clone(families), slices.Clone(categories))
	return c, nil
}

// rebuild recomputes the indices. Caller holds the write lock or owns c.
func (c *Catalog) rebuild(families []Family, categories []Category) {
	c.families = families
	c.categories = categories
	c.byID = make(map[string]int, len(categories))
	c.byFamily = make(map[string][]int, len(families))
	for i := range categories {
		c.byID[categories[i].ID] = i
		c.byFamily[categories[i].Family] = append(c.byFamily[categories[i].Family], i)
	}
}

// Lookup returns the category with the given ID.
func (c *Catalog) Lookup(id string) (Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
	}
	return c.categories[i], nil
}

// All returns every category in registration order.
func (c *Catalog) All() []Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.categories)
}

// Families returns the drill families in display order.
func (c *Catalog) Families() []Family {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.families)
}

// ByFamily returns the variants of a family in registration order.
func (c *Catalog) ByFamily(family string) []Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx := c.byFamily[family]
	out := make([]Category, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.categories[i])
	}
	return out
}

// Default returns the first registered category.
func (c *Catalog) Default() Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.categories[0]
}

// Next returns the variant after id within its family, wrapping around.
func (c *Catalog) Next(id string) (Category, error) {
	cur, err := c.Lookup(id)
	if err != nil {
		return Category{}, err
	}
	variants := c.ByFamily(cur.Family)
	for i, v := range variants {
		if v.ID == id {
			return variants[(i+1)%len(variants)], nil
		}
	}
	return cur, nil
}

// Register adds a category. Its family must already exist and its ID
// must be unused.
func (c *Catalog) Register(cat Category) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	categories := append(slices.Clone(c.categories), cat)
	if err := validateCategories(c.families, categories); err != nil {
		return err
	}
	c.rebuild(c.families, categories)
	return nil
}

// WithOverrides returns a copy of the catalog with overrides applied.
// Keys are category IDs or family IDs; a category ID wins over its
// family. Unknown keys are an error.
func (c *Catalog) WithOverrides(overrides map[string]Override) (*Catalog, error) {
	c.mu.RLock()
	for key := range overrides {
		_, isCat := c.byID[key]
		_, isFam := c.byFamily[key]
		if !isCat && !isFam {
			c.mu.RUnlock()
			return nil, fmt.Errorf("override %q: %w", key, ErrUnknownCategory)
		}
	}
	families := slices.Clone(c.families)
	categories := slices.Clone(c.categories)
	c.mu.RUnlock()

	for i := range categories {
		if o, ok := overrides[categories[i].Family]; ok {
			categories[i] = categories[i].With(o)
		}
		if o, ok := overrides[categories[i].ID]; ok {
			categories[i] = categories[i].With(o)
		}
	}
	return New(families, categories)
}

var (
	builtinOnce sync.Once
	builtin     *Catalog
)

// Builtin returns the catalog of built-in drills.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		c, err := New(seedFamilies(), seedCategories())
		if err != nil {
			panic(fmt.Sprintf("catalog: invalid built-in categories: %v", err))
		}
		builtin = c
	})
	return builtin
}

// Lookup returns a built-in category by ID.
func Lookup(id string) (Category, error) { return Builtin().Lookup(id) }

// All returns every built-in category.
func All() []Category { return Builtin().All() }

// Families returns the built-in drill families.
func Families() []Family { return Builtin().Families() }

// Default returns the built-in default category, multiplication-2digit.
func Default() Category { return Builtin().Default() }

// Register adds a category to the built-in catalog.
func Register(cat Category) error { return Builtin().Register(cat) }
