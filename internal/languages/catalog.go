package languages

import (
	"fmt"
	"math/rand/v2"
)

// Synthetic exercise-type codes. They are selectable in the UI but are
// never members of a catalog's concrete entries.
const (
	TypeRandom = "random"
	TypeCustom = "custom"
)

// Definition describes one writing exercise type for a language.
type Definition struct {
	// Code is the stable identifier used in state files and prompts.
	Code string

	// Name is the display name shown in the UI.
	Name string

	// MinWords and MaxWords bound the expected length of the learner's
	// writing for this exercise type.
	MinWords int
	MaxWords int

	// Requirements describes what a correct piece of writing must
	// contain. Sent verbatim to the LLM when generating and checking.
	Requirements string
}

// Catalog holds the exercise definitions for one language.
type Catalog struct {
	// Code is the language identifier, e.g. "polish".
	Code string

	// Name is the display name, e.g. "Polish".
	Name string

	defs  map[string]Definition
	order []string
}

// Level is a CEFR proficiency tier.
type Level struct {
	Code string
	Name string
}

// Levels is the fixed proficiency scale, ordered beginner to proficient.
var Levels = []Level{
	{"A1", "Beginner"},
	{"A2", "Elementary"},
	{"B1", "Intermediate"},
	{"B2", "Upper Intermediate"},
	{"C1", "Advanced"},
	{"C2", "Proficient"},
}

// ValidLevel reports whether code is a known proficiency level.
func ValidLevel(code string) bool {
	for _, l := range Levels {
		if l.Code == code {
			return true
		}
	}
	return false
}

// catalogs is the language registry, populated by newCatalog calls in
// the per-language files. Treated as immutable after package init.
var catalogs = map[string]*Catalog{}

// catalogOrder preserves registration order for stable listings.
var catalogOrder []string

func newCatalog(code, name string, defs []Definition) *Catalog {
	c := &Catalog{
		Code: code,
		Name: name,
		defs: make(map[string]Definition, len(defs)),
	}
	for _, d := range defs {
		c.defs[d.Code] = d
		c.order = append(c.order, d.Code)
	}
	catalogs[code] = c
	catalogOrder = append(catalogOrder, code)
	return c
}

// Get returns the catalog for a language code.
func Get(code string) (*Catalog, bool) {
	c, ok := catalogs[code]
	return c, ok
}

// All returns every registered catalog in registration order.
func All() []*Catalog {
	out := make([]*Catalog, 0, len(catalogOrder))
	for _, code := range catalogOrder {
		out = append(out, catalogs[code])
	}
	return out
}

// Definition returns the definition for a concrete exercise-type code.
// Synthetic codes (random, custom) have no definition.
func (c *Catalog) Definition(code string) (Definition, bool) {
	d, ok := c.defs[code]
	return d, ok
}

// Types returns the concrete exercise-type codes in catalog order.
// The synthetic random and custom codes are not included.
func (c *Catalog) Types() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// ValidType reports whether code is selectable for this catalog:
// a concrete entry or one of the synthetic codes.
func (c *Catalog) ValidType(code string) bool {
	if code == TypeRandom || code == TypeCustom {
		return true
	}
	_, ok := c.defs[code]
	return ok
}

// Resolve maps an exercise-type code to a concrete definition.
// TypeRandom picks uniformly among the concrete entries. TypeCustom has
// no definition and returns an error: custom exercises carry their own
// text and bypass the catalog.
func (c *Catalog) Resolve(code string) (Definition, error) {
	switch code {
	case TypeRandom:
		if len(c.order) == 0 {
			return Definition{}, fmt.Errorf("catalog %s has no exercise types", c.Code)
		}
		pick := c.order[rand.IntN(len(c.order))]
		return c.defs[pick], nil
	case TypeCustom:
		return Definition{}, fmt.Errorf("custom exercises have no catalog definition")
	default:
		d, ok := c.defs[code]
		if !ok {
			return Definition{}, fmt.Errorf("unknown exercise type %q for %s", code, c.Code)
		}
		return d, nil
	}
}
