package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMalformedInput is returned when source data does not have the expected shape.
var ErrMalformedInput = errors.New("malformed catalog input")

// Catalog holds all creatures indexed by name, in source order.
// A Catalog is never modified after construction.
type Catalog struct {
	order  []string
	byName map[string]*Creature
}

// New builds a Catalog from creatures, keeping their order.
//
// Precondition: every element must be non-nil.
// Postcondition: Returns a Catalog whose keys equal each creature's Name, or an
// error wrapping ErrMalformedInput on an invalid or duplicate creature.
func New(creatures []*Creature) (*Catalog, error) {
	c := &Catalog{
		order:  make([]string, 0, len(creatures)),
		byName: make(map[string]*Creature, len(creatures)),
	}
	for i, cr := range creatures {
		if cr == nil {
			return nil, fmt.Errorf("%w: catalog: New: creature %d is nil", ErrMalformedInput, i)
		}
		if err := cr.Validate(); err != nil {
			return nil, fmt.Errorf("%w: creature %q: %w", ErrMalformedInput, cr.Name, err)
		}
		if _, exists := c.byName[cr.Name]; exists {
			return nil, fmt.Errorf("%w: catalog: New: creature %q already registered", ErrMalformedInput, cr.Name)
		}
		c.order = append(c.order, cr.Name)
		c.byName[cr.Name] = cr
	}
	return c, nil
}

// Len returns the number of creatures.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Get returns the creature with the given name and whether it was found.
func (c *Catalog) Get(name string) (*Creature, bool) {
	cr, ok := c.byName[name]
	return cr, ok
}

// Names returns creature names in source order.
//
// Postcondition: the returned slice is a copy; modifying it does not affect c.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// All returns every creature in source order.
//
// Postcondition: len(result) == c.Len(); the slice is a copy.
func (c *Catalog) All() []*Creature {
	out := make([]*Creature, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Stats summarises a catalog by stage and type.
type Stats struct {
	Total   int
	ByStage map[Stage]int
	ByType  map[string]int
}

// Types returns the type names present in s, sorted.
func (s Stats) Types() []string {
	out := make([]string, 0, len(s.ByType))
	for t := range s.ByType {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Stats counts creatures per stage and per type.
func (c *Catalog) Stats() Stats {
	s := Stats{
		Total:   c.Len(),
		ByStage: make(map[Stage]int),
		ByType:  make(map[string]int),
	}
	for _, name := range c.order {
		cr := c.byName[name]
		s.ByStage[cr.Stage]++
		s.ByType[cr.Type]++
	}
	return s
}
