// Package catalog provides the creature record types and the read-only catalog
// they are loaded into.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
)

// Stage is the evolutionary tier of a creature.
type Stage string

// Stage values accepted in source data.
const (
	StageBasic Stage = "Basic"
	StageOne   Stage = "Stage 1"
	StageTwo   Stage = "Stage 2"
)

// Valid reports whether s is one of the known stages.
func (s Stage) Valid() bool {
	switch s {
	case StageBasic, StageOne, StageTwo:
		return true
	}
	return false
}

// EnergyCost is the integer requirement an attack has for one energy type.
type EnergyCost struct {
	Type string
	Cost int
}

// Attack is a single attack of a creature.
type Attack struct {
	Name        string
	Description string
	// Damage is the raw damage text, e.g. "30", "50+", "20×" or "".
	Damage string
	// BaseDamage is the leading integer of Damage; valid only when HasBaseDamage.
	BaseDamage    int
	HasBaseDamage bool
	// Energy lists energy costs in source order. Types are unique per attack.
	Energy []EnergyCost
}

// Ability is a creature's special ability.
type Ability struct {
	Name        string
	Description string
}

// Creature is a catalog entry. Creatures are never modified after load.
type Creature struct {
	Name  string
	HP    int
	Type  string
	Stage Stage
	// EvolvesFrom is empty for creatures that do not evolve from anything.
	EvolvesFrom string
	Attacks     []Attack
	// Ability is nil when the creature has none.
	Ability     *Ability
	RetreatCost int
}

// Validate checks that the creature satisfies its invariants.
//
// Precondition: c must not be nil.
// Postcondition: Returns nil iff all fields are valid; otherwise an error listing
// every violation.
func (c *Creature) Validate() error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if c.Type == "" {
		errs = append(errs, errors.New("Type must not be empty"))
	}
	if !c.Stage.Valid() {
		errs = append(errs, fmt.Errorf("Stage must be one of [%s, %s, %s], got %q", StageBasic, StageOne, StageTwo, c.Stage))
	}
	if len(c.Attacks) == 0 {
		errs = append(errs, errors.New("Attacks must not be empty"))
	}
	for i, a := range c.Attacks {
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("Attacks[%d].Name must not be empty", i))
		}
		seen := make(map[string]bool, len(a.Energy))
		for _, e := range a.Energy {
			if seen[e.Type] {
				errs = append(errs, fmt.Errorf("Attacks[%d].Energy type %q is repeated", i, e.Type))
			}
			seen[e.Type] = true
			if e.Cost < 0 {
				errs = append(errs, fmt.Errorf("Attacks[%d].Energy[%s] must be >= 0, got %d", i, e.Type, e.Cost))
			}
		}
	}
	if c.Ability != nil && c.Ability.Name == "" {
		errs = append(errs, errors.New("Ability.Name must not be empty"))
	}
	if c.RetreatCost < 0 {
		errs = append(errs, fmt.Errorf("RetreatCost must be >= 0, got %d", c.RetreatCost))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// LeadingInt returns the integer formed by the leading ASCII digits of s.
//
// Postcondition: ok is false when s does not start with a digit or the digits
// overflow an int.
func LeadingInt(s string) (n int, ok bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// NewAttack builds an Attack, deriving BaseDamage from the damage text.
func NewAttack(name, description, damage string, energy []EnergyCost) Attack {
	base, ok := LeadingInt(damage)
	return Attack{
		Name:          name,
		Description:   description,
		Damage:        damage,
		BaseDamage:    base,
		HasBaseDamage: ok,
		Energy:        energy,
	}
}
