package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// sourceCreature is the raw shape of one creature record as it appears in a
// catalog file. Pointer fields are nil when the key is absent or null.
type sourceCreature struct {
	Name        *string        `yaml:"Name"`
	HP          *scalarText    `yaml:"HP"`
	Type        *string        `yaml:"Type"`
	Stage       *string        `yaml:"Stage"`
	EvolvesFrom *string        `yaml:"EvolvesFrom"`
	Attacks     []sourceAttack `yaml:"Attacks"`
	Ability     *sourceAbility `yaml:"Ability"`
	RetreatCost *int           `yaml:"RetreatCost"`
}

type sourceAttack struct {
	Name        *string      `yaml:"Name"`
	Description string       `yaml:"Description"`
	Damage      scalarText   `yaml:"Damage"`
	Energy      sourceEnergy `yaml:"Energy"`
}

type sourceAbility struct {
	Name        *string `yaml:"Name"`
	Description string  `yaml:"Description"`
}

// scalarText holds a scalar that may be written either as a string or a number.
type scalarText string

// UnmarshalYAML accepts any scalar node and keeps its literal text.
func (s *scalarText) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a string or number", n.Line)
	}
	*s = scalarText(n.Value)
	return nil
}

// sourceEnergy keeps energy entries in the order they are written.
type sourceEnergy []EnergyCost

// UnmarshalYAML decodes a mapping of energy type to integer cost.
func (e *sourceEnergy) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: Energy must be a mapping", n.Line)
	}
	out := make(sourceEnergy, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		var cost int
		if err := n.Content[i+1].Decode(&cost); err != nil {
			return fmt.Errorf("line %d: Energy[%s] must be an integer", n.Content[i+1].Line, n.Content[i].Value)
		}
		out = append(out, EnergyCost{Type: n.Content[i].Value, Cost: cost})
	}
	*e = out
	return nil
}

// buildCreature converts a raw record stored under key into a validated Creature.
//
// Postcondition: Returns a Creature whose Name equals key, or an error listing
// every problem found in the record.
func buildCreature(key string, sc sourceCreature) (*Creature, error) {
	var errs []error
	required := func(field string, v *string) string {
		if v == nil {
			errs = append(errs, fmt.Errorf("%s is required", field))
			return ""
		}
		return *v
	}

	c := &Creature{
		Name:  required("Name", sc.Name),
		Type:  required("Type", sc.Type),
		Stage: Stage(required("Stage", sc.Stage)),
	}
	if sc.Name != nil && c.Name != key {
		errs = append(errs, fmt.Errorf("Name %q does not match its key", c.Name))
	}

	if sc.HP == nil {
		errs = append(errs, errors.New("HP is required"))
	} else {
		hp, err := strconv.Atoi(strings.TrimSpace(string(*sc.HP)))
		if err != nil {
			errs = append(errs, fmt.Errorf("HP must be an integer, got %q", string(*sc.HP)))
		}
		c.HP = hp
	}

	if sc.EvolvesFrom != nil {
		c.EvolvesFrom = *sc.EvolvesFrom
	}

	if sc.RetreatCost == nil {
		errs = append(errs, errors.New("RetreatCost is required"))
	} else {
		c.RetreatCost = *sc.RetreatCost
	}

	for i, sa := range sc.Attacks {
		if sa.Name == nil {
			errs = append(errs, fmt.Errorf("Attacks[%d].Name is required", i))
			continue
		}
		c.Attacks = append(c.Attacks, NewAttack(*sa.Name, sa.Description, string(sa.Damage), []EnergyCost(sa.Energy)))
	}

	if sc.Ability != nil {
		if sc.Ability.Name == nil {
			errs = append(errs, errors.New("Ability.Name is required"))
		} else {
			c.Ability = &Ability{Name: *sc.Ability.Name, Description: sc.Ability.Description}
		}
	}

	if len(errs) == 0 {
		if err := c.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("creature %q: %w", key, errors.Join(errs...))
	}
	return c, nil
}
