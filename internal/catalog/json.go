package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// decodeJSON walks a JSON catalog document in member order.
//
// Postcondition: Returns every creature in document order (none for an empty or
// whitespace-only document), or an error wrapping ErrMalformedInput that lists
// every malformed record.
func decodeJSON(data []byte) ([]*Creature, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON document", ErrMalformedInput)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object of creatures", ErrMalformedInput)
	}

	var (
		creatures []*Creature
		errs      []error
	)
	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if !value.IsObject() {
			errs = append(errs, fmt.Errorf("creature %q: record must be an object", name))
			return true
		}
		sc, fieldErrs := jsonCreature(value)
		if len(fieldErrs) > 0 {
			errs = append(errs, fmt.Errorf("creature %q: %w", name, errors.Join(fieldErrs...)))
			return true
		}
		c, err := buildCreature(name, sc)
		if err != nil {
			errs = append(errs, err)
			return true
		}
		creatures = append(creatures, c)
		return true
	})
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, errors.Join(errs...))
	}
	return creatures, nil
}

// jsonCreature maps one JSON record onto sourceCreature, reporting fields of
// the wrong JSON type. Missing fields are left nil for buildCreature to judge.
func jsonCreature(obj gjson.Result) (sourceCreature, []error) {
	var errs []error
	sc := sourceCreature{
		Name:        jsonString(obj, "Name", &errs),
		HP:          jsonScalar(obj, "HP", &errs),
		Type:        jsonString(obj, "Type", &errs),
		Stage:       jsonString(obj, "Stage", &errs),
		EvolvesFrom: jsonString(obj, "EvolvesFrom", &errs),
		RetreatCost: jsonInt(obj, "RetreatCost", &errs),
	}

	if attacks := obj.Get("Attacks"); attacks.Exists() {
		if !attacks.IsArray() {
			errs = append(errs, errors.New("Attacks must be an array"))
			attacks = gjson.Result{}
		}
		for i, a := range attacks.Array() {
			if !a.IsObject() {
				errs = append(errs, fmt.Errorf("Attacks[%d] must be an object", i))
				continue
			}
			sa := sourceAttack{Name: jsonString(a, "Name", &errs)}
			if d := jsonString(a, "Description", &errs); d != nil {
				sa.Description = *d
			}
			if d := jsonScalar(a, "Damage", &errs); d != nil {
				sa.Damage = *d
			}
			sa.Energy = jsonEnergy(a.Get("Energy"), i, &errs)
			sc.Attacks = append(sc.Attacks, sa)
		}
	}

	switch ab := obj.Get("Ability"); {
	case ab.Type == gjson.Null:
	case ab.IsObject():
		sc.Ability = &sourceAbility{Name: jsonString(ab, "Name", &errs)}
		if d := jsonString(ab, "Description", &errs); d != nil {
			sc.Ability.Description = *d
		}
	default:
		errs = append(errs, errors.New("Ability must be an object or null"))
	}
	return sc, errs
}

func jsonString(obj gjson.Result, field string, errs *[]error) *string {
	v := obj.Get(field)
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.String:
		s := v.String()
		return &s
	}
	*errs = append(*errs, fmt.Errorf("%s must be a string", field))
	return nil
}

func jsonScalar(obj gjson.Result, field string, errs *[]error) *scalarText {
	v := obj.Get(field)
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.String:
		s := scalarText(v.String())
		return &s
	case gjson.Number:
		s := scalarText(v.Raw)
		return &s
	}
	*errs = append(*errs, fmt.Errorf("%s must be a string or number", field))
	return nil
}

func jsonInt(obj gjson.Result, field string, errs *[]error) *int {
	v := obj.Get(field)
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.Number:
		n, err := strconv.Atoi(v.Raw)
		if err == nil {
			return &n
		}
	}
	*errs = append(*errs, fmt.Errorf("%s must be an integer", field))
	return nil
}

func jsonEnergy(v gjson.Result, attack int, errs *[]error) sourceEnergy {
	if v.Type == gjson.Null {
		return nil
	}
	if !v.IsObject() {
		*errs = append(*errs, fmt.Errorf("Attacks[%d].Energy must be an object", attack))
		return nil
	}
	var out sourceEnergy
	v.ForEach(func(key, value gjson.Result) bool {
		n, err := strconv.Atoi(value.Raw)
		if value.Type != gjson.Number || err != nil {
			*errs = append(*errs, fmt.Errorf("Attacks[%d].Energy[%s] must be an integer", attack, key.String()))
			return true
		}
		out = append(out, EnergyCost{Type: key.String(), Cost: n})
		return true
	})
	return out
}
