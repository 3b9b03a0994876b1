package catalog

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// decodeYAML walks a YAML catalog document in mapping order.
//
// Postcondition: Returns every creature in document order, or an error wrapping
// ErrMalformedInput that lists every malformed record.
func decodeYAML(data []byte) ([]*Creature, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing catalog YAML: %w", ErrMalformedInput, err)
	}
	if doc.Kind == 0 {
		// Empty document.
		return nil, nil
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping of creatures", ErrMalformedInput)
	}

	root := doc.Content[0]
	var (
		creatures []*Creature
		errs      []error
	)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		value := root.Content[i+1]
		if value.Kind != yaml.MappingNode {
			errs = append(errs, fmt.Errorf("creature %q: record must be a mapping", name))
			continue
		}
		var sc sourceCreature
		if err := value.Decode(&sc); err != nil {
			errs = append(errs, fmt.Errorf("creature %q: %w", name, err))
			continue
		}
		c, err := buildCreature(name, sc)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		creatures = append(creatures, c)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, errors.Join(errs...))
	}
	return creatures, nil
}
