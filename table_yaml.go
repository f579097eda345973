package fsmhook

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is a machine declaration loaded from a textual source: its
// transition table plus the declared initial state, if any.
type Definition struct {
	Initial string
	Table   *TransitionTable
}

// LoadTable parses a YAML machine definition of the form
//
//	initial: idle
//	states:
//	  idle:
//	    typing: typing
//	  typing:
//	    canceling: idle
//
// The mapping order of the document is preserved as the table's declaration
// order. Validation is the same as TableBuilder.Build.
func LoadTable(data []byte) (*Definition, error) {
	var doc struct {
		Initial string    `yaml:"initial"`
		States  yaml.Node `yaml:"states"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse machine definition: %w", err)
	}
	if doc.States.IsZero() {
		return nil, NewInvalidDefinitionError("missing 'states' mapping")
	}
	if doc.States.Kind != yaml.MappingNode {
		return nil, NewInvalidDefinitionError("'states' must be a mapping of state to transitions")
	}

	builder := NewTable()
	// A yaml mapping node stores its pairs as flattened [key, value, ...]
	// content, in document order.
	for i := 0; i < len(doc.States.Content); i += 2 {
		stateNode := doc.States.Content[i]
		transNode := doc.States.Content[i+1]
		sb := builder.State(stateNode.Value)
		if transNode.Kind == yaml.ScalarNode && transNode.Value == "" {
			continue // state with no outgoing transitions
		}
		if transNode.Kind != yaml.MappingNode {
			return nil, NewInvalidDefinitionError(
				fmt.Sprintf("state '%s' must map transition names to destination states", stateNode.Value))
		}
		for j := 0; j < len(transNode.Content); j += 2 {
			nameNode := transNode.Content[j]
			destNode := transNode.Content[j+1]
			if destNode.Kind != yaml.ScalarNode {
				return nil, NewInvalidDefinitionError(
					fmt.Sprintf("transition '%s' of state '%s' must name a destination state",
						nameNode.Value, stateNode.Value))
			}
			sb.Permit(nameNode.Value, destNode.Value)
		}
	}

	table, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Definition{Initial: doc.Initial, Table: table}, nil
}

// LoadTableFile reads and parses a YAML machine definition from a file
func LoadTableFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read machine definition: %w", err)
	}
	return LoadTable(data)
}
