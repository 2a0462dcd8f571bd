package mapping

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedDocument is returned when a mapping document is neither a
// YAML mapping nor a YAML sequence of pairs.
var ErrUnsupportedDocument = errors.New("mapping document must be a mapping or a sequence of {from, to} items")

// FromYAML parses a mapping table from YAML.
//
// Two shapes are accepted. A YAML mapping is read in document order with
// dictionary semantics for repeated keys (see Builder.Set). A YAML sequence of
// {from, to} items is taken verbatim, repeated patterns included.
func FromYAML(data []byte) (*Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	// An empty document decodes to a zero node.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Empty(), nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		return fromMappingNode(root)
	case yaml.SequenceNode:
		return fromSequenceNode(root)
	case yaml.ScalarNode:
		if root.Tag == "!!null" {
			return Empty(), nil
		}
	}

	return nil, fmt.Errorf("line %d: %w", root.Line, ErrUnsupportedDocument)
}

// LoadFile reads and parses a YAML mapping file.
func LoadFile(path string) (*Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping %s: %w", path, err)
	}

	table, err := FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", path, err)
	}
	return table, nil
}

// LoadFiles loads every file in order and concatenates the tables.
func LoadFiles(paths ...string) (*Table, error) {
	tables := make([]*Table, 0, len(paths))
	for _, path := range paths {
		table, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return Concat(tables...), nil
}

func fromMappingNode(node *yaml.Node) (*Table, error) {
	builder := NewBuilder()
	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		keyNode, valueNode := node.Content[idx], node.Content[idx+1]

		var from, to string
		if err := keyNode.Decode(&from); err != nil {
			return nil, fmt.Errorf("line %d: decode key: %w", keyNode.Line, err)
		}
		if err := valueNode.Decode(&to); err != nil {
			return nil, fmt.Errorf("line %d: decode value: %w", valueNode.Line, err)
		}
		if from == "" {
			return nil, fmt.Errorf("line %d: %w", keyNode.Line, ErrEmptyPattern)
		}
		builder.Set(from, to)
	}
	return builder.Build()
}

func fromSequenceNode(node *yaml.Node) (*Table, error) {
	builder := NewBuilder()
	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: %w", item.Line, ErrUnsupportedDocument)
		}

		var pair Pair
		if err := item.Decode(&pair); err != nil {
			return nil, fmt.Errorf("line %d: decode pair: %w", item.Line, err)
		}
		if pair.From == "" {
			return nil, fmt.Errorf("line %d: %w", item.Line, ErrEmptyPattern)
		}
		builder.Append(pair.From, pair.To)
	}
	return builder.Build()
}

// ToYAML serializes the table as a sequence of {from, to} items, which
// round-trips repeated patterns exactly.
func (t *Table) ToYAML() ([]byte, error) {
	out, err := yaml.Marshal(t.Pairs())
	if err != nil {
		return nil, fmt.Errorf("encode mapping: %w", err)
	}
	return out, nil
}
