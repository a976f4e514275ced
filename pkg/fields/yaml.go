package fields

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a YAML mapping, keeping the document's key order.
// Nested mappings become Fields as well.
func (f *Fields) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("fields: expected YAML mapping at line %d", node.Line)
	}

	out := make(Fields, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		v, err := decodeYAMLValue(node.Content[i+1])
		if err != nil {
			return fmt.Errorf("fields: key %q: %w", key, err)
		}
		out = out.Set(key, v)
	}
	*f = out
	return nil
}

// MarshalYAML emits the fields as an ordered mapping.
func (f Fields) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, fd := range f {
		var val yaml.Node
		if err := val.Encode(fd.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fd.Key},
			&val,
		)
	}
	return node, nil
}

func decodeYAMLValue(n *yaml.Node) (any, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		var nested Fields
		if err := nested.UnmarshalYAML(n); err != nil {
			return nil, err
		}
		return nested, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := decodeYAMLValue(c)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
