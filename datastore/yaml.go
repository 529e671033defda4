package datastore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromYAML builds a store from a YAML mapping with the same value rules as
// FromJSON. An empty document yields an empty store; a repeated key is an
// error.
func FromYAML(data []byte) (*Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("datastore: %w", err)
	}
	m := NewMap()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return m, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("datastore: expected mapping at line %d", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		if m.Has(name) {
			return nil, fmt.Errorf("datastore: duplicate field %q at line %d", name, root.Content[i].Line)
		}
		v, err := yamlValue(name, root.Content[i+1])
		if err != nil {
			return nil, err
		}
		m.Set(name, v)
	}
	return m, nil
}

func yamlValue(field string, n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return yamlValue(field, n.Alias)
	case yaml.SequenceNode:
		l := &List{}
		for _, c := range n.Content {
			item, err := yamlValue(field, c)
			if err != nil {
				return nil, err
			}
			l.Append(item)
		}
		return l, nil
	case yaml.MappingNode:
		if len(n.Content) != 2 || n.Content[0].Value != triggerKey {
			return nil, fmt.Errorf("datastore: field %q: nested mappings other than {%s: n} are not supported (line %d)", field, triggerKey, n.Line)
		}
		var count uint32
		if err := n.Content[1].Decode(&count); err != nil {
			return nil, fmt.Errorf("datastore: field %q: trigger count: %w", field, err)
		}
		return NewTrigger(count), nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("datastore: field %q: %w", field, err)
		}
		switch t := v.(type) {
		case bool:
			return &Bool{V: t}, nil
		case string:
			return &String{V: t}, nil
		case int:
			return &Number{V: float64(t)}, nil
		case int64:
			return &Number{V: float64(t)}, nil
		case uint64:
			return &Number{V: float64(t)}, nil
		case float64:
			return &Number{V: t}, nil
		case nil:
			return nil, fmt.Errorf("datastore: field %q: null is not a value (line %d)", field, n.Line)
		}
		return nil, fmt.Errorf("datastore: field %q: unsupported scalar %T (line %d)", field, v, n.Line)
	}
	return nil, fmt.Errorf("datastore: field %q: unsupported node (line %d)", field, n.Line)
}

// MarshalYAML writes the fields as a mapping in insertion order.
func (m *Map) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range m.names {
		var val yaml.Node
		if err := val.Encode(plain(m.fields[name])); err != nil {
			return nil, err
		}
		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&val,
		)
	}
	return out, nil
}

// Load reads a store from a .json, .yaml or .yml file.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FromJSON(data)
	case ".yaml", ".yml":
		return FromYAML(data)
	}
	return nil, fmt.Errorf("datastore: unsupported file extension %q", filepath.Ext(path))
}
