package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- FieldDefs YAML methods ---

// UnmarshalYAML decodes the fields mapping, keeping file order.
// Each value may be:
//   - null: same name on both sides, copy both ways
//   - a string: the other name, copy both ways
//   - a list: [other], [other, transform] or [other, set, get]
//   - a mapping with other/set/get keys
func (f *FieldDefs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: fields must be a mapping, got %s", node.Line, kindName(node.Kind))
	}

	defs := make(FieldDefs, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string

		err := node.Content[i].Decode(&name)
		if err != nil {
			return err
		}

		def, err := decodeFieldDef(name, node.Content[i+1])
		if err != nil {
			return err
		}

		defs = append(defs, def)
	}

	*f = defs

	return nil
}

func decodeFieldDef(name string, node *yaml.Node) (FieldDef, error) {
	def := FieldDef{Name: name}

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return def, nil
		}

		err := node.Decode(&def.Other)

		return def, err

	case yaml.SequenceNode:
		var parts []string

		err := node.Decode(&parts)
		if err != nil {
			return def, err
		}

		switch len(parts) {
		case 1:
			def.Other = parts[0]
		case 2:
			def.Other, def.Set, def.Get = parts[0], parts[1], parts[1]
		case 3:
			def.Other, def.Set, def.Get = parts[0], parts[1], parts[2]
		default:
			return def, fmt.Errorf("line %d: field %q: expected 1 to 3 items, got %d", node.Line, name, len(parts))
		}

		return def, nil

	case yaml.MappingNode:
		var body struct {
			Other string `yaml:"other"`
			Set   string `yaml:"set"`
			Get   string `yaml:"get"`
		}

		err := node.Decode(&body)
		if err != nil {
			return def, err
		}

		def.Other, def.Set, def.Get = body.Other, body.Set, body.Get

		return def, nil

	default:
		return def, fmt.Errorf("line %d: field %q: expected string, list or mapping, got %s",
			node.Line, name, kindName(node.Kind))
	}
}

// MarshalYAML encodes the fields in their shortest form.
func (f FieldDefs) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, def := range f {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: def.Name},
			encodeFieldDef(def),
		)
	}

	return node, nil
}

func encodeFieldDef(def FieldDef) *yaml.Node {
	set, get := orCopy(def.Set), orCopy(def.Get)
	other := def.Other

	if set == TransformCopy && get == TransformCopy {
		if other == "" || other == def.Name {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Value: other}
	}

	if other == "" {
		other = def.Name
	}

	items := []string{other, set}
	if set != get {
		items = append(items, get)
	}

	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, item := range items {
		seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: item})
	}

	return seq
}

func orCopy(name string) string {
	if name == "" {
		return TransformCopy
	}

	return name
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind %d", k)
	}
}
