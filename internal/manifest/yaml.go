package manifest

import (
	"encoding/base64"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cbout22/filetree/internal/tree"
)

// maxAliasExpansions bounds how many aliases a single document may expand.
const maxAliasExpansions = 10000

// yamlDecoder carries the state needed to expand aliases safely: the
// mappings currently being expanded and the aliases resolved so far.
type yamlDecoder struct {
	expanding map[*yaml.Node]bool
	aliases   int
}

// decodeYAML builds a tree from YAML (or JSON). Mapping order is taken from
// the node tree, which keeps keys as written.
func decodeYAML(data []byte) (*tree.Dir, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return tree.NewDir(), nil
	}

	dec := &yamlDecoder{expanding: make(map[*yaml.Node]bool)}
	root, err := dec.resolve(doc.Content[0])
	if err != nil {
		return nil, err
	}
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return tree.NewDir(), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: the top level must be a mapping", root.Line)
	}
	d := tree.NewDir()
	if err := dec.entries(d, root, nil); err != nil {
		return nil, err
	}
	return d, nil
}

func (dec *yamlDecoder) resolve(n *yaml.Node) (*yaml.Node, error) {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		dec.aliases++
		if dec.aliases > maxAliasExpansions {
			return nil, fmt.Errorf("line %d: more than %d alias expansions", n.Line, maxAliasExpansions)
		}
		n = n.Alias
	}
	return n, nil
}

func (dec *yamlDecoder) entries(d *tree.Dir, m *yaml.Node, path []string) error {
	if dec.expanding[m] {
		return fmt.Errorf("line %d: %s: recursive alias", m.Line, strings.Join(path, "/"))
	}
	dec.expanding[m] = true
	defer delete(dec.expanding, m)

	for i := 0; i+1 < len(m.Content); i += 2 {
		k := m.Content[i]
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: keys must be plain names", k.Line)
		}
		v, err := dec.resolve(m.Content[i+1])
		if err != nil {
			return err
		}

		// "<<: *base" splices another mapping in place.
		if k.ShortTag() == "!!merge" {
			if err := dec.merge(d, v, path); err != nil {
				return err
			}
			continue
		}

		childPath := append(path[:len(path):len(path)], k.Value)
		n, err := dec.node(v, childPath)
		if err != nil {
			return err
		}
		if n != nil {
			d.Add(tree.Name(k.Value), n)
		}
	}
	return nil
}

func (dec *yamlDecoder) merge(d *tree.Dir, v *yaml.Node, path []string) error {
	switch v.Kind {
	case yaml.MappingNode:
		return dec.entries(d, v, path)
	case yaml.SequenceNode:
		if dec.expanding[v] {
			return fmt.Errorf("line %d: %s: recursive alias", v.Line, strings.Join(path, "/"))
		}
		dec.expanding[v] = true
		defer delete(dec.expanding, v)
		for _, item := range v.Content {
			resolved, err := dec.resolve(item)
			if err != nil {
				return err
			}
			if err := dec.merge(d, resolved, path); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("line %d: merge value must be a mapping", v.Line)
}

// node returns nil for entries that are left out.
func (dec *yamlDecoder) node(v *yaml.Node, path []string) (tree.Node, error) {
	switch v.Kind {
	case yaml.MappingNode:
		d := tree.NewDir()
		if err := dec.entries(d, v, path); err != nil {
			return nil, err
		}
		return d, nil

	case yaml.ScalarNode:
		switch v.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := v.Decode(&b); err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", v.Line, strings.Join(path, "/"), err)
			}
			if b {
				return tree.EmptyFile(), nil
			}
			return nil, nil
		case "!!binary":
			data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(v.Value), ""))
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: invalid base64: %w", v.Line, strings.Join(path, "/"), err)
			}
			return tree.BytesFile(data), nil
		default:
			return tree.TextFile(v.Value), nil
		}

	case yaml.SequenceNode:
		return nil, fmt.Errorf("line %d: %s: lists are not supported, use a mapping for a directory", v.Line, strings.Join(path, "/"))

	default:
		return nil, fmt.Errorf("line %d: %s: unsupported value", v.Line, strings.Join(path, "/"))
	}
}
