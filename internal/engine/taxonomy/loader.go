package taxonomy

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/destiny-api/internal/errors"
)

// Parse reads a YAML (or JSON) taxonomy document. Mappings become branches,
// sequences of scalars become leaves. Shapes that fit neither degrade to an
// empty node; only syntax errors are reported.
func Parse(data []byte) (Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Node{}, errors.InvalidArgumentf("invalid taxonomy document: %v", err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Node{}, nil
	}

	return fromYAML(doc.Content[0]), nil
}

// LoadFile parses the taxonomy document at path
func LoadFile(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Node{}, errors.Wrapf(err, "failed to read taxonomy %s", path)
	}
	return Parse(data)
}

func fromYAML(n *yaml.Node) Node {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	switch n.Kind {
	case yaml.MappingNode:
		children := make([]Child, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				continue
			}
			children = append(children, Named(key.Value, fromYAML(n.Content[i+1])))
		}
		return Branch(children...)
	case yaml.SequenceNode:
		names := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return Node{}
			}
			names = append(names, item.Value)
		}
		return Leaf(names...)
	default:
		return Node{}
	}
}
