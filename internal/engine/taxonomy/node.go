// Package taxonomy resolves the human-readable Destiny Board specialization
// names into the canonical table ids used by the progression tables and
// character specs.
package taxonomy

// Kind tags a Node as a branch or a leaf
type Kind int

// Node kinds
const (
	KindEmpty Kind = iota
	KindBranch
	KindLeaf
)

// Child is one named entry of a branch. Order is preserved.
type Child struct {
	Name string
	Node Node
}

// Node is either a Branch of named children or a Leaf holding an ordered
// list of specialization names. The zero value is an empty node.
type Node struct {
	kind     Kind
	children []Child
	names    []string
}

// Branch builds a branch node
func Branch(children ...Child) Node {
	return Node{kind: KindBranch, children: children}
}

// Leaf builds a leaf node
func Leaf(names ...string) Node {
	return Node{kind: KindLeaf, names: names}
}

// Named pairs a name with a node for use in Branch
func Named(name string, node Node) Child {
	return Child{Name: name, Node: node}
}

// Kind returns the node kind
func (n Node) Kind() Kind {
	return n.kind
}

// Children returns the branch entries, nil for leaves
func (n Node) Children() []Child {
	return n.children
}

// Names returns the leaf names, nil for branches
func (n Node) Names() []string {
	return n.names
}

// Visitor is called once per leaf with the branch names leading to it
type Visitor func(path []string, names []string)

// Walk traverses the tree depth first in declaration order
func Walk(root Node, visit Visitor) {
	walk(root, nil, visit)
}

func walk(n Node, path []string, visit Visitor) {
	switch n.kind {
	case KindLeaf:
		visit(path, n.names)
	case KindBranch:
		for _, child := range n.children {
			next := make([]string, len(path), len(path)+1)
			copy(next, path)
			walk(child.Node, append(next, child.Name), visit)
		}
	}
}

// Flatten returns every leaf name in traversal order
func Flatten(root Node) []string {
	var names []string
	Walk(root, func(_ []string, leaf []string) {
		names = append(names, leaf...)
	})
	return names
}
