package types

import "sort"

// Node is one folder in a folder-spec tree. A node may carry both files of
// its own and nested child folders; either field may be empty.
type Node struct {
	// Files declared directly inside this folder. Each entry is either a
	// literal filename (created empty) or a path to a source file to copy.
	Files []string

	// Children maps subfolder names to their nodes.
	Children map[string]*Node
}

// ChildNames returns the names of the node's children in sorted order, so
// traversal is deterministic.
func (n *Node) ChildNames() []string {
	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsLeaf reports whether the node has no child folders.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}
