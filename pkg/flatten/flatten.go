// Package flatten reduces a folder-spec tree to a flat mapping of
// destination directory paths to file entries.
package flatten

import (
	"path/filepath"

	"github.com/arthur-debert/treegen/pkg/logging"
	"github.com/arthur-debert/treegen/pkg/types"
)

// Flatten walks the spec tree depth-first and returns the flattened form
// rooted at root. Every folder the spec declares appears in the result,
// including folders with no files, so empty directories are still created.
// Top-level folder names map directly under root. Parents are recorded
// before their children; siblings are visited in sorted name order.
func Flatten(spec *types.Node, root string) *types.FlattenedTree {
	logger := logging.GetLogger("flatten")
	tree := types.NewFlattenedTree()
	walk(spec, root, true, tree)
	logger.Debug().Int("directories", tree.Len()).Str("root", root).Msg("Flattened spec")
	return tree
}

func walk(node *types.Node, path string, isRoot bool, tree *types.FlattenedTree) {
	// The synthetic root node is not itself a directory to create; its
	// children land directly under the creation root. Files declared at the
	// top level still land in the root itself.
	if !isRoot {
		tree.Add(path, node.Files)
	} else if len(node.Files) > 0 {
		tree.Add(path, node.Files)
	}

	for _, name := range node.ChildNames() {
		walk(node.Children[name], filepath.Join(path, name), false, tree)
	}
}
