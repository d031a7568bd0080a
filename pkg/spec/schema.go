package spec

import (
	"github.com/arthur-debert/treegen/pkg/errors"
	"github.com/arthur-debert/treegen/pkg/types"
)

// OwnFilesKey is the reserved mapping key whose sequence value lists the
// files of the containing folder itself, next to its subfolder keys. A
// subfolder that is literally named "files" can still be declared with a
// mapping value; only the sequence form is claimed by the reservation.
const OwnFilesKey = "files"

// buildNode converts a decoded generic mapping into a Node, validating the
// shape as it goes. keyPath names the position in the document for error
// messages.
func buildNode(raw map[string]interface{}, keyPath string) (*types.Node, error) {
	node := &types.Node{}

	for key, value := range raw {
		childPath := joinKeyPath(keyPath, key)

		switch v := value.(type) {
		case map[string]interface{}:
			child, err := buildNode(v, childPath)
			if err != nil {
				return nil, err
			}
			if node.Children == nil {
				node.Children = make(map[string]*types.Node)
			}
			node.Children[key] = child

		case []interface{}:
			files, err := buildFileList(v, childPath)
			if err != nil {
				return nil, err
			}
			if key == OwnFilesKey {
				node.Files = files
				continue
			}
			if node.Children == nil {
				node.Children = make(map[string]*types.Node)
			}
			node.Children[key] = &types.Node{Files: files}

		default:
			return nil, errors.Newf(errors.ErrSchemaInvalid,
				"value at %q must be a folder mapping or a file list, got %T",
				childPath, value).WithDetail("key", childPath)
		}
	}

	return node, nil
}

func buildFileList(raw []interface{}, keyPath string) ([]string, error) {
	files := make([]string, 0, len(raw))
	for i, elem := range raw {
		s, ok := elem.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrSchemaInvalid,
				"file entry %d at %q must be a string, got %T",
				i, keyPath, elem).WithDetail("key", keyPath)
		}
		files = append(files, s)
	}
	return files, nil
}

func joinKeyPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "/" + key
}
