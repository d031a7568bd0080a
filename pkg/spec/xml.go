package spec

import (
	"github.com/beevik/etree"

	"github.com/arthur-debert/treegen/pkg/errors"
	"github.com/arthur-debert/treegen/pkg/types"
)

// XML folder specs use a <tree> root holding nested <folder name="..">
// elements, each containing further <folder> elements and <file name=".."/>
// entries.

func parseXML(data []byte, path string) (*types.Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSpecParse,
			"cannot parse %q", path)
	}

	root := doc.Root()
	if root == nil || root.Tag != "tree" {
		return nil, errors.Newf(errors.ErrSchemaInvalid,
			"document %q must have a <tree> root element", path)
	}

	return buildXMLNode(root, "")
}

func buildXMLNode(elem *etree.Element, keyPath string) (*types.Node, error) {
	node := &types.Node{
		// A folder element with no <file> children still means "create the
		// folder"; an explicit empty slice keeps it distinct from nil.
		Files: []string{},
	}

	for _, child := range elem.ChildElements() {
		switch child.Tag {
		case "folder":
			name := child.SelectAttrValue("name", "")
			if name == "" {
				return nil, errors.Newf(errors.ErrSchemaInvalid,
					"<folder> at %q is missing a name attribute", keyPath)
			}
			sub, err := buildXMLNode(child, joinKeyPath(keyPath, name))
			if err != nil {
				return nil, err
			}
			if node.Children == nil {
				node.Children = make(map[string]*types.Node)
			}
			node.Children[name] = sub

		case "file":
			name := child.SelectAttrValue("name", "")
			if name == "" {
				name = child.Text()
			}
			if name == "" {
				return nil, errors.Newf(errors.ErrSchemaInvalid,
					"<file> at %q is missing a name", keyPath)
			}
			node.Files = append(node.Files, name)

		default:
			return nil, errors.Newf(errors.ErrSchemaInvalid,
				"unexpected element <%s> at %q", child.Tag, keyPath)
		}
	}

	return node, nil
}
