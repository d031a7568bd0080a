package spec

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/treegen/pkg/errors"
	"github.com/arthur-debert/treegen/pkg/logging"
	"github.com/arthur-debert/treegen/pkg/types"
)

// Load reads the folder-spec document at path and validates it into a Node
// tree. The format is selected by extension: .json, .yaml/.yml, .toml or
// .xml.
func Load(path string) (*types.Node, error) {
	logger := logging.GetLogger("spec")
	logger.Debug().Str("path", path).Msg("Loading folder spec")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSpecLoad,
			"cannot read folder spec %q", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xml" {
		return parseXML(data, path)
	}

	raw, err := decodeMapping(data, ext, path)
	if err != nil {
		return nil, err
	}

	return buildNode(raw, "")
}

// LoadVars reads a substitution-variable document: a flat mapping of
// placeholder names to scalar values. Scalars are rendered to strings the
// way they appear in the document.
func LoadVars(path string) (map[string]string, error) {
	logger := logging.GetLogger("spec")
	logger.Debug().Str("path", path).Msg("Loading substitution variables")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSpecLoad,
			"cannot read variables file %q", path)
	}

	raw, err := decodeMapping(data, strings.ToLower(filepath.Ext(path)), path)
	if err != nil {
		return nil, err
	}

	vars := make(map[string]string, len(raw))
	for key, value := range raw {
		s, err := scalarString(value)
		if err != nil {
			return nil, errors.Newf(errors.ErrSchemaInvalid,
				"variable %q must be a scalar, got %T", key, value).
				WithDetail("key", key)
		}
		vars[key] = s
	}
	return vars, nil
}

// decodeMapping parses data into a generic string-keyed mapping using the
// parser for the given extension.
func decodeMapping(data []byte, ext, path string) (map[string]interface{}, error) {
	var raw map[string]interface{}
	var err error

	switch ext {
	case ".json", "":
		err = json.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	default:
		return nil, errors.Newf(errors.ErrSpecLoad,
			"unsupported document format %q for %q", ext, path)
	}

	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSpecParse,
			"cannot parse %q", path)
	}
	if raw == nil {
		return nil, errors.Newf(errors.ErrSpecParse,
			"document %q is empty or not a mapping", path)
	}
	return raw, nil
}

func scalarString(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case json.Number:
		return v.String(), nil
	case int, int64, uint64, float64:
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", errors.New(errors.ErrSchemaInvalid, "not a scalar")
	}
}
