package spec_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/treegen/pkg/errors"
	"github.com/arthur-debert/treegen/pkg/spec"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeDoc(t, "project.json", `{
		"src": {
			"app": ["main.txt", "config.ini"],
			"pkg": {}
		},
		"docs": []
	}`)

	node, err := spec.Load(path)
	require.NoError(t, err)

	require.Contains(t, node.Children, "src")
	require.Contains(t, node.Children, "docs")

	src := node.Children["src"]
	assert.Equal(t, []string{"main.txt", "config.ini"}, src.Children["app"].Files)
	assert.Empty(t, src.Children["pkg"].Files)
	assert.Empty(t, node.Children["docs"].Files)
}

func TestLoadYAML(t *testing.T) {
	path := writeDoc(t, "project.yaml", `
src:
  app:
    - main.txt
docs: []
`)

	node, err := spec.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"main.txt"},
		node.Children["src"].Children["app"].Files)
	assert.Contains(t, node.Children, "docs")
}

func TestLoadTOML(t *testing.T) {
	path := writeDoc(t, "project.toml", `
docs = []

[src]
app = ["main.txt"]
`)

	node, err := spec.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"main.txt"},
		node.Children["src"].Children["app"].Files)
	assert.Contains(t, node.Children, "docs")
}

func TestLoadXML(t *testing.T) {
	path := writeDoc(t, "project.xml", `<tree>
  <folder name="src">
    <file name="main.txt"/>
    <folder name="pkg"/>
  </folder>
  <folder name="docs"/>
</tree>`)

	node, err := spec.Load(path)
	require.NoError(t, err)

	src := node.Children["src"]
	require.NotNil(t, src)
	assert.Equal(t, []string{"main.txt"}, src.Files)
	assert.Contains(t, src.Children, "pkg")
	assert.Contains(t, node.Children, "docs")
}

func TestLoadOwnFilesKey(t *testing.T) {
	path := writeDoc(t, "project.json", `{
		"project": {
			"files": ["README.txt"],
			"src": ["main.txt"]
		}
	}`)

	node, err := spec.Load(path)
	require.NoError(t, err)

	project := node.Children["project"]
	require.NotNil(t, project)
	assert.Equal(t, []string{"README.txt"}, project.Files)
	assert.Equal(t, []string{"main.txt"}, project.Children["src"].Files)
}

func TestLoadFolderLiterallyNamedFiles(t *testing.T) {
	// a mapping value escapes the "files" reservation
	path := writeDoc(t, "project.json", `{
		"files": {
			"inbox": ["a.txt"]
		}
	}`)

	node, err := spec.Load(path)
	require.NoError(t, err)

	require.Contains(t, node.Children, "files")
	assert.Equal(t, []string{"a.txt"},
		node.Children["files"].Children["inbox"].Files)
}

func TestLoadTaggedLeaf(t *testing.T) {
	// the end-to-end shape: a folder whose mapping only carries "files"
	path := writeDoc(t, "project.json", `{
		"src": {"files": ["main.txt"]},
		"docs": []
	}`)

	node, err := spec.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"main.txt"}, node.Children["src"].Files)
	assert.Empty(t, node.Children["src"].Children)
	assert.Contains(t, node.Children, "docs")
}

func TestLoadSchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantIn  string
	}{
		{
			name:    "scalar_value",
			file:    "bad.json",
			content: `{"src": 42}`,
			wantIn:  `"src"`,
		},
		{
			name:    "non_string_file_entry",
			file:    "bad.json",
			content: `{"src": ["ok.txt", 7]}`,
			wantIn:  "file entry 1",
		},
		{
			name:    "nested_scalar",
			file:    "bad.yaml",
			content: "src:\n  app: true\n",
			wantIn:  `"src/app"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDoc(t, tt.file, tt.content)
			_, err := spec.Load(path)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrSchemaInvalid),
				"got code %s", errors.GetErrorCode(err))
			assert.Contains(t, err.Error(), tt.wantIn)
		})
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeDoc(t, "broken.json", `{"src": `)
	_, err := spec.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSpecParse))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := spec.Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSpecLoad))
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeDoc(t, "spec.ini", "[src]")
	_, err := spec.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSpecLoad))
}

func TestLoadVars(t *testing.T) {
	path := writeDoc(t, "vars.json", `{"env": "prod", "episode": 101, "final": true}`)

	vars, err := spec.LoadVars(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"env":     "prod",
		"episode": "101",
		"final":   "true",
	}, vars)
}

func TestLoadVarsYAML(t *testing.T) {
	path := writeDoc(t, "vars.yaml", "env: prod\nshow: ep101\n")

	vars, err := spec.LoadVars(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", vars["env"])
	assert.Equal(t, "ep101", vars["show"])
}

func TestLoadVarsRejectsNested(t *testing.T) {
	path := writeDoc(t, "vars.json", `{"env": {"name": "prod"}}`)

	_, err := spec.LoadVars(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSchemaInvalid))
	assert.Contains(t, err.Error(), `"env"`)
}
