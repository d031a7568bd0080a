package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/treegen/pkg/errors"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCreateCommand(t *testing.T) {
	specDir := t.TempDir()
	root := t.TempDir()

	specPath := filepath.Join(specDir, "project.json")
	require.NoError(t, os.WriteFile(specPath, []byte(`{
		"$env": {"logs": ["seed.txt"]},
		"docs": []
	}`), 0644))

	varsPath := filepath.Join(specDir, "vars.json")
	require.NoError(t, os.WriteFile(varsPath, []byte(`{"env": "prod"}`), 0644))

	// seed file shipped next to the spec document
	require.NoError(t, os.WriteFile(filepath.Join(specDir, "seed.txt"), []byte("seeded"), 0644))

	out, err := runCommand(t, "create", root, specPath, varsPath)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "docs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := os.ReadFile(filepath.Join(root, "prod", "logs", "seed.txt"))
	require.NoError(t, err)
	assert.Equal(t, "seeded", string(data))

	assert.Contains(t, out, "Created 3 directories, 1 files")
}

func TestCreateCommandMissingVar(t *testing.T) {
	specDir := t.TempDir()
	root := t.TempDir()

	specPath := filepath.Join(specDir, "project.json")
	require.NoError(t, os.WriteFile(specPath, []byte(`{"$env": []}`), 0644))

	_, err := runCommand(t, "create", root, specPath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingVar))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing may be created on substitution failure")
}

func TestCreateCommandDryRun(t *testing.T) {
	specDir := t.TempDir()
	root := t.TempDir()

	specPath := filepath.Join(specDir, "project.json")
	require.NoError(t, os.WriteFile(specPath, []byte(`{"src": ["main.txt"]}`), 0644))

	out, err := runCommand(t, "create", root, specPath, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "dry run")

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPlanCommand(t *testing.T) {
	specDir := t.TempDir()

	specPath := filepath.Join(specDir, "project.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte("src:\n  - main.txt\n"), 0644))

	out, err := runCommand(t, "plan", specPath, "--root", "/out")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join("/out", "src"))
	assert.Contains(t, out, "main.txt")
}
