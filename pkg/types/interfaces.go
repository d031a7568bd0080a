package types

import "io/fs"

// FS abstracts the filesystem operations treegen performs so that
// materialization can run against the real OS or an in-memory filesystem
// in tests.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
}
