package types

// FlattenedTree maps absolute destination directory paths to the file
// entries declared at each path. Paths preserves insertion order, which the
// flattener guarantees is depth-first with parents before children. Nothing
// downstream may depend on that order for correctness, but it keeps plans
// and logs stable.
type FlattenedTree struct {
	paths []string
	files map[string][]string
}

// NewFlattenedTree creates an empty FlattenedTree.
func NewFlattenedTree() *FlattenedTree {
	return &FlattenedTree{
		files: make(map[string][]string),
	}
}

// Add records a directory path and its file entries. Adding a path twice
// replaces its file list without duplicating the path.
func (t *FlattenedTree) Add(path string, files []string) {
	if _, exists := t.files[path]; !exists {
		t.paths = append(t.paths, path)
	}
	t.files[path] = files
}

// Paths returns the directory paths in insertion order. The returned slice
// must not be mutated.
func (t *FlattenedTree) Paths() []string {
	return t.paths
}

// FilesFor returns the file entries declared for the given directory path.
func (t *FlattenedTree) FilesFor(path string) []string {
	return t.files[path]
}

// Len returns the number of directories in the tree.
func (t *FlattenedTree) Len() int {
	return len(t.paths)
}
