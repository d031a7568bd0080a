// Package materialize turns a flattened, fully substituted tree into real
// directories and files.
//
// Materialization is deliberately non-transactional: the run aborts on the
// first failure and whatever was created up to that point stays on disk.
// Existing destination files with matching names are silently overwritten.
package materialize
