// Package core wires the treegen pipeline: flatten the folder spec,
// substitute placeholders, then materialize directories and files.
package core

import (
	"github.com/arthur-debert/treegen/pkg/errors"
	"github.com/arthur-debert/treegen/pkg/flatten"
	"github.com/arthur-debert/treegen/pkg/logging"
	"github.com/arthur-debert/treegen/pkg/materialize"
	"github.com/arthur-debert/treegen/pkg/subst"
	"github.com/arthur-debert/treegen/pkg/types"
)

// ExecuteOptions carries the inputs of one treegen run. Spec and Vars are
// already parsed; loading documents is the CLI's job.
type ExecuteOptions struct {
	// Spec is the parsed folder-spec tree.
	Spec *types.Node

	// Vars maps placeholder names to replacement values. May be empty, in
	// which case the spec must contain no placeholders.
	Vars map[string]string

	// Root is the creation root all directories are rooted under.
	Root string

	// SpecBaseDir is the directory containing the spec document, used to
	// resolve relative copy sources.
	SpecBaseDir string

	// FileSystem receives the materialization. Defaults are the CLI's
	// concern; core requires it to be set unless DryRun is.
	FileSystem types.FS

	// DryRun stops the pipeline after substitution: the resolved tree is
	// computed and reported but nothing is written.
	DryRun bool
}

// Result reports what one run resolved and materialized.
type Result struct {
	// Tree is the flattened, fully substituted tree.
	Tree *types.FlattenedTree

	// Dirs and Files list materialization outcomes in execution order.
	// Both are empty for dry runs.
	Dirs  []materialize.DirOutcome
	Files []materialize.FileOutcome

	// DryRun mirrors the option that produced this result.
	DryRun bool
}

// Execute runs the pipeline. Substitution failures surface before any
// filesystem mutation; materialization failures abort the run in place,
// leaving earlier directories and files on disk.
func Execute(opts ExecuteOptions) (*Result, error) {
	logger := logging.GetLogger("core")
	done := logging.LogOperationStart(logger, "execute")
	defer done()

	if opts.Spec == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no folder spec supplied")
	}
	if opts.Root == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no creation root supplied")
	}
	if opts.FileSystem == nil && !opts.DryRun {
		return nil, errors.New(errors.ErrInternal, "no filesystem supplied")
	}

	vars := opts.Vars
	if vars == nil {
		vars = map[string]string{}
	}

	tree := flatten.Flatten(opts.Spec, opts.Root)

	tree, err := subst.ExpandTree(tree, vars)
	if err != nil {
		return nil, err
	}

	result := &Result{Tree: tree, DryRun: opts.DryRun}
	if opts.DryRun {
		logger.Info().Int("directories", tree.Len()).Msg("Dry run, skipping materialization")
		return result, nil
	}

	result.Dirs, err = materialize.CreateDirectories(opts.FileSystem, tree)
	if err != nil {
		return result, err
	}

	result.Files, err = materialize.CreateFiles(opts.FileSystem, tree, opts.SpecBaseDir)
	if err != nil {
		return result, err
	}

	logger.Info().
		Int("directories", len(result.Dirs)).
		Int("files", len(result.Files)).
		Msg("Materialization finished")
	return result, nil
}
