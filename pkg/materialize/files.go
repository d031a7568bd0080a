package materialize

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/treegen/pkg/errors"
	"github.com/arthur-debert/treegen/pkg/logging"
	"github.com/arthur-debert/treegen/pkg/types"
)

const filePerm = 0644

// FileOutcome records one file materialization.
type FileOutcome struct {
	// Path is the destination file path.
	Path string
	// Source is the resolved copy source, empty when the file was created
	// empty.
	Source string
	// Overwrote is true when an existing destination file was replaced.
	Overwrote bool
}

// CreateFiles materializes every file entry in tree. An entry that resolves
// to an existing regular file, either as an absolute path or relative to
// specBaseDir, is copied into the destination directory keeping its base
// name. Any other entry produces an empty file named after its final path
// segment. Existing destination files are silently overwritten.
func CreateFiles(fsys types.FS, tree *types.FlattenedTree, specBaseDir string) ([]FileOutcome, error) {
	logger := logging.GetLogger("materialize")
	var outcomes []FileOutcome

	for _, dir := range tree.Paths() {
		for _, entry := range tree.FilesFor(dir) {
			outcome, err := createFile(fsys, dir, entry, specBaseDir, logger)
			if err != nil {
				return outcomes, err
			}
			outcomes = append(outcomes, outcome)
		}
	}

	return outcomes, nil
}

func createFile(fsys types.FS, dir, entry, specBaseDir string, logger zerolog.Logger) (FileOutcome, error) {
	source, data, err := resolveSource(fsys, entry, specBaseDir)
	if err != nil {
		return FileOutcome{}, err
	}

	dest := filepath.Join(dir, filepath.Base(entry))

	overwrote := false
	if info, statErr := fsys.Stat(dest); statErr == nil && !info.IsDir() {
		overwrote = true
	}

	if err := fsys.WriteFile(dest, data, filePerm); err != nil {
		code := errors.ErrFileCreate
		if source != "" {
			code = errors.ErrFileWrite
		}
		return FileOutcome{}, errors.Wrapf(err, code,
			"cannot write %q", dest).WithDetail("path", dest)
	}

	if source != "" {
		logger.Info().Str("path", dest).Str("source", source).Msg("Copied file")
	} else {
		logger.Info().Str("path", dest).Msg("Created empty file")
	}

	return FileOutcome{Path: dest, Source: source, Overwrote: overwrote}, nil
}

// resolveSource decides between the copy and empty-file interpretations of
// an entry. It returns the resolved source path and the bytes to write;
// both are empty for the empty-file case. Resolution tries the entry as an
// absolute path first, then relative to the directory containing the spec
// document, so spec authors can ship seed files alongside the spec itself.
func resolveSource(fsys types.FS, entry, specBaseDir string) (string, []byte, error) {
	candidate := entry
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(specBaseDir, entry)
	}

	info, err := fsys.Stat(candidate)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, nil
		}
		return "", nil, errors.Wrapf(err, errors.ErrFileRead,
			"cannot stat source candidate %q", candidate)
	}
	if !info.Mode().IsRegular() {
		return "", nil, nil
	}

	data, err := fsys.ReadFile(candidate)
	if err != nil {
		return "", nil, errors.Wrapf(err, errors.ErrFileRead,
			"cannot read source file %q", candidate).WithDetail("path", candidate)
	}
	return candidate, data, nil
}
