package materialize

import (
	"os"

	"github.com/arthur-debert/treegen/pkg/errors"
	"github.com/arthur-debert/treegen/pkg/logging"
	"github.com/arthur-debert/treegen/pkg/types"
)

const dirPerm = 0755

// DirOutcome records one directory materialization.
type DirOutcome struct {
	Path string
	// Existed is true when the directory was already present.
	Existed bool
}

// CreateDirectories ensures every directory in tree exists, creating
// missing parents as needed. Pre-existing directories are not an error; a
// path already occupied by a non-directory is. The run aborts on the first
// failure.
func CreateDirectories(fsys types.FS, tree *types.FlattenedTree) ([]DirOutcome, error) {
	logger := logging.GetLogger("materialize")
	outcomes := make([]DirOutcome, 0, tree.Len())

	for _, path := range tree.Paths() {
		existed := false
		if info, err := fsys.Stat(path); err == nil {
			if !info.IsDir() {
				return outcomes, errors.Newf(errors.ErrDirCreate,
					"cannot create directory %q: path exists and is not a directory", path).
					WithDetail("path", path)
			}
			existed = true
		} else if !os.IsNotExist(err) {
			return outcomes, errors.Wrapf(err, errors.ErrDirCreate,
				"cannot stat %q", path)
		}

		if !existed {
			if err := fsys.MkdirAll(path, dirPerm); err != nil {
				return outcomes, errors.Wrapf(err, errors.ErrDirCreate,
					"cannot create directory %q", path).WithDetail("path", path)
			}
			logger.Info().Str("path", path).Msg("Created directory")
		} else {
			logger.Debug().Str("path", path).Msg("Directory already exists")
		}

		outcomes = append(outcomes, DirOutcome{Path: path, Existed: existed})
	}

	return outcomes, nil
}
