package linker

import (
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/output"
)

// DirPerm is the mode of directories created by dotlink
const DirPerm = 0755

// EnsureDir makes sure the directory for path exists. When isFile is true
// the directory is path's parent, otherwise path itself.
// Anything already present at the directory path counts as existing.
func EnsureDir(fsys filesystem.FS, reporter output.Reporter, path string, isFile, dryRun bool) error {
	dir := path
	if isFile {
		dir = filepath.Dir(path)
	}

	if _, err := fsys.Stat(dir); err == nil {
		return nil
	}

	if !dryRun {
		if err := fsys.MkdirAll(dir, DirPerm); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir).
				WithDetail("path", dir)
		}
	}

	reporter.Report(output.Action{Kind: output.KindMkdir, Destination: dir, DryRun: dryRun})
	return nil
}
