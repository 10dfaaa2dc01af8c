package paths

import (
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/dotlink/pkg/errors"
)

const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// BackupSuffix is appended to every backup file name
	BackupSuffix = ".back"

	// BackupTimestampFormat is the second granularity stamp used in backup names
	BackupTimestampFormat = "20060102150405"
)

// GetHomeDirectory returns the user's home directory.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrap(err, errors.ErrInvalidInput, "failed to get home directory")
	}
	return homeDir, nil
}

// ExpandHome replaces a leading ~ or ~/ with the user's home directory.
// Paths of the form ~user are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// Resolve expands ~ and makes the path absolute.
func Resolve(path string) (string, error) {
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve path %s", path)
	}
	return abs, nil
}

// SourcePath is the location of a mapping source inside the content root.
func SourcePath(contentRoot, source string) string {
	return filepath.Join(contentRoot, source)
}

// GeneratedPath is where the rendered form of a template source lives.
func GeneratedPath(generatedRoot, source string) string {
	return filepath.Join(generatedRoot, source)
}

// BackupPath returns <path>.<YYYYMMDDHHMMSS>.back for the given instant.
func BackupPath(path string, at time.Time) string {
	return path + "." + at.Format(BackupTimestampFormat) + BackupSuffix
}
