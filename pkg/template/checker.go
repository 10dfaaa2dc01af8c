package template

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/dotlink/pkg/diff"
	"github.com/arthur-debert/dotlink/pkg/environment"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// DriftStatus classifies a generated file against a fresh render
type DriftStatus string

const (
	StatusMatch   DriftStatus = "match"
	StatusDiffers DriftStatus = "differs"
	StatusMissing DriftStatus = "missing"
)

// DriftResult is the outcome of checking one template entry
type DriftResult struct {
	Source        string      `json:"source" yaml:"source"`
	GeneratedPath string      `json:"generated" yaml:"generated"`
	Status        DriftStatus `json:"status" yaml:"status"`
	Diff          string      `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// Checker compares generated files with what would be generated now
type Checker struct {
	fs            filesystem.FS
	contentRoot   string
	generatedRoot string
	env           environment.Resolved
}

// NewChecker creates a Checker; a nil fsys means the OS filesystem
func NewChecker(fsys filesystem.FS, contentRoot, generatedRoot string, env environment.Resolved) *Checker {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Checker{
		fs:            fsys,
		contentRoot:   contentRoot,
		generatedRoot: generatedRoot,
		env:           env,
	}
}

// Check renders every template in memory and diffs it against the
// generated file. Missing generated files are reported, not returned as
// errors; unreadable templates are.
func (c *Checker) Check(templates types.Mapping) ([]DriftResult, error) {
	logger := logging.GetLogger("template.checker")
	results := make([]DriftResult, 0, len(templates))

	for _, entry := range templates {
		rendered, err := RenderSource(c.fs, c.contentRoot, entry.Source, c.env)
		if err != nil {
			return nil, err
		}

		generated := paths.GeneratedPath(c.generatedRoot, entry.Source)
		result := DriftResult{Source: entry.Source, GeneratedPath: generated}

		onDisk, err := c.fs.ReadFile(generated)
		switch {
		case stderrors.Is(err, fs.ErrNotExist):
			result.Status = StatusMissing
		case err != nil:
			return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", generated)
		default:
			result.Diff = diff.SideBySide(rendered, string(onDisk))
			result.Status = StatusMatch
			if result.Diff != "" {
				result.Status = StatusDiffers
			}
		}

		logger.Debug().
			Str("source", entry.Source).
			Str("status", string(result.Status)).
			Msg("checked template")
		results = append(results, result)
	}

	return results, nil
}

// HasDrift reports whether any result is not a match
func HasDrift(results []DriftResult) bool {
	for _, r := range results {
		if r.Status != StatusMatch {
			return true
		}
	}
	return false
}

// CountByStatus tallies results per status
func CountByStatus(results []DriftResult) map[DriftStatus]int {
	counts := make(map[DriftStatus]int)
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}
