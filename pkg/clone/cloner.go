package clone

import (
	"context"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/output"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/rs/zerolog"
)

// GitCommand is the executable used for clone and pull
const GitCommand = "git"

// Options configures a Cloner
type Options struct {
	// Runner defaults to ExecRunner
	Runner Runner
	// FS defaults to the OS filesystem
	FS filesystem.FS
	// Reporter defaults to output.Discard
	Reporter output.Reporter
	DryRun   bool
}

// Cloner clones or updates repositories
type Cloner struct {
	runner   Runner
	fs       filesystem.FS
	reporter output.Reporter
	dryRun   bool
	logger   zerolog.Logger
}

// NewCloner creates a Cloner from opts, filling in defaults
func NewCloner(opts Options) *Cloner {
	if opts.Runner == nil {
		opts.Runner = ExecRunner{}
	}
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Reporter == nil {
		opts.Reporter = output.Discard
	}
	return &Cloner{
		runner:   opts.Runner,
		fs:       opts.FS,
		reporter: opts.Reporter,
		dryRun:   opts.DryRun,
		logger:   logging.GetLogger("clone"),
	}
}

// Sync brings every repository up to date, in the given order.
// The first failing git command stops the run.
func (c *Cloner) Sync(ctx context.Context, repos []types.Repository) error {
	for _, repo := range repos {
		if err := c.syncOne(ctx, repo); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cloner) syncOne(ctx context.Context, repo types.Repository) error {
	path := paths.ExpandHome(repo.Path)

	if c.dryRun {
		c.reporter.Report(output.Action{
			Kind:        output.KindClone,
			Source:      repo.URL,
			Destination: path,
			DryRun:      true,
		})
		return nil
	}

	action := output.Action{Kind: output.KindClone, Source: repo.URL, Destination: path}
	args := []string{"clone", repo.URL, path}
	if _, err := c.fs.Stat(path); err == nil {
		action = output.Action{Kind: output.KindPull, Destination: path}
		args = []string{"-C", path, "pull"}
	}

	c.logger.Info().
		Str("repo", repo.Name).
		Str("url", repo.URL).
		Str("path", path).
		Str("kind", string(action.Kind)).
		Msg("syncing repository")

	out, err := c.runner.Run(ctx, GitCommand, args...)
	if err != nil {
		stderr := strings.TrimSpace(out.Stderr)
		msg := "git " + string(action.Kind) + " failed for " + repo.Name
		if stderr != "" {
			msg += ": " + stderr
		}
		return errors.Wrap(err, errors.ErrCloneFailed, msg).
			WithDetail("repo", repo.Name).
			WithDetail("path", path).
			WithDetail("stderr", stderr)
	}

	c.reporter.Report(action)
	return nil
}
