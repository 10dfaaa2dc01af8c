package linker

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/output"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/rs/zerolog"
)

// Options configures a Placer
type Options struct {
	// FS defaults to the OS filesystem
	FS filesystem.FS
	// Reporter defaults to output.Discard
	Reporter output.Reporter
	DryRun   bool
	// Now stamps backup names; defaults to time.Now
	Now func() time.Time
}

// Placer places links and materializes directories
type Placer struct {
	fs       filesystem.FS
	reporter output.Reporter
	dryRun   bool
	now      func() time.Time
	logger   zerolog.Logger
}

// NewPlacer creates a Placer from opts, filling in defaults
func NewPlacer(opts Options) *Placer {
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Reporter == nil {
		opts.Reporter = output.Discard
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Placer{
		fs:       opts.FS,
		reporter: opts.Reporter,
		dryRun:   opts.DryRun,
		now:      opts.Now,
		logger:   logging.GetLogger("linker"),
	}
}

// FS returns the filesystem the placer operates on
func (p *Placer) FS() filesystem.FS { return p.fs }

// Reporter returns the reporter actions are sent to
func (p *Placer) Reporter() output.Reporter { return p.reporter }

// DryRun reports whether the placer only previews actions
func (p *Placer) DryRun() bool { return p.dryRun }

// EnsureDir runs EnsureDir with the placer's filesystem, reporter and mode
func (p *Placer) EnsureDir(path string, isFile bool) error {
	return EnsureDir(p.fs, p.reporter, path, isFile, p.dryRun)
}

// Place links dst to src. dst may start with ~.
//
// A non-link object at dst is renamed to a backup first. A link at dst,
// dangling or not, is removed and recreated.
func (p *Placer) Place(src, dst string) error {
	// A trailing separator would make dst its own parent directory
	dst = filepath.Clean(paths.ExpandHome(dst))

	if err := p.EnsureDir(dst, true); err != nil {
		return err
	}

	// Lstat errors other than absence (e.g. a parent that is a file) are
	// treated as absence; Symlink reports the real problem below.
	info, err := p.fs.Lstat(dst)
	exists := err == nil
	isLink := exists && filesystem.IsSymlink(info)

	if exists && !isLink {
		backup := paths.BackupPath(dst, p.now())
		// Never replace an earlier backup taken within the same second
		if _, err := p.fs.Lstat(backup); err == nil {
			return errors.Newf(errors.ErrBackup, "backup %s already exists", backup).
				WithDetail("path", dst).
				WithDetail("backup", backup)
		}
		p.logger.Info().Str("path", dst).Str("backup", backup).Msg("backing up existing file")
		err := p.apply(output.Action{Kind: output.KindBackup, Source: dst, Destination: backup}, func() error {
			if err := p.fs.Rename(dst, backup); err != nil {
				return errors.Wrapf(err, errors.ErrBackup, "failed to back up %s", dst).
					WithDetail("path", dst).
					WithDetail("backup", backup)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	if isLink {
		err := p.apply(output.Action{Kind: output.KindUnlink, Destination: dst}, func() error {
			if err := p.fs.Remove(dst); err != nil {
				return errors.Wrapf(err, errors.ErrLink, "failed to remove existing link %s", dst).
					WithDetail("path", dst)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	err = p.apply(output.Action{Kind: output.KindLink, Source: src, Destination: dst}, func() error {
		if err := p.fs.Symlink(src, dst); err != nil {
			return errors.Wrapf(err, errors.ErrLink, "failed to link %s to %s", src, dst).
				WithDetail("source", src).
				WithDetail("destination", dst)
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.logger.Debug().
		Str("source", src).
		Str("destination", dst).
		Bool("dryRun", p.dryRun).
		Msg("placed link")
	return nil
}

// apply performs op unless in dry-run mode, then reports a
func (p *Placer) apply(a output.Action, op func() error) error {
	a.DryRun = p.dryRun
	if !p.dryRun {
		if err := op(); err != nil {
			return err
		}
	}
	p.reporter.Report(a)
	return nil
}
