package core

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/arthur-debert/dotlink/pkg/clone"
	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/environment"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/linker"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/output"
	"github.com/arthur-debert/dotlink/pkg/template"
)

// Options controls a run
type Options struct {
	// ConfigPath is loaded when Config is nil
	ConfigPath string
	Config     *config.Config

	DryRun bool
	// CheckTemplates switches to drift checking only
	CheckTemplates bool

	// Reporter receives every action; nil discards them
	Reporter output.Reporter
	// ReportOut receives the drift report in check mode; nil discards it
	ReportOut    io.Writer
	ReportFormat output.Format

	// Seams for tests; nil means the real thing
	FS     filesystem.FS
	Runner clone.Runner
	Lookup environment.LookupFunc
	Now    func() time.Time
}

// Result summarizes a run
type Result struct {
	Actions []output.Action
	Drift   []template.DriftResult

	Repositories int
	Links        int
	Templates    int
}

// Run executes one pass as described by opts
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("core")
	done := logging.LogOperationStart(logger, "run")
	defer done()

	cfg := opts.Config
	if cfg == nil {
		if opts.ConfigPath == "" {
			return nil, errors.New(errors.ErrInvalidInput, "no configuration given")
		}
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	contentRoot, err := cfg.ContentRoot()
	if err != nil {
		return nil, err
	}
	generatedRoot, err := cfg.GeneratedRoot()
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("content", contentRoot).
		Str("generated", generatedRoot).
		Bool("dryRun", opts.DryRun).
		Bool("check", opts.CheckTemplates).
		Msg("starting run")

	recorder := output.NewRecorder()
	reporter := output.Tee(recorder, opts.Reporter)
	placer := linker.NewPlacer(linker.Options{
		FS:       opts.FS,
		Reporter: reporter,
		DryRun:   opts.DryRun,
		Now:      opts.Now,
	})
	result := &Result{}

	if err := placer.EnsureDir(generatedRoot, false); err != nil {
		return nil, err
	}

	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	env, err := environment.ResolveWith(cfg.Env, cfg.EnvBase64, lookup)
	if err != nil {
		return nil, err
	}
	logger.Debug().Strs("variables", env.Names()).Msg("resolved environment")

	templates := cfg.TemplateMapping()

	if opts.CheckTemplates {
		checker := template.NewChecker(placer.FS(), contentRoot, generatedRoot, env)
		drift, err := checker.Check(templates)
		if err != nil {
			return nil, err
		}
		result.Drift = drift
		result.Templates = len(templates)

		if opts.ReportOut != nil {
			if err := template.WriteReport(opts.ReportOut, drift, opts.ReportFormat); err != nil {
				return nil, errors.Wrap(err, errors.ErrFileWrite, "failed to write drift report")
			}
		}

		counts := template.CountByStatus(drift)
		logger.Info().
			Int("templates", len(drift)).
			Int("match", counts[template.StatusMatch]).
			Int("differs", counts[template.StatusDiffers]).
			Int("missing", counts[template.StatusMissing]).
			Msg("drift check complete")

		result.Actions = recorder.Actions
		return result, nil
	}

	repos := cfg.Repositories()
	cloner := clone.NewCloner(clone.Options{
		Runner:   opts.Runner,
		FS:       placer.FS(),
		Reporter: reporter,
		DryRun:   opts.DryRun,
	})
	if err := cloner.Sync(ctx, repos); err != nil {
		return nil, err
	}
	result.Repositories = len(repos)

	links := cfg.LinkMapping()
	if err := linker.LinkStatic(placer, contentRoot, links); err != nil {
		return nil, err
	}
	result.Links = len(links)

	renderer := template.NewRenderer(placer, contentRoot, generatedRoot, env)
	if err := renderer.Render(templates); err != nil {
		return nil, err
	}
	result.Templates = len(templates)
	result.Actions = recorder.Actions

	logger.Info().
		Int("repositories", result.Repositories).
		Int("links", result.Links).
		Int("templates", result.Templates).
		Int("backups", recorder.Count(output.KindBackup)).
		Int("actions", len(recorder.Actions)).
		Bool("dryRun", opts.DryRun).
		Msg("run complete")

	return result, nil
}
