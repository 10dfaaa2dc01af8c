package core

import (
	"bytes"
	"context"
	"encoding/base64"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/dotlink/pkg/clone"
	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/environment"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/output"
	"github.com/arthur-debert/dotlink/pkg/template"
	"github.com/arthur-debert/dotlink/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	calls []string
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) (clone.Output, error) {
	r.calls = append(r.calls, name+" "+strings.Join(args, " "))
	return clone.Output{}, nil
}

func lookupFrom(vars map[string]string) environment.LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

type fixture struct {
	root      string
	content   string
	generated string
	home      string
	cfg       *config.Config
	lookup    environment.LookupFunc
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	f := fixture{
		root:      root,
		content:   testutil.CreateDir(t, root, "content"),
		generated: filepath.Join(root, "generated"),
		home:      testutil.CreateDir(t, root, "home"),
	}
	testutil.CreateFile(t, f.content, "vimrc", "set nocompatible\n")
	testutil.CreateFile(t, f.content, "motd.tmpl", "Welcome {{ USER }}, key {{ KEY }}\n")

	f.cfg = &config.Config{
		Dotfiles:  config.Dotfiles{Content: f.content, Generated: f.generated},
		Env:       []string{"USER"},
		EnvBase64: []string{"KEY"},
		Clone: map[string]config.Repo{
			"tools": {URL: "https://example.com/tools.git", Path: filepath.Join(root, "tools")},
		},
		Links:     map[string]string{"vimrc": filepath.Join(f.home, ".vimrc")},
		Templates: map[string]string{"motd.tmpl": filepath.Join(f.home, "motd")},
	}
	f.lookup = lookupFrom(map[string]string{
		"USER": "ana",
		"KEY":  base64.StdEncoding.EncodeToString([]byte("s3cret")),
	})
	return f
}

func (f fixture) options() Options {
	return Options{
		Config: f.cfg,
		Lookup: f.lookup,
		Now:    func() time.Time { return time.Date(2024, 5, 17, 9, 30, 45, 0, time.Local) },
	}
}

func TestRun(t *testing.T) {
	f := newFixture(t)
	runner := &recordingRunner{}
	opts := f.options()
	opts.Runner = runner

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Repositories)
	assert.Equal(t, 1, result.Links)
	assert.Equal(t, 1, result.Templates)
	assert.Equal(t, []string{"git clone https://example.com/tools.git " + filepath.Join(f.root, "tools")}, runner.calls)

	testutil.AssertSymlink(t, filepath.Join(f.home, ".vimrc"), filepath.Join(f.content, "vimrc"))
	generated := filepath.Join(f.generated, "motd.tmpl")
	testutil.AssertSymlink(t, filepath.Join(f.home, "motd"), generated)
	assert.Equal(t, "Welcome ana, key s3cret\n", testutil.ReadFile(t, generated))

	assert.Equal(t, output.KindMkdir, result.Actions[0].Kind)
	assert.Equal(t, f.generated, result.Actions[0].Destination)
}

func TestRunThenCheckMatches(t *testing.T) {
	f := newFixture(t)
	opts := f.options()
	opts.Runner = &recordingRunner{}
	_, err := Run(context.Background(), opts)
	require.NoError(t, err)

	var report bytes.Buffer
	opts.CheckTemplates = true
	opts.ReportOut = &report
	opts.ReportFormat = output.FormatText

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, result.Drift, 1)
	assert.Equal(t, template.StatusMatch, result.Drift[0].Status)
	assert.Equal(t, "No differences found for "+filepath.Join(f.generated, "motd.tmpl")+"\n", report.String())
}

func TestRunCheckDoesNotLinkOrClone(t *testing.T) {
	f := newFixture(t)
	runner := &recordingRunner{}
	var report bytes.Buffer
	opts := f.options()
	opts.Runner = runner
	opts.CheckTemplates = true
	opts.ReportOut = &report

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Empty(t, runner.calls)
	assert.False(t, testutil.Exists(filepath.Join(f.home, ".vimrc")))
	assert.False(t, testutil.Exists(filepath.Join(f.home, "motd")))
	assert.Equal(t, template.StatusMissing, result.Drift[0].Status)
	assert.Contains(t, report.String(), "does not exist.")

	// the generated root is still materialized
	assert.True(t, testutil.Exists(f.generated))
}

func TestRunDryRun(t *testing.T) {
	f := newFixture(t)
	testutil.CreateFile(t, f.home, ".vimrc", "mine")
	before := testutil.Snapshot(t, f.root)

	runner := &recordingRunner{}
	opts := f.options()
	opts.Runner = runner
	opts.DryRun = true

	var lines []string
	opts.Reporter = output.ReporterFunc(func(a output.Action) { lines = append(lines, a.String()) })

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, before, testutil.Snapshot(t, f.root))
	assert.Empty(t, runner.calls)
	require.NotEmpty(t, lines)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, output.DryRunPrefix), l)
	}
	assert.Len(t, result.Actions, len(lines))
	assert.Contains(t, lines, "Dry-run: create directory "+f.generated)
	assert.Contains(t, lines, "Dry-run: clone https://example.com/tools.git to "+filepath.Join(f.root, "tools"))
}

func TestRunMissingVariable(t *testing.T) {
	f := newFixture(t)
	opts := f.options()
	opts.Runner = &recordingRunner{}
	opts.Lookup = lookupFrom(map[string]string{"USER": "ana"})

	_, err := Run(context.Background(), opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingVariable))
	assert.False(t, testutil.Exists(filepath.Join(f.home, ".vimrc")))
}

func TestRunFromConfigPath(t *testing.T) {
	f := newFixture(t)
	path := testutil.CreateFile(t, f.root, "dotlink.json", `{
  "dotfiles": {"content": "`+f.content+`", "generated": "`+f.generated+`"},
  "links": {"vimrc": "`+filepath.Join(f.home, ".vimrc")+`"}
}`)

	result, err := Run(context.Background(), Options{ConfigPath: path, Lookup: f.lookup})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Links)
	assert.Equal(t, 0, result.Templates)
	testutil.AssertSymlink(t, filepath.Join(f.home, ".vimrc"), filepath.Join(f.content, "vimrc"))
}

func TestRunSharedDestinationLastEntryWins(t *testing.T) {
	f := newFixture(t)
	testutil.CreateFile(t, f.content, "zsh", "zsh profile")
	testutil.CreateFile(t, f.content, "bash", "bash profile")
	dst := filepath.Join(f.home, ".profile")

	// bash sorts before zsh; file order must decide
	path := testutil.CreateFile(t, f.root, "dotlink.json", `{
  "dotfiles": {"content": "`+f.content+`", "generated": "`+f.generated+`"},
  "links": {"zsh": "`+dst+`", "bash": "`+dst+`"}
}`)

	result, err := Run(context.Background(), Options{ConfigPath: path, Lookup: f.lookup})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Links)
	testutil.AssertSymlink(t, dst, filepath.Join(f.content, "bash"))
	testutil.AssertNoBackups(t, dst)
}

func TestRunWithoutConfig(t *testing.T) {
	_, err := Run(context.Background(), Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
