package clone

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/output"
	"github.com/arthur-debert/dotlink/pkg/testutil"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	calls  []string
	failOn string
	stderr string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (Output, error) {
	call := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, call)
	if f.failOn != "" && strings.Contains(call, f.failOn) {
		return Output{Stderr: f.stderr}, stderrors.New("exit status 128")
	}
	return Output{}, nil
}

func TestSync(t *testing.T) {
	root := t.TempDir()
	existing := testutil.CreateDir(t, root, "existing")
	fresh := filepath.Join(root, "fresh")

	repos := []types.Repository{
		{Name: "a", URL: "https://example.com/a.git", Path: existing},
		{Name: "b", URL: "https://example.com/b.git", Path: fresh},
	}

	runner := &fakeRunner{}
	rec := output.NewRecorder()
	c := NewCloner(Options{Runner: runner, Reporter: rec})

	require.NoError(t, c.Sync(context.Background(), repos))

	assert.Equal(t, []string{
		"git -C " + existing + " pull",
		"git clone https://example.com/b.git " + fresh,
	}, runner.calls)
	assert.Equal(t, []string{
		"pull " + existing,
		"clone https://example.com/b.git to " + fresh,
	}, rec.Lines())
}

func TestSyncExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	runner := &fakeRunner{}
	c := NewCloner(Options{Runner: runner})
	require.NoError(t, c.Sync(context.Background(), []types.Repository{
		{Name: "vim", URL: "u", Path: "~/src/vim"},
	}))

	assert.Equal(t, []string{"git clone u " + filepath.Join(home, "src/vim")}, runner.calls)
}

func TestSyncDryRun(t *testing.T) {
	root := t.TempDir()
	existing := testutil.CreateDir(t, root, "existing")
	before := testutil.Snapshot(t, root)

	runner := &fakeRunner{}
	rec := output.NewRecorder()
	c := NewCloner(Options{Runner: runner, Reporter: rec, DryRun: true})

	require.NoError(t, c.Sync(context.Background(), []types.Repository{
		{Name: "a", URL: "u", Path: existing},
	}))

	assert.Empty(t, runner.calls)
	assert.Equal(t, []string{"Dry-run: clone u to " + existing}, rec.Lines())
	assert.Equal(t, before, testutil.Snapshot(t, root))
}

func TestSyncFailure(t *testing.T) {
	root := t.TempDir()
	runner := &fakeRunner{failOn: "bad", stderr: "fatal: repository not found\n"}
	rec := output.NewRecorder()
	c := NewCloner(Options{Runner: runner, Reporter: rec})

	err := c.Sync(context.Background(), []types.Repository{
		{Name: "bad", URL: "bad-url", Path: filepath.Join(root, "bad")},
		{Name: "good", URL: "good-url", Path: filepath.Join(root, "good")},
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCloneFailed))
	assert.Contains(t, err.Error(), "fatal: repository not found")
	assert.Equal(t, "fatal: repository not found", errors.GetErrorDetails(err)["stderr"])
	assert.Len(t, runner.calls, 1, "sync stops at the first failure")
	assert.Empty(t, rec.Actions)
}

func TestExecRunner(t *testing.T) {
	out, err := ExecRunner{}.Run(context.Background(), "sh", "-c", "echo out; echo err >&2")
	require.NoError(t, err)
	assert.Equal(t, "out\n", out.Stdout)
	assert.Equal(t, "err\n", out.Stderr)

	_, err = ExecRunner{}.Run(context.Background(), "sh", "-c", "exit 3")
	assert.Error(t, err)
}
