package clone

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/arthur-debert/dotlink/pkg/logging"
)

// Output is what a command wrote while running
type Output struct {
	Stdout string
	Stderr string
}

// Runner runs an external command to completion
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Output, error)
}

// ExecRunner runs commands with os/exec, capturing their output
type ExecRunner struct{}

// Run executes name with args. Cancelling ctx kills the process.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (Output, error) {
	logger := logging.GetLogger("clone.runner")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug().Str("command", name).Strs("args", args).Msg("running command")
	err := cmd.Run()

	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if out.Stdout != "" {
		logger.Debug().Str("output", out.Stdout).Msg("command stdout")
	}
	if out.Stderr != "" {
		logger.Debug().Str("output", out.Stderr).Msg("command stderr")
	}
	return out, err
}
