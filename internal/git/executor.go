package git

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/mkarren/gitseed/internal/errors"
)

// CommandExecutor defines an interface for executing commands
type CommandExecutor interface {
	// Execute runs a command and returns its exit code
	Execute(cmd *exec.Cmd) error

	// ExecuteWithOutput runs a command and returns its output and exit code
	ExecuteWithOutput(cmd *exec.Cmd) (string, error)
}

// ExecExecutor is the default implementation of CommandExecutor
// that delegates to the os/exec package
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// Execute implements CommandExecutor.Execute
func (e *ExecExecutor) Execute(cmd *exec.Cmd) error {
	var stderr bytes.Buffer
	if cmd.Stderr == nil {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		return commandError(cmd, err, stderr.String())
	}
	return nil
}

// ExecuteWithOutput implements CommandExecutor.ExecuteWithOutput
func (e *ExecExecutor) ExecuteWithOutput(cmd *exec.Cmd) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", commandError(cmd, err, stderr.String())
	}

	return stdout.String(), nil
}

// commandError wraps a failed command in a GitError carrying the
// ErrGitOperationFailed sentinel and any captured stderr.
func commandError(cmd *exec.Cmd, err error, stderr string) error {
	operation := ""
	if len(cmd.Args) > 0 {
		operation = cmd.Args[0]
	}

	var args []string
	if len(cmd.Args) > 1 {
		args = cmd.Args[1:]
	}

	wrappedErr := errors.Wrap(errors.ErrGitOperationFailed, err.Error())
	return errors.NewGitError(operation, args, wrappedErr, strings.TrimSpace(stderr))
}
