package git

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarren/gitseed/internal/errors"
)

func TestExecExecutorExecute(t *testing.T) {
	executor := NewExecExecutor()

	t.Run("Successful command", func(t *testing.T) {
		err := executor.Execute(exec.Command("true"))
		assert.NoError(t, err)
	})

	t.Run("Failing command wraps sentinel", func(t *testing.T) {
		err := executor.Execute(exec.Command("false"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrGitOperationFailed))

		var gitErr *errors.GitError
		require.True(t, errors.As(err, &gitErr))
		assert.Equal(t, "false", gitErr.Operation)
	})

	t.Run("Stderr captured in error", func(t *testing.T) {
		cmd := exec.Command("sh", "-c", "echo oops >&2; exit 1")
		err := executor.Execute(cmd)
		require.Error(t, err)

		var gitErr *errors.GitError
		require.True(t, errors.As(err, &gitErr))
		assert.Equal(t, "oops", gitErr.Output)
	})

	t.Run("Caller-provided stderr is left alone", func(t *testing.T) {
		var sink mockWriter
		cmd := exec.Command("sh", "-c", "echo oops >&2; exit 1")
		cmd.Stderr = &sink

		err := executor.Execute(cmd)
		require.Error(t, err)
		assert.Contains(t, sink.String(), "oops")

		var gitErr *errors.GitError
		require.True(t, errors.As(err, &gitErr))
		assert.Empty(t, gitErr.Output)
	})
}

func TestExecExecutorExecuteWithOutput(t *testing.T) {
	executor := NewExecExecutor()

	t.Run("Returns stdout", func(t *testing.T) {
		out, err := executor.ExecuteWithOutput(exec.Command("sh", "-c", "printf hello"))
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("Failure returns empty output and stderr in error", func(t *testing.T) {
		cmd := exec.Command("sh", "-c", "echo partial; echo broken >&2; exit 3")
		out, err := executor.ExecuteWithOutput(cmd)
		require.Error(t, err)
		assert.Empty(t, out)

		var gitErr *errors.GitError
		require.True(t, errors.As(err, &gitErr))
		assert.Equal(t, "broken", gitErr.Output)
		assert.Contains(t, gitErr.Err.Error(), "exit status 3")
	})

	t.Run("Missing binary is an error", func(t *testing.T) {
		_, err := executor.ExecuteWithOutput(exec.Command("gitseed-no-such-binary"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrGitOperationFailed))
	})
}

type mockWriter struct {
	data []byte
}

func (w *mockWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *mockWriter) String() string {
	return string(w.data)
}
