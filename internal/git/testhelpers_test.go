package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// discardLogger satisfies Logger while swallowing all output.
type discardLogger struct{}

func (discardLogger) Info(string, ...interface{})          {}
func (discardLogger) Warning(string, ...interface{})       {}
func (discardLogger) Error(string, ...interface{})         {}
func (discardLogger) InfoToUser(string, ...interface{})    {}
func (discardLogger) WarningToUser(string, ...interface{}) {}
func (discardLogger) Success(string, ...interface{})       {}
func (discardLogger) StatusMessage(string, ...interface{}) {}

// gitTestEnv isolates test git invocations from host and user configuration.
func gitTestEnv() []string {
	return append(os.Environ(),
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_CONFIG_GLOBAL=/dev/null",
		"GIT_TERMINAL_PROMPT=0",
	)
}

// runGit runs a git command in dir and fails the test on error.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	cmd.Env = gitTestEnv()
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return string(out)
}

// requireGit skips the test when the git binary is unavailable.
func requireGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}
}

// initBareWorkTree creates an empty repository without any commits.
func initBareWorkTree(t *testing.T) string {
	t.Helper()
	requireGit(t)

	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.name", "gitseed test")
	runGit(t, dir, "config", "user.email", "gitseed@example.com")
	return dir
}

// setupTestRepo creates a throwaway repository holding one initial commit.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir := initBareWorkTree(t)

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# test repo\n"), 0644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	runGit(t, dir, "add", "README.md")
	runGit(t, dir, "commit", "-m", "initial commit")

	return dir
}
