package git

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/mkarren/gitseed/internal/common"
	"github.com/mkarren/gitseed/internal/constants"
)

// Config contains the repository settings for a Repo
type Config struct {
	// Repository path
	RepoPath string

	// Identity recorded on generated commits; empty values fall back to
	// the repository's configured identity
	AuthorName  string
	AuthorEmail string
}

// Repo stages files and creates commits in a git repository by shelling out
// to the git binary. Commit dates are overridden through the GIT_AUTHOR_DATE
// and GIT_COMMITTER_DATE environment variables.
type Repo struct {
	config   Config
	logger   Logger
	executor CommandExecutor
}

// Logger alias to common.Logger
type Logger = common.Logger

// NewRepo creates a Repo with the default executor
func NewRepo(config Config, logger Logger) *Repo {
	return NewRepoWithExecutor(config, logger, NewExecExecutor())
}

// NewRepoWithExecutor creates a Repo with a custom command executor
func NewRepoWithExecutor(config Config, logger Logger, executor CommandExecutor) *Repo {
	return &Repo{
		config:   config,
		logger:   logger,
		executor: executor,
	}
}

// IsRepository checks if the given path is a git repository
func IsRepository(path string) bool {
	cmd := exec.Command("git", "-C", path, "rev-parse", "--is-inside-work-tree")
	executor := NewExecExecutor()
	return executor.Execute(cmd) == nil
}

// HasHead reports whether the repository at path has a HEAD commit to
// append to, without constructing a Repo.
func HasHead(ctx context.Context, path string) bool {
	cmd := exec.CommandContext(ctx, "git", "-C", path, "rev-parse", "--verify", "--quiet", "HEAD")
	executor := NewExecExecutor()
	return executor.Execute(cmd) == nil
}

// HasCommits reports whether HEAD resolves to a commit. A repository fresh
// from git init has no HEAD yet and cannot take generated commits on top.
func (r *Repo) HasCommits(ctx context.Context) bool {
	_, err := r.runGitCommandWithOutput(ctx, "rev-parse", "--verify", "--quiet", "HEAD")
	return err == nil
}

// CurrentBranch returns the name of the checked-out branch
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	output, err := r.runGitCommandWithOutput(ctx, "branch", "--show-current")
	if err != nil {
		return "unknown", err
	}
	return strings.TrimSpace(output), nil
}

// Stage records path in the index: a removal for deleted files, an addition
// for created or modified ones. The path separator guards against filenames
// that look like options.
func (r *Repo) Stage(ctx context.Context, path string, removal bool) error {
	if removal {
		// The worktree copy is already gone; git rm stages the deletion
		return r.runGitCommand(ctx, "rm", "--quiet", "--", path)
	}
	return r.runGitCommand(ctx, "add", "--", path)
}

// Commit creates a commit whose author and committer dates are both set to
// at, and returns the hash of the new commit.
func (r *Repo) Commit(ctx context.Context, message string, at time.Time) (string, error) {
	spoofed := at.Format(constants.DateFormat)
	env := []string{
		"GIT_AUTHOR_DATE=" + spoofed,
		"GIT_COMMITTER_DATE=" + spoofed,
	}
	if r.config.AuthorName != "" {
		env = append(env,
			"GIT_AUTHOR_NAME="+r.config.AuthorName,
			"GIT_COMMITTER_NAME="+r.config.AuthorName)
	}
	if r.config.AuthorEmail != "" {
		env = append(env,
			"GIT_AUTHOR_EMAIL="+r.config.AuthorEmail,
			"GIT_COMMITTER_EMAIL="+r.config.AuthorEmail)
	}

	if err := r.runGitCommandWithEnv(ctx, env, "commit", "-m", message); err != nil {
		return "", err
	}

	output, err := r.runGitCommandWithOutput(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}

	hash := strings.TrimSpace(output)
	r.logger.Info("Created commit %s dated %s", hash, spoofed)
	return hash, nil
}

// Git command plumbing

// gitCommand builds a git invocation rooted at the repository path.
func (r *Repo) gitCommand(ctx context.Context, args ...string) *exec.Cmd {
	baseArgs := []string{"-C", r.config.RepoPath}
	cmd := exec.CommandContext(ctx, "git", append(baseArgs, args...)...)
	cmd.Dir = r.config.RepoPath
	return cmd
}

// runGitCommand executes a git command in the repository directory.
func (r *Repo) runGitCommand(ctx context.Context, args ...string) error {
	return r.executor.Execute(r.gitCommand(ctx, args...))
}

// runGitCommandWithOutput executes a git command and returns its output.
func (r *Repo) runGitCommandWithOutput(ctx context.Context, args ...string) (string, error) {
	return r.executor.ExecuteWithOutput(r.gitCommand(ctx, args...))
}

// runGitCommandWithEnv executes a git command with extra environment
// variables appended to the inherited environment.
func (r *Repo) runGitCommandWithEnv(ctx context.Context, env []string, args ...string) error {
	cmd := r.gitCommand(ctx, args...)
	cmd.Env = append(os.Environ(), env...)
	return r.executor.Execute(cmd)
}
