// Package git provides Git operations for the gitseed application.
//
// This package abstracts the Git commands gitseed needs: repository
// detection, staging of created and deleted files, and commit creation
// with caller-supplied author and committer dates. Dates are injected
// through the GIT_AUTHOR_DATE and GIT_COMMITTER_DATE environment
// variables so that synthesized history carries the generated
// timestamps rather than the wall clock.
//
// # Core Components
//
// - Repo: Main type that wraps a repository working tree and performs staging and commits
// - CommandExecutor: Interface for executing Git commands
// - ExecExecutor: Default CommandExecutor backed by os/exec
//
// # Usage
//
// Basic usage pattern:
//
//	repo := git.NewRepo(git.Config{RepoPath: "/path/to/repo"}, logger)
//
//	if err := repo.Stage(ctx, "file_1234.txt", false); err != nil {
//	    // Handle error
//	}
//
//	hash, err := repo.Commit(ctx, "Add caching functionality", when)
//	if err != nil {
//	    // Handle error
//	}
//
// # Command Execution
//
// All Git commands run through the CommandExecutor interface, allowing
// tests to substitute a mock and assert on the exact commands and
// environment the Repo builds. The default ExecExecutor captures
// stderr and wraps failures in an *errors.GitError carrying the
// errors.ErrGitOperationFailed sentinel.
package git
