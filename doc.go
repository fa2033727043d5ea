// Package gitseed generates synthetic git commit history
//
// gitseed fills an existing repository with randomized commits spread across
// a trailing time window, producing a history that looks organically grown.
// It's especially valuable for preparing demo repositories, populating test
// fixtures for tools that read git history, or exercising dashboards and
// contribution graphs with realistic-looking data.
//
// Each run picks random timestamps inside the window, sorts them into
// chronological order, and replays file creations, modifications and
// deletions as dated commits against the repository.
//
// # Quick Start
//
//	# Navigate to a Git repository with at least one commit
//	cd /path/to/your/repo
//
//	# Seed it with default settings (100 commits over the last year)
//	gitseed --yes
//
//	# Inspect what was written
//	gitseed verify
//
// # Key Features
//
//   - Dated Commits: Author and committer dates are overridden per commit
//   - Weighted Operations: Creates, modifies and deletes files with tuned odds
//   - Reproducible Runs: A fixed --seed replays the same operation sequence
//   - Robust Error Handling: A failed iteration is logged and skipped, never fatal
//
// # Module Structure
//
// The module is organized into these packages:
//
//   - cmd/gitseed: Command-line interface
//   - internal/seed: Timestamp generation, operation selection and the run loop
//   - internal/git: Git operations through the command-line executable
//   - internal/history: Read-side inspection backing the verify command
//   - internal/config: Configuration files, environment and flag layering
//   - internal/lock: File-based locking mechanism
//   - internal/logger: Logging facilities
//   - internal/errors: Error handling utilities
//   - internal/style: Terminal styling and detection
//   - internal/constants: ASCII art and fixed values
//
// # Common Configuration Options
//
//	# Create 250 commits instead of the default 100
//	gitseed -n 250 --yes
//
//	# Restrict the window to the last 90 days
//	gitseed --days 90 --yes
//
//	# Replay a prior run exactly
//	gitseed --seed 1234 --yes
//
//	# Seed a repository other than the current directory
//	gitseed --repo /path/to/repo --yes
//
// # Design Philosophy
//
// gitseed is designed with the following principles in mind:
//
//   - Simple Usage: Provide a straightforward interface for common use cases
//   - Robustness: Handle errors gracefully and keep the run going
//   - Safety: Refuse to run without confirmation and never touch remotes
//   - Transparency: Make it clear what operations are being performed
//
// # Implementation Notes
//
// gitseed uses the command-line Git executable for writes rather than a Go
// Git library to ensure compatibility with all Git features and repository
// configurations. Commands are executed through an abstracted interface that
// can be replaced for testing. The verify command reads history in process
// through go-git, which avoids parsing log output.
//
// The application handles signals (such as SIGINT, SIGTERM, and SIGHUP) by
// stopping between iterations, so an interrupted run still reports a summary
// of the commits it made.
package gitseed
