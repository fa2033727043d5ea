package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/exec"
	"time"

	"github.com/mkarren/gitseed/internal/common"
	"github.com/mkarren/gitseed/internal/config"
	internalErrors "github.com/mkarren/gitseed/internal/errors"
	"github.com/mkarren/gitseed/internal/git"
	"github.com/mkarren/gitseed/internal/lock"
	"github.com/mkarren/gitseed/internal/logger"
	"github.com/mkarren/gitseed/internal/seed"
	"github.com/mkarren/gitseed/internal/style"
)

// Seeder drives the commit fabrication loop
type Seeder interface {
	Run(ctx context.Context) error
	PrintSummary()
}

// Locker manages file locking
type Locker interface {
	Acquire() error
	Release() error
}

// Logger alias to common.Logger
type Logger = common.Logger

// AppOptions contains app configuration and dependencies
type AppOptions struct {
	// Required
	Config *config.Config

	// Optional components
	Logger    Logger
	Locker    Locker
	Seeder    Seeder
	Confirmer Confirmer

	// I/O dependencies
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	ExecLookPath    func(file string) (string, error)
	IsRepository    func(path string) bool
	HasHead         func(ctx context.Context, path string) bool
	StdinIsTerminal func() bool
}

// App is the main gitseed application
type App struct {
	Config    *config.Config
	Logger    Logger
	Locker    Locker
	Seeder    Seeder
	Confirmer Confirmer

	// I/O streams
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	execLookPath    func(file string) (string, error)
	isRepository    func(path string) bool
	hasHead         func(ctx context.Context, path string) bool
	stdinIsTerminal func() bool
}

// NewDefaultApp creates an App with standard dependencies
func NewDefaultApp(cfg *config.Config) *App {
	return NewApp(AppOptions{
		Config: cfg,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
}

// NewApp creates an App with custom dependencies
func NewApp(opts AppOptions) *App {
	if opts.Config == nil {
		panic("Config is required in AppOptions")
	}

	app := &App{
		Config:          opts.Config,
		Logger:          opts.Logger,
		Locker:          opts.Locker,
		Seeder:          opts.Seeder,
		Confirmer:       opts.Confirmer,
		Stdout:          opts.Stdout,
		Stderr:          opts.Stderr,
		execLookPath:    opts.ExecLookPath,
		isRepository:    opts.IsRepository,
		hasHead:         opts.HasHead,
		stdinIsTerminal: opts.StdinIsTerminal,
	}

	// Set defaults for nil dependencies
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.execLookPath == nil {
		app.execLookPath = exec.LookPath
	}
	if app.isRepository == nil {
		app.isRepository = git.IsRepository
	}
	if app.hasHead == nil {
		app.hasHead = git.HasHead
	}
	if app.stdinIsTerminal == nil {
		app.stdinIsTerminal = func() bool {
			return style.IsTerminal(os.Stdin)
		}
	}

	return app
}

// Initialize sets up components not provided during construction
func (a *App) Initialize() error {
	if err := a.Config.Finalize(); err != nil {
		// Config.Finalize() already returns a properly wrapped error,
		// so we don't wrap it again if it's already our error type
		if internalErrors.Is(err, internalErrors.ErrInvalidConfiguration) {
			return err
		}
		return internalErrors.Wrap(internalErrors.ErrInvalidConfiguration, err.Error())
	}

	if a.Logger == nil {
		a.Logger = logger.New(a.Config.Debug, a.Config.LogFile, !a.Config.Quiet)
	}

	if a.Locker == nil {
		locker, err := lock.New(a.Config.RepoPath)
		if err != nil {
			return internalErrors.Wrap(err, "failed to initialize lock")
		}
		a.Locker = locker
	}

	if a.Confirmer == nil {
		if a.stdinIsTerminal() {
			a.Confirmer = NewPromptConfirmer()
		} else {
			// A piped invocation must never hang on a prompt
			a.Confirmer = DeclineConfirmer{}
		}
	}

	if a.Seeder == nil {
		repo := git.NewRepo(git.Config{
			RepoPath:    a.Config.RepoPath,
			AuthorName:  a.Config.Author.Name,
			AuthorEmail: a.Config.Author.Email,
		}, a.Logger)

		seedConfig := seed.Config{
			RepoPath:      a.Config.RepoPath,
			Count:         a.Config.Count,
			WindowDays:    a.Config.WindowDays,
			ProgressEvery: a.Config.ProgressEvery,
			MinKeepFiles:  a.Config.MinKeepFiles,
			Messages:      a.messageTables(),
		}

		rng := rand.New(rand.NewSource(a.rngSeed()))
		sequencer, err := seed.NewSequencer(seedConfig, a.Logger, repo, rng)
		if err != nil {
			return fmt.Errorf("failed to create sequencer: %w", err)
		}
		a.Seeder = sequencer
	}

	return nil
}

// rngSeed returns the configured seed when set, otherwise the wall clock so
// every run differs.
func (a *App) rngSeed() int64 {
	if a.Config.Seed != 0 {
		return a.Config.Seed
	}
	return time.Now().UnixNano()
}

// messageTables overlays configured message tables onto the built-in ones.
// Omitted lists keep their defaults, so a config file can swap just the
// templates without restating every word list.
func (a *App) messageTables() seed.Tables {
	tables := seed.DefaultTables()
	if len(a.Config.Messages.Templates) > 0 {
		tables.Templates = a.Config.Messages.Templates
	}
	if len(a.Config.Messages.Components) > 0 {
		tables.Components = a.Config.Messages.Components
	}
	if len(a.Config.Messages.Features) > 0 {
		tables.Features = a.Config.Messages.Features
	}
	return tables
}

// Run executes the application with the given context
func (a *App) Run(ctx context.Context) error {
	// Ensure we always clean up logger / lock, even when initialization
	// stops partway through
	defer func() {
		if err := a.Close(); err != nil {
			_, _ = fmt.Fprintf(a.Stderr, "❌ Error during cleanup: %v\n", err)
		}
	}()

	if err := a.Initialize(); err != nil {
		return err
	}

	if !a.Config.Quiet {
		a.ShowBanner()
	}

	// Verify prerequisites
	if err := a.checkRequiredCommands(); err != nil {
		_, _ = fmt.Fprintf(a.Stderr, "❌ Error: %v. Please install it and try again.\n", err)
		return err
	}

	if !a.isRepository(a.Config.RepoPath) {
		return internalErrors.ErrNotGitRepository
	}
	if !a.hasHead(ctx, a.Config.RepoPath) {
		return internalErrors.Wrap(internalErrors.ErrNoCommits,
			"gitseed appends to existing history; create an initial commit first")
	}
	a.Logger.Info("Git repository verified")

	if !a.Config.AssumeYes {
		question := fmt.Sprintf("Fabricate %d commits in %s?", a.Config.Count, a.Config.RepoPath)
		if !a.Confirmer.Confirm(question) {
			_, _ = fmt.Fprintln(a.Stderr, "Aborted. Pass --yes to seed without confirmation.")
			return internalErrors.ErrSeedingDeclined
		}
	}

	// Acquire resource lock
	if err := a.Locker.Acquire(); err != nil {
		// Locker.Acquire() already returns a properly wrapped error
		if internalErrors.Is(err, internalErrors.ErrAlreadyRunning) {
			return err
		}
		return internalErrors.Wrap(internalErrors.ErrLockAcquisitionFailure, err.Error())
	}

	err := a.Seeder.Run(ctx)

	// The summary covers whatever was committed, interrupted or not
	a.Seeder.PrintSummary()

	// Interruption is a normal stop path; what was seeded stands
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// ShowBanner displays the ASCII art logo and tagline, styled when stdout is
// a terminal
func (a *App) ShowBanner() {
	styled := false
	if f, ok := a.Stdout.(*os.File); ok {
		styled = style.IsTerminal(f)
	}
	_, _ = fmt.Fprintln(a.Stdout, style.Banner(styled))
}

// checkRequiredCommands verifies git is available in PATH
func (a *App) checkRequiredCommands() error {
	_, err := a.execLookPath("git")
	if err != nil {
		return internalErrors.ErrGitNotFound
	}
	return nil
}

// Close releases resources held by the App
func (a *App) Close() error {
	var errs []error

	// Release lock if it exists
	if a.Locker != nil {
		if err := a.Locker.Release(); err != nil {
			if a.Logger != nil {
				a.Logger.Error("Failed to release lock during cleanup: %v", err)
			} else {
				_, _ = fmt.Fprintf(a.Stderr, "❌ Failed to release lock during cleanup: %v\n", err)
			}
			errs = append(errs, err)
		}
	}

	if a.Logger != nil {
		if l, ok := a.Logger.(*logger.DefaultLogger); ok && l != nil {
			if err := l.Close(); err != nil {
				_, _ = fmt.Fprintf(a.Stderr, "❌ Failed to close logger: %v\n", err)
				errs = append(errs, err)
			}
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
