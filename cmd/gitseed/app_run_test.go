package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gitseedErrors "github.com/mkarren/gitseed/internal/errors"
)

func TestRunComplete(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t.TempDir())
	app.Config.AssumeYes = false

	var stdout, stderr bytes.Buffer
	app.Stdout = &stdout
	app.Stderr = &stderr

	err := app.Run(context.Background())
	require.NoError(t, err)

	locker := app.Locker.(*MockLocker)
	seeder := app.Seeder.(*MockSeeder)
	confirmer := app.Confirmer.(*MockConfirmer)

	assert.True(t, locker.AcquireCalled)
	assert.True(t, seeder.RunCalled)
	assert.True(t, seeder.SummaryCalled)
	assert.True(t, locker.ReleaseCalled, "lock must be released during cleanup")

	require.Len(t, confirmer.Asked, 1)
	assert.Contains(t, confirmer.Asked[0], "100 commits")
	assert.Contains(t, confirmer.Asked[0], app.Config.RepoPath)
}

func TestRunShowsBanner(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t.TempDir())
	app.Config.Quiet = false

	var stdout bytes.Buffer
	app.Stdout = &stdout

	err := app.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), `__ _(_)`)
	assert.Contains(t, stdout.String(), "Synthetic commit history")
}

func TestRunQuietSuppressesBanner(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t.TempDir())

	var stdout bytes.Buffer
	app.Stdout = &stdout

	err := app.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, stdout.String())
}

func TestRunWithMissingGitCommand(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t.TempDir())
	app.execLookPath = func(string) (string, error) {
		return "", errors.New("not found")
	}

	var stderr bytes.Buffer
	app.Stderr = &stderr

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, gitseedErrors.ErrGitNotFound)
	assert.Contains(t, stderr.String(), "Please install it")

	assert.False(t, app.Seeder.(*MockSeeder).RunCalled)
}

func TestRunWithNonRepositoryPath(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t.TempDir())
	app.isRepository = func(string) bool {
		return false
	}

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, gitseedErrors.ErrNotGitRepository)
	assert.False(t, app.Seeder.(*MockSeeder).RunCalled)
}

func TestRunWithEmptyRepository(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t.TempDir())
	app.hasHead = func(context.Context, string) bool {
		return false
	}

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, gitseedErrors.ErrNoCommits)
	assert.Contains(t, err.Error(), "initial commit")
	assert.False(t, app.Seeder.(*MockSeeder).RunCalled)
}

func TestRunDeclinedConfirmation(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t.TempDir())
	app.Config.AssumeYes = false
	app.Confirmer = &MockConfirmer{Answer: false}

	var stderr bytes.Buffer
	app.Stderr = &stderr

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, gitseedErrors.ErrSeedingDeclined)
	assert.Contains(t, stderr.String(), "--yes")

	assert.False(t, app.Locker.(*MockLocker).AcquireCalled, "declined run must not take the lock")
	assert.False(t, app.Seeder.(*MockSeeder).RunCalled)
}

func TestRunAssumeYesSkipsPrompt(t *testing.T) {
	t.Parallel()

	// The confirmer would say no, but --yes means it is never consulted
	app := NewTestApp(t.TempDir())
	app.Confirmer = &MockConfirmer{Answer: false}

	err := app.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, app.Confirmer.(*MockConfirmer).Asked)
	assert.True(t, app.Seeder.(*MockSeeder).RunCalled)
}

func TestRunNonInteractiveWithoutYesRefuses(t *testing.T) {
	t.Parallel()

	// No Confirmer injected: Initialize wires the declining one when stdin
	// is not a terminal
	app := NewTestApp(t.TempDir())
	app.Config.AssumeYes = false
	app.Confirmer = nil
	app.stdinIsTerminal = func() bool {
		return false
	}

	var stderr bytes.Buffer
	app.Stderr = &stderr

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, gitseedErrors.ErrSeedingDeclined)
	assert.IsType(t, DeclineConfirmer{}, app.Confirmer)
	assert.False(t, app.Seeder.(*MockSeeder).RunCalled)
}

func TestRunWithLockAcquisitionFailure(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t.TempDir())
	app.Locker = &MockLocker{AcquireErr: errors.New("flock failed")}

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, gitseedErrors.ErrLockAcquisitionFailure)
	assert.False(t, app.Seeder.(*MockSeeder).RunCalled)
}

func TestRunWithLockAlreadyHeld(t *testing.T) {
	t.Parallel()

	held := gitseedErrors.NewLockError("/tmp/gitseed-x.lock", 4242, gitseedErrors.ErrAlreadyRunning)

	app := NewTestApp(t.TempDir())
	app.Locker = &MockLocker{AcquireErr: held}

	err := app.Run(context.Background())
	// Already-wrapped lock errors pass through undoubled
	assert.ErrorIs(t, err, gitseedErrors.ErrAlreadyRunning)
	assert.NotErrorIs(t, err, gitseedErrors.ErrLockAcquisitionFailure)
}

func TestRunSeederFailurePropagates(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t.TempDir())
	app.Seeder = &MockSeeder{RunErr: errors.New("seeding blew up")}

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seeding blew up")

	seeder := app.Seeder.(*MockSeeder)
	assert.True(t, seeder.SummaryCalled, "summary prints even for a failed run")
	assert.True(t, app.Locker.(*MockLocker).ReleaseCalled)
}

func TestRunCancellationIsNotAnError(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t.TempDir())
	app.Seeder = &MockSeeder{RunErr: context.Canceled}

	err := app.Run(context.Background())
	assert.NoError(t, err, "an interrupted run still exits cleanly")
	assert.True(t, app.Seeder.(*MockSeeder).SummaryCalled)
}

func TestRunInvalidConfiguration(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t.TempDir())
	app.Config.Count = 0

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, gitseedErrors.ErrInvalidConfiguration)
	assert.False(t, app.Seeder.(*MockSeeder).RunCalled)
}
