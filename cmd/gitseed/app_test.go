package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarren/gitseed/internal/config"
	gitseedErrors "github.com/mkarren/gitseed/internal/errors"
)

func TestAppCoreScenarios(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		setup    func(t *testing.T) *App
		validate func(t *testing.T, app *App)
	}{
		"NewDefaultApp": {
			setup: func(t *testing.T) *App {
				cfg := config.New()
				cfg.RepoPath = t.TempDir()
				return NewDefaultApp(cfg)
			},
			validate: func(t *testing.T, app *App) {
				assert.NotNil(t, app.Stdout)
				assert.NotNil(t, app.Stderr)
				assert.NotNil(t, app.execLookPath)
				assert.NotNil(t, app.isRepository)
				assert.NotNil(t, app.hasHead)
				assert.NotNil(t, app.stdinIsTerminal)
			},
		},
		"NewAppWithMinimalOptions": {
			setup: func(t *testing.T) *App {
				cfg := config.New()
				cfg.RepoPath = t.TempDir()
				return NewApp(AppOptions{Config: cfg})
			},
			validate: func(t *testing.T, app *App) {
				assert.NotNil(t, app.Stdout)
				assert.NotNil(t, app.Stderr)
				assert.NotNil(t, app.execLookPath)
				assert.NotNil(t, app.isRepository)
				assert.NotNil(t, app.hasHead)
				assert.NotNil(t, app.stdinIsTerminal)
			},
		},
		"ShowBanner": {
			setup: func(t *testing.T) *App {
				return NewTestApp(t.TempDir())
			},
			validate: func(t *testing.T, app *App) {
				var stdout bytes.Buffer
				app.Stdout = &stdout

				app.ShowBanner()

				output := stdout.String()
				assert.Contains(t, output, `__ _(_)`)
				assert.Contains(t, output, "Synthetic commit history for demo and test repositories")
				// Buffers are not terminals, so the banner stays unstyled
				assert.NotContains(t, output, "\x1b[")
			},
		},
		"CheckRequiredCommandsSuccess": {
			setup: func(t *testing.T) *App {
				app := NewTestApp(t.TempDir())
				app.execLookPath = func(file string) (string, error) {
					return "/usr/bin/" + file, nil
				}
				return app
			},
			validate: func(t *testing.T, app *App) {
				assert.NoError(t, app.checkRequiredCommands())
			},
		},
		"CheckRequiredCommandsFailure": {
			setup: func(t *testing.T) *App {
				app := NewTestApp(t.TempDir())
				app.execLookPath = func(string) (string, error) {
					return "", errors.New("command not found")
				}
				return app
			},
			validate: func(t *testing.T, app *App) {
				err := app.checkRequiredCommands()
				assert.ErrorIs(t, err, gitseedErrors.ErrGitNotFound)
			},
		},
	}

	for name, test := range tests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			app := test.setup(t)
			test.validate(t, app)
		})
	}
}

func TestNewAppRequiresConfig(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewApp(AppOptions{})
	})
}

func TestCloseReleasesLock(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t.TempDir())

	require.NoError(t, app.Close())
	assert.True(t, app.Locker.(*MockLocker).ReleaseCalled)
}

func TestCloseReportsReleaseFailure(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t.TempDir())
	app.Locker = &MockLocker{ReleaseErr: errors.New("release failed")}

	err := app.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "release failed")

	// The failure also reaches the logger
	assert.True(t, app.Logger.(*MockLogger).ErrorCalled)
}

func TestCloseWithoutLoggerWritesToStderr(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t.TempDir())
	app.Logger = nil
	app.Locker = &MockLocker{ReleaseErr: errors.New("release failed")}

	var stderr bytes.Buffer
	app.Stderr = &stderr

	err := app.Close()
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "release failed")
}
