package main

import (
	"context"
	"fmt"

	"github.com/mkarren/gitseed/internal/config"
)

// MockSeeder implements the Seeder interface for testing
type MockSeeder struct {
	RunErr        error
	RunCalled     bool
	SummaryCalled bool
}

func (m *MockSeeder) Run(ctx context.Context) error {
	m.RunCalled = true
	return m.RunErr
}

func (m *MockSeeder) PrintSummary() {
	m.SummaryCalled = true
}

// MockLocker implements the Locker interface for testing
type MockLocker struct {
	AcquireErr    error
	ReleaseErr    error
	AcquireCalled bool
	ReleaseCalled bool
}

func (m *MockLocker) Acquire() error {
	m.AcquireCalled = true
	return m.AcquireErr
}

func (m *MockLocker) Release() error {
	m.ReleaseCalled = true
	return m.ReleaseErr
}

// MockConfirmer implements the Confirmer interface for testing
type MockConfirmer struct {
	Answer bool
	Asked  []string
}

func (m *MockConfirmer) Confirm(question string) bool {
	m.Asked = append(m.Asked, question)
	return m.Answer
}

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	InfoCalled          bool
	InfoToUserCalled    bool
	WarningCalled       bool
	WarningToUserCalled bool
	ErrorCalled         bool
	SuccessCalled       bool
	StatusCalled        bool
	LastMessage         string
}

func (m *MockLogger) Info(format string, args ...interface{}) {
	m.InfoCalled = true
	m.LastMessage = fmt.Sprintf(format, args...)
}

func (m *MockLogger) Warning(format string, args ...interface{}) {
	m.WarningCalled = true
	m.LastMessage = fmt.Sprintf(format, args...)
}

func (m *MockLogger) Error(format string, args ...interface{}) {
	m.ErrorCalled = true
	m.LastMessage = fmt.Sprintf(format, args...)
}

func (m *MockLogger) InfoToUser(format string, args ...interface{}) {
	m.InfoToUserCalled = true
	m.LastMessage = fmt.Sprintf(format, args...)
}

func (m *MockLogger) WarningToUser(format string, args ...interface{}) {
	m.WarningToUserCalled = true
	m.LastMessage = fmt.Sprintf(format, args...)
}

func (m *MockLogger) Success(format string, args ...interface{}) {
	m.SuccessCalled = true
	m.LastMessage = fmt.Sprintf(format, args...)
}

func (m *MockLogger) StatusMessage(format string, args ...interface{}) {
	m.StatusCalled = true
	m.LastMessage = fmt.Sprintf(format, args...)
}

// NewTestApp creates an App wired for tests: mocked collaborators, buffered
// output and a temp repository path, so a full Run touches nothing real.
// Individual tests override the pieces they exercise.
func NewTestApp(repoPath string) *App {
	cfg := config.New()
	cfg.RepoPath = repoPath
	cfg.Quiet = true
	cfg.AssumeYes = true

	return NewApp(AppOptions{
		Config:    cfg,
		Logger:    &MockLogger{},
		Locker:    &MockLocker{},
		Seeder:    &MockSeeder{},
		Confirmer: &MockConfirmer{Answer: true},
		ExecLookPath: func(string) (string, error) {
			return "/usr/bin/git", nil
		},
		IsRepository: func(string) bool {
			return true
		},
		HasHead: func(context.Context, string) bool {
			return true
		},
		StdinIsTerminal: func() bool {
			return true
		},
	})
}
