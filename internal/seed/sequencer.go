package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/mkarren/gitseed/internal/common"
	"github.com/mkarren/gitseed/internal/constants"
	"github.com/mkarren/gitseed/internal/errors"
)

// Config contains configuration for a seeding run
type Config struct {
	// Repository path
	RepoPath string

	// Commit volume and spread
	Count      int
	WindowDays int

	// Output cadence
	ProgressEvery int

	// Delete is skipped while the working tree holds this many files or fewer
	MinKeepFiles int

	// Commit message vocabulary
	Messages Tables
}

// Validate sanity-checks the config and returns an error if something is wrong.
func (c *Config) Validate() error {
	if c.RepoPath == "" {
		return fmt.Errorf("RepoPath must not be empty")
	}
	if c.Count < 1 {
		return fmt.Errorf("Count must be >= 1 (got %d)", c.Count)
	}
	if c.WindowDays < 1 {
		return fmt.Errorf("WindowDays must be >= 1 (got %d)", c.WindowDays)
	}
	if c.ProgressEvery < 1 {
		return fmt.Errorf("ProgressEvery must be >= 1 (got %d)", c.ProgressEvery)
	}
	if c.MinKeepFiles < 0 {
		return fmt.Errorf("MinKeepFiles cannot be negative (got %d)", c.MinKeepFiles)
	}
	if len(c.Messages.Templates) == 0 {
		return fmt.Errorf("Messages must provide at least one template")
	}
	return nil
}

// Committer records working-tree mutations as commits. The sequencer never
// invokes git itself; everything version-control shaped goes through here.
type Committer interface {
	// Stage marks a path for inclusion in the next commit. Removal staging
	// is used when the path was deleted from the working tree.
	Stage(ctx context.Context, path string, removal bool) error

	// Commit records staged changes with the given message, overriding the
	// author and committer dates to at. Returns the new commit id.
	Commit(ctx context.Context, message string, at time.Time) (string, error)
}

// Logger alias to common.Logger
type Logger = common.Logger

// Stats tallies what a run actually committed.
type Stats struct {
	Created  int
	Modified int
	Deleted  int
	Failed   int

	FirstDate time.Time
	LastDate  time.Time
}

// Commits returns the number of commits successfully created.
func (s Stats) Commits() int {
	return s.Created + s.Modified + s.Deleted
}

func (s *Stats) record(kind OpKind, at time.Time) {
	switch kind {
	case OpCreate:
		s.Created++
	case OpModify:
		s.Modified++
	case OpDelete:
		s.Deleted++
	}

	if s.FirstDate.IsZero() {
		s.FirstDate = at
	}
	s.LastDate = at
}

// Sequencer fabricates randomly dated commits in an existing repository.
// Each iteration mutates the working tree with one weighted-random file
// operation and records it as a commit stamped with the next fabricated
// timestamp.
type Sequencer struct {
	config    Config
	logger    Logger
	committer Committer
	rng       *rand.Rand
	stats     Stats
	startTime time.Time
}

// NewSequencer creates a sequencer with the given collaborators. The rng is
// the only randomness source used, so a fixed-seed rng reproduces the run.
func NewSequencer(config Config, logger Logger, committer Committer, rng *rand.Rand) (*Sequencer, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfiguration, err.Error())
	}

	return &Sequencer{
		config:    config,
		logger:    logger,
		committer: committer,
		rng:       rng,
		startTime: time.Now(),
	}, nil
}

// Stats returns a copy of the run's tallies.
func (s *Sequencer) Stats() Stats {
	return s.stats
}

// Run generates the timestamp sequence and seeds one commit per timestamp,
// strictly in order. A failed iteration is logged and skipped; nothing is
// rolled back, so an uncommitted mutation is simply inherited by the next
// iteration. Cancellation stops the run between iterations.
func (s *Sequencer) Run(ctx context.Context) error {
	s.startTime = time.Now()

	timestamps := GenerateTimestamps(s.rng, s.config.Count, s.config.WindowDays)

	s.logger.StatusMessage("")
	s.logger.StatusMessage("Generating %d commits...", s.config.Count)
	s.logger.Info("Seeding %d commits across the trailing %d days in %s",
		s.config.Count, s.config.WindowDays, s.config.RepoPath)

	for i, at := range timestamps {
		select {
		case <-ctx.Done():
			s.logger.Info("Received cancellation signal, stopping after %d of %d commits",
				s.stats.Commits(), s.config.Count)
			return ctx.Err()
		default:
		}

		if err := s.createCommit(ctx, i+1, at); err != nil {
			s.stats.Failed++
			s.logger.Error("Error creating commit %d: %v", i+1, err)
			s.logger.WarningToUser("Error creating commit %d: %v", i+1, err)
			continue
		}

		if s.stats.Commits()%s.config.ProgressEvery == 0 {
			s.logger.StatusMessage("Progress: %d/%d commits created",
				s.stats.Commits(), s.config.Count)
		}
	}

	return nil
}

// createCommit performs one iteration: mutate the working tree, stage the
// affected path, and commit with the fabricated timestamp.
func (s *Sequencer) createCommit(ctx context.Context, index int, at time.Time) error {
	op, err := s.performFileOperation()
	if err != nil {
		return err
	}

	if err := s.committer.Stage(ctx, op.Path, op.Kind == OpDelete); err != nil {
		return err
	}

	message := s.config.Messages.Generate(s.rng)
	hash, err := s.committer.Commit(ctx, message, at)
	if err != nil {
		return err
	}

	s.stats.record(op.Kind, at)
	s.logger.Info("Commit %d: %s %s (%.8s) dated %s",
		index, op.Kind, op.Path, hash, at.Format(constants.DateFormat))

	return nil
}

// performFileOperation re-reads the working tree, picks the next operation
// and applies it, returning what was done.
func (s *Sequencer) performFileOperation() (Operation, error) {
	existing, err := ListFiles(s.config.RepoPath)
	if err != nil {
		return Operation{}, err
	}

	kind, target := chooseOperation(s.rng, existing, s.config.MinKeepFiles)

	switch kind {
	case OpCreate:
		name, err := CreateFile(s.rng, s.config.RepoPath)
		if err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpCreate, Path: name}, nil

	case OpModify:
		if err := ModifyFile(s.rng, s.config.RepoPath, target); err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpModify, Path: target}, nil

	default:
		if err := DeleteFile(s.config.RepoPath, target); err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpDelete, Path: target}, nil
	}
}

// PrintSummary prints a summary of the seeding run
func (s *Sequencer) PrintSummary() {
	duration := time.Since(s.startTime)
	minutes := int(duration.Minutes())
	seconds := int(duration.Seconds()) % 60

	s.logger.StatusMessage("")
	s.logger.StatusMessage("---------------------------------------------")
	s.logger.StatusMessage("📊 gitseed Run Summary")
	s.logger.StatusMessage("---------------------------------------------")
	s.logger.StatusMessage("✅ Commits created: %d of %d", s.stats.Commits(), s.config.Count)
	s.logger.StatusMessage("📄 Created: %d  Modified: %d  Deleted: %d",
		s.stats.Created, s.stats.Modified, s.stats.Deleted)

	if s.stats.Failed > 0 {
		s.logger.StatusMessage("⚠️  Failed iterations: %d", s.stats.Failed)
	}
	if !s.stats.FirstDate.IsZero() {
		s.logger.StatusMessage("📅 Date span: %s to %s",
			s.stats.FirstDate.Format(constants.DateFormat),
			s.stats.LastDate.Format(constants.DateFormat))
	}

	s.logger.StatusMessage("⏱️  Elapsed: %dm %ds", minutes, seconds)
	s.logger.StatusMessage("📂 Repository location: %s", s.config.RepoPath)
	s.logger.StatusMessage("")
	s.logger.StatusMessage("You can view the commits with: git log --oneline")
	s.logger.StatusMessage("---------------------------------------------")
}
