package history

import (
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/mkarren/gitseed/internal/errors"
)

// Report summarizes the commit history reachable from HEAD.
type Report struct {
	// CommitCount is the number of commits walked from HEAD.
	CommitCount int

	// EarliestAuthorDate and LatestAuthorDate bound the author-date span.
	EarliestAuthorDate time.Time
	LatestAuthorDate   time.Time

	// OutOfOrderPairs counts adjacent parent/child pairs whose author dates
	// run against graph order. Seeding always appends to HEAD without
	// reordering by fabricated date, so a nonzero count here is expected,
	// not a defect.
	OutOfOrderPairs int
}

// Inspect opens the repository at path and walks its history from HEAD,
// reporting what a seeding run left behind.
func Inspect(path string) (Report, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return Report{}, errors.Wrap(errors.ErrNotGitRepository, path)
		}
		return Report{}, err
	}

	head, err := repo.Head()
	if err != nil {
		return Report{}, errors.Wrap(errors.ErrNoCommits, err.Error())
	}

	iter, err := repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return Report{}, err
	}

	var report Report
	var childDate time.Time

	err = iter.ForEach(func(c *object.Commit) error {
		when := c.Author.When
		report.CommitCount++

		if report.EarliestAuthorDate.IsZero() || when.Before(report.EarliestAuthorDate) {
			report.EarliestAuthorDate = when
		}
		if when.After(report.LatestAuthorDate) {
			report.LatestAuthorDate = when
		}

		// The walk runs from HEAD backward, so the previously seen commit
		// is this one's graph child. A child dated before its parent means
		// the pair diverges from chronological order.
		if report.CommitCount > 1 && childDate.Before(when) {
			report.OutOfOrderPairs++
		}
		childDate = when
		return nil
	})
	if err != nil {
		return Report{}, err
	}

	return report, nil
}
