// Package history reads a repository's commit graph back through go-git,
// without shelling out, to report what a seeding run produced: commit
// count, author-date span, and how far graph order diverges from
// chronological order.
package history
