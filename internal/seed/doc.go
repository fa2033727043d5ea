// Package seed implements the commit sequencing core of gitseed.
//
// A Sequencer fabricates a sorted sequence of random timestamps inside the
// trailing window, then walks it one iteration at a time: pick a weighted
// file operation (create, modify, or delete), apply it to the working tree,
// and record it through a Committer as a commit stamped with the fabricated
// timestamp.
//
// # Core Components
//
// - Sequencer: owns the run loop, tallies, and summary
// - Committer: narrow interface to the version-control collaborator
// - Tables: commit message vocabulary with {component}/{feature} placeholders
//
// # Operation Policy
//
// An empty working tree forces a create. Otherwise operations are weighted
// 40% create, 40% modify, 20% delete, and delete falls back to modify while
// the tree holds MinKeepFiles files or fewer so a run never empties it.
//
// # Error Policy
//
// A failure inside one iteration is logged with its index and the loop
// moves on. Nothing is rolled back: a mutation whose commit failed stays in
// the working tree and is picked up by whichever later iteration stages it.
//
// All randomness flows through a single injected *rand.Rand, so a fixed
// seed reproduces the full sequence of dates, file names, and messages.
package seed
