package constants

// Logo is the ASCII art banner printed at startup.
const Logo = `
        _ _                      _
   __ _(_) |_ ___  ___  ___  __| |
  / _' | | __/ __|/ _ \/ _ \/ _' |
 | (_| | | |_\__ \  __/  __/ (_| |
  \__, |_|\__|___/\___|\___|\__,_|
  |___/
`

// Tagline is the one-line description printed under the logo.
const Tagline = "Synthetic commit history for demo and test repositories"

// DateFormat is the layout for GIT_AUTHOR_DATE and GIT_COMMITTER_DATE.
// Git accepts this ISO-like form without a timezone suffix.
const DateFormat = "2006-01-02 15:04:05"

// DefaultCommitCount is the number of commits generated when -n is not given.
const DefaultCommitCount = 100

// DefaultWindowDays is the size of the trailing date window in days.
const DefaultWindowDays = 365

// DefaultProgressEvery is how often the progress line is emitted.
const DefaultProgressEvery = 50

// MinKeepFiles is the file-count floor below which deletes are never chosen.
const MinKeepFiles = 5
