// Package style centralizes gitseed's terminal styling: the lipgloss
// style set, the startup banner, and terminal detection for deciding when
// styling applies at all.
package style
