package style

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/mkarren/gitseed/internal/constants"
)

// Adaptive colors so output stays readable on light and dark terminals.
var (
	AccentColor = lipgloss.AdaptiveColor{
		Light: "#1A7F37", // Green
		Dark:  "#57D977",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Gray
		Dark:  "#A0A8B0",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#B58900", // Amber
		Dark:  "#FFD54F",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}
)

// Base styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)
)

// bannerWidth is the assumed terminal width the tagline centers within.
const bannerWidth = 80

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Banner renders the startup banner. Styling is applied only when styled is
// true; piped output gets the plain text.
func Banner(styled bool) string {
	logo := strings.Trim(constants.Logo, "\n")
	tagline := centered(constants.Tagline, bannerWidth)

	if !styled {
		return logo + "\n\n" + tagline + "\n"
	}

	return LogoStyle.Render(logo) + "\n\n" + TaglineStyle.Render(tagline) + "\n"
}

func centered(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}
