package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarren/gitseed/internal/constants"
)

func TestBannerPlain(t *testing.T) {
	banner := Banner(false)

	assert.Contains(t, banner, "_ _")
	assert.Contains(t, banner, constants.Tagline)
	assert.NotContains(t, banner, "\x1b[", "plain banner must not carry ANSI escapes")
}

func TestBannerStyled(t *testing.T) {
	banner := Banner(true)

	// Rendered text survives styling regardless of the terminal profile.
	assert.Contains(t, banner, constants.Tagline)
	for _, line := range strings.Split(strings.Trim(constants.Logo, "\n"), "\n") {
		assert.Contains(t, banner, strings.TrimRight(line, " "))
	}
}

func TestBannerTaglineCentered(t *testing.T) {
	banner := Banner(false)

	lines := strings.Split(banner, "\n")
	require.NotEmpty(t, lines)

	var taglineLine string
	for _, line := range lines {
		if strings.Contains(line, constants.Tagline) {
			taglineLine = line
			break
		}
	}
	require.NotEmpty(t, taglineLine)
	assert.True(t, strings.HasPrefix(taglineLine, " "), "tagline should be indented toward center")
}

func TestCentered(t *testing.T) {
	tests := map[string]struct {
		input string
		width int
		want  string
	}{
		"ShortString":  {input: "ab", width: 6, want: "  ab"},
		"ExactWidth":   {input: "abcdef", width: 6, want: "abcdef"},
		"WiderThanMax": {input: "abcdefgh", width: 6, want: "abcdefgh"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, centered(tc.input, tc.width))
		})
	}
}
