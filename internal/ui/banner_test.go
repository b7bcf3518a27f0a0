package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/autotags/internal/ui/components"
)

func TestSplitLinesSplitsOnNewlines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitLines("a\nb\nc"))
	assert.Equal(t, []string{"", "a"}, splitLines("\na\n"))
}

func TestRenderBannerIncludesSubtitleAndNoOSC(t *testing.T) {
	out := RenderBanner()
	assert.NotContains(t, out, "\x1b]")

	clean := components.SanitizeText(out)
	assert.Contains(t, clean, "Tag Picker")
	assert.True(t, strings.Contains(clean, "─"))
}

func TestCenterBlockUniformPadsEveryLineEqually(t *testing.T) {
	out := centerBlockUniform("ab\nabcd", 10)
	lines := strings.Split(out, "\n")

	assert.Equal(t, "   ab", lines[0])
	assert.Equal(t, "   abcd", lines[1])
}

func TestCenterBlockUniformLeavesWideBlocks(t *testing.T) {
	in := strings.Repeat("x", 12)
	assert.Equal(t, in, centerBlockUniform(in, 10))
	assert.Equal(t, in, centerBlockUniform(in, 0))
	assert.Equal(t, 12, lipgloss.Width(centerBlockUniform(in, 10)))
}
