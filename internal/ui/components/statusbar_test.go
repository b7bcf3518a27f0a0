package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHintIncludesKeyAndDesc(t *testing.T) {
	out := Hint("tab", "accept")
	assert.Contains(t, out, "tab")
	assert.Contains(t, out, "accept")
}

func TestStatusBarRendersHints(t *testing.T) {
	out := StatusBar([]string{Hint("ctrl+c", "quit"), Hint("enter", "add")}, 0)
	assert.Contains(t, out, "quit")
	assert.Contains(t, out, "add")
}

func TestStatusBarEmpty(t *testing.T) {
	assert.Equal(t, "", StatusBar(nil, 80))
}

func TestWrapSegmentsWrapsWhenNarrow(t *testing.T) {
	segments := []string{"123456", "abcdef", "ghijkl"}
	rows := wrapSegments(segments, 10)
	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.LessOrEqual(t, lipgloss.Width(row), 10)
	}
}

func TestWrapSegmentsKeepsRowWhenWide(t *testing.T) {
	rows := wrapSegments([]string{"ab", "cd"}, 10)
	assert.Equal(t, []string{"abcd"}, rows)
}
