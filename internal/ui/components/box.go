package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	borderIdle   = lipgloss.Color("#273540")
	borderActive = lipgloss.Color("#7f57b4")

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	frameTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f57b4")).
			Bold(true)

	errorFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7a2f3a")).
			Padding(0, 1)

	errorTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06c75"))
)

// boxWidth is ~70% of the terminal, between 40 and 80 columns.
func boxWidth(width int) int {
	if width <= 0 {
		return 0
	}
	w := width * 70 / 100
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	if w > width {
		w = width
	}
	return w
}

// BoxContentWidth returns the inner width of a Box rendered at width.
func BoxContentWidth(width int) int {
	w := boxWidth(width)
	// border 2, padding 2
	if w <= 4 {
		return 0
	}
	return w - 4
}

// Box renders content in a rounded frame, highlighted when active.
func Box(content string, width int, active bool) string {
	w := boxWidth(width)
	if w > 2 {
		// the border is drawn outside the styled width
		w -= 2
	}
	return frame(active).Width(w).Render(content)
}

// TitledBox renders a frame with the title set into the top border.
func TitledBox(title, content string, width int, active bool) string {
	boxed := Box(content, width, active)
	if title == "" {
		return boxed
	}
	if width <= 0 {
		// unsized frames grow to fit the title
		w := max(lipgloss.Width(content)+2, lipgloss.Width(title)+3)
		boxed = frame(active).Width(w).Render(content)
	}
	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	inner := lineWidth - 2
	label := truncateRunes(fmt.Sprintf(" %s ", title), inner-1)
	rest := inner - lipgloss.Width(label) - 1
	if rest < 0 {
		rest = 0
	}

	color := borderIdle
	if active {
		color = borderActive
	}
	edge := lipgloss.NewStyle().Foreground(color)
	lines[0] = edge.Render(border.TopLeft+border.Top) +
		frameTitleStyle.Render(label) +
		edge.Render(strings.Repeat(border.Top, rest)+border.TopRight)
	return strings.Join(lines, "\n")
}

// ErrorBox renders a red frame around a one-line message.
func ErrorBox(message string, width int) string {
	return errorFrameStyle.Width(maxInt(boxWidth(width)-2, 0)).Render(errorTextStyle.Render(SanitizeOneLine(message)))
}

// ClampTextWidth sanitizes text to one line and truncates it to width runes.
func ClampTextWidth(text string, width int) string {
	cleaned := SanitizeOneLine(text)
	if width <= 0 || lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	if width == 1 {
		return "…"
	}
	return truncateRunes(cleaned, width-1) + "…"
}

func frame(active bool) lipgloss.Style {
	if active {
		return frameStyle.BorderForeground(borderActive)
	}
	return frameStyle.BorderForeground(borderIdle)
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n >= max {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
