package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/autotags/internal/tags"
	"github.com/gravitrone/autotags/internal/ui/components"
)

const maxTagWidth = 32

// RenderTags draws one pill per tag. focused is the index under the tag
// cursor, or -1. An empty selection renders nothing.
func RenderTags[T tags.Named](selected []T, focused int) string {
	if len(selected) == 0 {
		return ""
	}
	pills := make([]string, 0, len(selected))
	for i, t := range selected {
		name := components.ClampTextWidth(t.DisplayName(), maxTagWidth)
		if i == focused {
			pills = append(pills, TagFocusedStyle.Render(name))
			continue
		}
		pills = append(pills, TagStyle.Render(name))
	}
	return strings.Join(pills, " ")
}

// RenderSuggestion draws one dropdown row.
func RenderSuggestion[T tags.Named](s T, highlighted bool) string {
	name := components.SanitizeOneLine(s.DisplayName())
	if highlighted {
		return SelectedStyle.Render("> " + name)
	}
	return NormalStyle.Render("  " + name)
}

// renderDropdown draws the visible page of the dropdown. render is the row
// renderer for a given absolute index.
func renderDropdown(d *components.Dropdown, render func(idx int, highlighted bool) string) string {
	if !d.Shown() {
		return ""
	}
	if len(d.Items) == 0 {
		return MutedStyle.Render("  no matches")
	}
	rows := make([]string, 0, d.PageSize+1)
	for rel := range d.Visible() {
		abs := d.RelToAbs(rel)
		rows = append(rows, render(abs, d.IsSelected(abs)))
	}
	if more := len(d.Items) - d.Offset - len(d.Visible()); more > 0 {
		rows = append(rows, MutedStyle.Render(fmt.Sprintf("  +%d more", more)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
