package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/autotags/internal/tags"
	"github.com/gravitrone/autotags/internal/ui/components"
)

// --- Messages ---

type guardExpiredMsg struct{ id int }

// InputOptions are the presentation options of a TagInputModel.
type InputOptions[T tags.Named] struct {
	Placeholder       string
	AutoFocus         bool
	TagsOrientedBelow bool
	PageSize          int

	// RenderTags and RenderSuggestion replace the default renderers.
	RenderTags       func(selected []T, focused int) string
	RenderSuggestion func(s T, highlighted bool) string

	Clock func() time.Time
}

// timers turns controller timers into tea.Tick commands so the callback runs
// inside Update instead of on a timer goroutine.
type timers struct {
	next    int
	fns     map[int]func()
	pending []tea.Cmd
}

func (t *timers) schedule(d time.Duration, fn func()) {
	t.next++
	id := t.next
	t.fns[id] = fn
	t.pending = append(t.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return guardExpiredMsg{id: id}
	}))
}

func (t *timers) fire(id int) {
	if fn, ok := t.fns[id]; ok {
		delete(t.fns, id)
		fn()
	}
}

func (t *timers) drain() []tea.Cmd {
	cmds := t.pending
	t.pending = nil
	return cmds
}

// TagInputModel is the terminal tag input: a text field, the selected tag
// pills and a suggestion dropdown, driven by a tags.Controller.
type TagInputModel[T tags.Named] struct {
	ctrl     *tags.Controller[T]
	opts     InputOptions[T]
	input    textinput.Model
	dropdown *components.Dropdown
	results  []T
	timers   *timers

	// keys counts key presses other than backspace on an empty field, so
	// consecutive deleting backspaces share a sequence number.
	keys      int
	lastQuery string
	tagCursor int
	width     int
}

// NewTagInputModel builds the model. The controller's Schedule option is
// replaced so guard expiry is delivered as a bubbletea message.
func NewTagInputModel[T tags.Named](ctrlOpts tags.Options[T], opts InputOptions[T]) TagInputModel[T] {
	tm := &timers{fns: map[int]func(){}}
	ctrlOpts.Schedule = tm.schedule

	if opts.PageSize <= 0 {
		opts.PageSize = 6
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.RenderTags == nil {
		opts.RenderTags = RenderTags[T]
	}
	if opts.RenderSuggestion == nil {
		opts.RenderSuggestion = RenderSuggestion[T]
	}

	in := textinput.New()
	in.Prompt = "> "
	in.PromptStyle = PromptStyle
	in.TextStyle = NormalStyle
	in.PlaceholderStyle = MutedStyle
	in.Placeholder = opts.Placeholder

	m := TagInputModel[T]{
		ctrl:      tags.NewController(ctrlOpts),
		opts:      opts,
		input:     in,
		dropdown:  components.NewDropdown(opts.PageSize),
		timers:    tm,
		tagCursor: -1,
	}
	if opts.AutoFocus {
		m.input.Focus()
	}
	return m
}

func (m TagInputModel[T]) Init() tea.Cmd {
	m.ctrl.Reset()
	if m.input.Focused() {
		return textinput.Blink
	}
	return nil
}

// Controller exposes the interaction core.
func (m TagInputModel[T]) Controller() *tags.Controller[T] {
	return m.ctrl
}

// Query returns the current uncommitted text.
func (m TagInputModel[T]) Query() string {
	return m.ctrl.Query()
}

// Results returns the filtered suggestions currently offered.
func (m TagInputModel[T]) Results() []T {
	return m.results
}

// TagCursor returns the focused tag index, or -1 when the text field has focus.
func (m TagInputModel[T]) TagCursor() int {
	return m.tagCursor
}

// Focused reports whether the text field accepts keys.
func (m TagInputModel[T]) Focused() bool {
	return m.input.Focused()
}

// SetWidth sets the render width.
func (m *TagInputModel[T]) SetWidth(width int) {
	m.width = width
	m.input.Width = max(width-lipgloss.Width(m.input.Prompt)-1, 0)
}

// SetSuggestions replaces the candidate pool and refreshes the dropdown.
func (m *TagInputModel[T]) SetSuggestions(items []T) {
	m.ctrl.SetSuggestions(items)
	m.refresh(true)
}

// SetFilterData replaces the filter override and refreshes the dropdown.
func (m *TagInputModel[T]) SetFilterData(fn func(query string) ([]T, bool)) {
	m.ctrl.SetFilterData(fn)
	m.refresh(true)
}

func (m TagInputModel[T]) Update(msg tea.Msg) (TagInputModel[T], tea.Cmd) {
	switch msg := msg.(type) {
	case guardExpiredMsg:
		m.timers.fire(msg.id)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m TagInputModel[T]) handleKey(msg tea.KeyMsg) (TagInputModel[T], tea.Cmd) {
	if isQuit(msg) {
		return m, tea.Quit
	}
	if !m.input.Focused() {
		if isEnter(msg) {
			return m, m.input.Focus()
		}
		return m, nil
	}
	if m.tagCursor >= 0 {
		if handled := m.handleTagFocus(msg); handled {
			return m, nil
		}
	}

	switch {
	case isBack(msg):
		if m.ctrl.Query() == "" {
			return m, tea.Quit
		}
		m.ctrl.TextChanged("")
		return m.sync()
	case isDown(msg):
		m.dropdown.Down()
		return m, nil
	case isUp(msg):
		m.dropdown.Up()
		return m, nil
	case isTab(msg):
		if i, ok := m.pick(true); ok {
			m.ctrl.AddTag(m.results[i])
		}
		return m.sync()
	case isEnter(msg):
		if i, ok := m.pick(false); ok {
			m.ctrl.AddTag(m.results[i])
		} else {
			m.ctrl.Submit()
		}
		return m.sync()
	case isLeft(msg) && m.ctrl.Query() == "":
		if selected, ok := m.ctrl.Selected(); ok && len(selected) > 0 {
			m.tagCursor = len(selected) - 1
			return m, nil
		}
	}

	key := keyOf(msg)
	emptyBackspace := key == tags.KeyBackspace && m.ctrl.Query() == ""
	m.ctrl.KeyEvent(key, m.keys+1, m.opts.Clock())
	if !emptyBackspace {
		m.keys++
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.ctrl.TextChanged(after)
	}
	m, syncCmd := m.sync()
	return m, tea.Batch(cmd, syncCmd)
}

// handleTagFocus handles keys while a tag pill has focus. It returns false
// when the key should fall through to the text field.
func (m *TagInputModel[T]) handleTagFocus(msg tea.KeyMsg) bool {
	selected, _ := m.ctrl.Selected()
	switch {
	case isLeft(msg):
		if m.tagCursor > 0 {
			m.tagCursor--
		}
		return true
	case isRight(msg):
		m.tagCursor++
		if m.tagCursor >= len(selected) {
			m.tagCursor = -1
		}
		return true
	case isEnter(msg), isDelete(msg):
		m.ctrl.DeleteTag(m.tagCursor)
		selected, _ = m.ctrl.Selected()
		if m.tagCursor >= len(selected) {
			m.tagCursor = len(selected) - 1
		}
		return true
	case isBack(msg):
		m.tagCursor = -1
		return true
	}
	m.tagCursor = -1
	return false
}

// pick returns the dropdown index to confirm. With fallback the first result
// is used when nothing is highlighted.
func (m TagInputModel[T]) pick(fallback bool) (int, bool) {
	if !m.dropdown.Shown() || len(m.results) == 0 {
		return 0, false
	}
	if m.dropdown.Highlighted() {
		return m.dropdown.Selected(), true
	}
	return 0, fallback
}

// sync makes the text field mirror the controller's query and collects timer
// commands scheduled during the event.
func (m TagInputModel[T]) sync() (TagInputModel[T], tea.Cmd) {
	if q := m.ctrl.Query(); m.input.Value() != q {
		m.input.SetValue(q)
		m.input.CursorEnd()
	}
	m.refresh(false)
	return m, tea.Batch(m.timers.drain()...)
}

func (m *TagInputModel[T]) refresh(force bool) {
	q := m.ctrl.Query()
	if !force && q == m.lastQuery {
		return
	}
	m.lastQuery = q
	results, ok := m.ctrl.Filtered()
	if !ok {
		m.results = nil
		m.dropdown.Hide()
		return
	}
	m.results = results
	labels := make([]string, len(results))
	for i, r := range results {
		labels[i] = r.DisplayName()
	}
	m.dropdown.SetItems(labels)
}

func (m TagInputModel[T]) View() string {
	var parts []string
	tagLine := ""
	if selected, ok := m.ctrl.Selected(); ok {
		tagLine = m.opts.RenderTags(selected, m.tagCursor)
	}
	hasTags := tagLine != ""

	if hasTags && !m.opts.TagsOrientedBelow {
		parts = append(parts, tagLine)
	}
	parts = append(parts, m.input.View())
	if list := renderDropdown(m.dropdown, func(idx int, highlighted bool) string {
		return m.opts.RenderSuggestion(m.results[idx], highlighted)
	}); list != "" {
		parts = append(parts, list)
	}
	if hasTags && m.opts.TagsOrientedBelow {
		parts = append(parts, tagLine)
	}
	return strings.Join(parts, "\n")
}
