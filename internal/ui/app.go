package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/gravitrone/autotags/internal/api"
	"github.com/gravitrone/autotags/internal/catalog"
	"github.com/gravitrone/autotags/internal/config"
	"github.com/gravitrone/autotags/internal/logger"
	"github.com/gravitrone/autotags/internal/tags"
	"github.com/gravitrone/autotags/internal/ui/components"
)

// suggestionLimit caps how many server tags are fetched at startup.
const suggestionLimit = 500

// --- Messages ---

type errMsg struct{ err error }
type suggestionsLoadedMsg struct{ items []tags.Item }
type clearToastMsg struct{}

type appToast struct {
	level string
	text  string
}

// App is the root model of the tag picker.
type App struct {
	host   *Host
	input  TagInputModel[tags.Item]
	client *api.Client
	log    *log.Logger

	pool    []tags.Item
	prefix  bool
	loading bool
	err     string
	toast   *appToast

	width  int
	height int
}

// NewApp wires the host, the local suggestion pool and the optional tag
// service into a picker configured by cfg.
func NewApp(cfg *config.Config, host *Host, pool []tags.Item, client *api.Client, lg *log.Logger) App {
	if cfg == nil {
		cfg = config.Default()
	}
	if lg == nil {
		lg = logger.Discard()
	}
	if host == nil {
		host = NewHost(nil, client, lg)
	}

	opts := host.Options()
	opts.Suggestions = pool
	opts.CreateTagOnSpace = cfg.CreateTagOnSpace
	opts.BackspaceDebounce = cfg.BackspaceDebounce()
	opts.SubmitGuard = cfg.SubmitGuard()
	if cfg.PrefixMatch() && pool != nil {
		opts.FilterData = catalog.NewPrefixIndex(pool).Filter
	}

	input := NewTagInputModel(opts, InputOptions[tags.Item]{
		Placeholder:       cfg.Placeholder,
		AutoFocus:         cfg.Focus(),
		TagsOrientedBelow: cfg.TagsOrientedBelow,
	})

	return App{
		host:    host,
		input:   input,
		client:  client,
		log:     lg,
		pool:    pool,
		prefix:  cfg.PrefixMatch(),
		loading: client != nil,
	}
}

// Tags returns the host's current selection.
func (a App) Tags() []tags.Item {
	return a.host.Tags()
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.input.Init()}
	if a.client != nil {
		cmds = append(cmds, loadSuggestions(a.client))
	}
	return tea.Batch(cmds...)
}

func loadSuggestions(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		items, err := client.Suggestions(suggestionLimit)
		if err != nil {
			return errMsg{err}
		}
		return suggestionsLoadedMsg{items}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.SetWidth(components.BoxContentWidth(msg.Width))
		return a, nil

	case suggestionsLoadedMsg:
		a.loading = false
		a.pool = catalog.Merge(a.pool, msg.items)
		a.input.SetSuggestions(a.pool)
		if a.prefix {
			a.input.SetFilterData(catalog.NewPrefixIndex(a.pool).Filter)
		}
		a.log.Info("suggestions loaded", "count", len(msg.items), "pool", len(a.pool))
		return a, nil

	case tagPersistedMsg:
		a.host.Persisted(msg.tag)
		a.log.Info("tag saved", "name", msg.tag.Name, "id", msg.tag.ID)
		return a, a.setToast("success", fmt.Sprintf("saved %q", msg.tag.Name))

	case tagPersistFailedMsg:
		a.log.Warn("tag not saved", "name", msg.name, "err", msg.err)
		return a, a.setToast("error", fmt.Sprintf("could not save %q: %v", msg.name, msg.err))

	case errMsg:
		a.loading = false
		a.err = msg.err.Error()
		a.log.Warn("request failed", "err", msg.err)
		return a, nil

	case clearToastMsg:
		a.toast = nil
		return a, nil

	case tea.KeyMsg:
		a.err = ""
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	cmds = append(cmds, cmd)
	cmds = append(cmds, a.host.Drain()...)
	return a, tea.Batch(cmds...)
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	if a.toast.level == "error" {
		return components.ErrorBox(a.toast.text, a.width)
	}
	return components.TitledBox("Saved", a.toast.text, a.width, false)
}

func (a App) statusHints() []string {
	if a.input.TagCursor() >= 0 {
		return []string{
			components.Hint("←/→", "move"),
			components.Hint("enter", "remove"),
			components.Hint("esc", "back"),
		}
	}
	if !a.input.Focused() {
		return []string{
			components.Hint("enter", "focus"),
			components.Hint("ctrl+c", "quit"),
		}
	}
	return []string{
		components.Hint("↑/↓", "move"),
		components.Hint("tab", "accept"),
		components.Hint("enter", "add"),
		components.Hint("⌫", "remove last"),
		components.Hint("←", "tags"),
		components.Hint("esc", "done"),
	}
}

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(), a.width)

	title := "Tags"
	switch {
	case a.loading:
		title = "Tags (loading suggestions)"
	case len(a.Tags()) == 0:
		title = "Tags (none selected)"
	}
	content := centerBlockUniform(components.TitledBox(title, a.input.View(), a.width, a.input.Focused()), a.width)

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox(a.err, a.width), a.width)
	} else if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s%s", banner, content, hints, feedback)
}
