package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/gravitrone/autotags/internal/api"
	"github.com/gravitrone/autotags/internal/logger"
	"github.com/gravitrone/autotags/internal/tags"
)

// --- Messages ---

type tagPersistedMsg struct{ tag api.Tag }
type tagPersistFailedMsg struct {
	name string
	err  error
}

// Host owns the selected tags on behalf of the picker. The tag input only
// reads them and asks the host to add or remove entries.
type Host struct {
	selected []tags.Item
	client   *api.Client
	log      *log.Logger
	pending  []tea.Cmd
}

// NewHost creates a host seeded with initial tags. client may be nil, in
// which case custom tags are kept locally only.
func NewHost(initial []tags.Item, client *api.Client, lg *log.Logger) *Host {
	if lg == nil {
		lg = logger.Discard()
	}
	h := &Host{client: client, log: lg}
	for _, t := range initial {
		h.Add(t)
	}
	if h.selected == nil {
		h.selected = []tags.Item{}
	}
	return h
}

// Tags returns the current selection.
func (h *Host) Tags() []tags.Item {
	return h.selected
}

// Add appends a tag unless one with the same name is already selected.
func (h *Host) Add(t tags.Item) {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return
	}
	for _, existing := range h.selected {
		if strings.EqualFold(existing.Name, name) {
			h.log.Debug("tag already selected", "name", name)
			return
		}
	}
	t.Name = name
	h.selected = append(h.selected, t)
	h.log.Debug("tag added", "name", name, "count", len(h.selected))
}

// Delete removes the tag at index. Out of range indexes are ignored.
func (h *Host) Delete(index int) {
	if index < 0 || index >= len(h.selected) {
		h.log.Debug("delete ignored", "index", index, "count", len(h.selected))
		return
	}
	removed := h.selected[index]
	h.selected = append(h.selected[:index], h.selected[index+1:]...)
	h.log.Debug("tag removed", "name", removed.Name, "count", len(h.selected))
}

// CreateCustom adds a tag from typed text and queues its persistence when a
// tag service is configured.
func (h *Host) CreateCustom(text string) {
	name := strings.TrimSpace(text)
	before := len(h.selected)
	h.Add(tags.Item{Name: name})
	if len(h.selected) == before || h.client == nil {
		return
	}
	client := h.client
	h.pending = append(h.pending, func() tea.Msg {
		created, err := client.CreateTag(name)
		if err != nil {
			return tagPersistFailedMsg{name: name, err: err}
		}
		return tagPersistedMsg{tag: *created}
	})
}

// Persisted records the server id of a created tag.
func (h *Host) Persisted(t api.Tag) {
	for i := range h.selected {
		if strings.EqualFold(h.selected[i].Name, t.Name) && h.selected[i].ID == "" {
			h.selected[i].ID = t.ID
			return
		}
	}
}

// Drain returns and clears queued commands.
func (h *Host) Drain() []tea.Cmd {
	cmds := h.pending
	h.pending = nil
	return cmds
}

// Options wires the host callbacks into controller options.
func (h *Host) Options() tags.Options[tags.Item] {
	return tags.Options[tags.Item]{
		TagsSelected:       h.Tags,
		HandleAddition:     h.Add,
		HandleDelete:       h.Delete,
		OnCustomTagCreated: h.CreateCustom,
		Logger:             h.log,
	}
}
