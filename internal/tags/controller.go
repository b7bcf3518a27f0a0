package tags

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// DefaultBackspaceDebounce is the window after a non-deletion key in which
	// a backspace is treated as a spurious duplicate.
	DefaultBackspaceDebounce = 20 * time.Millisecond
	// DefaultSubmitGuard is how long text changes are ignored after a submit.
	DefaultSubmitGuard = 30 * time.Millisecond
)

const createOnSpaceMisconfigured = "When enabling CreateTagOnSpace, you must provide an OnCustomTagCreated function"

// Key identifies the key reported to KeyEvent.
type Key string

// KeyBackspace is the only key the controller treats specially.
const KeyBackspace Key = "backspace"

// Options configures a Controller. Strategy functions left nil fall back to
// the default behavior.
type Options[T Named] struct {
	Suggestions  []T
	TagsSelected func() []T

	FilterData   func(query string) ([]T, bool)
	OnChangeText func(text string)

	CreateTagOnSpace   bool
	OnCustomTagCreated func(text string)

	HandleAddition func(tag T)
	HandleDelete   func(index int)

	// AllowBackspace is accepted for compatibility and has no effect:
	// deleting the last tag on backspace with an empty query is always on.
	AllowBackspace bool

	BackspaceDebounce time.Duration
	SubmitGuard       time.Duration
	Schedule          func(d time.Duration, fn func())

	Logger *log.Logger
}

// Controller is the interaction state machine of a tag input. It is not safe
// for concurrent use; every method must run on the UI event loop. Only the
// submit guard may be cleared from another goroutine, by the Schedule
// callback.
type Controller[T Named] struct {
	opts Options[T]

	query string

	lastKeyAt  time.Time
	eventCount int

	guardMu    sync.Mutex
	submitting bool
	submitGen  uint64
}

// NewController builds a controller with defaults applied.
func NewController[T Named](opts Options[T]) *Controller[T] {
	if opts.BackspaceDebounce <= 0 {
		opts.BackspaceDebounce = DefaultBackspaceDebounce
	}
	if opts.SubmitGuard <= 0 {
		opts.SubmitGuard = DefaultSubmitGuard
	}
	if opts.Schedule == nil {
		opts.Schedule = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Controller[T]{opts: opts}
}

// Reset restores the mount-time state.
func (c *Controller[T]) Reset() {
	c.query = ""
	c.lastKeyAt = time.Time{}
	c.eventCount = 0
	c.guardMu.Lock()
	c.submitting = false
	c.submitGen++
	c.guardMu.Unlock()
}

// Query returns the current uncommitted text.
func (c *Controller[T]) Query() string {
	return c.query
}

// Submitting reports whether the post-submit guard is active.
func (c *Controller[T]) Submitting() bool {
	c.guardMu.Lock()
	defer c.guardMu.Unlock()
	return c.submitting
}

// SetSuggestions replaces the candidate pool. A nil slice means no pool.
func (c *Controller[T]) SetSuggestions(items []T) {
	c.opts.Suggestions = items
}

// SetFilterData replaces the filter override. nil restores the default filter.
func (c *Controller[T]) SetFilterData(fn func(query string) ([]T, bool)) {
	c.opts.FilterData = fn
}

// DeleteTag forwards a deletion request for index to the host.
func (c *Controller[T]) DeleteTag(index int) {
	if c.opts.HandleDelete != nil {
		c.opts.HandleDelete(index)
	}
}

// Selected returns the host's selected tags and whether the host supplies them.
func (c *Controller[T]) Selected() ([]T, bool) {
	if c.opts.TagsSelected == nil {
		return nil, false
	}
	return c.opts.TagsSelected(), true
}

// TextChanged handles a text change reported by the input.
func (c *Controller[T]) TextChanged(text string) {
	if c.Submitting() {
		return
	}
	if c.opts.OnChangeText != nil {
		c.opts.OnChangeText(text)
		return
	}
	if c.opts.CreateTagOnSpace {
		if c.opts.OnCustomTagCreated != nil {
			if len(text) > 1 && strings.HasSuffix(text, " ") {
				c.query = ""
				c.opts.OnCustomTagCreated(strings.TrimSpace(text))
				return
			}
		} else {
			c.opts.Logger.Error(createOnSpaceMisconfigured)
		}
	}
	if strings.HasSuffix(text, "\n") {
		// enter fires both a newline change and a submit
		return
	}
	c.query = text
}

// Submit commits the query as a custom tag.
func (c *Controller[T]) Submit() {
	if c.opts.OnCustomTagCreated == nil || strings.TrimSpace(c.query) == "" {
		return
	}
	query := c.query
	c.query = ""

	// stale change events from the host's re-render must not restore the query
	c.guardMu.Lock()
	c.submitting = true
	c.submitGen++
	gen := c.submitGen
	c.guardMu.Unlock()
	c.opts.Schedule(c.opts.SubmitGuard, func() {
		c.guardMu.Lock()
		defer c.guardMu.Unlock()
		if c.submitGen == gen {
			c.submitting = false
		}
	})

	c.opts.OnCustomTagCreated(query)
}

// KeyEvent reports a key press. seq is the input's event sequence number.
func (c *Controller[T]) KeyEvent(key Key, seq int, at time.Time) {
	if seq != c.eventCount && key == KeyBackspace && c.query == "" {
		if absDuration(at.Sub(c.lastKeyAt)) < c.opts.BackspaceDebounce {
			return
		}
		selected, _ := c.Selected()
		c.DeleteTag(len(selected) - 1)
		// +1 for the backspace itself, so a blur/refocus replay does not delete again
		c.eventCount = seq + 1
		return
	}
	c.lastKeyAt = at
	c.eventCount = seq
}

// AddTag confirms a suggestion.
func (c *Controller[T]) AddTag(s T) {
	if c.opts.HandleAddition != nil {
		c.opts.HandleAddition(s)
	}
	c.query = ""
}

// Filtered returns the suggestions to display for the current query. The
// boolean is false when nothing should be shown at all.
func (c *Controller[T]) Filtered() ([]T, bool) {
	if strings.TrimSpace(c.query) == "" || c.opts.Suggestions == nil {
		return nil, false
	}
	if c.opts.FilterData != nil {
		return c.opts.FilterData(c.query)
	}
	return Filter(c.query, c.opts.Suggestions)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
