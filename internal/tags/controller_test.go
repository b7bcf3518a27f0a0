package tags

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	added   []Item
	deleted []int
	custom  []string
	changed []string
	timers  []func()
	delays  []time.Duration
}

func newTestController(t *testing.T, selected []Item, mutate func(*Options[Item], *recorder)) (*Controller[Item], *recorder, *bytes.Buffer) {
	t.Helper()
	rec := &recorder{}
	var buf bytes.Buffer
	opts := Options[Item]{
		TagsSelected:   func() []Item { return selected },
		HandleAddition: func(tag Item) { rec.added = append(rec.added, tag) },
		HandleDelete:   func(i int) { rec.deleted = append(rec.deleted, i) },
		Schedule: func(d time.Duration, fn func()) {
			rec.delays = append(rec.delays, d)
			rec.timers = append(rec.timers, fn)
		},
		Logger: log.New(&buf),
	}
	if mutate != nil {
		mutate(&opts, rec)
	}
	return NewController(opts), rec, &buf
}

func withCustom(o *Options[Item], rec *recorder) {
	o.OnCustomTagCreated = func(text string) { rec.custom = append(rec.custom, text) }
}

func TestTextChangedSetsQuery(t *testing.T) {
	c, _, _ := newTestController(t, nil, nil)

	for _, text := range []string{"a", "foo bar", " ", "", "x\ty"} {
		c.TextChanged(text)
		assert.Equal(t, text, c.Query())
	}
}

func TestTextChangedIgnoresTrailingNewline(t *testing.T) {
	c, _, _ := newTestController(t, nil, nil)
	c.TextChanged("foo")

	c.TextChanged("foo\n")
	assert.Equal(t, "foo", c.Query())

	c.TextChanged("\n")
	assert.Equal(t, "foo", c.Query())
}

func TestTextChangedCreatesTagOnSpace(t *testing.T) {
	c, rec, _ := newTestController(t, nil, func(o *Options[Item], rec *recorder) {
		o.CreateTagOnSpace = true
		withCustom(o, rec)
	})
	c.TextChanged("fo")

	c.TextChanged("foo ")

	assert.Equal(t, "", c.Query())
	assert.Equal(t, []string{"foo"}, rec.custom)
}

func TestTextChangedSingleSpaceIsNotATag(t *testing.T) {
	c, rec, _ := newTestController(t, nil, func(o *Options[Item], rec *recorder) {
		o.CreateTagOnSpace = true
		withCustom(o, rec)
	})

	c.TextChanged(" ")

	assert.Equal(t, " ", c.Query())
	assert.Empty(t, rec.custom)
}

func TestTextChangedSpaceWithoutCallbackLogsOnce(t *testing.T) {
	c, _, buf := newTestController(t, nil, func(o *Options[Item], _ *recorder) {
		o.CreateTagOnSpace = true
	})

	require.NotPanics(t, func() { c.TextChanged("foo ") })

	assert.Equal(t, 1, strings.Count(buf.String(), "OnCustomTagCreated"))
	assert.Equal(t, "foo ", c.Query())
}

func TestTextChangedSpaceDisabledKeepsText(t *testing.T) {
	c, rec, buf := newTestController(t, nil, withCustom)

	c.TextChanged("foo ")

	assert.Equal(t, "foo ", c.Query())
	assert.Empty(t, rec.custom)
	assert.Empty(t, buf.String())
}

func TestTextChangedDelegatesToOverride(t *testing.T) {
	c, rec, _ := newTestController(t, nil, func(o *Options[Item], rec *recorder) {
		o.CreateTagOnSpace = true
		withCustom(o, rec)
		o.OnChangeText = func(text string) { rec.changed = append(rec.changed, text) }
	})

	c.TextChanged("foo ")

	assert.Equal(t, []string{"foo "}, rec.changed)
	assert.Empty(t, rec.custom)
	assert.Equal(t, "", c.Query())
}

func TestSubmitEmitsUntrimmedQuery(t *testing.T) {
	var queryAtCallback string
	var c *Controller[Item]
	c, rec, _ := newTestController(t, nil, func(o *Options[Item], rec *recorder) {
		o.OnCustomTagCreated = func(text string) {
			queryAtCallback = c.Query()
			rec.custom = append(rec.custom, text)
		}
	})
	c.TextChanged("  bar  ")

	c.Submit()

	assert.Equal(t, "", c.Query())
	assert.Equal(t, "", queryAtCallback)
	assert.Equal(t, []string{"  bar  "}, rec.custom)
}

func TestSubmitNoopOnBlankQuery(t *testing.T) {
	c, rec, _ := newTestController(t, nil, withCustom)
	c.TextChanged("   ")

	c.Submit()

	assert.Equal(t, "   ", c.Query())
	assert.Empty(t, rec.custom)
	assert.False(t, c.Submitting())
	assert.Empty(t, rec.timers)
}

func TestSubmitNoopWithoutCallback(t *testing.T) {
	c, rec, _ := newTestController(t, nil, nil)
	c.TextChanged("bar")

	c.Submit()

	assert.Equal(t, "bar", c.Query())
	assert.False(t, c.Submitting())
	assert.Empty(t, rec.timers)
}

func TestSubmitGuardSuppressesTextChanges(t *testing.T) {
	c, rec, _ := newTestController(t, nil, withCustom)
	c.TextChanged("bar")

	c.Submit()
	require.True(t, c.Submitting())
	require.Len(t, rec.timers, 1)
	assert.Equal(t, DefaultSubmitGuard, rec.delays[0])

	c.TextChanged("bar\n")
	c.TextChanged("stale")
	assert.Equal(t, "", c.Query())

	rec.timers[0]()
	assert.False(t, c.Submitting())

	c.TextChanged("next")
	assert.Equal(t, "next", c.Query())
}

func TestSubmitOlderExpiryKeepsNewerGuard(t *testing.T) {
	c, rec, _ := newTestController(t, nil, withCustom)

	c.TextChanged("one")
	c.Submit()
	rec.timers[0]()
	c.TextChanged("two")
	c.Submit()
	require.Len(t, rec.timers, 2)

	// a late duplicate of the first timer must not release the second guard
	rec.timers[0]()
	assert.True(t, c.Submitting())

	rec.timers[1]()
	assert.False(t, c.Submitting())
}

func TestKeyEventBackspaceOnEmptyDeletesLastTag(t *testing.T) {
	selected := []Item{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	c, rec, _ := newTestController(t, selected, nil)
	base := time.Unix(100, 0)

	c.KeyEvent("x", 1, base)
	c.KeyEvent(KeyBackspace, 2, base.Add(50*time.Millisecond))

	assert.Equal(t, []int{2}, rec.deleted)
}

func TestKeyEventBackspaceWithinDebounceIgnored(t *testing.T) {
	selected := []Item{{Name: "a"}}
	c, rec, _ := newTestController(t, selected, nil)
	base := time.Unix(100, 0)

	c.KeyEvent("x", 1, base)
	c.KeyEvent(KeyBackspace, 2, base.Add(10*time.Millisecond))

	assert.Empty(t, rec.deleted)
}

func TestKeyEventDebounceIsConfigurable(t *testing.T) {
	selected := []Item{{Name: "a"}}
	c, rec, _ := newTestController(t, selected, func(o *Options[Item], _ *recorder) {
		o.BackspaceDebounce = 5 * time.Millisecond
	})
	base := time.Unix(100, 0)

	c.KeyEvent("x", 1, base)
	c.KeyEvent(KeyBackspace, 2, base.Add(10*time.Millisecond))

	assert.Equal(t, []int{0}, rec.deleted)
}

func TestKeyEventBackspaceWithQueryNeverDeletes(t *testing.T) {
	selected := []Item{{Name: "a"}}
	c, rec, _ := newTestController(t, selected, nil)
	c.TextChanged("q")
	base := time.Unix(100, 0)

	for i := 1; i <= 5; i++ {
		c.KeyEvent(KeyBackspace, i*3, base.Add(time.Duration(i)*time.Second))
	}

	assert.Empty(t, rec.deleted)
}

func TestKeyEventSameSequenceIgnored(t *testing.T) {
	selected := []Item{{Name: "a"}, {Name: "b"}}
	c, rec, _ := newTestController(t, selected, nil)
	base := time.Unix(100, 0)

	c.KeyEvent(KeyBackspace, 4, base)
	require.Equal(t, []int{1}, rec.deleted)

	// the stored count is seq+1, so a replay at that number is swallowed
	c.KeyEvent(KeyBackspace, 5, base.Add(time.Second))
	assert.Equal(t, []int{1}, rec.deleted)

	c.KeyEvent(KeyBackspace, 4, base.Add(2*time.Second))
	assert.Equal(t, []int{1, 1}, rec.deleted)
}

func TestKeyEventWithoutSelectedTagsRequestsMinusOne(t *testing.T) {
	c, rec, _ := newTestController(t, nil, nil)

	c.KeyEvent(KeyBackspace, 1, time.Unix(100, 0))

	assert.Equal(t, []int{-1}, rec.deleted)
}

func TestAddTagCallsHostAndClearsQuery(t *testing.T) {
	c, rec, _ := newTestController(t, nil, nil)
	c.TextChanged("ban")

	c.AddTag(Item{Name: "banana"})

	assert.Equal(t, []Item{{Name: "banana"}}, rec.added)
	assert.Equal(t, "", c.Query())
}

func TestFilteredUsesDefaultFilter(t *testing.T) {
	c, _, _ := newTestController(t, nil, func(o *Options[Item], _ *recorder) {
		o.Suggestions = []Item{{Name: "Apple"}, {Name: "banana"}}
	})

	_, ok := c.Filtered()
	assert.False(t, ok)

	c.TextChanged("AN")
	got, ok := c.Filtered()
	require.True(t, ok)
	assert.Equal(t, []Item{{Name: "banana"}}, got)
}

func TestFilteredWithoutSuggestionsIsAbsent(t *testing.T) {
	c, _, _ := newTestController(t, nil, nil)
	c.TextChanged("an")

	got, ok := c.Filtered()
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestFilteredDelegatesToOverride(t *testing.T) {
	var seen []string
	c, _, _ := newTestController(t, nil, func(o *Options[Item], _ *recorder) {
		o.Suggestions = []Item{{Name: "Apple"}}
		o.FilterData = func(query string) ([]Item, bool) {
			seen = append(seen, query)
			return []Item{{Name: "override"}}, true
		}
	})

	c.TextChanged("   ")
	_, ok := c.Filtered()
	assert.False(t, ok)

	c.TextChanged("zz")
	got, ok := c.Filtered()
	require.True(t, ok)
	assert.Equal(t, []Item{{Name: "override"}}, got)
	assert.Equal(t, []string{"zz"}, seen)
}

func TestResetRestoresMountState(t *testing.T) {
	c, rec, _ := newTestController(t, nil, withCustom)
	c.TextChanged("bar")
	c.Submit()
	c.KeyEvent("x", 9, time.Unix(100, 0))
	require.Equal(t, []string{"bar"}, rec.custom)

	c.Reset()

	assert.Equal(t, "", c.Query())
	assert.False(t, c.Submitting())
	c.TextChanged("again")
	assert.Equal(t, "again", c.Query())
}

func TestSelectedReportsAbsence(t *testing.T) {
	c := NewController(Options[Item]{})
	_, ok := c.Selected()
	assert.False(t, ok)
}

func TestDeleteTagForwardsIndex(t *testing.T) {
	c, rec, _ := newTestController(t, []Item{{Name: "a"}}, nil)

	c.DeleteTag(0)

	assert.Equal(t, []int{0}, rec.deleted)
	assert.NotPanics(t, func() { NewController(Options[Item]{}).DeleteTag(3) })
}

func TestSetFilterDataSwapsStrategy(t *testing.T) {
	c, _, _ := newTestController(t, nil, func(o *Options[Item], _ *recorder) {
		o.Suggestions = []Item{{Name: "Apple"}, {Name: "pineapple"}}
	})
	c.TextChanged("app")

	c.SetFilterData(func(string) ([]Item, bool) { return nil, false })
	_, ok := c.Filtered()
	assert.False(t, ok)

	c.SetFilterData(nil)
	got, ok := c.Filtered()
	require.True(t, ok)
	assert.Equal(t, []string{"Apple", "pineapple"}, Names(got))
}

func TestSubmitDefaultSchedulerClearsGuard(t *testing.T) {
	var custom []string
	c := NewController(Options[Item]{
		OnCustomTagCreated: func(text string) { custom = append(custom, text) },
		SubmitGuard:        5 * time.Millisecond,
		Logger:             log.New(&bytes.Buffer{}),
	})
	c.TextChanged("go")

	c.Submit()

	assert.True(t, c.Submitting())
	assert.Equal(t, []string{"go"}, custom)
	require.Eventually(t, func() bool { return !c.Submitting() }, time.Second, time.Millisecond)

	c.TextChanged("next")
	assert.Equal(t, "next", c.Query())
}
