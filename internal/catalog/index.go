package catalog

import (
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/gravitrone/autotags/internal/tags"
)

// PrefixIndex answers case-insensitive name-prefix queries over a fixed pool.
type PrefixIndex[T tags.Named] struct {
	items []T
	trie  *patricia.Trie
}

// NewPrefixIndex indexes items by lower-cased display name.
func NewPrefixIndex[T tags.Named](items []T) *PrefixIndex[T] {
	trie := patricia.NewTrie()
	for i, item := range items {
		key := patricia.Prefix(strings.ToLower(item.DisplayName()))
		if existing, ok := trie.Get(key).([]int); ok {
			trie.Set(key, append(existing, i))
			continue
		}
		trie.Insert(key, []int{i})
	}
	return &PrefixIndex[T]{items: items, trie: trie}
}

// Len returns the number of indexed items.
func (x *PrefixIndex[T]) Len() int {
	return len(x.items)
}

// Filter returns items whose name starts with query, in pool order. It has the
// same shape as tags.Options.FilterData.
func (x *PrefixIndex[T]) Filter(query string) ([]T, bool) {
	if strings.TrimSpace(query) == "" || x.items == nil {
		return nil, false
	}
	var hits []int
	_ = x.trie.VisitSubtree(patricia.Prefix(strings.ToLower(query)), func(_ patricia.Prefix, item patricia.Item) error {
		if idx, ok := item.([]int); ok {
			hits = append(hits, idx...)
		}
		return nil
	})
	sort.Ints(hits)
	out := make([]T, 0, len(hits))
	for _, i := range hits {
		out = append(out, x.items[i])
	}
	return out, true
}
