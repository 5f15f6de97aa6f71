package freq

import (
	"cmp"
	"slices"

	"github.com/nao1215/wordhist/internal/model"
)

// Table maps words to occurrence counts and remembers the order in which
// each word was first added.
// Entries live in a slice in first-seen order; index maps a word to its
// position.
type Table struct {
	index   map[string]int
	entries []model.Entry
	total   int
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{
		index: make(map[string]int),
	}
}

// Add increments the count of word by one.
func (t *Table) Add(word string) {
	if i, ok := t.index[word]; ok {
		t.entries[i].Count++
	} else {
		t.index[word] = len(t.entries)
		t.entries = append(t.entries, model.Entry{Word: word, Count: 1})
	}
	t.total++
}

// Get returns the count of word. A word that was never added returns 0.
func (t *Table) Get(word string) int {
	if i, ok := t.index[word]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	return len(t.entries)
}

// Total returns the number of tokens added.
func (t *Table) Total() int {
	return t.total
}

// Entries returns a copy of the entries in first-seen order.
func (t *Table) Entries() []model.Entry {
	return slices.Clone(t.entries)
}

// Map returns the counts as a plain map.
func (t *Table) Map() map[string]int {
	m := make(map[string]int, len(t.entries))
	for _, e := range t.entries {
		m[e.Word] = e.Count
	}
	return m
}

// Count tokenizes text and tallies every token in a single pass.
func Count(text string) *Table {
	table := NewTable()
	for _, token := range Tokenize(text) {
		table.Add(token)
	}
	return table
}

// Rank returns the table's entries sorted by count descending.
// The sort is stable over first-seen order, so ties keep input order.
func Rank(t *Table) model.RankedList {
	ranked := t.Entries()
	slices.SortStableFunc(ranked, func(a, b model.Entry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return model.RankedList(ranked)
}
