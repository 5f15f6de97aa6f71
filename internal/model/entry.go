package model

// Entry is a single word together with the number of times it occurs.
type Entry struct {
	// Word is the normalized token (lowercase, alphanumeric only).
	Word string `json:"word"`

	// Count is the number of occurrences. Always at least 1 for entries
	// produced by counting.
	Count int `json:"count"`
}

// RankedList is a sequence of entries sorted by count descending.
// Entries with equal counts keep the order in which their words were
// first seen in the input.
type RankedList []Entry

// Top returns at most n entries from the head of the list.
// A non-positive n returns the whole list.
func (l RankedList) Top(n int) RankedList {
	if n <= 0 || n >= len(l) {
		return l
	}
	return l[:n]
}

// Total returns the sum of all counts, i.e. the number of tokens.
func (l RankedList) Total() int {
	total := 0
	for _, e := range l {
		total += e.Count
	}
	return total
}

// Unique returns the number of distinct words.
func (l RankedList) Unique() int {
	return len(l)
}

// Words returns the words in rank order.
func (l RankedList) Words() []string {
	words := make([]string, len(l))
	for i, e := range l {
		words[i] = e.Word
	}
	return words
}

// Counts returns the counts in rank order.
func (l RankedList) Counts() []int {
	counts := make([]int, len(l))
	for i, e := range l {
		counts[i] = e.Count
	}
	return counts
}

// MaxCount returns the highest count in the list, or 0 when empty.
// Because the list is sorted this is the count of the first entry.
func (l RankedList) MaxCount() int {
	if len(l) == 0 {
		return 0
	}
	return l[0].Count
}
