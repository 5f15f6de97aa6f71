package freq

import (
	"reflect"
	"strings"
	"testing"
)

const sampleText = "This is a test. This test has repeated words, words, words!"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Hello WORLD", "hello world"},
		{"strips punctuation", "test, test! test?", "test test test"},
		{"keeps digits", "route 66", "route 66"},
		{"drops newlines without inserting space", "end\nstart", "endstart"},
		{"drops tabs", "a\tb", "ab"},
		{"drops accented letters after lowercasing", "Café", "caf"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"basic", "The Quick Brown Fox", []string{"the", "quick", "brown", "fox"}},
		{"multiple spaces", "  hello   world  ", []string{"hello", "world"}},
		{"punctuation only", "!!! ??? ...", []string{}},
		{"hyphen joins words", "foo-bar", []string{"foobar"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokenize(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	t.Run("reference sentence", func(t *testing.T) {
		t.Parallel()

		table := Count(sampleText)
		want := map[string]int{
			"this":     2,
			"is":       1,
			"a":        1,
			"test":     2,
			"has":      1,
			"repeated": 1,
			"words":    3,
		}
		if got := table.Map(); !reflect.DeepEqual(got, want) {
			t.Errorf("Count() = %v, want %v", got, want)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		t.Parallel()

		a := Count("Test test TEST").Map()
		b := Count("test test test").Map()
		if !reflect.DeepEqual(a, b) {
			t.Errorf("expected identical tables, got %v and %v", a, b)
		}
	})

	t.Run("punctuation stripped", func(t *testing.T) {
		t.Parallel()

		got := Count("test, test! test?").Map()
		want := map[string]int{"test": 3}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		table := Count("")
		if table.Len() != 0 || table.Total() != 0 {
			t.Errorf("expected empty table, got len=%d total=%d", table.Len(), table.Total())
		}
		if ranked := Rank(table); len(ranked) != 0 {
			t.Errorf("expected empty ranked list, got %v", ranked)
		}
	})

	t.Run("sum of counts equals token count", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			sampleText,
			"one two two three three three",
			"  leading and trailing  ",
			"Mixed CASE, with; punctuation... and 123 numbers 123",
		}
		for _, in := range inputs {
			table := Count(in)
			sum := 0
			for _, e := range table.Entries() {
				sum += e.Count
			}
			tokens := len(Tokenize(in))
			if sum != tokens || table.Total() != tokens {
				t.Errorf("input %q: sum=%d total=%d tokens=%d", in, sum, table.Total(), tokens)
			}
		}
	})

	t.Run("entries keep first-seen order", func(t *testing.T) {
		t.Parallel()

		table := Count("b a b c a b")
		var words []string
		for _, e := range table.Entries() {
			words = append(words, e.Word)
		}
		if !reflect.DeepEqual(words, []string{"b", "a", "c"}) {
			t.Errorf("unexpected order %v", words)
		}
	})

	t.Run("Get returns zero for unknown word", func(t *testing.T) {
		t.Parallel()

		table := Count("alpha beta")
		if table.Get("alpha") != 1 {
			t.Errorf("expected alpha=1, got %d", table.Get("alpha"))
		}
		if table.Get("gamma") != 0 {
			t.Errorf("expected gamma=0, got %d", table.Get("gamma"))
		}
	})
}

func TestRank(t *testing.T) {
	t.Parallel()

	t.Run("top entry of reference sentence", func(t *testing.T) {
		t.Parallel()

		ranked := Rank(Count(sampleText))
		if ranked[0].Word != "words" || ranked[0].Count != 3 {
			t.Errorf("expected (words, 3) first, got %+v", ranked[0])
		}
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		t.Parallel()

		ranked := Rank(Count(sampleText))
		want := []string{"words", "this", "test", "is", "a", "has", "repeated"}
		if got := ranked.Words(); !reflect.DeepEqual(got, want) {
			t.Errorf("Rank() words = %v, want %v", got, want)
		}
	})

	t.Run("counts are non-increasing", func(t *testing.T) {
		t.Parallel()

		ranked := Rank(Count(strings.Repeat("x y y z z z w ", 5) + "q"))
		for i := 1; i < len(ranked); i++ {
			if ranked[i-1].Count < ranked[i].Count {
				t.Errorf("entry %d (%v) ranked above larger entry %d (%v)", i-1, ranked[i-1], i, ranked[i])
			}
		}
	})

	t.Run("ranked list is a permutation of the table", func(t *testing.T) {
		t.Parallel()

		table := Count(sampleText)
		ranked := Rank(table)
		if len(ranked) != table.Len() {
			t.Fatalf("expected %d entries, got %d", table.Len(), len(ranked))
		}
		for _, e := range ranked {
			if table.Get(e.Word) != e.Count {
				t.Errorf("entry %v does not match table count %d", e, table.Get(e.Word))
			}
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		t.Parallel()

		first := Rank(Count(sampleText))
		for i := 0; i < 10; i++ {
			if got := Rank(Count(sampleText)); !reflect.DeepEqual(got, first) {
				t.Fatalf("run %d differs: %v vs %v", i, got, first)
			}
		}
	})

	t.Run("does not mutate table order", func(t *testing.T) {
		t.Parallel()

		table := Count("a b b")
		_ = Rank(table)
		if entries := table.Entries(); entries[0].Word != "a" {
			t.Errorf("expected table to keep first-seen order, got %v", entries)
		}
	})
}
