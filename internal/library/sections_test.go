package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(names ...string) []Item {
	items := make([]Item, len(names))
	for i, n := range names {
		items[i] = Item{ID: n, Title: n}
	}
	return items
}

func TestSectionKey(t *testing.T) {
	tests := map[string]string{
		"Amsterdam":  "A",
		"amsterdam":  "A",
		"Éclair":     "E",
		"ångström":   "A",
		"  Zurich":   "Z",
		"9 to 5":     "#",
		"(500) Days": "#",
		"":           "#",
		"Øresund":    "Ø",
		"Москва":     "М",
		"ßtraße":     "S",
		"ﬁlm":        "F",
	}
	for in, want := range tests {
		assert.Equal(t, want, SectionKey(in), "SectionKey(%q)", in)
	}
}

func TestBuildExpandingUpperCaseJoinsLatinSection(t *testing.T) {
	idx := Build(titles("ßtraße", "Sun"), Options{})
	assert.Equal(t, []string{"S"}, idx.SectionLabels())
	assert.Equal(t, 2, idx.ItemCount(0))
}

func TestBuildByLetter(t *testing.T) {
	idx := Build(titles("banana", "Apple", "42", "avocado", "Éclair", "Øl"), Options{})

	assert.Equal(t, []string{"#", "A", "B", "E", "Ø"}, idx.SectionLabels())
	require.Equal(t, 2, idx.ItemCount(1))
	first, ok := idx.Item(1, 0)
	require.True(t, ok)
	assert.Equal(t, "Apple", first.Title)
	second, _ := idx.Item(1, 1)
	assert.Equal(t, "avocado", second.Title)
	assert.Equal(t, 6, idx.Total())
}

func TestBuildUsesSortTitle(t *testing.T) {
	items := []Item{
		{ID: "1", Title: "The Matrix", SortTitle: "Matrix"},
		{ID: "2", Title: "Thor"},
	}
	idx := Build(items, Options{})
	assert.Equal(t, []string{"M", "T"}, idx.SectionLabels())
}

func TestBuildFullAlphabet(t *testing.T) {
	idx := Build(titles("Zebra", "Apple"), Options{FullAlphabet: true})

	labels := idx.SectionLabels()
	require.Len(t, labels, 27)
	assert.Equal(t, "#", labels[0])
	assert.Equal(t, "A", labels[1])
	assert.Equal(t, "Z", labels[26])
	assert.Equal(t, 0, idx.ItemCount(0))
	assert.Equal(t, 1, idx.ItemCount(1))
	assert.Equal(t, 0, idx.ItemCount(2))
	assert.Equal(t, 1, idx.ItemCount(26))
}

func TestBuildByYear(t *testing.T) {
	items := []Item{
		{ID: "a", Title: "Heat", Year: 1995},
		{ID: "b", Title: "Alien", Year: 1979},
		{ID: "c", Title: "Unknown"},
		{ID: "d", Title: "Casino", Year: 1995},
		{ID: "e", Title: "Arrival", Year: 2016},
	}
	idx := Build(items, Options{GroupBy: GroupByYear})

	assert.Equal(t, []string{"1970s", "1990s", "2010s", "?"}, idx.SectionLabels())
	it, ok := idx.Item(1, 0)
	require.True(t, ok)
	assert.Equal(t, "Casino", it.Title)
}

func TestExtendedTitles(t *testing.T) {
	idx := Build(titles("Apple", "Avocado", "Banana"), Options{})
	assert.Equal(t, []string{"A · 2 titles", "B · 1 title"}, idx.ExtendedTitles())
	assert.Len(t, idx.ExtendedTitles(), len(idx.SectionLabels()))
}

func TestRows(t *testing.T) {
	idx := Build(titles("Apple", "Avocado", "Cherry"), Options{FullAlphabet: true})

	// "#" and "B" are empty and have no header.
	require.Equal(t, 5, idx.Len())
	assert.Equal(t, Row{Section: 1, Item: -1}, idx.Row(0))
	assert.True(t, idx.Row(0).Header())
	assert.Equal(t, Row{Section: 1, Item: 1}, idx.Row(2))
	assert.Equal(t, Row{Section: 3, Item: -1}, idx.Row(3))

	assert.Equal(t, 0, idx.RowIndex(1, -1))
	assert.Equal(t, 1, idx.RowIndex(1, 0))
	assert.Equal(t, 2, idx.RowIndex(1, 1))
	assert.Equal(t, 2, idx.RowIndex(1, 9))
	assert.Equal(t, 3, idx.RowIndex(2, 0), "empty section maps to the next header")
	assert.Equal(t, 4, idx.RowIndex(3, 0))
	assert.Equal(t, 5, idx.RowIndex(99, 0))

	assert.Equal(t, 1, idx.SectionAt(2))
	assert.Equal(t, 3, idx.SectionAt(4))
	assert.Equal(t, 3, idx.SectionAt(100))
}

func TestItemOutOfRange(t *testing.T) {
	idx := Build(titles("Apple"), Options{})
	_, ok := idx.Item(0, 1)
	assert.False(t, ok)
	_, ok = idx.Item(5, 0)
	assert.False(t, ok)
	assert.Equal(t, 0, idx.ItemCount(-1))
}

func TestParseGroupBy(t *testing.T) {
	assert.Equal(t, GroupByYear, ParseGroupBy("Year"))
	assert.Equal(t, GroupByLetter, ParseGroupBy("letter"))
	assert.Equal(t, GroupByLetter, ParseGroupBy("bogus"))
}
